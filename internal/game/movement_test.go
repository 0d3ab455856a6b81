package game

import "testing"

// emptyState returns a state with only the two kings placed, far apart,
// so movement rules can be probed in isolation.
func emptyState(turn Color) *State {
	s := NewState()
	for sq := A1; sq < NoSquare; sq++ {
		s.ClearSquare(sq)
	}
	s.SetPiece(A1, NewPiece(King, White))
	s.SetPiece(H8, NewPiece(King, Black))
	if s.Turn() != turn {
		s.NextTurn()
	}
	return s
}

func TestPawnMoves(t *testing.T) {
	tests := []struct {
		name  string
		turn  Color
		piece Piece
		from  Square
		to    Square
		want  bool
	}{
		{"white single push", White, NewPiece(Pawn, White), E2, E3, true},
		{"white double push", White, NewPiece(Pawn, White), E2, E4, true},
		{"white double push off start rank", White, NewPiece(Pawn, White), E3, E5, false},
		{"white backward", White, NewPiece(Pawn, White), E4, E3, false},
		{"white sideways", White, NewPiece(Pawn, White), E4, D4, false},
		{"white diagonal to empty", White, NewPiece(Pawn, White), E4, D5, false},
		{"black single push", Black, NewPiece(Pawn, Black), E7, E6, true},
		{"black double push", Black, NewPiece(Pawn, Black), E7, E5, true},
		{"black double push off start rank", Black, NewPiece(Pawn, Black), E6, E4, false},
		{"black backward", Black, NewPiece(Pawn, Black), E5, E6, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := emptyState(tt.turn)
			s.SetPiece(tt.from, tt.piece)
			if got := NewMove(tt.from, tt.to).IsValid(s); got != tt.want {
				t.Errorf("IsValid(%s%s) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestPawnCaptures(t *testing.T) {
	s := emptyState(White)
	s.SetPiece(E4, NewPiece(Pawn, White))
	s.SetPiece(D5, NewPiece(Pawn, Black))
	s.SetPiece(E5, NewPiece(Pawn, Black))

	if !NewMove(E4, D5).IsValid(s) {
		t.Error("diagonal capture should be valid")
	}
	if NewMove(E4, E5).IsValid(s) {
		t.Error("forward capture should be invalid")
	}
}

// The double push does not inspect the square it skips. This engine keeps
// that behaviour on purpose.
func TestPawnDoublePushIgnoresBlocker(t *testing.T) {
	s := emptyState(White)
	s.SetPiece(E2, NewPiece(Pawn, White))
	s.SetPiece(E3, NewPiece(Knight, Black))

	if !NewMove(E2, E4).IsValid(s) {
		t.Error("double push over a blocked square should be accepted")
	}
}

// Kings move one orthogonal step only; the diagonal step is not part of
// this engine's rules.
func TestKingMoves(t *testing.T) {
	tests := []struct {
		name string
		to   Square
		want bool
	}{
		{"north", E5, true},
		{"south", E3, true},
		{"east", F4, true},
		{"west", D4, true},
		{"diagonal", D5, false},
		{"two squares", E6, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := emptyState(White)
			s.ClearSquare(A1)
			s.SetPiece(E4, NewPiece(King, White))
			if got := NewMove(E4, tt.to).IsValid(s); got != tt.want {
				t.Errorf("IsValid(e4%s) = %v, want %v", tt.to, got, tt.want)
			}
		})
	}
}

func TestKnightMoves(t *testing.T) {
	s := emptyState(White)
	s.SetPiece(D4, NewPiece(Knight, White))

	valid := []Square{B3, B5, C2, C6, E2, E6, F3, F5}
	for _, to := range valid {
		if !NewMove(D4, to).IsValid(s) {
			t.Errorf("knight d4%s should be valid", to)
		}
	}
	invalid := []Square{D5, E5, F4, D6, H4}
	for _, to := range invalid {
		if NewMove(D4, to).IsValid(s) {
			t.Errorf("knight d4%s should be invalid", to)
		}
	}
}

func TestBishopMoves(t *testing.T) {
	s := emptyState(White)
	s.SetPiece(C1, NewPiece(Bishop, White))

	if !NewMove(C1, H6).IsValid(s) {
		t.Error("open diagonal should be valid")
	}
	if NewMove(C1, C4).IsValid(s) {
		t.Error("orthogonal bishop move should be invalid")
	}

	s.SetPiece(E3, NewPiece(Pawn, White))
	if NewMove(C1, H6).IsValid(s) {
		t.Error("blocked diagonal should be invalid")
	}
	// Capturing the blocker itself is not possible either: it is friendly.
	if NewMove(C1, E3).IsValid(s) {
		t.Error("move onto friendly blocker should be invalid")
	}
}

func TestRookMoves(t *testing.T) {
	s := emptyState(White)
	s.SetPiece(D4, NewPiece(Rook, White))

	for _, to := range []Square{D8, D1, A4, H4} {
		if !NewMove(D4, to).IsValid(s) {
			t.Errorf("rook d4%s should be valid", to)
		}
	}
	if NewMove(D4, E5).IsValid(s) {
		t.Error("diagonal rook move should be invalid")
	}

	s.SetPiece(D6, NewPiece(Pawn, Black))
	if !NewMove(D4, D6).IsValid(s) {
		t.Error("capture at end of ray should be valid")
	}
	if NewMove(D4, D8).IsValid(s) {
		t.Error("ray through a piece should be invalid")
	}
}

func TestQueenMoves(t *testing.T) {
	s := emptyState(White)
	s.SetPiece(D4, NewPiece(Queen, White))

	for _, to := range []Square{D8, A4, G7, A7} {
		if !NewMove(D4, to).IsValid(s) {
			t.Errorf("queen d4%s should be valid", to)
		}
	}
	if NewMove(D4, E6).IsValid(s) {
		t.Error("knight-shaped queen move should be invalid")
	}
}

func TestMoveSanityChecks(t *testing.T) {
	s := NewState()

	if NewMove(E2, E2).IsValid(s) {
		t.Error("null move should be invalid")
	}
	if NewMove(E7, E5).IsValid(s) {
		t.Error("moving the opponent's piece should be invalid")
	}
	if NewMove(E1, E2).IsValid(s) {
		t.Error("moving onto a friendly piece should be invalid")
	}
	if NewMove(NoSquare, E4).IsValid(s) {
		t.Error("out-of-range origin should be invalid")
	}
}

func TestKingCaptureRejected(t *testing.T) {
	s := emptyState(White)
	s.SetPiece(D4, NewPiece(Rook, White))
	s.ClearSquare(H8)
	s.SetPiece(D8, NewPiece(King, Black))

	if NewMove(D4, D8).IsValid(s) {
		t.Error("capturing a king must be rejected")
	}
}
