package game

// Event is something a player submits to change the game state: a Move or
// a Castling. Events are cheap immutable values; the Controller validates
// and applies them.
type Event interface {
	// IsValid reports whether the event may be applied to the state.
	// It does not account for self-check; the Controller simulates that.
	IsValid(s *State) bool

	// Apply mutates the state. Only valid events may be applied.
	Apply(s *State)
}

// Move is the displacement of a single piece from one square to another.
type Move struct {
	origin, dest Square
}

// NewMove creates a move from an origin to a destination square.
func NewMove(origin, dest Square) Move {
	return Move{origin: origin, dest: dest}
}

// Origin returns the square the piece moves from.
func (m Move) Origin() Square {
	return m.origin
}

// Dest returns the square the piece moves to.
func (m Move) Dest() Square {
	return m.dest
}

// String returns the move in coordinate form (e.g., "e2e4").
func (m Move) String() string {
	return m.origin.String() + m.dest.String()
}

// IsValid reports whether the move is legal for the piece on its origin
// square: basic sanity checks first, then the piece's movement rule.
// Kings can never be captured, so a move onto a king is always invalid.
func (m Move) IsValid(s *State) bool {
	if !m.origin.IsValid() || !m.dest.IsValid() || m.origin == m.dest {
		return false
	}
	p := s.board[m.origin]
	if p.Color != s.turn {
		return false
	}
	d := s.board[m.dest]
	if !d.IsEmpty() && d.Color == p.Color {
		return false
	}
	if d.Kind == King {
		return false
	}
	return canApply(s, p.Kind, m)
}

// isValidCheck is the variant used by the check detector: identical to
// IsValid except that the destination must hold an enemy king. The side
// to move is taken to be the attacker.
func (m Move) isValidCheck(s *State) bool {
	if !m.origin.IsValid() || !m.dest.IsValid() || m.origin == m.dest {
		return false
	}
	p := s.board[m.origin]
	if p.Color != s.turn {
		return false
	}
	d := s.board[m.dest]
	if d.Kind != King || d.Color == p.Color {
		return false
	}
	return canApply(s, p.Kind, m)
}

// Apply moves the piece, marks both squares altered and runs the piece's
// post-move hook (en passant bookkeeping for pawns).
func (m Move) Apply(s *State) {
	kind := s.board[m.origin].Kind
	s.MovePiece(m.origin, m.dest)
	afterApply(s, kind, m)
}

// Castling moves a king two squares towards one of its rooks and places
// that rook on the square the king skipped. The event is identified by
// the rook's home square; the king is implied by the rook's colour.
type Castling struct {
	rook Square
}

// NewCastling creates a castling event for the rook on the given square.
func NewCastling(rook Square) Castling {
	return Castling{rook: rook}
}

// Rook returns the square of the castling rook.
func (c Castling) Rook() Square {
	return c.rook
}

// IsValid reports whether the castling may be applied: a rook on its home
// corner, the matching king on its home square, neither square altered,
// and nothing between them. Checks against the king's path being attacked
// are not performed.
func (c Castling) IsValid(s *State) bool {
	if c.rook != A1 && c.rook != H1 && c.rook != A8 && c.rook != H8 {
		return false
	}
	rook := s.board[c.rook]
	if rook.Kind != Rook {
		return false
	}
	kingSq := E1
	if rook.Color == Black {
		kingSq = E8
	}
	king := s.board[kingSq]
	if king.Kind != King || king.Color != rook.Color {
		return false
	}
	if s.altered[c.rook] || s.altered[kingSq] {
		return false
	}
	step := East
	if c.rook < kingSq {
		step = West
	}
	for sq := kingSq.Shift(step); sq != c.rook; sq = sq.Shift(step) {
		if !sq.IsValid() || !s.board[sq].IsEmpty() {
			return false
		}
	}
	return true
}

// Apply performs the two displacements: the king two squares towards the
// rook, then the rook to the square next to it on the inside.
func (c Castling) Apply(s *State) {
	kingSq := E1
	if s.board[c.rook].Color == Black {
		kingSq = E8
	}
	kingDir := West
	if kingSq < c.rook {
		kingDir = East
	}
	kingDest := kingSq.Shift(kingDir).Shift(kingDir)
	NewMove(kingSq, kingDest).Apply(s)
	NewMove(c.rook, kingDest.Shift(-kingDir)).Apply(s)
}
