package game

// Phase tells whether the game is still running or who won it.
type Phase uint8

const (
	Running Phase = iota
	WhiteWon
	BlackWon
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case WhiteWon:
		return "WhiteWon"
	case BlackWon:
		return "BlackWon"
	default:
		return "Running"
	}
}

// State is the full game state: board, side to move, phase, en passant
// target and the per-square altered flags that gate castling. It carries
// no business logic; legality lives in the events and the Controller.
//
// The zero value is not a playable state; use NewState.
type State struct {
	board     Board
	turn      Color
	phase     Phase
	enPassant Square
	altered   [SquareCount]bool
}

// NewState returns the initial position: white to move, running, no en
// passant target, every square unaltered.
func NewState() *State {
	return &State{
		board:     NewBoard(),
		enPassant: NoSquare,
	}
}

// Clone returns a deep copy of the state.
func (s *State) Clone() *State {
	clone := *s
	return &clone
}

// Board exposes the underlying board.
func (s *State) Board() *Board {
	return &s.board
}

// Turn returns the side to move.
func (s *State) Turn() Color {
	return s.turn
}

// NextTurn passes the move to the other side.
func (s *State) NextTurn() {
	s.turn = s.turn.Other()
}

// Phase returns the current game phase.
func (s *State) Phase() Phase {
	return s.phase
}

// SetPhase sets the current game phase.
func (s *State) SetPhase(p Phase) {
	s.phase = p
}

// EnPassant returns the square a pawn has just passed over, or NoSquare.
func (s *State) EnPassant() Square {
	return s.enPassant
}

// HasEnPassant returns true if an en passant target is set.
func (s *State) HasEnPassant() bool {
	return s.enPassant != NoSquare
}

// SetEnPassant sets the en passant target. Only NoSquare and squares on
// ranks 3 and 6 are representable targets; anything else is a
// programming error.
func (s *State) SetEnPassant(sq Square) {
	if !enPassantSquareOK(sq) {
		panic("game: en passant square off ranks 3 and 6")
	}
	s.enPassant = sq
}

// ClearEnPassant removes the en passant target.
func (s *State) ClearEnPassant() {
	s.enPassant = NoSquare
}

func enPassantSquareOK(sq Square) bool {
	if sq == NoSquare {
		return true
	}
	r := sq.Rank()
	return r == 2 || r == 5
}

// WasAltered reports whether the piece on sq has moved or been captured
// since the initial position.
func (s *State) WasAltered(sq Square) bool {
	assertSquare(sq)
	return s.altered[sq]
}

// SetAltered sets the altered flag of a square. Core operations only ever
// raise the flag; lowering it is reserved to the state editor and loader.
func (s *State) SetAltered(sq Square, altered bool) {
	assertSquare(sq)
	s.altered[sq] = altered
}

// MovePiece copies the piece on origin to dest, empties origin and marks
// both squares altered. It does not validate the displacement.
func (s *State) MovePiece(origin, dest Square) {
	assertSquare(origin)
	assertSquare(dest)
	s.board[dest] = s.board[origin]
	s.board.Clear(origin)
	s.altered[origin] = true
	s.altered[dest] = true
}

// SetPiece places a piece on a square. Debug mutator for the state editor.
func (s *State) SetPiece(sq Square, p Piece) {
	s.board.SetPiece(sq, p)
}

// ClearSquare empties a square. Debug mutator for the state editor.
func (s *State) ClearSquare(sq Square) {
	s.board.Clear(sq)
}
