package game

import "strings"

// Board is a dense array of 64 pieces indexed by Square. It is a plain
// value type; copying a Board copies the position.
type Board [SquareCount]Piece

var firstRankKinds = [8]PieceKind{
	Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook,
}

// NewBoard returns a board with all pieces in their initial position.
func NewBoard() Board {
	var b Board
	for f := 0; f < 8; f++ {
		b[NewSquare(f, 0)] = NewPiece(firstRankKinds[f], White)
		b[NewSquare(f, 0).Mirror()] = NewPiece(firstRankKinds[f], Black)
		b[NewSquare(f, 1)] = NewPiece(Pawn, White)
		b[NewSquare(f, 1).Mirror()] = NewPiece(Pawn, Black)
	}
	return b
}

// PieceAt returns the piece at the given square.
func (b *Board) PieceAt(sq Square) Piece {
	assertSquare(sq)
	return b[sq]
}

// SetPiece places a piece at the given square.
func (b *Board) SetPiece(sq Square, p Piece) {
	assertSquare(sq)
	b[sq] = p
}

// Clear empties the given square.
func (b *Board) Clear(sq Square) {
	assertSquare(sq)
	b[sq] = Piece{}
}

// Find returns the lowest square holding a piece of the given kind and
// color, or false if there is none.
func (b *Board) Find(kind PieceKind, c Color) (Square, bool) {
	for sq := A1; sq < NoSquare; sq++ {
		if b[sq].Kind == kind && b[sq].Color == c {
			return sq, true
		}
	}
	return NoSquare, false
}

// String renders the board in the ASCII style of the command-line shell,
// rank 8 on top.
func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteString("    ")
	for fc := byte('a'); fc <= 'h'; fc++ {
		sb.WriteByte(fc)
		sb.WriteByte(' ')
	}
	sb.WriteString("\n   _")
	sb.WriteString(strings.Repeat("__", 8))
	sb.WriteByte('\n')
	for r := 7; r >= 0; r-- {
		sb.WriteByte(byte('1' + r))
		sb.WriteString(" | ")
		for f := 0; f < 8; f++ {
			sb.WriteByte(b[NewSquare(f, r)].Char())
			sb.WriteByte(' ')
		}
		sb.WriteString("|\n")
	}
	sb.WriteString("   ")
	sb.WriteString(strings.Repeat("--", 8))
	sb.WriteString("-\n")
	return sb.String()
}

// assertSquare panics on an out-of-range square. Handing an invalid
// square to the core is a programming error, not a game error.
func assertSquare(sq Square) {
	if !sq.IsValid() {
		panic("game: square out of range")
	}
}
