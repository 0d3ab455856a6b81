// Package game implements the rules of a single chess match: board and
// state representation, event validation, check simulation and win
// detection. It is a pure library; user interaction goes through the
// Listener interface and the text save format.
package game

import "fmt"

// Square represents a square on the chess board (0-63).
// Uses rank-major mapping: A1=0, H1=7, A8=56, H8=63.
type Square uint8

// Square constants for all 64 squares.
const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
	NoSquare Square = 64
)

// SquareCount is the number of squares on the board.
const SquareCount = 64

// File returns the file (column) of the square (0-7, where 0=a, 7=h).
func (sq Square) File() int {
	return int(sq) & 7
}

// Rank returns the rank (row) of the square (0-7, where 0=1, 7=8).
func (sq Square) Rank() int {
	return int(sq) >> 3
}

// String returns the algebraic notation for the square (e.g., "e4").
func (sq Square) String() string {
	if sq >= NoSquare {
		return "-"
	}
	return fmt.Sprintf("%c%c", 'a'+sq.File(), '1'+sq.Rank())
}

// NewSquare creates a square from file and rank (0-indexed).
func NewSquare(file, rank int) Square {
	return Square(rank*8 + file)
}

// ParseSquare parses algebraic notation (e.g., "e4") into a Square.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("invalid square: %s", s)
	}

	file := int(s[0] - 'a')
	rank := int(s[1] - '1')

	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return NoSquare, fmt.Errorf("invalid square: %s", s)
	}

	return NewSquare(file, rank), nil
}

// IsValid returns true if the square is a valid board square (0-63).
func (sq Square) IsValid() bool {
	return sq < NoSquare
}

// Mirror returns the square reflected through the board's horizontal
// midline (rank r becomes rank 7-r, file unchanged).
func (sq Square) Mirror() Square {
	return sq ^ 56
}

// Direction is a signed offset on square indices. Directions compose by
// addition; multiples of a unit vector are plain integer multiples.
type Direction int

// The eight unit vectors.
const (
	North     Direction = 8
	South     Direction = -North
	East      Direction = 1
	West      Direction = -East
	NorthEast Direction = North + East
	NorthWest Direction = North + West
	SouthEast Direction = South + East
	SouthWest Direction = South + West
)

// Shift returns the square offset by dir. The result may be NoSquare if
// the offset walks off either end of the board; callers that follow rays
// must check IsValid after every step.
func (sq Square) Shift(dir Direction) Square {
	i := int(sq) + int(dir)
	if i < 0 || i >= SquareCount {
		return NoSquare
	}
	return Square(i)
}

// Sub returns the direction from origin to sq.
func (sq Square) Sub(origin Square) Direction {
	return Direction(int(sq) - int(origin))
}
