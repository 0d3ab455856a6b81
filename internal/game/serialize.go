package game

import (
	"bufio"
	"fmt"
	"io"
)

// serialVersion is the save format version. Saves written by a different
// version are rejected with ErrIOVersion.
const serialVersion = 1

// Save writes the state in the text save format: version, turn and en
// passant target, then one record per occupied square and a -1 terminator.
// The phase is not serialized; it is recomputed on load.
func (s *State) Save(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, serialVersion)
	fmt.Fprintln(bw, int(s.turn))
	fmt.Fprintln(bw, int(s.enPassant))
	for sq := A1; sq < NoSquare; sq++ {
		p := s.board[sq]
		if p.IsEmpty() {
			continue
		}
		altered := 0
		if s.altered[sq] {
			altered = 1
		}
		fmt.Fprintln(bw, int(sq), int(p.Color), int(p.Kind), altered)
	}
	fmt.Fprintln(bw, -1)
	return bw.Flush()
}

// Load reads a state in the text save format, accepting any run of
// whitespace between fields. On a malformed input it returns the matching
// GameError and leaves the state partially mutated; callers must discard
// it. The phase is left untouched; the Controller recomputes it.
func (s *State) Load(r io.Reader) error {
	br := bufio.NewReader(r)

	var version int
	if _, err := fmt.Fscan(br, &version); err != nil || version != serialVersion {
		return ErrIOVersion
	}

	var turn int
	if _, err := fmt.Fscan(br, &turn); err != nil || turn < 0 || turn > 1 {
		return ErrIOTurn
	}
	s.turn = Color(turn)

	var enpassant int
	if _, err := fmt.Fscan(br, &enpassant); err != nil || !enPassantSquareOK(Square(enpassant)) ||
		enpassant < 0 || enpassant > int(NoSquare) {
		return ErrIOEnPassant
	}
	s.enPassant = Square(enpassant)

	var listed [SquareCount]bool
	for {
		var sq int
		if _, err := fmt.Fscan(br, &sq); err != nil {
			return ErrIOSquare
		}
		if sq == -1 {
			break
		}
		if sq < 0 || sq >= SquareCount {
			return ErrIOSquare
		}
		listed[sq] = true

		var colour int
		if _, err := fmt.Fscan(br, &colour); err != nil || colour < 0 || colour > 1 {
			return ErrIOColour
		}

		var kind int
		if _, err := fmt.Fscan(br, &kind); err != nil ||
			kind <= int(NoPiece) || kind >= int(pieceKindCount) {
			return ErrIOPieceType
		}

		var altered int
		fmt.Fscan(br, &altered)

		s.board[sq] = NewPiece(PieceKind(kind), Color(colour))
		s.altered[sq] = altered != 0
	}

	for sq := A1; sq < NoSquare; sq++ {
		if !listed[sq] {
			s.board.Clear(sq)
			s.altered[sq] = false
		}
	}

	return nil
}
