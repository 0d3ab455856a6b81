package game

import "io"

// Controller owns a State and advances it with player events. It runs
// the full legality pipeline: event validation, self-check simulation,
// application, promotion, turn switching and win detection.
//
// A Controller is single-threaded; concurrent use is undefined. Distinct
// Controllers share nothing and may live on different goroutines.
type Controller struct {
	state    *State
	listener Listener
}

// NewController creates a controller over the given state. A nil listener
// is replaced with one that silently promotes to Queen.
func NewController(state *State, listener Listener) *Controller {
	if listener == nil {
		listener = silentListener{}
	}
	return &Controller{state: state, listener: listener}
}

// State returns the controlled state.
func (c *Controller) State() *State {
	return c.state
}

// Update validates the event and, if legal, applies it: the en passant
// window closes unless the event just opened one, a reached back-rank
// pawn is promoted through the listener, the turn passes, and the new
// side to move is scanned for available moves. Returns false if the
// event was rejected; the state is then untouched.
func (c *Controller) Update(e Event) bool {
	if !c.canUpdate(e) {
		return false
	}

	epBefore := c.state.EnPassant()

	e.Apply(c.state)

	if c.state.EnPassant() == epBefore {
		c.state.ClearEnPassant()
	}

	c.lookForPromotion()

	c.state.NextTurn()

	c.lookForCheckmate()

	return true
}

// canUpdate is the pipeline's pure front: the game must be running, the
// event valid, and the mover must not end up in check.
func (c *Controller) canUpdate(e Event) bool {
	if c.state.Phase() != Running {
		return false
	}
	if !e.IsValid(c.state) {
		return false
	}
	return !c.wouldCauseCheck(e)
}

// wouldCauseCheck applies the event to a clone and tests whether the
// mover's king is attacked afterwards. The clone gets a silent listener
// and is discarded with all its mutations.
func (c *Controller) wouldCauseCheck(e Event) bool {
	sim := NewController(c.state.Clone(), nil)
	e.Apply(sim.state)
	mover := sim.state.Turn()
	sim.state.NextTurn()
	return sim.inCheck(mover)
}

// inCheck reports whether the king of colour col is attacked. The state's
// side to move must be the potential attacker; every square is probed for
// a piece that could capture the king from there.
func (c *Controller) inCheck(col Color) bool {
	kingSq, ok := c.state.board.Find(King, col)
	if !ok {
		panic("game: no king on the board")
	}
	for sq := A1; sq < NoSquare; sq++ {
		if NewMove(sq, kingSq).isValidCheck(c.state) {
			return true
		}
	}
	return false
}

// lookForPromotion scans the back rank of the side that just moved for a
// pawn and asks the listener for its new kind until an acceptable one is
// returned. At most one pawn can be there: the move that just applied.
func (c *Controller) lookForPromotion() {
	lastRank := 7
	if c.state.Turn() == Black {
		lastRank = 0
	}
	for f := 0; f < 8; f++ {
		sq := NewSquare(f, lastRank)
		p := c.state.board.PieceAt(sq)
		if p.Kind != Pawn || p.Color != c.state.Turn() {
			continue
		}
		var kind PieceKind
		for {
			kind = c.listener.PromotePawn(c, sq)
			if kind != NoPiece && kind != Pawn && kind != King {
				break
			}
			c.raiseError(ErrIllegalPromotion)
		}
		c.state.board.SetPiece(sq, NewPiece(kind, p.Color))
		return
	}
}

// lookForCheckmate tries every move of the side to move; if none passes
// the pipeline, that side has lost. Stalemate is not told apart from
// checkmate: a side with no moves loses either way.
func (c *Controller) lookForCheckmate() {
	col := c.state.Turn()
	for origin := A1; origin < NoSquare; origin++ {
		if c.state.board[origin].Color != col {
			continue
		}
		for dest := A1; dest < NoSquare; dest++ {
			if c.canUpdate(NewMove(origin, dest)) {
				return
			}
		}
	}
	if col == White {
		c.state.SetPhase(BlackWon)
	} else {
		c.state.SetPhase(WhiteWon)
	}
}

// Save writes the state to w in the text save format.
func (c *Controller) Save(w io.Writer) error {
	return c.state.Save(w)
}

// Load reads a state from r. A malformed input is reported both through
// the returned error and the listener, and leaves the state partially
// mutated; discard it. On success the phase is recomputed by scanning the
// loaded side to move for available moves.
func (c *Controller) Load(r io.Reader) error {
	if err := c.state.Load(r); err != nil {
		c.raiseError(err)
		return err
	}
	c.lookForCheckmate()
	return nil
}

func (c *Controller) raiseError(err error) {
	c.listener.CatchError(c, err)
}
