package ui

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/guidanoli/chess/internal/game"
	"github.com/guidanoli/chess/internal/storage"
)

// UI constants
const (
	ScreenWidth  = 960
	ScreenHeight = 640
	BoardSize    = 640
	SquareSize   = BoardSize / 8
	PanelWidth   = ScreenWidth - BoardSize
)

// quickSaveSlot is the library name used by the F5/F9 shortcuts.
const quickSaveSlot = "quicksave"

// Game implements the ebiten.Game interface around a rules-engine
// controller. Moves are submitted by clicking the origin and destination
// squares; clicking one's own rook while the king is selected attempts a
// castling.
type Game struct {
	controller *game.Controller
	renderer   *Renderer
	input      *InputHandler
	store      *storage.Store

	selected    game.Square
	promoChoice game.PieceKind

	status   string
	statusAt time.Time

	started  time.Time
	recorded bool
}

// NewGame creates the GUI game around a fresh match.
func NewGame() *Game {
	g := &Game{
		renderer:    NewRenderer(BoardSize, SquareSize),
		input:       NewInputHandler(),
		selected:    game.NoSquare,
		promoChoice: game.Queen,
		started:     time.Now(),
	}
	g.controller = game.NewController(game.NewState(), &uiListener{game: g})

	store, err := storage.Open()
	if err != nil {
		log.Printf("Game library unavailable: %v", err)
	} else {
		g.store = store
	}
	return g
}

// uiListener surfaces engine callbacks in the GUI: promotions use the
// piece kind picked with the number keys, errors land on the status line.
type uiListener struct {
	game *Game
}

func (l *uiListener) PromotePawn(c *game.Controller, sq game.Square) game.PieceKind {
	l.game.setStatus(fmt.Sprintf("Pawn on %s promoted to %s", sq, l.game.promoChoice))
	return l.game.promoChoice
}

func (l *uiListener) CatchError(c *game.Controller, err error) {
	l.game.setStatus("Error: " + err.Error())
}

func (g *Game) setStatus(s string) {
	g.status = s
	g.statusAt = time.Now()
}

// Update handles one frame of input. Part of ebiten.Game.
func (g *Game) Update() error {
	g.input.Update()

	g.handleKeys()

	if g.input.IsLeftJustPressed() {
		x, y := g.input.MousePosition()
		if sq := g.renderer.ScreenToSquare(x, y); sq.IsValid() {
			g.handleClick(sq)
		}
	}

	g.maybeRecordResult()

	return nil
}

func (g *Game) handleKeys() {
	switch {
	case IsKeyJustPressed(ebiten.KeyDigit1):
		g.setPromoChoice(game.Queen)
	case IsKeyJustPressed(ebiten.KeyDigit2):
		g.setPromoChoice(game.Rook)
	case IsKeyJustPressed(ebiten.KeyDigit3):
		g.setPromoChoice(game.Bishop)
	case IsKeyJustPressed(ebiten.KeyDigit4):
		g.setPromoChoice(game.Knight)
	case IsKeyJustPressed(ebiten.KeyF2):
		g.reset()
		g.setStatus("New game")
	case IsKeyJustPressed(ebiten.KeyF5):
		g.quickSave()
	case IsKeyJustPressed(ebiten.KeyF9):
		g.quickLoad()
	}
}

func (g *Game) setPromoChoice(kind game.PieceKind) {
	g.promoChoice = kind
	g.setStatus("Promoting to " + kind.String())
}

// handleClick selects one's own pieces and submits events. A click on the
// player's rook while their king is selected tries castling first and
// falls back to reselecting the rook.
func (g *Game) handleClick(sq game.Square) {
	state := g.controller.State()
	clicked := state.Board().PieceAt(sq)

	if g.selected == game.NoSquare {
		if !clicked.IsEmpty() && clicked.Color == state.Turn() {
			g.selected = sq
		}
		return
	}

	origin := g.selected
	g.selected = game.NoSquare

	originPiece := state.Board().PieceAt(origin)
	if originPiece.Kind == game.King && clicked.Kind == game.Rook &&
		clicked.Color == originPiece.Color {
		if g.controller.Update(game.NewCastling(sq)) {
			return
		}
	}

	if g.controller.Update(game.NewMove(origin, sq)) {
		return
	}

	// Rejected: allow switching the selection in one click.
	if !clicked.IsEmpty() && clicked.Color == state.Turn() {
		g.selected = sq
	}
}

func (g *Game) reset() {
	g.controller = game.NewController(game.NewState(), &uiListener{game: g})
	g.selected = game.NoSquare
	g.started = time.Now()
	g.recorded = false
}

func (g *Game) quickSave() {
	if g.store == nil {
		g.setStatus("Game library unavailable")
		return
	}
	var sb strings.Builder
	if err := g.controller.Save(&sb); err != nil {
		g.setStatus("Save failed: " + err.Error())
		return
	}
	if err := g.store.SaveGame(quickSaveSlot, sb.String()); err != nil {
		g.setStatus("Save failed: " + err.Error())
		return
	}
	g.setStatus("Game saved")
}

func (g *Game) quickLoad() {
	if g.store == nil {
		g.setStatus("Game library unavailable")
		return
	}
	saved, err := g.store.LoadGame(quickSaveSlot)
	if err != nil {
		g.setStatus("Load failed: " + err.Error())
		return
	}
	g.reset()
	if err := g.controller.Load(strings.NewReader(saved.Data)); err != nil {
		// The state is partially mutated; throw it away.
		g.reset()
		g.setStatus("Load failed: " + err.Error())
		return
	}
	g.setStatus("Game loaded")
}

// maybeRecordResult stores the outcome in the library statistics once per
// finished game.
func (g *Game) maybeRecordResult() {
	phase := g.controller.State().Phase()
	if g.recorded || g.store == nil || phase == game.Running {
		return
	}
	winner := "white"
	if phase == game.BlackWon {
		winner = "black"
	}
	if err := g.store.RecordResult(winner, time.Since(g.started)); err != nil {
		log.Printf("Failed to record result: %v", err)
	}
	g.recorded = true
}

// Draw renders the board and the side panel. Part of ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	theme := g.renderer.Theme()
	vector.DrawFilledRect(screen, 0, 0, ScreenWidth, ScreenHeight, theme.Background, false)

	g.renderer.DrawBoard(screen)
	if g.selected != game.NoSquare {
		g.renderer.HighlightSquare(screen, g.selected, theme.SelectedSquare)
	}
	g.renderer.DrawPieces(screen, g.controller.State().Board())

	g.drawPanel(screen)
}

func (g *Game) drawPanel(screen *ebiten.Image) {
	theme := g.renderer.Theme()
	x := BoardSize + 20
	y := 30

	g.drawText(screen, GetBoldFace(), "Chess", x, y)
	y += 40

	state := g.controller.State()
	switch state.Phase() {
	case game.WhiteWon:
		g.drawText(screen, GetBoldFace(), "White won!", x, y)
	case game.BlackWon:
		g.drawText(screen, GetBoldFace(), "Black won!", x, y)
	default:
		g.drawText(screen, GetRegularFace(),
			fmt.Sprintf("%s to move", state.Turn()), x, y)
	}
	y += 30

	if state.HasEnPassant() {
		g.drawText(screen, GetRegularFace(),
			"En passant on "+state.EnPassant().String(), x, y)
	}
	y += 40

	g.drawText(screen, GetRegularFace(),
		"Promotion: "+g.promoChoice.String(), x, y)
	y += 40

	for _, line := range []string{
		"Click a piece, then its destination.",
		"King then rook castles.",
		"",
		"[1-4]  promotion piece",
		"[F2]   new game",
		"[F5]   save  [F9] load",
	} {
		g.drawText(screen, GetRegularFace(), line, x, y)
		y += 20
	}

	if g.status != "" && time.Since(g.statusAt) < 5*time.Second {
		g.drawText(screen, GetRegularFace(), g.status, x, ScreenHeight-40)
	}
}

func (g *Game) drawText(screen *ebiten.Image, face *text.GoTextFace, s string, x, y int) {
	if face == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(g.renderer.Theme().TextColor)
	text.Draw(screen, s, face, op)
}

// Layout returns the logical screen size. Part of ebiten.Game.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}
