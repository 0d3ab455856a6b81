package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/guidanoli/chess/internal/game"
)

// Theme defines the color scheme for the board.
type Theme struct {
	LightSquare    color.RGBA
	DarkSquare     color.RGBA
	SelectedSquare color.RGBA
	CastleSquare   color.RGBA
	Background     color.RGBA
	TextColor      color.RGBA
}

// DefaultTheme returns the default color theme.
func DefaultTheme() *Theme {
	return &Theme{
		LightSquare:    color.RGBA{240, 217, 181, 255}, // Tan
		DarkSquare:     color.RGBA{181, 136, 99, 255},  // Brown
		SelectedSquare: color.RGBA{247, 247, 105, 180}, // Yellow highlight
		CastleSquare:   color.RGBA{130, 151, 105, 200}, // Green
		Background:     color.RGBA{40, 44, 52, 255},    // Dark gray
		TextColor:      color.RGBA{220, 220, 220, 255}, // Light gray
	}
}

// Renderer handles all drawing operations.
type Renderer struct {
	sprites    *SpriteManager
	theme      *Theme
	boardSize  int
	squareSize int
}

// NewRenderer creates a new renderer.
func NewRenderer(boardSize, squareSize int) *Renderer {
	return &Renderer{
		sprites:    NewSpriteManager(squareSize),
		theme:      DefaultTheme(),
		boardSize:  boardSize,
		squareSize: squareSize,
	}
}

// DrawBoard draws the chess board squares.
func (r *Renderer) DrawBoard(screen *ebiten.Image) {
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			x := float32(file * r.squareSize)
			y := float32((7 - rank) * r.squareSize) // Flip so rank 1 is at bottom

			var c color.RGBA
			if (rank+file)%2 == 0 {
				c = r.theme.DarkSquare
			} else {
				c = r.theme.LightSquare
			}

			vector.DrawFilledRect(screen, x, y,
				float32(r.squareSize), float32(r.squareSize), c, false)
		}
	}
}

// HighlightSquare draws a colored overlay on a square.
func (r *Renderer) HighlightSquare(screen *ebiten.Image, sq game.Square, c color.RGBA) {
	if !sq.IsValid() {
		return
	}
	x, y := r.SquareToScreen(sq)
	vector.DrawFilledRect(screen, float32(x), float32(y),
		float32(r.squareSize), float32(r.squareSize), c, false)
}

// DrawPieces draws all pieces on the board.
func (r *Renderer) DrawPieces(screen *ebiten.Image, b *game.Board) {
	for sq := game.A1; sq < game.NoSquare; sq++ {
		p := b.PieceAt(sq)
		if p.IsEmpty() {
			continue
		}
		x, y := r.SquareToScreen(sq)
		r.sprites.DrawPieceAt(screen, p, x, y)
	}
}

// SquareToScreen converts a board square to screen coordinates.
func (r *Renderer) SquareToScreen(sq game.Square) (int, int) {
	x := sq.File() * r.squareSize
	y := (7 - sq.Rank()) * r.squareSize // Flip so rank 1 is at bottom
	return x, y
}

// ScreenToSquare converts screen coordinates to a board square.
func (r *Renderer) ScreenToSquare(x, y int) game.Square {
	if x < 0 || x >= r.boardSize || y < 0 || y >= r.boardSize {
		return game.NoSquare
	}
	file := x / r.squareSize
	rank := 7 - (y / r.squareSize)
	return game.NewSquare(file, rank)
}

// Theme returns the current theme.
func (r *Renderer) Theme() *Theme {
	return r.theme
}
