package ui

import (
	"bytes"
	"embed"
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/guidanoli/chess/internal/game"
)

//go:embed assets/pieces/*.svg
var pieceAssets embed.FS

// SpriteManager manages piece sprites.
type SpriteManager struct {
	pieces      map[game.Piece]*ebiten.Image
	size        int     // Display size in pixels
	renderScale float64 // Render at higher resolution for quality
}

// NewSpriteManager creates a new sprite manager with pieces of the given size.
func NewSpriteManager(size int) *SpriteManager {
	sm := &SpriteManager{
		pieces:      make(map[game.Piece]*ebiten.Image),
		size:        size,
		renderScale: 3.0, // Render at 3x resolution for sharp scaling
	}
	sm.loadPieces()
	return sm
}

// pieceFiles maps pieces to their asset file paths.
var pieceFiles = map[game.Piece]string{
	game.NewPiece(game.Pawn, game.White):   "assets/pieces/wP.svg",
	game.NewPiece(game.Knight, game.White): "assets/pieces/wN.svg",
	game.NewPiece(game.Bishop, game.White): "assets/pieces/wB.svg",
	game.NewPiece(game.Rook, game.White):   "assets/pieces/wR.svg",
	game.NewPiece(game.Queen, game.White):  "assets/pieces/wQ.svg",
	game.NewPiece(game.King, game.White):   "assets/pieces/wK.svg",
	game.NewPiece(game.Pawn, game.Black):   "assets/pieces/bP.svg",
	game.NewPiece(game.Knight, game.Black): "assets/pieces/bN.svg",
	game.NewPiece(game.Bishop, game.Black): "assets/pieces/bB.svg",
	game.NewPiece(game.Rook, game.Black):   "assets/pieces/bR.svg",
	game.NewPiece(game.Queen, game.Black):  "assets/pieces/bQ.svg",
	game.NewPiece(game.King, game.Black):   "assets/pieces/bK.svg",
}

// loadPieces loads all piece sprites from embedded SVG files.
func (sm *SpriteManager) loadPieces() {
	renderSize := int(float64(sm.size) * sm.renderScale)

	for piece, path := range pieceFiles {
		data, err := pieceAssets.ReadFile(path)
		if err != nil {
			log.Printf("Failed to read piece asset %s: %v", path, err)
			continue
		}

		icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
		if err != nil {
			log.Printf("Failed to parse SVG %s: %v", path, err)
			continue
		}

		icon.SetTarget(0, 0, float64(renderSize), float64(renderSize))

		rgba := image.NewRGBA(image.Rect(0, 0, renderSize, renderSize))
		scanner := rasterx.NewScannerGV(renderSize, renderSize, rgba, rgba.Bounds())
		raster := rasterx.NewDasher(renderSize, renderSize, scanner)
		icon.Draw(raster, 1.0)

		sm.pieces[piece] = ebiten.NewImageFromImage(rgba)
	}
}

// GetPiece returns the sprite for a piece.
func (sm *SpriteManager) GetPiece(p game.Piece) *ebiten.Image {
	return sm.pieces[p]
}

// DrawPieceAt draws a piece at the given pixel coordinates.
func (sm *SpriteManager) DrawPieceAt(screen *ebiten.Image, p game.Piece, x, y int) {
	if p.IsEmpty() {
		return
	}
	sprite := sm.GetPiece(p)
	if sprite == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	// Scale down from render resolution to display size
	scale := 1.0 / sm.renderScale
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(x), float64(y))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(sprite, op)
}

// Size returns the size of piece sprites.
func (sm *SpriteManager) Size() int {
	return sm.size
}
