// Chess - a chess game with a GUI front end over a small rules engine.
package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/guidanoli/chess/internal/ui"
)

func main() {
	game := ui.NewGame()

	ebiten.SetWindowSize(ui.ScreenWidth, ui.ScreenHeight)
	ebiten.SetWindowTitle("Chess")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
