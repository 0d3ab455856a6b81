// Command cmdchess is the interactive command-line front end: a play
// subprogram driving the rules engine through events, and a state editor
// for crafting arbitrary positions.
package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/guidanoli/chess/internal/game"
	"github.com/guidanoli/chess/internal/storage"
)

var errorMessages = map[error]string{
	game.ErrIllegalPromotion: "Illegal promotion",
	game.ErrIOVersion:        "Incompatible save version",
	game.ErrIOTurn:           "Invalid turn",
	game.ErrIOEnPassant:      "Invalid en passant square",
	game.ErrIOSquare:         "Invalid square",
	game.ErrIOColour:         "Invalid colour",
	game.ErrIOPieceType:      "Invalid piece type",
}

var stdin = bufio.NewReader(os.Stdin)

// cmdListener answers the engine's prompts from stdin.
type cmdListener struct{}

func (cmdListener) PromotePawn(c *game.Controller, sq game.Square) game.PieceKind {
	fmt.Printf("You may promote your pawn on %s to a new type\n", sq)
	kind, ok := readPieceKind()
	if !ok {
		return game.Queen
	}
	return kind
}

func (cmdListener) CatchError(c *game.Controller, err error) {
	msg, ok := errorMessages[err]
	if !ok {
		fmt.Println("Caught unknown error")
		return
	}
	fmt.Println("Error:", msg)
}

func readToken() string {
	var tok string
	fmt.Fscan(stdin, &tok)
	return tok
}

func readInt() (int, bool) {
	var n int
	if _, err := fmt.Fscan(stdin, &n); err != nil {
		if err == io.EOF {
			os.Exit(0)
		}
		// Skip the offending token so the menu loop can go on.
		readToken()
		return 0, false
	}
	return n, true
}

func readSquare() (game.Square, bool) {
	sq, err := game.ParseSquare(strings.ToLower(readToken()))
	if err != nil {
		return game.NoSquare, false
	}
	return sq, true
}

func readPieceKind() (game.PieceKind, bool) {
	fmt.Println("Piece type:")
	fmt.Println("[0] Empty")
	fmt.Println("[1] Pawn")
	fmt.Println("[2] King")
	fmt.Println("[3] Queen")
	fmt.Println("[4] Bishop")
	fmt.Println("[5] Knight")
	fmt.Println("[6] Rook")
	fmt.Print(">>> ")
	n, ok := readInt()
	if !ok || !game.PieceKind(n).IsValid() {
		return game.NoPiece, false
	}
	return game.PieceKind(n), true
}

func readColour() (game.Color, bool) {
	fmt.Println("Colour:")
	fmt.Println("[0] White")
	fmt.Println("[1] Black")
	fmt.Print(">>> ")
	n, ok := readInt()
	if !ok || n < 0 || n > 1 {
		return game.White, false
	}
	return game.Color(n), true
}

func readMove() (game.Move, bool) {
	fmt.Print("Piece at... ")
	origin, ok := readSquare()
	if !ok {
		return game.Move{}, false
	}
	fmt.Print("To... ")
	dest, ok := readSquare()
	if !ok {
		return game.Move{}, false
	}
	return game.NewMove(origin, dest), true
}

func printTurn(c *game.Controller) {
	fmt.Printf("It's the turn of the %s pieces\n",
		strings.ToLower(c.State().Turn().String()))
}

func printBoard(c *game.Controller) {
	fmt.Print(c.State().Board())
}

func saveGame(c *game.Controller) {
	fmt.Print("file = ")
	f, err := os.Create(readToken())
	if err != nil {
		fmt.Println("Error!")
		return
	}
	defer f.Close()
	if err := c.Save(f); err != nil {
		fmt.Println("Error!")
		return
	}
	fmt.Println("Saved!")
}

func loadGame(c *game.Controller) {
	fmt.Print("file = ")
	f, err := os.Open(readToken())
	if err != nil {
		fmt.Println("Error!")
		return
	}
	defer f.Close()
	if err := c.Load(f); err != nil {
		fmt.Println("Error!")
		return
	}
	fmt.Println("Loaded!")
	printBoard(c)
	printTurn(c)
}

// withStore opens the game library just long enough for one operation.
func withStore(fn func(*storage.Store) error) {
	store, err := storage.Open()
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	defer store.Close()
	if err := fn(store); err != nil {
		fmt.Println("Error:", err)
	}
}

func saveToLibrary(c *game.Controller) {
	fmt.Print("name = ")
	name := readToken()
	var sb strings.Builder
	if err := c.Save(&sb); err != nil {
		fmt.Println("Error!")
		return
	}
	withStore(func(store *storage.Store) error {
		if err := store.SaveGame(name, sb.String()); err != nil {
			return err
		}
		fmt.Println("Saved!")
		return nil
	})
}

func loadFromLibrary(c *game.Controller) {
	withStore(func(store *storage.Store) error {
		games, err := store.ListGames()
		if err != nil {
			return err
		}
		if len(games) == 0 {
			fmt.Println("The library is empty")
			return nil
		}
		for _, g := range games {
			fmt.Printf("  %s (%s)\n", g.Name, g.SavedAt.Format(time.DateTime))
		}
		fmt.Print("name = ")
		saved, err := store.LoadGame(readToken())
		if err != nil {
			return err
		}
		if err := c.Load(strings.NewReader(saved.Data)); err != nil {
			return err
		}
		fmt.Println("Loaded!")
		printBoard(c)
		printTurn(c)
		return nil
	})
}

func recordResult(phase game.Phase, started time.Time) {
	winner := "white"
	if phase == game.BlackWon {
		winner = "black"
	}
	withStore(func(store *storage.Store) error {
		return store.RecordResult(winner, time.Since(started))
	})
}

func play() int {
	c := game.NewController(game.NewState(), cmdListener{})
	started := time.Now()
	for c.State().Phase() == game.Running {
		printBoard(c)
		printTurn(c)
	prompt:
		for {
			fmt.Println("Choose an action:")
			fmt.Println("[0] Move")
			fmt.Println("[1] Castle")
			fmt.Println("[6] Save to library")
			fmt.Println("[7] Load from library")
			fmt.Println("[8] Load")
			fmt.Println("[9] Save")
			fmt.Print(">>> ")
			opt, ok := readInt()
			if !ok {
				fmt.Println("Illegal input")
				continue
			}
			switch opt {
			case 0:
				move, ok := readMove()
				if !ok {
					fmt.Println("Illegal input")
					continue
				}
				if c.Update(move) {
					break prompt
				}
				fmt.Println("Invalid move")
			case 1:
				fmt.Print("Rook at... ")
				rook, ok := readSquare()
				if !ok {
					fmt.Println("Illegal input")
					continue
				}
				if c.Update(game.NewCastling(rook)) {
					break prompt
				}
				fmt.Println("Invalid castling")
			case 6:
				saveToLibrary(c)
			case 7:
				loadFromLibrary(c)
				if c.State().Phase() != game.Running {
					break prompt
				}
			case 8:
				loadGame(c)
				if c.State().Phase() != game.Running {
					break prompt
				}
			case 9:
				saveGame(c)
			}
		}
	}

	printBoard(c)
	phase := c.State().Phase()
	if phase == game.WhiteWon {
		fmt.Println("White won!")
	} else {
		fmt.Println("Black won!")
	}
	recordResult(phase, started)
	return 0
}

func editSquare(c *game.Controller) {
	fmt.Print("square = ")
	sq, ok := readSquare()
	if !ok {
		fmt.Println("Illegal square!")
		return
	}
	kind, ok := readPieceKind()
	if !ok {
		fmt.Println("Illegal piece type!")
		return
	}
	if kind == game.NoPiece {
		c.State().ClearSquare(sq)
		return
	}
	colour, ok := readColour()
	if !ok {
		fmt.Println("Illegal colour!")
		return
	}
	c.State().SetPiece(sq, game.NewPiece(kind, colour))
	c.State().ClearEnPassant()
}

func createGameState() int {
	c := game.NewController(game.NewState(), cmdListener{})
	for {
		printBoard(c)
		fmt.Println("Choose an action:")
		fmt.Println("[0] Exit")
		fmt.Println("[1] Save")
		fmt.Println("[2] Load")
		fmt.Println("[3] Edit square")
		fmt.Println("[4] Next turn")
		fmt.Println("[5] Clear board")
		fmt.Println("[6] Mark square altered")
		fmt.Print(">>> ")
		opt, ok := readInt()
		if !ok {
			continue
		}
		switch opt {
		case 0:
			return 0
		case 1:
			saveGame(c)
		case 2:
			loadGame(c)
		case 3:
			editSquare(c)
		case 4:
			c.State().NextTurn()
			printTurn(c)
		case 5:
			for sq := game.A1; sq < game.NoSquare; sq++ {
				c.State().ClearSquare(sq)
			}
		case 6:
			fmt.Print("square = ")
			sq, ok := readSquare()
			if !ok {
				fmt.Println("Illegal square!")
				continue
			}
			c.State().SetAltered(sq, true)
		default:
			return 1
		}
	}
}

func main() {
	log.SetFlags(0)

	fmt.Println("Choose a subprogram:")
	fmt.Println("[0] Play")
	fmt.Println("[1] Create game state")
	fmt.Print(">>> ")
	opt, ok := readInt()
	if !ok {
		os.Exit(1)
	}
	switch opt {
	case 0:
		os.Exit(play())
	case 1:
		os.Exit(createGameState())
	default:
		os.Exit(1)
	}
}
