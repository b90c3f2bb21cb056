package blockfall

import (
	"fmt"
	"os"
	"strings"

	"github.com/isaacjstriker/blockfall/internal/engine"
)

// Two-character glyphs per color tag for terminals without color.
var asciiCells = map[engine.Cell]string{
	"cyan":   "##",
	"yellow": "@@",
	"purple": "**",
	"green":  "%%",
	"red":    "&&",
	"blue":   "++",
	"orange": "==",
}

// ANSI background blocks per color tag.
var colorCells = map[engine.Cell]string{
	"cyan":   "\033[46m  \033[0m",
	"yellow": "\033[43m  \033[0m",
	"purple": "\033[45m  \033[0m",
	"green":  "\033[42m  \033[0m",
	"red":    "\033[41m  \033[0m",
	"blue":   "\033[44m  \033[0m",
	"orange": "\033[101m  \033[0m",
}

func (g *Game) useColor() bool {
	switch g.tunables.ColorMode {
	case "always":
		return true
	case "never":
		return false
	}
	term := os.Getenv("TERM")
	return term != "" && term != "dumb"
}

func (g *Game) cellGlyph(c engine.Cell, empty string) string {
	if c == engine.Empty {
		return empty
	}
	if g.useColor() {
		if glyph, ok := colorCells[c]; ok {
			return glyph
		}
	}
	if glyph, ok := asciiCells[c]; ok {
		return glyph
	}
	return "??"
}

// render draws one state snapshot. The snapshot is a plain value; the
// renderer reads it and feeds nothing back into the game.
func (g *Game) render(s engine.State) {
	fmt.Print("\033[2J\033[H")

	fmt.Printf("BLOCKFALL | Score: %d | Best: %d | Level: %d\n", s.Score, s.Highscore, s.Level)
	fmt.Println(strings.Repeat("═", engine.GridWidth*2+2))

	empty := "  "
	if !g.useColor() {
		empty = ".."
	}

	// board plus the falling piece overlaid on rows that are in view
	display := s.Board
	for _, c := range s.Current.Cells() {
		if c.Y >= 0 && c.Y < engine.GridHeight && c.X >= 0 && c.X < engine.GridWidth {
			display[c.Y][c.X] = s.Current.Color()
		}
	}

	for row := 0; row < engine.GridHeight; row++ {
		fmt.Print("║")
		for col := 0; col < engine.GridWidth; col++ {
			fmt.Print(g.cellGlyph(display[row][col], empty))
		}
		fmt.Println("║")
	}
	fmt.Println("╚" + strings.Repeat("═", engine.GridWidth*2) + "╝")

	if g.tunables.ShowPreview {
		g.renderPreview(s.Next)
	}

	if s.Ended {
		fmt.Println("\n*** GAME OVER *** Press R to restart or Q to quit.")
	} else {
		fmt.Println("\nControls: A/D=Move, S=Drop, W=Rotate, R=Restart, Q=Quit")
	}
}

func (g *Game) renderPreview(next engine.Piece) {
	fmt.Println("\nNext Piece:")
	matrix := next.Matrix()
	for _, row := range matrix {
		line := "  "
		blank := true
		for _, cell := range row {
			if cell == 0 {
				line += "  "
				continue
			}
			line += g.cellGlyph(next.Color(), "  ")
			blank = false
		}
		if !blank {
			fmt.Println(line)
		}
	}
}
