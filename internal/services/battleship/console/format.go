package console

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/louisbranch/battleship/internal/services/battleship/domain/grid"
)

const (
	frameWidth = 50
	boardWidth = 41
)

var cellSymbols = map[grid.Cell]string{
	grid.CellEmpty: " ",
	grid.CellShip:  "⛴",
	grid.CellHit:   "💥",
	grid.CellMiss:  "💨",
}

// Symbol returns the display symbol for a cell state.
func Symbol(c grid.Cell) string {
	if s, ok := cellSymbols[c]; ok {
		return s
	}
	return "?"
}

// center pads s with spaces to width, extra space going right.
func center(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	left := (width - n) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-n-left)
}

func writeFrameTitle(w io.Writer, title string) {
	rule := strings.Repeat("=", frameWidth)
	fmt.Fprintf(w, "\n%s\n║%s║\n%s\n", rule, center(title, frameWidth-2), rule)
}

func writeBoard(w io.Writer, title string, cells grid.Cells) {
	rule := strings.Repeat("=", boardWidth)
	fmt.Fprintf(w, "\n%s\n", rule)
	if title != "" {
		fmt.Fprintf(w, "%s\n%s\n", center(title, boardWidth), rule)
	}

	var b strings.Builder
	b.WriteString("   ")
	for col := range grid.Size {
		fmt.Fprintf(&b, "  %s ", grid.ColumnLabel(col))
	}
	separator := "   +" + strings.Repeat("---+", grid.Size)
	b.WriteString("\n" + separator + "\n")
	for row := range grid.Size {
		fmt.Fprintf(&b, " %d |", row)
		for col := range grid.Size {
			fmt.Fprintf(&b, " %s |", Symbol(cells[row][col]))
		}
		b.WriteString("\n" + separator + "\n")
	}
	io.WriteString(w, b.String())
}
