package board

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/daystram/chessboard/position"
)

var (
	drawLabel     = color.New(color.Bold)
	drawCellLight = color.New(color.FgBlack, color.BgHiWhite)
	drawCellDark  = color.New(color.FgBlack, color.BgGreen)
)

// Dump renders the board as plain text, row 1 at the top.
func (b *Board) Dump() string {
	builder := strings.Builder{}
	for row := 1; row <= Height; row++ {
		_, _ = builder.WriteString("   +---+---+---+---+---+---+---+---+\n")
		_, _ = builder.WriteString(fmt.Sprintf(" %d |", row))
		for col := 1; col <= Width; col++ {
			p := b.cells[position.Pos{Row: row, Col: col}.Index()]
			sym := p.Kind.SymbolFEN(p.Side)
			if p.IsEmpty() {
				sym = " "
			}
			_, _ = builder.WriteString(fmt.Sprintf(" %s |", sym))
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("   +---+---+---+---+---+---+---+---+\n   ")
	for col := 1; col <= Width; col++ {
		_, _ = builder.WriteString(fmt.Sprintf("  %s ", position.NotationComponentCol(col)))
	}
	return builder.String()
}

// Draw renders the board with coloured cells. Colour output follows
// color.NoColor, so it degrades to plain glyphs when stdout is not a
// terminal.
func (b *Board) Draw() string {
	builder := strings.Builder{}
	for row := 1; row <= Height; row++ {
		_, _ = builder.WriteString(drawLabel.Sprintf(" %d ", row))
		for col := 1; col <= Width; col++ {
			p := b.cells[position.Pos{Row: row, Col: col}.Index()]
			sym := p.Kind.SymbolUnicode(p.Side)
			if p.IsEmpty() {
				sym = " "
			}
			cell := drawCellDark
			if row%2 == col%2 {
				cell = drawCellLight
			}
			_, _ = builder.WriteString(cell.Sprintf(" %s ", sym))
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("   ")
	for col := 1; col <= Width; col++ {
		_, _ = builder.WriteString(drawLabel.Sprintf(" %s ", position.NotationComponentCol(col)))
	}
	return builder.String()
}
