package board

import (
	"strings"

	"github.com/daystram/chessboard/position"
)

// CastleFiles locates a side's king and the outermost rooks on either side of
// it on the home rank. All files are 1-based; zero means no castling shape.
type CastleFiles struct {
	King, Left, Right int
}

func (c CastleFiles) IsAllowed() bool {
	return c.King != 0
}

// IsStandard reports the e-file king with a- and h-file rooks.
func (c CastleFiles) IsStandard() bool {
	return c.King == 5 && c.Left == 1 && c.Right == Width
}

// Castling returns the castling shape of s's home rank.
func (b *Board) Castling(s Side) CastleFiles {
	row := s.HomeRow()
	if row == 0 {
		return CastleFiles{}
	}
	var c CastleFiles
	for col := 1; col <= Width; col++ {
		p := b.cells[position.Pos{Row: row, Col: col}.Index()]
		if p.Kind == KindKing && p.Side == s {
			c.King = col
		}
	}
	if c.King == 0 {
		return CastleFiles{}
	}
	for col := 1; col <= Width; col++ {
		p := b.cells[position.Pos{Row: row, Col: col}.Index()]
		if p.Kind != KindRook || p.Side != s {
			continue
		}
		if col < c.King && c.Left == 0 {
			c.Left = col
		}
		if col > c.King {
			c.Right = col
		}
	}
	if c.Left == 0 || c.Right == 0 {
		return CastleFiles{}
	}
	return c
}

// castlingField prints the FEN castling field. The standard layout prints as
// KQkq, any other layout uses Shredder file letters, king side first.
func castlingField(b *Board) string {
	var field string
	for _, s := range Sides {
		c := b.Castling(s)
		if !c.IsAllowed() {
			continue
		}
		if c.IsStandard() {
			field += KindKing.SymbolFEN(s) + KindQueen.SymbolFEN(s)
			continue
		}
		letters := position.NotationComponentCol(c.Right) + position.NotationComponentCol(c.Left)
		if s == SideWhite {
			letters = strings.ToUpper(letters)
		}
		field += letters
	}
	if field == "" {
		return "-"
	}
	return field
}
