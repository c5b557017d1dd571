package board

import (
	"errors"
	"fmt"

	"github.com/daystram/chessboard/position"
)

var ErrInvalidDocument = errors.New("invalid document")

// Document is the node tree a board renders itself into for persistence. It
// holds both side identities and every cell, so decoding it restores the
// board exactly.
type Document struct {
	Sides []SideDocument `json:"sides"`
	Cells []CellDocument `json:"cells"`
}

type SideDocument struct {
	Side string `json:"side"`
}

type CellDocument struct {
	Row      int    `json:"row"`
	Col      int    `json:"col"`
	Notation string `json:"notation,omitempty"`
	Kind     string `json:"kind"`
	Side     string `json:"side,omitempty"`
}

func (s Side) MarshalDocument() SideDocument {
	return SideDocument{Side: s.String()}
}

func UnmarshalSideDocument(d SideDocument) (Side, error) {
	s, err := ParseSide(d.Side)
	if err != nil {
		return SideUnknown, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	return s, nil
}

func (c Cell) MarshalDocument() CellDocument {
	d := CellDocument{
		Row:      c.Pos.Row,
		Col:      c.Pos.Col,
		Notation: c.Pos.Notation(),
		Kind:     KindEmpty.String(),
	}
	if !c.IsEmpty() {
		d.Kind = c.Piece.Kind.String()
		d.Side = c.Piece.Side.String()
	}
	return d
}

func UnmarshalCellDocument(d CellDocument) (Cell, error) {
	p, err := position.New(d.Row, d.Col)
	if err != nil {
		return Cell{}, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if d.Notation != "" && d.Notation != p.Notation() {
		return Cell{}, fmt.Errorf("%w: notation %q does not match row=%d col=%d", ErrInvalidDocument, d.Notation, d.Row, d.Col)
	}
	k, err := ParseKind(d.Kind)
	if err != nil {
		return Cell{}, fmt.Errorf("%w: %s: %v", ErrInvalidDocument, p, err)
	}
	if k == KindEmpty {
		return Cell{Pos: p}, nil
	}
	s, err := ParseSide(d.Side)
	if err != nil {
		return Cell{}, fmt.Errorf("%w: %s: %v", ErrInvalidDocument, p, err)
	}
	return Cell{Pos: p, Piece: Piece{Kind: k, Side: s}}, nil
}

func (b *Board) MarshalDocument() Document {
	d := Document{
		Sides: make([]SideDocument, 0, len(Sides)),
		Cells: make([]CellDocument, 0, TotalCells),
	}
	for _, s := range Sides {
		d.Sides = append(d.Sides, s.MarshalDocument())
	}
	for _, c := range b.Cells() {
		d.Cells = append(d.Cells, c.MarshalDocument())
	}
	return d
}

// UnmarshalDocument replaces the board contents with d. The board is only
// modified when the whole document is valid.
func (b *Board) UnmarshalDocument(d Document) error {
	if len(d.Sides) != len(Sides) {
		return fmt.Errorf("%w: want %d sides, got %d", ErrInvalidDocument, len(Sides), len(d.Sides))
	}
	for i, sd := range d.Sides {
		s, err := UnmarshalSideDocument(sd)
		if err != nil {
			return err
		}
		if s != Sides[i] {
			return fmt.Errorf("%w: side %d is %s, want %s", ErrInvalidDocument, i, s, Sides[i])
		}
	}

	if len(d.Cells) != TotalCells {
		return fmt.Errorf("%w: want %d cells, got %d", ErrInvalidDocument, TotalCells, len(d.Cells))
	}
	var (
		cells [TotalCells]Piece
		seen  [TotalCells]bool
	)
	for _, cd := range d.Cells {
		c, err := UnmarshalCellDocument(cd)
		if err != nil {
			return err
		}
		i := c.Pos.Index()
		if seen[i] {
			return fmt.Errorf("%w: duplicate cell %s", ErrInvalidDocument, c.Pos)
		}
		seen[i] = true
		cells[i] = c.Piece
	}

	b.cells = cells
	return nil
}
