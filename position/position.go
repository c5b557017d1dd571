package position

import (
	"errors"
	"fmt"
)

const (
	// MaxComponentScalar is the maximum component scalar the position system supports.
	MaxComponentScalar = 8

	// TotalCells is the number of on-board positions.
	TotalCells = MaxComponentScalar * MaxComponentScalar
)

var (
	// ErrInvalidNotation represents an invalid notation error.
	ErrInvalidNotation = errors.New("invalid notation")

	// ErrInvalidCoordinate represents a row or column outside [1, 8].
	ErrInvalidCoordinate = errors.New("invalid coordinate")
)

// Pos addresses a cell by 1-based row and column. Row 1 is Black's home rank
// and row 8 is White's; the notation rank digit is the row itself.
//
// A Pos produced by neighbour arithmetic may lie off the board, check Valid
// before using it as a lookup key.
type Pos struct {
	Row, Col int
}

func New(row, col int) (Pos, error) {
	p := Pos{Row: row, Col: col}
	if !p.Valid() {
		return Pos{}, fmt.Errorf("%w: row=%d col=%d", ErrInvalidCoordinate, row, col)
	}
	return p, nil
}

func NewPosFromNotation(n string) (Pos, error) {
	if len(n) != 2 {
		return Pos{}, fmt.Errorf("%w: %q", ErrInvalidNotation, n)
	}
	col, err := notationToCol(n[0])
	if err != nil {
		return Pos{}, fmt.Errorf("%w: %q", err, n)
	}
	row, err := notationToRow(n[1])
	if err != nil {
		return Pos{}, fmt.Errorf("%w: %q", err, n)
	}
	return Pos{Row: row, Col: col}, nil
}

// FromIndex is the inverse of Index.
func FromIndex(i int) (Pos, error) {
	if i < 0 || i >= TotalCells {
		return Pos{}, fmt.Errorf("%w: index=%d", ErrInvalidCoordinate, i)
	}
	return Pos{Row: i/MaxComponentScalar + 1, Col: i%MaxComponentScalar + 1}, nil
}

// All returns every on-board position, row 1 to 8 and column 1 to 8 within
// each row.
func All() []Pos {
	ps := make([]Pos, 0, TotalCells)
	for row := 1; row <= MaxComponentScalar; row++ {
		for col := 1; col <= MaxComponentScalar; col++ {
			ps = append(ps, Pos{Row: row, Col: col})
		}
	}
	return ps
}

func (p Pos) String() string {
	return p.Notation()
}

func (p Pos) Valid() bool {
	return 1 <= p.Row && p.Row <= MaxComponentScalar && 1 <= p.Col && p.Col <= MaxComponentScalar
}

// Index maps a valid position onto 0..63, row-major from row 1.
func (p Pos) Index() int {
	return (p.Row-1)*MaxComponentScalar + (p.Col - 1)
}

func (p Pos) Notation() string {
	if !p.Valid() {
		return ""
	}
	return NotationComponentCol(p.Col) + NotationComponentRow(p.Row)
}

func (p Pos) Top() Pos         { return Pos{Row: p.Row - 1, Col: p.Col} }
func (p Pos) Bottom() Pos      { return Pos{Row: p.Row + 1, Col: p.Col} }
func (p Pos) Left() Pos        { return Pos{Row: p.Row, Col: p.Col - 1} }
func (p Pos) Right() Pos       { return Pos{Row: p.Row, Col: p.Col + 1} }
func (p Pos) TopLeft() Pos     { return Pos{Row: p.Row - 1, Col: p.Col - 1} }
func (p Pos) TopRight() Pos    { return Pos{Row: p.Row - 1, Col: p.Col + 1} }
func (p Pos) BottomLeft() Pos  { return Pos{Row: p.Row + 1, Col: p.Col - 1} }
func (p Pos) BottomRight() Pos { return Pos{Row: p.Row + 1, Col: p.Col + 1} }

func notationToCol(c byte) (int, error) {
	col := int(c) - 'a' + 1
	if col < 1 || MaxComponentScalar < col {
		return 0, ErrInvalidNotation
	}
	return col, nil
}

func notationToRow(r byte) (int, error) {
	row := int(r) - '0'
	if row < 1 || MaxComponentScalar < row {
		return 0, ErrInvalidNotation
	}
	return row, nil
}

func NotationComponentCol(col int) string {
	if col < 1 || MaxComponentScalar < col {
		return ""
	}
	return string(rune('a' + col - 1))
}

func NotationComponentRow(row int) string {
	if row < 1 || MaxComponentScalar < row {
		return ""
	}
	return string(rune('0' + row))
}
