package board

import (
	"errors"
	"fmt"

	"github.com/daystram/chessboard/position"
)

const (
	Height     = position.MaxComponentScalar
	TotalCells = position.TotalCells
)

var (
	ErrInvalidConfiguration = errors.New("invalid configuration")
	ErrInvalidPiece         = errors.New("invalid piece")
)

// Mode selects how Init lays out the home ranks.
type Mode string

const (
	ModeNormal   Mode = "Normal"
	ModeChess960 Mode = "Chess960"
)

func ParseMode(s string) (Mode, error) {
	m := Mode(s)
	if err := m.validate(); err != nil {
		return "", err
	}
	return m, nil
}

func (m Mode) validate() error {
	switch m {
	case ModeNormal, ModeChess960:
		return nil
	default:
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidConfiguration, string(m))
	}
}

// Cell is a snapshot of one board location. Mutating it does not affect the
// board it was read from.
type Cell struct {
	Pos   position.Pos
	Piece Piece
}

func (c Cell) IsEmpty() bool {
	return c.Piece.IsEmpty()
}

func (c Cell) String() string {
	return c.Pos.Notation()
}

// Board is an 8x8 grid indexed by position.Pos.Index. It is meant to be owned
// by a single goroutine.
type Board struct {
	cells [TotalCells]Piece
	rand  Random
}

type boardConfig struct {
	rand Random
}

type BoardOption func(*boardConfig)

// WithRandom sets the source used by Chess960 initialisation.
func WithRandom(r Random) BoardOption {
	return func(cfg *boardConfig) {
		cfg.rand = r
	}
}

func NewBoard(opts ...BoardOption) *Board {
	cfg := &boardConfig{}
	for _, f := range opts {
		f(cfg)
	}
	if cfg.rand == nil {
		cfg.rand = newTimeSeededRandom()
	}
	return &Board{rand: cfg.rand}
}

// Init replaces every cell with the starting position for mode. On error the
// board is left untouched.
func (b *Board) Init(mode Mode) error {
	if err := mode.validate(); err != nil {
		return err
	}

	var cells [TotalCells]Piece
	for _, s := range Sides {
		var home Rank
		switch mode {
		case ModeChess960:
			home = Chess960Rank(b.rand)
		default:
			home = NormalRank()
		}
		fillRow(&cells, s.HomeRow(), home, s)
		fillRow(&cells, s.PawnRow(), PawnRank(), s)
	}
	b.cells = cells
	return nil
}

func fillRow(cells *[TotalCells]Piece, row int, rank Rank, s Side) {
	for i, k := range rank {
		cells[position.Pos{Row: row, Col: i + 1}.Index()] = Piece{Kind: k, Side: s}
	}
}

// Clear empties every cell.
func (b *Board) Clear() {
	b.cells = [TotalCells]Piece{}
}

func (b *Board) Cell(row, col int) (Cell, error) {
	p, err := position.New(row, col)
	if err != nil {
		return Cell{}, err
	}
	return b.cellAt(p), nil
}

func (b *Board) CellAt(notation string) (Cell, error) {
	p, err := position.NewPosFromNotation(notation)
	if err != nil {
		return Cell{}, err
	}
	return b.cellAt(p), nil
}

// CellAtPos looks up p, failing if it lies off the board.
func (b *Board) CellAtPos(p position.Pos) (Cell, error) {
	if !p.Valid() {
		return Cell{}, fmt.Errorf("%w: row=%d col=%d", position.ErrInvalidCoordinate, p.Row, p.Col)
	}
	return b.cellAt(p), nil
}

func (b *Board) cellAt(p position.Pos) Cell {
	return Cell{Pos: p, Piece: b.cells[p.Index()]}
}

// Cells returns a snapshot of all 64 cells in row-major order.
func (b *Board) Cells() []Cell {
	cells := make([]Cell, 0, TotalCells)
	for _, p := range position.All() {
		cells = append(cells, b.cellAt(p))
	}
	return cells
}

func (b *Board) AllCellNotations() []string {
	ns := make([]string, 0, TotalCells)
	for _, p := range position.All() {
		ns = append(ns, p.Notation())
	}
	return ns
}

// SideCellNotations lists the cells occupied by s, row-major.
func (b *Board) SideCellNotations(s Side) []string {
	var ns []string
	for _, c := range b.Cells() {
		if !c.IsEmpty() && c.Piece.Side == s {
			ns = append(ns, c.Pos.Notation())
		}
	}
	return ns
}

func (b *Board) PlacePiece(p position.Pos, piece Piece) error {
	if !p.Valid() {
		return fmt.Errorf("%w: row=%d col=%d", position.ErrInvalidCoordinate, p.Row, p.Col)
	}
	if err := piece.validate(); err != nil {
		return err
	}
	if piece.IsEmpty() {
		piece = Piece{}
	}
	b.cells[p.Index()] = piece
	return nil
}

func (b *Board) RemovePiece(p position.Pos) error {
	return b.PlacePiece(p, Piece{})
}

func (b *Board) TopCell(c Cell) (Cell, error)         { return b.CellAtPos(c.Pos.Top()) }
func (b *Board) BottomCell(c Cell) (Cell, error)      { return b.CellAtPos(c.Pos.Bottom()) }
func (b *Board) LeftCell(c Cell) (Cell, error)        { return b.CellAtPos(c.Pos.Left()) }
func (b *Board) RightCell(c Cell) (Cell, error)       { return b.CellAtPos(c.Pos.Right()) }
func (b *Board) TopLeftCell(c Cell) (Cell, error)     { return b.CellAtPos(c.Pos.TopLeft()) }
func (b *Board) TopRightCell(c Cell) (Cell, error)    { return b.CellAtPos(c.Pos.TopRight()) }
func (b *Board) BottomLeftCell(c Cell) (Cell, error)  { return b.CellAtPos(c.Pos.BottomLeft()) }
func (b *Board) BottomRightCell(c Cell) (Cell, error) { return b.CellAtPos(c.Pos.BottomRight()) }

// Rank returns the kinds on row, files a..h, along with the side owning the
// first occupied cell (SideUnknown for an empty row).
func (b *Board) Rank(row int) (Rank, Side, error) {
	if row < 1 || row > Height {
		return Rank{}, SideUnknown, fmt.Errorf("%w: row=%d", position.ErrInvalidCoordinate, row)
	}
	var r Rank
	s := SideUnknown
	for col := 1; col <= Width; col++ {
		piece := b.cells[position.Pos{Row: row, Col: col}.Index()]
		r[col-1] = piece.Kind
		if s == SideUnknown && !piece.IsEmpty() {
			s = piece.Side
		}
	}
	return r, s, nil
}

// Clone copies the grid. The random source is shared, so the clone must stay
// on the same goroutine as the original.
func (b *Board) Clone() *Board {
	return &Board{
		cells: b.cells,
		rand:  b.rand,
	}
}

// Equal compares cell contents only.
func (b *Board) Equal(o *Board) bool {
	return b.cells == o.cells
}
