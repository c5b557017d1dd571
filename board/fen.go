package board

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/daystram/chessboard/position"
)

const DefaultStartingPositionFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

var ErrInvalidFEN = errors.New("invalid fen")

// UnmarshalFEN validates all six fields but keeps only the placement. FEN
// rank r is board row 9-r, so the first placement segment is row 1 (Black's
// home rank) and a Normal board prints as the standard start position.
func UnmarshalFEN(fen string, b *Board) error {
	if b == nil {
		return fmt.Errorf("invalid board")
	}
	segments := strings.Split(fen, " ")
	if len(segments) != 6 {
		return fmt.Errorf("%w: incorrect number of segments", ErrInvalidFEN)
	}

	rows := strings.Split(segments[0], "/")
	if len(rows) != Height {
		return fmt.Errorf("%w: invalid board configuration", ErrInvalidFEN)
	}
	var cells [TotalCells]Piece
	for i, row := range rows {
		col := 1
		for _, sym := range row {
			if col > Width {
				return fmt.Errorf("%w: too many cells", ErrInvalidFEN)
			}
			if sym != '0' && unicode.IsDigit(sym) {
				skip := int(sym - '0')
				if col+skip-1 > Width {
					return fmt.Errorf("%w: skip out of bounds", ErrInvalidFEN)
				}
				col += skip
				continue
			}
			piece, ok := pieceFromFEN(sym)
			if !ok {
				return fmt.Errorf("%w: unknown symbol '%s'", ErrInvalidFEN, string(sym))
			}
			cells[position.Pos{Row: i + 1, Col: col}.Index()] = piece
			col++
		}
		if col != Width+1 {
			return fmt.Errorf("%w: missing cells", ErrInvalidFEN)
		}
	}
	if !hasKing(&cells, SideWhite) || !hasKing(&cells, SideBlack) {
		return fmt.Errorf("%w: king missing", ErrInvalidFEN)
	}

	if segments[1] != "w" && segments[1] != "b" {
		return fmt.Errorf("%w: invalid turn", ErrInvalidFEN)
	}

	if err := validateCastling(segments[2]); err != nil {
		return err
	}

	if segments[3] != "-" {
		pos, err := position.NewPosFromNotation(segments[3])
		if err != nil {
			return fmt.Errorf("%w: invalid enpassant position: %v", ErrInvalidFEN, err)
		}
		if pos.Row != 3 && pos.Row != 6 {
			return fmt.Errorf("%w: invalid enpassant position", ErrInvalidFEN)
		}
	}

	if _, err := strconv.ParseUint(segments[4], 10, 16); err != nil {
		return fmt.Errorf("%w: invalid half move clock", ErrInvalidFEN)
	}
	if _, err := strconv.ParseUint(segments[5], 10, 16); err != nil {
		return fmt.Errorf("%w: invalid full move clock", ErrInvalidFEN)
	}

	b.cells = cells
	return nil
}

func MarshalFEN(b *Board) (string, error) {
	if b == nil {
		return "", fmt.Errorf("invalid board")
	}
	builder := strings.Builder{}
	for row := 1; row <= Height; row++ {
		var skip int
		for col := 1; col <= Width; col++ {
			piece := b.cells[position.Pos{Row: row, Col: col}.Index()]
			if piece.IsEmpty() {
				skip++
				continue
			}
			if skip != 0 {
				_, _ = builder.WriteString(strconv.Itoa(skip))
				skip = 0
			}
			_, _ = builder.WriteString(piece.Kind.SymbolFEN(piece.Side))
		}
		if skip != 0 {
			_, _ = builder.WriteString(strconv.Itoa(skip))
		}
		if row < Height {
			_, _ = builder.WriteRune('/')
		}
	}

	_, _ = builder.WriteString(" w ")
	_, _ = builder.WriteString(castlingField(b))
	_, _ = builder.WriteString(" - 0 1")

	return builder.String(), nil
}

func (b *Board) FEN() string {
	fen, _ := MarshalFEN(b)
	return fen
}

func pieceFromFEN(sym rune) (Piece, bool) {
	s := SideWhite
	if unicode.IsLower(sym) {
		s = SideBlack
	}
	for _, k := range Kinds {
		if k.SymbolFEN(s) == string(sym) {
			return Piece{Kind: k, Side: s}, true
		}
	}
	return Piece{}, false
}

func hasKing(cells *[TotalCells]Piece, s Side) bool {
	for _, p := range cells {
		if p.Kind == KindKing && p.Side == s {
			return true
		}
	}
	return false
}

func validateCastling(field string) error {
	if field == "-" {
		return nil
	}
	if len(field) == 0 || len(field) > 4 {
		return fmt.Errorf("%w: invalid castling rights", ErrInvalidFEN)
	}
	for _, e := range field {
		switch {
		case e == 'K', e == 'Q', e == 'k', e == 'q':
		case 'A' <= e && e <= 'H', 'a' <= e && e <= 'h':
		default:
			return fmt.Errorf("%w: invalid castling rights", ErrInvalidFEN)
		}
	}
	return nil
}
