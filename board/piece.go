package board

import "fmt"

// Kind is what stands on a cell. KindEmpty is the explicit "no piece" value.
type Kind uint8

const (
	KindEmpty Kind = iota
	KindPawn
	KindKnight
	KindBishop
	KindRook
	KindQueen
	KindKing
)

// Kinds lists every non-empty kind.
var Kinds = []Kind{KindPawn, KindKnight, KindBishop, KindRook, KindQueen, KindKing}

func ParseKind(s string) (Kind, error) {
	for _, k := range append([]Kind{KindEmpty}, Kinds...) {
		if k.String() == s {
			return k, nil
		}
	}
	return KindEmpty, fmt.Errorf("%w: unknown kind %q", ErrInvalidPiece, s)
}

func (k Kind) String() string {
	return k.Name()
}

func (k Kind) Name() string {
	switch k {
	case KindEmpty:
		return "Empty"
	case KindPawn:
		return "Pawn"
	case KindKnight:
		return "Knight"
	case KindBishop:
		return "Bishop"
	case KindRook:
		return "Rook"
	case KindQueen:
		return "Queen"
	case KindKing:
		return "King"
	default:
		return ""
	}
}

func (k Kind) SymbolFEN(s Side) string {
	var sym rune
	switch k {
	case KindPawn:
		sym = 'P'
	case KindKnight:
		sym = 'N'
	case KindBishop:
		sym = 'B'
	case KindRook:
		sym = 'R'
	case KindQueen:
		sym = 'Q'
	case KindKing:
		sym = 'K'
	default:
		return ""
	}
	if s == SideBlack {
		sym |= 0x20 // lowercase is +32 uppercase
	}
	return string(sym)
}

func (k Kind) SymbolUnicode(s Side) string {
	switch s {
	case SideWhite:
		switch k {
		case KindPawn:
			return "♙"
		case KindKnight:
			return "♘"
		case KindBishop:
			return "♗"
		case KindRook:
			return "♖"
		case KindQueen:
			return "♕"
		case KindKing:
			return "♔"
		default:
			return ""
		}
	case SideBlack:
		switch k {
		case KindPawn:
			return "♟"
		case KindKnight:
			return "♞"
		case KindBishop:
			return "♝"
		case KindRook:
			return "♜"
		case KindQueen:
			return "♛"
		case KindKing:
			return "♚"
		default:
			return ""
		}
	default:
		return ""
	}
}

// Piece is a kind owned by a side. The zero value is an empty cell.
type Piece struct {
	Kind Kind
	Side Side
}

// IsEmpty reports whether the piece leaves its cell unoccupied, either as the
// zero value or as an explicit KindEmpty.
func (p Piece) IsEmpty() bool {
	return p.Kind == KindEmpty
}

func (p Piece) String() string {
	if p.IsEmpty() {
		return KindEmpty.String()
	}
	return p.Side.String() + " " + p.Kind.String()
}

func (p Piece) validate() error {
	if p.IsEmpty() {
		return nil
	}
	if p.Kind > KindKing {
		return fmt.Errorf("%w: kind=%d", ErrInvalidPiece, p.Kind)
	}
	if p.Side != SideWhite && p.Side != SideBlack {
		return fmt.Errorf("%w: %s without a side", ErrInvalidPiece, p.Kind)
	}
	return nil
}
