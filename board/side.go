package board

import "fmt"

type Side uint8

const (
	SideUnknown Side = iota
	SideWhite
	SideBlack
)

// Sides lists the two playing sides in document order.
var Sides = []Side{SideWhite, SideBlack}

func ParseSide(s string) (Side, error) {
	switch s {
	case "White":
		return SideWhite, nil
	case "Black":
		return SideBlack, nil
	default:
		return SideUnknown, fmt.Errorf("%w: unknown side %q", ErrInvalidPiece, s)
	}
}

func (s Side) String() string {
	switch s {
	case SideWhite:
		return "White"
	case SideBlack:
		return "Black"
	default:
		return ""
	}
}

func (s Side) Opposite() Side {
	switch s {
	case SideWhite:
		return SideBlack
	case SideBlack:
		return SideWhite
	default:
		return SideUnknown
	}
}

// HomeRow is the row holding the side's non-pawn pieces.
func (s Side) HomeRow() int {
	switch s {
	case SideWhite:
		return 8
	case SideBlack:
		return 1
	default:
		return 0
	}
}

func (s Side) PawnRow() int {
	switch s {
	case SideWhite:
		return 7
	case SideBlack:
		return 2
	default:
		return 0
	}
}
