package board

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidSide = errors.New("invalid side")
)

type Side uint8

const (
	SideUnknown Side = iota
	SideWhite
	SideBlack
)

func ParseSide(s string) (Side, error) {
	switch s {
	case "white", "w":
		return SideWhite, nil
	case "black", "b":
		return SideBlack, nil
	default:
		return SideUnknown, fmt.Errorf("%w: %s", ErrInvalidSide, s)
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

// Forward returns the row delta a Man of this side advances by.
func (s Side) Forward() int8 {
	return manForward[s]
}

// PromotionRow returns the row on which a Man of this side becomes a King.
func (s Side) PromotionRow() int8 {
	return promotionRow[s]
}
