package game

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidMode = errors.New("invalid mode")
)

// Mode selects the opponent for a session, either the built in engine or a
// second player on the same terminal.
type Mode uint8

const (
	ModeUnknown Mode = iota
	ModeAI
	ModeLocal
)

func ParseMode(s string) (Mode, error) {
	switch s {
	case "ai":
		return ModeAI, nil
	case "local":
		return ModeLocal, nil
	default:
		return ModeUnknown, fmt.Errorf("%w: %s", ErrInvalidMode, s)
	}
}

func (m Mode) String() string {
	switch m {
	case ModeAI:
		return "AI"
	case ModeLocal:
		return "Local"
	default:
		return ""
	}
}
