package engine

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidDifficulty represents an invalid difficulty error.
	ErrInvalidDifficulty = errors.New("invalid difficulty")
)

type Difficulty uint8

const (
	DifficultyUnknown Difficulty = iota
	DifficultyEasy
	DifficultyMedium
	DifficultyHard
	DifficultyGrandmaster
)

// difficultyDepth maps each difficulty to its fixed search depth in plies.
var difficultyDepth = [4 + 1]uint8{
	DifficultyEasy:        2,
	DifficultyMedium:      3,
	DifficultyHard:        5,
	DifficultyGrandmaster: 7,
}

func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(s) {
	case "easy":
		return DifficultyEasy, nil
	case "medium":
		return DifficultyMedium, nil
	case "hard":
		return DifficultyHard, nil
	case "grandmaster":
		return DifficultyGrandmaster, nil
	default:
		return DifficultyUnknown, fmt.Errorf("%w: %s", ErrInvalidDifficulty, s)
	}
}

func (d Difficulty) Depth() uint8 {
	return difficultyDepth[d]
}

func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "Easy"
	case DifficultyMedium:
		return "Medium"
	case DifficultyHard:
		return "Hard"
	case DifficultyGrandmaster:
		return "Grandmaster"
	default:
		return ""
	}
}
