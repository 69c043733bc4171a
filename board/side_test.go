package board_test

import (
	"errors"
	"testing"

	"github.com/ardacagankeser/checkers/board"
)

func TestParseSide(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		want board.Side
	}{
		{"white", board.SideWhite},
		{"w", board.SideWhite},
		{"black", board.SideBlack},
		{"b", board.SideBlack},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := board.ParseSide(tt.name)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("unexpected side: got=%v want=%v", got, tt.want)
			}
		})
	}

	if _, err := board.ParseSide("red"); !errors.Is(err, board.ErrInvalidSide) {
		t.Errorf("unexpected error: got=%v want=%v", err, board.ErrInvalidSide)
	}
}

func TestSideOpposite(t *testing.T) {
	t.Parallel()
	if got, want := board.SideWhite.Opposite(), board.SideBlack; got != want {
		t.Errorf("unexpected side: got=%v want=%v", got, want)
	}
	if got, want := board.SideBlack.Opposite(), board.SideWhite; got != want {
		t.Errorf("unexpected side: got=%v want=%v", got, want)
	}
	if got, want := board.SideUnknown.Opposite(), board.SideUnknown; got != want {
		t.Errorf("unexpected side: got=%v want=%v", got, want)
	}
}
