package testutil

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ardacagankeser/checkers/board"
	"github.com/ardacagankeser/checkers/position"
)

// Equal fails the test when got and want differ, reporting the diff.
func Equal[T any](t *testing.T, got, want T, opts ...cmp.Option) {
	t.Helper()
	if diff := cmp.Diff(want, got, opts...); diff != "" {
		t.Errorf("unexpected result (-want +got):\n%s", diff)
	}
}

// SortMoves compares move slices independent of generation order.
func SortMoves() cmp.Option {
	return cmpopts.SortSlices(moveLess)
}

func moveLess(a, b board.Move) bool {
	if a.From != b.From {
		return squareLess(a.From, b.From)
	}
	if a.To != b.To {
		return squareLess(a.To, b.To)
	}
	if len(a.Captures) != len(b.Captures) {
		return len(a.Captures) < len(b.Captures)
	}
	for i := range a.Captures {
		if a.Captures[i] != b.Captures[i] {
			return squareLess(a.Captures[i], b.Captures[i])
		}
	}
	return false
}

func squareLess(a, b position.Square) bool {
	if a.Row != b.Row {
		return a.Row < b.Row
	}
	return a.Col < b.Col
}
