package engine

import (
	"math"
	"testing"

	"github.com/ardacagankeser/checkers/board"
	"github.com/ardacagankeser/checkers/position"
)

func sq(row, col int8) position.Square {
	return position.New(row, col)
}

func mustBoard(t *testing.T, text string, turn board.Side) *board.Board {
	t.Helper()
	b, err := board.NewBoardFromText(text, turn)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return b
}

func noopLogger(...any) {}

func newTestEngine(side board.Side, difficulty Difficulty) *Engine {
	return NewEngine(&EngineConfig{
		Side:       side,
		Difficulty: difficulty,
		Logger:     noopLogger,
	})
}

// refMinimax is an unpruned full width search used to cross check the alpha
// beta implementation.
func refMinimax(e *Engine, b *board.Board, depth uint8, maximizing bool) float64 {
	if depth == 0 || b.GameOver() {
		return e.Evaluate(b)
	}
	mvs := b.GenerateMoves()
	if len(mvs) == 0 {
		if maximizing {
			return math.Inf(-1)
		}
		return math.Inf(1)
	}
	best := math.Inf(-1)
	if !maximizing {
		best = math.Inf(1)
	}
	for _, mv := range mvs {
		bb := b.Clone()
		bb.Apply(mv)
		score := refMinimax(e, bb, depth-1, !maximizing)
		if maximizing {
			best = max(best, score)
		} else {
			best = min(best, score)
		}
	}
	return best
}

func refBestMove(e *Engine, b *board.Board) (board.Move, bool) {
	mvs := b.GenerateMoves()
	if len(mvs) == 0 {
		return board.Move{}, false
	}
	bestMove := mvs[0]
	bestScore := math.Inf(-1)
	for _, mv := range mvs {
		bb := b.Clone()
		bb.Apply(mv)
		if score := refMinimax(e, bb, e.maxDepth-1, false); score > bestScore {
			bestScore = score
			bestMove = mv
		}
	}
	return bestMove, true
}

func TestBestMoveMatchesFullSearch(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name       string
		text       string
		turn       board.Side
		side       board.Side
		difficulty Difficulty
	}{
		{
			name:       "starting position easy",
			text:       board.NewBoard().Text(),
			turn:       board.SideWhite,
			side:       board.SideWhite,
			difficulty: DifficultyEasy,
		},
		{
			name: "midgame medium",
			text: `........
.m.m..m.
..m..m..
........
...M....
.M...M..
..M..M..
........`,
			turn:       board.SideWhite,
			side:       board.SideWhite,
			difficulty: DifficultyMedium,
		},
		{
			name: "midgame black to move",
			text: `........
.m.m..m.
..m..m..
........
...M....
.M...M..
..M..M..
........`,
			turn:       board.SideBlack,
			side:       board.SideBlack,
			difficulty: DifficultyEasy,
		},
		{
			name: "competing capture chains",
			text: `........
.m...m..
........
.m...m..
.M...M..
........
......M.
........`,
			turn:       board.SideWhite,
			side:       board.SideWhite,
			difficulty: DifficultyEasy,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e := newTestEngine(tt.side, tt.difficulty)
			b := mustBoard(t, tt.text, tt.turn)
			got, ok := e.BestMove(b)
			if !ok {
				t.Fatal("expected a move")
			}
			want, ok := refBestMove(e, b.Clone())
			if !ok {
				t.Fatal("expected a reference move")
			}
			if !got.Equal(want) {
				t.Errorf("unexpected move: got=%v want=%v", got, want)
			}
		})
	}
}

func TestMinimaxMatchesReference(t *testing.T) {
	t.Parallel()
	text := `........
..m.....
........
.m......
..M.....
.....m..
......M.
........`

	tests := []struct {
		name       string
		turn       board.Side
		maximizing bool
	}{
		{name: "white to move maximizing", turn: board.SideWhite, maximizing: true},
		{name: "black to move minimizing", turn: board.SideBlack, maximizing: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e := newTestEngine(board.SideWhite, DifficultyEasy)
			b := mustBoard(t, text, tt.turn)
			for depth := uint8(1); depth <= 4; depth++ {
				got := e.minimax(b.Clone(), depth, math.Inf(-1), math.Inf(1), tt.maximizing)
				want := refMinimax(e, b, depth, tt.maximizing)
				if got != want {
					t.Errorf("unexpected score at depth %d: got=%v want=%v", depth, got, want)
				}
			}
		})
	}
}

func TestBestMoveForcedChain(t *testing.T) {
	t.Parallel()
	e := newTestEngine(board.SideWhite, DifficultyEasy)
	b := mustBoard(t, `........
.....m..
........
.....m..
.....M..
........
........
........`, board.SideWhite)
	got, ok := e.BestMove(b)
	if !ok {
		t.Fatal("expected a move")
	}
	want := board.Move{From: sq(4, 5), To: sq(0, 5), Captures: []position.Square{sq(3, 5), sq(1, 5)}}
	if !got.Equal(want) {
		t.Errorf("unexpected move: got=%v want=%v", got, want)
	}
}

func TestBestMoveNotEngineTurn(t *testing.T) {
	t.Parallel()
	e := newTestEngine(board.SideBlack, DifficultyEasy)
	if _, ok := e.BestMove(board.NewBoard()); ok {
		t.Error("expected no move when it is not the engine's turn")
	}
}

func TestBestMoveGameOver(t *testing.T) {
	t.Parallel()
	b := mustBoard(t, `........
.....m..
........
.....m..
.....M..
........
........
........`, board.SideWhite)
	if ok := b.Apply(board.Move{From: sq(4, 5), To: sq(0, 5), Captures: []position.Square{sq(3, 5), sq(1, 5)}}); !ok {
		t.Fatal("expected move to apply")
	}
	e := newTestEngine(board.SideBlack, DifficultyEasy)
	if _, ok := e.BestMove(b); ok {
		t.Error("expected no move after the game has ended")
	}
}

func TestMinimaxNoMoves(t *testing.T) {
	t.Parallel()
	e := newTestEngine(board.SideWhite, DifficultyEasy)
	b := mustBoard(t, `Mmm.....
........
........
........
........
........
........
.......m`, board.SideWhite)
	if got := e.minimax(b, 3, math.Inf(-1), math.Inf(1), true); !math.IsInf(got, -1) {
		t.Errorf("unexpected maximizing score: got=%v want=-Inf", got)
	}
	if got := e.minimax(b, 3, math.Inf(-1), math.Inf(1), false); !math.IsInf(got, 1) {
		t.Errorf("unexpected minimizing score: got=%v want=+Inf", got)
	}
}
