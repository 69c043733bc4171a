package board_test

import (
	"errors"
	"testing"

	"github.com/ardacagankeser/checkers/board"
	"github.com/ardacagankeser/checkers/internal/testutil"
	"github.com/ardacagankeser/checkers/position"
)

const startingText = `........
mmmmmmmm
mmmmmmmm
........
........
MMMMMMMM
MMMMMMMM
........`

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

func TestNewBoard(t *testing.T) {
	t.Parallel()
	b := board.NewBoard()
	if b.Turn() != board.SideWhite {
		t.Errorf("unexpected turn: got=%v want=%v", b.Turn(), board.SideWhite)
	}
	if b.State() != board.StateRunning {
		t.Errorf("unexpected state: got=%v want=%v", b.State(), board.StateRunning)
	}
	if b.GameOver() {
		t.Error("expected game to be running")
	}
	var white, black int
	for row := int8(0); row < board.Height; row++ {
		for col := int8(0); col < board.Width; col++ {
			pc := b.PieceAt(sq(row, col))
			if pc == board.NoPiece {
				continue
			}
			if pc.Rank != board.RankMan {
				t.Fatalf("unexpected rank on %v: got=%v", sq(row, col), pc.Rank)
			}
			switch pc.Side {
			case board.SideWhite:
				if row != 5 && row != 6 {
					t.Fatalf("unexpected White Man on row %d", row)
				}
				white++
			case board.SideBlack:
				if row != 1 && row != 2 {
					t.Fatalf("unexpected Black Man on row %d", row)
				}
				black++
			}
		}
	}
	if white != 16 || black != 16 {
		t.Errorf("unexpected piece counts: white=%d black=%d", white, black)
	}
	if b.CaptureCount(board.SideWhite) != 0 || b.CaptureCount(board.SideBlack) != 0 {
		t.Error("expected zero captures on a fresh board")
	}
}

func TestText(t *testing.T) {
	t.Parallel()
	if got := board.NewBoard().Text(); got != startingText {
		t.Errorf("unexpected text:\n%s", got)
	}
	b := mustBoard(t, startingText, board.SideWhite)
	if got := b.Text(); got != startingText {
		t.Errorf("unexpected round trip:\n%s", got)
	}
}

func TestNewBoardFromTextInvalid(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		text string
	}{
		{
			name: "missing rows",
			text: "........\n........",
		},
		{
			name: "short row",
			text: "........\n........\n........\n........\n........\n........\n........\n....",
		},
		{
			name: "unknown symbol",
			text: "........\n........\n...x....\n........\n........\n........\n........\n........",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if _, err := board.NewBoardFromText(tt.text, board.SideWhite); !errors.Is(err, board.ErrInvalidText) {
				t.Errorf("unexpected error: got=%v want=%v", err, board.ErrInvalidText)
			}
		})
	}
}

func TestApplyQuietMove(t *testing.T) {
	t.Parallel()
	b := board.NewBoard()
	if ok := b.Apply(board.Move{From: sq(5, 0), To: sq(4, 0)}); !ok {
		t.Fatal("expected move to apply")
	}
	if pc := b.PieceAt(sq(5, 0)); pc != board.NoPiece {
		t.Errorf("expected origin to be empty, got %v", pc)
	}
	if pc := b.PieceAt(sq(4, 0)); pc != board.NewPiece(board.SideWhite, board.RankMan) {
		t.Errorf("unexpected piece on destination: got=%v", pc)
	}
	if b.Turn() != board.SideBlack {
		t.Errorf("unexpected turn: got=%v want=%v", b.Turn(), board.SideBlack)
	}
	if !b.State().IsRunning() {
		t.Errorf("unexpected state: %v", b.State())
	}
}

func TestApplyEmptyOrigin(t *testing.T) {
	t.Parallel()
	b := board.NewBoard()
	if ok := b.Apply(board.Move{From: sq(4, 4), To: sq(3, 4)}); ok {
		t.Fatal("expected move to be rejected")
	}
	if b.Turn() != board.SideWhite {
		t.Errorf("unexpected turn: got=%v want=%v", b.Turn(), board.SideWhite)
	}
	if got := b.Text(); got != startingText {
		t.Errorf("expected board to be untouched:\n%s", got)
	}
}

func TestApplyPromotion(t *testing.T) {
	t.Parallel()
	b := mustBoard(t, `........
..M.....
........
........
......m.
........
........
........`, board.SideWhite)
	if ok := b.Apply(board.Move{From: sq(1, 2), To: sq(0, 2)}); !ok {
		t.Fatal("expected move to apply")
	}
	if pc := b.PieceAt(sq(0, 2)); pc != board.NewPiece(board.SideWhite, board.RankKing) {
		t.Errorf("expected promotion to King, got %v", pc)
	}
	if !b.State().IsRunning() {
		t.Errorf("unexpected state: %v", b.State())
	}
}

func TestApplyCaptureChain(t *testing.T) {
	t.Parallel()
	b := mustBoard(t, `........
.....m..
........
.....m..
.....M..
........
........
........`, board.SideWhite)
	mv := board.Move{From: sq(4, 5), To: sq(0, 5), Captures: []position.Square{sq(3, 5), sq(1, 5)}}
	if ok := b.Apply(mv); !ok {
		t.Fatal("expected move to apply")
	}
	if got := b.CaptureCount(board.SideWhite); got != 2 {
		t.Errorf("unexpected capture count: got=%d want=2", got)
	}
	if pc := b.PieceAt(sq(0, 5)); pc != board.NewPiece(board.SideWhite, board.RankKing) {
		t.Errorf("expected promoted King on landing square, got %v", pc)
	}
	if b.HasPieces(board.SideBlack) {
		t.Error("expected Black to be wiped out")
	}
	if !b.GameOver() || b.Winner() != board.SideWhite {
		t.Errorf("unexpected outcome: state=%v winner=%v", b.State(), b.Winner())
	}
}

func TestApplyNoPromotionMidChain(t *testing.T) {
	t.Parallel()
	b := mustBoard(t, `........
........
........
........
........
..m.....
..M.M...
...M....`, board.SideBlack)
	mv := board.Move{
		From:     sq(5, 2),
		To:       sq(5, 4),
		Captures: []position.Square{sq(6, 2), sq(7, 3), sq(6, 4)},
	}
	if ok := b.Apply(mv); !ok {
		t.Fatal("expected move to apply")
	}
	if pc := b.PieceAt(sq(5, 4)); pc != board.NewPiece(board.SideBlack, board.RankMan) {
		t.Errorf("expected Man to pass through the back row unpromoted, got %v", pc)
	}
	if got := b.CaptureCount(board.SideBlack); got != 3 {
		t.Errorf("unexpected capture count: got=%d want=3", got)
	}
	if !b.GameOver() || b.Winner() != board.SideBlack {
		t.Errorf("unexpected outcome: state=%v winner=%v", b.State(), b.Winner())
	}
}

func TestNoMovesLosesGame(t *testing.T) {
	t.Parallel()
	b := mustBoard(t, `Mmm.....
........
........
........
........
.....k..
........
........`, board.SideBlack)
	if ok := b.Apply(board.Move{From: sq(5, 5), To: sq(5, 6)}); !ok {
		t.Fatal("expected move to apply")
	}
	if !b.HasPieces(board.SideWhite) {
		t.Fatal("expected White to keep its blocked Man")
	}
	if !b.GameOver() || b.Winner() != board.SideBlack {
		t.Errorf("expected White to lose by immobility: state=%v winner=%v", b.State(), b.Winner())
	}
}

func TestClone(t *testing.T) {
	t.Parallel()
	b := board.NewBoard()
	bb := b.Clone()
	if ok := bb.Apply(board.Move{From: sq(5, 3), To: sq(4, 3)}); !ok {
		t.Fatal("expected move to apply")
	}
	if b.Turn() != board.SideWhite {
		t.Errorf("clone mutated original turn: got=%v", b.Turn())
	}
	if got := b.Text(); got != startingText {
		t.Errorf("clone mutated original grid:\n%s", got)
	}
	if bb.Turn() != board.SideBlack {
		t.Errorf("unexpected clone turn: got=%v", bb.Turn())
	}
}

func TestResign(t *testing.T) {
	t.Parallel()
	b := board.NewBoard()
	b.Resign(board.SideWhite)
	if !b.GameOver() || b.Winner() != board.SideBlack {
		t.Errorf("unexpected outcome: state=%v winner=%v", b.State(), b.Winner())
	}
	b.Resign(board.SideBlack)
	if b.Winner() != board.SideBlack {
		t.Errorf("resignation after game end should not flip winner: got=%v", b.Winner())
	}
}

func TestSetPiece(t *testing.T) {
	t.Parallel()
	b := board.NewEmptyBoard(board.SideWhite)
	pc := board.NewPiece(board.SideBlack, board.RankKing)
	b.SetPiece(sq(3, 3), pc)
	if got := b.PieceAt(sq(3, 3)); got != pc {
		t.Errorf("unexpected piece: got=%v want=%v", got, pc)
	}
	b.SetPiece(sq(3, 3), board.NoPiece)
	if got := b.PieceAt(sq(3, 3)); got != board.NoPiece {
		t.Errorf("expected square to be cleared, got %v", got)
	}
	b.SetPiece(sq(-1, 9), pc)
	if got := b.PieceAt(sq(-1, 9)); got != board.NoPiece {
		t.Errorf("expected out of range square to stay empty, got %v", got)
	}
	testutil.Equal(t, b.Text(), board.NewEmptyBoard(board.SideWhite).Text())
}
