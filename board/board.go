package board

import (
	"fmt"
	"strings"

	"github.com/ardacagankeser/checkers/position"
)

type Board struct {
	grid [Height][Width]Piece

	turn     Side
	state    State
	captured [2 + 1]uint32
}

// NewBoard returns a board in the starting position with White to move.
// White Men fill rows 5 and 6, Black Men fill rows 1 and 2.
func NewBoard() *Board {
	b := NewEmptyBoard(SideWhite)
	for _, s := range []Side{SideWhite, SideBlack} {
		for _, row := range startingRows[s] {
			for col := int8(0); col < Width; col++ {
				b.grid[row][col] = Piece{Side: s, Rank: RankMan}
			}
		}
	}
	return b
}

// NewEmptyBoard returns a board without pieces, with the given side to move.
func NewEmptyBoard(turn Side) *Board {
	return &Board{
		turn:  turn,
		state: StateRunning,
	}
}

func (b *Board) Turn() Side {
	return b.turn
}

func (b *Board) State() State {
	return b.state
}

func (b *Board) GameOver() bool {
	return !b.state.IsRunning()
}

// Winner returns the winning side, or SideUnknown while the game is running.
func (b *Board) Winner() Side {
	return b.state.Winner()
}

// CaptureCount returns the number of pieces the given side has captured.
func (b *Board) CaptureCount(s Side) uint32 {
	return b.captured[s]
}

// PieceAt returns the piece on the given square, or NoPiece when the square
// is empty or outside the board.
func (b *Board) PieceAt(sq position.Square) Piece {
	if !sq.Valid() {
		return NoPiece
	}
	return b.grid[sq.Row][sq.Col]
}

// SetPiece places a piece on the given square, overwriting any occupant.
// Placing NoPiece clears the square. Squares outside the board are ignored.
func (b *Board) SetPiece(sq position.Square, pc Piece) {
	if !sq.Valid() {
		return
	}
	b.grid[sq.Row][sq.Col] = pc
}

func (b *Board) HasPieces(s Side) bool {
	for row := int8(0); row < Height; row++ {
		for col := int8(0); col < Width; col++ {
			pc := b.grid[row][col]
			if pc != NoPiece && pc.Side == s {
				return true
			}
		}
	}
	return false
}

// Apply executes the move and advances the turn. It returns false when the
// origin square is empty, leaving the board untouched. The move is otherwise
// trusted to have come from move generation and is not re-validated.
func (b *Board) Apply(mv Move) bool {
	pc := b.PieceAt(mv.From)
	if pc == NoPiece {
		return false
	}

	b.SetPiece(mv.From, NoPiece)
	for _, sq := range mv.Captures {
		if b.PieceAt(sq) != NoPiece {
			b.captured[b.turn]++
		}
		b.SetPiece(sq, NoPiece)
	}
	if pc.Rank == RankMan && mv.To.Row == pc.Side.PromotionRow() {
		pc.Rank = RankKing
	}
	b.SetPiece(mv.To, pc)

	b.turn = b.turn.Opposite()
	b.updateState()
	return true
}

// updateState ends the game when the side to move has no pieces or no legal
// moves left. There are no draws, the opponent wins in both cases.
func (b *Board) updateState() {
	if !b.HasPieces(b.turn) {
		b.state = stateWon[b.turn.Opposite()]
		return
	}
	if len(b.GenerateMoves()) == 0 {
		b.state = stateWon[b.turn.Opposite()]
	}
}

// Resign ends the game with the given side as the loser.
func (b *Board) Resign(s Side) {
	if s == SideUnknown || !b.state.IsRunning() {
		return
	}
	b.state = stateWon[s.Opposite()]
}

func (b *Board) Clone() *Board {
	return &Board{
		grid:     b.grid,
		turn:     b.turn,
		state:    b.state,
		captured: b.captured,
	}
}

func (b *Board) Dump() string {
	builder := strings.Builder{}
	for row := int8(0); row < Height; row++ {
		_, _ = builder.WriteString("   +---+---+---+---+---+---+---+---+\n")
		_, _ = builder.WriteString(fmt.Sprintf(" %s |", position.RankDigit(row)))
		for col := int8(0); col < Width; col++ {
			sym := b.grid[row][col].SymbolText()
			if sym == "" {
				sym = " "
			}
			_, _ = builder.WriteString(fmt.Sprintf(" %s |", sym))
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("   +---+---+---+---+---+---+---+---+\n   ")
	for col := int8(0); col < Width; col++ {
		_, _ = builder.WriteString(fmt.Sprintf("  %s ", position.FileLetter(col)))
	}
	return builder.String()
}

func (b *Board) Draw() string {
	builder := strings.Builder{}
	for row := int8(0); row < Height; row++ {
		_, _ = builder.WriteString(fmt.Sprintf("\033[1m %s \033[0m", position.RankDigit(row)))
		for col := int8(0); col < Width; col++ {
			pc := b.grid[row][col]
			sym := pc.SymbolUnicode(false)
			if pc == NoPiece {
				sym = " "
			}
			var cell string
			if col%2^row%2 == 0 {
				cell = "\033[38;5;233;48;5;223m" + cell
			} else {
				cell = "\033[38;5;233;48;5;180m" + cell
			}
			cell += fmt.Sprintf(" %s ", sym) + "\033[0m"
			builder.WriteString(cell)
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("   ")
	for col := int8(0); col < Width; col++ {
		_, _ = builder.WriteString(fmt.Sprintf("\033[1m %s \033[0m", position.FileLetter(col)))
	}
	return builder.String()
}

func (b *Board) DebugString() string {
	return fmt.Sprintf("turn: %s\ncapw: %4d\ncapb: %4d\nstat: %s", b.turn, b.captured[SideWhite], b.captured[SideBlack], b.state)
}
