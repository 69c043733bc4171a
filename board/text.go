package board

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidText = errors.New("invalid board text")
)

// NewBoardFromText parses a board from an eight line grid, one rank per line
// from rank 8 down to rank 1. White pieces are written M and K, Black pieces
// m and k, empty squares as dots. Lines may be indented freely.
func NewBoardFromText(text string, turn Side) (*Board, error) {
	rows := strings.Fields(text)
	if len(rows) != int(Height) {
		return nil, fmt.Errorf("%w: expected %d rows, got %d", ErrInvalidText, Height, len(rows))
	}
	b := NewEmptyBoard(turn)
	for row, line := range rows {
		if len(line) != int(Width) {
			return nil, fmt.Errorf("%w: row %d has %d columns", ErrInvalidText, row, len(line))
		}
		for col := 0; col < len(line); col++ {
			var pc Piece
			switch line[col] {
			case '.':
				continue
			case 'M':
				pc = Piece{Side: SideWhite, Rank: RankMan}
			case 'K':
				pc = Piece{Side: SideWhite, Rank: RankKing}
			case 'm':
				pc = Piece{Side: SideBlack, Rank: RankMan}
			case 'k':
				pc = Piece{Side: SideBlack, Rank: RankKing}
			default:
				return nil, fmt.Errorf("%w: unexpected symbol %q", ErrInvalidText, line[col])
			}
			b.grid[row][col] = pc
		}
	}
	return b, nil
}

// Text renders the grid in the format accepted by NewBoardFromText.
func (b *Board) Text() string {
	builder := strings.Builder{}
	for row := int8(0); row < Height; row++ {
		for col := int8(0); col < Width; col++ {
			sym := b.grid[row][col].SymbolText()
			if sym == "" {
				sym = "."
			}
			_, _ = builder.WriteString(sym)
		}
		if row < Height-1 {
			_, _ = builder.WriteString("\n")
		}
	}
	return builder.String()
}
