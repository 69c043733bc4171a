package gui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/ardacagankeser/checkers/board"
	"github.com/ardacagankeser/checkers/game"
	"github.com/ardacagankeser/checkers/position"
)

const (
	numRows = int(board.Height)
	numCols = int(board.Width)
)

func (g *GUI) initBoard() {
	g.table.SetSelectable(true, true)
	g.table.Select(numRows-1, 1).SetDoneFunc(func(key tcell.Key) {
		if key == tcell.KeyEscape {
			g.toMenu()
		}
	}).SetSelectedFunc(func(row, col int) {
		g.handleSelect(row, col)
	})
}

func (g *GUI) posToSquare(row, col int) position.Square {
	return position.New(int8(row), int8(col-1))
}

// handleSelect drives the two click move input. The first selection picks up
// a piece of the side to move, the second one drops it on a legal landing
// square.
func (g *GUI) handleSelect(row, col int) {
	if g.session == nil || g.session.GameOver() || g.engineBusy {
		return
	}
	if row >= numRows || col == 0 {
		return
	}
	sq := g.posToSquare(row, col)

	if !g.selecting {
		if g.selectable(sq) {
			g.selecting = true
			g.lastSelection = sq
		}
		g.render()
		return
	}

	switch {
	case sq == g.lastSelection:
		g.clearSelection()
	case g.selectable(sq):
		g.lastSelection = sq
	default:
		for _, mv := range g.session.Board().GenerateMovesFrom(g.lastSelection) {
			if mv.To == sq {
				g.clearSelection()
				g.playMove(mv)
				return
			}
		}
		g.clearSelection()
	}
	g.render()
}

// selectable reports whether the square holds a piece the player may pick up.
func (g *GUI) selectable(sq position.Square) bool {
	pc := g.session.Board().PieceAt(sq)
	if pc == board.NoPiece || pc.Side != g.session.Turn() {
		return false
	}
	if g.session.Settings().Mode == game.ModeAI && pc.Side != g.session.Settings().HumanSide {
		return false
	}
	return true
}

func (g *GUI) clearSelection() {
	g.selecting = false
	g.lastSelection = position.Square{}
}

func (g *GUI) renderBoard() {
	b := g.session.Board()
	marks := g.squareMarks()

	for r := 0; r <= numRows; r++ {
		for c := 0; c <= numCols; c++ {
			switch {
			case c == 0 && r < numRows:
				cell := tview.NewTableCell(position.RankDigit(int8(r)) + " ").
					SetAlign(tview.AlignCenter).
					SetTextColor(g.theme.Label).
					SetSelectable(false)
				g.table.SetCell(r, c, cell)

			case r == numRows && c > 0:
				cell := tview.NewTableCell(" " + position.FileLetter(int8(c-1))).
					SetAlign(tview.AlignCenter).
					SetTextColor(g.theme.Label).
					SetSelectable(false)
				g.table.SetCell(r, c, cell)

			case r == numRows && c == 0:
				g.table.SetCell(r, c, tview.NewTableCell("").SetSelectable(false))

			default:
				sq := g.posToSquare(r, c)
				pc := b.PieceAt(sq)

				text := "   "
				color := g.theme.Text
				switch {
				case pc != board.NoPiece:
					text = " " + pc.SymbolUnicode(false) + " "
					if pc.Side == board.SideWhite {
						color = g.theme.PieceWhite
					} else {
						color = g.theme.PieceBlack
					}
				case marks[sq] == markTarget || marks[sq] == markCapture:
					text = " · "
				}

				cell := tview.NewTableCell(text).
					SetAlign(tview.AlignCenter).
					SetTextColor(color).
					SetBackgroundColor(g.squareBackground(sq, marks[sq]))
				g.table.SetCell(r, c, cell)
			}
		}
	}
}

type mark uint8

const (
	markNone mark = iota
	markSelected
	markTarget
	markCapture
	markLast
)

// squareMarks computes the highlight for each square from the selection and
// the last played move, mirroring the precedence of the board view: selection
// first, then landing squares, then the last move.
func (g *GUI) squareMarks() map[position.Square]mark {
	marks := make(map[position.Square]mark)
	if g.selecting {
		marks[g.lastSelection] = markSelected
		for _, mv := range g.session.Board().GenerateMovesFrom(g.lastSelection) {
			if mv.IsCapture() {
				marks[mv.To] = markCapture
			} else {
				marks[mv.To] = markTarget
			}
		}
		return marks
	}
	if g.lastMove != nil {
		marks[g.lastMove.From] = markLast
		marks[g.lastMove.To] = markLast
	}
	return marks
}

func (g *GUI) squareBackground(sq position.Square, m mark) tcell.Color {
	switch m {
	case markSelected:
		return g.theme.SquareSelected
	case markTarget:
		return g.theme.SquareTarget
	case markCapture:
		return g.theme.SquareCapture
	case markLast:
		return g.theme.SquareLast
	default:
		if (sq.Row+sq.Col)%2 == 0 {
			return g.theme.SquareLight
		}
		return g.theme.SquareDark
	}
}
