package board

import (
	"strconv"

	"golang.org/x/exp/slices"

	"github.com/ardacagankeser/checkers/position"
)

type Move struct {
	From, To position.Square

	// Captures lists the squares cleared by this move in jump order.
	Captures []position.Square
}

func (m Move) String() string {
	return m.Notation()
}

// Notation renders the move as "a4-a8", with an " x2" suffix carrying the
// number of captured pieces.
func (m Move) Notation() string {
	nt := m.From.Notation() + "-" + m.To.Notation()
	if m.IsCapture() {
		nt += " x" + strconv.Itoa(len(m.Captures))
	}
	return nt
}

func (m Move) IsCapture() bool {
	return len(m.Captures) > 0
}

func (m Move) Equal(other Move) bool {
	return m.From == other.From && m.To == other.To && slices.Equal(m.Captures, other.Captures)
}

func (m Move) Clone() Move {
	return Move{From: m.From, To: m.To, Captures: slices.Clone(m.Captures)}
}
