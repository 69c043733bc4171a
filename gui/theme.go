package gui

import (
	"github.com/gdamore/tcell/v2"
)

// Theme colors the board and the surrounding panels.
type Theme struct {
	Name           string
	SquareDark     tcell.Color
	SquareLight    tcell.Color
	SquareSelected tcell.Color
	SquareTarget   tcell.Color
	SquareCapture  tcell.Color
	SquareLast     tcell.Color
	PieceWhite     tcell.Color
	PieceBlack     tcell.Color
	Label          tcell.Color
	Text           tcell.Color
	Accent         tcell.Color
	Warn           tcell.Color
}

// ThemeClassic is the default walnut and maple board.
var ThemeClassic = Theme{
	"classic",                   // Name
	tcell.NewHexColor(0x4a3728), // SquareDark
	tcell.NewHexColor(0xe3c699), // SquareLight
	tcell.NewHexColor(0x1c5b97), // SquareSelected
	tcell.NewHexColor(0x00b894), // SquareTarget
	tcell.NewHexColor(0xe53935), // SquareCapture
	tcell.NewHexColor(0xffbe0b), // SquareLast
	tcell.NewHexColor(0xffffff), // PieceWhite
	tcell.NewHexColor(0x2d2d2d), // PieceBlack
	tcell.NewHexColor(0x9ca3af), // Label
	tcell.NewHexColor(0xffffff), // Text
	tcell.NewHexColor(0x00b894), // Accent
	tcell.NewHexColor(0xe53935), // Warn
}
