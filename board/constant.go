package board

import (
	"github.com/ardacagankeser/checkers/position"
)

const (
	Width      = position.MaxComponentScalar
	Height     = position.MaxComponentScalar
	TotalCells = Width * Height
)

var (
	// orthogonalDirections is ordered up, down, left, right. Capture scans and
	// King slides follow this order, which fixes move generation order.
	orthogonalDirections = [4][2]int8{
		{-1, 0},
		{1, 0},
		{0, -1},
		{0, 1},
	}

	// manDirections restricts quiet Man moves to forward and sideways.
	// Captures are not restricted and use orthogonalDirections.
	manDirections = [2 + 1][3][2]int8{
		SideWhite: {{-1, 0}, {0, -1}, {0, 1}},
		SideBlack: {{1, 0}, {0, -1}, {0, 1}},
	}

	manForward = [2 + 1]int8{
		SideWhite: -1,
		SideBlack: 1,
	}

	promotionRow = [2 + 1]int8{
		SideWhite: 0,
		SideBlack: Height - 1,
	}

	startingRows = [2 + 1][2]int8{
		SideWhite: {5, 6},
		SideBlack: {1, 2},
	}

	stateWon = [2 + 1]State{
		SideWhite: StateWhiteWon,
		SideBlack: StateBlackWon,
	}
)
