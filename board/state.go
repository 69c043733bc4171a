package board

type State uint8

const (
	// StateUnknown is when game state is unknown.
	StateUnknown State = iota

	// StateRunning is when game is in progress.
	StateRunning

	// StateWhiteWon is when White has won the game.
	StateWhiteWon

	// StateBlackWon is when Black has won the game.
	StateBlackWon
)

func (s State) IsRunning() bool {
	return s == StateRunning
}

func (s State) IsWon() bool {
	switch s {
	case StateWhiteWon, StateBlackWon:
		return true
	default:
		return false
	}
}

// Winner returns the winning side, or SideUnknown while the game is running.
func (s State) Winner() Side {
	switch s {
	case StateWhiteWon:
		return SideWhite
	case StateBlackWon:
		return SideBlack
	default:
		return SideUnknown
	}
}

func (s State) String() string {
	switch s {
	case StateUnknown:
		return "StateUnknown"
	case StateRunning:
		return "StateRunning"
	case StateWhiteWon:
		return "StateWhiteWon"
	case StateBlackWon:
		return "StateBlackWon"
	default:
		return ""
	}
}
