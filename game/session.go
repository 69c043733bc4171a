package game

import (
	"time"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/google/uuid"
	"golang.org/x/exp/slices"

	"github.com/ardacagankeser/checkers/board"
	"github.com/ardacagankeser/checkers/engine"
)

const maxUndoDepth = 20

// Settings configures a session before it starts.
type Settings struct {
	Mode       Mode
	Difficulty engine.Difficulty
	TimeLimit  time.Duration // zero for untimed
	HumanSide  board.Side    // side the human plays against the engine
	HumanName  string        // display name of the human, a pet name when empty
}

func DefaultSettings() Settings {
	return Settings{
		Mode:       ModeAI,
		Difficulty: engine.DifficultyMedium,
		HumanSide:  board.SideWhite,
	}
}

// Record is one entry of the move history.
type Record struct {
	Number    int
	Player    board.Side
	Move      board.Move
	Timestamp time.Duration // since the start of the session
}

type SessionConfig struct {
	Settings     Settings
	EngineLogger func(v ...any)
}

// Session coordinates one game between the board, the engine, the clock, and
// the move history. It is the single entry point the interfaces drive.
type Session struct {
	id       string
	name     string
	names    [2 + 1]string
	settings Settings

	board  *board.Board
	engine *engine.Engine
	clock  *Clock

	history   []Record
	undoStack []*board.Board
	moveCount int
	startTime time.Time
}

func NewSession(config *SessionConfig) *Session {
	settings := config.Settings
	if settings.Mode == ModeUnknown {
		settings.Mode = ModeAI
	}
	if settings.Difficulty == engine.DifficultyUnknown {
		settings.Difficulty = engine.DifficultyMedium
	}
	if settings.HumanSide == board.SideUnknown {
		settings.HumanSide = board.SideWhite
	}
	if settings.HumanName == "" {
		settings.HumanName = petname.Generate(2, "-")
	}

	s := &Session{
		id:        uuid.New().String(),
		name:      petname.Generate(2, "-"),
		settings:  settings,
		board:     board.NewBoard(),
		clock:     NewClock(settings.TimeLimit),
		startTime: time.Now(),
	}
	s.names[settings.HumanSide] = settings.HumanName
	if settings.Mode == ModeAI {
		s.engine = engine.NewEngine(&engine.EngineConfig{
			Side:       settings.HumanSide.Opposite(),
			Difficulty: settings.Difficulty,
			Logger:     config.EngineLogger,
		})
		s.names[s.engine.Side()] = "engine (" + settings.Difficulty.String() + ")"
	} else {
		s.names[settings.HumanSide.Opposite()] = petname.Generate(2, "-")
	}
	return s
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) Name() string {
	return s.name
}

// PlayerName returns the display name of the side's player. The engine names
// itself after its difficulty, humans after Settings.HumanName.
func (s *Session) PlayerName(side board.Side) string {
	return s.names[side]
}

func (s *Session) Settings() Settings {
	return s.settings
}

func (s *Session) Board() *board.Board {
	return s.board
}

func (s *Session) Clock() *Clock {
	return s.clock
}

func (s *Session) Turn() board.Side {
	return s.board.Turn()
}

func (s *Session) GameOver() bool {
	return s.board.GameOver()
}

func (s *Session) Winner() board.Side {
	return s.board.Winner()
}

func (s *Session) CaptureCount(side board.Side) uint32 {
	return s.board.CaptureCount(side)
}

func (s *Session) Duration() time.Duration {
	return time.Since(s.startTime)
}

// EngineSide returns the side the engine plays, or SideUnknown in local mode.
func (s *Session) EngineSide() board.Side {
	if s.engine == nil {
		return board.SideUnknown
	}
	return s.engine.Side()
}

func (s *Session) IsEngineTurn() bool {
	return s.engine != nil && s.board.Turn() == s.engine.Side()
}

// EngineMove searches for the engine's move in the current position. It
// returns false when it is not the engine's turn or no move exists.
func (s *Session) EngineMove() (board.Move, bool) {
	if !s.IsEngineTurn() {
		return board.Move{}, false
	}
	return s.engine.BestMove(s.board)
}

// Execute applies a move, recording it in the history and pushing the
// previous position onto the undo stack. It returns false when the session
// has ended or the move does not apply.
func (s *Session) Execute(mv board.Move) bool {
	if s.board.GameOver() {
		return false
	}

	previous := s.board.Clone()
	mover := s.board.Turn()
	if !s.board.Apply(mv) {
		return false
	}

	s.pushSnapshot(previous)
	s.moveCount++
	s.history = append(s.history, Record{
		Number:    s.moveCount,
		Player:    mover,
		Move:      mv,
		Timestamp: time.Since(s.startTime),
	})
	return true
}

// Undo reverts the last move, or the last two moves against the engine so
// that the human is back on turn. It returns false when there is nothing to
// undo.
func (s *Session) Undo() bool {
	if len(s.undoStack) == 0 {
		return false
	}

	steps := 1
	if s.settings.Mode == ModeAI && len(s.undoStack) >= 2 {
		steps = 2
	}
	for i := 0; i < steps; i++ {
		if len(s.undoStack) == 0 {
			break
		}
		s.board = s.undoStack[len(s.undoStack)-1]
		s.undoStack = s.undoStack[:len(s.undoStack)-1]
		if len(s.history) > 0 {
			s.history = s.history[:len(s.history)-1]
			s.moveCount = max(0, s.moveCount-1)
		}
	}
	return true
}

func (s *Session) Resign(side board.Side) {
	s.board.Resign(side)
}

func (s *Session) History() []Record {
	return slices.Clone(s.history)
}

func (s *Session) pushSnapshot(b *board.Board) {
	s.undoStack = append(s.undoStack, b)
	if len(s.undoStack) > maxUndoDepth {
		s.undoStack = s.undoStack[len(s.undoStack)-maxUndoDepth:]
	}
}
