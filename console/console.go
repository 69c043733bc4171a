package console

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/ardacagankeser/checkers/board"
	"github.com/ardacagankeser/checkers/engine"
	"github.com/ardacagankeser/checkers/game"
	"github.com/ardacagankeser/checkers/position"
)

var (
	defaultOptions = options{
		mode:       game.ModeAI,
		difficulty: engine.DifficultyMedium,
		humanSide:  board.SideWhite,
	}

	titleColor  = color.New(color.FgCyan, color.Bold)
	errorColor  = color.New(color.FgRed)
	engineColor = color.New(color.FgYellow)
	resultColor = color.New(color.FgGreen, color.Bold)
)

const helpText = `commands:
  new [ai|local] [easy|medium|hard|grandmaster] [white|black] [minutes]
        start a new game
  move <from> <to>   play a move, e.g. "move a3 a4" or "move a3a4"
  moves [square]     list the legal moves
  hint               suggest a move for the side to play
  undo               take back the last move
  show               redraw the board
  history            list the moves played so far
  resign             give up the game
  quit               leave`

type options struct {
	mode       game.Mode
	difficulty engine.Difficulty
	humanSide  board.Side
	timeLimit  time.Duration
}

// Interface runs an interactive game loop on standard input and output.
type Interface struct {
	session   *game.Session
	options   options
	turnStart time.Time
}

func NewInterface() *Interface {
	return &Interface{
		options: defaultOptions,
	}
}

func (i *Interface) Run() error {
	titleColor.Println("dama console")
	i.println(helpText)
	i.reset()
	i.start()

	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Fprint(os.Stdout, "> ")
		cmd, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		cmd = strings.TrimSpace(cmd)

		args := strings.Fields(cmd)
		if len(args) == 0 {
			continue
		}
		switch args[0] {
		case "new":
			i.commandNew(args[1:])
		case "move", "m":
			i.commandMove(args[1:])
		case "moves":
			i.commandMoves(args[1:])
		case "hint":
			i.commandHint()
		case "undo":
			i.commandUndo()
		case "show", "d":
			i.printBoard()
		case "history":
			i.commandHistory()
		case "resign":
			i.commandResign()
		case "help":
			i.println(helpText)
		case "quit", "exit":
			return nil
		default:
			errorColor.Printf("unknown command: %s\n", args[0])
		}
	}
}

func (i *Interface) commandNew(args []string) {
	for _, arg := range args {
		if mode, err := game.ParseMode(arg); err == nil {
			i.options.mode = mode
			continue
		}
		if difficulty, err := engine.ParseDifficulty(arg); err == nil {
			i.options.difficulty = difficulty
			continue
		}
		if side, err := board.ParseSide(arg); err == nil {
			i.options.humanSide = side
			continue
		}
		if minutes, err := strconv.Atoi(arg); err == nil && minutes > 0 {
			i.options.timeLimit = time.Duration(minutes) * time.Minute
			continue
		}
		errorColor.Printf("unknown option: %s\n", arg)
		return
	}

	i.reset()
	settings := i.session.Settings()
	switch settings.Mode {
	case game.ModeAI:
		titleColor.Printf("%s: %s (%s) vs %s\n", i.session.Name(),
			i.session.PlayerName(settings.HumanSide), settings.HumanSide,
			i.session.PlayerName(settings.HumanSide.Opposite()))
	default:
		titleColor.Printf("%s: %s vs %s\n", i.session.Name(),
			i.session.PlayerName(board.SideWhite), i.session.PlayerName(board.SideBlack))
	}
	i.start()
}

func (i *Interface) commandMove(args []string) {
	if len(args) == 1 {
		if strings.Contains(args[0], "-") {
			args = strings.Split(args[0], "-")
		} else if len(args[0]) == 4 {
			args = []string{args[0][:2], args[0][2:]}
		}
	}
	if len(args) != 2 {
		errorColor.Println("usage: move <from> <to>")
		return
	}
	if i.session.GameOver() {
		errorColor.Println("the game has ended")
		return
	}

	from, err := position.NewFromNotation(args[0])
	if err != nil {
		errorColor.Printf("invalid square: %s\n", args[0])
		return
	}
	to, err := position.NewFromNotation(args[1])
	if err != nil {
		errorColor.Printf("invalid square: %s\n", args[1])
		return
	}

	var mv board.Move
	found := false
	for _, legal := range i.session.Board().GenerateMovesFrom(from) {
		if legal.To == to {
			mv = legal
			found = true
			break
		}
	}
	if !found {
		if i.session.Board().HasMandatoryCaptures() {
			errorColor.Println("illegal move: captures are mandatory")
		} else {
			errorColor.Printf("illegal move: %s-%s\n", from, to)
		}
		return
	}

	if !i.play(mv) {
		return
	}
	if !i.session.GameOver() && i.session.IsEngineTurn() {
		i.engineReply()
	}
}

func (i *Interface) commandMoves(args []string) {
	var mvs []board.Move
	if len(args) == 1 {
		from, err := position.NewFromNotation(args[0])
		if err != nil {
			errorColor.Printf("invalid square: %s\n", args[0])
			return
		}
		mvs = i.session.Board().GenerateMovesFrom(from)
	} else {
		mvs = i.session.Board().GenerateMoves()
	}
	if len(mvs) == 0 {
		i.println("no legal moves")
		return
	}
	for _, mv := range mvs {
		i.println("  " + mv.String())
	}
}

func (i *Interface) commandHint() {
	if i.session.GameOver() {
		errorColor.Println("the game has ended")
		return
	}
	e := engine.NewEngine(&engine.EngineConfig{
		Side:       i.session.Turn(),
		Difficulty: i.session.Settings().Difficulty,
		Logger:     func(...any) {},
	})
	if mv, ok := e.BestMove(i.session.Board()); ok {
		engineColor.Printf("hint: %s\n", mv)
	}
}

func (i *Interface) commandUndo() {
	if !i.session.Undo() {
		errorColor.Println("nothing to undo")
		return
	}
	i.turnStart = time.Now()
	i.printBoard()
}

func (i *Interface) commandHistory() {
	history := i.session.History()
	if len(history) == 0 {
		i.println("no moves played")
		return
	}
	for _, record := range history {
		i.println(fmt.Sprintf("%3d. %-5s %s", record.Number, record.Player, record.Move))
	}
}

func (i *Interface) commandResign() {
	if i.session.GameOver() {
		errorColor.Println("the game has ended")
		return
	}
	resigner := i.session.Turn()
	if i.session.Settings().Mode == game.ModeAI {
		resigner = i.session.Settings().HumanSide
	}
	i.session.Resign(resigner)
	i.printResult()
}

// play charges the mover's clock, applies the move, and reports the new
// position. It returns false when the move could not be played.
func (i *Interface) play(mv board.Move) bool {
	mover := i.session.Turn()
	if cl := i.session.Clock(); cl.Timed() {
		cl.Reduce(mover, time.Since(i.turnStart))
		if cl.Expired(mover) {
			i.session.Resign(mover)
			errorColor.Printf("%s lost on time\n", mover)
			i.printResult()
			return false
		}
	}

	if !i.session.Execute(mv) {
		errorColor.Printf("illegal move: %s\n", mv)
		return false
	}
	i.turnStart = time.Now()
	i.printBoard()
	if i.session.GameOver() {
		i.printResult()
		return false
	}
	return true
}

func (i *Interface) engineReply() {
	engineColor.Println("thinking...")
	mv, ok := i.session.EngineMove()
	if !ok {
		return
	}
	engineColor.Printf("engine plays %s\n", mv)
	i.play(mv)
}

func (i *Interface) reset() {
	i.session = game.NewSession(&game.SessionConfig{
		Settings: game.Settings{
			Mode:       i.options.mode,
			Difficulty: i.options.difficulty,
			TimeLimit:  i.options.timeLimit,
			HumanSide:  i.options.humanSide,
		},
		EngineLogger: i.println,
	})
	i.turnStart = time.Now()
}

func (i *Interface) start() {
	i.printBoard()
	if i.session.IsEngineTurn() {
		i.engineReply()
	}
}

func (i *Interface) printBoard() {
	i.println(i.session.Board().Draw())
	status := fmt.Sprintf("turn: %s   captures: W %d / B %d",
		i.session.Turn(),
		i.session.CaptureCount(board.SideWhite),
		i.session.CaptureCount(board.SideBlack),
	)
	if cl := i.session.Clock(); cl.Timed() {
		status += fmt.Sprintf("   clock: W %s / B %s", cl.Format(board.SideWhite), cl.Format(board.SideBlack))
	}
	i.println(status)
}

func (i *Interface) printResult() {
	if winner := i.session.Winner(); winner != board.SideUnknown {
		resultColor.Printf("%s wins!\n", winner)
	}
}

func (i *Interface) println(a ...any) {
	fmt.Fprintln(os.Stdout, a...)
}
