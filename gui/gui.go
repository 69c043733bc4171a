package gui

import (
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/ardacagankeser/checkers/board"
	"github.com/ardacagankeser/checkers/engine"
	"github.com/ardacagankeser/checkers/game"
	"github.com/ardacagankeser/checkers/position"
)

const lowTimeWarning = 30 * time.Second

var (
	menuDifficulties = []engine.Difficulty{
		engine.DifficultyEasy,
		engine.DifficultyMedium,
		engine.DifficultyHard,
		engine.DifficultyGrandmaster,
	}
	menuTimeLimits = []time.Duration{
		0,
		3 * time.Minute,
		5 * time.Minute,
		10 * time.Minute,
	}
)

// GUI is the interactive terminal frontend. The menu configures a session,
// the game page drives it with two click move input, and the result dialog
// loops back to the menu.
type GUI struct {
	app   *tview.Application
	theme Theme

	pages    *tview.Pages
	menu     *tview.Form
	table    *tview.Table
	status   *tview.TextView
	clocks   *tview.TextView
	captures *tview.TextView
	history  *tview.TextView
	result   *tview.Modal

	session *game.Session

	menuMode       int
	menuDifficulty int
	menuTimeLimit  int
	menuSide       int
	menuName       string

	inGame        bool
	resultShown   bool
	engineBusy    bool
	selecting     bool
	lastSelection position.Square
	lastMove      *board.Move
	stopTicker    chan struct{}
}

func New() *GUI {
	rand.Seed(time.Now().Unix())

	g := &GUI{
		app:   tview.NewApplication(),
		theme: ThemeClassic,
	}
	g.buildMenu()
	g.buildGame()
	g.buildResult()

	g.pages = tview.NewPages().
		AddPage("menu", center(g.menu, 44, 17), true, true).
		AddPage("game", g.gameLayout(), true, false).
		AddPage("result", g.result, true, false)

	g.app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if !g.inGame || g.resultShown {
			return event
		}
		switch event.Rune() {
		case 'u':
			g.undo()
			return nil
		case 'r':
			g.resign()
			return nil
		}
		return event
	})

	return g
}

func (g *GUI) Run() error {
	return g.app.SetRoot(g.pages, true).EnableMouse(true).Run()
}

func (g *GUI) buildMenu() {
	g.menuDifficulty = 1 // Medium
	g.menuSide = 1       // Random

	g.menu = tview.NewForm().
		AddDropDown("Mode", []string{"Against the engine", "Two players"}, 0, func(_ string, index int) {
			g.menuMode = index
		}).
		AddDropDown("Difficulty", []string{"Easy", "Medium", "Hard", "Grandmaster"}, 1, func(_ string, index int) {
			g.menuDifficulty = index
		}).
		AddDropDown("Time control", []string{"Unlimited", "3 minutes", "5 minutes", "10 minutes"}, 0, func(_ string, index int) {
			g.menuTimeLimit = index
		}).
		AddDropDown("Play as", []string{"White", "Random", "Black"}, 1, func(_ string, index int) {
			g.menuSide = index
		}).
		AddInputField("Name", "", 18, nil, func(text string) {
			g.menuName = text
		}).
		AddButton("Start", g.startGame).
		AddButton("Quit", func() {
			g.app.Stop()
		})
	g.menu.SetBorder(true)
	g.menu.SetTitle(" dama ")
	g.menu.SetTitleAlign(tview.AlignCenter)
}

func (g *GUI) buildGame() {
	g.table = tview.NewTable()
	g.table.SetBorder(true)
	g.initBoard()

	g.status = tview.NewTextView()
	g.clocks = tview.NewTextView()
	g.captures = tview.NewTextView()
	g.history = tview.NewTextView()
	g.history.SetBorder(true)
	g.history.SetTitle(" moves ")
}

func (g *GUI) gameLayout() *tview.Grid {
	help := tview.NewTextView().
		SetTextColor(g.theme.Label).
		SetText("enter select  u undo  r resign  esc menu")

	panel := tview.NewGrid().
		SetRows(1, 1, 1, 1, -1, 2).
		SetColumns(-1).
		AddItem(g.status, 0, 0, 1, 1, 0, 0, false).
		AddItem(g.clocks, 1, 0, 1, 1, 0, 0, false).
		AddItem(g.captures, 2, 0, 1, 1, 0, 0, false).
		AddItem(tview.NewTextView(), 3, 0, 1, 1, 0, 0, false).
		AddItem(g.history, 4, 0, 1, 1, 0, 0, false).
		AddItem(help, 5, 0, 1, 1, 0, 0, false)

	return tview.NewGrid().
		SetRows(-1, 20, -1).
		SetColumns(-1, 42, 32, -1).
		AddItem(g.table, 1, 1, 1, 1, 0, 0, true).
		AddItem(panel, 1, 2, 1, 1, 0, 0, false)
}

func (g *GUI) buildResult() {
	g.result = tview.NewModal().
		AddButtons([]string{"New game", "Quit"}).
		SetDoneFunc(func(buttonIndex int, _ string) {
			g.resultShown = false
			g.pages.HidePage("result")
			if buttonIndex == 0 {
				g.toMenu()
				return
			}
			g.app.Stop()
		})
}

func (g *GUI) startGame() {
	settings := game.Settings{
		Mode:       game.ModeLocal,
		Difficulty: menuDifficulties[g.menuDifficulty],
		TimeLimit:  menuTimeLimits[g.menuTimeLimit],
		HumanName:  strings.TrimSpace(g.menuName),
	}
	if g.menuMode == 0 {
		settings.Mode = game.ModeAI
	}
	switch g.menuSide {
	case 0:
		settings.HumanSide = board.SideWhite
	case 2:
		settings.HumanSide = board.SideBlack
	default:
		if rand.Intn(2) == 0 {
			settings.HumanSide = board.SideWhite
		} else {
			settings.HumanSide = board.SideBlack
		}
	}

	g.session = game.NewSession(&game.SessionConfig{
		Settings:     settings,
		EngineLogger: log.Println,
	})
	g.lastMove = nil
	g.clearSelection()
	g.engineBusy = false
	g.resultShown = false
	g.inGame = true

	g.table.SetTitle(fmt.Sprintf(" %s vs %s ",
		g.session.PlayerName(board.SideWhite), g.session.PlayerName(board.SideBlack)))
	g.render()
	g.pages.SwitchToPage("game")
	g.app.SetFocus(g.table)
	g.startClock()
	g.maybeEngineMove()
}

func (g *GUI) toMenu() {
	g.inGame = false
	g.stopClock()
	g.session = nil
	g.pages.SwitchToPage("menu")
	g.app.SetFocus(g.menu)
}

func (g *GUI) undo() {
	if g.session == nil || g.engineBusy {
		return
	}
	if g.session.Undo() {
		g.lastMove = nil
		g.clearSelection()
		g.render()
	}
}

func (g *GUI) resign() {
	if g.session == nil || g.engineBusy || g.session.GameOver() {
		return
	}
	resigner := g.session.Turn()
	if g.session.Settings().Mode == game.ModeAI {
		resigner = g.session.Settings().HumanSide
	}
	g.session.Resign(resigner)
	g.render()
	g.showResult()
}

func (g *GUI) playMove(mv board.Move) {
	if !g.session.Execute(mv) {
		g.render()
		return
	}
	played := mv
	g.lastMove = &played
	g.render()
	if g.session.GameOver() {
		g.showResult()
		return
	}
	g.maybeEngineMove()
}

// maybeEngineMove searches in the background so the interface stays
// responsive, then applies the move on the UI goroutine. Input is ignored
// while the engine thinks.
func (g *GUI) maybeEngineMove() {
	if g.session.GameOver() || !g.session.IsEngineTurn() || g.engineBusy {
		return
	}
	g.engineBusy = true
	g.renderStatus()
	s := g.session
	go func() {
		mv, ok := s.EngineMove()
		g.app.QueueUpdateDraw(func() {
			if g.session != s {
				return
			}
			g.engineBusy = false
			if ok && s.Execute(mv) {
				played := mv
				g.lastMove = &played
			}
			g.render()
			if s.GameOver() {
				g.showResult()
			}
		})
	}()
}

func (g *GUI) startClock() {
	if !g.session.Clock().Timed() {
		return
	}
	stop := make(chan struct{})
	g.stopTicker = stop
	go func() {
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				g.app.QueueUpdateDraw(g.tickClock)
			case <-stop:
				return
			}
		}
	}()
}

func (g *GUI) stopClock() {
	if g.stopTicker != nil {
		close(g.stopTicker)
		g.stopTicker = nil
	}
}

// tickClock charges the side to move with one second of wall time and ends
// the game when its budget runs out.
func (g *GUI) tickClock() {
	if g.session == nil || g.session.GameOver() {
		return
	}
	side := g.session.Turn()
	cl := g.session.Clock()
	cl.Reduce(side, time.Second)
	if cl.Expired(side) {
		g.session.Resign(side)
		g.render()
		g.showResult()
		return
	}
	g.renderClocks()
}

func (g *GUI) showResult() {
	g.resultShown = true
	winner := g.session.Winner()
	g.result.SetText(fmt.Sprintf("%s wins!\n%s\n\ncaptured  W %d / B %d",
		winner,
		g.session.PlayerName(winner),
		g.session.CaptureCount(board.SideWhite),
		g.session.CaptureCount(board.SideBlack),
	))
	g.pages.ShowPage("result")
	g.app.SetFocus(g.result)
}

func (g *GUI) render() {
	g.renderBoard()
	g.renderStatus()
	g.renderClocks()
	g.renderCaptures()
	g.renderHistory()
}

func (g *GUI) renderStatus() {
	switch {
	case g.session.GameOver():
		g.status.SetTextColor(g.theme.Accent)
		g.status.SetText(fmt.Sprintf("%s wins!", g.session.Winner()))
	case g.engineBusy:
		g.status.SetTextColor(g.theme.Accent)
		g.status.SetText("thinking...")
	default:
		g.status.SetTextColor(g.theme.Text)
		g.status.SetText(fmt.Sprintf("%s to move", g.session.Turn()))
	}
}

func (g *GUI) renderClocks() {
	cl := g.session.Clock()
	if !cl.Timed() {
		g.clocks.SetTextColor(g.theme.Label)
		g.clocks.SetText("no time control")
		return
	}
	color := g.theme.Text
	if cl.Remaining(g.session.Turn()) <= lowTimeWarning {
		color = g.theme.Warn
	}
	g.clocks.SetTextColor(color)
	g.clocks.SetText(fmt.Sprintf("W %s   B %s", cl.Format(board.SideWhite), cl.Format(board.SideBlack)))
}

func (g *GUI) renderCaptures() {
	g.captures.SetTextColor(g.theme.Text)
	g.captures.SetText(fmt.Sprintf("captured  W %d / B %d",
		g.session.CaptureCount(board.SideWhite),
		g.session.CaptureCount(board.SideBlack),
	))
}

func (g *GUI) renderHistory() {
	var sb strings.Builder
	for _, record := range g.session.History() {
		fmt.Fprintf(&sb, "%3d. %-5s %s\n", record.Number, record.Player, record.Move)
	}
	g.history.SetText(sb.String())
	g.history.ScrollToEnd()
}

// center wraps a primitive in a grid that keeps it at a fixed size in the
// middle of the screen.
func center(p tview.Primitive, width, height int) tview.Primitive {
	return tview.NewGrid().
		SetRows(-1, height, -1).
		SetColumns(-1, width, -1).
		AddItem(p, 1, 1, 1, 1, 0, 0, true)
}
