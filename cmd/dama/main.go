package main

import (
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"strings"

	"github.com/ardacagankeser/checkers/board"
	"github.com/ardacagankeser/checkers/console"
	"github.com/ardacagankeser/checkers/gui"
)

const (
	exitOK = iota
	exitErr
)

var (
	profile = flag.Bool("profile", false, "serve pprof endpoint")

	consoleRun = flag.Bool("console", false, "run the line oriented console instead of the full screen interface")

	turnFlag = flag.String("turn", "white", "side to move in the given position")

	movegenRun  = flag.Bool("movegen", false, "run movegen mode")
	movegenDraw = flag.Bool("movegen.draw", false, "draw applied moves in movegen mode")

	stepRun = flag.Bool("step", false, "run step mode")

	searchRun        = flag.Bool("search", false, "run search mode")
	searchSteps      = flag.Int("search.steps", 50, "maximum full moves to play in search mode")
	searchDifficulty = flag.String("search.difficulty", "hard", "engine difficulty in search mode")
	searchSelfplay   = flag.Bool("search.selfplay", false, "play the engine against itself instead of a random mover")

	perftRun   = flag.Bool("perft", false, "run perft mode")
	perftDepth = flag.Int("perft.depth", 5, "perft depth")

	logPath = flag.String("log", "dama.log", "engine log destination for the full screen interface")
)

func main() {
	flag.Parse()

	if *profile {
		runProfiler()
	}

	err := realMain(flag.Args())
	if err != nil {
		log.Println(err)
		os.Exit(exitErr)
	}
	os.Exit(exitOK)
}

func runProfiler() {
	go func() {
		addr := "localhost:6060"
		log.Printf("starting pprof endpoint: http://%s/debug/pprof\n", addr)
		_ = http.ListenAndServe(addr, nil)
	}()
}

func realMain(args []string) error {
	turn, err := board.ParseSide(*turnFlag)
	if err != nil {
		return err
	}
	text := board.NewBoard().Text()
	if len(args) > 0 {
		text = strings.Join(args, " ")
	}
	if *movegenRun {
		return movegen(text, turn, *movegenDraw)
	}
	if *stepRun {
		return step()
	}
	if *searchRun {
		return search(*searchSteps, *searchDifficulty, *searchSelfplay)
	}
	if *perftRun {
		return perft(*perftDepth, text, turn)
	}
	if *consoleRun {
		return console.NewInterface().Run()
	}

	if err := initLog(*logPath, "engine: "); err != nil {
		return err
	}
	return gui.New().Run()
}

// initLog redirects the standard logger to a file so engine output does not
// tear the full screen interface.
func initLog(dest, prefix string) error {
	f, err := os.OpenFile(dest, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return err
	}
	log.SetOutput(f)
	log.SetPrefix(prefix)
	return nil
}
