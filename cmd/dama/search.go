package main

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/ardacagankeser/checkers/board"
	"github.com/ardacagankeser/checkers/engine"
)

func search(steps int, difficulty string, selfplay bool) error {
	d, err := engine.ParseDifficulty(difficulty)
	if err != nil {
		return err
	}

	rand.Seed(time.Now().Unix())
	b := board.NewBoard()
	white := engine.NewEngine(&engine.EngineConfig{
		Side:       board.SideWhite,
		Difficulty: d,
	})
	var black *engine.Engine
	if selfplay {
		black = engine.NewEngine(&engine.EngineConfig{
			Side:       board.SideBlack,
			Difficulty: d,
		})
	}
	fmt.Println(b.Draw())
	fmt.Println(b.DebugString())

	getMove := func(b *board.Board) (board.Move, bool) {
		switch {
		case b.Turn() == board.SideWhite:
			return white.BestMove(b)
		case black != nil:
			return black.BestMove(b)
		default:
			mvs := b.GenerateMoves()
			if len(mvs) == 0 {
				return board.Move{}, false
			}
			return mvs[rand.Intn(len(mvs))], true
		}
	}

	var history []board.Move
	for step := 1; step <= steps; step++ {
		fmt.Printf("\n=============== Move %d\n", step)

		// White's move
		if b.Turn() == board.SideWhite {
			mv, ok := getMove(b)
			if !ok {
				break
			}
			b.Apply(mv)
			history = append(history, mv)

			fmt.Printf("\n>>> %s: %s\n", board.SideWhite, mv)
			fmt.Println(b.Draw())
			if !b.State().IsRunning() {
				break
			}
			<-time.Tick(2 * time.Millisecond)
		}

		// Black's move
		if b.Turn() == board.SideBlack {
			mv, ok := getMove(b)
			if !ok {
				break
			}
			b.Apply(mv)
			history = append(history, mv)

			fmt.Printf("\n>>> %s: %s\n", board.SideBlack, mv)
			fmt.Println(b.Draw())
			if !b.State().IsRunning() {
				break
			}
			<-time.Tick(2 * time.Second)
		}
	}
	log.Println("=============== game ended:", b.State())
	fmt.Println(b.Text())
	dumpHistory(history)

	return nil
}

// dumpHistory prints the game in numbered pairs. White always owns the even
// indices since turns strictly alternate from the starting position.
func dumpHistory(mvs []board.Move) {
	for i, mv := range mvs {
		if i%2 == 0 {
			fmt.Printf("%d.", i/2+1)
		}
		fmt.Printf("%s ", mv)
	}
	fmt.Println()
}
