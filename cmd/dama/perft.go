package main

import (
	"log"

	"github.com/ardacagankeser/checkers/bench"
	"github.com/ardacagankeser/checkers/board"
)

func perft(depth int, text string, turn board.Side) error {
	log.Printf("============ perft(%d)\n", depth)

	out := make(chan string, 64)
	done := make(chan struct{})
	go func() {
		for s := range out {
			log.Println(s)
		}
		close(done)
	}()

	err := bench.Perft(depth, text, turn, true, true, out)
	close(out)
	<-done
	return err
}
