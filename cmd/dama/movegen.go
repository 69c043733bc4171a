package main

import (
	"fmt"
	"log"
	"strconv"

	"github.com/ardacagankeser/checkers/board"
)

func movegen(text string, turn board.Side, draw bool) error {
	log.Println("============ movegen")
	b, err := board.NewBoardFromText(text, turn)
	if err != nil {
		return err
	}
	fmt.Println("to move:", b.Turn())
	fmt.Println(b.Dump())
	fmt.Println(b.Draw())
	fmt.Println(b.State())
	dumpMoves(b)

	if draw {
		for _, mv := range b.GenerateMoves() {
			bb := b.Clone()
			bb.Apply(mv)
			fmt.Println(mv)
			fmt.Println(bb.Draw())
			fmt.Println(bb.Text())
		}
	}
	return nil
}

func dumpMoves(b *board.Board) {
	mvs := b.GenerateMoves()
	for i, mv := range mvs {
		pc := b.PieceAt(mv.From)
		promote := pc.Rank == board.RankMan && mv.To.Row == pc.Side.PromotionRow()
		fmt.Printf("option %*d: [%s] %s %s %s => %s (cap=%d) (pro=%v)\n",
			len(strconv.Itoa(len(mvs))), i+1, mv, b.Turn(), pc, mv.From, mv.To, len(mv.Captures), promote)
	}
}
