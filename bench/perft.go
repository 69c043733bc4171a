package bench

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ardacagankeser/checkers/board"
)

func Perft(depth int, text string, turn board.Side, parallel, verbose bool, out chan string) error {
	var nodes, cap, pcs, chn, pro uint64
	b, err := board.NewBoardFromText(text, turn)
	if err != nil {
		return err
	}

	var run perftFunc
	if parallel {
		run = runPerftParallel
	} else {
		run = runPerft
	}

	start := time.Now()
	run(b, depth, true, verbose, out, &nodes, &cap, &pcs, &chn, &pro)
	end := time.Now()

	out <- message.NewPrinter(language.English).
		Sprintf("d=%d nodes=%d rate=%dn/s cap=%d pcs=%d chn=%d pro=%d (%.3fs elapsed)",
			depth, nodes, int(float64(nodes)/end.Sub(start).Seconds()), cap, pcs, chn, pro, end.Sub(start).Seconds())

	return nil
}

type perftFunc func(b *board.Board, d int, root, verbose bool, out chan string, nodes, cap, pcs, chn, pro *uint64) uint64

func runPerft(b *board.Board, d int, root, verbose bool, out chan string, nodes, cap, pcs, chn, pro *uint64) uint64 {
	if d == 0 {
		*nodes++
		return 1
	}

	var sum uint64
	for _, mv := range b.GenerateMoves() {
		var child uint64
		bb := b.Clone()
		bb.Apply(mv)
		if d != 2 {
			child = runPerft(bb, d-1, false, verbose, out, nodes, cap, pcs, chn, pro)
		} else {
			leafMoves := bb.GenerateMoves()
			child = uint64(len(leafMoves))
			*nodes += child
			for _, leaf := range leafMoves {
				if leaf.IsCapture() {
					*cap++
					*pcs += uint64(len(leaf.Captures))
				}
				if len(leaf.Captures) >= 2 {
					*chn++
				}
				if pc := bb.PieceAt(leaf.From); pc.Rank == board.RankMan && leaf.To.Row == pc.Side.PromotionRow() {
					*pro++
				}
			}
		}
		if verbose && root {
			out <- fmt.Sprintf("%s: %d", mv.String(), child)
		}
		sum += child
	}
	return sum
}

func runPerftParallel(b *board.Board, d int, root, verbose bool, out chan string, nodes, cap, pcs, chn, pro *uint64) uint64 {
	if d == 0 {
		atomic.AddUint64(nodes, 1)
		return 1
	}

	var sum uint64
	var wg sync.WaitGroup
	for _, mv := range b.GenerateMoves() {
		mv := mv
		wg.Add(1)
		go func() {
			defer wg.Done()
			var child uint64
			bb := b.Clone()
			bb.Apply(mv)
			if d != 2 {
				child = runPerftParallel(bb, d-1, false, verbose, out, nodes, cap, pcs, chn, pro)
			} else {
				leafMoves := bb.GenerateMoves()
				child = uint64(len(leafMoves))
				atomic.AddUint64(nodes, child)
				for _, leaf := range leafMoves {
					if leaf.IsCapture() {
						atomic.AddUint64(cap, 1)
						atomic.AddUint64(pcs, uint64(len(leaf.Captures)))
					}
					if len(leaf.Captures) >= 2 {
						atomic.AddUint64(chn, 1)
					}
					if pc := bb.PieceAt(leaf.From); pc.Rank == board.RankMan && leaf.To.Row == pc.Side.PromotionRow() {
						atomic.AddUint64(pro, 1)
					}
				}
			}
			if verbose && root {
				out <- fmt.Sprintf("%s: %d", mv.String(), child)
			}
			atomic.AddUint64(&sum, child)
		}()
	}
	wg.Wait()
	return sum
}
