package engine

import (
	"fmt"
	"math"
	"time"

	"golang.org/x/exp/constraints"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ardacagankeser/checkers/board"
)

func DefaultLogger(a ...any) {
	fmt.Println(a...)
}

type EngineConfig struct {
	// Side is the side the engine plays. BestMove refuses to search when it
	// is not this side's turn.
	Side       board.Side
	Difficulty Difficulty
	Logger     func(...any)
}

type Engine struct {
	side     board.Side
	maxDepth uint8

	nodes       uint32
	elapsedTime time.Duration
	logger      func(...any)
}

func NewEngine(cfg *EngineConfig) *Engine {
	if cfg.Logger == nil {
		cfg.Logger = DefaultLogger
	}
	if cfg.Difficulty == DifficultyUnknown {
		cfg.Difficulty = DifficultyMedium
	}

	return &Engine{
		side:     cfg.Side,
		maxDepth: cfg.Difficulty.Depth(),
		logger:   cfg.Logger,
	}
}

func (e *Engine) Side() board.Side {
	return e.side
}

// BestMove searches the position to the engine's fixed depth and returns its
// strongest move. It returns false when it is not the engine's turn or when
// no legal move exists. Ties are broken by move generation order.
func (e *Engine) BestMove(b *board.Board) (board.Move, bool) {
	if b.Turn() != e.side {
		return board.Move{}, false
	}
	mvs := b.GenerateMoves()
	if len(mvs) == 0 {
		return board.Move{}, false
	}

	e.nodes = 0
	startTime := time.Now()

	bestMove := mvs[0]
	bestScore := math.Inf(-1)
	alpha, beta := math.Inf(-1), math.Inf(1)
	for _, mv := range mvs {
		bb := b.Clone()
		bb.Apply(mv)
		score := e.minimax(bb, e.maxDepth-1, alpha, beta, false)
		if score > bestScore {
			bestScore = score
			bestMove = mv
		}
		alpha = max(alpha, score)
		if beta <= alpha {
			break
		}
	}
	e.elapsedTime = time.Since(startTime)

	e.logger(message.NewPrinter(language.English).
		Sprintf("depth:%d [%s] %s nodes:%d (%.0fn/s) t:%s",
			e.maxDepth, formatScoreDebug(bestScore), bestMove, e.nodes,
			float64(e.nodes)/(e.elapsedTime + 1).Seconds(), e.elapsedTime))

	return bestMove, true
}

// minimax walks the game tree with alpha-beta pruning. The engine is always
// the maximizing player, scores come from Evaluate at the horizon.
func (e *Engine) minimax(b *board.Board, depth uint8, alpha, beta float64, maximizing bool) float64 {
	e.nodes++

	if depth == 0 || b.GameOver() {
		return e.Evaluate(b)
	}

	mvs := b.GenerateMoves()
	if len(mvs) == 0 {
		if maximizing {
			return math.Inf(-1)
		}
		return math.Inf(1)
	}

	if maximizing {
		maxScore := math.Inf(-1)
		for _, mv := range mvs {
			bb := b.Clone()
			bb.Apply(mv)
			score := e.minimax(bb, depth-1, alpha, beta, false)
			maxScore = max(maxScore, score)
			alpha = max(alpha, score)
			if beta <= alpha {
				break
			}
		}
		return maxScore
	}

	minScore := math.Inf(1)
	for _, mv := range mvs {
		bb := b.Clone()
		bb.Apply(mv)
		score := e.minimax(bb, depth-1, alpha, beta, true)
		minScore = min(minScore, score)
		beta = min(beta, score)
		if beta <= alpha {
			break
		}
	}
	return minScore
}

func max[T constraints.Ordered](x1, x2 T) T {
	if x1 > x2 {
		return x1
	}
	return x2
}

func min[T constraints.Ordered](x1, x2 T) T {
	if x1 < x2 {
		return x1
	}
	return x2
}

func formatScoreDebug(s float64) string {
	switch {
	case math.IsInf(s, 1) || s == scoreWin:
		return "+win"
	case math.IsInf(s, -1) || s == -scoreWin:
		return "-win"
	case s > 0:
		return fmt.Sprintf("+%.2f", s/100)
	case s < 0:
		return fmt.Sprintf("%.2f", s/100)
	default:
		return "0"
	}
}
