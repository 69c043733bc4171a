package engine

import (
	"math"

	"github.com/ardacagankeser/checkers/board"
	"github.com/ardacagankeser/checkers/position"
)

const (
	scoreWin float64 = 10_000

	manValue  float64 = 100
	kingValue float64 = 300

	manAdvancementWeight      float64 = 2
	manCenterWeight           float64 = 3
	kingCenterWeight          float64 = 5
	kingEdgePenalty           float64 = 10
	mobilityWeight            float64 = 5
	promotionProximityWeight  float64 = 20
	captureDifferentialWeight float64 = 50
)

// Evaluate statically scores the position from the engine's perspective,
// positive meaning the engine is ahead. Terminal positions collapse to a
// fixed win or loss score.
func (e *Engine) Evaluate(b *board.Board) float64 {
	if b.GameOver() {
		switch b.Winner() {
		case e.side:
			return scoreWin
		case e.side.Opposite():
			return -scoreWin
		default:
			return 0
		}
	}

	var score float64

	// material and placement
	for row := int8(0); row < board.Height; row++ {
		for col := int8(0); col < board.Width; col++ {
			pc := b.PieceAt(position.New(row, col))
			if pc == board.NoPiece {
				continue
			}
			value := pieceValue(pc) + placementBonus(row, col, pc)
			if pc.Side == e.side {
				score += value
			} else {
				score -= value
			}
		}
	}

	// mobility of the side to move
	mobility := float64(len(b.GenerateMoves())) * mobilityWeight
	if b.Turn() == e.side {
		score += mobility
	} else {
		score -= mobility
	}

	score += e.promotionProximity(b)
	score += float64(int64(b.CaptureCount(e.side))-int64(b.CaptureCount(e.side.Opposite()))) * captureDifferentialWeight

	return score
}

func pieceValue(pc board.Piece) float64 {
	if pc.Rank == board.RankKing {
		return kingValue
	}
	return manValue
}

// placementBonus rewards advanced Men and centralized pieces. Kings are
// additionally penalized for hugging the board edge.
func placementBonus(row, col int8, pc board.Piece) float64 {
	var bonus float64
	centerDistance := math.Abs(float64(row)-3.5) + math.Abs(float64(col)-3.5)
	if pc.Rank == board.RankMan {
		if pc.Side == board.SideWhite {
			bonus += float64(board.Height-1-row) * manAdvancementWeight
		} else {
			bonus += float64(row) * manAdvancementWeight
		}
		bonus += math.Max(0, 7-centerDistance) * manCenterWeight
		return bonus
	}
	bonus += math.Max(0, 7-centerDistance) * kingCenterWeight
	if row == 0 || row == board.Height-1 || col == 0 || col == board.Width-1 {
		bonus -= kingEdgePenalty
	}
	return bonus
}

// promotionProximity rewards Men within striking distance of their promotion
// row, own Men positively and opposing Men negatively.
func (e *Engine) promotionProximity(b *board.Board) float64 {
	var bonus float64
	for row := int8(0); row < board.Height; row++ {
		for col := int8(0); col < board.Width; col++ {
			pc := b.PieceAt(position.New(row, col))
			if pc == board.NoPiece || pc.Rank != board.RankMan {
				continue
			}
			var proximity float64
			switch {
			case pc.Side == board.SideWhite && row <= 2:
				proximity = float64(3-row) * promotionProximityWeight
			case pc.Side == board.SideBlack && row >= 5:
				proximity = float64(row-4) * promotionProximityWeight
			}
			if pc.Side == e.side {
				bonus += proximity
			} else {
				bonus -= proximity
			}
		}
	}
	return bonus
}
