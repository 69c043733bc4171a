package board

import (
	"golang.org/x/exp/slices"

	"github.com/ardacagankeser/checkers/position"
)

// GenerateMoves returns all legal moves for the side to move. Captures are
// mandatory: when any capture is available only capture moves are returned,
// filtered down to the longest chains on the board.
func (b *Board) GenerateMoves() []Move {
	var mvs []Move
	hasCaptures := b.HasMandatoryCaptures()
	for row := int8(0); row < Height; row++ {
		for col := int8(0); col < Width; col++ {
			pc := b.grid[row][col]
			if pc == NoPiece || pc.Side != b.turn {
				continue
			}
			from := position.New(row, col)
			if hasCaptures {
				mvs = append(mvs, b.captureMovesFrom(from, pc)...)
			} else {
				mvs = append(mvs, b.quietMovesFrom(from, pc)...)
			}
		}
	}
	if hasCaptures {
		mvs = filterLongest(mvs)
	}
	return mvs
}

// GenerateMovesFrom returns the legal moves of the piece on the given square.
// The result respects board-wide mandatory captures, so a piece whose longest
// chain falls short of another piece's chain has no moves.
func (b *Board) GenerateMovesFrom(from position.Square) []Move {
	pc := b.PieceAt(from)
	if pc == NoPiece || pc.Side != b.turn {
		return nil
	}
	var mvs []Move
	for _, mv := range b.GenerateMoves() {
		if mv.From == from {
			mvs = append(mvs, mv)
		}
	}
	return mvs
}

// HasMandatoryCaptures reports whether the side to move has at least one
// capture available.
func (b *Board) HasMandatoryCaptures() bool {
	for row := int8(0); row < Height; row++ {
		for col := int8(0); col < Width; col++ {
			pc := b.grid[row][col]
			if pc == NoPiece || pc.Side != b.turn {
				continue
			}
			if b.hasCaptureFrom(position.New(row, col), pc) {
				return true
			}
		}
	}
	return false
}

// hasCaptureFrom is an existence test only, it does not build chains.
func (b *Board) hasCaptureFrom(from position.Square, pc Piece) bool {
	if pc.Rank == RankMan {
		for _, d := range orthogonalDirections {
			enemy := b.PieceAt(from.Shift(d[0], d[1]))
			land := from.Shift(2*d[0], 2*d[1])
			if enemy != NoPiece && enemy.Side != b.turn && land.Valid() && b.PieceAt(land) == NoPiece {
				return true
			}
		}
		return false
	}
	for _, d := range orthogonalDirections {
		for dist := int8(1); ; dist++ {
			chk := from.Shift(d[0]*dist, d[1]*dist)
			if !chk.Valid() {
				break
			}
			occ := b.grid[chk.Row][chk.Col]
			if occ == NoPiece {
				continue
			}
			if occ.Side != b.turn {
				land := chk.Shift(d[0], d[1])
				if land.Valid() && b.PieceAt(land) == NoPiece {
					return true
				}
			}
			break
		}
	}
	return false
}

func (b *Board) quietMovesFrom(from position.Square, pc Piece) []Move {
	var mvs []Move
	if pc.Rank == RankMan {
		for _, d := range manDirections[pc.Side] {
			to := from.Shift(d[0], d[1])
			if to.Valid() && b.PieceAt(to) == NoPiece {
				mvs = append(mvs, Move{From: from, To: to})
			}
		}
		return mvs
	}
	for _, d := range orthogonalDirections {
		for dist := int8(1); ; dist++ {
			to := from.Shift(d[0]*dist, d[1]*dist)
			if !to.Valid() || b.PieceAt(to) != NoPiece {
				break
			}
			mvs = append(mvs, Move{From: from, To: to})
		}
	}
	return mvs
}

func (b *Board) captureMovesFrom(from position.Square, pc Piece) []Move {
	switch pc.Rank {
	case RankMan:
		return b.manCaptureMoves(from)
	case RankKing:
		return b.kingCaptureMoves(from)
	default:
		return nil
	}
}

// manCaptureMoves seeds a single jump in each direction and extends it into
// full chains, keeping only the longest chains per seed direction.
func (b *Board) manCaptureMoves(from position.Square) []Move {
	var mvs []Move
	for _, d := range orthogonalDirections {
		enemySq := from.Shift(d[0], d[1])
		land := from.Shift(2*d[0], 2*d[1])
		if !land.Valid() {
			continue
		}
		enemy := b.PieceAt(enemySq)
		if enemy == NoPiece || enemy.Side == b.turn || b.PieceAt(land) != NoPiece {
			continue
		}
		seed := Move{From: from, To: land, Captures: []position.Square{enemySq}}
		if ext := b.extendManCaptures(seed); len(ext) > 0 {
			mvs = append(mvs, filterLongest(ext)...)
		} else {
			mvs = append(mvs, seed)
		}
	}
	return mvs
}

// extendManCaptures returns every completed chain continuing the given move,
// or nothing when no further jump exists. Captured pieces are lifted off the
// probing grid immediately, so a chain never captures the same piece twice.
func (b *Board) extendManCaptures(mv Move) []Move {
	g := b.scratch(mv)
	var seqs []Move
	for _, d := range orthogonalDirections {
		enemySq := mv.To.Shift(d[0], d[1])
		land := mv.To.Shift(2*d[0], 2*d[1])
		if !land.Valid() {
			continue
		}
		enemy := g[enemySq.Row][enemySq.Col]
		if enemy == NoPiece || enemy.Side == b.turn || g[land.Row][land.Col] != NoPiece {
			continue
		}
		next := Move{
			From:     mv.From,
			To:       land,
			Captures: append(slices.Clone(mv.Captures), enemySq),
		}
		if sub := b.extendManCaptures(next); len(sub) > 0 {
			seqs = append(seqs, sub...)
		} else {
			seqs = append(seqs, next)
		}
	}
	return seqs
}

// kingCaptureMoves scans each ray for the first piece. An enemy piece with
// empty squares behind it yields one candidate chain per landing square.
func (b *Board) kingCaptureMoves(from position.Square) []Move {
	var mvs []Move
	for _, d := range orthogonalDirections {
		for dist := int8(1); ; dist++ {
			chk := from.Shift(d[0]*dist, d[1]*dist)
			if !chk.Valid() {
				break
			}
			occ := b.grid[chk.Row][chk.Col]
			if occ == NoPiece {
				continue
			}
			if occ.Side != b.turn {
				for landDist := int8(1); ; landDist++ {
					land := chk.Shift(d[0]*landDist, d[1]*landDist)
					if !land.Valid() || b.PieceAt(land) != NoPiece {
						break
					}
					mv := Move{From: from, To: land, Captures: []position.Square{chk}}
					b.extendKingCapture(&mv, d)
					mvs = append(mvs, mv)
				}
			}
			break
		}
	}
	return mvs
}

// extendKingCapture greedily extends a King chain from its landing square.
// The chain may not immediately reverse direction, and the first extension
// found is taken, jumping to the first empty square behind the enemy.
func (b *Board) extendKingCapture(mv *Move, last [2]int8) {
	g := b.scratch(*mv)
	forbidden := [2]int8{-last[0], -last[1]}
	for _, d := range orthogonalDirections {
		if d == forbidden {
			continue
		}
		for dist := int8(1); ; dist++ {
			chk := mv.To.Shift(d[0]*dist, d[1]*dist)
			if !chk.Valid() {
				break
			}
			occ := g[chk.Row][chk.Col]
			if occ == NoPiece {
				continue
			}
			if occ.Side != b.turn {
				land := chk.Shift(d[0], d[1])
				if land.Valid() && g[land.Row][land.Col] == NoPiece {
					ext := Move{
						From:     mv.From,
						To:       land,
						Captures: append(slices.Clone(mv.Captures), chk),
					}
					b.extendKingCapture(&ext, d)
					mv.To = ext.To
					mv.Captures = ext.Captures
					return
				}
			}
			break
		}
	}
}

// scratch returns a copy of the grid with the move's captures removed and the
// moving piece relocated, for probing chain continuations.
func (b *Board) scratch(mv Move) [Height][Width]Piece {
	g := b.grid
	for _, sq := range mv.Captures {
		g[sq.Row][sq.Col] = NoPiece
	}
	pc := g[mv.From.Row][mv.From.Col]
	g[mv.From.Row][mv.From.Col] = NoPiece
	g[mv.To.Row][mv.To.Col] = pc
	return g
}

func filterLongest(mvs []Move) []Move {
	maxLen := 0
	for _, mv := range mvs {
		maxLen = max(maxLen, len(mv.Captures))
	}
	longest := mvs[:0]
	for _, mv := range mvs {
		if len(mv.Captures) == maxLen {
			longest = append(longest, mv)
		}
	}
	return longest
}
