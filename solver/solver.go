package solver

import (
	"minesweeper/game"
)

// maxSegmentUnknowns を超えるセグメントはバックトラックしない (18程度が限界)
const maxSegmentUnknowns = 18

// Solver は盤面から確実に安全なマスを探します
// game.Hinter を満たします
type Solver struct {
	MaxSegment int
}

func New() *Solver {
	return &Solver{MaxSegment: maxSegmentUnknowns}
}

// SafeCell は論理 → タンクの順に安全なマスを探します
func (s *Solver) SafeCell(b *game.Board) (game.Coord, bool) {
	// 1. 論理的に「絶対に安全」
	if c, ok := findSafeMove(b); ok {
		return c, true
	}

	// 2. タンクアルゴリズムで地雷確率 0% のマス
	return newTank(b, s.MaxSegment).solve()
}

// findSafeMove は「周囲のフラグ数 == 数字」の数字マスから未開封マスを探します
func findSafeMove(b *game.Board) (game.Coord, bool) {
	for row := 0; row < b.Rows(); row++ {
		for col := 0; col < b.Columns(); col++ {
			cell := b.Cell(col, row)
			if !cell.IsRevealed || cell.Adjacent == 0 {
				continue
			}
			flags, hidden := neighborsInfo(b, col, row)
			if flags == cell.Adjacent && len(hidden) > 0 {
				return hidden[0], true
			}
		}
	}
	return game.Coord{}, false
}

// neighborsInfo は周囲のフラグ数と、未開封かつフラグ無しのマスを返します
func neighborsInfo(b *game.Board, col, row int) (flags int, hidden []game.Coord) {
	for _, n := range b.Neighbors(col, row) {
		c := b.Cell(n.Col, n.Row)
		if c.IsRevealed {
			continue
		}
		if c.IsFlagged {
			flags++
		} else {
			hidden = append(hidden, n)
		}
	}
	return
}
