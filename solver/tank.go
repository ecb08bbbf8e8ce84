package solver

import (
	"slices"

	"minesweeper/game"

	"github.com/samber/lo"
)

// tank はバックトラック探索を行います
type tank struct {
	board      *game.Board
	maxUnknown int
}

func newTank(b *game.Board, maxUnknown int) *tank {
	return &tank{board: b, maxUnknown: maxUnknown}
}

// --- セグメント（連結成分）管理 ---

type segment struct {
	unknowns []game.Coord // このセグメントに含まれる未開封マス
	rules    []rule       // このセグメント内の数字マス制約
}

type rule struct {
	cells []int // unknownsのインデックスのリスト
	mines int   // 必要な地雷数
}

// solve は全ての解で地雷にならないマスを返します
func (t *tank) solve() (game.Coord, bool) {
	for _, seg := range t.createSegments() {
		// セグメントが大きすぎる場合は解けないのでスキップ
		if len(seg.unknowns) > t.maxUnknown {
			continue
		}

		solutions := t.solveSegment(seg)
		if len(solutions) == 0 {
			continue // 解なし（矛盾）
		}

		for i, pos := range seg.unknowns {
			mineSomewhere := lo.SomeBy(solutions, func(sol []bool) bool { return sol[i] })
			if !mineSomewhere {
				return pos, true
			}
		}
	}
	return game.Coord{}, false
}

func (t *tank) key(c game.Coord) int {
	return c.Row*t.board.Columns() + c.Col
}

func (t *tank) createSegments() []*segment {
	b := t.board

	// 1. 未確定の数字マスと、それに隣接する未開封マスをリスト化
	unknownMap := make(map[int]game.Coord)
	var numbered []game.Coord

	for row := 0; row < b.Rows(); row++ {
		for col := 0; col < b.Columns(); col++ {
			c := b.Cell(col, row)
			if !c.IsRevealed || c.Adjacent == 0 {
				continue
			}
			flags, hidden := neighborsInfo(b, col, row)
			if flags == c.Adjacent || len(hidden) == 0 {
				continue
			}
			for _, h := range hidden {
				unknownMap[t.key(h)] = h
			}
			numbered = append(numbered, game.Coord{Col: col, Row: row})
		}
	}

	// 2. 連結成分分解
	// unknownsをノード、数字マスをエッジとしたグラフを作る
	adj := make(map[int][]int)
	for _, num := range numbered {
		_, hidden := neighborsInfo(b, num.Col, num.Row)
		for i := 0; i < len(hidden)-1; i++ {
			u1 := t.key(hidden[i])
			for j := i + 1; j < len(hidden); j++ {
				u2 := t.key(hidden[j])
				adj[u1] = append(adj[u1], u2)
				adj[u2] = append(adj[u2], u1)
			}
		}
	}

	// map の順序に依存しないよう、キーを盤面順に並べる
	keys := lo.Keys(unknownMap)
	slices.Sort(keys)

	visited := make(map[int]bool)
	var segments []*segment

	for _, start := range keys {
		if visited[start] {
			continue
		}

		// BFSでグループ探索
		var group []int
		queue := []int{start}
		visited[start] = true
		for len(queue) > 0 {
			curr := queue[0]
			queue = queue[1:]
			group = append(group, curr)

			for _, n := range adj[curr] {
				if !visited[n] {
					visited[n] = true
					queue = append(queue, n)
				}
			}
		}
		slices.Sort(group)

		seg := &segment{unknowns: make([]game.Coord, len(group))}
		local := make(map[int]int, len(group))
		for i, k := range group {
			seg.unknowns[i] = unknownMap[k]
			local[k] = i
		}

		// ルール生成
		for _, num := range numbered {
			flags, hidden := neighborsInfo(b, num.Col, num.Row)
			// 連結しているので、最初の1つが含まれていれば全て含まれる
			if _, ok := local[t.key(hidden[0])]; !ok {
				continue
			}
			r := rule{
				cells: make([]int, len(hidden)),
				mines: b.Cell(num.Col, num.Row).Adjacent - flags,
			}
			for i, h := range hidden {
				r.cells[i] = local[t.key(h)]
			}
			seg.rules = append(seg.rules, r)
		}
		segments = append(segments, seg)
	}

	return segments
}

// --- 探索ロジック ---

func (t *tank) solveSegment(seg *segment) [][]bool {
	var solutions [][]bool
	config := make([]bool, len(seg.unknowns))
	t.backtrack(seg, 0, config, &solutions)
	return solutions
}

func (t *tank) backtrack(seg *segment, index int, config []bool, solutions *[][]bool) {
	if index == len(seg.unknowns) {
		if isValid(seg, config, index, true) {
			sol := make([]bool, len(config))
			copy(sol, config)
			*solutions = append(*solutions, sol)
		}
		return
	}

	// 枝刈り
	if !isValid(seg, config, index, false) {
		return
	}

	// 仮定1: 地雷
	config[index] = true
	t.backtrack(seg, index+1, config, solutions)

	// 仮定2: 安全
	config[index] = false
	t.backtrack(seg, index+1, config, solutions)
}

// isValid は decided 個目までを確定として制約をチェックします
func isValid(seg *segment, config []bool, decided int, final bool) bool {
	for _, r := range seg.rules {
		mines, open := 0, 0
		for _, idx := range r.cells {
			switch {
			case idx >= decided:
				open++
			case config[idx]:
				mines++
			}
		}

		if final {
			// 最終チェック: 地雷数がぴったり一致すること
			if mines != r.mines {
				return false
			}
			continue
		}
		// 途中チェック: 超過、または残り全てを地雷にしても足りない
		if mines > r.mines || mines+open < r.mines {
			return false
		}
	}
	return true
}
