package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/samber/lo"
)

// Option は NewBoard の設定を変更します
type Option func(*boardOptions)

type boardOptions struct {
	rng    *rand.Rand
	mines  []Coord
	hinter Hinter
}

// WithRand は地雷配置に使う乱数源を指定します
func WithRand(r *rand.Rand) Option {
	return func(o *boardOptions) { o.rng = r }
}

// WithMines は地雷の位置を固定します (テスト用)
// 指定した場合 mineCount は無視されます
func WithMines(coords ...Coord) Option {
	return func(o *boardOptions) { o.mines = coords }
}

// WithHinter はヒント探索に使う Hinter を指定します
func WithHinter(h Hinter) Option {
	return func(o *boardOptions) { o.hinter = h }
}

// NewBoard は指定されたサイズと地雷数で盤面を初期化して返します
func NewBoard(cols, rows, mineCount int, opts ...Option) (*Board, error) {
	o := boardOptions{}
	for _, opt := range opts {
		opt(&o)
	}

	if cols <= 0 || rows <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, cols, rows)
	}
	if o.mines != nil {
		mineCount = len(o.mines)
	}
	if mineCount < 0 || mineCount >= cols*rows {
		return nil, fmt.Errorf("%w: %d mines on %dx%d", ErrTooManyMines, mineCount, cols, rows)
	}

	board := &Board{
		cols:      cols,
		rows:      rows,
		mineCount: mineCount,
		cells: lo.Times(rows, func(_ int) []Cell {
			return make([]Cell, cols)
		}),
		hinter: o.hinter,
	}

	if o.mines != nil {
		for _, c := range o.mines {
			if !board.in(c.Col, c.Row) || board.cells[c.Row][c.Col].IsMine {
				return nil, fmt.Errorf("%w: bad mine position %v", ErrInvalidDimensions, c)
			}
			board.cells[c.Row][c.Col].IsMine = true
		}
	} else {
		rng := o.rng
		if rng == nil {
			rng = rand.New(rand.NewSource(time.Now().UnixNano()))
		}
		board.placeMines(rng, mineCount)
	}
	board.calculateNeighbors()

	return board, nil
}

// placeMines は地雷をランダムに配置します
func (b *Board) placeMines(rng *rand.Rand, count int) {
	minesPlaced := 0
	for minesPlaced < count {
		col := rng.Intn(b.cols)
		row := rng.Intn(b.rows)

		if !b.cells[row][col].IsMine {
			b.cells[row][col].IsMine = true
			minesPlaced++
		}
	}
}

// calculateNeighbors は全マスの Adjacent を計算します
func (b *Board) calculateNeighbors() {
	for row := 0; row < b.rows; row++ {
		for col := 0; col < b.cols; col++ {
			if b.cells[row][col].IsMine {
				continue
			}
			count := 0
			for _, n := range b.Neighbors(col, row) {
				if b.cells[n.Row][n.Col].IsMine {
					count++
				}
			}
			b.cells[row][col].Adjacent = count
		}
	}
}

func (b *Board) in(col, row int) bool {
	return col >= 0 && col < b.cols && row >= 0 && row < b.rows
}

// Columns は横のマス数を返します
func (b *Board) Columns() int { return b.cols }

// Rows は縦のマス数を返します
func (b *Board) Rows() int { return b.rows }

// MineCount は地雷の総数を返します
func (b *Board) MineCount() int { return b.mineCount }

// GameOver は地雷を開けたかどうかを返します
func (b *Board) GameOver() bool { return b.gameOver }

// Win は全ての安全マスを開けたかどうかを返します
func (b *Board) Win() bool { return b.win }

// Cell は指定座標のマスを返します。範囲外ならゼロ値です
func (b *Board) Cell(col, row int) Cell {
	if !b.in(col, row) {
		return Cell{}
	}
	return b.cells[row][col]
}

// Neighbors は周囲8マスのうち盤面内の座標を返します
func (b *Board) Neighbors(col, row int) []Coord {
	out := make([]Coord, 0, 8)
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dc == 0 && dr == 0 {
				continue
			}
			if b.in(col+dc, row+dr) {
				out = append(out, Coord{Col: col + dc, Row: row + dr})
			}
		}
	}
	return out
}

// FlaggedCount は立っているフラグの数を返します
func (b *Board) FlaggedCount() int { return b.flagged }

// Reveal は指定された座標のマスを開けます
// 地雷なら GameOver、安全マスを全て開けたら Win になります
func (b *Board) Reveal(col, row int) {
	// 決着後・範囲外は何もしない
	if b.gameOver || b.win || !b.in(col, row) {
		return
	}

	cell := &b.cells[row][col]
	if cell.IsRevealed || cell.IsFlagged {
		return
	}

	if cell.IsMine {
		cell.IsRevealed = true
		b.gameOver = true
		return
	}

	// 0連鎖（Flood Fill）は再帰ではなくキューで行う
	queue := []Coord{{Col: col, Row: row}}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]

		c := &b.cells[p.Row][p.Col]
		if c.IsRevealed || c.IsFlagged {
			continue
		}
		c.IsRevealed = true
		b.revealed++

		if c.Adjacent == 0 {
			for _, n := range b.Neighbors(p.Col, p.Row) {
				nc := b.cells[n.Row][n.Col]
				if !nc.IsRevealed && !nc.IsFlagged && !nc.IsMine {
					queue = append(queue, n)
				}
			}
		}
	}

	if b.revealed == b.cols*b.rows-b.mineCount {
		b.win = true
	}
}

// ToggleFlag は指定された座標のフラッグを切り替えます
func (b *Board) ToggleFlag(col, row int) {
	if b.gameOver || b.win || !b.in(col, row) {
		return
	}
	cell := &b.cells[row][col]

	// すでに開いているマスにはフラッグを置けない
	if cell.IsRevealed {
		return
	}

	cell.IsFlagged = !cell.IsFlagged
	if cell.IsFlagged {
		b.flagged++
	} else {
		b.flagged--
	}
}

// HintCoordinates は次に開けるべき安全なマスを返します
// 決着後、または安全な未開封マスが無い場合は false です
func (b *Board) HintCoordinates() (Coord, bool) {
	if b.gameOver || b.win {
		return Coord{}, false
	}
	if b.hinter != nil {
		// 誤ったフラグから導いた地雷マスは捨てる
		if c, ok := b.hinter.SafeCell(b); ok && b.in(c.Col, c.Row) && !b.cells[c.Row][c.Col].IsMine {
			return c, true
		}
	}
	return b.fallbackHint()
}

// fallbackHint は論理で決まらない時に、周囲の地雷が最も少ない安全マスを選びます
func (b *Board) fallbackHint() (Coord, bool) {
	var candidates []Coord
	for row := 0; row < b.rows; row++ {
		for col := 0; col < b.cols; col++ {
			c := b.cells[row][col]
			if !c.IsRevealed && !c.IsFlagged && !c.IsMine {
				candidates = append(candidates, Coord{Col: col, Row: row})
			}
		}
	}
	if len(candidates) == 0 {
		return Coord{}, false
	}
	return lo.MinBy(candidates, func(a, c Coord) bool {
		return b.cells[a.Row][a.Col].Adjacent < b.cells[c.Row][c.Col].Adjacent
	}), true
}

// DebugString は現在の盤面を文字列で返します
// 未開封のマスは「-」、旗は「F」、地雷は「*」、0 は「.」です
func (b *Board) DebugString() string {
	out := make([]byte, 0, (b.cols*2+1)*b.rows)
	for row := 0; row < b.rows; row++ {
		for col := 0; col < b.cols; col++ {
			cell := b.cells[row][col]
			switch {
			case !cell.IsRevealed && cell.IsFlagged:
				out = append(out, 'F')
			case !cell.IsRevealed:
				out = append(out, '-')
			case cell.IsMine:
				out = append(out, '*')
			case cell.Adjacent == 0:
				out = append(out, '.')
			default:
				out = append(out, byte('0'+cell.Adjacent))
			}
			out = append(out, ' ')
		}
		out = append(out, '\n')
	}
	return string(out)
}
