package viewmodel

import (
	"fmt"
	"time"

	"minesweeper/game"
	"minesweeper/session"
)

// CellView は1マス分の描画情報です
type CellView struct {
	Col, Row    int
	Revealed    bool
	Mine        bool
	Flagged     bool
	Highlighted bool
	Count       int
}

// Header はヘッダー行に表示する内容です
type Header struct {
	Mines      int
	Time       string
	Difficulty string
}

// Frame は1フレーム分の描画内容です
type Frame struct {
	Width, Height int
	Columns, Rows int
	Cells         []CellView
	Header        Header
	Result        string
}

// Cell は (col, row) の CellView を返します
func (f Frame) Cell(col, row int) CellView {
	return f.Cells[row*f.Columns+col]
}

// Input は Build に渡す状態のスナップショットです
type Input struct {
	Grid      session.GridModel
	Highlight *session.HighlightSet
	Clock     session.Clock
	Profile   session.Profile
	Now       time.Time
}

// Build は状態から Frame を組み立てます。副作用は強調表示の期限切れ処理だけです
func Build(in Input) Frame {
	cols, rows := in.Grid.Columns(), in.Grid.Rows()
	f := Frame{
		Width:   in.Profile.WindowWidth(),
		Height:  in.Profile.WindowHeight(),
		Columns: cols,
		Rows:    rows,
		Cells:   make([]CellView, 0, cols*rows),
		Header: Header{
			Mines:      max(0, in.Profile.Mines-in.Grid.FlaggedCount()),
			Time:       FormatElapsed(in.Clock.Elapsed(in.Now)),
			Difficulty: in.Profile.Label(),
		},
		Result: ResultText(in.Grid),
	}

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			c := in.Grid.Cell(col, row)
			v := CellView{
				Col:      col,
				Row:      row,
				Revealed: c.IsRevealed,
				Flagged:  c.IsFlagged,
			}
			if c.IsRevealed {
				v.Mine = c.IsMine
				v.Count = c.Adjacent
			} else if in.Highlight != nil {
				v.Highlighted = in.Highlight.Contains(game.Coord{Col: col, Row: row}, in.Now)
			}
			f.Cells = append(f.Cells, v)
		}
	}
	return f
}

// FromSession は動作中のセッションから Frame を作ります
func FromSession(s *session.Session) Frame {
	return Build(Input{
		Grid:      s.Grid(),
		Highlight: s.Highlight(),
		Clock:     s.Clock(),
		Profile:   s.Profile(),
		Now:       s.Now(),
	})
}

// FormatElapsed は経過時間を "mm:ss (Ns)" 形式にします
func FormatElapsed(d time.Duration) string {
	total := int(d / time.Second)
	if total < 0 {
		total = 0
	}
	return fmt.Sprintf("%02d:%02d (%ds)", total/60, total%60, total)
}

// ResultText は決着時の表示文字列です。続行中なら空文字
func ResultText(g session.GridModel) string {
	switch {
	case g.GameOver():
		return "GAME OVER"
	case g.Win():
		return "GAME CLEAR"
	default:
		return ""
	}
}
