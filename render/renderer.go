package render

import (
	"strconv"

	"github.com/sirupsen/logrus"

	"minesweeper/session"
	"minesweeper/viewmodel"
)

const (
	headerPad   = 10
	headerTextY = 12
)

// Renderer は Frame を Canvas への描画命令に変換します
// 状態はフォントのキャッシュだけです
type Renderer struct {
	canvas Canvas
	log    logrus.FieldLogger

	cellFont   Font
	headerFont Font
	resultFont Font
}

// New は canvas からフォントを取得して Renderer を作ります
func New(canvas Canvas, log logrus.FieldLogger) *Renderer {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Renderer{
		canvas:     canvas,
		log:        log,
		cellFont:   canvas.Font(CellFontSize),
		headerFont: canvas.Font(HeaderFontSize),
		resultFont: canvas.Font(ResultFontSize),
	}
}

// Render は1フレームを描きます
// 描画先のサイズが Frame と食い違う間は背景だけを塗って false を返します
func (r *Renderer) Render(f viewmodel.Frame) bool {
	defer r.present()

	r.canvas.Fill(Background)
	if w, h := r.canvas.Size(); w != f.Width || h != f.Height {
		r.log.WithFields(logrus.Fields{
			"canvas": [2]int{w, h},
			"frame":  [2]int{f.Width, f.Height},
		}).Debug("canvas size out of date, frame skipped")
		return false
	}

	r.drawHeader(f)
	for _, c := range f.Cells {
		r.drawCell(c)
	}
	r.drawResult(f)
	return true
}

func (r *Renderer) present() {
	if p, ok := r.canvas.(Presenter); ok {
		p.Present()
	}
}

func (r *Renderer) drawHeader(f viewmodel.Frame) {
	w := float32(f.Width)
	r.canvas.FillRect(0, 0, w, session.MarginTop-4, HeaderFill)

	r.canvas.Text("Mines: "+strconv.Itoa(f.Header.Mines), r.headerFont,
		headerPad, headerTextY, AlignStart, AlignStart, HeaderText)
	r.canvas.Text("Time: "+f.Header.Time, r.headerFont,
		w-headerPad, headerTextY, AlignEnd, AlignStart, TimeText)
	r.canvas.Text(f.Header.Difficulty, r.headerFont,
		w/2, headerTextY, AlignCenter, AlignStart, HeaderText)
}

// cellOrigin はマスの左上座標です
func cellOrigin(col, row int) (float32, float32) {
	return float32(session.MarginLeft + col*session.CellSize),
		float32(session.MarginTop + row*session.CellSize)
}

func (r *Renderer) drawCell(c viewmodel.CellView) {
	x, y := cellOrigin(c.Col, c.Row)
	const size = float32(session.CellSize)
	cx, cy := x+size/2, y+size/2

	if c.Revealed {
		r.canvas.FillRect(x, y, size, size, CellRevealed)
		switch {
		case c.Mine:
			r.canvas.FillCircle(cx, cy, size/4, CellMine)
		case c.Count > 0:
			r.canvas.Text(strconv.Itoa(c.Count), r.cellFont, cx, cy, AlignCenter, AlignCenter, NumberColor(c.Count))
		}
	} else {
		fill := CellHidden
		if c.Highlighted {
			fill = CellHighlight
		}
		r.canvas.FillRect(x, y, size, size, fill)
		if c.Flagged {
			r.drawFlag(x, y)
		}
	}

	// 枠線は全マス共通
	r.canvas.StrokeRect(x, y, size, size, 1, GridLine)
}

func (r *Renderer) drawFlag(x, y float32) {
	const size = float32(session.CellSize)
	flagW := max(6, size/3)
	flagH := max(8, size/2)
	poleX := x + size/3
	poleY := y + 4

	r.canvas.Line(poleX, poleY, poleX, poleY+flagH, 2, FlagColor)
	r.canvas.FillPolygon([]Point{
		{X: poleX + 2, Y: poleY},
		{X: poleX + 2 + flagW, Y: poleY + flagH/3},
		{X: poleX + 2, Y: poleY + flagH/2},
	}, FlagColor)
}

func (r *Renderer) drawResult(f viewmodel.Frame) {
	if f.Result == "" {
		return
	}
	r.canvas.Overlay(OverlayColor())
	r.canvas.Text(f.Result, r.resultFont,
		float32(f.Width)/2, float32(f.Height)/2, AlignCenter, AlignCenter, ResultText)
}
