package render

import (
	"image/color"
	"io"
	"testing"

	"github.com/sirupsen/logrus"

	"minesweeper/session"
	"minesweeper/viewmodel"
)

type fakeFont float64

func (f fakeFont) Size() float64 { return float64(f) }

type call struct {
	op    string
	x, y  float32
	w, h  float32
	text  string
	color color.Color
	font  Font
}

// recordingCanvas は描画命令を記録するだけの Canvas です
type recordingCanvas struct {
	width, height int
	calls         []call
	fonts         []float64
	presented     int
}

func (c *recordingCanvas) Size() (int, int)        { return c.width, c.height }
func (c *recordingCanvas) Resize(width, height int) { c.width, c.height = width, height }
func (c *recordingCanvas) Font(size float64) Font {
	c.fonts = append(c.fonts, size)
	return fakeFont(size)
}
func (c *recordingCanvas) Fill(col color.Color) {
	c.calls = append(c.calls, call{op: "fill", color: col})
}
func (c *recordingCanvas) FillRect(x, y, w, h float32, col color.Color) {
	c.calls = append(c.calls, call{op: "rect", x: x, y: y, w: w, h: h, color: col})
}
func (c *recordingCanvas) StrokeRect(x, y, w, h, _ float32, col color.Color) {
	c.calls = append(c.calls, call{op: "stroke", x: x, y: y, w: w, h: h, color: col})
}
func (c *recordingCanvas) FillCircle(cx, cy, r float32, col color.Color) {
	c.calls = append(c.calls, call{op: "circle", x: cx, y: cy, w: r, color: col})
}
func (c *recordingCanvas) Line(x0, y0, _, _, _ float32, col color.Color) {
	c.calls = append(c.calls, call{op: "line", x: x0, y: y0, color: col})
}
func (c *recordingCanvas) FillPolygon(pts []Point, col color.Color) {
	c.calls = append(c.calls, call{op: "polygon", x: pts[0].X, y: pts[0].Y, color: col})
}
func (c *recordingCanvas) Text(s string, f Font, x, y float32, _, _ Align, col color.Color) {
	c.calls = append(c.calls, call{op: "text", x: x, y: y, text: s, color: col, font: f})
}
func (c *recordingCanvas) Overlay(col color.Color) {
	c.calls = append(c.calls, call{op: "overlay", color: col})
}
func (c *recordingCanvas) Present() { c.presented++ }

func (c *recordingCanvas) count(op string) int {
	n := 0
	for _, cl := range c.calls {
		if cl.op == op {
			n++
		}
	}
	return n
}

func (c *recordingCanvas) texts() []string {
	var out []string
	for _, cl := range c.calls {
		if cl.op == "text" {
			out = append(out, cl.text)
		}
	}
	return out
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.Out = io.Discard
	return l
}

func frame(p session.Profile) viewmodel.Frame {
	f := viewmodel.Frame{
		Width:   p.WindowWidth(),
		Height:  p.WindowHeight(),
		Columns: p.Columns,
		Rows:    p.Rows,
		Header:  viewmodel.Header{Mines: p.Mines, Time: "00:00 (0s)", Difficulty: p.Label()},
	}
	for row := 0; row < p.Rows; row++ {
		for col := 0; col < p.Columns; col++ {
			f.Cells = append(f.Cells, viewmodel.CellView{Col: col, Row: row})
		}
	}
	return f
}

func setCell(f *viewmodel.Frame, v viewmodel.CellView) {
	f.Cells[v.Row*f.Columns+v.Col] = v
}

func newRenderer(p session.Profile) (*Renderer, *recordingCanvas) {
	c := &recordingCanvas{width: p.WindowWidth(), height: p.WindowHeight()}
	return New(c, quietLogger()), c
}

func TestNewCachesFonts(t *testing.T) {
	_, c := newRenderer(session.Easy)
	if len(c.fonts) != 3 {
		t.Errorf("requested %d fonts, want 3", len(c.fonts))
	}
}

func TestRenderHeader(t *testing.T) {
	r, c := newRenderer(session.Easy)
	f := frame(session.Easy)
	f.Header.Mines = 7
	f.Header.Time = "01:05 (65s)"

	if !r.Render(f) {
		t.Fatal("Render skipped a frame with matching size")
	}
	want := map[string]color.Color{
		"Mines: 7":          HeaderText,
		"Time: 01:05 (65s)": TimeText,
		"EASY":              HeaderText,
	}
	for _, cl := range c.calls {
		if cl.op != "text" {
			continue
		}
		if col, ok := want[cl.text]; ok {
			if cl.color != col {
				t.Errorf("%q drawn in %v, want %v", cl.text, cl.color, col)
			}
			if cl.font.Size() != HeaderFontSize {
				t.Errorf("%q drawn at size %v", cl.text, cl.font.Size())
			}
			delete(want, cl.text)
		}
	}
	if len(want) != 0 {
		t.Errorf("missing header texts: %v", want)
	}
	if c.presented != 1 {
		t.Errorf("Present called %d times, want 1", c.presented)
	}
}

func TestRenderCells(t *testing.T) {
	r, c := newRenderer(session.Easy)
	f := frame(session.Easy)
	setCell(&f, viewmodel.CellView{Col: 0, Row: 0, Revealed: true, Mine: true})
	setCell(&f, viewmodel.CellView{Col: 1, Row: 0, Revealed: true, Count: 2})
	setCell(&f, viewmodel.CellView{Col: 2, Row: 0, Revealed: true})
	setCell(&f, viewmodel.CellView{Col: 3, Row: 0, Flagged: true})
	setCell(&f, viewmodel.CellView{Col: 4, Row: 0, Highlighted: true})
	setCell(&f, viewmodel.CellView{Col: 5, Row: 0, Highlighted: true, Flagged: true})
	r.Render(f)

	if n := c.count("stroke"); n != 81 {
		t.Errorf("%d cell borders, want 81", n)
	}
	if n := c.count("circle"); n != 1 {
		t.Errorf("%d mine markers, want 1", n)
	}
	if n := c.count("polygon"); n != 2 {
		t.Errorf("%d flags, want 2", n)
	}
	if n := c.count("line"); n != 2 {
		t.Errorf("%d flag poles, want 2", n)
	}
	if n := c.count("overlay"); n != 0 {
		t.Errorf("overlay drawn while running")
	}

	var highlighted, numbered int
	for _, cl := range c.calls {
		if cl.op == "rect" && cl.color == CellHighlight {
			highlighted++
		}
		if cl.op == "text" && cl.text == "2" {
			numbered++
			if cl.color != NumberColor(2) {
				t.Errorf("count drawn in %v", cl.color)
			}
			x, y := cellOrigin(1, 0)
			if cl.x != x+session.CellSize/2 || cl.y != y+session.CellSize/2 {
				t.Errorf("count drawn at (%v,%v)", cl.x, cl.y)
			}
		}
	}
	if highlighted != 2 || numbered != 1 {
		t.Errorf("highlighted=%d numbered=%d, want 2 and 1", highlighted, numbered)
	}
}

func TestRenderResultOverlay(t *testing.T) {
	for _, result := range []string{"GAME OVER", "GAME CLEAR"} {
		t.Run(result, func(t *testing.T) {
			r, c := newRenderer(session.Normal)
			f := frame(session.Normal)
			f.Result = result
			r.Render(f)

			last := c.calls[len(c.calls)-1]
			prev := c.calls[len(c.calls)-2]
			if prev.op != "overlay" || last.op != "text" || last.text != result {
				t.Fatalf("frame ends with %+v, %+v", prev, last)
			}
			if last.x != float32(f.Width)/2 || last.y != float32(f.Height)/2 {
				t.Errorf("result text at (%v,%v), want window centre", last.x, last.y)
			}
		})
	}
}

func TestRenderSkipsStaleCanvas(t *testing.T) {
	r, c := newRenderer(session.Easy)
	f := frame(session.Hard)

	if r.Render(f) {
		t.Fatal("Render should skip a frame larger than the canvas")
	}
	if len(c.calls) != 1 || c.calls[0].op != "fill" {
		t.Errorf("stale frame drew %v", c.texts())
	}

	c.Resize(session.Hard.WindowWidth(), session.Hard.WindowHeight())
	c.calls = nil
	if !r.Render(f) {
		t.Fatal("Render should draw once the canvas caught up")
	}
	if n := c.count("stroke"); n != 24*24 {
		t.Errorf("%d borders, want %d", n, 24*24)
	}
}
