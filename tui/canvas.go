package tui

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"

	"minesweeper/render"
	"minesweeper/session"
)

// 1文字あたりのピクセル数
// マス (32px) は横2文字・縦1文字になります
const (
	PixelsPerColumn = 16
	PixelsPerRow    = 32
)

// 盤面の左上が文字セルの境界に来るようにずらす量
const (
	offsetX = (PixelsPerColumn - session.MarginLeft%PixelsPerColumn) % PixelsPerColumn
	offsetY = (PixelsPerRow - session.MarginTop%PixelsPerRow) % PixelsPerRow
)

// PixelOf は文字セルの中心のピクセル座標です
func PixelOf(col, row int) (int, int) {
	return col*PixelsPerColumn + PixelsPerColumn/2 - offsetX,
		row*PixelsPerRow + PixelsPerRow/2 - offsetY
}

type cellFont float64

func (f cellFont) Size() float64 { return float64(f) }

// Canvas はピクセル座標を端末の文字セルに写す render.Canvas です
type Canvas struct {
	screen        tcell.Screen
	width, height int
}

func NewCanvas(screen tcell.Screen, width, height int) *Canvas {
	return &Canvas{screen: screen, width: width, height: height}
}

func (c *Canvas) Size() (int, int) { return c.width, c.height }

// Resize は論理サイズを変えて画面を消去します
func (c *Canvas) Resize(width, height int) {
	c.width, c.height = width, height
	c.screen.Clear()
}

func (c *Canvas) Font(size float64) render.Font { return cellFont(size) }

// Present は描いた内容を端末に反映します
func (c *Canvas) Present() { c.screen.Show() }

func toColor(col color.Color) tcell.Color {
	n := color.NRGBAModel.Convert(col).(color.NRGBA)
	return tcell.NewRGBColor(int32(n.R), int32(n.G), int32(n.B))
}

// cellRange は矩形が覆う文字セルの範囲 [c0, c1) x [r0, r1) です
func cellRange(x, y, w, h float32) (c0, r0, c1, r1 int) {
	c0, r0 = cellAt(x, y)
	c1 = int(math.Ceil(float64(x+w+offsetX) / PixelsPerColumn))
	r1 = int(math.Ceil(float64(y+h+offsetY) / PixelsPerRow))
	return
}

func cellAt(x, y float32) (int, int) {
	return int(math.Floor(float64(x+offsetX) / PixelsPerColumn)),
		int(math.Floor(float64(y+offsetY) / PixelsPerRow))
}

// background は (col, row) の現在の背景色です
func (c *Canvas) background(col, row int) tcell.Color {
	_, _, style, _ := c.screen.GetContent(col, row)
	_, bg, _ := style.Decompose()
	return bg
}

func (c *Canvas) put(col, row int, r rune, fg color.Color) {
	style := tcell.StyleDefault.Background(c.background(col, row)).Foreground(toColor(fg))
	c.screen.SetContent(col, row, r, nil, style)
}

func (c *Canvas) Fill(col color.Color) {
	style := tcell.StyleDefault.Background(toColor(col))
	cols, rows := c.screen.Size()
	for row := 0; row < rows; row++ {
		for x := 0; x < cols; x++ {
			c.screen.SetContent(x, row, ' ', nil, style)
		}
	}
}

func (c *Canvas) FillRect(x, y, w, h float32, col color.Color) {
	style := tcell.StyleDefault.Background(toColor(col))
	c0, r0, c1, r1 := cellRange(x, y, w, h)
	for row := r0; row < r1; row++ {
		for cx := c0; cx < c1; cx++ {
			c.screen.SetContent(cx, row, ' ', nil, style)
		}
	}
}

// StrokeRect は3x3文字以上の矩形だけ罫線で囲みます
// 盤面のマスは2x1文字なので枠線は描かれません
func (c *Canvas) StrokeRect(x, y, w, h, _ float32, col color.Color) {
	c0, r0, c1, r1 := cellRange(x, y, w, h)
	if c1-c0 < 3 || r1-r0 < 3 {
		return
	}
	for cx := c0 + 1; cx < c1-1; cx++ {
		c.put(cx, r0, tcell.RuneHLine, col)
		c.put(cx, r1-1, tcell.RuneHLine, col)
	}
	for row := r0 + 1; row < r1-1; row++ {
		c.put(c0, row, tcell.RuneVLine, col)
		c.put(c1-1, row, tcell.RuneVLine, col)
	}
	c.put(c0, r0, tcell.RuneULCorner, col)
	c.put(c1-1, r0, tcell.RuneURCorner, col)
	c.put(c0, r1-1, tcell.RuneLLCorner, col)
	c.put(c1-1, r1-1, tcell.RuneLRCorner, col)
}

func (c *Canvas) FillCircle(cx, cy, _ float32, col color.Color) {
	x, y := cellAt(cx, cy)
	c.put(x, y, '●', col)
}

// Line は始点と終点を結ぶ文字セルに罫線を置きます
func (c *Canvas) Line(x0, y0, x1, y1, _ float32, col color.Color) {
	a, b := cellAt(x0, y0)
	e, f := cellAt(x1, y1)
	switch {
	case a == e:
		for row := min(b, f); row <= max(b, f); row++ {
			c.put(a, row, tcell.RuneVLine, col)
		}
	case b == f:
		for x := min(a, e); x <= max(a, e); x++ {
			c.put(x, b, tcell.RuneHLine, col)
		}
	default:
		c.put(a, b, '╱', col)
	}
}

// FillPolygon は重心の文字セルに三角形を置きます
func (c *Canvas) FillPolygon(pts []render.Point, col color.Color) {
	if len(pts) == 0 {
		return
	}
	var sx, sy float32
	for _, p := range pts {
		sx += p.X
		sy += p.Y
	}
	n := float32(len(pts))
	x, y := cellAt(sx/n, sy/n)
	c.put(x, y, '▶', col)
}

func (c *Canvas) Text(s string, _ render.Font, x, y float32, h, _ render.Align, col color.Color) {
	runes := []rune(s)
	cx, row := cellAt(x, y)
	switch h {
	case render.AlignCenter:
		cx -= len(runes) / 2
	case render.AlignEnd:
		cx -= len(runes)
	}
	for i, r := range runes {
		c.put(cx+i, row, r, col)
	}
}

// Overlay は各セルの背景色に col をアルファで混ぜます
func (c *Canvas) Overlay(col color.Color) {
	over := color.NRGBAModel.Convert(col).(color.NRGBA)
	alpha := float64(over.A) / 255
	blend := func(base, top int32) int32 {
		return int32(float64(base)*(1-alpha) + float64(top)*alpha)
	}

	cols, rows := c.screen.Size()
	for row := 0; row < rows; row++ {
		for x := 0; x < cols; x++ {
			r, comb, style, _ := c.screen.GetContent(x, row)
			fg, bg, attr := style.Decompose()
			br, bgc, bb := bg.RGB()
			if !bg.Valid() {
				br, bgc, bb = 0, 0, 0
			}
			shaded := tcell.NewRGBColor(
				blend(br, int32(over.R)),
				blend(bgc, int32(over.G)),
				blend(bb, int32(over.B)),
			)
			c.screen.SetContent(x, row, r, comb, tcell.StyleDefault.Foreground(fg).Background(shaded).Attributes(attr))
		}
	}
}
