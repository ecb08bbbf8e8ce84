package gui

import (
	"bytes"
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/gobold"

	"minesweeper/render"
)

// face は text/v2 のフォントを render.Font として包みます
type face struct {
	goFace *text.GoTextFace
}

func (f *face) Size() float64 { return f.goFace.Size }

// Canvas は ebiten の画面に描く render.Canvas です
// 描画先の画像は Draw のたびに SetTarget で渡されます
type Canvas struct {
	screen        *ebiten.Image
	width, height int

	source *text.GoTextFaceSource
	faces  map[float64]*face

	white *ebiten.Image
}

// NewCanvas は width x height のウィンドウ用に Canvas を作ります
func NewCanvas(width, height int) (*Canvas, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	return &Canvas{
		width:  width,
		height: height,
		source: src,
		faces:  map[float64]*face{},
	}, nil
}

// whiteImage は DrawTriangles 用の 1x1 の白い画像です
func (c *Canvas) whiteImage() *ebiten.Image {
	if c.white == nil {
		base := ebiten.NewImage(3, 3)
		base.Fill(color.White)
		c.white = base.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return c.white
}

// SetTarget は今回のフレームの描画先を設定します
func (c *Canvas) SetTarget(screen *ebiten.Image) {
	c.screen = screen
}

// Size は実際の描画先の大きさです
// Layout の変更が反映されるまでは Resize の値と一致しません
func (c *Canvas) Size() (int, int) {
	if c.screen == nil {
		return c.width, c.height
	}
	b := c.screen.Bounds()
	return b.Dx(), b.Dy()
}

func (c *Canvas) Resize(width, height int) {
	c.width, c.height = width, height
	ebiten.SetWindowSize(width, height)
}

func (c *Canvas) Font(size float64) render.Font {
	if f, ok := c.faces[size]; ok {
		return f
	}
	f := &face{goFace: &text.GoTextFace{Source: c.source, Size: size}}
	c.faces[size] = f
	return f
}

func (c *Canvas) Fill(col color.Color) {
	c.screen.Fill(col)
}

func (c *Canvas) FillRect(x, y, w, h float32, col color.Color) {
	vector.DrawFilledRect(c.screen, x, y, w, h, col, false)
}

func (c *Canvas) StrokeRect(x, y, w, h, width float32, col color.Color) {
	vector.StrokeRect(c.screen, x, y, w, h, width, col, false)
}

func (c *Canvas) FillCircle(cx, cy, r float32, col color.Color) {
	vector.DrawFilledCircle(c.screen, cx, cy, r, col, true)
}

func (c *Canvas) Line(x0, y0, x1, y1, width float32, col color.Color) {
	vector.StrokeLine(c.screen, x0, y0, x1, y1, width, col, true)
}

// FillPolygon は vector.Path を三角形に分割して塗ります
func (c *Canvas) FillPolygon(pts []render.Point, col color.Color) {
	if len(pts) < 3 {
		return
	}
	var path vector.Path
	path.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		path.LineTo(p.X, p.Y)
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	r, g, b, a := col.RGBA()
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 1, 1
		vs[i].ColorR = float32(r) / 0xffff
		vs[i].ColorG = float32(g) / 0xffff
		vs[i].ColorB = float32(b) / 0xffff
		vs[i].ColorA = float32(a) / 0xffff
	}
	c.screen.DrawTriangles(vs, is, c.whiteImage(), &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

func (c *Canvas) Text(s string, f render.Font, x, y float32, h, v render.Align, col color.Color) {
	ft, ok := f.(*face)
	if !ok {
		ft = c.Font(f.Size()).(*face)
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(col)
	op.PrimaryAlign = textAlign(h)
	op.SecondaryAlign = textAlign(v)
	text.Draw(c.screen, s, ft.goFace, op)
}

// Overlay は画面全体に半透明の矩形を重ねます
func (c *Canvas) Overlay(col color.Color) {
	w, h := c.Size()
	vector.DrawFilledRect(c.screen, 0, 0, float32(w), float32(h), col, false)
}

func textAlign(a render.Align) text.Align {
	switch a {
	case render.AlignCenter:
		return text.AlignCenter
	case render.AlignEnd:
		return text.AlignEnd
	default:
		return text.AlignStart
	}
}
