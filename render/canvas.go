package render

import "image/color"

// Align はテキストの基準位置です
type Align int

const (
	AlignStart Align = iota
	AlignCenter
	AlignEnd
)

// Point は描画座標です (ピクセル)
type Point struct {
	X, Y float32
}

// Font はバックエンドが用意するフォントの手がかりです
type Font interface {
	Size() float64
}

// Canvas は描画先の機能です
// 座標はすべてピクセル単位で、原点は左上です
type Canvas interface {
	Size() (width, height int)
	Resize(width, height int)
	Font(size float64) Font

	Fill(c color.Color)
	FillRect(x, y, w, h float32, c color.Color)
	StrokeRect(x, y, w, h, width float32, c color.Color)
	FillCircle(cx, cy, r float32, c color.Color)
	Line(x0, y0, x1, y1, width float32, c color.Color)
	FillPolygon(pts []Point, c color.Color)
	// Text は (x, y) を基準に h, v で揃えて文字列を描きます
	Text(s string, f Font, x, y float32, h, v Align, c color.Color)
	// Overlay は全面に半透明の色を重ねます
	Overlay(c color.Color)
}

// Presenter は描き終えたフレームを画面へ反映する必要があるバックエンド用です
type Presenter interface {
	Present()
}
