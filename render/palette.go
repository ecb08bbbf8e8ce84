package render

import "image/color"

// フォントサイズ
const (
	CellFontSize   = 18
	HeaderFontSize = 20
	ResultFontSize = 40
)

// ResultOverlayAlpha は決着時に重ねる黒の不透明度です
const ResultOverlayAlpha = 140

var (
	Background     = color.RGBA{R: 30, G: 30, B: 36, A: 255}
	HeaderFill     = color.RGBA{R: 48, G: 48, B: 60, A: 255}
	HeaderText     = color.RGBA{R: 235, G: 235, B: 235, A: 255}
	TimeText       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	CellHidden     = color.RGBA{R: 150, G: 150, B: 160, A: 255}
	CellRevealed   = color.RGBA{R: 215, G: 215, B: 220, A: 255}
	CellHighlight  = color.RGBA{R: 250, G: 220, B: 110, A: 255}
	CellMine       = color.RGBA{R: 20, G: 20, B: 20, A: 255}
	GridLine       = color.RGBA{R: 90, G: 90, B: 100, A: 255}
	FlagColor      = color.RGBA{R: 220, G: 40, B: 40, A: 255}
	ResultText     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	DefaultNumText = color.RGBA{R: 40, G: 40, B: 40, A: 255}
)

var numberColors = map[int]color.RGBA{
	1: {R: 25, G: 118, B: 210, A: 255},
	2: {R: 56, G: 142, B: 60, A: 255},
	3: {R: 211, G: 47, B: 47, A: 255},
	4: {R: 123, G: 31, B: 162, A: 255},
	5: {R: 255, G: 143, B: 0, A: 255},
	6: {R: 0, G: 151, B: 167, A: 255},
	7: {R: 66, G: 66, B: 66, A: 255},
	8: {R: 97, G: 97, B: 97, A: 255},
}

// NumberColor は周囲の地雷数に応じた文字色を返します
func NumberColor(n int) color.RGBA {
	if c, ok := numberColors[n]; ok {
		return c
	}
	return DefaultNumText
}

// OverlayColor は決着時のオーバーレイ色です (非乗算アルファ)
func OverlayColor() color.NRGBA {
	return color.NRGBA{A: ResultOverlayAlpha}
}
