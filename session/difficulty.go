package session

import (
	"errors"
	"fmt"
	"strings"
)

// 画面レイアウトの固定値 (ピクセル)
const (
	CellSize     = 32
	MarginLeft   = 20
	MarginRight  = 20
	MarginTop    = 60
	MarginBottom = 20
)

var ErrUnknownDifficulty = errors.New("unknown difficulty")

// Profile は難易度ごとの盤面サイズと地雷数です
type Profile struct {
	Columns int
	Rows    int
	Mines   int
}

var (
	Easy   = Profile{Columns: 9, Rows: 9, Mines: 10}
	Normal = Profile{Columns: 16, Rows: 16, Mines: 40}
	Hard   = Profile{Columns: 24, Rows: 24, Mines: 99}
)

// WindowWidth は盤面と余白を含むウィンドウの幅です
func (p Profile) WindowWidth() int {
	return MarginLeft + p.Columns*CellSize + MarginRight
}

// WindowHeight は盤面と余白を含むウィンドウの高さです
func (p Profile) WindowHeight() int {
	return MarginTop + p.Rows*CellSize + MarginBottom
}

// Label は表示用の難易度名です。列数で判定します
func (p Profile) Label() string {
	switch p.Columns {
	case Easy.Columns:
		return "EASY"
	case Normal.Columns:
		return "NORMAL"
	default:
		return "HARD"
	}
}

// ProfileByName は "easy" / "normal" / "hard" から Profile を返します
func ProfileByName(name string) (Profile, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "easy", "1":
		return Easy, nil
	case "normal", "2":
		return Normal, nil
	case "hard", "3":
		return Hard, nil
	}
	return Profile{}, fmt.Errorf("%w: %q", ErrUnknownDifficulty, name)
}
