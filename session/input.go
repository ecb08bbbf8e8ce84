package session

import "minesweeper/game"

// ActionKind はクリックから決まる操作です
type ActionKind int

const (
	ActionReveal ActionKind = iota + 1
	ActionToggleFlag
	ActionPreview
)

func (k ActionKind) String() string {
	switch k {
	case ActionReveal:
		return "reveal"
	case ActionToggleFlag:
		return "flag"
	case ActionPreview:
		return "preview"
	}
	return "unknown"
}

// Action はクリック1回分の操作です
// ClearHighlight が true なら、操作の前に強調表示を消します
type Action struct {
	Kind           ActionKind
	At             game.Coord
	ClearHighlight bool
}

// Bounds は現在の盤面の大きさです
type Bounds interface {
	Columns() int
	Rows() int
}

// InputMapper はピクセル座標をマスと操作に変換します
// 難易度変更に追従するため、イベントごとに作り直して使います
type InputMapper struct {
	Profile Profile
	Grid    Bounds
}

// PixelToGrid は (x, y) のマスを返します。盤面外なら false
func (m InputMapper) PixelToGrid(x, y int) (game.Coord, bool) {
	if x < MarginLeft || x >= m.Profile.WindowWidth()-MarginRight {
		return game.Coord{}, false
	}
	if y < MarginTop || y >= m.Profile.WindowHeight()-MarginBottom {
		return game.Coord{}, false
	}
	col := (x - MarginLeft) / CellSize
	row := (y - MarginTop) / CellSize

	// 古いレイアウトのまま届いたクリックを弾く
	if col < 0 || col >= m.Grid.Columns() || row < 0 || row >= m.Grid.Rows() {
		return game.Coord{}, false
	}
	return game.Coord{Col: col, Row: row}, true
}

// MapClick はクリックを操作に変換します
// 盤面外のクリックは何もしません (強調表示も消さない)
func (m InputMapper) MapClick(x, y int, b Button) (Action, bool) {
	at, ok := m.PixelToGrid(x, y)
	if !ok {
		return Action{}, false
	}
	switch b {
	case ButtonPrimary:
		return Action{Kind: ActionReveal, At: at, ClearHighlight: true}, true
	case ButtonSecondary:
		return Action{Kind: ActionToggleFlag, At: at, ClearHighlight: true}, true
	case ButtonTertiary:
		// 中クリックは消さずに置き換える
		return Action{Kind: ActionPreview, At: at}, true
	}
	return Action{}, false
}
