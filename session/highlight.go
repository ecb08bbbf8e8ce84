package session

import (
	"slices"
	"time"

	"github.com/zyedidia/generic/mapset"

	"minesweeper/game"
)

// HighlightSet は一時的に強調表示するマスの集合です
// 期限は集合全体で1つ。タイマーは使わず、読むたびに期限を確認します
type HighlightSet struct {
	coords mapset.Set[game.Coord]
	expiry time.Time
}

// Replace は集合の中身を置き換え、期限を設定します
func (h *HighlightSet) Replace(coords []game.Coord, expiry time.Time) {
	set := mapset.New[game.Coord]()
	for _, c := range coords {
		set.Put(c)
	}
	h.coords = set
	h.expiry = expiry
}

// Clear は集合を空にします。期限はそのままです
func (h *HighlightSet) Clear() {
	h.coords = mapset.Set[game.Coord]{}
}

// Expiry は現在の期限を返します
func (h *HighlightSet) Expiry() time.Time { return h.expiry }

// expire は期限切れなら集合を捨てます
func (h *HighlightSet) expire(now time.Time) {
	if now.After(h.expiry) && h.coords.Size() > 0 {
		h.Clear()
	}
}

// Contains は now の時点で c が強調表示中かどうかを返します
func (h *HighlightSet) Contains(c game.Coord, now time.Time) bool {
	h.expire(now)
	return h.coords.Has(c)
}

// Len は now の時点の要素数を返します
func (h *HighlightSet) Len(now time.Time) int {
	h.expire(now)
	return h.coords.Size()
}

// Coordinates は now の時点の要素を (行, 列) 順で返します
func (h *HighlightSet) Coordinates(now time.Time) []game.Coord {
	h.expire(now)
	out := make([]game.Coord, 0, h.coords.Size())
	h.coords.Each(func(c game.Coord) {
		out = append(out, c)
	})
	slices.SortFunc(out, func(a, b game.Coord) int {
		if a.Row != b.Row {
			return a.Row - b.Row
		}
		return a.Col - b.Col
	})
	return out
}
