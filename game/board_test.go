package game

import (
	"errors"
	"math/rand"
	"testing"
)

func mustBoard(t *testing.T, cols, rows int, mines ...Coord) *Board {
	t.Helper()
	b, err := NewBoard(cols, rows, 0, WithMines(mines...))
	if err != nil {
		t.Fatalf("NewBoard(%d, %d) failed: %v", cols, rows, err)
	}
	return b
}

func TestNewBoardRejectsBadInput(t *testing.T) {
	cases := []struct {
		name       string
		cols, rows int
		mines      int
		want       error
	}{
		{"zero width", 0, 9, 1, ErrInvalidDimensions},
		{"negative height", 9, -1, 1, ErrInvalidDimensions},
		{"board full of mines", 3, 3, 9, ErrTooManyMines},
		{"negative mines", 3, 3, -1, ErrTooManyMines},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewBoard(tc.cols, tc.rows, tc.mines)
			if !errors.Is(err, tc.want) {
				t.Errorf("NewBoard err = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestNewBoardPlacesExactMineCount(t *testing.T) {
	b, err := NewBoard(16, 16, 40, WithRand(rand.New(rand.NewSource(7))))
	if err != nil {
		t.Fatalf("NewBoard failed: %v", err)
	}
	mines := 0
	for row := 0; row < b.Rows(); row++ {
		for col := 0; col < b.Columns(); col++ {
			if b.Cell(col, row).IsMine {
				mines++
			}
		}
	}
	if mines != 40 {
		t.Errorf("placed %d mines, want 40", mines)
	}
	if b.MineCount() != 40 {
		t.Errorf("MineCount() = %d, want 40", b.MineCount())
	}
}

func TestAdjacentCounts(t *testing.T) {
	b := mustBoard(t, 3, 3, Coord{0, 0}, Coord{2, 2})
	if got := b.Cell(1, 1).Adjacent; got != 2 {
		t.Errorf("center Adjacent = %d, want 2", got)
	}
	if got := b.Cell(2, 0).Adjacent; got != 0 {
		t.Errorf("corner Adjacent = %d, want 0", got)
	}
	if got := b.Cell(1, 0).Adjacent; got != 1 {
		t.Errorf("edge Adjacent = %d, want 1", got)
	}
}

func TestNeighbors(t *testing.T) {
	b := mustBoard(t, 3, 3, Coord{2, 2})
	if got := len(b.Neighbors(0, 0)); got != 3 {
		t.Errorf("corner has %d neighbors, want 3", got)
	}
	if got := len(b.Neighbors(1, 1)); got != 8 {
		t.Errorf("center has %d neighbors, want 8", got)
	}
	if got := len(b.Neighbors(1, 0)); got != 5 {
		t.Errorf("edge has %d neighbors, want 5", got)
	}
}

func TestRevealFloodFillAndWin(t *testing.T) {
	// 地雷は隅に1つだけ。1クリックで残りが全部開く
	b := mustBoard(t, 4, 4, Coord{3, 3})
	b.Reveal(0, 0)
	if !b.Win() {
		t.Fatalf("expected win after flood reveal, board:\n%s", b.DebugString())
	}
	if b.GameOver() {
		t.Error("win and game over must be exclusive")
	}
	if b.Cell(3, 3).IsRevealed {
		t.Error("mine should stay hidden")
	}
}

func TestRevealMineEndsGame(t *testing.T) {
	b := mustBoard(t, 3, 3, Coord{1, 1})
	b.Reveal(1, 1)
	if !b.GameOver() {
		t.Fatal("expected game over")
	}
	// 以後は何をしても変わらない
	b.Reveal(0, 0)
	if b.Cell(0, 0).IsRevealed {
		t.Error("reveal after game over should be ignored")
	}
	b.ToggleFlag(0, 0)
	if b.FlaggedCount() != 0 {
		t.Error("flag after game over should be ignored")
	}
	if b.Win() {
		t.Error("win must stay false after game over")
	}
}

func TestRevealSkipsFlagged(t *testing.T) {
	b := mustBoard(t, 3, 3, Coord{2, 2})
	b.ToggleFlag(0, 0)
	b.Reveal(0, 0)
	if b.Cell(0, 0).IsRevealed {
		t.Error("flagged cell must not be revealed")
	}
}

func TestToggleFlag(t *testing.T) {
	b := mustBoard(t, 3, 3, Coord{2, 2})
	b.ToggleFlag(0, 2)
	b.ToggleFlag(1, 2)
	if b.FlaggedCount() != 2 {
		t.Errorf("FlaggedCount() = %d, want 2", b.FlaggedCount())
	}
	b.ToggleFlag(0, 2)
	if b.FlaggedCount() != 1 {
		t.Errorf("FlaggedCount() = %d, want 1", b.FlaggedCount())
	}
	b.ToggleFlag(-1, 0)
	b.ToggleFlag(3, 0)
	if b.FlaggedCount() != 1 {
		t.Error("out of range flags must be ignored")
	}

	b.Reveal(1, 1)
	b.ToggleFlag(1, 1)
	if b.Cell(1, 1).IsFlagged {
		t.Error("revealed cell must not be flagged")
	}
}

type fixedHinter struct {
	c  Coord
	ok bool
}

func (h fixedHinter) SafeCell(*Board) (Coord, bool) { return h.c, h.ok }

func TestHintCoordinates(t *testing.T) {
	t.Run("hinter wins", func(t *testing.T) {
		b, _ := NewBoard(3, 3, 0, WithMines(Coord{0, 0}), WithHinter(fixedHinter{Coord{2, 1}, true}))
		c, ok := b.HintCoordinates()
		if !ok || c != (Coord{2, 1}) {
			t.Errorf("HintCoordinates() = %v, %v, want {2 1}, true", c, ok)
		}
	})

	t.Run("fallback prefers low counts", func(t *testing.T) {
		b, _ := NewBoard(3, 1, 0, WithMines(Coord{0, 0}), WithHinter(fixedHinter{}))
		c, ok := b.HintCoordinates()
		if !ok || c != (Coord{2, 0}) {
			t.Errorf("HintCoordinates() = %v, %v, want {2 0}, true", c, ok)
		}
	})

	t.Run("hinter pointing at a mine falls back", func(t *testing.T) {
		b, _ := NewBoard(3, 1, 0, WithMines(Coord{0, 0}), WithHinter(fixedHinter{Coord{0, 0}, true}))
		c, ok := b.HintCoordinates()
		if !ok || c != (Coord{2, 0}) {
			t.Errorf("HintCoordinates() = %v, %v, want {2 0}, true", c, ok)
		}
	})

	t.Run("hinter out of range falls back", func(t *testing.T) {
		b, _ := NewBoard(3, 1, 0, WithMines(Coord{0, 0}), WithHinter(fixedHinter{Coord{5, 5}, true}))
		if c, ok := b.HintCoordinates(); !ok || c != (Coord{2, 0}) {
			t.Errorf("HintCoordinates() = %v, %v, want {2 0}, true", c, ok)
		}
	})

	t.Run("none after game end", func(t *testing.T) {
		b := mustBoard(t, 2, 1, Coord{0, 0})
		b.Reveal(1, 0)
		if !b.Win() {
			t.Fatal("expected win")
		}
		if _, ok := b.HintCoordinates(); ok {
			t.Error("expected no hint after win")
		}
	})
}
