package game

import "errors"

// Coord は盤面上の座標 (列, 行) です
type Coord struct {
	Col int
	Row int
}

// Cell は1つのマスの情報を持ちます
type Cell struct {
	IsMine     bool // 地雷かどうか
	IsRevealed bool // すでに開けられたか
	IsFlagged  bool // フラグが立てられているか
	Adjacent   int  // 周囲8マスにある地雷の数 (0~8)
}

// Hinter は盤面から「確実に安全なマス」を探します
// 見つからなければ false を返します
type Hinter interface {
	SafeCell(b *Board) (Coord, bool)
}

// Board はゲーム盤面全体を持ちます
type Board struct {
	cols      int      // 横のマス数
	rows      int      // 縦のマス数
	mineCount int      // 地雷の総数
	cells     [][]Cell // cells[row][col]
	revealed  int      // 開けた安全マスの数
	flagged   int      // フラグの数
	gameOver  bool
	win       bool
	hinter    Hinter
}

var (
	ErrInvalidDimensions = errors.New("board dimensions must be positive")
	ErrTooManyMines      = errors.New("mine count must leave at least one safe cell")
)
