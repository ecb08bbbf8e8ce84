package session

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"minesweeper/game"
	"minesweeper/solver"
)

// DefaultHighlightDuration は強調表示が残る時間です
const DefaultHighlightDuration = 1500 * time.Millisecond

// GridModel はセッションが盤面に求める操作です
type GridModel interface {
	Bounds
	Reveal(col, row int)
	ToggleFlag(col, row int)
	Neighbors(col, row int) []game.Coord
	FlaggedCount() int
	HintCoordinates() (game.Coord, bool)
	Cell(col, row int) game.Cell
	GameOver() bool
	Win() bool
}

// GridFactory は Profile に合わせた新しい盤面を作ります
type GridFactory func(p Profile) (GridModel, error)

// Surface は描画先のサイズ変更だけを扱います
type Surface interface {
	Resize(width, height int)
}

// Phase はセッションの状態です。保存せず Clock から導出します
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhaseRunning
	PhaseEnded
)

func (p Phase) String() string {
	return [...]string{"not-started", "running", "ended"}[p]
}

// BoardFactory は game.Board と solver のヒントを使う GridFactory を返します
// seed が 0 なら盤面ごとに時刻から乱数を作ります
func BoardFactory(seed int64) GridFactory {
	var rng *rand.Rand
	if seed != 0 {
		rng = rand.New(rand.NewSource(seed))
	}
	return func(p Profile) (GridModel, error) {
		opts := []game.Option{game.WithHinter(solver.New())}
		if rng != nil {
			opts = append(opts, game.WithRand(rng))
		}
		return game.NewBoard(p.Columns, p.Rows, p.Mines, opts...)
	}
}

type nopSurface struct{}

func (nopSurface) Resize(int, int) {}

// Option は New の設定を変更します
type Option func(*Session)

// WithClock は現在時刻の取得方法を差し替えます (テスト用)
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

func WithHighlightDuration(d time.Duration) Option {
	return func(s *Session) { s.highlightFor = d }
}

func WithLogger(l logrus.FieldLogger) Option {
	return func(s *Session) { s.log = l }
}

func WithSurface(surface Surface) Option {
	return func(s *Session) { s.surface = surface }
}

func WithGridFactory(f GridFactory) Option {
	return func(s *Session) { s.newGrid = f }
}

// Session は1つのゲームの進行を管理します
// 盤面・時計・強調表示・難易度を持ち、入力を受けて状態を進めます
type Session struct {
	id           string
	profile      Profile
	grid         GridModel
	clock        Clock
	highlight    HighlightSet
	highlightFor time.Duration

	newGrid GridFactory
	surface Surface
	now     func() time.Time
	log     logrus.FieldLogger
}

// New は profile の盤面でセッションを開始します
func New(profile Profile, opts ...Option) (*Session, error) {
	s := &Session{
		profile:      profile,
		highlightFor: DefaultHighlightDuration,
		newGrid:      BoardFactory(0),
		surface:      nopSurface{},
		now:          time.Now,
		log:          logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}

	grid, err := s.newGrid(profile)
	if err != nil {
		return nil, fmt.Errorf("create %s grid: %w", profile.Label(), err)
	}
	s.install(grid)
	return s, nil
}

// install は盤面を差し替え、時計と強調表示を初期化します
func (s *Session) install(grid GridModel) {
	s.grid = grid
	s.clock = Clock{}
	s.highlight = HighlightSet{}
	s.id = uuid.NewString()
	s.entry().Info("new game")
}

func (s *Session) entry() *logrus.Entry {
	return s.log.WithFields(logrus.Fields{
		"session":    s.id,
		"difficulty": s.profile.Label(),
	})
}

func (s *Session) mustGrid(p Profile) GridModel {
	grid, err := s.newGrid(p)
	if err != nil {
		// 難易度は検証済みの定数なので、ここでの失敗は前提違反
		panic(fmt.Errorf("create %s grid: %w", p.Label(), err))
	}
	return grid
}

func (s *Session) ID() string { return s.id }

func (s *Session) Profile() Profile { return s.profile }

func (s *Session) Grid() GridModel { return s.grid }

func (s *Session) Clock() Clock { return s.clock }

func (s *Session) Highlight() *HighlightSet { return &s.highlight }

func (s *Session) Now() time.Time { return s.now() }

// Phase は現在の状態を返します
func (s *Session) Phase() Phase {
	switch {
	case !s.clock.Started():
		return PhaseNotStarted
	case s.clock.Ended():
		return PhaseEnded
	default:
		return PhaseRunning
	}
}

// Elapsed は現在の経過時間です
func (s *Session) Elapsed() time.Duration {
	return s.clock.Elapsed(s.now())
}

// Mapper は現在の難易度と盤面に対する InputMapper を返します
func (s *Session) Mapper() InputMapper {
	return InputMapper{Profile: s.profile, Grid: s.grid}
}

// Reveal はマスを開けます。最初の1回で時計が動き出します
func (s *Session) Reveal(at game.Coord) {
	if s.clock.Start(s.now()) {
		s.entry().WithFields(logrus.Fields{"col": at.Col, "row": at.Row}).Info("clock started")
	}
	s.grid.Reveal(at.Col, at.Row)
}

// ToggleFlag は旗を切り替えます。時計には影響しません
func (s *Session) ToggleFlag(at game.Coord) {
	s.grid.ToggleFlag(at.Col, at.Row)
}

// PreviewNeighbors は未開封の隣接マスを一定時間強調します
func (s *Session) PreviewNeighbors(at game.Coord) {
	hidden := lo.Filter(s.grid.Neighbors(at.Col, at.Row), func(n game.Coord, _ int) bool {
		return !s.grid.Cell(n.Col, n.Row).IsRevealed
	})
	s.highlight.Replace(hidden, s.now().Add(s.highlightFor))
	s.entry().WithFields(logrus.Fields{"col": at.Col, "row": at.Row, "cells": len(hidden)}).Debug("preview neighbors")
}

// Hint はヒントのマスを強調します。ヒントが無ければ何も変えません
func (s *Session) Hint() {
	at, ok := s.grid.HintCoordinates()
	if !ok {
		s.entry().Debug("no hint available")
		return
	}
	s.highlight.Replace([]game.Coord{at}, s.now().Add(s.highlightFor))
	s.entry().WithFields(logrus.Fields{"col": at.Col, "row": at.Row}).Info("hint")
}

// Reset は同じ難易度で新しいゲームを始めます
func (s *Session) Reset() {
	s.install(s.mustGrid(s.profile))
}

// SetDifficulty は難易度を変えて新しいゲームを始めます
// 描画先のリサイズは戻る前に終わります
func (s *Session) SetDifficulty(p Profile) {
	grid := s.mustGrid(p)
	s.profile = p
	s.surface.Resize(p.WindowWidth(), p.WindowHeight())
	s.install(grid)
}

// HandleClick はクリックを操作に変換して実行します
func (s *Session) HandleClick(x, y int, b Button) {
	action, ok := s.Mapper().MapClick(x, y, b)
	if !ok {
		s.entry().WithFields(logrus.Fields{"x": x, "y": y, "button": b}).Debug("click ignored")
		return
	}
	if action.ClearHighlight {
		s.highlight.Clear()
	}
	switch action.Kind {
	case ActionReveal:
		s.Reveal(action.At)
	case ActionToggleFlag:
		s.ToggleFlag(action.At)
	case ActionPreview:
		s.PreviewNeighbors(action.At)
	}
}

// HandleKey はキー入力を処理します
func (s *Session) HandleKey(r rune) {
	switch r {
	case KeyReset:
		s.Reset()
	case KeyEasy:
		s.SetDifficulty(Easy)
	case KeyNormal:
		s.SetDifficulty(Normal)
	case KeyHard:
		s.SetDifficulty(Hard)
	case KeyHint:
		s.Hint()
	}
}

// Dispatch はイベントを1つ処理します。終了イベントなら false
func (s *Session) Dispatch(ev Event) bool {
	switch ev.Kind {
	case EventQuit:
		s.entry().Info("quit requested")
		return false
	case EventKey:
		s.HandleKey(ev.Key)
	case EventClick:
		s.HandleClick(ev.X, ev.Y, ev.Button)
	}
	return true
}

// CheckEnd は決着していれば時計を止めます。2回目以降は何もしません
func (s *Session) CheckEnd() {
	if !s.grid.GameOver() && !s.grid.Win() {
		return
	}
	if s.clock.Freeze(s.now()) {
		s.entry().WithFields(logrus.Fields{
			"win":     s.grid.Win(),
			"elapsed": s.clock.Elapsed(s.now()).Round(time.Millisecond),
		}).Info("game ended")
		if b, ok := s.grid.(*game.Board); ok {
			s.entry().Debugf("final board:\n%s", b.DebugString())
		}
	}
}

// Update は溜まったイベントを順に処理し、決着を確認します
// 終了イベントを受けたら残りを捨てて false を返します
func (s *Session) Update(events []Event) bool {
	for _, ev := range events {
		if !s.Dispatch(ev) {
			return false
		}
	}
	s.CheckEnd()
	return true
}
