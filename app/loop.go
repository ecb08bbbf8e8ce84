package app

import (
	"time"

	"github.com/sirupsen/logrus"

	"minesweeper/render"
	"minesweeper/session"
	"minesweeper/viewmodel"
)

// EventSource は溜まっている入力イベントをまとめて返します
// イベントが無ければ空を返し、待たずに戻ります
type EventSource interface {
	Poll() []session.Event
}

// Pacer は次のフレームまで待ちます
type Pacer interface {
	Wait()
}

// TickerPacer は time.Ticker で一定のフレームレートを保ちます
type TickerPacer struct {
	ticker *time.Ticker
}

func NewTickerPacer(fps int) *TickerPacer {
	if fps <= 0 {
		fps = 30
	}
	return &TickerPacer{ticker: time.NewTicker(time.Second / time.Duration(fps))}
}

func (p *TickerPacer) Wait() { <-p.ticker.C }

func (p *TickerPacer) Stop() { p.ticker.Stop() }

// NopPacer は待たない Pacer です (テスト用)
type NopPacer struct{}

func (NopPacer) Wait() {}

// Loop は1つのセッションを入力・判定・描画・待機の順に回します
type Loop struct {
	Session  *session.Session
	Renderer *render.Renderer
	Source   EventSource
	Pacer    Pacer
	Log      logrus.FieldLogger
}

// RunStep は1フレーム分進めます。終了イベントを受けたら false
func (l *Loop) RunStep() bool {
	if !l.Session.Update(l.Source.Poll()) {
		return false
	}
	l.Renderer.Render(viewmodel.FromSession(l.Session))
	l.Pacer.Wait()
	return true
}

// Run は終了イベントを受けるまで RunStep を繰り返します
func (l *Loop) Run() {
	frames := 0
	for l.RunStep() {
		frames++
	}
	if l.Log != nil {
		l.Log.WithField("frames", frames).Info("loop stopped")
	}
}
