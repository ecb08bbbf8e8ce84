package gui

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

	"minesweeper/app"
	"minesweeper/render"
	"minesweeper/session"
	"minesweeper/viewmodel"
)

// Options はウィンドウの設定です
type Options struct {
	Title string
	FPS   int
}

// Game は ebiten.Game の実装です
// Update で入力と決着判定、Draw で描画を行います
type Game struct {
	session  *session.Session
	canvas   *Canvas
	renderer *render.Renderer
	source   app.EventSource
	log      logrus.FieldLogger
}

func NewGame(s *session.Session, canvas *Canvas, source app.EventSource, log logrus.FieldLogger) *Game {
	return &Game{
		session:  s,
		canvas:   canvas,
		renderer: render.New(canvas, log),
		source:   source,
		log:      log,
	}
}

func (g *Game) Update() error {
	if !g.session.Update(g.source.Poll()) {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.canvas.SetTarget(screen)
	g.renderer.Render(viewmodel.FromSession(g.session))
}

// Layout は常に現在の難易度のウィンドウサイズを返します
func (g *Game) Layout(_, _ int) (int, int) {
	p := g.session.Profile()
	return p.WindowWidth(), p.WindowHeight()
}

// Run はウィンドウを開き、終了イベントまでゲームを回します
func Run(s *session.Session, canvas *Canvas, opts Options, log logrus.FieldLogger) error {
	p := s.Profile()
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowSize(p.WindowWidth(), p.WindowHeight())
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(opts.FPS)

	log.WithFields(logrus.Fields{"fps": opts.FPS, "difficulty": p.Label()}).Info("starting window")
	err := ebiten.RunGame(NewGame(s, canvas, &InputSource{}, log))
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
