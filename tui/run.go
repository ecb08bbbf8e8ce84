package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"minesweeper/app"
	"minesweeper/render"
	"minesweeper/session"
)

// Open は端末を初期化し、マウス入力を有効にします
func Open() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	screen.EnableMouse()
	screen.HideCursor()
	return screen, nil
}

// Run は終了イベントを受けるまで app.Loop を回し、端末を元に戻します
func Run(screen tcell.Screen, s *session.Session, canvas *Canvas, fps int, log logrus.FieldLogger) {
	pacer := app.NewTickerPacer(fps)
	defer pacer.Stop()
	defer screen.Fini()

	src := NewEventSource(screen)
	defer src.Close()

	loop := &app.Loop{
		Session:  s,
		Renderer: render.New(canvas, log),
		Source:   src,
		Pacer:    pacer,
		Log:      log,
	}
	log.WithFields(logrus.Fields{"fps": fps, "difficulty": s.Profile().Label()}).Info("starting terminal loop")
	loop.Run()
}
