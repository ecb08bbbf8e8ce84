package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"minesweeper/config"
	"minesweeper/gui"
	"minesweeper/session"
	"minesweeper/tui"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	log, closeLog, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer closeLog()

	if err := run(cfg, log); err != nil {
		log.WithError(err).Error("minesweeper stopped")
		closeLog()
		os.Exit(1)
	}
}

func newLogger(cfg config.Config) (*logrus.Logger, func(), error) {
	log := logrus.New()
	log.SetLevel(cfg.LogLevel)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if cfg.LogFile == "" {
		log.SetOutput(os.Stderr)
		return log, func() {}, nil
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	log.SetOutput(f)
	return log, func() { _ = f.Close() }, nil
}

func run(cfg config.Config, log *logrus.Logger) (err error) {
	// 盤面生成の失敗はセッション内で panic になるので、ここでエラーに変える
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("fatal: %v", r)
		}
	}()

	opts := []session.Option{
		session.WithHighlightDuration(cfg.Highlight),
		session.WithGridFactory(session.BoardFactory(cfg.Seed)),
		session.WithLogger(log),
	}
	p := cfg.Profile

	switch cfg.Backend {
	case config.BackendTUI:
		screen, err := tui.Open()
		if err != nil {
			return err
		}
		canvas := tui.NewCanvas(screen, p.WindowWidth(), p.WindowHeight())
		s, err := session.New(p, append(opts, session.WithSurface(canvas))...)
		if err != nil {
			screen.Fini()
			return err
		}
		tui.Run(screen, s, canvas, cfg.FPS, log)
		return nil

	default:
		canvas, err := gui.NewCanvas(p.WindowWidth(), p.WindowHeight())
		if err != nil {
			return err
		}
		s, err := session.New(p, append(opts, session.WithSurface(canvas))...)
		if err != nil {
			return err
		}
		return gui.Run(s, canvas, gui.Options{Title: cfg.Title, FPS: cfg.FPS}, log)
	}
}
