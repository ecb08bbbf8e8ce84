package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"minesweeper/session"
)

var ErrUnknownBackend = errors.New("unknown backend")

// Backend は描画先の種類です
type Backend string

const (
	BackendGUI Backend = "gui"
	BackendTUI Backend = "tui"
)

const (
	defaultTitle  = "Minesweeper"
	defaultFPS    = 30
	defaultTUILog = "minesweeper.log"
	titleEnvName  = "MINESWEEPER_TITLE"
)

// Config はコマンドラインから決まる起動設定です
// LogFile が空ならログは標準エラーに出力します
type Config struct {
	Profile   session.Profile
	Backend   Backend
	FPS       int
	Highlight time.Duration
	LogLevel  logrus.Level
	LogFile   string
	Seed      int64
	Title     string
}

// Load は args (プログラム名を除く) を解釈して Config を返します
func Load(args []string) (Config, error) {
	fs := flag.NewFlagSet("minesweeper", flag.ContinueOnError)
	difficulty := fs.String("difficulty", "easy", "easy|normal|hard")
	backend := fs.String("backend", string(BackendGUI), "gui|tui")
	fps := fs.Int("fps", defaultFPS, "frames per second")
	highlight := fs.Duration("highlight", session.DefaultHighlightDuration, "how long previews and hints stay highlighted")
	level := fs.String("log-level", "info", "debug|info|warn|error")
	logFile := fs.String("log-file", "", "log destination (tui default: "+defaultTUILog+")")
	seed := fs.Int64("seed", 0, "mine layout seed, 0 for time based")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	profile, err := session.ProfileByName(*difficulty)
	if err != nil {
		return Config{}, err
	}

	b := Backend(strings.ToLower(*backend))
	if b != BackendGUI && b != BackendTUI {
		return Config{}, fmt.Errorf("%w: %q", ErrUnknownBackend, *backend)
	}

	lvl, err := logrus.ParseLevel(*level)
	if err != nil {
		return Config{}, fmt.Errorf("log level: %w", err)
	}

	if *fps <= 0 {
		return Config{}, fmt.Errorf("fps must be positive, got %d", *fps)
	}
	if *highlight <= 0 {
		return Config{}, fmt.Errorf("highlight must be positive, got %v", *highlight)
	}

	out := *logFile
	if out == "" && b == BackendTUI {
		out = defaultTUILog
	}

	return Config{
		Profile:   profile,
		Backend:   b,
		FPS:       *fps,
		Highlight: *highlight,
		LogLevel:  lvl,
		LogFile:   out,
		Seed:      *seed,
		Title:     getEnv(titleEnvName, defaultTitle),
	}, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
