package app

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"minesweeper/session"
)

func TestSelfPlayFollowsHintsToWin(t *testing.T) {
	log := logrus.New()
	log.Out = io.Discard

	for _, p := range []session.Profile{session.Easy, session.Normal} {
		t.Run(p.Label(), func(t *testing.T) {
			s, err := session.New(p,
				session.WithGridFactory(session.BoardFactory(11)),
				session.WithLogger(log),
			)
			if err != nil {
				t.Fatal(err)
			}
			out := SelfPlay(s, p.Columns*p.Rows)
			if !out.Win || s.Grid().GameOver() {
				t.Fatalf("outcome = %+v, hints should never lead onto a mine", out)
			}
			if out.Moves == 0 || out.Moves > p.Columns*p.Rows-p.Mines {
				t.Errorf("Moves = %d", out.Moves)
			}
			if s.Phase() != session.PhaseEnded {
				t.Errorf("Phase() = %v, want ended", s.Phase())
			}
			if out.Session != s.ID() || out.Difficulty != p.Label() {
				t.Errorf("outcome = %+v", out)
			}
		})
	}
}

func TestSelfPlayMoveLimit(t *testing.T) {
	log := logrus.New()
	log.Out = io.Discard
	s, err := session.New(session.Hard,
		session.WithGridFactory(session.BoardFactory(5)),
		session.WithLogger(log),
	)
	if err != nil {
		t.Fatal(err)
	}
	out := SelfPlay(s, 1)
	if out.Moves != 1 {
		t.Errorf("Moves = %d, want 1", out.Moves)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestOutcomeWriter(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewOutcomeWriter(&buf)
	if err != nil {
		t.Fatal(err)
	}
	o := Outcome{Session: "abc", Difficulty: "EASY", Win: true, Moves: 12, Elapsed: 1500 * time.Millisecond}
	if err := w.Write(o); err != nil {
		t.Fatal(err)
	}
	if err := w.Flush(); err != nil {
		t.Fatal(err)
	}
	want := "session,difficulty,win,moves,elapsed_ms\nabc,EASY,true,12,1500\n"
	if buf.String() != want {
		t.Errorf("csv = %q, want %q", buf.String(), want)
	}
}

func TestOutcomeWriterReportsWriteFailure(t *testing.T) {
	// csv.Writer はバッファするので、失敗は Flush で表に出る
	w, err := NewOutcomeWriter(failingWriter{})
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Write(Outcome{Session: "abc"}); err != nil {
		t.Fatal(err)
	}
	err = w.Flush()
	if err == nil || !strings.Contains(err.Error(), "disk full") {
		t.Errorf("Flush() = %v, want the underlying write error", err)
	}
}
