package app

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"minesweeper/session"
)

// Outcome は自動プレイ1ゲーム分の結果です
type Outcome struct {
	Session    string
	Difficulty string
	Win        bool
	Moves      int
	Elapsed    time.Duration
}

// SelfPlay はヒントで示されたマスだけを開けてゲームを進めます
// 決着するか、ヒントが無くなるか、maxMoves に達したら止まります
func SelfPlay(s *session.Session, maxMoves int) Outcome {
	out := Outcome{Session: s.ID(), Difficulty: s.Profile().Label()}
	for out.Moves < maxMoves {
		g := s.Grid()
		if g.GameOver() || g.Win() {
			break
		}
		s.Highlight().Clear()
		s.Hint()
		targets := s.Highlight().Coordinates(s.Now())
		if len(targets) == 0 {
			break
		}
		s.Reveal(targets[0])
		s.CheckEnd()
		out.Moves++
	}
	out.Win = s.Grid().Win()
	out.Elapsed = s.Elapsed()
	return out
}

// OutcomeWriter は Outcome を1行ずつ CSV に書き出します
type OutcomeWriter struct {
	w *csv.Writer
}

// NewOutcomeWriter はヘッダー行を書いた OutcomeWriter を返します
func NewOutcomeWriter(w io.Writer) (*OutcomeWriter, error) {
	ow := &OutcomeWriter{w: csv.NewWriter(w)}
	if err := ow.w.Write([]string{"session", "difficulty", "win", "moves", "elapsed_ms"}); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	return ow, nil
}

func (ow *OutcomeWriter) Write(o Outcome) error {
	err := ow.w.Write([]string{
		o.Session,
		o.Difficulty,
		strconv.FormatBool(o.Win),
		strconv.Itoa(o.Moves),
		strconv.FormatInt(o.Elapsed.Milliseconds(), 10),
	})
	if err != nil {
		return fmt.Errorf("write csv row: %w", err)
	}
	return nil
}

// Flush はバッファを書き出し、途中の書き込みエラーも返します
func (ow *OutcomeWriter) Flush() error {
	ow.w.Flush()
	if err := ow.w.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}
