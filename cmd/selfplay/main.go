package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"minesweeper/app"
	"minesweeper/session"
)

// ヒントだけで指定回数のゲームを自動で遊び、結果を CSV に書き出します
func main() {
	games := flag.Int("games", 1000, "number of games to play")
	difficulty := flag.String("difficulty", "normal", "easy|normal|hard")
	seed := flag.Int64("seed", 1, "mine layout seed, 0 for time based")
	out := flag.String("out", "selfplay.csv", "output csv path")
	flag.Parse()

	log := logrus.New()
	quiet := logrus.New()
	quiet.SetLevel(logrus.WarnLevel)

	p, err := session.ProfileByName(*difficulty)
	if err != nil {
		log.WithError(err).Fatal("bad difficulty")
	}

	file, err := os.Create(*out)
	if err != nil {
		log.WithError(err).Fatal("create output")
	}

	writer, err := app.NewOutcomeWriter(file)
	if err != nil {
		log.WithError(err).Fatal("write output")
	}

	s, err := session.New(p,
		session.WithGridFactory(session.BoardFactory(*seed)),
		session.WithLogger(quiet),
	)
	if err != nil {
		log.WithError(err).Fatal("create session")
	}

	wins := 0
	for i := 0; i < *games; i++ {
		if i > 0 {
			s.Reset()
		}
		o := app.SelfPlay(s, p.Columns*p.Rows)
		if o.Win {
			wins++
		}
		if err := writer.Write(o); err != nil {
			log.WithError(err).WithField("game", i).Fatal("write output")
		}
	}

	if err := writer.Flush(); err != nil {
		log.WithError(err).Fatal("write output")
	}
	if err := file.Close(); err != nil {
		log.WithError(err).Fatal("close output")
	}

	log.WithFields(logrus.Fields{
		"games":      *games,
		"wins":       wins,
		"difficulty": p.Label(),
		"out":        *out,
	}).Info(fmt.Sprintf("self-play finished (%d/%d won)", wins, *games))
}
