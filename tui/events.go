package tui

import (
	"sync"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"minesweeper/session"
)

var mouseButtons = []struct {
	mask tcell.ButtonMask
	btn  session.Button
}{
	{tcell.Button1, session.ButtonPrimary},
	{tcell.Button2, session.ButtonSecondary},
	{tcell.Button3, session.ButtonTertiary},
}

// EventSource は tcell のイベントを別 goroutine で受け取り、Poll でまとめて返します
type EventSource struct {
	screen  tcell.Screen
	events  chan tcell.Event
	buttons tcell.ButtonMask

	done      chan struct{}
	closeOnce sync.Once
	stopped   chan struct{}
}

// NewEventSource は screen のイベント受信を開始します
// Close した後、または screen.Fini で PollEvent が nil を返すと受信を終えます
func NewEventSource(screen tcell.Screen) *EventSource {
	return newEventSource(screen, 64)
}

func newEventSource(screen tcell.Screen, buffer int) *EventSource {
	s := &EventSource{
		screen:  screen,
		events:  make(chan tcell.Event, buffer),
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
	go s.receive()
	return s
}

func (s *EventSource) receive() {
	defer close(s.stopped)
	defer close(s.events)
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}
		// 誰も Poll しなくなった後はバッファが埋まっても待たない
		select {
		case s.events <- ev:
		case <-s.done:
			return
		}
	}
}

// Close は受信を止めます。PollEvent から戻るには screen.Fini も必要です
func (s *EventSource) Close() {
	s.closeOnce.Do(func() { close(s.done) })
}

// Poll は app.EventSource を満たします。待たずに戻ります
func (s *EventSource) Poll() []session.Event {
	var out []session.Event
	for {
		select {
		case ev, ok := <-s.events:
			if !ok {
				return append(out, session.QuitEvent())
			}
			out = append(out, s.translate(ev)...)
		default:
			return out
		}
	}
}

func (s *EventSource) translate(ev tcell.Event) []session.Event {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return []session.Event{session.QuitEvent()}
		case tcell.KeyRune:
			r := unicode.ToLower(ev.Rune())
			if r == 'q' {
				return []session.Event{session.QuitEvent()}
			}
			return []session.Event{session.KeyEvent(r)}
		}
	case *tcell.EventMouse:
		buttons := ev.Buttons()
		pressed := buttons &^ s.buttons
		s.buttons = buttons

		col, row := ev.Position()
		x, y := PixelOf(col, row)
		var out []session.Event
		for _, m := range mouseButtons {
			if pressed&m.mask != 0 {
				out = append(out, session.ClickEvent(x, y, m.btn))
			}
		}
		return out
	case *tcell.EventResize:
		s.screen.Sync()
	}
	return nil
}
