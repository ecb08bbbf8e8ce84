package gui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"minesweeper/session"
)

var keyRunes = map[ebiten.Key]rune{
	ebiten.KeyR:       session.KeyReset,
	ebiten.Key1:       session.KeyEasy,
	ebiten.KeyNumpad1: session.KeyEasy,
	ebiten.Key2:       session.KeyNormal,
	ebiten.KeyNumpad2: session.KeyNormal,
	ebiten.Key3:       session.KeyHard,
	ebiten.KeyNumpad3: session.KeyHard,
	ebiten.KeyH:       session.KeyHint,
}

var mouseButtons = []struct {
	b   ebiten.MouseButton
	btn session.Button
}{
	{ebiten.MouseButtonLeft, session.ButtonPrimary},
	{ebiten.MouseButtonRight, session.ButtonSecondary},
	{ebiten.MouseButtonMiddle, session.ButtonTertiary},
}

// InputSource はこのフレームで押されたキーとボタンをイベントにします
type InputSource struct {
	keys []ebiten.Key
}

// Poll は app.EventSource を満たします
func (s *InputSource) Poll() []session.Event {
	var events []session.Event
	if ebiten.IsWindowBeingClosed() {
		events = append(events, session.QuitEvent())
	}

	s.keys = inpututil.AppendJustPressedKeys(s.keys[:0])
	for _, k := range s.keys {
		if k == ebiten.KeyEscape {
			events = append(events, session.QuitEvent())
			continue
		}
		if r, ok := keyRunes[k]; ok {
			events = append(events, session.KeyEvent(r))
		}
	}

	x, y := ebiten.CursorPosition()
	for _, m := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(m.b) {
			events = append(events, session.ClickEvent(x, y, m.btn))
		}
	}
	return events
}
