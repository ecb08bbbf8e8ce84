package session

// EventKind は入力イベントの種類です
type EventKind int

const (
	EventQuit EventKind = iota
	EventKey
	EventClick
)

// Button はマウスボタンです
type Button int

const (
	ButtonPrimary   Button = iota + 1 // 左
	ButtonSecondary                   // 右
	ButtonTertiary                    // 中
)

// キー入力 (小文字に正規化したルーン)
const (
	KeyReset  = 'r'
	KeyEasy   = '1'
	KeyNormal = '2'
	KeyHard   = '3'
	KeyHint   = 'h'
)

// Event はバックエンドから届く入力イベントです
type Event struct {
	Kind   EventKind
	Key    rune
	X, Y   int
	Button Button
}

func QuitEvent() Event { return Event{Kind: EventQuit} }

func KeyEvent(r rune) Event { return Event{Kind: EventKey, Key: r} }

func ClickEvent(x, y int, b Button) Event {
	return Event{Kind: EventClick, X: x, Y: y, Button: b}
}
