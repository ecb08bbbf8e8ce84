package session

import "time"

// Clock はゲームの経過時間を管理します
// 終了時刻は1セッションにつき1回だけ記録されます
type Clock struct {
	started bool
	start   time.Time
	end     time.Time
	ended   bool
}

// Start は計測を開始します。開始済みなら何もしません
func (c *Clock) Start(now time.Time) bool {
	if c.started {
		return false
	}
	c.started = true
	c.start = now
	return true
}

// Freeze は終了時刻を記録します。未開始、または記録済みなら false
func (c *Clock) Freeze(now time.Time) bool {
	if !c.started || c.ended {
		return false
	}
	c.end = now
	c.ended = true
	return true
}

func (c Clock) Started() bool { return c.started }

func (c Clock) Ended() bool { return c.ended }

func (c Clock) StartTime() time.Time { return c.start }

// EndTime は終了時刻を返します。終了していなければ false
func (c Clock) EndTime() (time.Time, bool) { return c.end, c.ended }

// Elapsed は経過時間を返します (未開始なら 0、終了後は固定)
func (c Clock) Elapsed(now time.Time) time.Duration {
	switch {
	case !c.started:
		return 0
	case c.ended:
		return c.end.Sub(c.start)
	default:
		return now.Sub(c.start)
	}
}
