package modes

import "time"

// Ticker names the periodic source a mode needs. At most one is active.
type Ticker int

const (
	TickerNone Ticker = iota
	TickerClock
	TickerCountdown
	TickerStopwatch
)

func (t Ticker) String() string {
	switch t {
	case TickerClock:
		return "clock"
	case TickerCountdown:
		return "countdown"
	case TickerStopwatch:
		return "stopwatch"
	}
	return "none"
}

// Tick is one firing of a ticker. Gen must match the controller's current
// generation or the tick is stale and ignored.
type Tick struct {
	Ticker Ticker
	Gen    uint64
	Time   time.Time
}
