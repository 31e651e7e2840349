package tui

import (
	"time"

	"github.com/akyairhashvil/flipclock/internal/log"
	"github.com/akyairhashvil/flipclock/internal/modes"
	"github.com/akyairhashvil/flipclock/internal/notify"
	tea "github.com/charmbracelet/bubbletea"
)

// --- Messages ---

// TickMsg is a mode ticker firing.
type TickMsg modes.Tick

// FrameMsg asks for one animation frame.
type FrameMsg time.Time

// wallAligned reports whether a ticker fires on wall clock boundaries. The
// clock follows the system second; countdown and stopwatch count whole
// intervals from the moment they start.
func wallAligned(ticker modes.Ticker) bool {
	return ticker == modes.TickerClock
}

func tickCmd(ticker modes.Ticker, gen uint64, interval time.Duration) tea.Cmd {
	if ticker == modes.TickerNone {
		return nil
	}
	fn := func(t time.Time) tea.Msg {
		return TickMsg{Ticker: ticker, Gen: gen, Time: t}
	}
	if wallAligned(ticker) {
		return tea.Every(interval, fn)
	}
	return tea.Tick(interval, fn)
}

func frameCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg { return FrameMsg(t) })
}

func bellCmd(n notify.Notifier) tea.Cmd {
	if n == nil {
		return nil
	}
	return func() tea.Msg {
		log.LogError("completion bell", n.Notify())
		return nil
	}
}
