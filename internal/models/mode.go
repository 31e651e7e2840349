package models

import (
	"fmt"
	"strings"
)

// Mode is the top-level display mode.
type Mode int

const (
	ModeClock Mode = iota
	ModeTimer
	ModeStopwatch
)

func (m Mode) String() string {
	switch m {
	case ModeClock:
		return "clock"
	case ModeTimer:
		return "timer"
	case ModeStopwatch:
		return "stopwatch"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// ParseMode maps a name to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "clock":
		return ModeClock, nil
	case "timer", "countdown":
		return ModeTimer, nil
	case "stopwatch":
		return ModeStopwatch, nil
	}
	return ModeClock, fmt.Errorf("unknown mode %q", s)
}

// RunState is the sub-state of Timer and Stopwatch.
type RunState int

const (
	RunIdle RunState = iota // clock mode has no run state
	RunSetup
	RunRunning
	RunPaused
)

func (r RunState) String() string {
	switch r {
	case RunSetup:
		return "setup"
	case RunRunning:
		return "running"
	case RunPaused:
		return "paused"
	default:
		return "idle"
	}
}
