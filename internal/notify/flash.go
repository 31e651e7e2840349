// Package notify signals countdown completion: a color flash sampled by the
// frame loop, and an audible bell.
package notify

import (
	"math"
	"time"

	"github.com/akyairhashvil/flipclock/internal/config"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Flash oscillates between a base and an alert color for a fixed number of
// cycles. It holds no goroutine; callers sample it each frame.
type Flash struct {
	base, alert colorful.Color
	cycles      int
	period      time.Duration
	start       time.Time
	active      bool
}

func NewFlash(base, alert colorful.Color) *Flash {
	return &Flash{
		base:   base,
		alert:  alert,
		cycles: config.FlashCycles,
		period: config.FlashPeriod,
	}
}

// Trigger (re)starts the flash at now.
func (f *Flash) Trigger(now time.Time) {
	f.start = now
	f.active = true
}

// Stop ends the flash early.
func (f *Flash) Stop() {
	f.active = false
}

func (f *Flash) total() time.Duration {
	return time.Duration(f.cycles) * f.period
}

// Active reports whether the flash is still running at now.
func (f *Flash) Active(now time.Time) bool {
	if !f.active {
		return false
	}
	elapsed := now.Sub(f.start)
	return elapsed >= 0 && elapsed < f.total()
}

// Intensity is 1 at the start of each cycle (full alert color) and 0 at
// its middle.
func (f *Flash) Intensity(now time.Time) float64 {
	if !f.Active(now) {
		return 0
	}
	elapsed := now.Sub(f.start)
	phase := float64(elapsed%f.period) / float64(f.period)
	return (1 + math.Cos(2*math.Pi*phase)) / 2
}

// Color returns the blended color at now, or the base color when idle.
func (f *Flash) Color(now time.Time) colorful.Color {
	i := f.Intensity(now)
	if i == 0 {
		return f.base
	}
	return f.base.BlendLab(f.alert, i).Clamped()
}
