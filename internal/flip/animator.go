// Package flip animates split-flap digits. An Animator holds one decimal
// digit and turns each value change into a two-phase card flip that a
// renderer samples once per frame.
package flip

import (
	"time"

	"github.com/akyairhashvil/flipclock/internal/config"
	"github.com/akyairhashvil/flipclock/internal/util"
)

// Phase identifies which half of the flip is running.
type Phase int

const (
	// PhaseA folds the old top half down onto the midline.
	PhaseA Phase = iota
	// PhaseB unfolds the new bottom half down from the midline.
	PhaseB
)

func (p Phase) String() string {
	if p == PhaseB {
		return "B"
	}
	return "A"
}

// State is the coarse animation state of a slot.
type State int

const (
	Idle State = iota
	FlippingPhaseA
	FlippingPhaseB
)

// FlipState is a sample of an animation at one instant.
type FlipState struct {
	Flipping bool
	Phase    Phase
	// Angle is in degrees, [0, 90).
	Angle float64
	// Progress covers the whole flip, [0, 1].
	Progress float64
}

// Animator owns one digit slot. It is not safe for concurrent use; the UI
// loop is its only caller.
type Animator struct {
	current  int
	previous int
	start    time.Time
	active   bool
	duration time.Duration
}

// NewAnimator returns an idle animator showing 0. A non-positive duration
// selects config.FlipDuration.
func NewAnimator(duration time.Duration) *Animator {
	if duration <= 0 {
		duration = config.FlipDuration
	}
	return &Animator{duration: duration}
}

func (a *Animator) Current() int            { return a.current }
func (a *Animator) Previous() int           { return a.previous }
func (a *Animator) Duration() time.Duration { return a.duration }

// SetValue starts a flip to v. Values outside 0..9 are taken modulo 10.
// Setting the value already shown does nothing, so a running flip is never
// restarted by a repeated tick. It reports whether a flip started.
func (a *Animator) SetValue(v int, now time.Time) bool {
	v = util.Mod(v, 10)
	if v == a.current {
		return false
	}
	a.previous = a.current
	a.current = v
	a.start = now
	a.active = true
	return true
}

// Sample computes the flip geometry at now. It does not modify the
// animator, so frames may sample in any order.
func (a *Animator) Sample(now time.Time) FlipState {
	if !a.active {
		return FlipState{Progress: 1}
	}
	elapsed := now.Sub(a.start)
	if elapsed < 0 {
		elapsed = 0
	}
	if elapsed >= a.duration {
		return FlipState{Progress: 1}
	}

	progress := float64(elapsed) / float64(a.duration)
	if progress > 1 {
		progress = 1
	}
	st := FlipState{Flipping: true, Progress: progress}
	var phaseProgress float64
	if progress < 0.5 {
		st.Phase = PhaseA
		phaseProgress = progress * 2
	} else {
		st.Phase = PhaseB
		phaseProgress = (progress - 0.5) * 2
	}
	st.Angle = phaseProgress * 90
	return st
}

// State reports the coarse animation state at now.
func (a *Animator) State(now time.Time) State {
	st := a.Sample(now)
	switch {
	case !st.Flipping:
		return Idle
	case st.Phase == PhaseA:
		return FlippingPhaseA
	default:
		return FlippingPhaseB
	}
}

// IsFlipping reports whether a flip is in progress at now.
func (a *Animator) IsFlipping(now time.Time) bool {
	return a.Sample(now).Flipping
}
