// Package modes is the Clock / Timer / Stopwatch state machine. All changes
// go through Transition (user intents) and Tick (ticker firings); both are
// synchronous and meant to run on the UI loop.
package modes

import (
	"time"

	"github.com/akyairhashvil/flipclock/internal/config"
	"github.com/akyairhashvil/flipclock/internal/flip"
	"github.com/akyairhashvil/flipclock/internal/log"
	"github.com/akyairhashvil/flipclock/internal/models"
	"github.com/akyairhashvil/flipclock/internal/util"
)

const zeroFace = "00:00:00"

// Options configures a Controller.
type Options struct {
	// SetupArrows enables per-digit countdown editing in Timer setup.
	SetupArrows bool
}

// Result tells the caller what a transition or tick did.
type Result struct {
	// Schedule is set when a new ticker generation started and the caller
	// must arm it.
	Schedule bool
	// Completed is set exactly once per countdown that reaches zero.
	Completed bool
	// Face is the HH:MM:SS string now on display.
	Face string
}

// Controller owns the mode state and pushes changed digits into a sink.
type Controller struct {
	sink flip.DigitSink
	opts Options

	mode           models.Mode
	timerState     models.RunState
	stopwatchState models.RunState
	countdown      models.HMS
	elapsed        models.HMS
	completed      bool

	ticker Ticker
	gen    uint64
	last   string
}

// New returns a controller in Clock mode with the clock ticker active. The
// sink is assumed to show all zeros.
func New(sink flip.DigitSink, opts Options) *Controller {
	return &Controller{
		sink:           sink,
		opts:           opts,
		mode:           models.ModeClock,
		timerState:     models.RunSetup,
		stopwatchState: models.RunPaused,
		ticker:         TickerClock,
		gen:            1,
		last:           zeroFace,
	}
}

func (c *Controller) Mode() models.Mode     { return c.mode }
func (c *Controller) Countdown() models.HMS { return c.countdown }
func (c *Controller) Elapsed() models.HMS   { return c.elapsed }
func (c *Controller) ActiveTicker() Ticker  { return c.ticker }
func (c *Controller) Generation() uint64    { return c.gen }
func (c *Controller) Completed() bool       { return c.completed }
func (c *Controller) ArrowsEnabled() bool   { return c.opts.SetupArrows }
func (c *Controller) LastFace() string      { return c.last }

// RunState is the sub-state of the current mode; Clock reports RunIdle.
func (c *Controller) RunState() models.RunState {
	switch c.mode {
	case models.ModeTimer:
		return c.timerState
	case models.ModeStopwatch:
		return c.stopwatchState
	}
	return models.RunIdle
}

// InSetup reports whether the countdown is editable.
func (c *Controller) InSetup() bool {
	return c.mode == models.ModeTimer && c.timerState == models.RunSetup
}

// Running reports whether the current mode's ticker is counting.
func (c *Controller) Running() bool {
	return c.RunState() == models.RunRunning
}

// Format renders the current mode's value at now.
func (c *Controller) Format(now time.Time) string {
	switch c.mode {
	case models.ModeTimer:
		return c.countdown.String()
	case models.ModeStopwatch:
		return c.elapsed.String()
	}
	return models.FromClock(now).String()
}

// Refresh formats the face and sends only the digits that differ from the
// previous face to the sink.
func (c *Controller) Refresh(now time.Time) string {
	face := c.Format(now)
	for s := flip.Slot(0); s < flip.SlotCount; s++ {
		i := s.CharIndex()
		if face[i] != c.last[i] {
			c.sink.SetDigit(s, int(face[i]-'0'), now)
		}
	}
	c.last = face
	return face
}

// Transition applies one user intent.
func (c *Controller) Transition(in Intent, now time.Time) Result {
	before := c.ticker
	beforeGen := c.gen

	switch in.Kind {
	case IntentSelectMode:
		c.selectMode(in.Mode)
	case IntentStart:
		c.start()
	case IntentPause:
		c.pause()
	case IntentReset:
		c.reset()
	case IntentIncrementDigit:
		c.adjust(in.Slot, 1)
	case IntentDecrementDigit:
		c.adjust(in.Slot, -1)
	case IntentPreset:
		c.loadCountdown(models.FromDuration(in.Duration))
	case IntentSetCountdown:
		c.loadCountdown(in.Value)
	case IntentDismissCompletion:
		c.completed = false
	}

	if c.ticker != before || c.gen != beforeGen {
		log.Debugw("mode transition",
			"intent", in.String(),
			"mode", c.mode.String(),
			"state", c.RunState().String(),
			"ticker", c.ticker.String(),
		)
	}
	return Result{
		Schedule: c.gen != beforeGen && c.ticker != TickerNone,
		Face:     c.Refresh(now),
	}
}

// Tick advances the active ticker. Ticks from another ticker or an older
// generation are dropped, so a stopped ticker can never fire again.
func (c *Controller) Tick(t Tick) Result {
	if t.Ticker == TickerNone || t.Ticker != c.ticker || t.Gen != c.gen {
		return Result{Face: c.last}
	}

	var res Result
	switch c.ticker {
	case TickerCountdown:
		c.countdown = c.countdown.Decrement()
		if c.countdown.IsZero() {
			c.timerState = models.RunSetup
			c.setTicker(TickerNone)
			c.completed = true
			res.Completed = true
			log.Infow("countdown completed")
		}
	case TickerStopwatch:
		c.elapsed = c.elapsed.Increment()
	}
	res.Schedule = c.ticker != TickerNone
	res.Face = c.Refresh(t.Time)
	return res
}

func (c *Controller) setTicker(t Ticker) {
	if t == c.ticker {
		return
	}
	c.ticker = t
	c.gen++
}

func (c *Controller) selectMode(m models.Mode) {
	if m == c.mode {
		return
	}
	c.leaveMode()
	c.mode = m
	switch m {
	case models.ModeClock:
		c.setTicker(TickerClock)
	case models.ModeTimer:
		c.timerState = models.RunSetup
		c.setTicker(TickerNone)
	case models.ModeStopwatch:
		c.stopwatchState = models.RunPaused
		c.setTicker(TickerNone)
	}
}

// leaveMode stops whatever the current mode was counting. Values are kept.
func (c *Controller) leaveMode() {
	switch c.mode {
	case models.ModeTimer:
		c.timerState = models.RunSetup
	case models.ModeStopwatch:
		c.stopwatchState = models.RunPaused
	}
}

func (c *Controller) start() {
	switch c.mode {
	case models.ModeTimer:
		if c.timerState == models.RunRunning || c.countdown.IsZero() {
			return
		}
		c.timerState = models.RunRunning
		c.completed = false
		c.setTicker(TickerCountdown)
	case models.ModeStopwatch:
		if c.stopwatchState == models.RunRunning {
			return
		}
		c.stopwatchState = models.RunRunning
		c.setTicker(TickerStopwatch)
	}
}

func (c *Controller) pause() {
	switch c.mode {
	case models.ModeTimer:
		if c.timerState != models.RunRunning {
			return
		}
		c.timerState = models.RunPaused
		c.setTicker(TickerNone)
	case models.ModeStopwatch:
		if c.stopwatchState != models.RunRunning {
			return
		}
		c.stopwatchState = models.RunPaused
		c.setTicker(TickerNone)
	}
}

func (c *Controller) reset() {
	switch c.mode {
	case models.ModeTimer:
		c.countdown = models.HMS{}
		c.timerState = models.RunSetup
		c.setTicker(TickerNone)
	case models.ModeStopwatch:
		c.elapsed = models.HMS{}
		c.stopwatchState = models.RunPaused
		c.setTicker(TickerNone)
	}
}

// loadCountdown sets the countdown and lands in Timer setup, from any mode.
// Overflowing minutes and seconds carry into the next field and the total is
// capped at 99:59:59.
func (c *Controller) loadCountdown(v models.HMS) {
	if c.mode != models.ModeTimer {
		c.leaveMode()
		c.mode = models.ModeTimer
	}
	total := util.Clamp(v.TotalSeconds(), 0, config.MaxCountdownSeconds)
	c.countdown = models.FromSeconds(total)
	c.timerState = models.RunSetup
	c.setTicker(TickerNone)
}

// slotSteps maps each slot to the field it edits and the step size.
var slotSteps = [flip.SlotCount]struct {
	field int // 0 hours, 1 minutes, 2 seconds
	step  int
}{
	{0, 10}, {0, 1},
	{1, 10}, {1, 1},
	{2, 10}, {2, 1},
}

// adjust moves one countdown field by the slot's step. Fields clamp rather
// than wrap: hours to [0, MaxSetupHours], minutes and seconds to [0, 59].
func (c *Controller) adjust(slot flip.Slot, dir int) {
	if !c.InSetup() || !c.opts.SetupArrows || !slot.Valid() {
		return
	}
	s := slotSteps[slot]
	delta := s.step * dir
	switch s.field {
	case 0:
		c.countdown.Hours = util.Clamp(c.countdown.Hours+delta, 0, config.MaxSetupHours)
	case 1:
		c.countdown.Minutes = util.Clamp(c.countdown.Minutes+delta, 0, config.MaxMinutes)
	case 2:
		c.countdown.Seconds = util.Clamp(c.countdown.Seconds+delta, 0, config.MaxSeconds)
	}
}
