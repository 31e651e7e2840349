package config

import "time"

// Animation and tick timing.
const (
	FlipDuration     = 150 * time.Millisecond
	SlowFlipDuration = 300 * time.Millisecond
	FrameInterval    = 10 * time.Millisecond
	TickInterval     = time.Second
)

// Countdown limits.
const (
	// MaxSetupHours caps the hours field the setup arrows can reach.
	MaxSetupHours = 99
	MaxMinutes    = 59
	MaxSeconds    = 59
	// MaxCountdownSeconds is 99:59:59.
	MaxCountdownSeconds = MaxSetupHours*3600 + MaxMinutes*60 + MaxSeconds
)

// Completion flash.
const (
	FlashCycles = 10
	FlashPeriod = 400 * time.Millisecond
)

// Digit cell geometry.
const (
	DefaultScale  = 1.0
	DefaultAspect = 0.6 // width / height
	BaseCellRows  = 14  // canvas pixel rows at scale 1
	MinCellRows   = 8
	MaxScale      = 4.0
)

// Application settings.
const (
	AppName        = "flipclock"
	ConfigFileName = "config.yml"
	LogFileName    = "flipclock.log"
	EnvPrefix      = "FLIPCLOCK"
)

// TimerPresets are the quick countdown choices, bound to keys 1..6.
var TimerPresets = []time.Duration{
	1 * time.Minute,
	5 * time.Minute,
	10 * time.Minute,
	15 * time.Minute,
	30 * time.Minute,
	1 * time.Hour,
}
