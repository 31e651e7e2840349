package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/akyairhashvil/flipclock/internal/config"
)

// HMS is a duration broken into hours, minutes and seconds. Every field is
// non-negative; minutes and seconds stay below 60 after any arithmetic.
// Hours are unbounded.
type HMS struct {
	Hours   int
	Minutes int
	Seconds int
}

// FromDuration splits d into HMS, truncating sub-second precision. Negative
// durations become zero.
func FromDuration(d time.Duration) HMS {
	total := int(d / time.Second)
	if total < 0 {
		total = 0
	}
	return FromSeconds(total)
}

// FromSeconds splits a second count into HMS.
func FromSeconds(total int) HMS {
	if total < 0 {
		total = 0
	}
	return HMS{
		Hours:   total / 3600,
		Minutes: (total % 3600) / 60,
		Seconds: total % 60,
	}
}

// FromClock takes the time-of-day portion of t.
func FromClock(t time.Time) HMS {
	return HMS{Hours: t.Hour(), Minutes: t.Minute(), Seconds: t.Second()}
}

func (h HMS) TotalSeconds() int {
	return h.Hours*3600 + h.Minutes*60 + h.Seconds
}

func (h HMS) Duration() time.Duration {
	return time.Duration(h.TotalSeconds()) * time.Second
}

func (h HMS) IsZero() bool {
	return h.Hours == 0 && h.Minutes == 0 && h.Seconds == 0
}

// Decrement removes one second, borrowing from minutes then hours. A zero
// value stays zero.
func (h HMS) Decrement() HMS {
	if h.IsZero() {
		return h
	}
	if h.Seconds > 0 {
		h.Seconds--
		return h
	}
	h.Seconds = 59
	if h.Minutes > 0 {
		h.Minutes--
		return h
	}
	h.Minutes = 59
	h.Hours--
	return h
}

// Increment adds one second, carrying into minutes and hours.
func (h HMS) Increment() HMS {
	h.Seconds++
	if h.Seconds < 60 {
		return h
	}
	h.Seconds = 0
	h.Minutes++
	if h.Minutes < 60 {
		return h
	}
	h.Minutes = 0
	h.Hours++
	return h
}

// String renders the canonical 8 character HH:MM:SS form. Hours past 99 are
// shown modulo 100 so the width never changes.
func (h HMS) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", h.Hours%100, h.Minutes, h.Seconds)
}

// ParseHMS accepts "HH:MM:SS", "MM:SS" or "SS". Minutes and seconds must be
// below 60 except in the leading field of the short forms, which is
// normalized. Values past 99:59:59 are rejected.
func ParseHMS(s string) (HMS, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return HMS{}, fmt.Errorf("empty time value")
	}
	parts := strings.Split(s, ":")
	if len(parts) > 3 {
		return HMS{}, fmt.Errorf("invalid time %q: too many fields", s)
	}
	nums := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return HMS{}, fmt.Errorf("invalid time %q: %w", s, err)
		}
		if n < 0 {
			return HMS{}, fmt.Errorf("invalid time %q: negative field", s)
		}
		nums[i] = n
	}
	switch len(nums) {
	case 1:
		if nums[0] > config.MaxCountdownSeconds {
			return HMS{}, fmt.Errorf("invalid time %q: longer than 99:59:59", s)
		}
		return FromSeconds(nums[0]), nil
	case 2:
		if nums[1] > config.MaxSeconds {
			return HMS{}, fmt.Errorf("invalid time %q: seconds out of range", s)
		}
		if nums[0] > config.MaxCountdownSeconds/60 {
			return HMS{}, fmt.Errorf("invalid time %q: longer than 99:59:59", s)
		}
		return HMS{Minutes: nums[0], Seconds: nums[1]}.normalize(), nil
	default:
		if nums[1] > config.MaxMinutes || nums[2] > config.MaxSeconds {
			return HMS{}, fmt.Errorf("invalid time %q: field out of range", s)
		}
		if nums[0] > config.MaxSetupHours {
			return HMS{}, fmt.Errorf("invalid time %q: hours out of range", s)
		}
		return HMS{Hours: nums[0], Minutes: nums[1], Seconds: nums[2]}, nil
	}
}

func (h HMS) normalize() HMS {
	return FromSeconds(h.TotalSeconds())
}
