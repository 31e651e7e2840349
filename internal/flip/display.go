package flip

import "time"

// Slot indexes the six digit positions of an HH:MM:SS face.
type Slot int

const (
	HourTens Slot = iota
	HourUnits
	MinuteTens
	MinuteUnits
	SecondTens
	SecondUnits
	SlotCount
)

var slotNames = [SlotCount]string{"H-tens", "H-units", "M-tens", "M-units", "S-tens", "S-units"}

func (s Slot) String() string {
	if s < 0 || s >= SlotCount {
		return "slot?"
	}
	return slotNames[s]
}

// CharIndex maps a slot to its position in an "HH:MM:SS" string.
func (s Slot) CharIndex() int {
	return int(s) + int(s)/2
}

// Valid reports whether s names one of the six slots.
func (s Slot) Valid() bool {
	return s >= 0 && s < SlotCount
}

//go:generate mockgen -destination=mocks/mock_sink.go -package=mocks github.com/akyairhashvil/flipclock/internal/flip DigitSink

// DigitSink receives digit changes for individual slots.
type DigitSink interface {
	SetDigit(slot Slot, value int, now time.Time)
}

// Display is the six-animator face.
type Display struct {
	slots [SlotCount]*Animator
}

// NewDisplay builds six idle animators sharing one flip duration.
func NewDisplay(duration time.Duration) *Display {
	d := &Display{}
	for i := range d.slots {
		d.slots[i] = NewAnimator(duration)
	}
	return d
}

// SetDigit implements DigitSink.
func (d *Display) SetDigit(slot Slot, value int, now time.Time) {
	if !slot.Valid() {
		return
	}
	d.slots[slot].SetValue(value, now)
}

// Slot returns the animator behind s.
func (d *Display) Slot(s Slot) *Animator {
	return d.slots[s]
}

// Animating reports whether any slot is mid-flip at now.
func (d *Display) Animating(now time.Time) bool {
	for _, a := range d.slots {
		if a.IsFlipping(now) {
			return true
		}
	}
	return false
}

// Digits returns the settled value of every slot.
func (d *Display) Digits() [SlotCount]int {
	var out [SlotCount]int
	for i, a := range d.slots {
		out[i] = a.Current()
	}
	return out
}
