package modes

import (
	"fmt"
	"time"

	"github.com/akyairhashvil/flipclock/internal/flip"
	"github.com/akyairhashvil/flipclock/internal/models"
)

// IntentKind enumerates user requests the controller understands.
type IntentKind int

const (
	IntentSelectMode IntentKind = iota
	IntentStart
	IntentPause
	IntentReset
	IntentIncrementDigit
	IntentDecrementDigit
	IntentPreset
	IntentSetCountdown
	IntentDismissCompletion
)

// Intent is a single user request.
type Intent struct {
	Kind     IntentKind
	Mode     models.Mode
	Slot     flip.Slot
	Duration time.Duration
	Value    models.HMS
}

func SelectMode(m models.Mode) Intent   { return Intent{Kind: IntentSelectMode, Mode: m} }
func Start() Intent                     { return Intent{Kind: IntentStart} }
func Pause() Intent                     { return Intent{Kind: IntentPause} }
func Reset() Intent                     { return Intent{Kind: IntentReset} }
func IncrementDigit(s flip.Slot) Intent { return Intent{Kind: IntentIncrementDigit, Slot: s} }
func DecrementDigit(s flip.Slot) Intent { return Intent{Kind: IntentDecrementDigit, Slot: s} }
func Preset(d time.Duration) Intent     { return Intent{Kind: IntentPreset, Duration: d} }
func SetCountdown(v models.HMS) Intent  { return Intent{Kind: IntentSetCountdown, Value: v} }
func DismissCompletion() Intent         { return Intent{Kind: IntentDismissCompletion} }

func (i Intent) String() string {
	switch i.Kind {
	case IntentSelectMode:
		return "select:" + i.Mode.String()
	case IntentStart:
		return "start"
	case IntentPause:
		return "pause"
	case IntentReset:
		return "reset"
	case IntentIncrementDigit:
		return "increment:" + i.Slot.String()
	case IntentDecrementDigit:
		return "decrement:" + i.Slot.String()
	case IntentPreset:
		return "preset:" + i.Duration.String()
	case IntentSetCountdown:
		return "set:" + i.Value.String()
	case IntentDismissCompletion:
		return "dismiss"
	}
	return fmt.Sprintf("intent(%d)", int(i.Kind))
}
