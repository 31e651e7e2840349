package notify

import (
	"fmt"
	"io"
)

// Notifier makes the completion noise.
type Notifier interface {
	Notify() error
}

// Bell rings the terminal bell on w.
type Bell struct {
	w       io.Writer
	enabled bool
}

func NewBell(w io.Writer, enabled bool) *Bell {
	return &Bell{w: w, enabled: enabled}
}

func (b *Bell) Notify() error {
	if !b.enabled || b.w == nil {
		return nil
	}
	if _, err := io.WriteString(b.w, "\a"); err != nil {
		return fmt.Errorf("ringing bell: %w", err)
	}
	return nil
}
