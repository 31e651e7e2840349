package tui

import (
	"fmt"
	"time"

	"github.com/akyairhashvil/flipclock/internal/flip"
	"github.com/akyairhashvil/flipclock/internal/log"
	"github.com/akyairhashvil/flipclock/internal/models"
	"github.com/akyairhashvil/flipclock/internal/modes"
	"github.com/akyairhashvil/flipclock/internal/util"
	tea "github.com/charmbracelet/bubbletea"
)

func (m MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case TickMsg:
		return m.handleTick(msg)
	case FrameMsg:
		return m.handleFrame(time.Time(msg))
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	if m.entering {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m MainModel) handleTick(msg TickMsg) (MainModel, tea.Cmd) {
	res := m.ctrl.Tick(modes.Tick(msg))
	var cmds []tea.Cmd
	if res.Schedule {
		cmds = append(cmds, tickCmd(m.ctrl.ActiveTicker(), m.ctrl.Generation(), m.opts.TickInterval))
	}
	if res.Completed {
		now := m.now()
		m.flash.Trigger(now)
		cmds = append(cmds, bellCmd(m.opts.Bell))
	}
	m, frame := m.ensureFrames()
	cmds = append(cmds, frame)
	return m, tea.Batch(cmds...)
}

func (m MainModel) handleFrame(_ time.Time) (MainModel, tea.Cmd) {
	now := m.now()
	if m.display.Animating(now) || m.flash.Active(now) {
		m.animating = true
		return m, frameCmd(m.opts.FrameInterval)
	}
	m.animating = false
	return m, nil
}

// ensureFrames starts the frame loop if something needs animating and the
// loop is not already running.
func (m MainModel) ensureFrames() (MainModel, tea.Cmd) {
	if m.animating {
		return m, nil
	}
	now := m.now()
	if !m.display.Animating(now) && !m.flash.Active(now) {
		return m, nil
	}
	m.animating = true
	return m, frameCmd(m.opts.FrameInterval)
}

// apply runs one intent through the controller and arms whatever it needs.
func (m MainModel) apply(in modes.Intent) (MainModel, tea.Cmd) {
	res := m.ctrl.Transition(in, m.now())
	var cmds []tea.Cmd
	if res.Schedule {
		cmds = append(cmds, tickCmd(m.ctrl.ActiveTicker(), m.ctrl.Generation(), m.opts.TickInterval))
	}
	if in.Kind == modes.IntentDismissCompletion {
		m.flash.Stop()
	}
	m, frame := m.ensureFrames()
	cmds = append(cmds, frame)
	return m, tea.Batch(cmds...)
}

func (m MainModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" {
		return m, tea.Quit
	}
	if m.entering {
		return m.handleEntry(msg)
	}
	if m.ctrl.Completed() {
		next, cmd := m.apply(modes.DismissCompletion())
		if key == "enter" || key == "esc" {
			return next, cmd
		}
		m = next
		next, cmd2, _ := m.registry.Handle(m, key)
		return next, tea.Batch(cmd, cmd2)
	}
	next, cmd, _ := m.registry.Handle(m, key)
	return next, cmd
}

func (m MainModel) handleEntry(msg tea.KeyMsg) (MainModel, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.entering = false
		m.inputErr = ""
		m.input.Blur()
		m.input.Reset()
		return m, nil
	case tea.KeyEnter:
		v, err := models.ParseHMS(m.input.Value())
		if err != nil {
			log.Warnw("countdown entry rejected", "input", m.input.Value(), "error", err)
			m.inputErr = err.Error()
			return m, nil
		}
		m.entering = false
		m.inputErr = ""
		m.input.Blur()
		m.input.Reset()
		log.Infow("countdown entered", "value", v.String())
		return m.apply(modes.SetCountdown(v))
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m MainModel) beginEntry() (MainModel, tea.Cmd) {
	m.entering = true
	m.inputErr = ""
	m.input.Reset()
	if c := m.ctrl.Countdown(); !c.IsZero() {
		m.input.SetValue(c.String())
	}
	return m, m.input.Focus()
}

func (m MainModel) moveSlot(delta int) MainModel {
	m.slot = flip.Slot(util.Clamp(int(m.slot)+delta, 0, int(flip.SlotCount)-1))
	return m
}

func presetLabel(i int, d time.Duration) string {
	return fmt.Sprintf("%d:%s", i+1, FormatDuration(d))
}
