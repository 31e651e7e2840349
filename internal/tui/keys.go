package tui

import (
	"fmt"

	"github.com/akyairhashvil/flipclock/internal/config"
	"github.com/akyairhashvil/flipclock/internal/models"
	"github.com/akyairhashvil/flipclock/internal/modes"
	tea "github.com/charmbracelet/bubbletea"
)

var countingModes = []models.Mode{models.ModeTimer, models.ModeStopwatch}

func intentHandler(in modes.Intent) KeyHandler {
	return func(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
		next, cmd := m.apply(in)
		return next, cmd, true
	}
}

func registerBindings(r *HandlerRegistry) {
	// Global
	r.Register(KeyBinding{Key: "q", Description: "Quit", Priority: 100,
		Handler: func(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
			return m, tea.Quit, true
		}})
	r.Register(KeyBinding{Key: "?", Description: "Help", Priority: 90,
		Handler: func(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
			m.showHelp = !m.showHelp
			return m, nil, true
		}})
	r.Register(KeyBinding{Key: "c", Description: "Clock", Priority: 80,
		Handler: intentHandler(modes.SelectMode(models.ModeClock))})
	r.Register(KeyBinding{Key: "t", Description: "Timer", Priority: 80,
		Handler: intentHandler(modes.SelectMode(models.ModeTimer))})
	r.Register(KeyBinding{Key: "w", Description: "Stopwatch", Priority: 80,
		Handler: intentHandler(modes.SelectMode(models.ModeStopwatch))})

	// Timer and stopwatch
	r.Register(KeyBinding{Key: "s", Description: "Start", Modes: countingModes, Priority: 50,
		Handler: intentHandler(modes.Start())})
	r.Register(KeyBinding{Key: "p", Description: "Pause", Modes: countingModes, Priority: 50,
		Handler: intentHandler(modes.Pause())})
	r.Register(KeyBinding{Key: "r", Description: "Reset", Modes: countingModes, Priority: 50,
		Handler: intentHandler(modes.Reset())})
	r.Register(KeyBinding{Key: " ", Description: "Start/Pause", Modes: countingModes, Priority: 50,
		Handler: func(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
			if m.ctrl.Running() {
				next, cmd := m.apply(modes.Pause())
				return next, cmd, true
			}
			next, cmd := m.apply(modes.Start())
			return next, cmd, true
		}})

	// Presets and entry switch to Timer setup from any mode.
	for i, d := range config.TimerPresets {
		r.Register(KeyBinding{
			Key:         fmt.Sprintf("%d", i+1),
			Description: "Preset " + FormatDuration(d),
			Priority:    40,
			Handler:     intentHandler(modes.Preset(d)),
		})
	}
	r.Register(KeyBinding{Key: "e", Description: "Enter time", Priority: 40,
		Handler: func(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
			next, cmd := m.beginEntry()
			return next, cmd, true
		}})

	// Setup digit editing
	setupOnly := []models.Mode{models.ModeTimer}
	move := func(delta int) KeyHandler {
		return func(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
			if !m.ctrl.ArrowsEnabled() {
				return m, nil, false
			}
			return m.moveSlot(delta), nil, true
		}
	}
	step := func(up bool) KeyHandler {
		return func(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
			if !m.ctrl.ArrowsEnabled() {
				return m, nil, false
			}
			in := modes.DecrementDigit(m.slot)
			if up {
				in = modes.IncrementDigit(m.slot)
			}
			next, cmd := m.apply(in)
			return next, cmd, true
		}
	}
	for _, k := range []string{"left", "h"} {
		r.Register(KeyBinding{Key: k, Description: "Prev digit", Modes: setupOnly, SetupOnly: true, Priority: 30, Handler: move(-1)})
	}
	for _, k := range []string{"right", "l"} {
		r.Register(KeyBinding{Key: k, Description: "Next digit", Modes: setupOnly, SetupOnly: true, Priority: 30, Handler: move(1)})
	}
	for _, k := range []string{"up", "k"} {
		r.Register(KeyBinding{Key: k, Description: "Digit up", Modes: setupOnly, SetupOnly: true, Priority: 30, Handler: step(true)})
	}
	for _, k := range []string{"down", "j"} {
		r.Register(KeyBinding{Key: k, Description: "Digit down", Modes: setupOnly, SetupOnly: true, Priority: 30, Handler: step(false)})
	}
}
