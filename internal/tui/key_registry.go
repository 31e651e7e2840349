package tui

import (
	"sort"
	"strings"

	"github.com/akyairhashvil/flipclock/internal/models"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyHandler reacts to a key. handled=false lets lower priority bindings
// for the same key try.
type KeyHandler func(m MainModel, key string) (next MainModel, cmd tea.Cmd, handled bool)

type KeyBinding struct {
	Key         string
	Handler     KeyHandler
	Description string
	Modes       []models.Mode
	SetupOnly   bool
	Priority    int
}

func (b KeyBinding) AppliesTo(mode models.Mode, setup bool) bool {
	if b.SetupOnly && !setup {
		return false
	}
	if len(b.Modes) == 0 {
		return true
	}
	for _, v := range b.Modes {
		if v == mode {
			return true
		}
	}
	return false
}

type HandlerRegistry struct {
	bindings []KeyBinding
}

func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{}
}

func (r *HandlerRegistry) Register(b KeyBinding) {
	r.bindings = append(r.bindings, b)
	sort.SliceStable(r.bindings, func(i, j int) bool {
		return r.bindings[i].Priority > r.bindings[j].Priority
	})
}

func (r *HandlerRegistry) Handle(m MainModel, key string) (MainModel, tea.Cmd, bool) {
	mode, setup := m.ctrl.Mode(), m.ctrl.InSetup()
	for _, b := range r.bindings {
		if b.Key == key && b.AppliesTo(mode, setup) {
			next, cmd, handled := b.Handler(m, key)
			if handled {
				return next, cmd, true
			}
		}
	}
	return m, nil, false
}

func (r *HandlerRegistry) BindingsFor(mode models.Mode, setup bool) []KeyBinding {
	var out []KeyBinding
	for _, b := range r.bindings {
		if b.AppliesTo(mode, setup) {
			out = append(out, b)
		}
	}
	return out
}

func (r *HandlerRegistry) HelpFor(mode models.Mode, setup bool) string {
	bindings := r.BindingsFor(mode, setup)
	seen := make(map[string]bool)
	var parts []string
	for _, b := range bindings {
		if b.Description == "" {
			continue
		}
		if seen[b.Description] {
			continue
		}
		seen[b.Description] = true
		parts = append(parts, "["+displayKey(b.Key)+"]"+b.Description)
	}
	return strings.Join(parts, "|")
}

func displayKey(k string) string {
	switch k {
	case " ":
		return "space"
	case "up":
		return "↑"
	case "down":
		return "↓"
	case "left":
		return "←"
	case "right":
		return "→"
	}
	return k
}
