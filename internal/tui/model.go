package tui

import (
	"time"

	"github.com/akyairhashvil/flipclock/internal/config"
	"github.com/akyairhashvil/flipclock/internal/flip"
	"github.com/akyairhashvil/flipclock/internal/models"
	"github.com/akyairhashvil/flipclock/internal/modes"
	"github.com/akyairhashvil/flipclock/internal/notify"
	"github.com/akyairhashvil/flipclock/internal/render"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Options carries what the model needs from settings.
type Options struct {
	FlipDuration  time.Duration
	FrameInterval time.Duration
	TickInterval  time.Duration
	Scale         float64
	Aspect        float64
	Theme         string
	StartMode     models.Mode
	SetupArrows   bool
	Bell          notify.Notifier
	// Now is the clock source; nil means time.Now.
	Now func() time.Time
}

// OptionsFromSettings maps loaded settings onto model options.
func OptionsFromSettings(s config.Settings, mode models.Mode, bell notify.Notifier) Options {
	return Options{
		FlipDuration:  s.FlipDuration,
		FrameInterval: s.FrameInterval,
		TickInterval:  config.TickInterval,
		Scale:         s.Scale,
		Aspect:        s.Aspect,
		Theme:         s.Theme,
		StartMode:     mode,
		SetupArrows:   s.SetupArrows,
		Bell:          bell,
	}
}

// MainModel is the root bubbletea model. Everything runs on the bubbletea
// loop; the pointers it holds are never shared with other goroutines.
type MainModel struct {
	opts     Options
	now      func() time.Time
	theme    Theme
	ctrl     *modes.Controller
	display  *flip.Display
	face     *render.Face
	term     *render.Terminal
	flash    *notify.Flash
	registry *HandlerRegistry

	input     textinput.Model
	entering  bool
	inputErr  string
	slot      flip.Slot
	showHelp  bool
	animating bool

	width  int
	height int
}

func NewMainModel(opts Options) MainModel {
	if opts.FrameInterval <= 0 {
		opts.FrameInterval = config.FrameInterval
	}
	if opts.TickInterval <= 0 {
		opts.TickInterval = config.TickInterval
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	theme := LookupTheme(opts.Theme)
	display := flip.NewDisplay(opts.FlipDuration)

	ti := textinput.New()
	ti.Placeholder = "HH:MM:SS"
	ti.CharLimit = 8
	ti.Width = 10

	m := MainModel{
		opts:     opts,
		now:      now,
		theme:    theme,
		ctrl:     modes.New(display, modes.Options{SetupArrows: opts.SetupArrows}),
		display:  display,
		face:     render.NewFace(opts.Scale, opts.Aspect, theme.Palette),
		term:     render.NewTerminal(),
		flash:    notify.NewFlash(theme.Palette.Background, theme.Alert),
		registry: NewHandlerRegistry(),
		input:    ti,
		slot:     flip.SecondUnits,
	}
	registerBindings(m.registry)
	if opts.StartMode != models.ModeClock {
		m.ctrl.Transition(modes.SelectMode(opts.StartMode), now())
	}
	return m
}

func (m MainModel) Init() tea.Cmd {
	now := m.now()
	m.ctrl.Refresh(now)
	cmds := []tea.Cmd{tickCmd(m.ctrl.ActiveTicker(), m.ctrl.Generation(), m.opts.TickInterval)}
	if m.display.Animating(now) {
		// animating is recorded by the first FrameMsg.
		cmds = append(cmds, frameCmd(m.opts.FrameInterval))
	}
	return tea.Batch(cmds...)
}

// Controller exposes the mode state machine.
func (m MainModel) Controller() *modes.Controller { return m.ctrl }

// Display exposes the digit animators.
func (m MainModel) Display() *flip.Display { return m.display }

// Face exposes the digit canvases, painted at the last View.
func (m MainModel) Face() *render.Face { return m.face }

// Theme is the active theme.
func (m MainModel) Theme() Theme { return m.theme }
