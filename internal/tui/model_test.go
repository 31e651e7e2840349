package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/akyairhashvil/flipclock/internal/config"
	"github.com/akyairhashvil/flipclock/internal/flip"
	"github.com/akyairhashvil/flipclock/internal/models"
	"github.com/akyairhashvil/flipclock/internal/modes"
	tea "github.com/charmbracelet/bubbletea"
)

type stubBell struct {
	calls int
	err   error
}

func (b *stubBell) Notify() error {
	b.calls++
	return b.err
}

type testClock struct{ t time.Time }

func (c *testClock) Now() time.Time          { return c.t }
func (c *testClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func setupTestModel(t *testing.T, arrows bool) (MainModel, *testClock) {
	t.Helper()
	clock := &testClock{t: time.Date(2026, 3, 14, 12, 34, 56, 0, time.Local)}
	m := NewMainModel(Options{
		FlipDuration:  config.FlipDuration,
		FrameInterval: config.FrameInterval,
		TickInterval:  config.TickInterval,
		Scale:         config.DefaultScale,
		Aspect:        config.DefaultAspect,
		Theme:         "default",
		SetupArrows:   arrows,
		Bell:          &stubBell{},
		Now:           clock.Now,
	})
	return m, clock
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m MainModel, msg tea.KeyMsg) (MainModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	mm, ok := next.(MainModel)
	if !ok {
		t.Fatalf("expected MainModel, got %T", next)
	}
	return mm, cmd
}

func TestNewMainModelStartsInClock(t *testing.T) {
	m, _ := setupTestModel(t, true)
	if m.ctrl.Mode() != models.ModeClock {
		t.Fatalf("expected clock mode, got %v", m.ctrl.Mode())
	}
	if m.ctrl.ActiveTicker() != modes.TickerClock {
		t.Fatalf("expected clock ticker")
	}
	if m.Init() == nil {
		t.Fatalf("expected init command")
	}
}

func TestNewMainModelStartMode(t *testing.T) {
	clock := &testClock{t: time.Now()}
	m := NewMainModel(Options{StartMode: models.ModeStopwatch, Now: clock.Now})
	if m.ctrl.Mode() != models.ModeStopwatch {
		t.Fatalf("expected stopwatch mode, got %v", m.ctrl.Mode())
	}
	if m.opts.FrameInterval != config.FrameInterval || m.opts.TickInterval != config.TickInterval {
		t.Fatalf("expected default intervals")
	}
}

func TestPresetKeyLoadsCountdown(t *testing.T) {
	m, _ := setupTestModel(t, true)
	m, _ = press(t, m, runes("3"))
	if m.ctrl.Mode() != models.ModeTimer || !m.ctrl.InSetup() {
		t.Fatalf("expected timer setup after preset")
	}
	want := models.FromDuration(config.TimerPresets[2])
	if m.ctrl.Countdown() != want {
		t.Fatalf("expected %v, got %v", want, m.ctrl.Countdown())
	}

	m, cmd := press(t, m, runes("s"))
	if !m.ctrl.Running() {
		t.Fatalf("expected timer running")
	}
	if cmd == nil {
		t.Fatalf("expected tick command after start")
	}
}

func TestSpaceTogglesStopwatch(t *testing.T) {
	m, _ := setupTestModel(t, true)
	m, _ = press(t, m, runes("w"))
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeySpace})
	if !m.ctrl.Running() {
		t.Fatalf("expected stopwatch running")
	}
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeySpace})
	if m.ctrl.RunState() != models.RunPaused {
		t.Fatalf("expected stopwatch paused, got %v", m.ctrl.RunState())
	}
}

func TestStartIgnoredInClock(t *testing.T) {
	m, _ := setupTestModel(t, true)
	gen := m.ctrl.Generation()
	m, _ = press(t, m, runes("s"))
	if m.ctrl.Mode() != models.ModeClock || m.ctrl.Generation() != gen {
		t.Fatalf("expected start to be ignored in clock mode")
	}
}

func TestHandleTickCompletesCountdown(t *testing.T) {
	m, clock := setupTestModel(t, true)
	m, _ = m.apply(modes.SetCountdown(models.FromSeconds(1)))
	m, _ = m.apply(modes.Start())

	clock.Advance(time.Second)
	next, _ := m.handleTick(TickMsg{Ticker: modes.TickerCountdown, Gen: m.ctrl.Generation(), Time: clock.Now()})
	if !next.ctrl.Completed() {
		t.Fatalf("expected countdown completed")
	}
	if !next.ctrl.InSetup() {
		t.Fatalf("expected timer back in setup")
	}
	if !next.flash.Active(clock.Now()) {
		t.Fatalf("expected flash active")
	}
	if !next.animating {
		t.Fatalf("expected frame loop started")
	}
}

func TestHandleTickDropsStaleGeneration(t *testing.T) {
	m, clock := setupTestModel(t, true)
	m, _ = m.apply(modes.SelectMode(models.ModeStopwatch))
	m, _ = m.apply(modes.Start())
	stale := m.ctrl.Generation()
	m, _ = m.apply(modes.Pause())
	m, _ = m.apply(modes.Start())

	next, cmd := m.handleTick(TickMsg{Ticker: modes.TickerStopwatch, Gen: stale, Time: clock.Now()})
	if !next.ctrl.Elapsed().IsZero() {
		t.Fatalf("expected stale tick ignored, elapsed %v", next.ctrl.Elapsed())
	}
	if cmd != nil {
		t.Fatalf("expected no command for stale tick")
	}
}

func TestFrameLoopStopsWhenIdle(t *testing.T) {
	m, clock := setupTestModel(t, true)
	m, _ = m.apply(modes.SelectMode(models.ModeStopwatch))
	m, _ = m.apply(modes.Start())

	clock.Advance(time.Second)
	m, _ = m.handleTick(TickMsg{Ticker: modes.TickerStopwatch, Gen: m.ctrl.Generation(), Time: clock.Now()})
	if !m.animating {
		t.Fatalf("expected frames while the seconds digit flips")
	}

	m, cmd := m.handleFrame(clock.Now())
	if cmd == nil || !m.animating {
		t.Fatalf("expected frame loop to continue mid-flip")
	}

	clock.Advance(config.FlipDuration)
	m, cmd = m.handleFrame(clock.Now())
	if cmd != nil || m.animating {
		t.Fatalf("expected frame loop to stop once settled")
	}
}

func TestSetupArrowsEditDigits(t *testing.T) {
	m, _ := setupTestModel(t, true)
	m, _ = press(t, m, runes("t"))
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if got := m.ctrl.Countdown(); got != (models.HMS{Seconds: 1}) {
		t.Fatalf("expected 1s, got %v", got)
	}
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if m.slot != flip.SecondTens {
		t.Fatalf("expected seconds tens selected, got %v", m.slot)
	}
	m, _ = press(t, m, runes("k"))
	if got := m.ctrl.Countdown(); got != (models.HMS{Seconds: 11}) {
		t.Fatalf("expected 11s, got %v", got)
	}
	m, _ = press(t, m, runes("j"))
	m, _ = press(t, m, runes("j"))
	if !m.ctrl.Countdown().IsZero() {
		t.Fatalf("expected clamp at zero, got %v", m.ctrl.Countdown())
	}
}

func TestMoveSlotClamps(t *testing.T) {
	m, _ := setupTestModel(t, true)
	m.slot = flip.HourTens
	m = m.moveSlot(-1)
	if m.slot != flip.HourTens {
		t.Fatalf("expected clamp at first slot")
	}
	m.slot = flip.SecondUnits
	m = m.moveSlot(1)
	if m.slot != flip.SecondUnits {
		t.Fatalf("expected clamp at last slot")
	}
}

func TestSetupArrowsDisabled(t *testing.T) {
	m, _ := setupTestModel(t, false)
	m, _ = press(t, m, runes("t"))
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if !m.ctrl.Countdown().IsZero() {
		t.Fatalf("expected arrows ignored, got %v", m.ctrl.Countdown())
	}
}

func TestCountdownEntry(t *testing.T) {
	m, _ := setupTestModel(t, true)
	m, _ = press(t, m, runes("e"))
	if !m.entering {
		t.Fatalf("expected entry prompt")
	}
	m, _ = press(t, m, runes("1:30"))
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.entering {
		t.Fatalf("expected prompt closed")
	}
	if got := m.ctrl.Countdown(); got != (models.HMS{Minutes: 1, Seconds: 30}) {
		t.Fatalf("expected 00:01:30, got %v", got)
	}
	if m.ctrl.Mode() != models.ModeTimer || !m.ctrl.InSetup() {
		t.Fatalf("expected timer setup after entry")
	}
}

func TestCountdownEntryInvalid(t *testing.T) {
	m, _ := setupTestModel(t, true)
	m, _ = press(t, m, runes("e"))
	m, _ = press(t, m, runes("ab"))
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.entering || m.inputErr == "" {
		t.Fatalf("expected prompt to stay open with an error")
	}
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.entering || m.inputErr != "" {
		t.Fatalf("expected esc to cancel entry")
	}
	if m.ctrl.Mode() != models.ModeClock {
		t.Fatalf("expected mode unchanged after cancel")
	}
}

func TestEntryKeysDoNotTriggerBindings(t *testing.T) {
	m, _ := setupTestModel(t, true)
	m, _ = press(t, m, runes("e"))
	m, _ = press(t, m, runes("q"))
	if !m.entering {
		t.Fatalf("expected prompt to stay open")
	}
	if m.input.Value() != "q" {
		t.Fatalf("expected q typed into the prompt, got %q", m.input.Value())
	}
}

func TestCompletionDismissedByEnter(t *testing.T) {
	m, clock := setupTestModel(t, true)
	m, _ = m.apply(modes.SetCountdown(models.FromSeconds(1)))
	m, _ = m.apply(modes.Start())
	m, _ = m.handleTick(TickMsg{Ticker: modes.TickerCountdown, Gen: m.ctrl.Generation(), Time: clock.Now()})

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.ctrl.Completed() {
		t.Fatalf("expected completion dismissed")
	}
	if m.flash.Active(clock.Now()) {
		t.Fatalf("expected flash stopped")
	}
}

func TestCompletionDismissedByOtherKey(t *testing.T) {
	m, clock := setupTestModel(t, true)
	m, _ = m.apply(modes.SetCountdown(models.FromSeconds(1)))
	m, _ = m.apply(modes.Start())
	m, _ = m.handleTick(TickMsg{Ticker: modes.TickerCountdown, Gen: m.ctrl.Generation(), Time: clock.Now()})

	m, _ = press(t, m, runes("c"))
	if m.ctrl.Completed() {
		t.Fatalf("expected completion dismissed")
	}
	if m.ctrl.Mode() != models.ModeClock {
		t.Fatalf("expected key to still act after dismissing")
	}
}

func TestQuitKey(t *testing.T) {
	m, _ := setupTestModel(t, true)
	_, cmd := press(t, m, runes("q"))
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected QuitMsg")
	}
}

func TestWindowSize(t *testing.T) {
	m, _ := setupTestModel(t, true)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	mm := next.(MainModel)
	if mm.width != 120 || mm.height != 40 {
		t.Fatalf("expected size recorded, got %dx%d", mm.width, mm.height)
	}
}

func TestBellCmd(t *testing.T) {
	if bellCmd(nil) != nil {
		t.Fatalf("expected nil command without notifier")
	}
	b := &stubBell{err: errors.New("no tty")}
	if msg := bellCmd(b)(); msg != nil {
		t.Fatalf("expected nil message, got %v", msg)
	}
	if b.calls != 1 {
		t.Fatalf("expected one bell, got %d", b.calls)
	}
}

func TestTickCmdNoneIsNil(t *testing.T) {
	if tickCmd(modes.TickerNone, 3, time.Second) != nil {
		t.Fatalf("expected no command for the idle ticker")
	}
}

func TestTickCmdAlignment(t *testing.T) {
	if !wallAligned(modes.TickerClock) {
		t.Fatalf("expected the clock ticker to follow the wall clock")
	}
	for _, tk := range []modes.Ticker{modes.TickerCountdown, modes.TickerStopwatch} {
		if wallAligned(tk) {
			t.Fatalf("expected %v to count from its start", tk)
		}
	}

	msg, ok := tickCmd(modes.TickerClock, 7, 20*time.Millisecond)().(TickMsg)
	if !ok {
		t.Fatalf("expected TickMsg from the clock ticker")
	}
	if msg.Ticker != modes.TickerClock || msg.Gen != 7 {
		t.Fatalf("unexpected tick %+v", msg)
	}
}

func TestHelpToggle(t *testing.T) {
	m, _ := setupTestModel(t, true)
	m, _ = press(t, m, runes("?"))
	if !m.showHelp {
		t.Fatalf("expected help shown")
	}
	if !strings.Contains(m.View(), "Quit") {
		t.Fatalf("expected help text in view")
	}
}
