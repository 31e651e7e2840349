package tui

import (
	"strings"

	"github.com/akyairhashvil/flipclock/internal/config"
	"github.com/akyairhashvil/flipclock/internal/flip"
	"github.com/akyairhashvil/flipclock/internal/models"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func (m MainModel) View() string {
	now := m.now()
	canvases := m.face.Paint(m.display, now)
	bg := m.flash.Color(now)

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	face := m.term.Face(canvases, bg, m.theme.Palette.Ink)
	b.WriteString(lipgloss.NewStyle().
		Background(lipgloss.Color(bg.Hex())).
		Padding(1, 2).
		Render(face))
	b.WriteString("\n")
	if m.ctrl.InSetup() && m.ctrl.ArrowsEnabled() {
		b.WriteString(m.renderArrow(canvases[0].Width()))
	}
	b.WriteString("\n")

	if m.ctrl.Completed() {
		b.WriteString(m.theme.Banner.Render("Time is up!"))
		b.WriteString("\n")
	}
	if m.entering {
		b.WriteString(m.theme.Input.Render("Countdown " + m.input.View()))
		b.WriteString("\n")
		if m.inputErr != "" {
			b.WriteString(m.theme.Error.Render(m.inputErr))
			b.WriteString("\n")
		}
	}

	b.WriteString(m.renderControls())
	if m.showHelp {
		b.WriteString("\n")
		b.WriteString(m.theme.Dim.Render(m.registry.HelpFor(m.ctrl.Mode(), m.ctrl.InSetup())))
	}

	out := b.String()
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, out)
	}
	return out
}

func (m MainModel) renderHeader() string {
	var tabs []string
	for _, mode := range []models.Mode{models.ModeClock, models.ModeTimer, models.ModeStopwatch} {
		label := strings.ToUpper(mode.String()[:1]) + mode.String()[1:]
		if mode == m.ctrl.Mode() {
			tabs = append(tabs, m.theme.ModeActive.Render(label))
		} else {
			tabs = append(tabs, m.theme.ModeInactive.Render(label))
		}
	}
	status := FormatStatus(m.ctrl.Mode().String(), m.ctrl.RunState().String())
	return lipgloss.JoinHorizontal(lipgloss.Top,
		m.theme.Header.Render(config.AppName+" "),
		strings.Join(tabs, " "),
		m.theme.Dim.Render("  "+status+"  "+versionLabel()),
	)
}

// slotOffset is the column where slot s starts inside the face, excluding
// the outer padding.
func (m MainModel) slotOffset(s flip.Slot, cellWidth int) int {
	i := int(s)
	return i*cellWidth + ((i+1)/2)*m.term.Gap + (i/2)*m.term.ColonWidth
}

// renderArrow marks the selected setup digit under the face.
func (m MainModel) renderArrow(cellWidth int) string {
	const padLeft = 2
	col := padLeft + m.slotOffset(m.slot, cellWidth) + cellWidth/2
	return strings.Repeat(" ", col) + m.theme.Arrow.Render("▲")
}

// controlLabels lists the actions valid in the current state.
func (m MainModel) controlLabels() []string {
	var labels []string
	switch m.ctrl.Mode() {
	case models.ModeTimer:
		switch m.ctrl.RunState() {
		case models.RunSetup:
			if !m.ctrl.Countdown().IsZero() {
				labels = append(labels, "[s]Start")
			}
			labels = append(labels, "[e]Enter time")
		case models.RunRunning:
			labels = append(labels, "[p]Pause", "[r]Reset")
		case models.RunPaused:
			labels = append(labels, "[s]Resume", "[r]Reset")
		}
	case models.ModeStopwatch:
		if m.ctrl.Running() {
			labels = append(labels, "[p]Pause", "[r]Reset")
		} else {
			labels = append(labels, "[s]Start")
			if !m.ctrl.Elapsed().IsZero() {
				labels = append(labels, "[r]Reset")
			}
		}
	}
	return labels
}

func (m MainModel) renderControls() string {
	var parts []string
	for _, l := range m.controlLabels() {
		parts = append(parts, m.theme.Action.Render(l))
	}
	var presets []string
	for i, d := range config.TimerPresets {
		presets = append(presets, presetLabel(i, d))
	}
	rows := []string{
		m.theme.Dim.Render("presets " + strings.Join(presets, " ")),
		m.theme.Dim.Render("[?]help [q]quit"),
	}
	if len(parts) > 0 {
		rows = append([]string{strings.Join(parts, "")}, rows...)
	}
	width := 0
	for _, r := range rows {
		width = max(width, ansi.StringWidth(r))
	}
	for i, r := range rows {
		rows[i] = lipgloss.PlaceHorizontal(width, lipgloss.Center, r)
	}
	return strings.Join(rows, "\n")
}
