package tui

import (
	"github.com/akyairhashvil/flipclock/internal/render"
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

type Theme struct {
	Name         string
	Palette      render.Palette
	Alert        colorful.Color
	Header       lipgloss.Style
	ModeActive   lipgloss.Style
	ModeInactive lipgloss.Style
	Action       lipgloss.Style
	Dim          lipgloss.Style
	Banner       lipgloss.Style
	Arrow        lipgloss.Style
	Input        lipgloss.Style
	Error        lipgloss.Style
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}
	}
	return c
}

func amberPalette() render.Palette {
	p := render.DefaultPalette()
	p.TopStart = mustHex("#3a2f1e")
	p.TopEnd = mustHex("#2a2216")
	p.BottomStart = mustHex("#241d12")
	p.BottomEnd = mustHex("#19140c")
	p.Ink = mustHex("#ffb000")
	p.Midline = mustHex("#0d0a06")
	return p
}

var Themes = map[string]Theme{
	"default": {
		Name:         "Default",
		Palette:      render.DefaultPalette(),
		Alert:        mustHex("#ff0000"),
		Header:       lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true),
		ModeActive:   lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("240")).Bold(true).Padding(0, 1),
		ModeInactive: lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Background(lipgloss.Color("236")).Padding(0, 1),
		Action:       lipgloss.NewStyle().Foreground(lipgloss.Color("81")).Padding(0, 1),
		Dim:          lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Banner:       lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("160")).Bold(true).Padding(0, 2),
		Arrow:        lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Input:        lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("205")).Padding(0, 1).Width(30),
		Error:        lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	},
	"amber": {
		Name:         "Amber",
		Palette:      amberPalette(),
		Alert:        mustHex("#ff5a00"),
		Header:       lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
		ModeActive:   lipgloss.NewStyle().Foreground(lipgloss.Color("232")).Background(lipgloss.Color("214")).Bold(true).Padding(0, 1),
		ModeInactive: lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Background(lipgloss.Color("235")).Padding(0, 1),
		Action:       lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Padding(0, 1),
		Dim:          lipgloss.NewStyle().Foreground(lipgloss.Color("94")),
		Banner:       lipgloss.NewStyle().Foreground(lipgloss.Color("232")).Background(lipgloss.Color("202")).Bold(true).Padding(0, 2),
		Arrow:        lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true),
		Input:        lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("214")).Padding(0, 1).Width(30),
		Error:        lipgloss.NewStyle().Foreground(lipgloss.Color("202")),
	},
}

// LookupTheme returns the named theme, or the default one.
func LookupTheme(name string) Theme {
	if t, ok := Themes[name]; ok {
		return t
	}
	return Themes["default"]
}
