package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/akyairhashvil/flipclock/internal/config"
	"github.com/akyairhashvil/flipclock/internal/export"
	"github.com/akyairhashvil/flipclock/internal/flip"
	"github.com/akyairhashvil/flipclock/internal/log"
	"github.com/akyairhashvil/flipclock/internal/models"
	"github.com/akyairhashvil/flipclock/internal/modes"
	"github.com/akyairhashvil/flipclock/internal/notify"
	"github.com/akyairhashvil/flipclock/internal/render"
	"github.com/akyairhashvil/flipclock/internal/tui"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

func main() {
	var configPath string
	var variant string
	var mode string
	var snapshotPath string
	var showVersion bool

	flag.StringVar(&configPath, "config", "", "config file (default is $XDG_CONFIG_HOME/flipclock/config.yml)")
	flag.StringVar(&variant, "variant", "", "display variant: "+strings.Join(config.VariantNames(), ", "))
	flag.StringVar(&mode, "mode", "", "start mode: clock, timer or stopwatch")
	flag.StringVar(&snapshotPath, "snapshot", "", "write the current face to a PDF and exit")
	flag.BoolVar(&showVersion, "version", false, "print version information")
	flag.Parse()

	if showVersion {
		fmt.Printf("flipclock\n")
		fmt.Printf("  Version:    %s\n", tui.AppVersion)
		fmt.Printf("  Commit:     %s\n", tui.GitCommit)
		fmt.Printf("  Built:      %s\n", tui.BuildTime)
		return
	}

	settings, err := config.LoadWithOverrides(configPath, flagOverrides(variant, mode))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	startMode, err := models.ParseMode(settings.StartMode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := log.Init(settings.LogFile, settings.Debug); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
	}
	defer log.Sync()
	log.Infof("config loaded from %s", settings.ConfigPath)
	log.Infow("starting", "version", tui.AppVersion, "variant", settings.Variant, "mode", startMode.String())

	if snapshotPath != "" {
		path, err := writeSnapshot(snapshotPath, settings, startMode, time.Now())
		if err != nil {
			log.LogError("snapshot", err)
			fmt.Fprintf(os.Stderr, "Error writing snapshot: %v\n", err)
			os.Exit(1)
		}
		log.Infow("snapshot written", "path", path)
		fmt.Printf("Snapshot written to %s\n", path)
		return
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		printPlain(os.Stdout, settings, startMode, time.Now())
		return
	}

	if err := runTUI(settings, startMode); err != nil {
		log.LogError("tui", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// flagOverrides returns the settings keys set on the command line.
func flagOverrides(variant, mode string) map[string]any {
	out := make(map[string]any)
	if variant != "" {
		out["variant"] = variant
	}
	if mode != "" {
		out["mode"] = mode
	}
	return out
}

func runTUI(settings config.Settings, mode models.Mode) error {
	bell := notify.NewBell(os.Stderr, settings.Bell)
	model := tui.NewMainModel(tui.OptionsFromSettings(settings, mode, bell))

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		if strings.Contains(err.Error(), "TTY") || strings.Contains(err.Error(), "/dev/tty") {
			return fmt.Errorf("flipclock requires a real terminal")
		}
		return fmt.Errorf("error running TUI: %w", err)
	}
	return nil
}

// settledFace returns the controller and display for mode at now, with every
// digit already past its flip.
func settledFace(settings config.Settings, mode models.Mode, now time.Time) (*modes.Controller, *flip.Display, time.Time) {
	display := flip.NewDisplay(settings.FlipDuration)
	ctrl := modes.New(display, modes.Options{SetupArrows: settings.SetupArrows})
	ctrl.Transition(modes.SelectMode(mode), now)
	ctrl.Refresh(now)
	return ctrl, display, now.Add(settings.FlipDuration)
}

func writeSnapshot(path string, settings config.Settings, mode models.Mode, now time.Time) (string, error) {
	ctrl, display, settled := settledFace(settings, mode, now)
	theme := tui.LookupTheme(settings.Theme)
	face := render.NewFace(settings.Scale, settings.Aspect, theme.Palette)
	return export.WritePDF(path, export.Snapshot{
		Title:      fmt.Sprintf("flipclock %s %s", mode.String(), now.Format(time.RFC3339)),
		Face:       ctrl.LastFace(),
		Cells:      face.Paint(display, settled),
		Background: theme.Palette.Background,
		Dot:        theme.Palette.Ink,
	})
}

func printPlain(w io.Writer, settings config.Settings, mode models.Mode, now time.Time) {
	ctrl, _, _ := settledFace(settings, mode, now)
	fmt.Fprintln(w, ctrl.Format(now))
}
