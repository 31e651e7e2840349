package render

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/akyairhashvil/flipclock/internal/config"
	"github.com/akyairhashvil/flipclock/internal/flip"
	"github.com/charmbracelet/x/ansi"
)

func TestTerminalFaceDimensions(t *testing.T) {
	face := NewFace(1, config.DefaultAspect, DefaultPalette())
	d := flip.NewDisplay(config.FlipDuration)
	cells := face.Paint(d, t0)
	term := NewTerminal()
	out := term.Face(cells, DefaultPalette().Background, DefaultPalette().Ink)

	lines := strings.Split(out, "\n")
	w, h := CellSize(1, config.DefaultAspect)
	if len(lines) != h/2 {
		t.Fatalf("lines = %d, want %d", len(lines), h/2)
	}
	want := 6*w + 3*term.Gap + 2*term.ColonWidth
	for i, line := range lines {
		if got := ansi.StringWidth(line); got != want {
			t.Fatalf("line %d width = %d, want %d", i, got, want)
		}
		if utf8.RuneCountInString(ansi.Strip(line)) != want {
			t.Fatalf("line %d rune count mismatch", i)
		}
	}
}

func TestTerminalStyleCacheReused(t *testing.T) {
	term := NewTerminal()
	c := NewCanvas(4, 8, DefaultPalette())
	c.Clear()
	term.Blocks([]PixelSource{c}, c.Height())
	if len(term.styles) != 1 {
		t.Fatalf("expected one cached style for a flat canvas, got %d", len(term.styles))
	}
}

func TestColonSeparatorHasDots(t *testing.T) {
	p := DefaultPalette()
	s := separator{width: 4, height: 14, bg: p.Background, dot: p.Ink, colon: true}
	dots := 0
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			if s.At(x, y) == p.Ink {
				dots++
			}
		}
	}
	if dots != 8 {
		t.Fatalf("colon pixels = %d, want 8", dots)
	}
}
