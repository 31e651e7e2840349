package render

import (
	"strings"
	"testing"

	"github.com/akyairhashvil/flipclock/internal/config"
	"github.com/akyairhashvil/flipclock/internal/flip"
)

func TestCellSize(t *testing.T) {
	w, h := CellSize(1, config.DefaultAspect)
	if h != config.BaseCellRows || h%2 != 0 {
		t.Fatalf("height = %d", h)
	}
	if w <= 0 || w >= h {
		t.Fatalf("width = %d", w)
	}
	_, h = CellSize(0.1, config.DefaultAspect)
	if h != config.MinCellRows {
		t.Fatalf("tiny scale height = %d, want %d", h, config.MinCellRows)
	}
	_, h = CellSize(1.1, config.DefaultAspect)
	if h%2 != 0 {
		t.Fatalf("height %d should be even", h)
	}
}

func TestGlyphsDistinct(t *testing.T) {
	w, h := 20, 28
	seen := make(map[string]int)
	for d := 0; d < 10; d++ {
		c := NewCanvas(w, h, DefaultPalette())
		c.Paint(Renderer{}.Layers(d, d, flip.FlipState{}))
		var b strings.Builder
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				if c.At(x, y) == DefaultPalette().Ink {
					b.WriteByte('#')
				} else {
					b.WriteByte('.')
				}
			}
		}
		key := b.String()
		if prev, ok := seen[key]; ok {
			t.Fatalf("digits %d and %d render identically", prev, d)
		}
		seen[key] = d
	}
}

func TestFoldingPanelLeavesRevealedHalfVisible(t *testing.T) {
	w, h := 10, 20
	c := NewCanvas(w, h, DefaultPalette())
	layers := Renderer{}.Layers(8, 1, flip.FlipState{Flipping: true, Phase: flip.PhaseA, Angle: 80})
	c.Paint(layers)

	ref := NewCanvas(w, h, DefaultPalette())
	ref.Paint(Renderer{}.Layers(8, 8, flip.FlipState{}))
	// The top rows are beyond the squashed panel and must show the new digit.
	for x := 0; x < w; x++ {
		if c.At(x, 3) != ref.At(x, 3) {
			t.Fatalf("row 3 should show the revealed new top half")
		}
	}
}

func TestShadowDarkensPanel(t *testing.T) {
	w, h := 10, 20
	lit := NewCanvas(w, h, DefaultPalette())
	lit.Paint([]Layer{{Digit: 0, Half: Bottom, Scale: 1}})
	dark := NewCanvas(w, h, DefaultPalette())
	dark.Paint([]Layer{{Digit: 0, Half: Bottom, Scale: 1, Shadow: 1}})
	l1, _, _ := lit.At(0, h-2).Lab()
	l2, _, _ := dark.At(0, h-2).Lab()
	if l2 >= l1 {
		t.Fatalf("shadowed pixel not darker: %g >= %g", l2, l1)
	}
}

func TestAtOutOfRange(t *testing.T) {
	c := NewCanvas(4, 8, DefaultPalette())
	if c.At(-1, 0) != DefaultPalette().Background || c.At(0, 99) != DefaultPalette().Background {
		t.Fatalf("out of range should return background")
	}
}

func TestPaintClampsShadowAndScale(t *testing.T) {
	w, h := 10, 20
	want := NewCanvas(w, h, DefaultPalette())
	want.Paint([]Layer{{Digit: 3, Half: Bottom, Scale: 1, Shadow: 1}})
	got := NewCanvas(w, h, DefaultPalette())
	got.Paint([]Layer{{Digit: 3, Half: Bottom, Scale: 2.5, Shadow: 4}})
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if got.At(x, y) != want.At(x, y) {
				t.Fatalf("pixel (%d,%d) differs with out-of-range scale and shadow", x, y)
			}
		}
	}

	none := NewCanvas(w, h, DefaultPalette())
	none.Paint([]Layer{{Digit: 3, Half: Bottom, Scale: -1}})
	blank := NewCanvas(w, h, DefaultPalette())
	blank.Paint(nil)
	if none.At(0, h-2) != blank.At(0, h-2) {
		t.Fatalf("negative scale should paint nothing")
	}
}
