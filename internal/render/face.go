package render

import (
	"time"

	"github.com/akyairhashvil/flipclock/internal/flip"
)

// Face owns one canvas per digit slot and repaints them from a Display.
type Face struct {
	renderer Renderer
	canvases []*Canvas
}

// NewFace sizes six canvases for the given scale and aspect.
func NewFace(scale, aspect float64, palette Palette) *Face {
	w, h := CellSize(scale, aspect)
	f := &Face{canvases: make([]*Canvas, flip.SlotCount)}
	for i := range f.canvases {
		f.canvases[i] = NewCanvas(w, h, palette)
	}
	return f
}

// Paint samples every slot of d at now and rasterizes it.
func (f *Face) Paint(d *flip.Display, now time.Time) []*Canvas {
	for s := flip.Slot(0); s < flip.SlotCount; s++ {
		f.canvases[s].Paint(f.renderer.LayersAt(d.Slot(s), now))
	}
	return f.canvases
}

// Canvases returns the last painted frame.
func (f *Face) Canvases() []*Canvas {
	return f.canvases
}
