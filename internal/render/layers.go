// Package render turns flip animation samples into pictures. Layers is the
// pure geometry step; Canvas rasterizes layers; Terminal and the PDF
// exporter consume canvases.
package render

import (
	"math"
	"time"

	"github.com/akyairhashvil/flipclock/internal/flip"
)

// Half selects the upper or lower half of a digit card.
type Half int

const (
	Top Half = iota
	Bottom
)

// LayerKind orders layers within a composite.
type LayerKind int

const (
	// LayerStatic is the half that does not move during this phase.
	LayerStatic LayerKind = iota
	// LayerRevealed is the half uncovered (or about to be covered) beneath
	// the folding panel.
	LayerRevealed
	// LayerFolding is the moving panel, foreshortened and shaded.
	LayerFolding
)

// Layer is one drawing primitive: a half card showing Digit, squashed
// vertically by Scale toward the midline and darkened by Shadow.
type Layer struct {
	Kind   LayerKind
	Digit  int
	Half   Half
	Scale  float64 // 1 is full height
	Shadow float64 // 0 none, 1 full
}

// Renderer maps animation samples to layers. It keeps no state.
type Renderer struct{}

// Layers returns the composite for one digit cell in paint order.
func (Renderer) Layers(current, previous int, st flip.FlipState) []Layer {
	if !st.Flipping {
		return []Layer{
			{Kind: LayerStatic, Digit: current, Half: Top, Scale: 1},
			{Kind: LayerStatic, Digit: current, Half: Bottom, Scale: 1},
		}
	}
	rad := st.Angle * math.Pi / 180
	if st.Phase == flip.PhaseA {
		trig := math.Cos(rad)
		return []Layer{
			{Kind: LayerStatic, Digit: previous, Half: Bottom, Scale: 1},
			{Kind: LayerRevealed, Digit: current, Half: Top, Scale: 1},
			{Kind: LayerFolding, Digit: previous, Half: Top, Scale: trig, Shadow: 1 - trig},
		}
	}
	trig := math.Sin(rad)
	return []Layer{
		{Kind: LayerStatic, Digit: current, Half: Top, Scale: 1},
		{Kind: LayerRevealed, Digit: previous, Half: Bottom, Scale: 1},
		{Kind: LayerFolding, Digit: current, Half: Bottom, Scale: trig, Shadow: 1 - trig},
	}
}

// LayersAt samples a at now and returns its composite.
func (r Renderer) LayersAt(a *flip.Animator, now time.Time) []Layer {
	return r.Layers(a.Current(), a.Previous(), a.Sample(now))
}
