package render

import (
	"math"

	"github.com/akyairhashvil/flipclock/internal/config"
	"github.com/akyairhashvil/flipclock/internal/util"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Palette holds the card colors. Each half is a vertical gradient.
type Palette struct {
	Background   colorful.Color
	TopStart     colorful.Color
	TopEnd       colorful.Color
	BottomStart  colorful.Color
	BottomEnd    colorful.Color
	Ink          colorful.Color
	Midline      colorful.Color
	Shadow       colorful.Color
	ShadowWeight float64 // blend weight at Shadow == 1
}

func gray(v uint8) colorful.Color {
	f := float64(v) / 255
	return colorful.Color{R: f, G: f, B: f}
}

// DefaultPalette is the charcoal card with white digits.
func DefaultPalette() Palette {
	return Palette{
		Background:   gray(0),
		TopStart:     gray(60),
		TopEnd:       gray(40),
		BottomStart:  gray(35),
		BottomEnd:    gray(25),
		Ink:          colorful.Color{R: 1, G: 1, B: 1},
		Midline:      gray(20),
		Shadow:       gray(0),
		ShadowWeight: 0.7,
	}
}

// CellSize returns canvas dimensions for a scale factor and width/height
// aspect. Rows are always even so the card splits into equal halves.
func CellSize(scale, aspect float64) (width, height int) {
	if scale <= 0 {
		scale = config.DefaultScale
	}
	if aspect <= 0 {
		aspect = config.DefaultAspect
	}
	height = int(math.Round(config.BaseCellRows * scale))
	if height < config.MinCellRows {
		height = config.MinCellRows
	}
	if height%2 == 1 {
		height++
	}
	width = int(math.Round(float64(height) * aspect))
	if width < 4 {
		width = 4
	}
	return width, height
}

// Canvas is a small raster for one digit card.
type Canvas struct {
	width, height int
	palette       Palette
	pix           []colorful.Color
}

func NewCanvas(width, height int, palette Palette) *Canvas {
	if height%2 == 1 {
		height++
	}
	return &Canvas{
		width:   width,
		height:  height,
		palette: palette,
		pix:     make([]colorful.Color, width*height),
	}
}

func (c *Canvas) Width() int  { return c.width }
func (c *Canvas) Height() int { return c.height }

// At returns the pixel at (x, y). Out-of-range coordinates return the
// background color.
func (c *Canvas) At(x, y int) colorful.Color {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return c.palette.Background
	}
	return c.pix[y*c.width+x]
}

func (c *Canvas) set(x, y int, col colorful.Color) {
	c.pix[y*c.width+x] = col
}

// Clear fills the canvas with the palette background.
func (c *Canvas) Clear() {
	for i := range c.pix {
		c.pix[i] = c.palette.Background
	}
}

// Paint clears the canvas, draws layers in order and finishes with the
// midline seam.
func (c *Canvas) Paint(layers []Layer) {
	c.Clear()
	for _, l := range layers {
		c.paintLayer(l)
	}
	mid := c.height / 2
	for x := 0; x < c.width; x++ {
		c.set(x, mid, c.palette.Midline)
	}
}

// paintLayer draws a half card squashed toward the midline. A top half keeps
// its lower edge on the midline; a bottom half keeps its upper edge there.
func (c *Canvas) paintLayer(l Layer) {
	scale := util.ClampFloat(l.Scale, 0, 1)
	if scale == 0 {
		return
	}
	mid := c.height / 2
	halfH := float64(mid)
	panelH := int(math.Round(halfH * scale))
	if panelH <= 0 {
		return
	}

	var start, srcStart int
	if l.Half == Top {
		start, srcStart = mid-panelH, 0
	} else {
		start, srcStart = mid, mid
	}

	shade := util.ClampFloat(l.Shadow, 0, 1) * c.palette.ShadowWeight
	for dy := 0; dy < panelH; dy++ {
		y := start + dy
		// Sample the unscaled half at the matching fraction of its height.
		f := (float64(dy) + 0.5) / float64(panelH)
		sy := float64(srcStart) + f*halfH
		v := sy / float64(c.height)
		base := c.cardColor(l.Half, f)
		for x := 0; x < c.width; x++ {
			u := (float64(x) + 0.5) / float64(c.width)
			col := base
			if glyphInk(l.Digit, u, v) {
				col = c.palette.Ink
			}
			if shade > 0 {
				col = col.BlendRgb(c.palette.Shadow, shade)
			}
			c.set(x, y, col)
		}
	}
}

func (c *Canvas) cardColor(h Half, f float64) colorful.Color {
	if h == Top {
		return c.palette.TopStart.BlendRgb(c.palette.TopEnd, f)
	}
	return c.palette.BottomStart.BlendRgb(c.palette.BottomEnd, f)
}
