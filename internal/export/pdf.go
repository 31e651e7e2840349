// Package export writes rendered faces to files.
package export

import (
	"fmt"
	"path/filepath"

	"github.com/akyairhashvil/flipclock/internal/render"
	"github.com/go-pdf/fpdf"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Snapshot describes one face to export.
type Snapshot struct {
	Title      string
	Face       string
	Cells      []*render.Canvas
	Background colorful.Color
	Dot        colorful.Color
}

const (
	pageMargin = 15.0 // mm
	cellGap    = 1.0  // pixel columns between cards
	colonWidth = 4.0  // pixel columns for a colon
)

// WritePDF draws the snapshot on a landscape A4 page, one filled rectangle
// per canvas pixel, and returns the absolute path written.
func WritePDF(path string, snap Snapshot) (string, error) {
	if len(snap.Cells) == 0 {
		return "", fmt.Errorf("snapshot has no digit cells")
	}
	cellW := float64(snap.Cells[0].Width())
	cellH := float64(snap.Cells[0].Height())
	cols := float64(len(snap.Cells))*cellW + 3*cellGap + 2*colonWidth

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.AddPage()
	pageW, _ := pdf.GetPageSize()
	px := (pageW - 2*pageMargin) / cols

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, snap.Title)
	pdf.Ln(12)
	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 8, snap.Face)
	pdf.Ln(10)

	top := pdf.GetY()
	fill(pdf, snap.Background)
	pdf.Rect(pageMargin, top, cols*px, cellH*px, "F")

	x := pageMargin
	for i, c := range snap.Cells {
		if i > 0 {
			if i%2 == 0 {
				drawColon(pdf, x, top, px, cellH, snap.Dot)
				x += colonWidth * px
			} else {
				x += cellGap * px
			}
		}
		drawCanvas(pdf, c, x, top, px)
		x += cellW * px
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("writing pdf %s: %w", path, err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return path, nil
	}
	return abs, nil
}

func drawCanvas(pdf *fpdf.Fpdf, c *render.Canvas, left, top, px float64) {
	for y := 0; y < c.Height(); y++ {
		for x := 0; x < c.Width(); x++ {
			fill(pdf, c.At(x, y))
			pdf.Rect(left+float64(x)*px, top+float64(y)*px, px, px, "F")
		}
	}
}

func drawColon(pdf *fpdf.Fpdf, left, top, px, cellH float64, dot colorful.Color) {
	fill(pdf, dot)
	size := 2 * px
	cx := left + (colonWidth*px-size)/2
	third := cellH / 3
	pdf.Rect(cx, top+(third-1)*px, size, size, "F")
	pdf.Rect(cx, top+2*third*px, size, size, "F")
}

func fill(pdf *fpdf.Fpdf, col colorful.Color) {
	r, g, b := col.Clamped().RGB255()
	pdf.SetFillColor(int(r), int(g), int(b))
}
