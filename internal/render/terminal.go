package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// upperHalf paints the top pixel with the foreground and the bottom pixel
// with the background of one terminal cell.
const upperHalf = "▀"

// PixelSource is anything the terminal can lay out as a block of pixels.
type PixelSource interface {
	Width() int
	Height() int
	At(x, y int) colorful.Color
}

// separator is a gap or colon column between digit cards.
type separator struct {
	width, height int
	bg, dot       colorful.Color
	colon         bool
}

func (s separator) Width() int  { return s.width }
func (s separator) Height() int { return s.height }

func (s separator) At(x, y int) colorful.Color {
	if !s.colon {
		return s.bg
	}
	// Two square dots centered horizontally at one and two thirds height.
	third := s.height / 3
	if x >= s.width/2-1 && x <= s.width/2 {
		if y == third-1 || y == third || y == 2*third || y == 2*third+1 {
			return s.dot
		}
	}
	return s.bg
}

type cellKey struct{ fg, bg string }

// Terminal lays digit canvases out as HH:MM:SS using half-block cells.
// It caches one lipgloss style per color pair.
type Terminal struct {
	Gap        int
	ColonWidth int
	styles     map[cellKey]lipgloss.Style
}

func NewTerminal() *Terminal {
	return &Terminal{Gap: 1, ColonWidth: 4, styles: make(map[cellKey]lipgloss.Style)}
}

// Face renders six cards with gaps between pairs and colons between groups.
// bg colors the separators; dot colors the colon.
func (t *Terminal) Face(cells []*Canvas, bg, dot colorful.Color) string {
	if len(cells) == 0 {
		return ""
	}
	height := cells[0].Height()
	var sources []PixelSource
	for i, c := range cells {
		if i > 0 {
			if i%2 == 0 {
				sources = append(sources, separator{width: t.ColonWidth, height: height, bg: bg, dot: dot, colon: true})
			} else {
				sources = append(sources, separator{width: t.Gap, height: height, bg: bg})
			}
		}
		sources = append(sources, c)
	}
	return t.Blocks(sources, height)
}

// Blocks renders sources side by side. Each output line covers two pixel
// rows.
func (t *Terminal) Blocks(sources []PixelSource, height int) string {
	lines := make([]string, 0, (height+1)/2)
	for y := 0; y < height; y += 2 {
		var b strings.Builder
		for _, src := range sources {
			for x := 0; x < src.Width(); x++ {
				top := src.At(x, y)
				bottom := src.At(x, y+1)
				b.WriteString(t.cell(top, bottom))
			}
		}
		lines = append(lines, b.String())
	}
	return strings.Join(lines, "\n")
}

func (t *Terminal) cell(top, bottom colorful.Color) string {
	key := cellKey{fg: top.Clamped().Hex(), bg: bottom.Clamped().Hex()}
	style, ok := t.styles[key]
	if !ok {
		if t.styles == nil {
			t.styles = make(map[cellKey]lipgloss.Style)
		}
		style = lipgloss.NewStyle().
			Foreground(lipgloss.Color(key.fg)).
			Background(lipgloss.Color(key.bg))
		t.styles[key] = style
	}
	return style.Render(upperHalf)
}
