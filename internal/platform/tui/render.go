package tui

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	xdraw "golang.org/x/image/draw"
)

// halfBlock shows the upper pixel as foreground and the lower as background,
// so each terminal cell carries two vertically stacked pixels.
const halfBlock = "▀"

// Painter converts a pixel image into a string of truecolor half-block
// cells. It keeps its scratch image between frames.
type Painter struct {
	renderer *lipgloss.Renderer
	scaler   xdraw.Scaler
	buf      *image.RGBA
}

// NewPainter creates a painter that styles through r. A nil renderer uses
// lipgloss's default, which writes to stdout.
func NewPainter(r *lipgloss.Renderer) *Painter {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &Painter{
		renderer: r,
		scaler:   xdraw.NearestNeighbor,
	}
}

// Renderer returns the lipgloss renderer used for styling.
func (p *Painter) Renderer() *lipgloss.Renderer {
	return p.renderer
}

// Paint scales src to cols x rows*2 pixels and renders it as rows lines of
// cols cells. Adjacent cells with the same color pair share one style run.
func (p *Painter) Paint(src image.Image, cols, rows int) string {
	if cols <= 0 || rows <= 0 {
		return ""
	}

	img := p.scale(src, cols, rows*2)

	type pair struct{ top, bottom color.RGBA }
	styles := make(map[pair]lipgloss.Style)
	styleFor := func(c pair) lipgloss.Style {
		if s, ok := styles[c]; ok {
			return s
		}
		s := p.renderer.NewStyle().
			Foreground(lipgloss.Color(hexColor(c.top))).
			Background(lipgloss.Color(hexColor(c.bottom)))
		styles[c] = s
		return s
	}

	var sb strings.Builder
	sb.Grow(cols * rows * 4)

	for y := range rows {
		if y > 0 {
			sb.WriteByte('\n')
		}

		x := 0
		for x < cols {
			start := pair{img.RGBAAt(x, 2*y), img.RGBAAt(x, 2*y+1)}
			n := 0
			for x < cols && (pair{img.RGBAAt(x, 2*y), img.RGBAAt(x, 2*y+1)}) == start {
				n++
				x++
			}
			sb.WriteString(styleFor(start).Render(strings.Repeat(halfBlock, n)))
		}
	}
	return sb.String()
}

// scale returns src resized to w x h, reusing the scratch buffer.
func (p *Painter) scale(src image.Image, w, h int) *image.RGBA {
	if p.buf == nil || p.buf.Bounds().Dx() != w || p.buf.Bounds().Dy() != h {
		p.buf = image.NewRGBA(image.Rect(0, 0, w, h))
	}
	p.scaler.Scale(p.buf, p.buf.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return p.buf
}

func hexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
