package core

import (
	"image"
	"image/color"
)

// TargetAspectRatio is the court's design ratio. Normalized heights are
// scaled by it so square entities stay square on a 16:9 buffer of any
// pixel size.
const TargetAspectRatio = 16.0 / 9.0

// Screen is a row-major, top-to-bottom pixel buffer.
// It implements image.Image so the platform can scale or encode it.
type Screen struct {
	width  int
	height int
	pix    []Color
}

// NewScreen creates a new pixel buffer with the given dimensions.
// Panics if either dimension is not positive.
func NewScreen(width, height int) *Screen {
	s := &Screen{}
	s.Resize(width, height)
	return s
}

// Width returns the buffer width in pixels.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the buffer height in pixels.
func (s *Screen) Height() int {
	return s.height
}

// AspectRatio returns width/height.
func (s *Screen) AspectRatio() float64 {
	return float64(s.width) / float64(s.height)
}

// rect returns the buffer bounds as a pixel rectangle.
func (s *Screen) rect() Rect {
	return NewRect(0, 0, s.width, s.height)
}

// Resize reallocates the buffer. Content is not preserved since every frame
// is redrawn from scratch.
func (s *Screen) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		panic("core: screen dimensions must be positive")
	}
	if width == s.width && height == s.height {
		return
	}
	s.width = width
	s.height = height
	s.pix = make([]Color, width*height)
}

// Clear fills every pixel with c.
func (s *Screen) Clear(c Color) {
	for i := range s.pix {
		s.pix[i] = c
	}
}

// Get returns the pixel at (x, y), or 0 outside the buffer.
func (s *Screen) Get(x, y int) Color {
	if !s.rect().Contains(x, y) {
		return 0
	}
	return s.pix[y*s.width+x]
}

// DrawRectPixels fills a pixel rectangle, clipped to the buffer.
func (s *Screen) DrawRectPixels(x, y, w, h int, c Color) {
	r := NewRect(x, y, w, h)
	if r.Empty() || !r.Intersects(s.rect()) {
		return
	}
	r = r.Clip(s.width, s.height)
	for row := r.Y; row < r.Bottom(); row++ {
		line := s.pix[row*s.width+r.X : row*s.width+r.Right()]
		for i := range line {
			line[i] = c
		}
	}
}

// DrawRect fills r, clipped to the buffer.
func (s *Screen) DrawRect(r Rect, c Color) {
	s.DrawRectPixels(r.X, r.Y, r.W, r.H, c)
}

// NormalizedToPixels converts a rectangle centered at (cx, cy) in normalized
// device coordinates (Y up, visible X range [-1,1]) to pixel space. The
// height is corrected by TargetAspectRatio before halving.
func (s *Screen) NormalizedToPixels(cx, cy, w, h float64) Rect {
	pw := w / 2 * float64(s.width)
	ph := h * TargetAspectRatio / 2 * float64(s.height)
	px := (cx+1)/2*float64(s.width) - pw/2
	py := (1-cy)/2*float64(s.height) - ph/2
	return NewRect(RoundHalfUp(px), RoundHalfUp(py), RoundHalfUp(pw), RoundHalfUp(ph))
}

// DrawRectNormalized fills a normalized rectangle and returns the pixel
// rectangle it covered before clipping, so callers can tile copies of it.
func (s *Screen) DrawRectNormalized(cx, cy, w, h float64, c Color) Rect {
	r := s.NormalizedToPixels(cx, cy, w, h)
	s.DrawRect(r, c)
	return r
}

// ColorModel implements image.Image.
func (s *Screen) ColorModel() color.Model {
	return color.RGBAModel
}

// Bounds implements image.Image.
func (s *Screen) Bounds() image.Rectangle {
	return image.Rect(0, 0, s.width, s.height)
}

// At implements image.Image.
func (s *Screen) At(x, y int) color.Color {
	r, g, b := s.Get(x, y).RGB()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}
