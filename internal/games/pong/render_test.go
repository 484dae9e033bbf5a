package pong

import (
	"testing"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// centerPixel returns the pixel under the center of an entity.
func centerPixel(dst *core.Screen, e Entity) core.Color {
	r := dst.NormalizedToPixels(e.Pos.X, e.Pos.Y, e.W, e.H)
	return dst.Get(r.X+r.W/2, r.Y+r.H/2)
}

func TestRenderHidesIdleBall(t *testing.T) {
	dst := core.NewScreen(320, 180)
	s := NewMatchState(core.NewRand(4))
	s.Ball.Pos = core.V2(0.5, 0.3)

	Render(dst, s)

	if got := centerPixel(dst, s.Ball); got == core.ColorBall {
		t.Error("idle ball should not be drawn")
	}

	s.InProgress = true
	Render(dst, s)

	if got := centerPixel(dst, s.Ball); got != core.ColorBall {
		t.Errorf("live ball pixel = %#06x, expected %#06x", got, core.ColorBall)
	}
}

func TestRenderPaddles(t *testing.T) {
	dst := core.NewScreen(320, 180)
	s := NewMatchState(core.NewRand(4))
	s.Left.Pos.Y = 0.4
	s.Right.Pos.Y = -0.6

	Render(dst, s)

	if got := centerPixel(dst, s.Left); got != core.ColorForeground {
		t.Errorf("left paddle pixel = %#06x, expected foreground", got)
	}
	if got := centerPixel(dst, s.Right); got != core.ColorForeground {
		t.Errorf("right paddle pixel = %#06x, expected foreground", got)
	}

	// Directly above the left paddle is background.
	r := dst.NormalizedToPixels(s.Left.Pos.X, s.Left.Pos.Y, s.Left.W, s.Left.H)
	if got := dst.Get(r.X, r.Y-2); got != core.ColorBackground {
		t.Errorf("pixel above paddle = %#06x, expected background", got)
	}
}

func TestRenderNet(t *testing.T) {
	dst := core.NewScreen(320, 180)
	s := NewMatchState(core.NewRand(4))

	Render(dst, s)

	netPixels := 0
	for y := range dst.Height() {
		if dst.Get(dst.Width()/2, y) == core.ColorNet {
			netPixels++
		}
	}
	if netPixels == 0 || netPixels == dst.Height() {
		t.Errorf("net covers %d of %d rows, expected a dashed line", netPixels, dst.Height())
	}
}

func TestRenderClearsPreviousFrame(t *testing.T) {
	dst := core.NewScreen(320, 180)
	s := NewMatchState(core.NewRand(4))
	s.InProgress = true
	s.Ball.Pos = core.V2(0.5, 0.5)
	Render(dst, s)

	old := s.Ball
	s.Ball.Pos = core.V2(-0.5, -0.5)
	Render(dst, s)

	if got := centerPixel(dst, old); got != core.ColorBackground {
		t.Errorf("stale ball pixel = %#06x, expected background", got)
	}
}
