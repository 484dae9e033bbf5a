// Package tui hosts the pong core in a Bubble Tea program. It turns key
// messages into held keys, measures frame time, blits the pixel buffer as
// half-block cells and drives the tone router.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// Bounds on the measured frame time handed to the simulation. MaxFrameDT
// stays below pong.MaxStepDT so a stalled terminal cannot carry the ball
// past a paddle in one step.
const (
	MinFrameDT = 1.0 / 1000
	MaxFrameDT = 1.0 / 40
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// tickAfter schedules one tick after dt seconds, clamped like a measured
// frame.
func tickAfter(dt float64) tea.Cmd {
	interval := time.Duration(clampDT(dt) * float64(time.Second))
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameDT returns the seconds between two ticks, clamped to
// [MinFrameDT, MaxFrameDT]. A zero prev yields the nominal frame time.
func frameDT(prev, now time.Time, tickRate int) float64 {
	if prev.IsZero() {
		return clampDT(1 / float64(tickRate))
	}
	return clampDT(now.Sub(prev).Seconds())
}

func clampDT(dt float64) float64 {
	return core.ClampF(dt, MinFrameDT, MaxFrameDT)
}
