package pong

import "github.com/vovakirdan/tui-pong/internal/core"

// Winner names who took the most recently concluded point.
type Winner int

const (
	WinnerNone Winner = iota
	WinnerLeft
	WinnerRight
)

// String returns a human-readable name for the winner.
func (w Winner) String() string {
	switch w {
	case WinnerNone:
		return "None"
	case WinnerLeft:
		return "Left"
	case WinnerRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// MatchState is the whole mutable state of a match. It is created once and
// then advanced by Update every frame.
type MatchState struct {
	Ball  Entity
	Left  Entity
	Right Entity

	Winner     Winner
	InProgress bool // a serve is live
	LeftScore  uint32
	RightScore uint32

	serveLatch bool // serve key state on the previous frame
}

// NewMatchState creates an idle match with the ball at center and a random
// serve-ready Y offset.
func NewMatchState(rng *core.Rand) *MatchState {
	if rng == nil {
		panic("pong: nil rng")
	}
	return &MatchState{
		Ball:  NewBall(core.V2(0, serveY(rng))),
		Left:  NewPaddle(-PaddleX),
		Right: NewPaddle(PaddleX),
	}
}

// Phase reports which part of the point the match is in.
func (s *MatchState) Phase() Phase {
	if s.InProgress {
		return PhaseInPlay
	}
	return PhaseIdle
}

// Phase is the per-point state. Serving is the transition between the two
// and never persists across frames.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseInPlay
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseInPlay:
		return "InPlay"
	default:
		return "Unknown"
	}
}

func serveY(rng *core.Rand) float64 {
	return (rng.Float01()*2 - 1) * ServeYRange
}
