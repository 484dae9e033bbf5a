// Package pong implements a two-player Pong match: per-frame kinematics,
// collision resolution, scoring and rendering into a core.Screen.
// Left paddle is W/S, right paddle is Up/Down, Space serves.
package pong

import (
	"math"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// Court geometry, in normalized device coordinates. Heights are in X units
// and get scaled by core.TargetAspectRatio on the Y axis.
const (
	CourtLeft  = -1.0
	CourtRight = 1.0

	BallWidth    = 0.015
	BallHeight   = 0.015
	PaddleWidth  = 0.025
	PaddleHeight = 0.15
	PaddleX      = 0.9

	// BallAtTop and BallAtBottom are the Y bounds of the ball center.
	BallAtTop    = 1 - BallHeight*core.TargetAspectRatio/2
	BallAtBottom = -BallAtTop
)

// Serve and motion tuning.
const (
	ServePad       = 0.07 // X offset of the idle ball from center
	ServeYRange    = 0.5  // idle ball Y is drawn from [-ServeYRange, ServeYRange)
	BallBaseSpeed  = 1.0  // units per second
	ServeSpeedMin  = 0.65 // fraction of BallBaseSpeed
	ServeSpeedMax  = 1.3
	MaxServeAngle  = 75 * math.Pi / 180
	PaddleAccel    = 9.0 // units per second squared
	PaddleMaxSpeed = 2.3

	// MaxStepDT is the longest frame in which the fastest serve still lands
	// inside a paddle's collision band. Paddle hits only flip the X
	// velocity, so no ball is ever faster along X than a serve.
	MaxStepDT = (PaddleWidth + BallWidth) / (ServeSpeedMax * BallBaseSpeed)
)

// Entity is an axis-aligned rectangle: a paddle or the ball.
// W and H are fixed at creation; only Pos and Vel change per frame.
type Entity struct {
	Pos core.Vec2
	Vel core.Vec2
	W   float64
	H   float64
}

// NewBall creates a resting ball at pos.
func NewBall(pos core.Vec2) Entity {
	return Entity{Pos: pos, W: BallWidth, H: BallHeight}
}

// NewPaddle creates a resting paddle centered vertically at x.
func NewPaddle(x float64) Entity {
	return Entity{Pos: core.V2(x, 0), W: PaddleWidth, H: PaddleHeight}
}

// Box returns the entity's bounding box with the Y extent aspect-corrected.
func (e Entity) Box() core.AABB {
	return core.AABB{
		Center: e.Pos,
		HalfW:  e.W / 2,
		HalfH:  e.H * core.TargetAspectRatio / 2,
	}
}

// YBound returns how far from center an entity of the given height may
// travel before touching the top or bottom wall. Taller entities get a
// tighter bound.
func YBound(height float64) float64 {
	return 1 - height*core.TargetAspectRatio/2
}
