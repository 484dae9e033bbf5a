package pong

import (
	"math"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// Update advances the match by dt seconds and reports the sound-worthy event
// of this frame. At most one collision outcome is resolved per frame.
//
// Panics if any argument is nil or dt is not positive.
func Update(s *MatchState, keys *core.KeyState, rng *core.Rand, dt float64) ToneEvent {
	if s == nil || keys == nil || rng == nil {
		panic("pong: nil argument to Update")
	}
	if !(dt > 0) {
		panic("pong: frame time must be positive")
	}

	updatePaddle(&s.Left, keys.Down(core.KeyLeftUp), keys.Down(core.KeyLeftDown), dt)
	updatePaddle(&s.Right, keys.Down(core.KeyRightUp), keys.Down(core.KeyRightDown), dt)

	serveDown := keys.Down(core.KeyServe)
	servePressed := serveDown && !s.serveLatch
	s.serveLatch = serveDown

	if !s.InProgress {
		if servePressed {
			serve(s, rng)
		}
		return ToneNone
	}

	s.Ball.Pos = s.Ball.Pos.Add(s.Ball.Vel.Scale(dt))
	return resolveBall(s, rng)
}

// updatePaddle applies held-key acceleration. Releasing both keys or
// holding both stops the paddle at once; hitting a wall stops it dead.
func updatePaddle(p *Entity, up, down bool, dt float64) {
	switch {
	case up && down:
		p.Vel.Y = 0
	case up:
		p.Vel.Y = math.Min(p.Vel.Y+PaddleAccel*dt, PaddleMaxSpeed)
	case down:
		p.Vel.Y = math.Max(p.Vel.Y-PaddleAccel*dt, -PaddleMaxSpeed)
	default:
		p.Vel.Y = 0
	}

	p.Pos = p.Pos.Add(p.Vel.Scale(dt))

	bound := YBound(p.H)
	if p.Pos.Y >= bound {
		p.Pos.Y = bound
		p.Vel.Y = 0
	} else if p.Pos.Y <= -bound {
		p.Pos.Y = -bound
		p.Vel.Y = 0
	}
}

// serve launches the idle ball. The X speed is drawn from
// [ServeSpeedMin, ServeSpeedMax) of BallBaseSpeed and the Y speed from
// [0, |vx|·sin(MaxServeAngle)), so the serve never leaves more than 75°
// from the horizontal. The speed is not renormalized.
func serve(s *MatchState, rng *core.Rand) {
	speed := BallBaseSpeed * (ServeSpeedMin + (ServeSpeedMax-ServeSpeedMin)*rng.Float01())

	var dir float64
	switch {
	case s.LeftScore == 0 && s.RightScore == 0:
		dir = 1
		if rng.Intn(2) == 0 {
			dir = -1
		}
	case s.Winner == WinnerLeft:
		dir = -1
	default:
		dir = 1
	}

	vy := speed * math.Sin(MaxServeAngle) * rng.Float01()
	if rng.Intn(2) == 0 {
		vy = -vy
	}

	s.Ball.Vel = core.V2(dir*speed, vy)
	s.InProgress = true
}

// resolveBall checks the outcomes in priority order and applies the first
// one that fires.
func resolveBall(s *MatchState, rng *core.Rand) ToneEvent {
	ball := &s.Ball

	switch {
	case ball.Pos.X >= CourtRight:
		s.Winner = WinnerLeft
		s.LeftScore++
		resetBall(s, -ServePad, rng)
		return TonePointScored

	case ball.Pos.X <= CourtLeft:
		s.Winner = WinnerRight
		s.RightScore++
		resetBall(s, ServePad, rng)
		return TonePointScored

	case ball.Pos.Y >= BallAtTop:
		ball.Pos.Y = BallAtTop
		ball.Vel.Y = -ball.Vel.Y
		return ToneWallBounce

	case ball.Pos.Y <= BallAtBottom:
		ball.Pos.Y = BallAtBottom
		ball.Vel.Y = -ball.Vel.Y
		return ToneWallBounce

	case ball.Vel.X < 0 && ball.Box().Overlaps(s.Left.Box()):
		ball.Pos.X = s.Left.Pos.X + s.Left.W/2 + ball.W/2
		bounceOff(ball, &s.Left)
		return TonePaddleBounce

	case ball.Vel.X > 0 && ball.Box().Overlaps(s.Right.Box()):
		ball.Pos.X = s.Right.Pos.X - s.Right.W/2 - ball.W/2
		bounceOff(ball, &s.Right)
		return TonePaddleBounce
	}

	return ToneNone
}

// bounceOff reverses the ball horizontally and hands it the paddle's
// vertical velocity.
func bounceOff(ball, paddle *Entity) {
	ball.Vel.X = -ball.Vel.X
	ball.Vel.Y += paddle.Vel.Y
}

// resetBall ends the point and parks the ball at x with a fresh Y.
func resetBall(s *MatchState, x float64, rng *core.Rand) {
	s.InProgress = false
	s.Ball.Vel = core.Vec2{}
	s.Ball.Pos = core.V2(x, serveY(rng))
}
