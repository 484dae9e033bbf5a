package pong

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-pong/internal/core"
)

const frameDT = 1.0 / 60.0

// newPlaying returns a match with a live ball at pos moving at vel.
func newPlaying(pos, vel core.Vec2) (*MatchState, *core.Rand) {
	rng := core.NewRand(42)
	s := NewMatchState(rng)
	s.InProgress = true
	s.Ball.Pos = pos
	s.Ball.Vel = vel
	return s, rng
}

func TestNewMatchState(t *testing.T) {
	s := NewMatchState(core.NewRand(1))

	if s.InProgress {
		t.Error("new match should not be in progress")
	}
	if s.LeftScore != 0 || s.RightScore != 0 {
		t.Errorf("scores = %d-%d, expected 0-0", s.LeftScore, s.RightScore)
	}
	if s.Winner != WinnerNone {
		t.Errorf("Winner = %s, expected None", s.Winner)
	}
	if s.Ball.Pos.X != 0 {
		t.Errorf("ball X = %v, expected 0", s.Ball.Pos.X)
	}
	if math.Abs(s.Ball.Pos.Y) > ServeYRange {
		t.Errorf("ball Y = %v, outside serve range", s.Ball.Pos.Y)
	}
	if s.Ball.Vel != (core.Vec2{}) {
		t.Errorf("ball velocity = %+v, expected zero", s.Ball.Vel)
	}
	if s.Left.Pos != core.V2(-PaddleX, 0) || s.Right.Pos != core.V2(PaddleX, 0) {
		t.Errorf("paddles at %+v and %+v, expected ±%v", s.Left.Pos, s.Right.Pos, PaddleX)
	}
	if s.Phase() != PhaseIdle {
		t.Errorf("Phase() = %s, expected Idle", s.Phase())
	}
}

func TestLinearIntegration(t *testing.T) {
	tests := []struct {
		name string
		pos  core.Vec2
		vel  core.Vec2
		dt   float64
	}{
		{"right and down", core.V2(0.1, 0.2), core.V2(0.3, -0.2), frameDT},
		{"left and up", core.V2(-0.3, -0.4), core.V2(-0.9, 0.7), 0.02},
		{"horizontal", core.V2(0, 0), core.V2(1.1, 0), 0.005},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, rng := newPlaying(tc.pos, tc.vel)
			var keys core.KeyState

			ev := Update(s, &keys, rng, tc.dt)

			if ev != ToneNone {
				t.Errorf("event = %s, expected None", ev)
			}
			expected := tc.pos.Add(tc.vel.Scale(tc.dt))
			if s.Ball.Pos != expected {
				t.Errorf("ball at %+v, expected %+v", s.Ball.Pos, expected)
			}
			if s.Ball.Vel != tc.vel {
				t.Errorf("ball velocity changed to %+v", s.Ball.Vel)
			}
		})
	}
}

func TestPointScoredRight(t *testing.T) {
	s, rng := newPlaying(core.V2(0.98, 0.0), core.V2(0.8, 0.0))
	var keys core.KeyState

	ev := Update(s, &keys, rng, 0.1)

	if ev != TonePointScored {
		t.Errorf("event = %s, expected PointScored", ev)
	}
	if s.Winner != WinnerLeft {
		t.Errorf("Winner = %s, expected Left", s.Winner)
	}
	if s.LeftScore != 1 || s.RightScore != 0 {
		t.Errorf("scores = %d-%d, expected 1-0", s.LeftScore, s.RightScore)
	}
	if s.InProgress {
		t.Error("match should be idle after a point")
	}
	if s.Ball.Pos.X != -0.07 {
		t.Errorf("ball X = %v, expected -0.07", s.Ball.Pos.X)
	}
	if s.Ball.Vel != (core.Vec2{}) {
		t.Errorf("ball velocity = %+v, expected zero", s.Ball.Vel)
	}
}

func TestPointScoredLeft(t *testing.T) {
	s, rng := newPlaying(core.V2(-0.98, 0.3), core.V2(-0.8, 0.1))
	var keys core.KeyState

	ev := Update(s, &keys, rng, 0.1)

	if ev != TonePointScored {
		t.Errorf("event = %s, expected PointScored", ev)
	}
	if s.Winner != WinnerRight {
		t.Errorf("Winner = %s, expected Right", s.Winner)
	}
	if s.LeftScore != 0 || s.RightScore != 1 {
		t.Errorf("scores = %d-%d, expected 0-1", s.LeftScore, s.RightScore)
	}
	if s.Ball.Pos.X != ServePad {
		t.Errorf("ball X = %v, expected %v", s.Ball.Pos.X, ServePad)
	}
}

func TestOutOfBoundsBeatsWallBounce(t *testing.T) {
	// Leaves the court through the top-right corner: only the point counts.
	s, rng := newPlaying(core.V2(0.99, BallAtTop-0.001), core.V2(1, 1))
	var keys core.KeyState

	ev := Update(s, &keys, rng, 0.05)

	if ev != TonePointScored {
		t.Errorf("event = %s, expected PointScored", ev)
	}
	if s.LeftScore != 1 {
		t.Errorf("LeftScore = %d, expected 1", s.LeftScore)
	}
}

func TestWallBounce(t *testing.T) {
	tests := []struct {
		name      string
		y, vy     float64
		expectedY float64
	}{
		{"top", BallAtTop - 0.001, 0.5, BallAtTop},
		{"bottom", BallAtBottom + 0.001, -0.5, BallAtBottom},
		{"exactly on top bound", BallAtTop, 0.3, BallAtTop},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, rng := newPlaying(core.V2(0, tc.y), core.V2(0.2, tc.vy))
			var keys core.KeyState

			ev := Update(s, &keys, rng, 0.01)

			if ev != ToneWallBounce {
				t.Errorf("event = %s, expected WallBounce", ev)
			}
			if s.Ball.Pos.Y != tc.expectedY {
				t.Errorf("ball Y = %v, expected %v", s.Ball.Pos.Y, tc.expectedY)
			}
			if s.Ball.Vel.Y != -tc.vy {
				t.Errorf("ball VY = %v, expected %v", s.Ball.Vel.Y, -tc.vy)
			}
			if s.Ball.Vel.X != 0.2 {
				t.Errorf("ball VX = %v, expected unchanged 0.2", s.Ball.Vel.X)
			}
		})
	}
}

func TestLeftPaddleBounce(t *testing.T) {
	s, rng := newPlaying(core.V2(-0.875, 0), core.V2(-0.5, 0.1))
	var keys core.KeyState
	keys.Set(core.KeyLeftUp, true)
	dt := 0.02

	ev := Update(s, &keys, rng, dt)

	if ev != TonePaddleBounce {
		t.Fatalf("event = %s, expected PaddleBounce", ev)
	}
	if s.Ball.Vel.X != 0.5 {
		t.Errorf("ball VX = %v, expected 0.5", s.Ball.Vel.X)
	}
	paddleVY := PaddleAccel * dt
	if s.Left.Vel.Y != paddleVY {
		t.Fatalf("paddle VY = %v, expected %v", s.Left.Vel.Y, paddleVY)
	}
	if s.Ball.Vel.Y != 0.1+paddleVY {
		t.Errorf("ball VY = %v, expected %v", s.Ball.Vel.Y, 0.1+paddleVY)
	}
	expectedX := s.Left.Pos.X + s.Left.W/2 + s.Ball.W/2
	if s.Ball.Pos.X != expectedX {
		t.Errorf("ball X = %v, expected %v", s.Ball.Pos.X, expectedX)
	}
}

func TestRightPaddleBounce(t *testing.T) {
	s, rng := newPlaying(core.V2(0.875, 0.05), core.V2(0.7, -0.2))
	var keys core.KeyState

	ev := Update(s, &keys, rng, 0.02)

	if ev != TonePaddleBounce {
		t.Fatalf("event = %s, expected PaddleBounce", ev)
	}
	if s.Ball.Vel.X != -0.7 {
		t.Errorf("ball VX = %v, expected -0.7", s.Ball.Vel.X)
	}
	if s.Ball.Vel.Y != -0.2 {
		t.Errorf("ball VY = %v, expected -0.2 with a resting paddle", s.Ball.Vel.Y)
	}
	expectedX := s.Right.Pos.X - s.Right.W/2 - s.Ball.W/2
	if s.Ball.Pos.X != expectedX {
		t.Errorf("ball X = %v, expected %v", s.Ball.Pos.X, expectedX)
	}
}

func TestPaddleBounceRequiresApproach(t *testing.T) {
	// Overlapping the right paddle but already heading left.
	s, rng := newPlaying(core.V2(0.895, 0), core.V2(-0.5, 0))
	var keys core.KeyState

	ev := Update(s, &keys, rng, 0.01)

	if ev != ToneNone {
		t.Errorf("event = %s, expected None", ev)
	}
	if s.Ball.Vel.X != -0.5 {
		t.Errorf("ball VX = %v, expected unchanged -0.5", s.Ball.Vel.X)
	}
}

func TestPaddleMissPassesThrough(t *testing.T) {
	s, rng := newPlaying(core.V2(-0.875, 0.8), core.V2(-0.5, 0))
	var keys core.KeyState

	ev := Update(s, &keys, rng, 0.02)

	if ev != ToneNone {
		t.Errorf("event = %s, expected None when the paddle is elsewhere", ev)
	}
	if s.Ball.Vel.X != -0.5 {
		t.Errorf("ball VX = %v, expected -0.5", s.Ball.Vel.X)
	}
}

func TestPaddleBothKeysCancel(t *testing.T) {
	s := NewMatchState(core.NewRand(3))
	rng := core.NewRand(3)
	s.Left.Vel.Y = 1.0

	var keys core.KeyState
	keys.Set(core.KeyLeftUp, true)
	keys.Set(core.KeyLeftDown, true)

	for frame := range 3 {
		before := s.Left.Pos
		Update(s, &keys, rng, frameDT)
		if s.Left.Vel.Y != 0 {
			t.Errorf("frame %d: paddle VY = %v, expected 0", frame, s.Left.Vel.Y)
		}
		if s.Left.Pos != before {
			t.Errorf("frame %d: paddle moved from %+v to %+v", frame, before, s.Left.Pos)
		}
	}
}

func TestPaddleAcceleration(t *testing.T) {
	s := NewMatchState(core.NewRand(5))
	rng := core.NewRand(5)
	var keys core.KeyState
	keys.Set(core.KeyRightDown, true)

	dt := 0.05
	Update(s, &keys, rng, dt)
	if expected := -(PaddleAccel * dt); s.Right.Vel.Y != expected {
		t.Errorf("after one frame VY = %v, expected %v", s.Right.Vel.Y, expected)
	}

	for range 30 {
		Update(s, &keys, rng, 0.01)
		if s.Right.Vel.Y < -PaddleMaxSpeed {
			t.Fatalf("VY = %v exceeds cap %v", s.Right.Vel.Y, PaddleMaxSpeed)
		}
	}
	if s.Right.Vel.Y != -PaddleMaxSpeed {
		t.Errorf("VY = %v, expected to reach cap -%v", s.Right.Vel.Y, PaddleMaxSpeed)
	}

	keys = core.KeyState{}
	Update(s, &keys, rng, 0.01)
	if s.Right.Vel.Y != 0 {
		t.Errorf("after release VY = %v, expected instant stop", s.Right.Vel.Y)
	}
}

func TestPaddleStopsAtWall(t *testing.T) {
	s := NewMatchState(core.NewRand(9))
	rng := core.NewRand(9)
	bound := YBound(PaddleHeight)
	s.Left.Pos.Y = bound - 0.001

	var keys core.KeyState
	keys.Set(core.KeyLeftUp, true)

	for range 5 {
		Update(s, &keys, rng, frameDT)
		if s.Left.Pos.Y != bound {
			t.Fatalf("paddle Y = %v, expected clamp at %v", s.Left.Pos.Y, bound)
		}
		if s.Left.Vel.Y != 0 {
			t.Fatalf("paddle VY = %v, expected 0 at the wall", s.Left.Vel.Y)
		}
	}
}

func TestYBoundTighterForTallerEntities(t *testing.T) {
	if YBound(PaddleHeight) >= YBound(BallHeight) {
		t.Errorf("paddle bound %v should be tighter than ball bound %v", YBound(PaddleHeight), YBound(BallHeight))
	}
	if math.Abs(YBound(BallHeight)-BallAtTop) > 1e-12 {
		t.Errorf("YBound(BallHeight) = %v, expected BallAtTop %v", YBound(BallHeight), BallAtTop)
	}
}

func TestIdleBallDoesNotMove(t *testing.T) {
	rng := core.NewRand(11)
	s := NewMatchState(rng)
	start := s.Ball.Pos
	var keys core.KeyState

	for range 30 {
		if ev := Update(s, &keys, rng, frameDT); ev != ToneNone {
			t.Fatalf("idle frame produced %s", ev)
		}
	}
	if s.Ball.Pos != start || s.InProgress {
		t.Errorf("idle ball moved to %+v (in progress %v)", s.Ball.Pos, s.InProgress)
	}
}

func TestServe(t *testing.T) {
	rng := core.NewRand(77)
	s := NewMatchState(rng)
	var keys core.KeyState
	keys.Set(core.KeyServe, true)

	start := s.Ball.Pos
	Update(s, &keys, rng, frameDT)

	if !s.InProgress {
		t.Fatal("serve key should start the point")
	}
	if s.Ball.Pos != start {
		t.Errorf("ball moved on the serve frame")
	}
	vx := math.Abs(s.Ball.Vel.X)
	if vx < ServeSpeedMin*BallBaseSpeed || vx >= ServeSpeedMax*BallBaseSpeed {
		t.Errorf("|VX| = %v, outside [%v, %v)", vx, ServeSpeedMin, ServeSpeedMax)
	}
	if math.Abs(s.Ball.Vel.Y) > vx*math.Sin(MaxServeAngle) {
		t.Errorf("|VY| = %v exceeds the 75 degree limit for |VX| = %v", s.Ball.Vel.Y, vx)
	}
}

func TestServeIsEdgeTriggered(t *testing.T) {
	rng := core.NewRand(8)
	s := NewMatchState(rng)
	var keys core.KeyState
	keys.Set(core.KeyServe, true)

	Update(s, &keys, rng, frameDT)
	if !s.InProgress {
		t.Fatal("first press should serve")
	}

	// Knock the ball out while the key stays held.
	s.Ball.Pos = core.V2(0.99, 0)
	s.Ball.Vel = core.V2(1, 0)
	Update(s, &keys, rng, frameDT)
	if s.InProgress {
		t.Fatal("point should have ended")
	}

	for range 5 {
		Update(s, &keys, rng, frameDT)
	}
	if s.InProgress {
		t.Error("holding serve should not serve again")
	}

	keys.Set(core.KeyServe, false)
	Update(s, &keys, rng, frameDT)
	keys.Set(core.KeyServe, true)
	Update(s, &keys, rng, frameDT)
	if !s.InProgress {
		t.Error("release and press should serve again")
	}
}

func TestServeTowardWinner(t *testing.T) {
	tests := []struct {
		name   string
		winner Winner
		left   uint32
		right  uint32
		sign   float64
	}{
		{"left won", WinnerLeft, 1, 0, -1},
		{"right won", WinnerRight, 0, 1, 1},
		{"left won later", WinnerLeft, 4, 7, -1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			for seed := range int64(50) {
				rng := core.NewRand(seed)
				s := NewMatchState(rng)
				s.Winner = tc.winner
				s.LeftScore = tc.left
				s.RightScore = tc.right

				var keys core.KeyState
				keys.Set(core.KeyServe, true)
				Update(s, &keys, rng, frameDT)

				if math.Copysign(1, s.Ball.Vel.X) != tc.sign {
					t.Fatalf("seed %d: VX = %v, expected sign %v", seed, s.Ball.Vel.X, tc.sign)
				}
			}
		})
	}
}

func TestFirstServeDirectionIsFair(t *testing.T) {
	const trials = 4000
	left := 0
	for seed := range int64(trials) {
		rng := core.NewRand(seed)
		s := NewMatchState(rng)
		var keys core.KeyState
		keys.Set(core.KeyServe, true)
		Update(s, &keys, rng, frameDT)

		if s.Ball.Vel.X < 0 {
			left++
		}
	}

	if left < trials*45/100 || left > trials*55/100 {
		t.Errorf("%d of %d first serves went left, expected about half", left, trials)
	}
}

func TestScoringIsMonotonicAndExclusive(t *testing.T) {
	rng := core.NewRand(2026)
	input := core.NewRand(7)
	s := NewMatchState(rng)

	points := 0
	for frame := range 20000 {
		keys := core.KeyStateFromMask(uint8(input.Intn(32)))
		prevLeft, prevRight := s.LeftScore, s.RightScore

		ev := Update(s, &keys, rng, frameDT)

		dl := s.LeftScore - prevLeft
		dr := s.RightScore - prevRight
		if s.LeftScore < prevLeft || s.RightScore < prevRight {
			t.Fatalf("frame %d: score decreased", frame)
		}
		if dl+dr > 1 {
			t.Fatalf("frame %d: both scores changed", frame)
		}
		if (dl+dr == 1) != (ev == TonePointScored) {
			t.Fatalf("frame %d: score change %d/%d with event %s", frame, dl, dr, ev)
		}
		if ev == TonePointScored {
			points++
		}
		if math.Abs(s.Ball.Pos.Y) > BallAtTop {
			t.Fatalf("frame %d: ball Y %v beyond the wall", frame, s.Ball.Pos.Y)
		}
	}

	if points == 0 {
		t.Error("expected at least one point over 20000 random frames")
	}
}

func TestUpdateDeterminism(t *testing.T) {
	run := func() Snapshot {
		rng := core.NewRand(12345)
		input := core.NewRand(99)
		s := NewMatchState(rng)
		for range 3000 {
			keys := core.KeyStateFromMask(uint8(input.Intn(32)))
			Update(s, &keys, rng, frameDT)
		}
		return s.Snapshot(3000)
	}

	a, b := run(), run()
	if a != b || a.Hash() != b.Hash() {
		t.Errorf("Determinism failed: %+v vs %+v", a, b)
	}
}

func TestUpdatePanicsOnBadInput(t *testing.T) {
	rng := core.NewRand(1)
	s := NewMatchState(rng)
	var keys core.KeyState

	tests := []struct {
		name string
		call func()
	}{
		{"zero dt", func() { Update(s, &keys, rng, 0) }},
		{"negative dt", func() { Update(s, &keys, rng, -0.01) }},
		{"NaN dt", func() { Update(s, &keys, rng, math.NaN()) }},
		{"nil state", func() { Update(nil, &keys, rng, frameDT) }},
		{"nil keys", func() { Update(s, nil, rng, frameDT) }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			tc.call()
		})
	}
}

func TestFastBallCannotSkipPaddle(t *testing.T) {
	speed := ServeSpeedMax * BallBaseSpeed
	dt := MaxStepDT * 0.95

	for _, side := range []float64{-1, 1} {
		for i := range 50 {
			start := side * (0.80 + float64(i)*0.001)
			s, rng := newPlaying(core.V2(start, 0), core.V2(side*speed, 0))
			var keys core.KeyState

			ev := ToneNone
			for frame := 0; frame < 100 && ev == ToneNone; frame++ {
				ev = Update(s, &keys, rng, dt)
			}
			if ev != TonePaddleBounce {
				t.Fatalf("ball from x=%v toward side %v: event %s, expected PaddleBounce", start, side, ev)
			}
		}
	}
}
