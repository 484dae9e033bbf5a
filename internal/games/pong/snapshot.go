package pong

import "math"

// Snapshot is a flat copy of a MatchState, used to compare runs.
type Snapshot struct {
	Tick       uint64
	BallX      float64
	BallY      float64
	BallVX     float64
	BallVY     float64
	LeftY      float64
	LeftVY     float64
	RightY     float64
	RightVY    float64
	LeftScore  uint32
	RightScore uint32
	Winner     Winner
	InProgress bool
}

// Snapshot captures the current state tagged with the frame number.
func (s *MatchState) Snapshot(tick uint64) Snapshot {
	return Snapshot{
		Tick:       tick,
		BallX:      s.Ball.Pos.X,
		BallY:      s.Ball.Pos.Y,
		BallVX:     s.Ball.Vel.X,
		BallVY:     s.Ball.Vel.Y,
		LeftY:      s.Left.Pos.Y,
		LeftVY:     s.Left.Vel.Y,
		RightY:     s.Right.Pos.Y,
		RightVY:    s.Right.Vel.Y,
		LeftScore:  s.LeftScore,
		RightScore: s.RightScore,
		Winner:     s.Winner,
		InProgress: s.InProgress,
	}
}

// Hash folds the exact float bits of the snapshot so two runs only match if
// they are bit-identical.
func (snap Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, f := range []float64{
		snap.BallX, snap.BallY, snap.BallVX, snap.BallVY,
		snap.LeftY, snap.LeftVY, snap.RightY, snap.RightVY,
	} {
		h = h*31 + math.Float64bits(f)
	}
	h = h*31 + uint64(snap.LeftScore)
	h = h*31 + uint64(snap.RightScore)
	h = h*31 + uint64(snap.Winner) //#nosec G115 -- hash computation
	if snap.InProgress {
		h = h*31 + 1
	}
	return h
}
