package pong

import "github.com/vovakirdan/tui-pong/internal/core"

// Net layout
const (
	NetWidth      = 0.006
	NetDashHeight = 0.02
	NetDashes     = 20
)

// Render draws the court, paddles, ball and scoreboard into dst.
// The ball is only drawn while a serve is live.
func Render(dst *core.Screen, s *MatchState) {
	if dst == nil || s == nil {
		panic("pong: nil argument to Render")
	}

	dst.Clear(core.ColorBackground)
	drawNet(dst)

	drawEntity(dst, s.Left, core.ColorForeground)
	drawEntity(dst, s.Right, core.ColorForeground)
	if s.InProgress {
		drawEntity(dst, s.Ball, core.ColorBall)
	}

	DrawScoreboard(dst, s.LeftScore, s.RightScore)
}

func drawEntity(dst *core.Screen, e Entity, c core.Color) {
	dst.DrawRectNormalized(e.Pos.X, e.Pos.Y, e.W, e.H, c)
}

// drawNet draws the dashed middle line, evenly spaced from top to bottom.
func drawNet(dst *core.Screen) {
	step := 2.0 / NetDashes
	for i := range NetDashes {
		y := 1 - (float64(i)+0.5)*step
		dst.DrawRectNormalized(0, y, NetWidth, NetDashHeight, core.ColorNet)
	}
}
