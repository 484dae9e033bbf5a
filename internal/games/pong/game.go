package pong

import "github.com/vovakirdan/tui-pong/internal/core"

// Game bundles a match with the generator that drives it, so a seed plus
// the frame inputs fully determine every frame.
type Game struct {
	seed  int64
	rng   *core.Rand
	state *MatchState
	tick  uint64
}

// NewGame starts an idle match from seed.
func NewGame(seed int64) *Game {
	g := &Game{}
	g.Reset(seed)
	return g
}

// Reset discards the current match and starts a fresh one from seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.rng = core.NewRand(seed)
	g.state = NewMatchState(g.rng)
	g.tick = 0
}

// Step advances the match by one frame of dt seconds.
func (g *Game) Step(keys *core.KeyState, dt float64) ToneEvent {
	ev := Update(g.state, keys, g.rng, dt)
	g.tick++
	return ev
}

// Render draws the current frame into dst.
func (g *Game) Render(dst *core.Screen) {
	Render(dst, g.state)
}

// State returns the live match state. Callers must not mutate it.
func (g *Game) State() *MatchState {
	return g.state
}

// Seed returns the seed the match was started from.
func (g *Game) Seed() int64 {
	return g.seed
}

// Tick returns the number of frames stepped since the last reset.
func (g *Game) Tick() uint64 {
	return g.tick
}

// Snapshot captures the current frame.
func (g *Game) Snapshot() Snapshot {
	return g.state.Snapshot(g.tick)
}
