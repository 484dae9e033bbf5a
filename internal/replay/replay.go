// Package replay records live matches and plays them back. A replay is the
// seed plus every frame's dt and key mask; re-simulating those inputs
// reproduces the match bit for bit.
package replay

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/games/pong"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

// ErrNotFound is returned when a replay ID does not exist.
var ErrNotFound = errors.New("replay: not found")

// Recorder buffers the inputs of a live match.
type Recorder struct {
	seed   int64
	frames []storage.Frame
	id     int64 // Set once saved
}

// NewRecorder starts an empty recording for a match seeded with seed.
func NewRecorder(seed int64) *Recorder {
	return &Recorder{seed: seed}
}

// Record appends one frame.
func (r *Recorder) Record(dt float64, keys core.KeyState) {
	r.frames = append(r.frames, storage.Frame{DT: dt, Keys: keys.Mask()})
}

// Seed returns the seed of the recorded match.
func (r *Recorder) Seed() int64 {
	return r.seed
}

// Len returns the number of recorded frames.
func (r *Recorder) Len() int {
	return len(r.frames)
}

// Save writes the recording to store. An empty recording is not saved and
// yields ID 0. After a successful save, later calls return the same ID
// without writing again.
func (r *Recorder) Save(store *storage.Store) (int64, error) {
	if r.id != 0 {
		return r.id, nil
	}
	if len(r.frames) == 0 {
		return 0, nil
	}
	id, err := store.SaveReplay(r.seed, r.frames)
	if err != nil {
		return 0, fmt.Errorf("replay: save: %w", err)
	}
	r.id = id
	return id, nil
}

// ID returns the ID of the saved replay, or 0 if it was not saved.
func (r *Recorder) ID() int64 {
	return r.id
}

// Playback re-simulates a recording one frame at a time.
type Playback struct {
	game   *pong.Game
	frames []storage.Frame
	pos    int
	keys   core.KeyState
}

// NewPlayback prepares seed and frames for playback.
func NewPlayback(seed int64, frames []storage.Frame) *Playback {
	return &Playback{
		game:   pong.NewGame(seed),
		frames: frames,
	}
}

// Load reads replay id from store.
func Load(store *storage.Store, id int64) (*Playback, error) {
	entry, err := store.Replay(id)
	if err != nil {
		return nil, fmt.Errorf("replay: load %d: %w", id, err)
	}
	if entry == nil {
		return nil, fmt.Errorf("replay %d: %w", id, ErrNotFound)
	}

	frames, err := store.Frames(id)
	if err != nil {
		return nil, fmt.Errorf("replay: load %d: %w", id, err)
	}
	return NewPlayback(entry.Seed, frames), nil
}

// Step applies the next recorded frame. It reports false once the
// recording is exhausted.
func (p *Playback) Step() (pong.ToneEvent, bool) {
	if p.Done() {
		return pong.ToneNone, false
	}
	f := p.frames[p.pos]
	p.pos++
	p.keys = core.KeyStateFromMask(f.Keys)
	return p.game.Step(&p.keys, f.DT), true
}

// Done reports whether every frame has been applied.
func (p *Playback) Done() bool {
	return p.pos >= len(p.frames)
}

// Game returns the match being replayed.
func (p *Playback) Game() *pong.Game {
	return p.game
}

// NextDT returns the dt of the next frame, or 0 when done.
func (p *Playback) NextDT() float64 {
	if p.Done() {
		return 0
	}
	return p.frames[p.pos].DT
}

// Progress returns the applied and total frame counts.
func (p *Playback) Progress() (done, total int) {
	return p.pos, len(p.frames)
}

// Result summarizes a finished re-simulation.
type Result struct {
	Final  pong.Snapshot
	Events map[pong.ToneEvent]int
}

// Run replays every frame headlessly.
func Run(seed int64, frames []storage.Frame) Result {
	p := NewPlayback(seed, frames)
	res := Result{Events: make(map[pong.ToneEvent]int)}
	for {
		ev, ok := p.Step()
		if !ok {
			break
		}
		if ev != pong.ToneNone {
			res.Events[ev]++
		}
	}
	res.Final = p.game.Snapshot()
	return res
}
