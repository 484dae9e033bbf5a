package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Player owns the speaker device and plays a Router through it.
type Player struct {
	mu          sync.Mutex
	router      *Router
	initialized bool
}

// NewPlayer creates a player for r. Nothing is opened until Start.
func NewPlayer(r *Router) *Player {
	return &Player{router: r}
}

// Start opens the speaker with the given buffer length and begins
// streaming. Calling Start twice is a no-op.
func (p *Player) Start(buffer time.Duration) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	sr := beep.SampleRate(SampleRate)
	if err := speaker.Init(sr, sr.N(buffer)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}

	speaker.Play(NewStreamer(p.router))
	p.initialized = true
	return nil
}

// Close silences the router and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	p.router.Stop()
	speaker.Clear()
	speaker.Close()
	p.initialized = false
}
