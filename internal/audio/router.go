package audio

import (
	"sync"

	"github.com/vovakirdan/tui-pong/internal/games/pong"
)

// Router selects which tone buffer the audio consumer drains. The game loop
// calls Trigger once per frame and the speaker goroutine calls Read.
type Router struct {
	bank *Bank

	mu        sync.Mutex
	current   []byte
	next      int
	remaining int
}

// NewRouter creates a silent router over bank.
//
// Panics if bank is nil.
func NewRouter(bank *Bank) *Router {
	if bank == nil {
		panic("audio: nil tone bank")
	}
	return &Router{bank: bank}
}

// Trigger restarts playback with the buffer for ev. ToneNone leaves the
// current selection untouched.
func (r *Router) Trigger(ev pong.ToneEvent) {
	buf := r.bank.Buffer(ev)
	if buf == nil {
		return
	}

	r.mu.Lock()
	r.current = buf
	r.next = 0
	r.remaining = len(buf)
	r.mu.Unlock()
}

// Read copies the queued tone into p and zero-fills whatever the tone does
// not cover. It always returns len(p).
func (r *Router) Read(p []byte) int {
	r.mu.Lock()
	n := min(len(p), r.remaining)
	copy(p, r.current[r.next:r.next+n])
	r.next += n
	r.remaining -= n
	r.mu.Unlock()

	clear(p[n:])
	return len(p)
}

// Remaining reports how many bytes of the current tone are still queued.
func (r *Router) Remaining() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.remaining
}

// Stop drops whatever is queued.
func (r *Router) Stop() {
	r.mu.Lock()
	r.remaining = 0
	r.mu.Unlock()
}
