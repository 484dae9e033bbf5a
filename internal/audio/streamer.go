package audio

import (
	"encoding/binary"

	"github.com/gopxl/beep"
)

// Streamer adapts a Router to beep. It never drains: silence is streamed
// while no tone is queued.
type Streamer struct {
	router *Router
	buf    []byte
}

var _ beep.Streamer = (*Streamer)(nil)

// NewStreamer wraps r.
func NewStreamer(r *Router) *Streamer {
	return &Streamer{router: r}
}

// Stream fills samples from the router, converting int16 PCM to beep's
// [-1, 1] floats.
func (s *Streamer) Stream(samples [][2]float64) (n int, ok bool) {
	need := len(samples) * BytesPerFrame
	if cap(s.buf) < need {
		s.buf = make([]byte, need)
	}
	buf := s.buf[:need]
	s.router.Read(buf)

	for i := range samples {
		off := i * BytesPerFrame
		l := int16(binary.LittleEndian.Uint16(buf[off:]))
		r := int16(binary.LittleEndian.Uint16(buf[off+BytesPerSample:]))
		samples[i][0] = float64(l) / 32768
		samples[i][1] = float64(r) / 32768
	}
	return len(samples), true
}

// Err implements beep.Streamer. The router never fails, so it is always nil.
func (s *Streamer) Err() error {
	return nil
}
