// Package audio turns pong tone events into PCM and feeds it to the
// speaker.
package audio

import (
	"encoding/binary"
	"time"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/games/pong"
)

// Output format of every tone buffer: signed 16-bit little-endian PCM,
// interleaved stereo.
const (
	SampleRate     = 48000
	Channels       = 2
	BytesPerSample = 2
	BytesPerFrame  = Channels * BytesPerSample

	// Volume is the square-wave amplitude in int16 units, 5% of full scale.
	Volume = 1638
)

// Tone describes one fixed square wave.
type Tone struct {
	Freq     float64
	Duration time.Duration
}

// Tones used for each event kind.
var (
	WallTone   = Tone{Freq: 240, Duration: 100 * time.Millisecond}
	PaddleTone = Tone{Freq: 480, Duration: 100 * time.Millisecond}
	PointTone  = Tone{Freq: 240, Duration: 700 * time.Millisecond}
)

// Frames returns the number of sample frames the tone lasts.
func (t Tone) Frames() int {
	return core.RoundHalfUp(SampleRate * t.Duration.Seconds())
}

// HalfPeriod returns how many frames each half of the wave lasts. The full
// period is rounded to an even frame count so both halves are equal.
func (t Tone) HalfPeriod() int {
	return core.RoundHalfEven(SampleRate/t.Freq) / 2
}

// SquareWave renders t as interleaved PCM. The wave starts at +Volume and
// flips sign every HalfPeriod frames.
//
// Panics if the frequency is too high to produce a half period.
func SquareWave(t Tone) []byte {
	half := t.HalfPeriod()
	if half <= 0 {
		panic("audio: tone frequency above the sample rate")
	}

	frames := t.Frames()
	buf := make([]byte, frames*BytesPerFrame)

	level := int16(-Volume)
	for i := range frames {
		if i%half == 0 {
			level = -level
		}
		off := i * BytesPerFrame
		for ch := range Channels {
			binary.LittleEndian.PutUint16(buf[off+ch*BytesPerSample:], uint16(level))
		}
	}
	return buf
}

// Bank holds the three tone buffers. They are generated once and never
// written again, so a Bank can be shared freely.
type Bank struct {
	wall   []byte
	paddle []byte
	point  []byte
}

// NewBank generates every tone buffer.
func NewBank() *Bank {
	return &Bank{
		wall:   SquareWave(WallTone),
		paddle: SquareWave(PaddleTone),
		point:  SquareWave(PointTone),
	}
}

// Buffer returns the buffer for ev, or nil for pong.ToneNone.
func (b *Bank) Buffer(ev pong.ToneEvent) []byte {
	switch ev {
	case pong.ToneWallBounce:
		return b.wall
	case pong.TonePaddleBounce:
		return b.paddle
	case pong.TonePointScored:
		return b.point
	default:
		return nil
	}
}
