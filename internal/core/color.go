package core

// Color is a packed 24-bit pixel: B | G<<8 | R<<16. The top byte is zero.
type Color uint32

// PackColor rounds each channel half up, clamps it to [0,255] and packs it.
func PackColor(r, g, b float64) Color {
	return Color(channel(b) | channel(g)<<8 | channel(r)<<16)
}

// RGB unpacks the color into its channels.
func (c Color) RGB() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c) //nolint:gosec // byte extraction
}

func channel(v float64) uint32 {
	return uint32(Clamp(RoundHalfUp(v), 0, 255)) //nolint:gosec // clamped to a byte
}

// Palette used by the court.
var (
	ColorBackground = PackColor(16, 16, 24)
	ColorForeground = PackColor(235, 235, 235)
	ColorNet        = PackColor(96, 96, 110)
	ColorDotOff     = PackColor(34, 34, 46)
	ColorBall       = PackColor(255, 214, 90)
)
