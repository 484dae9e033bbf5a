package pong

import "github.com/vovakirdan/tui-pong/internal/core"

// Scoreboard layout. Glyphs are 4x7 dots; DotSize is in X units.
// Each score sits in the middle of its half of the court.
const (
	GlyphCols     = 4
	GlyphRows     = 7
	DotSize       = 0.0124
	GlyphWidth    = GlyphCols * DotSize
	DigitGapScale = 2.0                         // gap unit, in dots
	DigitGap      = 3 * DigitGapScale * DotSize // advance from one digit to the next
	ScoreAnchorX  = 0.5 - GlyphWidth/2          // inner edge of each score
	ScoreTopY     = 0.9                         // center of the top row of dots
)

// digitGlyphs holds one 4x7 dot matrix per decimal digit. Each row uses the
// low four bits, most significant bit leftmost.
var digitGlyphs = [10][GlyphRows]uint8{
	{0b0110, 0b1001, 0b1001, 0b1001, 0b1001, 0b1001, 0b0110}, // 0
	{0b0010, 0b0110, 0b0010, 0b0010, 0b0010, 0b0010, 0b0111}, // 1
	{0b0110, 0b1001, 0b0001, 0b0010, 0b0100, 0b1000, 0b1111}, // 2
	{0b0110, 0b1001, 0b0001, 0b0110, 0b0001, 0b1001, 0b0110}, // 3
	{0b0001, 0b0011, 0b0101, 0b1001, 0b1111, 0b0001, 0b0001}, // 4
	{0b1111, 0b1000, 0b1110, 0b0001, 0b0001, 0b1001, 0b0110}, // 5
	{0b0110, 0b1000, 0b1000, 0b1110, 0b1001, 0b1001, 0b0110}, // 6
	{0b1111, 0b0001, 0b0010, 0b0010, 0b0100, 0b0100, 0b0100}, // 7
	{0b0110, 0b1001, 0b1001, 0b0110, 0b1001, 0b1001, 0b0110}, // 8
	{0b0110, 0b1001, 0b1001, 0b0111, 0b0001, 0b0001, 0b0110}, // 9
}

// GlyphDot reports whether the dot at (col, row) of digit d is lit.
func GlyphDot(d uint8, col, row int) bool {
	return digitGlyphs[d][row]&(1<<(GlyphCols-1-col)) != 0
}

// DigitCount returns the number of decimal digits in n; zero has one.
func DigitCount(n uint32) int {
	count := 1
	for n >= 10 {
		n /= 10
		count++
	}
	return count
}

// Digits returns the decimal digits of n, most significant first.
func Digits(n uint32) []uint8 {
	out := make([]uint8, DigitCount(n))
	for i := len(out) - 1; i >= 0; i-- {
		out[i] = uint8(n % 10) //nolint:gosec // single digit
		n /= 10
	}
	return out
}

// DrawScoreboard draws both scores. The left score grows leftward so its
// last digit stays next to the net; the right score grows rightward.
func DrawScoreboard(dst *core.Screen, left, right uint32) {
	for i, d := range Digits(left) {
		drawDigit(dst, digitLeftEdge(left, true, i), d)
	}
	for i, d := range Digits(right) {
		drawDigit(dst, digitLeftEdge(right, false, i), d)
	}
}

// digitLeftEdge returns the left X of the i-th digit tile of score.
func digitLeftEdge(score uint32, leftSide bool, i int) float64 {
	if leftSide {
		shift := float64(DigitCount(score)-1) * DigitGap
		return -ScoreAnchorX - GlyphWidth - shift + float64(i)*DigitGap
	}
	return ScoreAnchorX + float64(i)*DigitGap
}

// drawDigit converts only the top-left dot from normalized coordinates and
// tiles the rest of the glyph from that pixel rectangle.
func drawDigit(dst *core.Screen, leftX float64, d uint8) {
	first := dst.DrawRectNormalized(leftX+DotSize/2, ScoreTopY, DotSize, DotSize, dotColor(GlyphDot(d, 0, 0)))

	for row := range GlyphRows {
		for col := range GlyphCols {
			if row == 0 && col == 0 {
				continue
			}
			dot := first.Offset(col*first.W, row*first.H)
			dst.DrawRect(dot, dotColor(GlyphDot(d, col, row)))
		}
	}
}

func dotColor(on bool) core.Color {
	if on {
		return core.ColorForeground
	}
	return core.ColorDotOff
}
