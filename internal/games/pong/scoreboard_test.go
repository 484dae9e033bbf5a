package pong

import (
	"math"
	"slices"
	"testing"

	"github.com/vovakirdan/tui-pong/internal/core"
)

func TestDigitCount(t *testing.T) {
	tests := []struct {
		n        uint32
		expected int
	}{
		{0, 1},
		{9, 1},
		{10, 2},
		{99, 2},
		{100, 3},
		{4294967295, 10},
	}

	for _, tc := range tests {
		if got := DigitCount(tc.n); got != tc.expected {
			t.Errorf("DigitCount(%d) = %d, expected %d", tc.n, got, tc.expected)
		}
	}
}

func TestDigits(t *testing.T) {
	tests := []struct {
		n        uint32
		expected []uint8
	}{
		{0, []uint8{0}},
		{9, []uint8{9}},
		{10, []uint8{1, 0}},
		{99, []uint8{9, 9}},
		{100, []uint8{1, 0, 0}},
		{2048, []uint8{2, 0, 4, 8}},
	}

	for _, tc := range tests {
		if got := Digits(tc.n); !slices.Equal(got, tc.expected) {
			t.Errorf("Digits(%d) = %v, expected %v", tc.n, got, tc.expected)
		}
	}
}

func TestGlyphsAreDistinct(t *testing.T) {
	seen := make(map[[GlyphRows]uint8]int)
	for d, g := range digitGlyphs {
		if prev, ok := seen[g]; ok {
			t.Errorf("digits %d and %d share a glyph", prev, d)
		}
		seen[g] = d
		for row, bits := range g {
			if bits > 0b1111 {
				t.Errorf("digit %d row %d uses more than %d columns", d, row, GlyphCols)
			}
		}
	}
}

func TestScoreAnchors(t *testing.T) {
	for _, score := range []uint32{0, 9, 10, 99, 100, 12345} {
		n := DigitCount(score)

		lastRight := digitLeftEdge(score, true, n-1) + GlyphWidth
		if math.Abs(lastRight+ScoreAnchorX) > 1e-9 {
			t.Errorf("score %d: left side ends at %v, expected %v", score, lastRight, -ScoreAnchorX)
		}

		firstLeft := digitLeftEdge(score, false, 0)
		if firstLeft != ScoreAnchorX {
			t.Errorf("score %d: right side starts at %v, expected %v", score, firstLeft, ScoreAnchorX)
		}
	}
}

// checkDigitTiles samples every dot of every digit of score and compares it
// to the glyph table.
func checkDigitTiles(t *testing.T, dst *core.Screen, score uint32, leftSide bool) {
	t.Helper()

	for i, d := range Digits(score) {
		leftX := digitLeftEdge(score, leftSide, i)
		first := dst.NormalizedToPixels(leftX+DotSize/2, ScoreTopY, DotSize, DotSize)

		for row := range GlyphRows {
			for col := range GlyphCols {
				dot := first.Offset(col*first.W, row*first.H)
				expected := core.ColorDotOff
				if GlyphDot(d, col, row) {
					expected = core.ColorForeground
				}
				if got := dst.Get(dot.X, dot.Y); got != expected {
					t.Errorf("score %d digit %d (%d) dot (%d,%d) = %#06x, expected %#06x",
						score, i, d, col, row, got, expected)
				}
			}
		}
	}
}

func TestDrawScoreboard(t *testing.T) {
	scores := []uint32{0, 9, 10, 99, 100}

	for _, left := range scores {
		for _, right := range scores {
			dst := core.NewScreen(320, 180)
			dst.Clear(core.ColorBackground)

			DrawScoreboard(dst, left, right)

			checkDigitTiles(t, dst, left, true)
			checkDigitTiles(t, dst, right, false)
		}
	}
}

func TestDrawScoreboardDotSize(t *testing.T) {
	dst := core.NewScreen(640, 360)
	first := dst.NormalizedToPixels(0, 0, DotSize, DotSize)

	// Dots stay square on a 16:9 buffer.
	if first.W != first.H {
		t.Errorf("dot is %dx%d pixels, expected square", first.W, first.H)
	}
	if first.W < 1 {
		t.Error("dot should cover at least one pixel")
	}
}

func TestDrawScoreboardLeavesCourtAlone(t *testing.T) {
	dst := core.NewScreen(320, 180)
	dst.Clear(core.ColorBackground)

	DrawScoreboard(dst, 100, 100)

	// Nothing below the top fifth of the court.
	for y := dst.Height() / 5; y < dst.Height(); y++ {
		for x := range dst.Width() {
			if dst.Get(x, y) != core.ColorBackground {
				t.Fatalf("scoreboard wrote pixel (%d, %d)", x, y)
			}
		}
	}
}
