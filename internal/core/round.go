package core

import "math"

// RoundHalfUp rounds to the nearest integer, ties toward +Inf.
// Every float-to-pixel conversion goes through this.
func RoundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}

// RoundHalfEven rounds to the nearest integer, ties to the even neighbour.
// Used for tone half-periods so pitch does not drift upward.
func RoundHalfEven(x float64) int {
	return int(math.RoundToEven(x))
}
