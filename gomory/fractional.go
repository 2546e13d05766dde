// SPDX-License-Identifier: MIT
// Package gomory: integer feasibility checking and fractional variable
// selection. Both operations are defined through the single fracPart helper so
// their termination decisions can never disagree: IsIntegral(x, eps) is false
// if and only if SelectFractional(x, eps) reports an index.

package gomory

import "math"

// fracPart returns the fractional part v − ⌊v⌋, always in [0, 1).
// This is the one shared definition used by the checker, the selector and
// both cut strategies.
func fracPart(v float64) float64 {
	return v - math.Floor(v)
}

// integralValue reports whether v is within eps of an integer, i.e. whether
// its fractional part lies in [0, eps) or (1−eps, 1).
func integralValue(v, eps float64) bool {
	f := fracPart(v)

	return f < eps || f > 1-eps
}

// IsIntegral reports whether every component of x is within eps of an
// integer. It has no side effects and does not modify x.
//
// Complexity: O(n).
func IsIntegral(x []float64, eps float64) bool {
	for _, v := range x {
		if !integralValue(v, eps) {
			return false
		}
	}

	return true
}

// SelectFractional returns the index of the component of x with the largest
// fractional part among components that are NOT integral within eps, and true.
// When several components tie for the maximum, the lowest index wins — the
// selection is fully deterministic, which makes the whole cut sequence
// reproducible for a deterministic solver.
//
// Returns (0, false) when every component is within tolerance. By
// construction that cannot happen when IsIntegral(x, eps) reported false, but
// the engine still handles it as a degenerate acceptance rather than relying
// on the caller having checked first.
//
// Complexity: O(n).
func SelectFractional(x []float64, eps float64) (int, bool) {
	best := -1
	bestFrac := 0.0
	for i, v := range x {
		if integralValue(v, eps) {
			continue
		}
		// Strict ">" keeps the first index on ties.
		if f := fracPart(v); best < 0 || f > bestFrac {
			best = i
			bestFrac = f
		}
	}
	if best < 0 {
		return 0, false
	}

	return best, true
}
