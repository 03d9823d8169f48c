// Package timing implements the per-move time budget calculation — the
// externally supplied collaborator referenced by the core search design
// (§6). It has no dependency on board or search; it is a pure function of
// the half-move number and the clock remaining.
package timing

import "math"

// peakHalfMove is where the Gaussian bump the budget curve follows is
// centered: the engine spends relatively more of its clock around
// move 80, tapering off in the opening and deep endgame.
const peakHalfMove = 80.0

// spread controls how wide the Gaussian bump is.
const spread = 35.0

// baseFraction is the floor fraction of the remaining clock any half-move
// gets, even far from the peak.
const baseFraction = 0.1

// scale is the overall fraction of the remaining clock spent per move.
const scale = 0.035

// Budget returns the number of seconds to spend on the move at
// halfMoveNumber, given timeRemaining seconds left on the clock. The
// curve is a Gaussian bump peaking near move 80:
//
//	budget = timeRemaining * scale * (baseFraction + exp(-(n-peak)^2 / (2*spread^2)))
//
// Any monotonic-in-timeRemaining function satisfying "strictly positive
// for positive timeRemaining" is an acceptable substitute; this is the
// reference calibration (§6).
func Budget(halfMoveNumber int, timeRemaining float64) float64 {
	n := float64(halfMoveNumber)
	gaussian := math.Exp(-((n - peakHalfMove) * (n - peakHalfMove)) / (2 * spread * spread))
	return timeRemaining * scale * (baseFraction + gaussian)
}
