// Package visibility implements the grid line-of-sight test the search
// graph is built from.
package visibility

import "github.com/gridpath-dev/gridpath/geom"

// Blocked reports whether p is an obstacle cell. Map satisfies this via a
// method value of its own blocked lookup.
type Blocked func(p geom.Pos) bool

// Outcome is the result of a line-of-sight test between two cells.
type Outcome struct {
	// Clear is true when no blocked cell lies on the segment from a to b.
	Clear bool
	// Blocker is the first blocked cell the walk encountered. It is the
	// zero Pos when Clear is true.
	Blocker geom.Pos
}

// Test walks the grid line from a to b using a symmetric Bresenham stepper
// and reports the first blocked cell encountered, if any.
//
// On an exact diagonal tie (equal remaining error in both axes) the walk
// resolves the ambiguous corner strictly: if both cardinal neighbor cells of
// the step are blocked, the call is blocked at the far cardinal cell; else
// if the diagonal destination cell itself is blocked, the call is blocked
// there; otherwise the walk steps through the gap between the two corners.
// This rule is symmetric — Test(blocked, a, b) and Test(blocked, b, a) always
// agree on whether the segment is clear — as long as a and b are themselves
// unblocked; the walk tests every cell it steps into, including b, but never
// the starting cell a, so when one endpoint is blocked the two directions can
// disagree. Callers that may query a blocked endpoint directly should snap it
// first.
func Test(blocked Blocked, a, b geom.Pos) Outcome {
	dx := abs(b.X - a.X)
	dz := abs(b.Z - a.Z)

	x, z := a.X, a.Z
	n := dx + dz

	xInc := sign(b.X - a.X)
	zInc := sign(b.Z - a.Z)

	errTerm := dx - dz
	dx *= 2
	dz *= 2

	for n > 0 {
		switch {
		case errTerm > 0:
			next := geom.Pos{X: x + xInc, Z: z}
			if blocked(next) {
				return Outcome{Blocker: next}
			}
			x += xInc
			errTerm -= dz
			n--

		case errTerm < 0:
			next := geom.Pos{X: x, Z: z + zInc}
			if blocked(next) {
				return Outcome{Blocker: next}
			}
			z += zInc
			errTerm += dx
			n--

		default:
			cardX := geom.Pos{X: x + xInc, Z: z}
			cardZ := geom.Pos{X: x, Z: z + zInc}
			if blocked(cardX) && blocked(cardZ) {
				return Outcome{Blocker: cardZ}
			}
			diag := geom.Pos{X: x + xInc, Z: z + zInc}
			if blocked(diag) {
				return Outcome{Blocker: diag}
			}
			x += xInc
			z += zInc
			errTerm += dx - dz
			n -= 2
		}
	}
	return Outcome{Clear: true}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
