// Public domain.

package aspect

import (
	"math"

	"github.com/soniakeys/unit"
)

// Distance returns the shorter arc between two ecliptic longitudes, in
// degrees.  The result is in [0,180] for positions in [0,360).
func Distance(pos1, pos2 float64) float64 {
	d := math.Abs(pos1 - pos2)
	if d > 180 {
		d = 360 - d
	}
	return d
}

// Fold reduces an aspect angle to the equivalent angle in [0,180].
// 240 and 600 both fold to 120.
func Fold(angle float64) float64 {
	a := math.Mod(angle, 360)
	if a > 180 {
		a = 360 - a
	}
	return a
}

// wrap reduces a longitude to [0,360).
func wrap(pos float64) float64 {
	p := unit.PMod(pos, 360)
	if p >= 360 {
		// tiny negative inputs round up to exactly 360
		p = 0
	}
	return p
}

// validPos is false for NaN as well as out of range values.
func validPos(p float64) bool {
	return p >= 0 && p < 360
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
