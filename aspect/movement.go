// Public domain.

package aspect

import "math"

// Movement tells whether an aspect is tightening, widening, or neither.
type Movement int

const (
	Static Movement = iota
	Applying
	Separating
	// Fixed is reported by the aggregators for two chart axes.  The
	// classifier never returns it.
	Fixed
)

var movementNames = [...]string{"Static", "Applying", "Separating", "Fixed"}

func (m Movement) String() string {
	if m < 0 || int(m) >= len(movementNames) {
		return "Movement(?)"
	}
	return movementNames[m]
}

// MarshalText implements encoding.TextMarshaler.
func (m Movement) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// Parameters of the lookahead.
const (
	DT           = .001 // days
	SpeedEpsilon = 1e-9 // degrees/day
	OrbEpsilon   = 1e-6 // degrees
)

// Classify decides whether the aspect of angle between two moving points
// is applying or separating, by projecting both points DT days ahead and
// comparing orbs.
//
// Positions are degrees in [0,360), angle is finite degrees >= 0 and is
// folded to [0,180].  Speeds are finite degrees per day, negative for
// retrograde, and are required: a nil speed is an error.
func Classify(pos1, pos2, angle float64, speed1, speed2 *float64) (Movement, error) {
	const op = "Classify"
	switch {
	case speed1 == nil || speed2 == nil:
		return Static, inputErr(op, "speed values for both points are required")
	case !validPos(pos1) || !validPos(pos2):
		return Static, inputErr(op, "positions must be in range [0, 360), got %g, %g", pos1, pos2)
	case !(angle >= 0) || !finite(angle):
		return Static, inputErr(op, "aspect degrees must be finite and non-negative, got %g", angle)
	case !finite(*speed1) || !finite(*speed2):
		return Static, inputErr(op, "speeds must be finite, got %g, %g", *speed1, *speed2)
	}
	return classify(pos1, pos2, angle, *speed1, *speed2), nil
}

// classify is Classify on validated input.
func classify(pos1, pos2, angle, speed1, speed2 float64) Movement {
	a := Fold(angle)
	orb := func(p1, p2 float64) float64 {
		return math.Abs(Distance(p1, p2) - a)
	}
	current := orb(pos1, pos2)

	// equal speeds hold the orb constant
	if math.Abs(speed1-speed2) < SpeedEpsilon {
		return Static
	}
	future := orb(wrap(pos1+speed1*DT), wrap(pos2+speed2*DT))

	switch delta := future - current; {
	case math.Abs(delta) < OrbEpsilon:
		return Static
	case delta < 0:
		return Applying
	default:
		return Separating
	}
}
