// Public domain.

package aspect

import "fmt"

// Kind classifies a celestial point.  The set is closed; code deciding
// axis policy switches over every value.
type Kind int

const (
	Planet Kind = iota
	Axis
	LunarNode
	OtherPoint
)

var kindNames = [...]string{"planet", "axis", "lunar-node", "other-point"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if k < 0 || int(k) >= len(kindNames) {
		return nil, fmt.Errorf("aspect: invalid kind %d", int(k))
	}
	return []byte(kindNames[k]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.  It accepts the names
// returned by String.
func (k *Kind) UnmarshalText(b []byte) error {
	for i, n := range kindNames {
		if string(b) == n {
			*k = Kind(i)
			return nil
		}
	}
	return fmt.Errorf("aspect: unknown point kind %q", b)
}

// Point is a celestial reference point of a chart as delivered by an
// ephemeris.  Position is ecliptic longitude in degrees, [0,360).
// Speed is degrees per day, negative for retrograde motion, nil if the
// ephemeris does not provide one.  Kind may be left zero for points
// named in DefaultKind.
type Point struct {
	Name     string
	Position float64
	Speed    *float64
	Kind     Kind
}

// Speed returns a pointer to v, for filling Point.Speed.
func Speed(v float64) *float64 { return &v }

// DefaultKind returns the kind of a point named n: axis for the four
// chart angles, lunar-node for the nodes, planet otherwise.
func DefaultKind(n string) Kind {
	switch n {
	case Ascendant, Descendant, MediumCoeli, ImumCoeli:
		return Axis
	case TrueNode, TrueSouthNode, MeanNode, MeanSouthNode:
		return LunarNode
	}
	return Planet
}

// pointKind is the kind the engine uses for p.  The four chart angles are
// axes whatever their Kind.  A zero Kind takes DefaultKind of the name.
func pointKind(p *Point) Kind {
	if k := DefaultKind(p.Name); k == Axis || p.Kind == Planet {
		return k
	}
	return p.Kind
}

func axisKind(k Kind) bool {
	switch k {
	case Axis:
		return true
	case Planet, LunarNode, OtherPoint:
		return false
	}
	return false
}

// Names of points the engine treats specially.
const (
	Ascendant     = "Ascendant"
	MediumCoeli   = "Medium_Coeli"
	Descendant    = "Descendant"
	ImumCoeli     = "Imum_Coeli"
	TrueNode      = "True_Node"
	TrueSouthNode = "True_South_Node"
	MeanNode      = "Mean_Node"
	MeanSouthNode = "Mean_South_Node"
)

// fixedOpposite lists pairs that are always in exact opposition within
// one chart.  Keyed on the lesser name.
var fixedOpposite = map[[2]string]bool{
	pairKey(Ascendant, Descendant):   true,
	pairKey(MediumCoeli, ImumCoeli):  true,
	pairKey(TrueNode, TrueSouthNode): true,
	pairKey(MeanNode, MeanSouthNode): true,
}

func pairKey(a, b string) [2]string {
	if b < a {
		a, b = b, a
	}
	return [2]string{a, b}
}

// FixedOpposite reports whether the named points are structurally opposite
// within a single chart, in either order.
func FixedOpposite(a, b string) bool {
	return fixedOpposite[pairKey(a, b)]
}

// Subject is one chart: a name, its computed points, and the names of the
// points it exposes as active.  An empty Active list means every point, in
// Points order.
type Subject struct {
	Name   string
	Points []Point
	Active []string
}

// ActivePoints returns the subject's own active set.
func (s *Subject) ActivePoints() []string {
	if len(s.Active) > 0 {
		return s.Active
	}
	n := make([]string, len(s.Points))
	for i := range s.Points {
		n[i] = s.Points[i].Name
	}
	return n
}

// point returns the named point of s.
func (s *Subject) point(name string) (*Point, error) {
	for i := range s.Points {
		if s.Points[i].Name == name {
			return &s.Points[i], nil
		}
	}
	return nil, &LookupError{Name: name, Subject: s.Name}
}
