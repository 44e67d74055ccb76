// Public domain.

package aspect

import "math"

// Match is one aspect found between two points.
type Match struct {
	P1Name     string
	P1Owner    string // subject name
	P1Position float64
	P1Speed    float64 // speed used for classification
	P1Kind     Kind
	P1ID       int
	P2Name     string
	P2Owner    string
	P2Position float64
	P2Speed    float64
	P2Kind     Kind
	P2ID       int

	Aspect   string
	Angle    float64 // aspect angle as given in the catalog
	Major    bool
	Orb      float64 // |circular distance - folded angle|
	Diff     float64 // raw |P1Position-P2Position|
	Movement Movement
}

// SingleChartSet holds the aspects within one chart.
type SingleChartSet struct {
	Subject       *Subject
	ActivePoints  []string
	ActiveAspects []Override
	// All is every aspect found, in pair order.  Aspects is All less
	// those dropped by the axis orb limit.
	All     []Match
	Aspects []Match
}

// DualChartSet holds the aspects between two charts.
type DualChartSet struct {
	First, Second *Subject
	ActivePoints  []string
	ActiveAspects []Override
	// Aspects is the same list as All.  No axis orb limit applies
	// between charts.
	All     []Match
	Aspects []Match
}

// SingleChart computes the aspects among the active points of s.
//
// Pairs are taken i < j over the resolved point list.  Pairs that are
// always opposite within a chart (ascendant and descendant, midheaven and
// imum coeli, north and south nodes) are skipped.  Aspects between two
// axis points have Movement Fixed.
func SingleChart(s *Subject, opt *Options) (*SingleChartSet, error) {
	const op = "SingleChart"
	if opt == nil {
		opt = DefaultOptions()
	}
	e, err := newEngine(op, opt)
	if err != nil {
		return nil, err
	}
	names := ResolvePoints(s, opt.Points)
	pts, err := e.points(op, s, names)
	if err != nil {
		return nil, err
	}
	cs := &SingleChartSet{
		Subject:       s,
		ActivePoints:  names,
		ActiveAspects: e.cat.Overrides(),
	}
	for i := range pts {
		for j := i + 1; j < len(pts); j++ {
			if FixedOpposite(pts[i].Name, pts[j].Name) {
				continue
			}
			m, ok, err := e.pair(&pts[i], &pts[j], s.Name, s.Name)
			if err != nil {
				return nil, err
			}
			if ok {
				cs.All = append(cs.All, m)
			}
		}
	}
	cs.Aspects = axisFilter(cs.All, e.axisLimit)
	return cs, nil
}

// DualChart computes the aspects between the active points of a and b,
// every point of a against every point of b.  Results are in row major
// order, P1 from a and P2 from b.
func DualChart(a, b *Subject, opt *Options) (*DualChartSet, error) {
	const op = "DualChart"
	if opt == nil {
		opt = DefaultOptions()
	}
	e, err := newEngine(op, opt)
	if err != nil {
		return nil, err
	}
	names := ResolveDualPoints(a, b, opt.Points)
	pa, err := e.points(op, a, names)
	if err != nil {
		return nil, err
	}
	pb, err := e.points(op, b, names)
	if err != nil {
		return nil, err
	}
	cs := &DualChartSet{
		First:         a,
		Second:        b,
		ActivePoints:  names,
		ActiveAspects: e.cat.Overrides(),
	}
	for i := range pa {
		for j := range pb {
			m, ok, err := e.pair(&pa[i], &pb[j], a.Name, b.Name)
			if err != nil {
				return nil, err
			}
			if ok {
				cs.All = append(cs.All, m)
			}
		}
	}
	cs.Aspects = cs.All
	return cs, nil
}

// pair matches and classifies one pair of points.
func (e *engine) pair(p1, p2 *resolved, owner1, owner2 string) (m Match, ok bool, err error) {
	r := e.cat.match(p1.Position, p2.Position)
	if !r.Found {
		return
	}
	s1, s2 := e.speed(p1.Point), e.speed(p2.Point)
	mv := Fixed
	if !axisKind(p1.kind) || !axisKind(p2.kind) {
		if mv, err = Classify(p1.Position, p2.Position, r.Angle, s1, s2); err != nil {
			return
		}
	}
	m = Match{
		P1Name:     p1.Name,
		P1Owner:    owner1,
		P1Position: p1.Position,
		P1Kind:     p1.kind,
		P1ID:       p1.id,
		P2Name:     p2.Name,
		P2Owner:    owner2,
		P2Position: p2.Position,
		P2Kind:     p2.kind,
		P2ID:       p2.id,
		Aspect:     r.Name,
		Angle:      r.Angle,
		Major:      r.Major,
		Orb:        r.Orb,
		Diff:       r.Diff,
		Movement:   mv,
	}
	if s1 != nil {
		m.P1Speed = *s1
	}
	if s2 != nil {
		m.P2Speed = *s2
	}
	return m, true, nil
}

// axisFilter drops aspects involving an axis point with orb >= limit.
// limit <= 0 returns all.
func axisFilter(all []Match, limit float64) []Match {
	if !(limit > 0) {
		return all
	}
	var r []Match
	for _, m := range all {
		if (axisKind(m.P1Kind) || axisKind(m.P2Kind)) && math.Abs(m.Orb) >= limit {
			continue
		}
		r = append(r, m)
	}
	return r
}
