// Public domain.

package aspect

import "math"

// Definition defines a named aspect.  Angle is in degrees and is folded
// to [0,180] for matching, so 240 behaves as 120.  Orb is the allowed
// deviation from Angle, in degrees.
type Definition struct {
	Name  string
	Angle float64
	Orb   float64
	Major bool
}

// Catalog is an ordered list of aspect definitions.
//
// Order is significant.  When the orb windows of two entries overlap, a
// distance falling in both matches the entry listed first, not the entry
// with the closer angle.  Reordering a catalog can therefore change
// matching results.
type Catalog []Definition

// Override retunes the orb of a catalog entry for one call.
type Override struct {
	Name string
	Orb  float64
}

// DefaultCatalog returns the standard eleven aspects in ascending angle
// order.  Orbs are zero; they are set by resolving overrides.
func DefaultCatalog() Catalog {
	return Catalog{
		{Name: "conjunction", Angle: 0, Major: true},
		{Name: "semi-sextile", Angle: 30},
		{Name: "semi-square", Angle: 45},
		{Name: "sextile", Angle: 60, Major: true},
		{Name: "quintile", Angle: 72},
		{Name: "square", Angle: 90, Major: true},
		{Name: "trine", Angle: 120, Major: true},
		{Name: "sesquiquadrate", Angle: 135},
		{Name: "biquintile", Angle: 144},
		{Name: "quincunx", Angle: 150},
		{Name: "opposition", Angle: 180, Major: true},
	}
}

// DefaultActiveAspects returns the overrides used when a caller supplies
// none.
func DefaultActiveAspects() []Override {
	return []Override{
		{"conjunction", 10},
		{"opposition", 10},
		{"trine", 8},
		{"sextile", 6},
		{"square", 5},
		{"quintile", 1},
	}
}

// DiscepoloActiveAspects returns the aspects and orbs of Ciro Discepolo's
// affinity scoring.
func DiscepoloActiveAspects() []Override {
	return []Override{
		{"conjunction", 8},
		{"semi-sextile", 2},
		{"semi-square", 2},
		{"sextile", 4},
		{"square", 5},
		{"trine", 7},
		{"sesquiquadrate", 2},
		{"opposition", 8},
	}
}

// Resolve returns the effective catalog for a list of overrides.  Each
// entry of c with an override of the same name is kept, in catalog order,
// with the override's orb.  Entries without an override are dropped.
// The receiver is not modified.
func (c Catalog) Resolve(active []Override) Catalog {
	var r Catalog
	for _, d := range c {
		for _, o := range active {
			if o.Name == d.Name {
				d.Orb = o.Orb
				r = append(r, d)
				break
			}
		}
	}
	return r
}

// Overrides returns the catalog as the list of overrides that resolves to
// it, in catalog order.
func (c Catalog) Overrides() []Override {
	o := make([]Override, len(c))
	for i, d := range c {
		o[i] = Override{d.Name, d.Orb}
	}
	return o
}

func (c Catalog) validate(op string) error {
	for _, d := range c {
		switch {
		case !(d.Angle >= 0) || !finite(d.Angle):
			return inputErr(op, "aspect %q: angle %g must be finite and non-negative", d.Name, d.Angle)
		case !(d.Orb >= 0) || !finite(d.Orb):
			return inputErr(op, "aspect %q: orb %g must be finite and non-negative", d.Name, d.Orb)
		}
	}
	return nil
}

// Result is the outcome of matching two positions against a catalog.
// Found false is the normal "no aspect" outcome; other fields are then
// zero except Distance and Diff.
type Result struct {
	Found    bool
	Index    int // catalog index of the matched entry
	Name     string
	Angle    float64 // angle of the matched entry, as given in the catalog
	Major    bool
	Orb      float64 // |Distance - folded Angle|
	Distance float64 // circular distance, [0,180]
	Diff     float64 // raw |pos1-pos2|, for reporting only
}

// Match finds the first catalog entry whose orb window contains the
// circular distance between pos1 and pos2.
func (c Catalog) Match(pos1, pos2 float64) (r Result, err error) {
	const op = "Match"
	if !validPos(pos1) || !validPos(pos2) {
		return r, inputErr(op, "positions must be in range [0, 360), got %g, %g", pos1, pos2)
	}
	if err = c.validate(op); err != nil {
		return
	}
	return c.match(pos1, pos2), nil
}

// match is Match without validation.
func (c Catalog) match(pos1, pos2 float64) Result {
	d := Distance(pos1, pos2)
	r := Result{Distance: d, Diff: math.Abs(pos1 - pos2)}
	for i, def := range c {
		a := Fold(def.Angle)
		if a-def.Orb <= d && d <= a+def.Orb {
			r.Found = true
			r.Index = i
			r.Name = def.Name
			r.Angle = def.Angle
			r.Major = def.Major
			r.Orb = math.Abs(d - a)
			return r
		}
	}
	return r
}
