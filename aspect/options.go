// Public domain.

package aspect

// SpeedPolicy selects what the aggregators do with a point lacking a speed.
type SpeedPolicy int

const (
	// ZeroMissingSpeed classifies movement as if the point were
	// stationary.
	ZeroMissingSpeed SpeedPolicy = iota
	// RequireSpeed fails the aggregation with an *InputError, as
	// Classify does.
	RequireSpeed
)

// DefaultAxisOrbLimit is the axis orb limit of DefaultOptions, degrees.
const DefaultAxisOrbLimit = 1.

// Options configure one aggregation call.  A nil *Options means
// DefaultOptions.  Zero valued fields take the defaults listed.
type Options struct {
	// Points requested active.  Empty means the subject's own set.
	Points []string
	// Catalog of aspect definitions.  Nil means DefaultCatalog.
	Catalog Catalog
	// Aspects active for the call, resolved onto Catalog.  Nil means
	// DefaultActiveAspects.  An empty non-nil list activates nothing.
	Aspects []Override
	// AxisOrbLimit drops single chart aspects involving an axis point
	// whose orb is not below the limit.  Zero means DefaultAxisOrbLimit.
	// Dual chart aggregation ignores it.
	AxisOrbLimit float64
	// NoAxisOrbLimit keeps every single chart aspect.
	NoAxisOrbLimit bool
	SpeedPolicy    SpeedPolicy
	// PointIDs maps point names to report IDs.  Nil means PointIDs().
	PointIDs map[string]int
}

// DefaultOptions returns the options used for a nil *Options.
func DefaultOptions() *Options {
	return &Options{AxisOrbLimit: DefaultAxisOrbLimit}
}

// engine holds the per call resolution of Options.
type engine struct {
	axisLimit float64 // 0 for no filter
	aspects   []Override
	cat       Catalog
	ids       idTable
	policy    SpeedPolicy
}

func newEngine(op string, opt *Options) (*engine, error) {
	e := &engine{
		aspects: opt.Aspects,
		cat:     opt.Catalog,
		ids:     opt.PointIDs,
		policy:  opt.SpeedPolicy,
	}
	if e.aspects == nil {
		e.aspects = DefaultActiveAspects()
	}
	if e.cat == nil {
		e.cat = DefaultCatalog()
	}
	if e.ids == nil {
		e.ids = PointIDs()
	}
	switch {
	case opt.NoAxisOrbLimit:
	case opt.AxisOrbLimit == 0:
		e.axisLimit = DefaultAxisOrbLimit
	case opt.AxisOrbLimit > 0 && finite(opt.AxisOrbLimit):
		e.axisLimit = opt.AxisOrbLimit
	default:
		return nil, inputErr(op, "axis orb limit %g must be finite and non-negative", opt.AxisOrbLimit)
	}
	switch e.policy {
	case ZeroMissingSpeed, RequireSpeed:
	default:
		return nil, inputErr(op, "unknown speed policy %d", e.policy)
	}
	e.cat = e.cat.Resolve(e.aspects)
	if err := e.cat.validate(op); err != nil {
		return nil, err
	}
	return e, nil
}

// speed applies the speed policy.
func (e *engine) speed(p *Point) *float64 {
	if p.Speed == nil && e.policy == ZeroMissingSpeed {
		return Speed(0)
	}
	return p.Speed
}
