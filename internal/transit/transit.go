// Public domain.

// Package transit computes aspects from a moving sky to a fixed chart over
// a range of days.
package transit

import (
	"context"
	"errors"
	"fmt"
	"math"
	"runtime"
	"time"

	"go.uber.org/zap"

	"github.com/soniakeys/meeus/v3/julian"

	"github.com/soniakeys/aspects/aspect"
)

// Ephemeris supplies the transiting chart at a Julian day.
type Ephemeris interface {
	Subject(jd float64) (*aspect.Subject, error)
}

// Range is a span of Julian days sampled every Step days.  The first
// sample is at Start, the last at or before Start+Days.
type Range struct {
	Start, Days, Step float64
}

// ErrRange reports an unusable Range.
var ErrRange = errors.New("transit: invalid range")

// MaxSteps limits the number of samples in a Range.
const MaxSteps = 1e6

// Steps returns the number of samples in r.
func (r Range) Steps() (int, error) {
	switch {
	case !(r.Step > 0):
		return 0, fmt.Errorf("%w: step %g must be positive", ErrRange, r.Step)
	case !(r.Days >= 0):
		return 0, fmt.Errorf("%w: days %g must be non-negative", ErrRange, r.Days)
	case math.IsInf(r.Start, 0) || math.IsNaN(r.Start):
		return 0, fmt.Errorf("%w: start %g", ErrRange, r.Start)
	}
	// the small allowance keeps Days an exact multiple of Step inclusive
	n := math.Floor(r.Days/r.Step+1e-9) + 1
	if n > MaxSteps {
		return 0, fmt.Errorf("%w: %.0f steps exceeds %d", ErrRange, n, int(MaxSteps))
	}
	return int(n), nil
}

// JD returns the Julian day of sample i.
func (r Range) JD(i int) float64 { return r.Start + float64(i)*r.Step }

// Moment is the result at one sample.
type Moment struct {
	JD      float64
	Time    time.Time // UTC
	Aspects []aspect.Match
}

// Sweep holds the parameters of a transit computation.
type Sweep struct {
	Natal     *aspect.Subject
	Ephemeris Ephemeris
	// Options for each dual chart aggregation, transiting chart first.
	Options *aspect.Options
	// Workers computing samples concurrently.  Zero means GOMAXPROCS.
	Workers int
	// Log receives progress at debug level.  Nil means no logging.
	Log *zap.Logger
}

type sample struct {
	jd  float64
	rch chan result
}

type result struct {
	m   Moment
	err error
}

// Run computes every sample of r and passes the results to emit in time
// order.  Samples are computed concurrently but emit is called from the
// calling goroutine only.  Run stops at the first error, from computing a
// sample, from emit, or from ctx.
func (s *Sweep) Run(ctx context.Context, r Range, emit func(Moment) error) error {
	n, err := r.Steps()
	if err != nil {
		return err
	}
	if s.Natal == nil || s.Ephemeris == nil {
		return errors.New("transit: sweep needs a natal chart and an ephemeris")
	}
	log := s.Log
	if log == nil {
		log = zap.NewNop()
	}
	maxWorkers := s.Workers
	if maxWorkers <= 0 {
		maxWorkers = runtime.GOMAXPROCS(0)
	}
	if maxWorkers > n {
		maxWorkers = n
	}
	log.Debug("transit sweep",
		zap.String("natal", s.Natal.Name),
		zap.Float64("start", r.Start),
		zap.Int("steps", n),
		zap.Int("workers", maxWorkers))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// prCh keeps results in submission order.  It is buffered so a fast
	// worker can drop off its result without waiting on a slow one ahead
	// of it.
	prCh := make(chan chan result, maxWorkers*2)
	sampleCh := make(chan *sample)

	// dispatcher.  each sample carries a return channel that works as a
	// ticket for picking up its result.
	go func() {
		defer close(prCh)
		defer close(sampleCh)
		for i := 0; i < n; i++ {
			sm := &sample{r.JD(i), make(chan result, 1)}
			select {
			case sampleCh <- sm:
			case <-ctx.Done():
				return
			}
			select {
			case prCh <- sm.rch:
			case <-ctx.Done():
				return
			}
		}
	}()

	for w := 0; w < maxWorkers; w++ {
		go func() {
			for sm := range sampleCh {
				m, err := s.moment(ctx, sm.jd)
				sm.rch <- result{m, err} // buffered
			}
		}()
	}

	done := 0
	for rch := range prCh {
		if err := ctx.Err(); err != nil {
			return err
		}
		var res result
		select {
		case res = <-rch:
		case <-ctx.Done():
			return ctx.Err()
		}
		if res.err != nil {
			return res.err
		}
		if err := emit(res.m); err != nil {
			return err
		}
		done++
	}
	if done < n {
		return ctx.Err()
	}
	log.Debug("transit sweep done", zap.Int("steps", done))
	return nil
}

// Collect runs the sweep and returns all moments.
func (s *Sweep) Collect(ctx context.Context, r Range) ([]Moment, error) {
	var ms []Moment
	err := s.Run(ctx, r, func(m Moment) error {
		ms = append(ms, m)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ms, nil
}

func (s *Sweep) moment(ctx context.Context, jd float64) (Moment, error) {
	if err := ctx.Err(); err != nil {
		return Moment{}, err
	}
	sky, err := s.Ephemeris.Subject(jd)
	if err != nil {
		return Moment{}, fmt.Errorf("transit: JD %.5f: %w", jd, err)
	}
	cs, err := aspect.DualChart(sky, s.Natal, s.Options)
	if err != nil {
		return Moment{}, fmt.Errorf("transit: JD %.5f: %w", jd, err)
	}
	// a float64 Julian day resolves to some tens of microseconds
	t := julian.JDToTime(jd).Round(time.Millisecond)
	return Moment{JD: jd, Time: t, Aspects: cs.Aspects}, nil
}
