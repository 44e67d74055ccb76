// Public domain.

package asprog

import (
	"context"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	sexa "github.com/soniakeys/sexagesimal"
	"github.com/soniakeys/unit"

	"github.com/soniakeys/aspects/aspect"
	"github.com/soniakeys/aspects/internal/transit"
)

const dateFormat = "2006-01-02 15:04"

type report struct {
	w   io.Writer
	cfg *config
}

func (r *report) single(s *aspect.Subject) error {
	cs, err := aspect.SingleChart(s, r.cfg.opt)
	if err != nil {
		return err
	}
	r.printHeadings(s.Name, false)
	r.printMatches("", r.pick(cs.All, cs.Aspects))
	return nil
}

func (r *report) dual(a, b *aspect.Subject) error {
	cs, err := aspect.DualChart(a, b, r.cfg.opt)
	if err != nil {
		return err
	}
	r.printHeadings(a.Name+" / "+b.Name, false)
	r.printMatches("", r.pick(cs.All, cs.Aspects))
	return nil
}

// transit prints aspects as each moment of the sweep becomes available.
func (r *report) transit(ctx context.Context, s *transit.Sweep, rng transit.Range) error {
	r.printHeadings("Transits to "+s.Natal.Name, true)
	return s.Run(ctx, rng, func(m transit.Moment) error {
		r.printMatches(m.Time.Format(dateFormat)+"  ", m.Aspects)
		return nil
	})
}

func (r *report) pick(all, relevant []aspect.Match) []aspect.Match {
	if r.cfg.all {
		return all
	}
	return relevant
}

func (r *report) printHeadings(title string, dated bool) {
	if !r.cfg.headings {
		return
	}
	fmt.Fprintln(r.w, versionString)
	fmt.Fprintln(r.w, title)
	var h string
	if dated {
		h = fmt.Sprintf("%-*s  ", len(dateFormat), "Date (UTC)")
	}
	pw := utf8.RuneCountInString(r.pos(0))
	h += fmt.Sprintf("%-16s %-*s  %-16s %-*s  %-14s %s",
		"Point", pw, "Position", "Point", pw, "Position", "Aspect", "Orb")
	if r.cfg.movement {
		h += fmt.Sprintf("%*s", utf8.RuneCountInString(r.orb(0))-len("Orb")+2, "")
		h += "Movement"
	}
	fmt.Fprintln(r.w, h)
}

func (r *report) printMatches(prefix string, ms []aspect.Match) {
	for i := range ms {
		fmt.Fprintln(r.w, prefix+r.line(&ms[i]))
	}
}

func (r *report) line(m *aspect.Match) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-16s %s  %-16s %s  %-14s %s",
		m.P1Name, r.pos(m.P1Position), m.P2Name, r.pos(m.P2Position),
		m.Aspect, r.orb(m.Orb))
	if r.cfg.movement {
		fmt.Fprintf(&b, "  %s", m.Movement)
	}
	return b.String()
}

// pos formats an ecliptic longitude.
func (r *report) pos(d float64) string {
	if r.cfg.dms {
		return fmt.Sprintf("%.0s", sexa.FmtAngle(unit.AngleFromDeg(d)))
	}
	return fmt.Sprintf("%8.4f", d)
}

func (r *report) orb(d float64) string {
	if r.cfg.dms {
		return fmt.Sprintf("%.0s", sexa.FmtAngle(unit.AngleFromDeg(d)))
	}
	return fmt.Sprintf("%5.2f", d)
}
