// Public domain.

// Package ephem computes chart points from low precision analytical
// theories: the Sun by VSOP87 short series, the Moon by ELP-2000/82
// truncated series, and the mean lunar nodes.
//
// Julian days are taken as ephemeris days.  The difference from universal
// time, about a minute in this era, moves the Moon well under a minute of
// arc, negligible against aspect orbs.
package ephem

import (
	"time"

	"github.com/soniakeys/meeus/v3/base"
	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/meeus/v3/moonposition"
	"github.com/soniakeys/meeus/v3/solar"
	"github.com/soniakeys/unit"

	"github.com/soniakeys/aspects/aspect"
)

// SpeedStep is the half width, in days, of the central difference used
// for point speeds.
const SpeedStep = 1. / 24

type body struct {
	name string
	kind aspect.Kind
	lon  func(jde float64) unit.Angle
}

var bodies = []body{
	{"Sun", aspect.Planet, sun},
	{"Moon", aspect.Planet, moon},
	{aspect.MeanNode, aspect.LunarNode, moonposition.Node},
	{aspect.MeanSouthNode, aspect.LunarNode, southNode},
}

func sun(jde float64) unit.Angle {
	return solar.ApparentLongitude(base.J2000Century(jde))
}

func moon(jde float64) unit.Angle {
	λ, _, _ := moonposition.Position(jde)
	return λ
}

func southNode(jde float64) unit.Angle {
	return moonposition.Node(jde) + unit.AngleFromDeg(180)
}

// Names returns the names of the points computed, in the order returned
// by Points.
func Names() []string {
	n := make([]string, len(bodies))
	for i, b := range bodies {
		n[i] = b.name
	}
	return n
}

// Points returns the points at Julian ephemeris day jde.  Every point has
// a speed.
func Points(jde float64) []aspect.Point {
	p := make([]aspect.Point, len(bodies))
	for i, b := range bodies {
		p[i] = aspect.Point{
			Name:     b.name,
			Position: Longitude(b.lon(jde)),
			Speed:    aspect.Speed(speed(b.lon, jde)),
			Kind:     b.kind,
		}
	}
	return p
}

// Longitude converts an angle to degrees in [0,360).
func Longitude(a unit.Angle) float64 {
	d := unit.PMod(a.Deg(), 360)
	if d >= 360 {
		return 0
	}
	return d
}

// speed is the central difference of lon at jde, degrees per day.
func speed(lon func(float64) unit.Angle, jde float64) float64 {
	d := Longitude(lon(jde+SpeedStep)) - Longitude(lon(jde-SpeedStep))
	switch {
	case d > 180:
		d -= 360
	case d < -180:
		d += 360
	}
	return d / (2 * SpeedStep)
}

// Ephemeris produces subjects from the built in theories.
type Ephemeris struct {
	// Subject name given to each chart, "Transit" if empty.
	Name string
}

// Subject returns the chart at jde.
func (e Ephemeris) Subject(jde float64) (*aspect.Subject, error) {
	n := e.Name
	if n == "" {
		n = "Transit"
	}
	return &aspect.Subject{Name: n, Points: Points(jde)}, nil
}

// JD returns the Julian day of t.
func JD(t time.Time) float64 { return julian.TimeToJD(t) }

// Time returns the UTC time of Julian day jd.
func Time(jd float64) time.Time { return julian.JDToTime(jd) }

// CalendarJD returns the Julian day of a Gregorian calendar date, d
// including the fraction of day.
func CalendarJD(y, m int, d float64) float64 {
	return julian.CalendarGregorianToJD(y, m, d)
}
