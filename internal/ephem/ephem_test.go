// Public domain.

package ephem

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soniakeys/unit"

	"github.com/soniakeys/aspects/aspect"
)

func point(t *testing.T, pts []aspect.Point, name string) aspect.Point {
	t.Helper()
	for _, p := range pts {
		if p.Name == name {
			return p
		}
	}
	t.Fatalf("no point %s", name)
	return aspect.Point{}
}

func TestPoints(t *testing.T) {
	// Meeus example 25.a, 1992 October 13.0 TD
	pts := Points(CalendarJD(1992, 10, 13))
	require.Len(t, pts, 4)
	assert.Equal(t, Names(), []string{"Sun", "Moon", "Mean_Node", "Mean_South_Node"})
	sun := point(t, pts, "Sun")
	assert.InDelta(t, 199.90895, sun.Position, .001)
	require.NotNil(t, sun.Speed)
	assert.InDelta(t, .99, *sun.Speed, .03)
	assert.Equal(t, aspect.Planet, sun.Kind)

	// Meeus example 47.a, 1992 April 12.0 TD
	jde := CalendarJD(1992, 4, 12)
	require.InDelta(t, 2448724.5, jde, 1e-9)
	pts = Points(jde)
	moon := point(t, pts, "Moon")
	assert.InDelta(t, 133.162655, moon.Position, 1e-4)
	require.NotNil(t, moon.Speed)
	assert.True(t, *moon.Speed > 11.5 && *moon.Speed < 15.5, "moon speed %g", *moon.Speed)

	n, s := point(t, pts, "Mean_Node"), point(t, pts, "Mean_South_Node")
	assert.Equal(t, aspect.LunarNode, n.Kind)
	assert.InDelta(t, 180, aspect.Distance(n.Position, s.Position), 1e-9)
	// mean node regresses about 19.34° per year
	assert.InDelta(t, -.05295, *n.Speed, 1e-4)
	assert.InDelta(t, *n.Speed, *s.Speed, 1e-9)

	for _, p := range pts {
		assert.True(t, p.Position >= 0 && p.Position < 360, "%s %g", p.Name, p.Position)
	}
}

func TestLongitude(t *testing.T) {
	for _, c := range []struct{ in, want float64 }{
		{0, 0},
		{-10, 350},
		{370, 10},
		{720, 0},
		{359.5, 359.5},
	} {
		assert.InDelta(t, c.want, Longitude(unit.AngleFromDeg(c.in)), 1e-9, "in %g", c.in)
	}
}

func TestSpeedAcrossZero(t *testing.T) {
	// longitude crossing 0 while moving one degree per day, either way
	fwd := func(jde float64) unit.Angle { return unit.AngleFromDeg(jde - .02) }
	assert.InDelta(t, 1, speed(fwd, 0), 1e-9)
	rev := func(jde float64) unit.Angle { return unit.AngleFromDeg(.02 - jde) }
	assert.InDelta(t, -1, speed(rev, 0), 1e-9)
}

func TestEphemerisSubject(t *testing.T) {
	s, err := Ephemeris{}.Subject(2451545)
	require.NoError(t, err)
	assert.Equal(t, "Transit", s.Name)
	assert.Equal(t, Names(), s.ActivePoints())

	s, err = Ephemeris{Name: "Sky"}.Subject(2451545)
	require.NoError(t, err)
	assert.Equal(t, "Sky", s.Name)
}

func TestTime(t *testing.T) {
	j2000 := time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC)
	assert.InDelta(t, 2451545., JD(j2000), 1e-8)
	got := Time(2451545)
	assert.True(t, math.Abs(got.Sub(j2000).Seconds()) < 1e-3, "got %v", got)
}
