// Public domain.

// Package aspect finds and classifies astrological aspects.
//
// An aspect is an angular relationship between two points on the ecliptic,
// such as a conjunction (0°), sextile (60°) or opposition (180°).  Two
// positions form an aspect when their circular distance falls within the
// orb, the allowed deviation, of a catalog entry.
//
// Catalog.Match matches one pair of positions.  Classify decides whether a
// matched aspect is applying, separating or static by projecting both points
// a small step forward in time.  SingleChart and DualChart run both over
// every pair of active points of one chart, or between two charts.
//
// Positions are ecliptic longitudes in degrees, [0,360).  Speeds are degrees
// per day.  Functions of this package do no I/O and hold no state between
// calls; they are safe for concurrent use.
package aspect
