/*
Command aspects finds the astrological aspects within a chart, between two
charts, or between a chart and the sky over a range of days.

Contents

Version 1.0

  Program overview
  Installing
  Command line usage
  Configuring file locations
  File formats
  Algorithm outline


Program overview

Input is one or two YAML chart files listing the ecliptic longitudes of the
points of a chart, and optionally their daily speeds.  Output is one line
per aspect found: the two points and their positions, the aspect, its orb,
and whether the aspect is applying, separating, or static.

Sample run:

Here is a chart with just a few points,

  name: Alice
  points:
    - name: Sun
      position: 10
      speed: 1
    - name: Moon
      position: 70.5
      speed: 13
    - name: Ascendant
      position: 100.5

You put it in a file, say alice.yaml, then type "aspects alice.yaml" and
get output like this:

  aspects version 1.0 Go source.
  Alice
  Point            Position   Point            Position   Aspect         Orb      Movement
  Sun              10°00′00″  Moon             70°30′00″  sextile        0°30′00″  Separating
  Sun              10°00′00″  Ascendant        100°30′00″ square         0°30′00″  Applying

The Sun and Moon are half a degree past an exact sextile and moving apart.
The Sun is half a degree short of squaring the ascendant and the aspect is
applying.  The Moon and ascendant, 30° apart, form no aspect of the default
set.

Installing

You need Go installed.  Then type

  go install github.com/soniakeys/aspects@latest

Command line usage

Invoking the program without command line arguments gives a usage message:

  Usage: aspects [options] <chart>                    aspects within chart
         aspects [options] <chart> <chart>            aspects between charts
         aspects [options] -t <start>,<days> <chart>  transits to chart
         aspects -h                                   display help and quick reference
         aspects -v                                   display version and copyright

  Options:
         -c <config-file>
         -p <path>
         -d                                           debug logging to stderr

The help information lists a quick reference to config keywords and
aspects.

With -t, the second chart is the sky, computed for each day from start
through start+days.  Start is a date yyyy-mm-dd, a Julian day number, or
"now".  The sky holds the Sun, the Moon, and the mean lunar nodes.  Each
output line is prefixed with the UTC date and time.

The -d option logs progress of transit computations to stderr.

Configuring file locations

An optional configuration file is read from aspects.config in the
directory of the executable.  The -p option specifies a different
directory, -c a different file.  A configuration file is required to be
present if -c is used.

File formats

Chart files are YAML.  A chart has a name, a list of points, and optionally
a list of active point names.  If the active list is omitted all points are
active.  Each point has a name and a position in degrees, [0,360), and
optionally a speed in degrees per day and a kind: planet, axis, lunar-node,
or other-point.  Kind defaults to axis for Ascendant, Descendant,
Medium_Coeli, and Imum_Coeli, to lunar-node for True_Node, True_South_Node,
Mean_Node, and Mean_South_Node, and to planet otherwise.

The configuration file is a text file of keywords, one per line.  Lines
starting with # are comments.

Allowable keywords:

  headings
  noheadings
  dms
  decimal
  movement
  nomovement
  all
  relevant
  strictspeed
  discepolo
  noaxisorb
  axisorb = <degrees>
  orb <aspect> = <degrees>
  point <name>
  step = <days>
  workers = <n>

Headings and the movement column can be turned off.  Dms and decimal select
the format of positions and orbs.

Relevant, the default, lists aspects of a single chart less those involving
an axis point with an orb of the axis orb limit or more.  The limit is one
degree by default, set by axisorb, and removed by noaxisorb or
axisorb = 0.  All lists
every aspect found.  Between two charts the limit does not apply.

Orb lines select the aspects to find and their orbs.  Without them the
default aspects are conjunction and opposition with orbs of 10°, trine 8°,
sextile 6°, square 5°, and quintile 1°.  Discepolo selects instead the
aspects and orbs used by Ciro Discepolo.  Point lines restrict the points
considered.

A point without a speed is normally classified as if stationary.
Strictspeed makes that an error.

Step sets the interval of transit computations, one day by default.
Workers sets the number of days computed concurrently, zero, the default,
meaning one per processor.

Algorithm outline

1.  The circular distance between two positions is the absolute difference
of longitudes, taken the short way around the circle, [0,180].

2.  Aspect angles are folded to [0,180] likewise.  An aspect is found when
the distance lies within the orb of an aspect angle, inclusive.  Aspects
are tried in catalog order, by ascending angle, and the first match wins.

3.  Movement is determined by advancing both points by their speeds over a
thousandth of a day.  If the orb grows the aspect is separating, if it
shrinks, applying.  Points of equal speed, or an orb change under a
millionth of a degree, give static.  Aspects between two axis points are
reported as fixed.

4.  Within one chart, pairs always in opposition are skipped: ascendant
and descendant, midheaven and imum coeli, and the north and south nodes.

-------------
Public domain.
*/
package main
