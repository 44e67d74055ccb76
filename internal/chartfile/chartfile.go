// Public domain.

// Package chartfile reads charts from YAML files.
//
// A chart file holds one subject:
//
//	name: Alice
//	active: [Sun, Moon, Ascendant]   # optional
//	points:
//	  - name: Sun
//	    position: 10.25
//	    speed: 0.98                  # optional, degrees per day
//	  - name: Ascendant
//	    kind: axis                   # optional
//	    position: 100.5
//
// Kind is one of planet, axis, lunar-node, other-point.  If omitted it is
// axis for the four chart angles, lunar-node for the nodes, and planet
// otherwise.
package chartfile

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/soniakeys/aspects/aspect"
)

type point struct {
	Name     string       `yaml:"name"`
	Kind     *aspect.Kind `yaml:"kind"`
	Position *float64     `yaml:"position"`
	Speed    *float64     `yaml:"speed"`
}

type chart struct {
	Name   string   `yaml:"name"`
	Active []string `yaml:"active"`
	Points []point  `yaml:"points"`
}

// FormatError reports a chart file that parses as YAML but does not
// describe a chart.
type FormatError struct {
	File string
	Msg  string
}

func (e *FormatError) Error() string {
	if e.File == "" {
		return "chart: " + e.Msg
	}
	return "chart " + e.File + ": " + e.Msg
}

// Read decodes a chart.  Unknown keys are an error.
func Read(r io.Reader) (*aspect.Subject, error) {
	return read(r, "")
}

// Load reads the chart file fn.
func Load(fn string) (*aspect.Subject, error) {
	f, err := os.Open(fn)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return read(f, fn)
}

func read(r io.Reader, fn string) (*aspect.Subject, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var c chart
	if err := dec.Decode(&c); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &FormatError{fn, "empty file"}
		}
		if fn != "" {
			return nil, fmt.Errorf("chart %s: %w", fn, err)
		}
		return nil, err
	}
	fail := func(format string, a ...interface{}) (*aspect.Subject, error) {
		return nil, &FormatError{fn, fmt.Sprintf(format, a...)}
	}
	if c.Name == "" {
		return fail("missing name")
	}
	if len(c.Points) == 0 {
		return fail("no points")
	}
	s := &aspect.Subject{Name: c.Name, Active: c.Active}
	seen := map[string]bool{}
	for i, p := range c.Points {
		switch {
		case p.Name == "":
			return fail("point %d: missing name", i+1)
		case seen[p.Name]:
			return fail("point %s: listed twice", p.Name)
		case p.Position == nil:
			return fail("point %s: missing position", p.Name)
		case !(*p.Position >= 0 && *p.Position < 360):
			return fail("point %s: position %g not in range [0, 360)", p.Name, *p.Position)
		}
		seen[p.Name] = true
		k := aspect.DefaultKind(p.Name)
		if p.Kind != nil {
			k = *p.Kind
		}
		s.Points = append(s.Points, aspect.Point{
			Name:     p.Name,
			Position: *p.Position,
			Speed:    p.Speed,
			Kind:     k,
		})
	}
	for _, n := range c.Active {
		if !seen[n] {
			return fail("active point %s: not listed in points", n)
		}
	}
	return s, nil
}
