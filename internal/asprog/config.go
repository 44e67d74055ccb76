// Public domain.

package asprog

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/soniakeys/exit"

	"github.com/soniakeys/aspects/aspect"
)

const configFile = "aspects.config"

// maxOrb is the largest orb accepted from a config file, degrees.
const maxOrb = 30

type config struct {
	headings, dms, movement, all bool
	step                         float64 // transit step, days
	workers                      int
	opt                          *aspect.Options
}

func defaultConfig() *config {
	return &config{
		headings: true,
		dms:      true,
		movement: true,
		step:     1,
		opt:      aspect.DefaultOptions(),
	}
}

// readConfig reads the config file named on the command line, or the
// default config file if present.  Errors terminate the program.
func readConfig(cl *commandLine) *config {
	f, err := os.Open(cl.fixupCP(cl.dc, configFile))
	if err != nil {
		if cl.dc == "" {
			return defaultConfig()
		}
		exit.Log(err)
	}
	defer f.Close()
	c, err := parseConfig(f)
	if err != nil {
		exit.Log(err)
	}
	return c
}

var rxAssign = regexp.MustCompile(`^[ \t]*(.*?)[ \t]*=[ \t]*(.+)$`)

// parseConfig parses config file lines over the defaults.
func parseConfig(r io.Reader) (*config, error) {
	c := defaultConfig()
	var orbs []aspect.Override
	var discepolo bool

	lineErr := func(msg, l string) error {
		return fmt.Errorf("%s\nConfig file line: %s", msg, l)
	}
	// parseAssign parses s as "key = value", returning key and the value
	// as a float.
	parseAssign := func(s string) (string, float64, string) {
		ss := rxAssign.FindStringSubmatch(s)
		if len(ss) != 3 {
			return "", 0, "Invalid format, expected <key> = <value>."
		}
		v, err := strconv.ParseFloat(ss[2], 64)
		if err != nil {
			return "", 0, err.Error()
		}
		return ss[1], v, ""
	}

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		ls := strings.TrimSpace(sc.Text())
		if ls == "" || ls[0] == '#' {
			continue
		}
		switch ls {
		case "headings":
			c.headings = true
			continue
		case "noheadings":
			c.headings = false
			continue
		case "dms":
			c.dms = true
			continue
		case "decimal":
			c.dms = false
			continue
		case "movement":
			c.movement = true
			continue
		case "nomovement":
			c.movement = false
			continue
		case "all":
			c.all = true
			continue
		case "relevant":
			c.all = false
			continue
		case "strictspeed":
			c.opt.SpeedPolicy = aspect.RequireSpeed
			continue
		case "discepolo":
			discepolo = true
			continue
		case "noaxisorb":
			c.opt.NoAxisOrbLimit = true
			continue
		}
		switch {
		case strings.HasPrefix(ls, "axisorb"):
			k, v, e := parseAssign(ls[len("axisorb"):])
			switch {
			case e > "":
				return nil, lineErr(e, ls)
			case k != "":
				return nil, lineErr("Unexpected text before =.", ls)
			case v < 0 || v > maxOrb:
				return nil, lineErr(fmt.Sprintf("Axis orb must be in range 0 to %d degrees.", maxOrb), ls)
			}
			c.opt.AxisOrbLimit = v
			c.opt.NoAxisOrbLimit = v == 0
		case strings.HasPrefix(ls, "orb"):
			k, v, e := parseAssign(ls[len("orb"):])
			switch {
			case e > "":
				return nil, lineErr(e, ls)
			case !knownAspect(k):
				return nil, lineErr("Aspect name not recognized.", ls)
			case v < 0 || v > maxOrb:
				return nil, lineErr(fmt.Sprintf("Orb must be in range 0 to %d degrees.", maxOrb), ls)
			}
			orbs = setOrb(orbs, k, v)
		case strings.HasPrefix(ls, "point"):
			n := strings.TrimSpace(ls[len("point"):])
			if _, err := aspect.PointID(n); err != nil {
				return nil, lineErr("Point name not recognized.", ls)
			}
			c.opt.Points = append(c.opt.Points, n)
		case strings.HasPrefix(ls, "step"):
			k, v, e := parseAssign(ls[len("step"):])
			switch {
			case e > "":
				return nil, lineErr(e, ls)
			case k != "":
				return nil, lineErr("Unexpected text before =.", ls)
			case !(v > 0):
				return nil, lineErr("Step must be positive.", ls)
			}
			c.step = v
		case strings.HasPrefix(ls, "workers"):
			k, v, e := parseAssign(ls[len("workers"):])
			switch {
			case e > "":
				return nil, lineErr(e, ls)
			case k != "":
				return nil, lineErr("Unexpected text before =.", ls)
			case v < 0 || v != float64(int(v)):
				return nil, lineErr("Workers must be a non-negative integer.", ls)
			}
			c.workers = int(v)
		default:
			return nil, errors.New("Unrecognized line in config file: " + ls)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	switch {
	case orbs != nil:
		c.opt.Aspects = orbs
	case discepolo:
		c.opt.Aspects = aspect.DiscepoloActiveAspects()
	}
	return c, nil
}

func knownAspect(name string) bool {
	for _, d := range aspect.DefaultCatalog() {
		if d.Name == name {
			return true
		}
	}
	return false
}

// setOrb replaces or appends the orb for name.
func setOrb(orbs []aspect.Override, name string, orb float64) []aspect.Override {
	for i := range orbs {
		if orbs[i].Name == name {
			orbs[i].Orb = orb
			return orbs
		}
	}
	return append(orbs, aspect.Override{Name: name, Orb: orb})
}
