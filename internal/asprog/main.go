// Public domain.

// Package asprog implements the aspects command.
package asprog

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/soniakeys/exit"

	"github.com/soniakeys/aspects/aspect"
	"github.com/soniakeys/aspects/internal/chartfile"
	"github.com/soniakeys/aspects/internal/ephem"
	"github.com/soniakeys/aspects/internal/transit"
)

const versionString = "aspects version 1.0 Go source."
const copyrightString = "Public domain."

func Main() {
	defer exit.Handler()

	// these functions all set up program state and terminate on error
	cl := parseCommandLine()
	cfg := readConfig(cl)
	log := newLogger(cl.d)
	defer log.Sync()

	charts := make([]*aspect.Subject, len(cl.fnCharts))
	for i, fn := range cl.fnCharts {
		s, err := chartfile.Load(fn)
		if err != nil {
			exit.Log(err)
		}
		log.Debug("chart loaded",
			zap.String("file", fn),
			zap.String("name", s.Name),
			zap.Int("points", len(s.Points)))
		charts[i] = s
	}

	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()
	rep := &report{w: w, cfg: cfg}
	var err error
	switch {
	case cl.transit != nil:
		r := *cl.transit
		r.Step = cfg.step
		err = rep.transit(context.Background(), &transit.Sweep{
			Natal:     charts[0],
			Ephemeris: ephem.Ephemeris{},
			Options:   cfg.opt,
			Workers:   cfg.workers,
			Log:       log,
		}, r)
	case len(charts) == 1:
		err = rep.single(charts[0])
	default:
		err = rep.dual(charts[0], charts[1])
	}
	if err != nil {
		w.Flush()
		exit.Log(err)
	}
}

func newLogger(debug bool) *zap.Logger {
	if !debug {
		return zap.NewNop()
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	l, err := cfg.Build()
	if err != nil {
		exit.Log(err)
	}
	return l
}

type commandLine struct {
	dc       string // config file
	dp       string // default path
	d        bool   // -d option
	transit  *transit.Range
	fnCharts []string
}

func parseCommandLine() *commandLine {
	// config file default is alongside the executable.
	var cl commandLine
	exe, exeErr := os.Executable()
	if exeErr == nil {
		cl.dp = filepath.Dir(exe)
	}
	dh := flag.Bool("h", false, "")
	dv := flag.Bool("v", false, "")
	flag.BoolVar(&cl.d, "d", false, "")
	flag.StringVar(&cl.dc, "c", "", "")
	flag.StringVar(&cl.dp, "p", cl.dp, "")
	dt := flag.String("t", "", "")
	flag.Usage = func() {
		os.Stderr.WriteString(`
Usage: aspects [options] <chart>                  aspects within chart
       aspects [options] <chart> <chart>          aspects between charts
       aspects [options] -t <start>,<days> <chart>  transits to chart
       aspects -h                                 display help and quick reference
       aspects -v                                 display version and copyright

Options:
       -c <config-file>
       -p <path>
       -d                                         debug logging to stderr
`)
		if exeErr == nil {
			os.Stderr.WriteString(`
Default:
       -p=` + cl.dp + "\n")
		}
	}
	flag.Parse()
	switch {
	case *dh:
		printHelp()
		os.Exit(0)
	case *dv:
		fmt.Println(versionString)
		fmt.Println(copyrightString)
		os.Exit(0)
	case *dt != "":
		r, err := parseTransit(*dt, time.Now)
		if err != nil {
			exit.Log(err)
		}
		cl.transit = &r
		if flag.NArg() != 1 {
			flag.Usage()
			os.Exit(1)
		}
	case flag.NArg() < 1 || flag.NArg() > 2:
		flag.Usage()
		os.Exit(1)
	}
	cl.fnCharts = flag.Args()
	return &cl
}

// parseTransit parses the -t argument, <start>,<days>.  Start is a date
// yyyy-mm-dd, a Julian day, or "now".  The step is set later from config.
func parseTransit(s string, now func() time.Time) (r transit.Range, err error) {
	f := strings.Split(s, ",")
	if len(f) != 2 {
		return r, fmt.Errorf("Invalid -t %q, expected <start>,<days>.", s)
	}
	start := strings.TrimSpace(f[0])
	switch {
	case start == "now":
		r.Start = ephem.JD(now())
	case len(start) == 10 && start[4] == '-':
		t, err := time.Parse("2006-01-02", start)
		if err != nil {
			return r, fmt.Errorf("Invalid -t start date: %v", err)
		}
		r.Start = ephem.JD(t)
	default:
		if r.Start, err = strconv.ParseFloat(start, 64); err != nil {
			return r, fmt.Errorf("Invalid -t start: %v", err)
		}
	}
	if r.Days, err = strconv.ParseFloat(strings.TrimSpace(f[1]), 64); err != nil {
		return r, fmt.Errorf("Invalid -t days: %v", err)
	}
	if r.Days < 0 {
		return r, fmt.Errorf("Invalid -t days: %g is negative.", r.Days)
	}
	return r, nil
}

func (cl *commandLine) fixupCP(fnSpec, fnDefault string) string {
	if fnSpec > "" {
		return fnSpec
	}
	return filepath.Join(cl.dp, fnDefault)
}

func printHelp() {
	fmt.Println(`
Aspects finds the angular relationships between the points of an
astrological chart, or between the points of two charts, or between a
chart and the sky over a range of days.  Input is a YAML chart file.
Output is one line per aspect: the two points with their positions, the
aspect, its orb, and whether it is applying or separating.

Config file keywords:
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

Aspects:`)
	for _, d := range aspect.DefaultCatalog() {
		fmt.Printf("   %-15s %3.0f\n", d.Name, d.Angle)
	}
	fmt.Println(`
For full documentation:
   go doc github.com/soniakeys/aspects`)
}
