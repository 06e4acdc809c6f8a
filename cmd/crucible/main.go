// Command crucible prints the minimum heat loss of a crucible pushed from the
// top-left to the bottom-right of a digit grid.
//
//	crucible -f inputs/17.txt          # classic rules
//	crucible -f inputs/17.txt -p 2     # ultra rules
//	crucible --min 2 --max 5 --png heat.png
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/spf13/pflag"

	"github.com/katalvlaran/crucible/gridgraph"
	"github.com/katalvlaran/crucible/momentum"
	"github.com/katalvlaran/crucible/render"
	"github.com/katalvlaran/crucible/route"
)

var errBadPart = errors.New("part must be 1 or 2")

func main() {
	log.SetFlags(0)
	log.SetPrefix("crucible: ")
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, stdout io.Writer) error {
	var (
		file    string
		part    int
		minRun  int
		maxRun  int
		axes    bool
		png     string
		scale   int
		verbose int
	)

	fs := pflag.NewFlagSet("crucible", pflag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.StringVarP(&file, "file", "f", "inputs/17.txt", "grid of digits, one row per line")
	fs.IntVarP(&part, "part", "p", 1, "1 for classic rules, 2 for ultra rules")
	fs.IntVar(&minRun, "min", -1, "override minimum straight cells before turning or stopping")
	fs.IntVar(&maxRun, "max", -1, "override maximum straight cells (0 = unbounded)")
	fs.BoolVar(&axes, "axes", false, "seed with a right and a down first step, searched in parallel")
	fs.StringVar(&png, "png", "", "write a heatmap of settled costs to this PNG file")
	fs.IntVar(&scale, "scale", 4, "pixels per cell in the heatmap")
	fs.CountVarP(&verbose, "verbose", "v", "log progress (repeat for more)")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}

		return err
	}

	var rules momentum.Rules
	switch part {
	case 1:
		rules = momentum.Classic()
	case 2:
		rules = momentum.Ultra()
	default:
		return fmt.Errorf("%w, got %d", errBadPart, part)
	}
	if minRun >= 0 {
		rules.MinStraight = minRun
	}
	if maxRun >= 0 {
		rules.MaxStraight = maxRun
	}

	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	g, err := gridgraph.Parse(f)
	if err != nil {
		return fmt.Errorf("%s: %w", file, err)
	}
	if verbose > 0 {
		log.Printf("grid %dx%d, rules min=%d max=%d", g.Width, g.Height, rules.MinStraight, rules.MaxStraight)
	}

	opts := []route.Option{route.WithRules(rules)}
	if axes {
		opts = append(opts, route.WithSeeding(route.SeedAxes))
	}
	if png != "" {
		opts = append(opts, route.WithCellCosts())
	}

	start := time.Now()
	res, err := route.MinHeatLoss(g, opts...)
	if err != nil {
		return err
	}
	if verbose > 0 {
		log.Printf("settled %d states in %s", res.Expanded, time.Since(start))
	}

	if res.Found {
		fmt.Fprintln(stdout, res.Cost)
	} else {
		fmt.Fprintln(stdout, "unreachable")
	}

	if png != "" {
		img, err := render.Costs(g, res.CellCosts, scale)
		if err != nil {
			return err
		}
		if err := render.SavePNG(png, img); err != nil {
			return err
		}
		if verbose > 1 {
			log.Printf("heatmap written to %s", png)
		}
	}

	return nil
}
