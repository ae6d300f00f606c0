// Command sri-yantra renders a Sri Yantra to an SVG or PNG file.
//
//	sri-yantra -radius 100 -out output/yantra.svg
//	sri-yantra -format png -size 1024 -leaves 16 -out output/yantra.png
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/jbeda/geom"
	"github.com/pkg/errors"

	"sri-yantra/render"
	"sri-yantra/shapes"
	"sri-yantra/yantra"
)

// Tunable constants for output
const (
	VIEWBOX_MARGIN   = 0.05
	LEAF_SIZE        = 0.12
	LEAF_SCALE       = 0.9
	LEAF_CONTROL     = 0.06
	POINT_RADIUS     = 0.01
	STROKE_PER_UNIT  = 0.01
	BOUNDING_STROKE  = "black"
	BOUNDING_FILL    = "yellow"
	LEAF_FILL        = "green"
	DEFAULT_PNG_SIZE = 1024
)

type config struct {
	radius  float64
	params  []yantra.Option
	format  string
	size    int
	out     string
	points  bool
	leaves  int
	verbose bool
}

func parseFlags(args []string, stderr io.Writer) (*config, error) {
	fs := flag.NewFlagSet("sri-yantra", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cfg := &config{}
	fs.Float64Var(&cfg.radius, "radius", 100, "radius of the bounding circle")
	a := fs.Float64("a", 0, "tip of the second up triangle, measured down from the top")
	c := fs.Float64("c", 0, "base of the first down triangle, measured down from the top")
	f := fs.Float64("f", 0, "base of the third up triangle, measured down from the top")
	g := fs.Float64("g", 0, "base of the first up triangle, measured down from the top")
	i := fs.Float64("i", 0, "tip of the second down triangle, measured down from the top")
	fs.StringVar(&cfg.format, "format", "", "svg or png (default from the -out extension)")
	fs.IntVar(&cfg.size, "size", DEFAULT_PNG_SIZE, "png width and height in pixels")
	fs.StringVar(&cfg.out, "out", "output/sri_yantra.svg", "output file")
	fs.BoolVar(&cfg.points, "points", false, "draw the constructed points instead of the paths")
	fs.IntVar(&cfg.leaves, "leaves", 0, "ring the circle with this many leaves")
	fs.BoolVar(&cfg.verbose, "v", false, "log construction to stderr")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	// Parameters left unset keep their defaults.
	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "a":
			cfg.params = append(cfg.params, yantra.WithA(*a))
		case "c":
			cfg.params = append(cfg.params, yantra.WithC(*c))
		case "f":
			cfg.params = append(cfg.params, yantra.WithF(*f))
		case "g":
			cfg.params = append(cfg.params, yantra.WithG(*g))
		case "i":
			cfg.params = append(cfg.params, yantra.WithI(*i))
		}
	})

	if cfg.format == "" {
		cfg.format = "svg"
		if filepath.Ext(cfg.out) == ".png" {
			cfg.format = "png"
		}
	}
	if cfg.format != "svg" && cfg.format != "png" {
		return nil, errors.Errorf("unknown format %q", cfg.format)
	}
	if cfg.size <= 0 {
		return nil, errors.Errorf("size must be positive, got %d", cfg.size)
	}
	return cfg, nil
}

func draw(c render.Canvas, y *yantra.Yantra, cfg *config) error {
	r := y.Radius()
	c.Circle(y.Center(), r, render.Style{
		StrokeWidth: r * STROKE_PER_UNIT,
		StrokeColor: BOUNDING_STROKE,
		FillColor:   BOUNDING_FILL,
	})

	if cfg.leaves > 0 {
		leaves, err := shapes.CircularLeaves(r, y.Center(), 90, cfg.leaves, 1, shapes.LeafStyle{
			Kind:  shapes.Reniform,
			Size:  r * LEAF_SIZE,
			Scale: LEAF_SCALE,
			C:     r * LEAF_CONTROL,
			D:     r * LEAF_CONTROL,
		})
		if err != nil {
			return err
		}
		render.DrawLeaves(c, leaves, render.Style{
			StrokeWidth: r * STROKE_PER_UNIT,
			StrokeColor: BOUNDING_STROKE,
			FillColor:   LEAF_FILL,
		})
	}

	if cfg.points {
		return render.DrawPoints(c, y, r*POINT_RADIUS, render.Style{FillColor: "black"})
	}
	return render.DrawSriYantra(c, y, render.DefaultStyles(r))
}

func writeSVG(path string, viewBox geom.Rect, y *yantra.Yantra, cfg *config) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating output file")
	}
	c := render.NewSVG(file, viewBox)
	if err := draw(c, y, cfg); err != nil {
		file.Close()
		return err
	}
	c.Close()
	if err := file.Sync(); err != nil {
		file.Close()
		return errors.Wrapf(err, "writing %s", path)
	}
	return errors.Wrapf(file.Close(), "closing %s", path)
}

func run(cfg *config) error {
	if cfg.verbose {
		yantra.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	y := yantra.New(cfg.radius, geom.Coord{}, cfg.params...)
	if err := y.Construct(); err != nil {
		return err
	}

	margin := VIEWBOX_MARGIN
	if cfg.leaves > 0 {
		margin += LEAF_SIZE
	}
	viewBox := render.ViewBox(y.Circle(), margin)

	// Ensure the output directory exists
	if err := os.MkdirAll(filepath.Dir(cfg.out), 0755); err != nil {
		return errors.Wrap(err, "creating output directory")
	}

	switch cfg.format {
	case "png":
		c := render.NewPNG(cfg.size, viewBox)
		if err := draw(c, y, cfg); err != nil {
			return err
		}
		if err := c.SavePNG(cfg.out); err != nil {
			return err
		}
	default:
		if err := writeSVG(cfg.out, viewBox, y, cfg); err != nil {
			return err
		}
	}

	yantra.Logger().Info("generated", "file", cfg.out, "format", cfg.format)
	return nil
}

func main() {
	cfg, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "sri-yantra: %v\n", err)
		os.Exit(2)
	}
	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "sri-yantra: %v\n", err)
		os.Exit(1)
	}
}
