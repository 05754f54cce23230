package main

import (
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"
	"honnef.co/go/tess"
)

// Config describes a triangulation job.
//
//	tolerance: 1e-10
//	margin: 20
//	boundary:
//	  - circle: {center: [0, 0], radius: 1, samples: 32}
//	interior:
//	  - grid: {min: [-0.5, -0.5], max: [0.5, 0.5], step: 0.1}
//	  - points: [[0.1, 0.2], [0.3, -0.1]]
type Config struct {
	Tolerance float64  `yaml:"tolerance"`
	Margin    float64  `yaml:"margin"`
	Boundary  []Source `yaml:"boundary"`
	Interior  []Source `yaml:"interior"`
}

// Source produces points. Exactly one of its fields must be set.
type Source struct {
	Points   [][]float64     `yaml:"points"`
	Circle   *CircleSource   `yaml:"circle"`
	Polyline *PolylineSource `yaml:"polyline"`
	Grid     *GridSource     `yaml:"grid"`
}

type CircleSource struct {
	Center  []float64 `yaml:"center"`
	Radius  float64   `yaml:"radius"`
	Samples int       `yaml:"samples"`
}

// PolylineSource is sampled uniformly by arc length if Samples is set, and
// used as is otherwise.
type PolylineSource struct {
	Points  [][]float64 `yaml:"points"`
	Closed  bool        `yaml:"closed"`
	Samples int         `yaml:"samples"`
}

// GridSource is a regular grid from Min to Max, inclusive.
type GridSource struct {
	Min  []float64 `yaml:"min"`
	Max  []float64 `yaml:"max"`
	Step float64   `yaml:"step"`
}

func loadConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	cfg, err := parseConfig(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func parseConfig(r io.Reader) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return nil, err
	}
	if len(cfg.Boundary) == 0 {
		return nil, fmt.Errorf("no boundary sources")
	}
	return &cfg, nil
}

func (cfg *Config) Options() *tess.Options {
	return &tess.Options{
		Tolerance:      cfg.Tolerance,
		ScaffoldMargin: cfg.Margin,
	}
}

func collect(srcs []Source) ([]tess.Point, error) {
	var out []tess.Point
	for i, src := range srcs {
		pts, err := src.points()
		if err != nil {
			return nil, fmt.Errorf("source %d: %w", i, err)
		}
		out = append(out, pts...)
	}
	return out, nil
}

func (src Source) points() ([]tess.Point, error) {
	n := 0
	for _, set := range []bool{src.Points != nil, src.Circle != nil, src.Polyline != nil, src.Grid != nil} {
		if set {
			n++
		}
	}
	if n != 1 {
		return nil, fmt.Errorf("want exactly one of points, circle, polyline and grid, got %d", n)
	}

	switch {
	case src.Points != nil:
		return toPoints(src.Points)
	case src.Circle != nil:
		c := src.Circle
		center, err := toPoint(c.Center)
		if err != nil {
			return nil, fmt.Errorf("circle center: %w", err)
		}
		if c.Samples < 3 {
			return nil, fmt.Errorf("circle needs at least 3 samples, got %d", c.Samples)
		}
		return tess.Sample(tess.Circle{Center: center, Radius: c.Radius}, c.Samples, true), nil
	case src.Polyline != nil:
		pl := src.Polyline
		pts, err := toPoints(pl.Points)
		if err != nil {
			return nil, err
		}
		if pl.Samples <= 0 {
			return pts, nil
		}
		curve := tess.Polyline{Points: pts, Closed: pl.Closed}
		return tess.SampleArclen(curve, pl.Samples, pl.Closed, tess.DefaultAccuracy), nil
	default:
		g := src.Grid
		lo, err := toPoint(g.Min)
		if err != nil {
			return nil, fmt.Errorf("grid min: %w", err)
		}
		hi, err := toPoint(g.Max)
		if err != nil {
			return nil, fmt.Errorf("grid max: %w", err)
		}
		if !(g.Step > 0) {
			return nil, fmt.Errorf("grid step must be positive, got %g", g.Step)
		}
		// Count steps instead of accumulating them so that rounding can't
		// drop the last row or column.
		nx := int(math.Floor((hi.X-lo.X)/g.Step+1e-9)) + 1
		ny := int(math.Floor((hi.Y-lo.Y)/g.Step+1e-9)) + 1
		var out []tess.Point
		for j := range max(ny, 0) {
			for i := range max(nx, 0) {
				out = append(out, tess.Pt(lo.X+float64(i)*g.Step, lo.Y+float64(j)*g.Step))
			}
		}
		return out, nil
	}
}

func toPoints(coords [][]float64) ([]tess.Point, error) {
	out := make([]tess.Point, len(coords))
	for i, c := range coords {
		p, err := toPoint(c)
		if err != nil {
			return nil, fmt.Errorf("point %d: %w", i, err)
		}
		out[i] = p
	}
	return out, nil
}

func toPoint(c []float64) (tess.Point, error) {
	if len(c) != 2 {
		return tess.Point{}, fmt.Errorf("want 2 coordinates, got %d", len(c))
	}
	return tess.Pt(c[0], c[1]), nil
}
