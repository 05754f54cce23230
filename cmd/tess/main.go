// Command tess triangulates the points described by a YAML file and writes
// the mesh as GeoJSON, a PNG image or YAML buffers.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
	"honnef.co/go/tess"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("tess: ")
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("tess", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		config  = fs.String("config", "", "YAML file describing the points")
		format  = fs.String("format", "geojson", "output format (geojson, png, buffers)")
		output  = fs.String("o", "", "output file (default stdout)")
		width   = fs.Int("width", 800, "image width for -format png")
		height  = fs.Int("height", 800, "image height for -format png")
		tol     = fs.Float64("tol", 0, "in-circle tolerance, overrides the config")
		margin  = fs.Float64("margin", 0, "scaffold margin, overrides the config")
		verbose = fs.Bool("v", false, "log dropped points and progress")
		check   = fs.Bool("check", false, "validate the mesh before writing it")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *config == "" {
		return errors.New("-config is required")
	}

	if *verbose {
		tess.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
		defer tess.SetLogger(nil)
	}

	cfg, err := loadConfig(*config)
	if err != nil {
		return err
	}
	if *tol != 0 {
		cfg.Tolerance = *tol
	}
	if *margin != 0 {
		cfg.Margin = *margin
	}
	boundary, err := collect(cfg.Boundary)
	if err != nil {
		return fmt.Errorf("boundary: %w", err)
	}
	interior, err := collect(cfg.Interior)
	if err != nil {
		return fmt.Errorf("interior: %w", err)
	}

	m, rep, err := tess.DelaunayOpt(boundary, interior, cfg.Options())
	if err != nil {
		return err
	}
	fmt.Fprintf(stderr, "%d points inserted, %d dropped, %d faces\n", rep.Inserted, len(rep.Dropped), m.NumFaces())
	if *check {
		if err := m.Validate(); err != nil {
			return err
		}
		eps := cfg.Tolerance
		if eps == 0 {
			eps = tess.DefaultTolerance
		}
		if err := m.CheckDelaunay(eps); err != nil {
			return err
		}
	}

	w := stdout
	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			return err
		}
		if err := write(f, m, *format, *width, *height); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	}
	return write(w, m, *format, *width, *height)
}

func write(w io.Writer, m *tess.Mesh, format string, width, height int) error {
	switch format {
	case "geojson":
		fc, err := m.GeoJSON()
		if err != nil {
			return err
		}
		b, err := fc.MarshalJSON()
		if err != nil {
			return err
		}
		_, err = w.Write(append(b, '\n'))
		return err
	case "png":
		img, err := m.Render(width, height, nil)
		if err != nil {
			return err
		}
		return tess.EncodePNG(w, img)
	case "buffers":
		buf, err := m.Buffers()
		if err != nil {
			return err
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(toYAML(buf)); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

type yamlBuffers struct {
	Points [][2]float64 `yaml:"points"`
	Cells  []yamlCell   `yaml:"cells"`
}

type yamlCell struct {
	Kind    string `yaml:"kind"`
	Indices []int  `yaml:"indices,flow"`
}

func toYAML(buf tess.Buffers) yamlBuffers {
	out := yamlBuffers{
		Points: make([][2]float64, len(buf.Points)),
		Cells:  make([]yamlCell, len(buf.Cells)),
	}
	for i, p := range buf.Points {
		out.Points[i] = [2]float64{p.X, p.Y}
	}
	for i, c := range buf.Cells {
		out.Cells[i] = yamlCell{Kind: c.Kind.String(), Indices: c.Indices}
	}
	return out
}
