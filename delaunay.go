package tess

import (
	"errors"
	"fmt"
	"log/slog"
)

// Options configures [DelaunayOpt]. The zero value selects the defaults.
type Options struct {
	// Tolerance is the threshold passed to [Mesh.Insert], relative to the
	// extent of the boundary points. Zero selects DefaultTolerance.
	Tolerance float64
	// ScaffoldMargin is passed to [ScaffoldTriangle]. Zero selects
	// DefaultScaffoldMargin.
	ScaffoldMargin float64
}

func (o *Options) tolerance() float64 {
	if o == nil || o.Tolerance == 0 {
		return DefaultTolerance
	}
	return o.Tolerance
}

func (o *Options) margin() float64 {
	if o == nil || o.ScaffoldMargin == 0 {
		return DefaultScaffoldMargin
	}
	return o.ScaffoldMargin
}

// DroppedPoint describes an input point that wasn't inserted.
type DroppedPoint struct {
	// Index is the position of the point in its input slice.
	Index int
	// Interior is true for points from the interior set.
	Interior bool
	Point    Point
	// Err is one of ErrDuplicatePoint, ErrOutsideHull, ErrDegenerateCavity
	// or ErrLostWithScaffold, wrapped.
	Err error
}

// Report summarizes a triangulation.
type Report struct {
	Inserted int
	Dropped  []DroppedPoint
}

// Delaunay triangulates points. Duplicate points are skipped.
//
// It is equivalent to DelaunayOpt(points, nil, nil).
func Delaunay(points []Point) (*Mesh, error) {
	m, _, err := DelaunayOpt(points, nil, nil)
	return m, err
}

// DelaunayOpt computes a Delaunay triangulation in two phases.
//
// First, the boundary points are inserted, in order, into a scaffold
// triangle that encloses them (see [EncompassingMesh]), after which all
// faces touching the scaffold are removed. This leaves a triangulation of the
// boundary points. Then the interior points are inserted, in order. Interior
// points that fall outside the triangulated region are dropped, as are
// duplicates. Boundary points whose faces all touched the scaffold are lost
// when it is removed; they are reported with ErrLostWithScaffold. Dropped
// points are listed in the report.
//
// Insertion works on coordinates mapped so that the bounding box of the
// boundary points has an extent of 1, which makes the tolerance independent
// of the input's scale. The returned mesh has the original coordinates.
//
// The returned error is non-nil only for invalid input (no boundary points,
// non-finite coordinates, an invalid margin) or if the mesh turned out to be
// corrupt.
func DelaunayOpt(boundary, interior []Point, opts *Options) (*Mesh, *Report, error) {
	for i, p := range boundary {
		if !p.IsFinite() {
			return nil, nil, fmt.Errorf("boundary point %d %v: %w", i, p, ErrInvalidPoint)
		}
	}
	for i, p := range interior {
		if !p.IsFinite() {
			return nil, nil, fmt.Errorf("interior point %d %v: %w", i, p, ErrInvalidPoint)
		}
	}
	bounds, ok := BoundingRect(boundary)
	if !ok {
		return nil, nil, ErrNoPoints
	}
	fr := newFrame(bounds)
	scaled := make([]Point, len(boundary))
	for i, p := range boundary {
		scaled[i] = fr.to(p)
	}
	m, s, err := EncompassingMesh(scaled, opts.margin())
	if err != nil {
		return nil, nil, err
	}

	log := Logger()
	tol := opts.tolerance()
	rep := &Report{}
	orig := make(map[VertexID]Point)
	drop := func(i int, isInterior bool, p Point, err error) {
		rep.Dropped = append(rep.Dropped, DroppedPoint{
			Index:    i,
			Interior: isInterior,
			Point:    p,
			Err:      fmt.Errorf("inserting %v: %w", p, err),
		})
		log.Debug("dropped point", "index", i, "interior", isInterior, "point", p, "reason", err)
	}
	type placed struct {
		index int
		v     VertexID
	}
	var placedBoundary []placed
	insert := func(pts []Point, isInterior bool) error {
		for i, p := range pts {
			v, err := m.insert(fr.to(p), tol)
			switch {
			case err == nil:
				rep.Inserted++
				orig[v] = p
				if !isInterior {
					placedBoundary = append(placedBoundary, placed{i, v})
				}
			case errors.Is(err, ErrDuplicatePoint),
				errors.Is(err, ErrOutsideHull),
				errors.Is(err, ErrDegenerateCavity):
				drop(i, isInterior, p, err)
			default:
				return fmt.Errorf("inserting %v: %w", p, err)
			}
		}
		return nil
	}

	if err := insert(boundary, false); err != nil {
		return nil, nil, err
	}
	m.StripScaffold(s)
	for _, pl := range placedBoundary {
		if !m.liveRef(pl.v) {
			rep.Inserted--
			drop(pl.index, false, boundary[pl.index], ErrLostWithScaffold)
		}
	}
	log.Debug("triangulated boundary",
		slog.Int("points", len(boundary)),
		slog.Int("faces", m.NumFaces()))

	if err := insert(interior, true); err != nil {
		return nil, nil, err
	}
	for v := range m.vertices {
		if p, ok := orig[VertexID(v)]; ok {
			m.vertices[v].coords = p
		} else {
			m.vertices[v].coords = fr.from(m.vertices[v].coords)
		}
	}
	log.Debug("triangulated interior",
		slog.Int("points", len(interior)),
		slog.Int("faces", m.NumFaces()),
		slog.Int("vertices", m.NumVertices()),
		slog.Int("dropped", len(rep.Dropped)))
	return m, rep, nil
}

// frame maps a rectangle onto a box of extent 1 centered on the origin.
type frame struct {
	center Point
	scale  float64
}

func newFrame(bounds Rect) frame {
	d := max(bounds.Width(), bounds.Height())
	if d == 0 {
		d = 1
	}
	return frame{center: bounds.Center(), scale: d}
}

func (fr frame) to(p Point) Point {
	return Pt((p.X-fr.center.X)/fr.scale, (p.Y-fr.center.Y)/fr.scale)
}

func (fr frame) from(p Point) Point {
	return Pt(p.X*fr.scale+fr.center.X, p.Y*fr.scale+fr.center.Y)
}
