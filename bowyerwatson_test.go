package tess

import (
	"math"
	"slices"
	"strings"
	"testing"
)

func TestInsertSquare(t *testing.T) {
	m := square(t)
	mustValidate(t, m)
	diff(t, 2, m.NumFaces())
	diff(t, 4, m.NumVertices())
	for f := range m.AllFaces() {
		if n := m.Arity(f); n != 3 {
			t.Errorf("face %d has %d edges", f, n)
		}
	}
	if err := m.CheckDelaunay(DefaultTolerance); err != nil {
		t.Error(err)
	}
}

func TestInsertCenter(t *testing.T) {
	m := square(t)
	v, err := m.Insert(Pt(0.5, 0.5), DefaultTolerance)
	if err != nil {
		t.Fatal(err)
	}
	mustValidate(t, m)
	diff(t, Pt(0.5, 0.5), m.Coords(v))
	diff(t, 4, m.NumFaces())
	diff(t, 5, m.NumVertices())
	for f := range m.AllFaces() {
		vs, err := m.FaceVertices(f)
		if err != nil {
			t.Fatal(err)
		}
		if !slices.Contains(vs, v) {
			t.Errorf("face %d %v doesn't contain the center", f, vs)
		}
		// The other two corners are adjacent corners of the square, so
		// neither diagonal survives.
		var corners []Point
		for _, w := range vs {
			if w != v {
				corners = append(corners, m.Coords(w))
			}
		}
		if d := corners[0].Distance(corners[1]); d != 1 {
			t.Errorf("face %d spans a diagonal %v", f, corners)
		}
	}
	if err := m.CheckDelaunay(DefaultTolerance); err != nil {
		t.Error(err)
	}
}

func TestInsertReusesFaceSlots(t *testing.T) {
	m := square(t)
	before := m.Faces()
	if _, err := m.Insert(Pt(0.5, 0.5), DefaultTolerance); err != nil {
		t.Fatal(err)
	}
	after := m.Faces()
	// Both triangles were in the cavity; their slots are refilled first.
	diff(t, before, after[:2])
}

func TestInsertRejected(t *testing.T) {
	tests := []struct {
		name string
		p    Point
		want error
	}{
		{"duplicate corner", Pt(0, 0), ErrDuplicatePoint},
		{"near duplicate", Pt(1, 1+1e-12), ErrDuplicatePoint},
		{"far outside", Pt(2, 2), ErrOutsideHull},
		{"outside within circumcircle", Pt(0.5, -0.1), ErrOutsideHull},
		{"on boundary edge", Pt(0.5, 0), ErrOutsideHull},
		{"infinite", Pt(math.Inf(1), 0), ErrInvalidPoint},
		{"NaN", Pt(0.5, math.NaN()), ErrInvalidPoint},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := square(t)
			before := faceSet(t, m)
			nv := len(m.vertices)
			v, err := m.Insert(tt.p, DefaultTolerance)
			wantErr(t, err, tt.want)
			diff(t, NoVertex, v)
			diff(t, before, faceSet(t, m))
			diff(t, nv, len(m.vertices))
			mustValidate(t, m)
		})
	}
}

func TestInsertRandom(t *testing.T) {
	for seed := range uint64(5) {
		pts := randomPoints(seed, 200, Rect{-10, -5, 10, 5})
		m, rep, err := DelaunayOpt(pts, nil, nil)
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		mustValidate(t, m)
		if err := m.CheckDelaunay(1e-9); err != nil {
			t.Errorf("seed %d: %v", seed, err)
		}
		// Hull points whose faces all touched the scaffold are lost.
		diff(t, m.NumVertices(), rep.Inserted)
		diff(t, len(pts), rep.Inserted+len(rep.Dropped))
		for _, d := range rep.Dropped {
			wantErr(t, d.Err, ErrLostWithScaffold)
		}
		if n := m.NumVertices(); n == 0 || n > len(pts) {
			t.Errorf("seed %d: got %d vertices", seed, n)
		}
	}
}

func TestInsertIntoConvexRegion(t *testing.T) {
	const n = 150
	corners := []Point{Pt(0, 0), Pt(1, 0), Pt(1, 1), Pt(0, 1)}
	m, rep, err := DelaunayOpt(corners, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, 0, len(rep.Dropped))
	for i, p := range randomPoints(42, n, Rect{0.05, 0.05, 0.95, 0.95}) {
		if _, err := m.Insert(p, DefaultTolerance); err != nil {
			t.Fatalf("point %d %v: %v", i, p, err)
		}
	}
	mustValidate(t, m)
	if err := m.CheckDelaunay(1e-9); err != nil {
		t.Error(err)
	}
	// A triangulation of V points with H on the hull has 2V−H−2 triangles.
	diff(t, n+4, m.NumVertices())
	diff(t, 2*(n+4)-4-2, m.NumFaces())

	loops, err := m.Boundary()
	if err != nil {
		t.Fatal(err)
	}
	diff(t, 1, len(loops))
	diff(t, 4, len(loops[0]))
}

func TestInsertSkipsPolygons(t *testing.T) {
	pts := []Point{Pt(0, 0), Pt(1, 0), Pt(1, 1), Pt(0, 1)}
	m, err := FromPolygons(pts, [][]int{{0, 1, 2, 3}})
	if err != nil {
		t.Fatal(err)
	}
	_, err = m.Insert(Pt(0.5, 0.5), DefaultTolerance)
	wantErr(t, err, ErrNotTriangle)
	// On the perimeter, the point isn't inside the polygon.
	_, err = m.Insert(Pt(0.5, 0), DefaultTolerance)
	wantErr(t, err, ErrOutsideHull)
	_, err = m.Insert(Pt(2, 0.5), DefaultTolerance)
	wantErr(t, err, ErrOutsideHull)
	_, err = m.Insert(Pt(1, 0), DefaultTolerance)
	wantErr(t, err, ErrDuplicatePoint)
	diff(t, 4, m.NumVertices())
}

func TestInsertSmallScale(t *testing.T) {
	// At this scale, in-circle determinants are far below the tolerance.
	// The center lies on the shared diagonal, so both triangles contain it.
	const d = 1e-3
	pts := []Point{Pt(0, 0), Pt(d, 0), Pt(d, d), Pt(0, d)}
	m, err := FromPolygons(pts, [][]int{{0, 1, 2}, {0, 2, 3}})
	if err != nil {
		t.Fatal(err)
	}
	v, err := m.Insert(Pt(d/2, d/2), DefaultTolerance)
	if err != nil {
		t.Fatal(err)
	}
	mustValidate(t, m)
	diff(t, VertexID(4), v)
	diff(t, 4, m.NumFaces())

	// Strictly inside one triangle.
	if _, err := m.Insert(Pt(d/2, d/8), DefaultTolerance); err != nil {
		t.Fatal(err)
	}
	mustValidate(t, m)
	diff(t, 6, m.NumFaces())
}

func TestInsertDegenerateCavity(t *testing.T) {
	tests := []struct {
		name     string
		points   []Point
		polygons [][]int
		p        Point
		msg      string
	}{
		{
			// The circumcircle of the far, thin triangle reaches back over
			// the one containing p.
			name:     "disconnected",
			points:   []Point{Pt(0, 0), Pt(1, 0), Pt(0, 1), Pt(2, 5), Pt(2, -5), Pt(2.5, 0)},
			polygons: [][]int{{0, 1, 2}, {3, 4, 5}},
			p:        Pt(0.2, 0.2),
			msg:      "more than one loop",
		},
		{
			name:     "shared vertex",
			points:   []Point{Pt(0, 0), Pt(1, 0), Pt(0, 1), Pt(1.3, 2), Pt(1, 4)},
			polygons: [][]int{{0, 1, 2}, {1, 3, 4}},
			p:        Pt(0.3, 0.3),
			msg:      "vertex 1 twice",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := FromPolygons(tt.points, tt.polygons)
			if err != nil {
				t.Fatal(err)
			}
			before := faceSet(t, m)
			_, err = m.Insert(tt.p, DefaultTolerance)
			wantErr(t, err, ErrDegenerateCavity)
			if err != nil && !strings.Contains(err.Error(), tt.msg) {
				t.Errorf("got %q, want it to mention %q", err, tt.msg)
			}
			mustValidate(t, m)
			diff(t, len(tt.points), m.NumVertices())
			diff(t, before, faceSet(t, m), sortLoops)
		})
	}
}
