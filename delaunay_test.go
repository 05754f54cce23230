package tess

import (
	"errors"
	"math"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestDelaunayOptReport(t *testing.T) {
	boundary := []Point{Pt(0, 0), Pt(1, 0), Pt(0, 0), Pt(1, 1), Pt(0, 1)}
	interior := []Point{Pt(0.5, 0.5), Pt(1, 1), Pt(2, 2), Pt(0.25, 0.5)}
	m, rep, err := DelaunayOpt(boundary, interior, nil)
	if err != nil {
		t.Fatal(err)
	}
	mustValidate(t, m)
	diff(t, 6, rep.Inserted)
	diff(t, 6, m.NumVertices())

	type drop struct {
		Index    int
		Interior bool
		Point    Point
	}
	var got []drop
	for _, d := range rep.Dropped {
		got = append(got, drop{d.Index, d.Interior, d.Point})
	}
	diff(t, []drop{
		{2, false, Pt(0, 0)},
		{1, true, Pt(1, 1)},
		{2, true, Pt(2, 2)},
	}, got)
	wantErr(t, rep.Dropped[0].Err, ErrDuplicatePoint)
	wantErr(t, rep.Dropped[1].Err, ErrDuplicatePoint)
	wantErr(t, rep.Dropped[2].Err, ErrOutsideHull)
}

func TestDelaunayOptInteriorOutsideBoundary(t *testing.T) {
	// Interior points only fill the region spanned by the boundary points,
	// not the scaffold.
	boundary := []Point{Pt(0, 0), Pt(4, 0), Pt(2, 3)}
	interior := []Point{Pt(2, 1), Pt(-1, 0), Pt(2, 4)}
	m, rep, err := DelaunayOpt(boundary, interior, nil)
	if err != nil {
		t.Fatal(err)
	}
	mustValidate(t, m)
	diff(t, 3, m.NumFaces())
	diff(t, 2, len(rep.Dropped))
	for _, d := range rep.Dropped {
		wantErr(t, d.Err, ErrOutsideHull)
	}
}

func TestDelaunayOptErrors(t *testing.T) {
	tests := []struct {
		name               string
		boundary, interior []Point
		opts               *Options
		want               error
	}{
		{"no points", nil, []Point{Pt(0, 0)}, nil, ErrNoPoints},
		{"boundary NaN", []Point{Pt(0, 0), Pt(math.NaN(), 1)}, nil, nil, ErrInvalidPoint},
		{"interior inf", []Point{Pt(0, 0)}, []Point{Pt(math.Inf(-1), 1)}, nil, ErrInvalidPoint},
		{"margin", []Point{Pt(0, 0), Pt(1, 1)}, nil, &Options{ScaffoldMargin: 2}, ErrInvalidMargin},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, rep, err := DelaunayOpt(tt.boundary, tt.interior, tt.opts)
			wantErr(t, err, tt.want)
			if m != nil || rep != nil {
				t.Error("got mesh or report alongside error")
			}
		})
	}
}

func TestDelaunayFewPoints(t *testing.T) {
	for _, pts := range [][]Point{
		{Pt(1, 1)},
		{Pt(1, 1), Pt(2, 2)},
		{Pt(0, 0), Pt(1, 1), Pt(2, 2)},
	} {
		m, rep, err := DelaunayOpt(pts, nil, nil)
		if err != nil {
			t.Fatalf("%v: %v", pts, err)
		}
		diff(t, 0, m.NumFaces())
		mustValidate(t, m)
		// Every point only ever touched scaffold faces.
		diff(t, 0, rep.Inserted)
		diff(t, len(pts), len(rep.Dropped))
		for i, d := range rep.Dropped {
			wantErr(t, d.Err, ErrLostWithScaffold)
			diff(t, DroppedPoint{Index: i, Point: pts[i]}, d, cmpopts.IgnoreFields(DroppedPoint{}, "Err"))
		}
	}
}

func TestDelaunayOptLostWithScaffold(t *testing.T) {
	// A long, flat boundary. Hull triangles this thin lose to triangles
	// reaching the scaffold, taking some of the points with them.
	boundary := []Point{Pt(0, 0), Pt(1000, 0), Pt(2000, 1), Pt(3000, 0), Pt(1500, -0.5)}
	m, rep, err := DelaunayOpt(boundary, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	mustValidate(t, m)
	diff(t, m.NumVertices(), rep.Inserted)
	diff(t, len(boundary), rep.Inserted+len(rep.Dropped))

	live := make(map[Point]bool)
	for _, v := range m.Vertices() {
		live[m.Coords(v)] = true
	}
	for _, d := range rep.Dropped {
		wantErr(t, d.Err, ErrLostWithScaffold)
		if d.Interior {
			t.Errorf("point %d reported as interior", d.Index)
		}
		diff(t, boundary[d.Index], d.Point)
		if live[d.Point] {
			t.Errorf("dropped point %v is part of the mesh", d.Point)
		}
	}
	for i, p := range boundary {
		dropped := slices.ContainsFunc(rep.Dropped, func(d DroppedPoint) bool { return d.Index == i })
		if !live[p] && !dropped {
			t.Errorf("point %d %v is neither in the mesh nor reported", i, p)
		}
	}
}

func TestDelaunayOptSmallScale(t *testing.T) {
	const d = 1e-3
	for _, off := range []Point{Pt(0, 0), Pt(1e6, -1e6)} {
		boundary := []Point{
			Pt(off.X, off.Y), Pt(off.X+d, off.Y),
			Pt(off.X+d, off.Y+d), Pt(off.X, off.Y+d),
		}
		center := Pt(off.X+d/2, off.Y+d/2)
		m, rep, err := DelaunayOpt(boundary, []Point{center}, nil)
		if err != nil {
			t.Fatal(err)
		}
		mustValidate(t, m)
		diff(t, 0, len(rep.Dropped))
		diff(t, 5, rep.Inserted)
		diff(t, 5, m.NumVertices())
		diff(t, 4, m.NumFaces())

		// Coordinates are those of the input, not of the working frame.
		var got []Point
		for _, v := range m.Vertices() {
			got = append(got, m.Coords(v))
		}
		diff(t, append(slices.Clone(boundary), center), got, cmpopts.SortSlices(func(a, b Point) bool {
			return a.X < b.X || (a.X == b.X && a.Y < b.Y)
		}))
	}
}

func TestDelaunayOptScaleInvariant(t *testing.T) {
	pts := randomPoints(7, 60, Rect{0, 0, 1, 1})
	ref, err := Delaunay(pts)
	if err != nil {
		t.Fatal(err)
	}
	// Powers of two keep the scaled coordinates exact.
	for _, s := range []float64{0x1p-14, 0x1p14} {
		scaled := make([]Point, len(pts))
		for i, p := range pts {
			scaled[i] = Pt(p.X*s, p.Y*s)
		}
		m, err := Delaunay(scaled)
		if err != nil {
			t.Fatal(err)
		}
		mustValidate(t, m)
		diff(t, ref.NumFaces(), m.NumFaces())
		diff(t, ref.NumVertices(), m.NumVertices())
	}
}

func TestDelaunayMatchesNaive(t *testing.T) {
	pts := []Point{
		Pt(0, 0), Pt(4, 0.3), Pt(5.2, 3.1), Pt(2.2, 5),
		Pt(-0.7, 3.3), Pt(2.1, 1.9), Pt(3.3, 2.2), Pt(1.1, 3.4),
	}
	m, err := Delaunay(pts)
	if err != nil {
		t.Fatal(err)
	}
	mustValidate(t, m)
	ref, err := NaiveDelaunay(pts, DefaultTolerance)
	if err != nil {
		t.Fatal(err)
	}
	mustValidate(t, ref)
	diff(t, faceSet(t, ref), faceSet(t, m), sortLoops)
}

func TestOptionsDefaults(t *testing.T) {
	var o *Options
	diff(t, DefaultTolerance, o.tolerance())
	diff(t, float64(DefaultScaffoldMargin), o.margin())
	o = &Options{Tolerance: 1e-6, ScaffoldMargin: 50}
	diff(t, 1e-6, o.tolerance())
	diff(t, 50.0, o.margin())
}

func TestDelaunayWrapsCause(t *testing.T) {
	_, rep, err := DelaunayOpt([]Point{Pt(0, 0), Pt(1, 0), Pt(0, 1), Pt(0, 0)}, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(rep.Dropped) != 1 {
		t.Fatalf("got %d dropped points, want 1", len(rep.Dropped))
	}
	if errors.Is(rep.Dropped[0].Err, ErrOutsideHull) {
		t.Error("duplicate reported as outside the hull")
	}
}
