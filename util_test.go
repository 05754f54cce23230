package tess

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func mustValidate(t *testing.T, m *Mesh) {
	t.Helper()
	if err := m.Validate(); err != nil {
		t.Fatalf("invalid mesh: %v", err)
	}
}

func wantErr(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("got error %v, want %v", err, target)
	}
}

// square returns a triangulation of the unit square.
func square(t *testing.T) *Mesh {
	t.Helper()
	m, err := Delaunay([]Point{Pt(0, 0), Pt(1, 0), Pt(1, 1), Pt(0, 1)})
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func randomPoints(seed uint64, n int, r Rect) []Point {
	rng := rand.New(rand.NewPCG(seed, seed))
	pts := make([]Point, n)
	for i := range pts {
		pts[i] = Pt(
			r.X0+rng.Float64()*r.Width(),
			r.Y0+rng.Float64()*r.Height(),
		)
	}
	return pts
}

func faceSet(t *testing.T, m *Mesh) [][]Point {
	t.Helper()
	var out [][]Point
	for f := range m.AllFaces() {
		pts, err := m.FaceCoords(f)
		if err != nil {
			t.Fatal(err)
		}
		out = append(out, canonical(pts))
	}
	return out
}

// canonical rotates a loop so that it starts at its lexicographically
// smallest point.
func canonical(pts []Point) []Point {
	first := 0
	for i, p := range pts {
		q := pts[first]
		if p.X < q.X || (p.X == q.X && p.Y < q.Y) {
			first = i
		}
	}
	out := make([]Point, 0, len(pts))
	out = append(out, pts[first:]...)
	return append(out, pts[:first]...)
}
