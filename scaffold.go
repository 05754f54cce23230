package tess

import "fmt"

// DefaultScaffoldMargin is the default ratio between the extent of the
// scaffold triangle and the extent of the points it encloses.
const DefaultScaffoldMargin = 20

// Scaffold is the temporary triangle that encloses the input of a
// triangulation so that every point can be inserted into an existing face.
type Scaffold struct {
	Vertices [3]VertexID
	Face     FaceID
}

// ScaffoldTriangle returns the corners, in counter-clockwise order, of a
// triangle that strictly contains bounds.
//
// With c the center of bounds, d the larger of its width and height (or 1 if
// both are zero) and k the margin, the corners are
//
//	(cx − k·d, cy − d), (cx + k·d, cy − d), (cx, cy + k·d)
//
// k must be at least 3 so that the slanted sides clear the corners of
// bounds. Larger margins make it less likely that faces along the convex hull
// of the input are lost when the scaffold is stripped, at the cost of
// precision in the in-circle tests that involve scaffold corners.
func ScaffoldTriangle(bounds Rect, margin float64) ([3]Point, error) {
	if !(margin >= 3) {
		return [3]Point{}, fmt.Errorf("margin %g: %w", margin, ErrInvalidMargin)
	}
	bounds = bounds.Abs()
	d := max(bounds.Width(), bounds.Height())
	if d == 0 {
		d = 1
	}
	c := bounds.Center()
	return [3]Point{
		Pt(c.X-margin*d, c.Y-d),
		Pt(c.X+margin*d, c.Y-d),
		Pt(c.X, c.Y+margin*d),
	}, nil
}

// EncompassingMesh returns a mesh consisting of a single scaffold triangle
// that strictly contains all points. See [ScaffoldTriangle] for the
// construction.
func EncompassingMesh(points []Point, margin float64) (*Mesh, Scaffold, error) {
	bounds, ok := BoundingRect(points)
	if !ok {
		return nil, Scaffold{}, ErrNoPoints
	}
	for i, p := range points {
		if !p.IsFinite() {
			return nil, Scaffold{}, fmt.Errorf("point %d %v: %w", i, p, ErrInvalidPoint)
		}
	}
	corners, err := ScaffoldTriangle(bounds, margin)
	if err != nil {
		return nil, Scaffold{}, err
	}

	m := NewMesh()
	var s Scaffold
	var edges [3]EdgeID
	for i, p := range corners {
		s.Vertices[i] = m.AddVertex(p)
		edges[i] = m.NewEdge(s.Vertices[i])
	}
	s.Face, err = m.NewFace(edges[:])
	if err != nil {
		return nil, Scaffold{}, err
	}
	return m, s, nil
}

// StripScaffold removes every face that has a corner of s. The half-edges
// that become the outer boundary lose their opposites.
func (m *Mesh) StripScaffold(s Scaffold) {
	m.RemoveFacesAround(s.Vertices[:]...)
}
