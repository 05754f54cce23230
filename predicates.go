package tess

import "fmt"

// DefaultTolerance is the default threshold for [InCircle] values. Points
// whose in-circle value doesn't exceed it are treated as lying outside or on
// the circle.
const DefaultTolerance = 1e-10

// Orientation returns twice the signed area of the triangle abc. It is
// positive if a, b, c are in counter-clockwise order in a y-up space,
// negative if they are clockwise, and zero if they are collinear.
func Orientation(a, b, c Point) float64 {
	return b.Sub(a).Cross(c.Sub(a))
}

// InCircle returns a value that is positive if d lies inside the circle
// through a, b and c, negative if it lies outside and zero if it lies on it.
// a, b and c must be in counter-clockwise order; the sign flips otherwise.
//
// The value is the determinant
//
//	| ax-dx  ay-dy  (ax-dx)²+(ay-dy)² |
//	| bx-dx  by-dy  (bx-dx)²+(by-dy)² |
//	| cx-dx  cy-dy  (cx-dx)²+(cy-dy)² |
//
// evaluated in floating point. Callers compare it against a tolerance instead
// of zero.
func InCircle(a, b, c, d Point) float64 {
	adx, ady := a.X-d.X, a.Y-d.Y
	bdx, bdy := b.X-d.X, b.Y-d.Y
	cdx, cdy := c.X-d.X, c.Y-d.Y

	alift := adx*adx + ady*ady
	blift := bdx*bdx + bdy*bdy
	clift := cdx*cdx + cdy*cdy

	return alift*(bdx*cdy-cdx*bdy) +
		blift*(cdx*ady-adx*cdy) +
		clift*(adx*bdy-bdx*ady)
}

// PolygonArea returns the signed area of the closed polygon pts, positive for
// counter-clockwise order.
func PolygonArea(pts []Point) float64 {
	var sum float64
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		sum += Vec2(p).Cross(Vec2(q))
	}
	return 0.5 * sum
}

// segmentsCross reports whether the open segments pq and rs intersect in a
// single point interior to both.
func segmentsCross(p, q, r, s Point) bool {
	d1 := Orientation(r, s, p)
	d2 := Orientation(r, s, q)
	d3 := Orientation(p, q, r)
	d4 := Orientation(p, q, s)
	return d1*d2 < 0 && d3*d4 < 0
}

// triangleCoords returns the corners of the triangle f, starting at the
// origin of its reference half-edge.
func (m *Mesh) triangleCoords(f FaceID) (a, b, c Point) {
	e0 := m.faces[f].edge
	e1 := m.edges[e0].next
	e2 := m.edges[e1].next
	return m.vertices[m.edges[e0].origin].coords,
		m.vertices[m.edges[e1].origin].coords,
		m.vertices[m.edges[e2].origin].coords
}

// InCircumcircle returns the [InCircle] value of p with respect to the
// triangle f. It returns ErrNotTriangle if f isn't a triangle.
func (m *Mesh) InCircumcircle(p Point, f FaceID) (float64, error) {
	m.checkFace(f)
	if n := m.faces[f].arity; n != 3 {
		return 0, fmt.Errorf("circumcircle of face %d with %d edges: %w", f, n, ErrNotTriangle)
	}
	a, b, c := m.triangleCoords(f)
	return InCircle(a, b, c, p), nil
}
