package tess

import (
	"errors"
	"fmt"
)

// Validate checks the structural invariants of m and returns every violation
// found, joined, each wrapping ErrCorrupt. It checks that
//   - every face loop closes within the face's arity and its half-edges refer
//     back to the face
//   - next and prev are inverse
//   - opposites are symmetric, bound active faces and span the same segment
//     in reverse
//   - every face is counter-clockwise
//   - every vertex of a face refers to a half-edge of an active face that
//     originates at it
func (m *Mesh) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrCorrupt}, args...)...))
	}

	for _, f := range m.order {
		if !m.faces[f].alive {
			fail("face %d is listed but removed", f)
			continue
		}
		edges, err := m.FaceEdges(f)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		pts := make([]Point, len(edges))
		for i, e := range edges {
			he := m.edges[e]
			pts[i] = m.vertices[he.origin].coords
			if m.edges[he.next].prev != e {
				fail("half-edge %d: next.prev is %d", e, m.edges[he.next].prev)
			}
			if he.opposite == NoEdge {
				continue
			}
			o := m.edges[he.opposite]
			switch {
			case o.opposite != e:
				fail("half-edge %d: opposite %d points back at %d", e, he.opposite, o.opposite)
			case o.face == NoFace || !m.faces[o.face].alive:
				fail("half-edge %d: opposite %d bounds no active face", e, he.opposite)
			case o.origin != m.edges[he.next].origin || m.edges[o.next].origin != he.origin:
				fail("half-edge %d: opposite %d spans a different segment", e, he.opposite)
			}
		}
		if len(pts) == 3 {
			if Orientation(pts[0], pts[1], pts[2]) <= 0 {
				fail("face %d %v isn't counter-clockwise", f, pts)
			}
		} else if PolygonArea(pts) <= 0 {
			fail("face %d %v isn't counter-clockwise", f, pts)
		}
		for _, e := range edges {
			if v := m.edges[e].origin; !m.liveRef(v) {
				fail("vertex %d: back-reference %d is stale", v, m.vertices[v].edge)
			}
		}
	}
	return errors.Join(errs...)
}

// CheckDelaunay reports a triangle whose circumcircle contains, by more than
// tol, a vertex of m other than its own corners. Faces that aren't triangles
// are ignored. The returned error wraps ErrNotDelaunay.
func (m *Mesh) CheckDelaunay(tol float64) error {
	verts := m.Vertices()
	for _, f := range m.order {
		if m.faces[f].arity != 3 {
			continue
		}
		corners, err := m.FaceVertices(f)
		if err != nil {
			return err
		}
		a, b, c := m.triangleCoords(f)
		for _, v := range verts {
			if v == corners[0] || v == corners[1] || v == corners[2] {
				continue
			}
			p := m.vertices[v].coords
			if d := InCircle(a, b, c, p); d > tol {
				return fmt.Errorf("%w: vertex %d %v lies inside circumcircle of face %d (%g)", ErrNotDelaunay, v, p, f, d)
			}
		}
	}
	return nil
}
