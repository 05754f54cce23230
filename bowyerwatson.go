package tess

import "fmt"

// Insert adds p to the triangulation using the Bowyer–Watson algorithm: every
// triangle whose circumcircle contains p by more than tol is removed and the
// resulting cavity is re-triangulated by connecting its boundary to p. The
// triangles containing p are always part of the cavity, even if their
// in-circle value doesn't exceed tol, which happens for small triangles.
// Non triangular faces are never removed.
//
// If p can't be inserted, Insert returns an error and leaves the mesh
// unchanged:
//   - ErrDuplicatePoint if p lies within tol of a vertex of the affected faces
//   - ErrNotTriangle if p lies inside a face that isn't a triangle
//   - ErrOutsideHull if p lies on or beyond the boundary of the triangulated
//     region
//   - ErrDegenerateCavity if the affected faces don't form a simple polygon
//     that p can see entirely
//   - ErrInvalidPoint if p isn't finite
//
// When the mesh satisfies the Delaunay condition before the insertion, it
// satisfies it afterwards.
func (m *Mesh) Insert(p Point, tol float64) (VertexID, error) {
	v, err := m.insert(p, tol)
	if err != nil {
		return NoVertex, fmt.Errorf("inserting %v: %w", p, err)
	}
	return v, nil
}

func (m *Mesh) insert(p Point, tol float64) (VertexID, error) {
	if !p.IsFinite() {
		return NoVertex, ErrInvalidPoint
	}

	var cavity []FaceID
	for _, f := range m.order {
		if m.faces[f].arity != 3 {
			continue
		}
		a, b, c := m.triangleCoords(f)
		if InCircle(a, b, c, p) > tol || closedTriangleContains(a, b, c, p) {
			cavity = append(cavity, f)
		}
	}
	if len(cavity) == 0 {
		if v, ok := m.vertexNear(p, tol, m.order); ok {
			return NoVertex, fmt.Errorf("%w %d", ErrDuplicatePoint, v)
		}
		if f, ok := m.polygonContaining(p); ok {
			return NoVertex, fmt.Errorf("point in face %d: %w", f, ErrNotTriangle)
		}
		return NoVertex, ErrOutsideHull
	}
	if v, ok := m.vertexNear(p, tol, cavity); ok {
		return NoVertex, fmt.Errorf("%w %d", ErrDuplicatePoint, v)
	}

	stamp := m.nextStamp()
	for _, f := range cavity {
		m.faces[f].mark = stamp
	}
	loop, err := m.cavityBoundary(cavity, stamp)
	if err != nil {
		return NoVertex, err
	}
	n := len(loop)
	orgs := make([]VertexID, n)
	for i, e := range loop {
		orgs[i] = m.edges[e].origin
	}
	for i := range n {
		a := m.vertices[orgs[i]].coords
		b := m.vertices[orgs[(i+1)%n]].coords
		if Orientation(a, b, p) <= 0 {
			if m.strictlyInside(p, cavity) {
				return NoVertex, fmt.Errorf("%w: edge %d→%d isn't visible", ErrDegenerateCavity, orgs[i], orgs[(i+1)%n])
			}
			return NoVertex, ErrOutsideHull
		}
	}

	// Everything has been checked; from here on the mesh is mutated.
	v := m.AddVertex(p)
	m.carve(cavity, stamp)
	m.fan(loop, orgs, v, cavity)
	return v, nil
}

// closedTriangleContains reports whether p lies inside the triangle abc or
// on its perimeter.
func closedTriangleContains(a, b, c, p Point) bool {
	return Orientation(a, b, p) >= 0 && Orientation(b, c, p) >= 0 && Orientation(c, a, p) >= 0
}

// polygonContaining returns a face with more than three edges that contains
// p strictly, using the even-odd rule.
func (m *Mesh) polygonContaining(p Point) (FaceID, bool) {
	for _, f := range m.order {
		if m.faces[f].arity == 3 {
			continue
		}
		inside := false
		e := m.faces[f].edge
		for range m.faces[f].arity {
			a := m.vertices[m.edges[e].origin].coords
			b := m.vertices[m.edges[m.edges[e].next].origin].coords
			if Orientation(a, b, p) == 0 && NewRectFromPoints(a, b).Contains(p) {
				// on the perimeter
				inside = false
				break
			}
			if (a.Y > p.Y) != (b.Y > p.Y) && p.X < a.X+(p.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y) {
				inside = !inside
			}
			e = m.edges[e].next
		}
		if inside {
			return f, true
		}
	}
	return NoFace, false
}

// vertexNear returns a corner of one of faces that lies within tol of p.
func (m *Mesh) vertexNear(p Point, tol float64, faces []FaceID) (VertexID, bool) {
	for _, f := range faces {
		e := m.faces[f].edge
		for range m.faces[f].arity {
			v := m.edges[e].origin
			if m.vertices[v].coords.Near(p, tol) {
				return v, true
			}
			e = m.edges[e].next
		}
	}
	return NoVertex, false
}

// strictlyInside reports whether p lies in the interior of one of the
// triangles.
func (m *Mesh) strictlyInside(p Point, faces []FaceID) bool {
	for _, f := range faces {
		a, b, c := m.triangleCoords(f)
		if Orientation(a, b, p) > 0 && Orientation(b, c, p) > 0 && Orientation(c, a, p) > 0 {
			return true
		}
	}
	return false
}

// cavityBoundary returns the half-edges of the faces marked with stamp whose
// opposite is missing or unmarked, ordered into a single closed
// counter-clockwise loop. It starts at the first such half-edge in storage
// order.
func (m *Mesh) cavityBoundary(cavity []FaceID, stamp uint32) ([]EdgeID, error) {
	var bnd []EdgeID
	byOrigin := make(map[VertexID]EdgeID)
	for _, f := range cavity {
		edges, err := m.FaceEdges(f)
		if err != nil {
			return nil, err
		}
		for _, e := range edges {
			if o := m.edges[e].opposite; o != NoEdge && m.faces[m.edges[o].face].mark == stamp {
				continue
			}
			org := m.edges[e].origin
			if _, ok := byOrigin[org]; ok {
				return nil, fmt.Errorf("%w: boundary passes vertex %d twice", ErrDegenerateCavity, org)
			}
			byOrigin[org] = e
			bnd = append(bnd, e)
		}
	}
	if len(bnd) < 3 {
		return nil, fmt.Errorf("%w: boundary has %d edges", ErrDegenerateCavity, len(bnd))
	}

	loop := make([]EdgeID, 0, len(bnd))
	e := bnd[0]
	for {
		loop = append(loop, e)
		next, ok := byOrigin[m.Dest(e)]
		if !ok {
			return nil, fmt.Errorf("%w: boundary is open at vertex %d", ErrDegenerateCavity, m.Dest(e))
		}
		if next == bnd[0] {
			break
		}
		if len(loop) == len(bnd) {
			return nil, fmt.Errorf("%w: boundary doesn't close", ErrDegenerateCavity)
		}
		e = next
	}
	if len(loop) != len(bnd) {
		return nil, fmt.Errorf("%w: boundary consists of more than one loop", ErrDegenerateCavity)
	}
	return loop, nil
}

// carve removes the faces marked with stamp, releasing the half-edges
// between two of them. Half-edges on the cavity boundary are kept so that
// they can be reattached.
func (m *Mesh) carve(cavity []FaceID, stamp uint32) {
	var inner []EdgeID
	for _, f := range cavity {
		e := m.faces[f].edge
		for range m.faces[f].arity {
			if o := m.edges[e].opposite; o != NoEdge && m.faces[m.edges[o].face].mark == stamp {
				inner = append(inner, e)
			}
			e = m.edges[e].next
		}
	}
	for _, f := range cavity {
		m.kill(f)
	}
	for _, e := range inner {
		m.freeEdge(e)
	}
	m.compactOrder()
}
