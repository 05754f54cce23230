package tess

import (
	"fmt"
	"slices"
)

// FaceEdges returns the half-edges bounding f, in loop order starting at the
// face's reference half-edge. The walk is bounded by the face's arity; if the
// loop doesn't close after that many steps, FaceEdges returns an error
// wrapping ErrCorrupt.
func (m *Mesh) FaceEdges(f FaceID) ([]EdgeID, error) {
	m.checkFace(f)
	fc := m.faces[f]
	out := make([]EdgeID, 0, fc.arity)
	e := fc.edge
	for range fc.arity {
		if e < 0 || int(e) >= len(m.edges) || m.edges[e].face != f {
			return nil, fmt.Errorf("%w: face %d: half-edge %d doesn't bound it", ErrCorrupt, f, e)
		}
		out = append(out, e)
		e = m.edges[e].next
	}
	if e != fc.edge {
		return nil, fmt.Errorf("%w: face %d: loop doesn't close after %d steps", ErrCorrupt, f, fc.arity)
	}
	return out, nil
}

// FaceVertices returns the vertices of f in loop order.
func (m *Mesh) FaceVertices(f FaceID) ([]VertexID, error) {
	edges, err := m.FaceEdges(f)
	if err != nil {
		return nil, err
	}
	out := make([]VertexID, len(edges))
	for i, e := range edges {
		out[i] = m.edges[e].origin
	}
	return out, nil
}

// FaceCoords returns the corner positions of f in loop order.
func (m *Mesh) FaceCoords(f FaceID) ([]Point, error) {
	edges, err := m.FaceEdges(f)
	if err != nil {
		return nil, err
	}
	out := make([]Point, len(edges))
	for i, e := range edges {
		out[i] = m.vertices[m.edges[e].origin].coords
	}
	return out, nil
}

// CommonEdge returns the half-edge of f1 whose opposite bounds f2.
func (m *Mesh) CommonEdge(f1, f2 FaceID) (EdgeID, bool) {
	e, _, ok := m.CommonEdges(f1, f2)
	return e, ok
}

// CommonEdges returns the half-edge of f1 whose opposite bounds f2, together
// with that opposite.
func (m *Mesh) CommonEdges(f1, f2 FaceID) (EdgeID, EdgeID, bool) {
	m.checkFace(f2)
	edges, err := m.FaceEdges(f1)
	if err != nil {
		return NoEdge, NoEdge, false
	}
	for _, e := range edges {
		if o := m.edges[e].opposite; o != NoEdge && m.edges[o].face == f2 {
			return e, o, true
		}
	}
	return NoEdge, NoEdge, false
}

// NeighboringFaces returns the faces across the edges of f, skipping boundary
// edges.
func (m *Mesh) NeighboringFaces(f FaceID) []FaceID {
	edges, err := m.FaceEdges(f)
	if err != nil {
		return nil
	}
	var out []FaceID
	for _, e := range edges {
		if o := m.edges[e].opposite; o != NoEdge {
			out = append(out, m.edges[o].face)
		}
	}
	return out
}

// LinkEdges makes e1 and e2 each other's opposite. Both must bound faces,
// neither may have an opposite yet (ErrAlreadyLinked), and they must span
// the same segment in opposite directions (ErrEdgeMismatch).
func (m *Mesh) LinkEdges(e1, e2 EdgeID) error {
	m.checkEdge(e1)
	m.checkEdge(e2)
	if o := m.edges[e1].opposite; o != NoEdge {
		return fmt.Errorf("linking %d and %d: %w (%d has %d)", e1, e2, ErrAlreadyLinked, e1, o)
	}
	if o := m.edges[e2].opposite; o != NoEdge {
		return fmt.Errorf("linking %d and %d: %w (%d has %d)", e1, e2, ErrAlreadyLinked, e2, o)
	}
	if e1 == e2 ||
		m.edges[e1].next == NoEdge || m.edges[e2].next == NoEdge ||
		m.edges[e1].origin != m.Dest(e2) || m.edges[e2].origin != m.Dest(e1) {
		return fmt.Errorf("linking %d and %d: %w", e1, e2, ErrEdgeMismatch)
	}
	m.pair(e1, e2)
	return nil
}

func (m *Mesh) pair(e1, e2 EdgeID) {
	m.edges[e1].opposite = e2
	m.edges[e2].opposite = e1
}

// Flip replaces the diagonal shared by the triangles f1 and f2 with the other
// diagonal of the quad they form. The face handles stay valid and keep
// their storage position; the shared half-edge pair is reused for the new
// diagonal.
//
// Flip returns ErrNotTriangle or ErrNotAdjacent if the faces don't qualify,
// and ErrNotConvex if the quad isn't strictly convex. The mesh is unchanged
// on error.
func (m *Mesh) Flip(f1, f2 FaceID) error {
	m.checkFace(f1)
	m.checkFace(f2)
	if m.faces[f1].arity != 3 || m.faces[f2].arity != 3 {
		return fmt.Errorf("flipping %d and %d: %w", f1, f2, ErrNotTriangle)
	}
	if f1 == f2 {
		return fmt.Errorf("flipping %d and %d: %w", f1, f2, ErrNotAdjacent)
	}
	e, opp, ok := m.CommonEdges(f1, f2)
	if !ok {
		return fmt.Errorf("flipping %d and %d: %w", f1, f2, ErrNotAdjacent)
	}

	// f1 is a→b→c, f2 is b→a→d.
	e1 := m.edges[e].next
	e2 := m.edges[e1].next
	o1 := m.edges[opp].next
	o2 := m.edges[o1].next
	a := m.edges[e].origin
	b := m.edges[opp].origin
	c := m.edges[e2].origin
	d := m.edges[o2].origin
	pa, pb, pc, pd := m.vertices[a].coords, m.vertices[b].coords, m.vertices[c].coords, m.vertices[d].coords
	if Orientation(pd, pb, pc) <= 0 || Orientation(pc, pa, pd) <= 0 {
		return fmt.Errorf("flipping %d and %d: %w", f1, f2, ErrNotConvex)
	}

	m.edges[e].origin = c
	m.edges[opp].origin = d
	// f1 becomes c→d→b, f2 becomes d→c→a.
	m.linkLoop(f1, []EdgeID{e, o2, e1})
	m.linkLoop(f2, []EdgeID{opp, e2, o1})
	m.claimRef(a, o1)
	m.claimRef(b, e1)
	return nil
}

// InsertVertexIntoFace splits f into a fan of triangles around v, one per
// edge of f. v must lie strictly inside f (ErrOutsideFace). The slot of f is
// reused for the first triangle; all returned faces are appended to the
// storage order.
func (m *Mesh) InsertVertexIntoFace(f FaceID, v VertexID) ([]FaceID, error) {
	m.checkVertex(v)
	edges, err := m.FaceEdges(f)
	if err != nil {
		return nil, err
	}
	n := len(edges)
	orgs := make([]VertexID, n)
	for i, e := range edges {
		orgs[i] = m.edges[e].origin
		if orgs[i] == v {
			return nil, fmt.Errorf("inserting vertex %d into face %d: %w", v, f, ErrOutsideFace)
		}
	}
	p := m.vertices[v].coords
	for i := range n {
		if Orientation(m.vertices[orgs[i]].coords, m.vertices[orgs[(i+1)%n]].coords, p) <= 0 {
			return nil, fmt.Errorf("inserting vertex %d into face %d: %w", v, f, ErrOutsideFace)
		}
	}

	m.kill(f)
	m.compactOrder()
	return m.fan(edges, orgs, v, []FaceID{f}), nil
}

// fan builds one triangle per half-edge of the closed loop, connecting it to
// v. orgs holds the origins of the loop's half-edges. The half-edges of the
// loop are reused and keep their opposites. Face slots from reuse are
// filled first; any left over are released.
func (m *Mesh) fan(loop []EdgeID, orgs []VertexID, v VertexID, reuse []FaceID) []FaceID {
	n := len(loop)
	in := make([]EdgeID, n)
	out := make([]EdgeID, n)
	faces := make([]FaceID, n)
	for i, e := range loop {
		var f FaceID
		if i < len(reuse) {
			f = reuse[i]
			m.revive(f)
		} else {
			f = m.allocFace()
		}
		in[i] = m.NewEdge(orgs[(i+1)%n])
		out[i] = m.NewEdge(v)
		m.linkLoop(f, []EdgeID{e, in[i], out[i]})
		m.claimRef(orgs[i], e)
		faces[i] = f
	}
	for i := range n {
		m.pair(in[i], out[(i+1)%n])
	}
	for _, f := range reuse[min(n, len(reuse)):] {
		m.freeFaces = append(m.freeFaces, f)
	}
	return faces
}

// RemoveFaces removes the given faces. Half-edges of surviving faces that
// were opposite to a removed face become boundary half-edges, and vertices
// left without faces are dropped.
func (m *Mesh) RemoveFaces(fs []FaceID) {
	if len(fs) == 0 {
		return
	}
	stamp := m.nextStamp()
	for _, f := range fs {
		m.checkFace(f)
		m.faces[f].mark = stamp
	}
	var dead []EdgeID
	for _, f := range fs {
		if m.faces[f].edge == NoEdge {
			// listed twice
			continue
		}
		e := m.faces[f].edge
		for range m.faces[f].arity {
			if o := m.edges[e].opposite; o != NoEdge && m.faces[m.edges[o].face].mark != stamp {
				m.edges[o].opposite = NoEdge
			}
			dead = append(dead, e)
			e = m.edges[e].next
		}
		m.kill(f)
		m.freeFaces = append(m.freeFaces, f)
	}
	for _, e := range dead {
		m.freeEdge(e)
	}
	m.compactOrder()
	m.refreshRefs()
}

// RemoveFacesAround removes every face that has v as a corner.
func (m *Mesh) RemoveFacesAround(vs ...VertexID) {
	for _, v := range vs {
		m.checkVertex(v)
	}
	var fs []FaceID
	for _, f := range m.order {
		e := m.faces[f].edge
		for range m.faces[f].arity {
			if o := m.edges[e].origin; slices.Contains(vs, o) {
				fs = append(fs, f)
				break
			}
			e = m.edges[e].next
		}
	}
	m.RemoveFaces(fs)
}

// Boundary returns the closed loops of half-edges that have no opposite.
// Each loop is ordered so that the mesh lies to its left.
func (m *Mesh) Boundary() ([][]EdgeID, error) {
	var open []EdgeID
	total := 0
	for _, f := range m.order {
		edges, err := m.FaceEdges(f)
		if err != nil {
			return nil, err
		}
		total += len(edges)
		for _, e := range edges {
			if m.edges[e].opposite == NoEdge {
				open = append(open, e)
			}
		}
	}

	seen := make(map[EdgeID]bool, len(open))
	var loops [][]EdgeID
	for _, start := range open {
		if seen[start] {
			continue
		}
		var loop []EdgeID
		e := start
		for {
			if seen[e] {
				return nil, fmt.Errorf("%w: boundary loop through half-edge %d doesn't close", ErrCorrupt, start)
			}
			seen[e] = true
			loop = append(loop, e)

			// Rotate around the destination until reaching the next
			// half-edge without an opposite.
			n := m.edges[e].next
			for steps := 0; m.edges[n].opposite != NoEdge; steps++ {
				if steps > total {
					return nil, fmt.Errorf("%w: can't rotate around vertex %d", ErrCorrupt, m.edges[n].origin)
				}
				n = m.edges[m.edges[n].opposite].next
			}
			if n == start {
				break
			}
			e = n
		}
		loops = append(loops, loop)
	}
	return loops, nil
}
