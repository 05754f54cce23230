package tess

import (
	"fmt"
	"iter"
)

// VertexID, EdgeID and FaceID are handles into a [Mesh]. They are only
// meaningful for the mesh that returned them. Handles of removed entities are
// invalidated and may later be reused for new entities.
type (
	VertexID int32
	EdgeID   int32
	FaceID   int32
)

const (
	NoVertex VertexID = -1
	NoEdge   EdgeID   = -1
	NoFace   FaceID   = -1
)

type vertex struct {
	coords Point
	// edge is one half-edge originating at the vertex, used as an entry point
	// for traversal. It is stale if that half-edge no longer originates here.
	edge EdgeID
}

type halfEdge struct {
	origin   VertexID
	face     FaceID
	next     EdgeID
	prev     EdgeID
	opposite EdgeID
}

type face struct {
	edge  EdgeID
	arity int
	alive bool
	// mark is compared against Mesh.stamp to tag faces during a single
	// operation without allocating a set.
	mark uint32
}

// Mesh is a half-edge mesh of polygonal faces.
//
// Vertices, half-edges and faces live in arenas and refer to each other by
// handle. Faces are kept in storage order: faces that survive an operation
// keep their relative order and new faces are appended.
//
// The zero value is an empty mesh ready to use. A Mesh is not safe for
// concurrent use.
type Mesh struct {
	vertices []vertex
	edges    []halfEdge
	faces    []face
	order    []FaceID

	freeEdges []EdgeID
	freeFaces []FaceID
	stamp     uint32
}

// NewMesh returns an empty mesh.
func NewMesh() *Mesh {
	return &Mesh{}
}

// AddVertex adds a vertex at p. The vertex has no half-edge until one is
// constructed on it.
func (m *Mesh) AddVertex(p Point) VertexID {
	m.vertices = append(m.vertices, vertex{coords: p, edge: NoEdge})
	return VertexID(len(m.vertices) - 1)
}

// NewEdge constructs a half-edge originating at v that doesn't bound a face
// yet. If v has no half-edge, the new one becomes its back-reference. Later
// half-edges never replace an existing back-reference.
func (m *Mesh) NewEdge(v VertexID) EdgeID {
	m.checkVertex(v)
	var e EdgeID
	if n := len(m.freeEdges); n > 0 {
		e = m.freeEdges[n-1]
		m.freeEdges = m.freeEdges[:n-1]
	} else {
		m.edges = append(m.edges, halfEdge{})
		e = EdgeID(len(m.edges) - 1)
	}
	m.edges[e] = halfEdge{
		origin:   v,
		face:     NoFace,
		next:     NoEdge,
		prev:     NoEdge,
		opposite: NoEdge,
	}
	m.claimRef(v, e)
	return e
}

// NewFace constructs a face bounded by edges, in order. The half-edges must
// not bound another face yet. It returns ErrTooFewEdges if fewer than two
// half-edges are given.
func (m *Mesh) NewFace(edges []EdgeID) (FaceID, error) {
	if len(edges) < 2 {
		return NoFace, fmt.Errorf("constructing face from %d half-edges: %w", len(edges), ErrTooFewEdges)
	}
	for _, e := range edges {
		m.checkEdge(e)
		if f := m.edges[e].face; f != NoFace {
			return NoFace, fmt.Errorf("%w: half-edge %d already bounds face %d", ErrCorrupt, e, f)
		}
	}
	f := m.allocFace()
	m.linkLoop(f, edges)
	return f, nil
}

// linkLoop closes edges into the loop of f.
func (m *Mesh) linkLoop(f FaceID, edges []EdgeID) {
	n := len(edges)
	for i, e := range edges {
		he := &m.edges[e]
		he.next = edges[(i+1)%n]
		he.prev = edges[(i+n-1)%n]
		he.face = f
	}
	m.faces[f].edge = edges[0]
	m.faces[f].arity = n
}

func (m *Mesh) allocFace() FaceID {
	var f FaceID
	if n := len(m.freeFaces); n > 0 {
		f = m.freeFaces[n-1]
		m.freeFaces = m.freeFaces[:n-1]
	} else {
		m.faces = append(m.faces, face{})
		f = FaceID(len(m.faces) - 1)
	}
	m.faces[f] = face{edge: NoEdge, alive: true}
	m.order = append(m.order, f)
	return f
}

// revive makes a face slot that was killed in the current operation active
// again, appending it to the storage order.
func (m *Mesh) revive(f FaceID) {
	m.faces[f].alive = true
	m.order = append(m.order, f)
}

func (m *Mesh) freeEdge(e EdgeID) {
	m.edges[e] = halfEdge{
		origin:   NoVertex,
		face:     NoFace,
		next:     NoEdge,
		prev:     NoEdge,
		opposite: NoEdge,
	}
	m.freeEdges = append(m.freeEdges, e)
}

// kill marks f as removed without releasing its slot.
func (m *Mesh) kill(f FaceID) {
	m.faces[f].alive = false
	m.faces[f].edge = NoEdge
}

// compactOrder drops removed faces from the storage order.
func (m *Mesh) compactOrder() {
	out := m.order[:0]
	for _, f := range m.order {
		if m.faces[f].alive {
			out = append(out, f)
		}
	}
	m.order = out
}

// nextStamp returns a mark value that no face carries yet.
func (m *Mesh) nextStamp() uint32 {
	m.stamp++
	if m.stamp == 0 {
		for i := range m.faces {
			m.faces[i].mark = 0
		}
		m.stamp = 1
	}
	return m.stamp
}

// hasRef reports whether v's back-reference names a half-edge originating at v.
func (m *Mesh) hasRef(v VertexID) bool {
	e := m.vertices[v].edge
	return e != NoEdge && m.edges[e].origin == v
}

// liveRef reports whether v's back-reference names a half-edge of an active
// face.
func (m *Mesh) liveRef(v VertexID) bool {
	if !m.hasRef(v) {
		return false
	}
	f := m.edges[m.vertices[v].edge].face
	return f != NoFace && m.faces[f].alive
}

// claimRef makes e the back-reference of v unless v already has one.
func (m *Mesh) claimRef(v VertexID, e EdgeID) {
	if !m.hasRef(v) {
		m.vertices[v].edge = e
	}
}

// refreshRefs clears back-references that don't lead to an active face and
// assigns the first half-edge found in storage order instead.
func (m *Mesh) refreshRefs() {
	for v := range m.vertices {
		if !m.liveRef(VertexID(v)) {
			m.vertices[v].edge = NoEdge
		}
	}
	for _, f := range m.order {
		e := m.faces[f].edge
		for range m.faces[f].arity {
			if o := m.edges[e].origin; m.vertices[o].edge == NoEdge {
				m.vertices[o].edge = e
			}
			e = m.edges[e].next
		}
	}
}

func (m *Mesh) checkVertex(v VertexID) {
	if v < 0 || int(v) >= len(m.vertices) {
		panic(fmt.Sprintf("tess: invalid vertex handle %d", v))
	}
}

func (m *Mesh) checkEdge(e EdgeID) {
	if e < 0 || int(e) >= len(m.edges) || m.edges[e].origin == NoVertex {
		panic(fmt.Sprintf("tess: invalid half-edge handle %d", e))
	}
}

func (m *Mesh) checkFace(f FaceID) {
	if f < 0 || int(f) >= len(m.faces) || !m.faces[f].alive {
		panic(fmt.Sprintf("tess: invalid face handle %d", f))
	}
}

// Coords returns the position of v.
func (m *Mesh) Coords(v VertexID) Point {
	m.checkVertex(v)
	return m.vertices[v].coords
}

// VertexEdge returns a half-edge originating at v, or NoEdge if v isn't used
// by any face. Which half-edge is returned depends on construction order.
func (m *Mesh) VertexEdge(v VertexID) EdgeID {
	m.checkVertex(v)
	if !m.hasRef(v) {
		return NoEdge
	}
	return m.vertices[v].edge
}

// Origin returns the vertex e starts at.
func (m *Mesh) Origin(e EdgeID) VertexID {
	m.checkEdge(e)
	return m.edges[e].origin
}

// Dest returns the vertex e ends at, which is the origin of the next
// half-edge in its face. It returns NoVertex for a half-edge that doesn't
// bound a face.
func (m *Mesh) Dest(e EdgeID) VertexID {
	m.checkEdge(e)
	n := m.edges[e].next
	if n == NoEdge {
		return NoVertex
	}
	return m.edges[n].origin
}

func (m *Mesh) Next(e EdgeID) EdgeID {
	m.checkEdge(e)
	return m.edges[e].next
}

func (m *Mesh) Prev(e EdgeID) EdgeID {
	m.checkEdge(e)
	return m.edges[e].prev
}

// Opposite returns the half-edge of the neighboring face that spans the same
// segment, or NoEdge on the boundary.
func (m *Mesh) Opposite(e EdgeID) EdgeID {
	m.checkEdge(e)
	return m.edges[e].opposite
}

// EdgeFace returns the face bounded by e.
func (m *Mesh) EdgeFace(e EdgeID) FaceID {
	m.checkEdge(e)
	return m.edges[e].face
}

// FaceEdge returns the half-edge f refers to.
func (m *Mesh) FaceEdge(f FaceID) EdgeID {
	m.checkFace(f)
	return m.faces[f].edge
}

// Arity returns the number of half-edges bounding f.
func (m *Mesh) Arity(f FaceID) int {
	m.checkFace(f)
	return m.faces[f].arity
}

// Alive reports whether f is an active face of m.
func (m *Mesh) Alive(f FaceID) bool {
	return f >= 0 && int(f) < len(m.faces) && m.faces[f].alive
}

// Faces returns the active faces in storage order.
func (m *Mesh) Faces() []FaceID {
	out := make([]FaceID, len(m.order))
	copy(out, m.order)
	return out
}

// AllFaces returns an iterator over the active faces in storage order. The
// mesh must not be modified during iteration.
func (m *Mesh) AllFaces() iter.Seq[FaceID] {
	return func(yield func(FaceID) bool) {
		for _, f := range m.order {
			if !yield(f) {
				return
			}
		}
	}
}

// NumFaces returns the number of active faces.
func (m *Mesh) NumFaces() int {
	return len(m.order)
}

// NumEdges returns the number of half-edges bounding active faces.
func (m *Mesh) NumEdges() int {
	n := 0
	for _, f := range m.order {
		n += m.faces[f].arity
	}
	return n
}

// NumVertices returns the number of vertices used by active faces.
func (m *Mesh) NumVertices() int {
	n := 0
	for v := range m.vertices {
		if m.liveRef(VertexID(v)) {
			n++
		}
	}
	return n
}

// Vertices returns the vertices used by active faces, in creation order.
func (m *Mesh) Vertices() []VertexID {
	var out []VertexID
	for v := range m.vertices {
		if m.liveRef(VertexID(v)) {
			out = append(out, VertexID(v))
		}
	}
	return out
}
