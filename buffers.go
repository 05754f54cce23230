package tess

import "fmt"

// CellKind classifies the faces of a mesh for interchange formats.
type CellKind int

const (
	CellTriangle CellKind = iota
	CellQuad
	CellPolygon
)

func (k CellKind) String() string {
	switch k {
	case CellTriangle:
		return "triangle"
	case CellQuad:
		return "quad"
	case CellPolygon:
		return "polygon"
	default:
		return fmt.Sprintf("CellKind(%d)", int(k))
	}
}

// Cell is a face expressed as indices into [Buffers.Points].
type Cell struct {
	Kind    CellKind
	Indices []int
}

// Buffers is a mesh flattened into a point buffer and a list of cells, the
// shape expected by most rendering and interchange formats.
type Buffers struct {
	Points []Point
	Cells  []Cell
}

// VertexIndex assigns consecutive indices to the vertices of m, in the order
// they are first seen when walking the faces in storage order and each face
// in loop order.
func (m *Mesh) VertexIndex() (map[VertexID]int, error) {
	index := make(map[VertexID]int)
	for _, f := range m.order {
		vs, err := m.FaceVertices(f)
		if err != nil {
			return nil, err
		}
		for _, v := range vs {
			if _, ok := index[v]; !ok {
				index[v] = len(index)
			}
		}
	}
	return index, nil
}

// Buffers flattens m. Points are numbered as by [Mesh.VertexIndex]; there is
// one cell per face, in storage order. Triangles become CellTriangle, quads
// CellQuad and larger faces CellPolygon.
func (m *Mesh) Buffers() (Buffers, error) {
	var buf Buffers
	index := make(map[VertexID]int)
	for _, f := range m.order {
		vs, err := m.FaceVertices(f)
		if err != nil {
			return Buffers{}, err
		}
		cell := Cell{Indices: make([]int, len(vs))}
		switch len(vs) {
		case 3:
			cell.Kind = CellTriangle
		case 4:
			cell.Kind = CellQuad
		default:
			cell.Kind = CellPolygon
		}
		for i, v := range vs {
			idx, ok := index[v]
			if !ok {
				idx = len(buf.Points)
				index[v] = idx
				buf.Points = append(buf.Points, m.vertices[v].coords)
			}
			cell.Indices[i] = idx
		}
		buf.Cells = append(buf.Cells, cell)
	}
	return buf, nil
}
