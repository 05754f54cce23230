package tess

import "fmt"

// NaiveDelaunay triangulates points by brute force: every counter-clockwise
// triple whose circumcircle contains no other point by more than tol becomes
// a triangle, unless it crosses or repeats a triangle accepted before it.
// Triples are visited in lexicographic index order, which decides between
// the possible triangulations of co-circular points.
//
// It runs in O(n⁴) and exists as a reference for testing [Mesh.Insert].
func NaiveDelaunay(points []Point, tol float64) (*Mesh, error) {
	for i, p := range points {
		if !p.IsFinite() {
			return nil, fmt.Errorf("point %d %v: %w", i, p, ErrInvalidPoint)
		}
	}
	n := len(points)
	var tris [][]int
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			for k := j + 1; k < n; k++ {
				a, b, c := i, j, k
				switch o := Orientation(points[a], points[b], points[c]); {
				case o == 0:
					continue
				case o < 0:
					b, c = c, b
				}
				if !emptyCircumcircle(points, a, b, c, tol) {
					continue
				}
				if overlapsAny(points, tris, [3]int{a, b, c}) {
					continue
				}
				tris = append(tris, []int{a, b, c})
			}
		}
	}
	return FromPolygons(points, tris)
}

func emptyCircumcircle(points []Point, a, b, c int, tol float64) bool {
	for l, p := range points {
		if l == a || l == b || l == c {
			continue
		}
		if InCircle(points[a], points[b], points[c], p) > tol {
			return false
		}
	}
	return true
}

func overlapsAny(points []Point, tris [][]int, t [3]int) bool {
	for _, u := range tris {
		if samePermutation(u, t) {
			return true
		}
		for i := range 3 {
			p, q := points[t[i]], points[t[(i+1)%3]]
			for j := range 3 {
				if segmentsCross(p, q, points[u[j]], points[u[(j+1)%3]]) {
					return true
				}
			}
		}
	}
	return false
}

func samePermutation(u []int, t [3]int) bool {
	for _, x := range t {
		if u[0] != x && u[1] != x && u[2] != x {
			return false
		}
	}
	return true
}

// FromPolygons builds a mesh from an indexed polygon soup. Each polygon lists
// indices into points in counter-clockwise order. Half-edges that span the
// same segment in opposite directions are linked as opposites; a directed
// segment used by two polygons is rejected with ErrAlreadyLinked.
func FromPolygons(points []Point, polygons [][]int) (*Mesh, error) {
	m := NewMesh()
	ids := make([]VertexID, len(points))
	for i, p := range points {
		ids[i] = m.AddVertex(p)
	}

	type segment struct{ from, to VertexID }
	half := make(map[segment]EdgeID)
	var order []segment
	for pi, poly := range polygons {
		edges := make([]EdgeID, len(poly))
		for i, idx := range poly {
			if idx < 0 || idx >= len(points) {
				return nil, fmt.Errorf("polygon %d: vertex index %d out of range", pi, idx)
			}
			edges[i] = m.NewEdge(ids[idx])
		}
		if _, err := m.NewFace(edges); err != nil {
			return nil, fmt.Errorf("polygon %d: %w", pi, err)
		}
		for i := range poly {
			s := segment{ids[poly[i]], ids[poly[(i+1)%len(poly)]]}
			if _, ok := half[s]; ok {
				return nil, fmt.Errorf("polygon %d: segment %d→%d: %w", pi, s.from, s.to, ErrAlreadyLinked)
			}
			half[s] = edges[i]
			order = append(order, s)
		}
	}
	for _, s := range order {
		e := half[s]
		o, ok := half[segment{s.to, s.from}]
		if !ok || m.edges[e].opposite != NoEdge {
			continue
		}
		if err := m.LinkEdges(e, o); err != nil {
			return nil, err
		}
	}
	return m, nil
}
