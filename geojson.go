package tess

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// GeoJSON returns m as a feature collection with one Polygon feature per
// face, in storage order. Each feature has the properties "face", its
// position in storage order, and "neighbors", the position of the face
// across each of its edges in loop order or -1 for boundary edges.
func (m *Mesh) GeoJSON() (*geojson.FeatureCollection, error) {
	pos := make(map[FaceID]int, len(m.order))
	for i, f := range m.order {
		pos[f] = i
	}

	fc := geojson.NewFeatureCollection()
	for i, f := range m.order {
		edges, err := m.FaceEdges(f)
		if err != nil {
			return nil, err
		}
		ring := make(orb.Ring, 0, len(edges)+1)
		neighbors := make([]int, len(edges))
		for j, e := range edges {
			p := m.vertices[m.edges[e].origin].coords
			ring = append(ring, orb.Point{p.X, p.Y})
			if o := m.edges[e].opposite; o != NoEdge {
				neighbors[j] = pos[m.edges[o].face]
			} else {
				neighbors[j] = -1
			}
		}
		ring = append(ring, ring[0])

		feat := geojson.NewFeature(orb.Polygon{ring})
		feat.Properties["face"] = i
		feat.Properties["neighbors"] = neighbors
		fc.Append(feat)
	}
	return fc, nil
}
