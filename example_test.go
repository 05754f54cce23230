package tess_test

import (
	"fmt"

	"honnef.co/go/tess"
)

func ExampleDelaunayOpt() {
	square := tess.Polyline{
		Points: []tess.Point{tess.Pt(0, 0), tess.Pt(2, 0), tess.Pt(2, 2), tess.Pt(0, 2)},
		Closed: true,
	}
	boundary := tess.SampleArclen(square, 8, true, tess.DefaultAccuracy)
	interior := []tess.Point{tess.Pt(1, 1), tess.Pt(3, 3)}

	m, rep, err := tess.DelaunayOpt(boundary, interior, nil)
	if err != nil {
		panic(err)
	}
	fmt.Println("inserted:", rep.Inserted)
	fmt.Println("faces:", m.NumFaces())
	for _, d := range rep.Dropped {
		fmt.Printf("dropped interior point %d: %v\n", d.Index, d.Err)
	}

	// Output:
	// inserted: 9
	// faces: 8
	// dropped interior point 1: inserting (3, 3): tess: point is outside the triangulated region
}

func ExampleMesh_Flip() {
	pts := []tess.Point{tess.Pt(0, 0), tess.Pt(1, 0), tess.Pt(1, 1), tess.Pt(0, 1)}
	m, err := tess.FromPolygons(pts, [][]int{{0, 1, 2}, {0, 2, 3}})
	if err != nil {
		panic(err)
	}
	fs := m.Faces()
	if err := m.Flip(fs[0], fs[1]); err != nil {
		panic(err)
	}
	for _, f := range fs {
		coords, _ := m.FaceCoords(f)
		fmt.Println(coords)
	}

	// Output:
	// [(1, 0) (0, 1) (0, 0)]
	// [(0, 1) (1, 0) (1, 1)]
}
