// Package tess builds and edits polygon meshes in the plane and computes
// Delaunay triangulations of point sets.
//
// # Meshes
//
// [Mesh] is a half-edge mesh. Every face is a closed loop of half-edges, each
// of which starts at a vertex and may be paired with an opposite half-edge
// that bounds the neighboring face. Vertices, half-edges and faces are
// addressed by the handles [VertexID], [EdgeID] and [FaceID].
//
// Meshes can be built by hand with [Mesh.AddVertex], [Mesh.NewEdge],
// [Mesh.NewFace] and [Mesh.LinkEdges], or from an indexed polygon soup with
// [FromPolygons]. The local edits [Mesh.Flip], [Mesh.InsertVertexIntoFace]
// and [Mesh.RemoveFaces] keep the structure consistent, which
// [Mesh.Validate] checks.
//
// Faces are kept in storage order. Faces that survive an edit keep their
// relative order and faces created by it are appended, so that iteration
// over [Mesh.Faces] is deterministic.
//
// # Triangulation
//
// [Mesh.Insert] adds a point to a triangulation with the Bowyer–Watson
// algorithm. [DelaunayOpt] drives it in two phases: boundary points are
// inserted into a scaffold triangle (see [EncompassingMesh]), the scaffold is
// stripped, and interior points are inserted into what remains. Points that
// can't be inserted are reported in a [Report] instead of failing the whole
// triangulation.
//
// The geometric predicates [Orientation] and [InCircle] are evaluated in
// floating point and compared against a tolerance, [DefaultTolerance] unless
// configured otherwise. [NaiveDelaunay] is a brute-force reference useful for
// testing.
//
// # Boundaries
//
// Boundary points are often sampled from curves. [Line], [Circle] and
// [Polyline] implement [ParametricCurve]; [Sample] and [SampleArclen] turn
// them into point lists, and [Deviation] measures how closely points follow
// a curve.
//
// # Output
//
// [Mesh.Buffers] flattens a mesh into a point buffer and a list of cells.
// [Mesh.GeoJSON] exports faces as GeoJSON polygons and [Mesh.Render] draws a
// mesh into an image, which [EncodePNG] can write out.
//
// # Coordinate system
//
// Orientation follows a y-up space: counter-clockwise faces have positive
// area. [Mesh.Render] flips the y axis when mapping to pixels.
package tess
