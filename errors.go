package tess

import "errors"

var (
	// ErrTooFewEdges is returned when constructing a face from fewer than two
	// half-edges.
	ErrTooFewEdges = errors.New("tess: face needs at least two half-edges")
	// ErrNotTriangle is returned by operations that only apply to triangles.
	ErrNotTriangle = errors.New("tess: face is not a triangle")
	// ErrNotAdjacent is returned when two faces do not share an edge.
	ErrNotAdjacent = errors.New("tess: faces are not adjacent")
	// ErrAlreadyLinked is returned when linking a half-edge that already has
	// an opposite.
	ErrAlreadyLinked = errors.New("tess: half-edge already has an opposite")
	// ErrEdgeMismatch is returned when linking two half-edges that do not
	// span the same segment in opposite directions.
	ErrEdgeMismatch = errors.New("tess: half-edges do not span the same segment")
	// ErrNotConvex is returned by Flip when the two triangles form a quad
	// whose other diagonal lies outside of it.
	ErrNotConvex = errors.New("tess: flip would produce a degenerate or clockwise triangle")
	// ErrOutsideFace is returned when a vertex is not strictly inside the face
	// it is inserted into.
	ErrOutsideFace = errors.New("tess: vertex is not strictly inside face")
	// ErrDuplicatePoint is returned when inserting a point that coincides
	// with an existing vertex.
	ErrDuplicatePoint = errors.New("tess: point coincides with an existing vertex")
	// ErrOutsideHull is returned when inserting a point that lies on or
	// beyond the boundary of the triangulated region.
	ErrOutsideHull = errors.New("tess: point is outside the triangulated region")
	// ErrDegenerateCavity is returned when the faces violated by a point
	// don't form a cavity that can be re-triangulated around it, which only
	// happens when floating-point error exceeds the tolerance.
	ErrDegenerateCavity = errors.New("tess: cavity isn't star-shaped around point")
	// ErrLostWithScaffold reports a boundary point that was inserted but
	// whose faces were all removed together with the scaffold.
	ErrLostWithScaffold = errors.New("tess: point was removed with the scaffold")
	// ErrInvalidPoint is returned for points with infinite or NaN coordinates.
	ErrInvalidPoint = errors.New("tess: point is not finite")
	// ErrNoPoints is returned when triangulating an empty point set.
	ErrNoPoints = errors.New("tess: no points")
	// ErrInvalidMargin is returned for scaffold margins too small to enclose
	// the bounding box.
	ErrInvalidMargin = errors.New("tess: scaffold margin must be at least 3")
	// ErrCorrupt reports a violated structural invariant.
	ErrCorrupt = errors.New("tess: corrupt mesh")
	// ErrNotDelaunay reports a face whose circumcircle contains a vertex.
	ErrNotDelaunay = errors.New("tess: Delaunay condition violated")
)
