package tess

import "math"

// DefaultAccuracy is a default value for methods that take an accuracy
// argument.
const DefaultAccuracy = 1e-6

// ParametricCurve describes a curve parametrized by a scalar t ∈ [0, 1].
// Curves are the usual source of boundary points for [DelaunayOpt].
type ParametricCurve interface {
	// Eval evaluates the curve at parameter t.
	Eval(t float64) Point
}

// Arclener describes a parametrized curve that can have its arc length
// measured.
type Arclener interface {
	// Arclen returns the length of the curve, accurate to the given accuracy.
	Arclen(accuracy float64) float64
}

// ArclenSolver describes a parametrized curve that can solve for the
// parameter at which a given arc length is reached.
type ArclenSolver interface {
	Arclener
	// SolveForArclen returns the parameter t such that the length of the
	// curve from 0 to t is arclen.
	SolveForArclen(arclen float64, accuracy float64) float64
}

// Nearester describes curves that can find the point nearest to a given
// point.
type Nearester interface {
	// Nearest returns the squared distance from pt to the nearest point on
	// the curve, and the parameter of that point.
	Nearest(pt Point, accuracy float64) (distSq, t float64)
}

// Sample evaluates c at n parameters spaced uniformly in [0, 1]. For closed
// curves the end point, which repeats the start point, is omitted.
func Sample(c ParametricCurve, n int, closed bool) []Point {
	if n <= 0 {
		return nil
	}
	out := make([]Point, n)
	for i := range n {
		out[i] = c.Eval(sampleParam(i, n, closed))
	}
	return out
}

// SampleArclen returns n points on c spaced uniformly by arc length. For
// closed curves the end point, which repeats the start point, is omitted.
func SampleArclen(c interface {
	ParametricCurve
	ArclenSolver
}, n int, closed bool, accuracy float64) []Point {
	if n <= 0 {
		return nil
	}
	total := c.Arclen(accuracy)
	out := make([]Point, n)
	for i := range n {
		s := sampleParam(i, n, closed) * total
		out[i] = c.Eval(c.SolveForArclen(s, accuracy))
	}
	return out
}

func sampleParam(i, n int, closed bool) float64 {
	switch {
	case closed:
		return float64(i) / float64(n)
	case n == 1:
		return 0
	default:
		return float64(i) / float64(n-1)
	}
}

// DeviationInfo describes how far a set of points strays from a curve.
type DeviationInfo struct {
	// TMax is the curve parameter closest to the farthest point.
	TMax float64
	// DMax is the largest distance between a point and the curve.
	DMax float64
	// DAvg is the average distance.
	DAvg float64
}

// Deviation measures the distance of each point to c.
func Deviation(points []Point, c Nearester, accuracy float64) DeviationInfo {
	var info DeviationInfo
	if len(points) == 0 {
		return info
	}
	for _, pt := range points {
		distSq, t := c.Nearest(pt, accuracy)
		d := math.Sqrt(distSq)
		if d > info.DMax {
			info.DMax = d
			info.TMax = t
		}
		info.DAvg += d
	}
	info.DAvg /= float64(len(points))
	return info
}
