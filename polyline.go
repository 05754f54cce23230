package tess

// Polyline is a chain of line segments through Points. If Closed is set, the
// last point connects back to the first. The parameter t is distributed
// evenly over the segments, not by length.
type Polyline struct {
	Points []Point
	Closed bool
}

var _ ParametricCurve = Polyline{}
var _ ArclenSolver = Polyline{}
var _ Nearester = Polyline{}

func (pl Polyline) numSegments() int {
	switch n := len(pl.Points); {
	case n < 2:
		return 0
	case pl.Closed:
		return n
	default:
		return n - 1
	}
}

func (pl Polyline) segment(i int) Line {
	return Line{pl.Points[i], pl.Points[(i+1)%len(pl.Points)]}
}

func (pl Polyline) Eval(t float64) Point {
	n := pl.numSegments()
	if n == 0 {
		if len(pl.Points) == 0 {
			return Point{}
		}
		return pl.Points[0]
	}
	s := t * float64(n)
	i := min(max(int(s), 0), n-1)
	return pl.segment(i).Eval(s - float64(i))
}

func (pl Polyline) Arclen(accuracy float64) float64 {
	var sum float64
	for i := range pl.numSegments() {
		sum += pl.segment(i).Length()
	}
	return sum
}

func (pl Polyline) SolveForArclen(arclen float64, accuracy float64) float64 {
	n := pl.numSegments()
	if n == 0 {
		return 0
	}
	for i := range n {
		l := pl.segment(i).Length()
		if arclen <= l || i == n-1 {
			var u float64
			if l > 0 {
				u = min(max(arclen/l, 0), 1)
			}
			return (float64(i) + u) / float64(n)
		}
		arclen -= l
	}
	panic("unreachable")
}

func (pl Polyline) Nearest(pt Point, accuracy float64) (distSq, t float64) {
	n := pl.numSegments()
	if n == 0 {
		if len(pl.Points) == 0 {
			return 0, 0
		}
		return pt.DistanceSquared(pl.Points[0]), 0
	}
	distSq = -1
	for i := range n {
		d, u := pl.segment(i).Nearest(pt, accuracy)
		if distSq < 0 || d < distSq {
			distSq = d
			t = (float64(i) + u) / float64(n)
		}
	}
	return distSq, t
}
