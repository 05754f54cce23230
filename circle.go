package tess

import "math"

// Circle is a full circle, traversed counter-clockwise starting at angle 0.
type Circle struct {
	Center Point
	Radius float64
}

var _ ParametricCurve = Circle{}
var _ ArclenSolver = Circle{}
var _ Nearester = Circle{}

// Eval returns the point at angle 2πt.
func (c Circle) Eval(t float64) Point {
	return c.Center.Translate(VecFromAngle(2 * math.Pi * t).Mul(math.Abs(c.Radius)))
}

func (c Circle) Arclen(accuracy float64) float64 {
	return 2 * math.Pi * math.Abs(c.Radius)
}

func (c Circle) SolveForArclen(arclen float64, accuracy float64) float64 {
	return arclen / c.Arclen(accuracy)
}

func (c Circle) Nearest(pt Point, accuracy float64) (distSq, t float64) {
	v := pt.Sub(c.Center)
	r := math.Abs(c.Radius)
	d := v.Hypot() - r
	if v.Hypot2() == 0 {
		return r * r, 0
	}
	t = math.Atan2(v.Y, v.X) / (2 * math.Pi)
	if t < 0 {
		t += 1
	}
	return d * d, t
}

func (c Circle) Area() float64 {
	return math.Pi * c.Radius * c.Radius
}

func (c Circle) BoundingBox() Rect {
	r := math.Abs(c.Radius)
	return Rect{
		X0: c.Center.X - r,
		Y0: c.Center.Y - r,
		X1: c.Center.X + r,
		Y1: c.Center.Y + r,
	}
}

// Contains reports whether pt lies strictly inside the circle.
func (c Circle) Contains(pt Point) bool {
	return pt.Sub(c.Center).Hypot2() < c.Radius*c.Radius
}
