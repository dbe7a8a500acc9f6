package meander

import "math"

// Point represents a 2D point or vector.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	d := p.Sub(q)
	return math.Hypot(d.X, d.Y)
}

// Approx reports whether p and q differ by at most eps on both axes.
func (p Point) Approx(q Point, eps float64) bool {
	return math.Abs(p.X-q.X) <= eps && math.Abs(p.Y-q.Y) <= eps
}

// AngleFrom returns the angle of p as seen from centre.
func (p Point) AngleFrom(centre Point) float64 {
	return math.Atan2(p.Y-centre.Y, p.X-centre.X)
}

// RadiusFrom returns the distance of p from centre.
func (p Point) RadiusFrom(centre Point) float64 {
	return p.Distance(centre)
}

// Polar returns the point at distance r and angle theta from centre.
func Polar(centre Point, r, theta float64) Point {
	return Point{
		X: centre.X + r*math.Cos(theta),
		Y: centre.Y + r*math.Sin(theta),
	}
}
