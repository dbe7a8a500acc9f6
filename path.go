package meander

import "math"

// PathElement represents a single element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo starts the path at a point without drawing.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to an absolute point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// LineBy draws a line by a relative offset. Point holds the resolved
// absolute end point so consumers never have to track the pen.
type LineBy struct {
	Offset Point
	Point  Point
}

func (LineBy) isPathElement() {}

// Close closes the path by drawing a line back to the start point.
type Close struct{}

func (Close) isPathElement() {}

// Path is a single open or closed polyline.
//
// Generators build a Path once and hand it out; callers must treat the
// returned value as read-only.
type Path struct {
	elements []PathElement
	start    Point
	current  Point
	closed   bool
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		elements: make([]PathElement, 0, 64),
	}
}

// newPathCap creates an empty path with room for n elements.
func newPathCap(n int) *Path {
	return &Path{
		elements: make([]PathElement, 0, n),
	}
}

// MoveTo moves to a point without drawing.
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
}

// LineTo draws a line to an absolute point.
func (p *Path) LineTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
}

// LineBy draws a line by the offset (dx, dy) from the current point.
func (p *Path) LineBy(dx, dy float64) {
	off := Pt(dx, dy)
	pt := p.current.Add(off)
	p.elements = append(p.elements, LineBy{Offset: off, Point: pt})
	p.current = pt
}

// Close closes the path by drawing a line to the start point.
func (p *Path) Close() {
	p.elements = append(p.elements, Close{})
	p.current = p.start
	p.closed = true
}

// Elements returns the path elements.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// Start returns the point the path was moved to.
func (p *Path) Start() Point {
	return p.start
}

// Current returns the current point.
func (p *Path) Current() Point {
	return p.current
}

// Closed reports whether the path ends with a Close element.
func (p *Path) Closed() bool {
	return p.closed
}

// LineCount returns the number of explicit line segments.
// The implicit closing segment is not counted.
func (p *Path) LineCount() int {
	n := 0
	for _, e := range p.elements {
		switch e.(type) {
		case LineTo, LineBy:
			n++
		}
	}
	return n
}

// Points returns every vertex of the path in drawing order, starting with
// the move point. The closing segment adds no vertex.
func (p *Path) Points() []Point {
	pts := make([]Point, 0, len(p.elements))
	for _, e := range p.elements {
		switch e := e.(type) {
		case MoveTo:
			pts = append(pts, e.Point)
		case LineTo:
			pts = append(pts, e.Point)
		case LineBy:
			pts = append(pts, e.Point)
		}
	}
	return pts
}

// End returns the last explicit vertex of the path.
// For a well-formed closed meander this coincides with Start.
func (p *Path) End() Point {
	pts := p.Points()
	if len(pts) == 0 {
		return Point{}
	}
	return pts[len(pts)-1]
}

// Bounds returns the smallest axis-aligned rectangle containing every
// vertex. An empty path has zero bounds.
func (p *Path) Bounds() Rect {
	pts := p.Points()
	if len(pts) == 0 {
		return Rect{}
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, pt := range pts {
		minX = math.Min(minX, pt.X)
		minY = math.Min(minY, pt.Y)
		maxX = math.Max(maxX, pt.X)
		maxY = math.Max(maxY, pt.Y)
	}
	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}
