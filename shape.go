package meander

// Shape is a frame outline drawn around a meander band.
// The concrete types are Rect and Circle.
type Shape interface {
	isShape()
}

// Rect is an axis-aligned rectangle with its top-left corner at (X, Y).
type Rect struct {
	X, Y, W, H float64
}

func (Rect) isShape() {}

// Min returns the top-left corner.
func (r Rect) Min() Point { return Pt(r.X, r.Y) }

// Max returns the bottom-right corner.
func (r Rect) Max() Point { return Pt(r.X+r.W, r.Y+r.H) }

// Contains reports whether q lies inside r or on its boundary.
func (r Rect) Contains(q Point) bool {
	return q.X >= r.X && q.X <= r.X+r.W && q.Y >= r.Y && q.Y <= r.Y+r.H
}

// Circle is a circle of radius R around Center.
type Circle struct {
	Center Point
	R      float64
}

func (Circle) isShape() {}

// Pattern is a generated meander ready for output: a canvas, one closed
// path and the outer and inner frame shapes.
//
// Implementations are immutable; every method is a pure function of the
// configuration the pattern was built from.
type Pattern interface {
	// CanvasSize returns the document viewport dimensions.
	CanvasSize() (w, h float64)

	// Path returns the closed meander outline.
	Path() *Path

	// FrameShapes returns the outer and inner boundary shapes.
	FrameShapes() (outer, inner Shape)
}

var (
	_ Pattern = RectConfig{}
	_ Pattern = CircleConfig{}
)
