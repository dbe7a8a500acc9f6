package meander

// pointsPerPattern is the number of angular steps covered by one motif.
const pointsPerPattern = 5

// CircleConfig describes a circular meander band.
//
// The band wraps PatternCount motifs around a circle of outer radius Ro.
// Construction solves the radii set and fails fast if the motif does not
// fit, so every method on a CircleConfig is total.
type CircleConfig struct {
	rOuter       float64
	patternCount int
	borderMargin float64
	strokeWidth  float64
	radii        Radii
}

// NewCircleConfig creates a circular pattern configuration. It returns a
// *ConfigError wrapping ErrTooFewRepeats when 5*patternCount is below
// MinPointsPerRing.
func NewCircleConfig(rOuter float64, patternCount int, borderMargin, strokeWidth float64) (CircleConfig, error) {
	radii, err := SolveRadii(rOuter, pointsPerPattern*patternCount)
	if err != nil {
		return CircleConfig{}, err
	}

	Logger().Debug("circle radii solved",
		"n", pointsPerPattern*patternCount,
		"ri", radii.Ri, "ra", radii.Ra, "rb", radii.Rb, "rc", radii.Rc,
		"rd", radii.Rd, "re", radii.Re, "ro", radii.Ro)

	return CircleConfig{
		rOuter:       rOuter,
		patternCount: patternCount,
		borderMargin: borderMargin,
		strokeWidth:  strokeWidth,
		radii:        radii,
	}, nil
}

// OuterRadius returns the radius of the outer frame.
func (c CircleConfig) OuterRadius() float64 { return c.rOuter }

// PatternCount returns the number of motif repeats around the circle.
func (c CircleConfig) PatternCount() int { return c.patternCount }

// PointsPerRing returns n, the number of angular steps around the circle.
func (c CircleConfig) PointsPerRing() int { return pointsPerPattern * c.patternCount }

// BorderMargin returns the empty margin around the outer frame.
func (c CircleConfig) BorderMargin() float64 { return c.borderMargin }

// StrokeWidth returns the stroke width used to pad the canvas.
func (c CircleConfig) StrokeWidth() float64 { return c.strokeWidth }

// Radii returns the solved radii set.
func (c CircleConfig) Radii() Radii { return c.radii }

// Centre returns the centre of every ring.
func (c CircleConfig) Centre() Point {
	v := c.borderMargin + c.rOuter + c.strokeWidth
	return Pt(v, v)
}

// CanvasSize returns the dimensions of the square document viewport.
func (c CircleConfig) CanvasSize() (w, h float64) {
	side := 2*c.rOuter + 2*c.borderMargin + 2*c.strokeWidth
	return side, side
}

// FrameShapes returns the outer circle (radius Ro) and the inner circle
// (radius Ri), both around Centre.
func (c CircleConfig) FrameShapes() (outer, inner Shape) {
	centre := c.Centre()
	return Circle{Center: centre, R: c.radii.Ro}, Circle{Center: centre, R: c.radii.Ri}
}
