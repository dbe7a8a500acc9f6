package meander

// keyPatternUnits is the length of one motif repeat in key units.
const keyPatternUnits = 5

// RectConfig describes a rectangular meander border.
//
// All lengths are in canvas units. The border is WidthUnits motifs wide and
// HeightUnits motifs tall; each motif spans five key units. Unit counts
// below 3 are accepted and produce degenerate but finite geometry.
type RectConfig struct {
	keyUnitLength int
	widthUnits    int
	heightUnits   int
	borderMargin  float64
	strokeWidth   float64
}

// NewRectConfig creates a rectangular pattern configuration.
// strokeWidth only pads the canvas; it does not change the path.
func NewRectConfig(keyUnitLength, widthUnits, heightUnits int, borderMargin, strokeWidth float64) RectConfig {
	return RectConfig{
		keyUnitLength: keyUnitLength,
		widthUnits:    widthUnits,
		heightUnits:   heightUnits,
		borderMargin:  borderMargin,
		strokeWidth:   strokeWidth,
	}
}

// KeyUnitLength returns the length of one key unit.
func (c RectConfig) KeyUnitLength() int { return c.keyUnitLength }

// WidthUnits returns the number of motif repeats across.
func (c RectConfig) WidthUnits() int { return c.widthUnits }

// HeightUnits returns the number of motif repeats down.
func (c RectConfig) HeightUnits() int { return c.heightUnits }

// KeyPatternLength returns the length of one motif repeat.
func (c RectConfig) KeyPatternLength() int { return c.keyUnitLength * keyPatternUnits }

// BorderMargin returns the empty margin around the outer frame.
func (c RectConfig) BorderMargin() float64 { return c.borderMargin }

// StrokeWidth returns the stroke width used to pad the canvas.
func (c RectConfig) StrokeWidth() float64 { return c.strokeWidth }

func (c RectConfig) unit() float64    { return float64(c.keyUnitLength) }
func (c RectConfig) pattern() float64 { return float64(c.KeyPatternLength()) }

// CanvasSize returns the document viewport dimensions.
func (c RectConfig) CanvasSize() (w, h float64) {
	pad := 2*c.borderMargin + 2*c.unit() + 2*c.strokeWidth
	w = float64(c.widthUnits)*c.pattern() + pad
	h = float64(c.heightUnits)*c.pattern() + pad
	return w, h
}

// StartPosition returns the first vertex of the meander path: one unit in
// from the outer frame horizontally and one motif plus one unit down.
func (c RectConfig) StartPosition() Point {
	k := c.unit()
	return Pt(
		c.borderMargin+k+c.strokeWidth,
		c.pattern()+c.borderMargin+k+c.strokeWidth,
	)
}

// OuterFrame returns the rectangle enclosing the whole band.
func (c RectConfig) OuterFrame() Rect {
	k := c.unit()
	return Rect{
		X: c.borderMargin + c.strokeWidth,
		Y: c.borderMargin + c.strokeWidth,
		W: float64(c.widthUnits)*c.pattern() + 2*k,
		H: float64(c.heightUnits)*c.pattern() + 2*k,
	}
}

// InnerFrame returns the rectangle enclosed by the band.
//
// The vertical origin does not include the border margin; this matches the
// established output of the generator and is kept for compatibility.
func (c RectConfig) InnerFrame() Rect {
	k := c.unit()
	return Rect{
		X: 6*k + c.borderMargin + c.strokeWidth,
		Y: 6*k + c.strokeWidth,
		W: float64(c.widthUnits-2) * c.pattern(),
		H: float64(c.heightUnits-2) * c.pattern(),
	}
}

// FrameShapes returns the outer and inner frame rectangles.
func (c RectConfig) FrameShapes() (outer, inner Shape) {
	return c.OuterFrame(), c.InnerFrame()
}
