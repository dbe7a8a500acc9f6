package meander

// step is a relative move measured in key units.
type step struct {
	dx, dy int
}

// motifSegments is the number of line segments in one motif repeat, for
// both topologies.
const motifSegments = 10

// motif is one repeat of the meander: ten relative moves that advance the
// pen by exactly one pattern length along a side.
type motif [motifSegments]step

// The four motif variants, one per direction of travel around the border.
// Each draws a staircase with a notch; they are fixed shapes, not derived.
var (
	motifTop = motif{
		{0, -4}, {4, 0}, {0, 3}, {-2, 0}, {0, -1},
		{1, 0}, {0, -1}, {-2, 0}, {0, 3}, {4, 0},
	}
	motifRight = motif{
		{4, 0}, {0, 4}, {-3, 0}, {0, -2}, {1, 0},
		{0, 1}, {1, 0}, {0, -2}, {-3, 0}, {0, 4},
	}
	motifBottom = motif{
		{-4, 0}, {0, -3}, {2, 0}, {0, 1}, {-1, 0},
		{0, 1}, {2, 0}, {0, -3}, {-4, 0}, {0, 4},
	}
	motifLeft = motif{
		{0, -4}, {3, 0}, {0, 2}, {-1, 0}, {0, -1},
		{-1, 0}, {0, 2}, {3, 0}, {0, -4}, {-4, 0},
	}
)

// Corner transitions between sides, in key units.
var (
	leadIn       = []step{{0, -1}}
	cornerTop    = []step{{0, -4}, {1, 0}}
	cornerRight  = []step{{4, 0}, {0, 5}}
	cornerBottom = []step{{-5, 0}}
)

// rectFixedSegments is the number of lead-in and corner segments.
var rectFixedSegments = len(leadIn) + len(cornerTop) + len(cornerRight) + len(cornerBottom)

// RectLineCount returns the number of explicit line segments in the path
// of a rectangular meander with the given unit counts.
func RectLineCount(widthUnits, heightUnits int) int {
	return rectFixedSegments +
		motifSegments*2*max(widthUnits-1, 0) +
		motifSegments*2*max(heightUnits-1, 0)
}

// Path walks the border clockwise from StartPosition: up the lead-in, along
// the top, down the right, back along the bottom and up the left side,
// then closes. Every motif advances by exactly one pattern length, so the
// walk always ends where it started.
func (c RectConfig) Path() *Path {
	k := c.unit()
	start := c.StartPosition()

	p := newPathCap(RectLineCount(c.widthUnits, c.heightUnits) + 2)
	p.MoveTo(start.X, start.Y)

	draw := func(steps []step) {
		for _, s := range steps {
			p.LineBy(float64(s.dx)*k, float64(s.dy)*k)
		}
	}
	repeat := func(m motif, n int) {
		for i := 0; i < n; i++ {
			draw(m[:])
		}
	}

	draw(leadIn)
	repeat(motifTop, c.widthUnits-1)
	draw(cornerTop)
	repeat(motifRight, c.heightUnits-1)
	draw(cornerRight)
	repeat(motifBottom, c.widthUnits-1)
	draw(cornerBottom)
	repeat(motifLeft, c.heightUnits-1)
	p.Close()

	Logger().Debug("rect meander generated",
		"width_units", c.widthUnits,
		"height_units", c.heightUnits,
		"segments", p.LineCount())

	return p
}
