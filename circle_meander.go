package meander

import "math"

// RingPoints are six consecutive points on one ring. Index 0 is the seed
// and index 5 seeds the next repeat.
type RingPoints [6]Point

// CirclePoints returns six points on the circle of radius r around centre.
// The first point is p1 itself; the others follow at a fixed angular step
// of 2π/(5·patternCount), so five steps cover one motif.
func CirclePoints(centre Point, patternCount int, p1 Point, r float64) RingPoints {
	u := 2 * r * math.Pi / float64(pointsPerPattern*patternCount)
	theta := u / r
	theta1 := p1.AngleFrom(centre)

	var pts RingPoints
	pts[0] = p1
	for i := 1; i < len(pts); i++ {
		pts[i] = Polar(centre, r, theta1+float64(i)*theta)
	}
	return pts
}

// RingSet holds the points of one motif repeat on the five meander rings,
// from A (innermost, radius Ra) to E (outermost, radius Re).
type RingSet struct {
	A, B, C, D, E RingPoints
}

// RingCursor is a finite, forward-only sequence of RingSets, one per motif
// repeat. Each set after the first is seeded from the previous set's last
// points. A cursor cannot be rewound; create a new one with Rings.
type RingCursor struct {
	centre       Point
	radii        Radii
	patternCount int
	remaining    int
	seeds        [5]Point
}

// Rings returns a cursor over the PatternCount ring sets of c, starting
// with every ring's seed straight up from the centre.
func (c CircleConfig) Rings() *RingCursor {
	centre := c.Centre()
	r := c.radii
	up := func(radius float64) Point { return Pt(centre.X, centre.Y-radius) }

	return &RingCursor{
		centre:       centre,
		radii:        r,
		patternCount: c.patternCount,
		remaining:    c.patternCount,
		seeds:        [5]Point{up(r.Ra), up(r.Rb), up(r.Rc), up(r.Rd), up(r.Re)},
	}
}

// Next returns the next ring set. ok is false once the cursor is exhausted
// and stays false on every later call.
func (rc *RingCursor) Next() (set RingSet, ok bool) {
	if rc.remaining <= 0 {
		return RingSet{}, false
	}
	rc.remaining--

	ring := func(i int, radius float64) RingPoints {
		return CirclePoints(rc.centre, rc.patternCount, rc.seeds[i], radius)
	}
	set = RingSet{
		A: ring(0, rc.radii.Ra),
		B: ring(1, rc.radii.Rb),
		C: ring(2, rc.radii.Rc),
		D: ring(3, rc.radii.Rd),
		E: ring(4, rc.radii.Re),
	}
	rc.seeds = [5]Point{set.A[5], set.B[5], set.C[5], set.D[5], set.E[5]}
	return set, true
}

// Remaining returns the number of sets Next has yet to yield.
func (rc *RingCursor) Remaining() int {
	return max(rc.remaining, 0)
}

// motifVertices returns the ten vertices one repeat visits, in order.
// The zig-zag crosses from the outer ring inwards and back:
// E0 E4 B4 B2 C2 C3 D3 D1 A1 A5.
func (s RingSet) motifVertices() [motifSegments]Point {
	return [motifSegments]Point{
		s.E[0], s.E[4],
		s.B[4], s.B[2],
		s.C[2], s.C[3],
		s.D[3], s.D[1],
		s.A[1], s.A[5],
	}
}

// CircleLineCount returns the number of explicit line segments in the
// path of a circular meander with the given repeat count.
func CircleLineCount(patternCount int) int {
	return motifSegments * max(patternCount, 0)
}

// Path returns the closed circular meander. It starts at the innermost
// ring's first point, draws ten segments per repeat and closes.
func (c CircleConfig) Path() *Path {
	p := newPathCap(CircleLineCount(c.patternCount) + 2)

	rings := c.Rings()
	first := true
	for {
		set, ok := rings.Next()
		if !ok {
			break
		}
		if first {
			p.MoveTo(set.A[0].X, set.A[0].Y)
			first = false
		}
		for _, v := range set.motifVertices() {
			p.LineTo(v.X, v.Y)
		}
	}
	if !first {
		p.Close()
	}

	Logger().Debug("circle meander generated",
		"pattern_count", c.patternCount,
		"segments", p.LineCount())

	return p
}
