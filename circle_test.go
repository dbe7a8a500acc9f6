package meander

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustCircle(t *testing.T, ro float64, pc int, margin, stroke float64) CircleConfig {
	t.Helper()
	cfg, err := NewCircleConfig(ro, pc, margin, stroke)
	require.NoError(t, err)
	return cfg
}

func TestNewCircleConfig_TooFewRepeats(t *testing.T) {
	for _, pc := range []int{-1, 0, 1, 2, 3} {
		_, err := NewCircleConfig(400, pc, 10, 6)
		require.Error(t, err, "pc=%d", pc)
		assert.True(t, errors.Is(err, ErrTooFewRepeats), "pc=%d", pc)
	}
}

func TestCircleConfig_Geometry(t *testing.T) {
	cfg := mustCircle(t, 400, 24, 10, 6)

	assert.Equal(t, Pt(416, 416), cfg.Centre())
	w, h := cfg.CanvasSize()
	assert.Equal(t, 832.0, w)
	assert.Equal(t, 832.0, h)
	assert.Equal(t, 120, cfg.PointsPerRing())

	outer, inner := cfg.FrameShapes()
	oc, ok := outer.(Circle)
	require.True(t, ok)
	ic, ok := inner.(Circle)
	require.True(t, ok)
	assert.Equal(t, cfg.Centre(), oc.Center)
	assert.Equal(t, cfg.Centre(), ic.Center)
	assert.Equal(t, 400.0, oc.R)
	assert.Equal(t, cfg.Radii().Ri, ic.R)
	assert.Greater(t, ic.R, 0.0)
	assert.Less(t, ic.R, oc.R)
}

func TestCirclePoints(t *testing.T) {
	centre := Pt(100, 100)
	const r = 50.0
	const pc = 8
	p1 := Pt(100, 50)

	pts := CirclePoints(centre, pc, p1, r)
	assert.Equal(t, p1, pts[0])

	step := 2 * math.Pi / (5 * pc)
	for i, pt := range pts {
		assert.InDelta(t, r, pt.RadiusFrom(centre), 1e-9, "point %d", i)
		want := Polar(centre, r, p1.AngleFrom(centre)+float64(i)*step)
		assert.True(t, pt.Approx(want, 1e-9), "point %d: got %v want %v", i, pt, want)
	}
}

func TestRingCursor(t *testing.T) {
	cfg := mustCircle(t, 200, 6, 0, 0)
	rings := cfg.Rings()
	assert.Equal(t, 6, rings.Remaining())

	var sets []RingSet
	for {
		set, ok := rings.Next()
		if !ok {
			break
		}
		sets = append(sets, set)
	}
	require.Len(t, sets, 6)
	assert.Equal(t, 0, rings.Remaining())

	// Exhausted cursors stay exhausted.
	for i := 0; i < 3; i++ {
		_, ok := rings.Next()
		assert.False(t, ok)
	}

	// Each repeat is seeded from the previous repeat's last points.
	for i := 1; i < len(sets); i++ {
		prev, cur := sets[i-1], sets[i]
		assert.Equal(t, prev.A[5], cur.A[0])
		assert.Equal(t, prev.B[5], cur.B[0])
		assert.Equal(t, prev.C[5], cur.C[0])
		assert.Equal(t, prev.D[5], cur.D[0])
		assert.Equal(t, prev.E[5], cur.E[0])
	}

	// The first repeat starts straight up from the centre.
	c := cfg.Centre()
	r := cfg.Radii()
	assert.Equal(t, Pt(c.X, c.Y-r.Ra), sets[0].A[0])
	assert.Equal(t, Pt(c.X, c.Y-r.Re), sets[0].E[0])
}

func TestCircleConfig_Path(t *testing.T) {
	for _, pc := range []int{4, 5, 12, 24, 60} {
		cfg := mustCircle(t, 400, pc, 10, 6)
		p := cfg.Path()

		require.True(t, p.Closed())
		assert.Equal(t, 10*pc, p.LineCount(), "pc=%d", pc)
		assert.Equal(t, CircleLineCount(pc), p.LineCount())

		c := cfg.Centre()
		r := cfg.Radii()
		assert.Equal(t, Pt(c.X, c.Y-r.Ra), p.Start())

		// After a full turn the path is back at its start.
		assert.True(t, p.End().Approx(p.Start(), 1e-9*r.Ro), "pc=%d end=%v start=%v", pc, p.End(), p.Start())

		// Every vertex lies on one of the five meander rings.
		for _, pt := range p.Points() {
			d := pt.RadiusFrom(c)
			assert.GreaterOrEqual(t, d, r.Ra-1e-9, "pc=%d", pc)
			assert.LessOrEqual(t, d, r.Re+1e-9, "pc=%d", pc)
			assert.Greater(t, d, r.Ri)
		}
	}
}

func TestCircleConfig_MotifOrder(t *testing.T) {
	cfg := mustCircle(t, 300, 10, 0, 0)
	set, ok := cfg.Rings().Next()
	require.True(t, ok)

	pts := cfg.Path().Points()
	want := []Point{
		set.A[0],
		set.E[0], set.E[4], set.B[4], set.B[2], set.C[2],
		set.C[3], set.D[3], set.D[1], set.A[1], set.A[5],
	}
	assert.Equal(t, want, pts[:len(want)])
}

func TestCircleConfig_Deterministic(t *testing.T) {
	a := mustCircle(t, 400, 24, 10, 6).Path().Points()
	b := mustCircle(t, 400, 24, 10, 6).Path().Points()
	require.Equal(t, len(a), len(b))
	for i := range a {
		assert.Equal(t, math.Float64bits(a[i].X), math.Float64bits(b[i].X), "x %d", i)
		assert.Equal(t, math.Float64bits(a[i].Y), math.Float64bits(b[i].Y), "y %d", i)
	}
}
