package meander

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolveRadii_Ordered(t *testing.T) {
	for _, ro := range []float64{1, 50, 400, 12345.5} {
		for pc := 4; pc <= 200; pc++ {
			r, err := SolveRadii(ro, 5*pc)
			require.NoError(t, err, "ro=%v pc=%d", ro, pc)
			require.True(t, r.Ordered(), "ro=%v pc=%d radii=%+v", ro, pc, r)
			assert.Greater(t, r.Ri, 0.0)
			assert.Less(t, r.Ri, r.Ro)
		}
	}
}

func TestSolveRadii_Boundary(t *testing.T) {
	tests := []struct {
		n       int
		wantErr bool
	}{
		{0, true},
		{15, true},
		{18, true},
		{19, false},
		{20, false},
	}

	for _, tt := range tests {
		r, err := SolveRadii(100, tt.n)
		if !tt.wantErr {
			require.NoError(t, err, "n=%d", tt.n)
			assert.True(t, r.Ordered(), "n=%d", tt.n)
			continue
		}
		require.Error(t, err, "n=%d", tt.n)
		assert.True(t, errors.Is(err, ErrTooFewRepeats), "n=%d", tt.n)

		var cerr *ConfigError
		require.True(t, errors.As(err, &cerr))
		assert.Equal(t, tt.n, cerr.N)
		assert.Equal(t, Radii{}, r)
	}
}

func TestSolveRadii_Formulas(t *testing.T) {
	const ro = 300.0
	const n = 40

	r, err := SolveRadii(ro, n)
	require.NoError(t, err)

	rc := ro / (6*math.Pi/n + 1)
	assert.Equal(t, rc, r.Rc)
	assert.Equal(t, (5*rc-2*ro)/3, r.Ra)
	assert.Equal(t, (4*rc-ro)/3, r.Rb)
	assert.Equal(t, (2*rc+ro)/3, r.Rd)
	assert.Equal(t, (rc+2*ro)/3, r.Re)
	assert.Equal(t, (6*rc-3*ro)/3, r.Ri)
	assert.Equal(t, ro, r.Ro)

	// Rings are evenly spaced by a third of Ro-Rc.
	step := (ro - rc) / 3
	all := r.All()
	for i := 1; i < len(all); i++ {
		assert.InDelta(t, step, all[i]-all[i-1], 1e-9, "gap %d", i)
	}
}

func TestRadii_OrderedRejects(t *testing.T) {
	assert.False(t, Radii{}.Ordered())
	assert.False(t, Radii{Ri: 1, Ra: 2, Rb: 2, Rc: 3, Rd: 4, Re: 5, Ro: 6}.Ordered())
	assert.False(t, Radii{Ri: -1, Ra: 2, Rb: 3, Rc: 4, Rd: 5, Re: 6, Ro: 7}.Ordered())
	assert.True(t, Radii{Ri: 1, Ra: 2, Rb: 3, Rc: 4, Rd: 5, Re: 6, Ro: 7}.Ordered())
}

func TestConfigError_Message(t *testing.T) {
	err := &ConfigError{N: 15, Err: ErrTooFewRepeats}
	assert.Equal(t, "meander: too few repeats: n=15, need n >= 19", err.Error())
}
