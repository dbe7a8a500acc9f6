package meander

import "math"

// Radii holds the seven concentric radii of a circular meander, ordered
// from the inner frame (Ri) to the outer frame (Ro). The meander itself
// zig-zags between Ra and Re.
type Radii struct {
	Ri, Ra, Rb, Rc, Rd, Re, Ro float64
}

// SolveRadii derives the radii set for a circle of outer radius rOuter
// carrying n points around its circumference.
//
// Rc is chosen so that one unit step along the arc at Rc equals the radial
// distance between neighbouring rings; the other radii are spaced at thirds
// of Ro-Rc around it. SolveRadii returns a *ConfigError wrapping
// ErrTooFewRepeats when n < MinPointsPerRing.
func SolveRadii(rOuter float64, n int) (Radii, error) {
	if n < MinPointsPerRing {
		return Radii{}, &ConfigError{N: n, Err: ErrTooFewRepeats}
	}

	nf := float64(n)
	rc := rOuter / (6*math.Pi/nf + 1)

	return Radii{
		Ri: (6*rc - 3*rOuter) / 3,
		Ra: (5*rc - 2*rOuter) / 3,
		Rb: (4*rc - rOuter) / 3,
		Rc: rc,
		Rd: (2*rc + rOuter) / 3,
		Re: (rc + 2*rOuter) / 3,
		Ro: rOuter,
	}, nil
}

// All returns the radii from inner to outer.
func (r Radii) All() [7]float64 {
	return [7]float64{r.Ri, r.Ra, r.Rb, r.Rc, r.Rd, r.Re, r.Ro}
}

// Ordered reports whether the radii are positive and strictly increasing.
func (r Radii) Ordered() bool {
	all := r.All()
	if all[0] <= 0 {
		return false
	}
	for i := 1; i < len(all); i++ {
		if all[i] <= all[i-1] {
			return false
		}
	}
	return true
}
