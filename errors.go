package meander

import (
	"errors"
	"fmt"
)

// MinPointsPerRing is the smallest number of points around the circle for
// which every derived radius stays positive and strictly ordered. Below it
// the innermost radius collapses to zero or goes negative.
const MinPointsPerRing = 19

// ErrTooFewRepeats is returned when a circular pattern has too few repeats
// for the motif to fit around the circle.
var ErrTooFewRepeats = errors.New("meander: too few repeats")

// ConfigError reports an invalid pattern configuration.
type ConfigError struct {
	// N is the number of points around the circle that was requested.
	N int
	// Err is the underlying sentinel, e.g. ErrTooFewRepeats.
	Err error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%v: n=%d, need n >= %d", e.Err, e.N, MinPointsPerRing)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
