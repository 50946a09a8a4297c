// Package sweep builds energy axes and the numerical helpers evaluated on them.
package sweep

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
)

// Range describes fixed step axis [From, To).
type Range struct {
	From float64
	To   float64
	Step float64
}

// Len returns number of samples in range.
func (r Range) Len() int {
	if r.Step <= 0 || r.To <= r.From {
		return 0
	}
	return int(math.Ceil((r.To - r.From) / r.Step))
}

// Values returns strictly increasing samples From + i*Step below To.
func (r Range) Values() []float64 {
	values := make([]float64, r.Len())
	for i := range values {
		values[i] = r.From + float64(i)*r.Step
	}
	return values
}

// Validate checks range produces at least one sample.
func (r Range) Validate() error {
	if r.Step <= 0 {
		return errors.Errorf("step must be positive, got %g", r.Step)
	}
	if r.To <= r.From {
		return errors.Errorf("empty range [%g, %g)", r.From, r.To)
	}
	return nil
}

// Shift returns copy of axis moved by delta.
func Shift(axis []float64, delta float64) []float64 {
	shifted := make([]float64, len(axis))
	copy(shifted, axis)
	floats.AddConst(delta, shifted)
	return shifted
}
