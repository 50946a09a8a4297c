package sweep

import (
	"gonum.org/v1/gonum/floats"
)

// FirstAtLeast returns index of the first sample not below threshold.
// Second value is false when no sample reaches it.
func FirstAtLeast(values []float64, threshold float64) (int, bool) {
	found, err := floats.Find(nil, func(v float64) bool { return v >= threshold }, values, 1)
	if err != nil || len(found) == 0 {
		return -1, false
	}
	return found[0], true
}
