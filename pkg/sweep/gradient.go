package sweep

// Gradient returns the numerical derivative of y sampled with unit spacing.
// Interior points use central differences, both ends one sided first order
// differences. Result has the length of y; a single sample has zero slope.
func Gradient(y []float64) []float64 {
	n := len(y)
	dydx := make([]float64, n)
	if n < 2 {
		return dydx
	}

	dydx[0] = y[1] - y[0]
	for i := 1; i < n-1; i++ {
		dydx[i] = (y[i+1] - y[i-1]) / 2
	}
	dydx[n-1] = y[n-1] - y[n-2]
	return dydx
}
