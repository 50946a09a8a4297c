package evaluator

import (
	"gonum.org/v1/gonum/mat"
)

// SummaryHeaders name SummaryRow values in order.
var SummaryHeaders = []string{
	"hbar w_x (meV)", "w_y/ w_x", "B (T)", "angle (rad)", "E1 (meV)",
	"E2 (meV)", "eVsd (meV)", "hbar w_c (meV)", "Zeeman (meV)",
}

// SummaryRow holds the derived quantities of one configuration.
type SummaryRow struct {
	HwX           float64
	Ratio         float64
	MagneticField float64
	Angle         float64
	E1            float64
	E2            float64
	EVsd          float64
	HwC           float64
	Zeeman        float64
}

// Values returns row in SummaryHeaders order.
func (r SummaryRow) Values() []float64 {
	return []float64{r.HwX, r.Ratio, r.MagneticField, r.Angle, r.E1, r.E2, r.EVsd, r.HwC, r.Zeeman}
}

// Result is the outcome of evaluating a batch. Every per configuration
// collection follows batch order.
type Result struct {
	// Display is the unshifted axis of overlay traces.
	Display []float64
	// Differential is the axis the derivatives were computed on.
	Differential []float64

	Summary []SummaryRow
	Overlay [][]float64
	// Derivatives has one row per configuration and one column per
	// differential sample.
	Derivatives *mat.Dense

	// XMin is the right limit of the overlay x axis, just past the
	// saturation of the last trace.
	XMin float64

	Plots    int
	Channels int
	Offset   float64
}

// HasContour tells whether batch is large enough for differential contour.
func (r *Result) HasContour() bool {
	return r.Plots > 1
}

// ContourXMax returns right limit of the contour x axis in differential
// sample units.
// TODO: validate against reference plots for offsets other than 5.
func (r *Result) ContourXMax() float64 {
	return (r.XMin - float64(r.Plots-3)*r.Offset) * 10
}
