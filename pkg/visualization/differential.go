package visualization

import (
	"math"

	"github.com/EricCWWong/GSimulator/pkg/evaluator"
	"github.com/montanaflynn/stats"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
)

// Labels of the differential conductance figure.
const (
	DifferentialTitlePrefix = "Diff Conductance "
	ExperimentsLabel        = "Experiments"
	ScaledEnergyLabel       = "10 x E_f"
	// ContourLevels is number of color bands of the filled contour.
	ContourLevels = 8
)

// ErrSingleTrace is returned for contour of batch with one configuration.
var ErrSingleTrace = errors.New("differential contour needs more than one configuration")

// derivativeGrid exposes derivative matrix as plotter.GridXYZ: columns are
// differential sweep samples, rows are configurations. Column c fills
// [c, c+1] so that the first sample starts at x = 0.
type derivativeGrid struct {
	m *mat.Dense
}

func (g derivativeGrid) Dims() (c, r int) {
	r, c = g.m.Dims()
	return c, r
}

func (g derivativeGrid) Z(c, r int) float64 { return g.m.At(r, c) }
func (g derivativeGrid) X(c int) float64    { return float64(c) + 0.5 }
func (g derivativeGrid) Y(r int) float64    { return float64(r) }

// NewDifferentialFigure renders derivative matrix as a filled contour with color bar.
func NewDifferentialFigure(result *evaluator.Result, graphName string) (*Figure, error) {
	if !result.HasContour() {
		return nil, ErrSingleTrace
	}

	low, high, err := bounds(result.Derivatives)
	if err != nil {
		return nil, err
	}

	colors := moreland.SmoothBlueRed()
	colors.SetMin(low)
	colors.SetMax(high)

	heatMap := plotter.NewHeatMap(derivativeGrid{result.Derivatives}, colors.Palette(ContourLevels))
	heatMap.Min, heatMap.Max = low, high

	p := plot.New()
	p.Title.Text = DifferentialTitlePrefix + graphName
	p.X.Label.Text = ScaledEnergyLabel
	p.Y.Label.Text = ExperimentsLabel
	p.Add(heatMap)

	xMax := result.ContourXMax()
	if xMax > 0 {
		p.X.Min, p.X.Max = 0, xMax
	} else {
		logrus.Warnf("Contour x limit %g is not positive, showing the whole differential sweep", xMax)
	}

	bar := plot.New()
	bar.HideX()
	bar.Add(&plotter.ColorBar{ColorMap: colors, Vertical: true, Colors: ContourLevels})

	return &Figure{Plot: p, ColorBar: bar, Traces: result.Plots}, nil
}

// bounds returns color scale limits of derivative values. Flat data gets
// unit wide scale so that colors can still be assigned.
func bounds(m *mat.Dense) (float64, float64, error) {
	rows, _ := m.Dims()
	data := stats.Float64Data{}
	for i := 0; i < rows; i++ {
		row := m.RawRowView(i)
		for j, value := range row {
			if math.IsNaN(value) || math.IsInf(value, 0) {
				return 0, 0, errors.Errorf("derivative of configuration %d at sample %d is not finite", i, j)
			}
		}
		data = append(data, row...)
	}

	low, err := data.Min()
	if err != nil {
		return 0, 0, errors.Wrap(err, "cannot find derivative minimum")
	}
	high, err := data.Max()
	if err != nil {
		return 0, 0, errors.Wrap(err, "cannot find derivative maximum")
	}
	if high <= low {
		high = low + 1
	}
	return low, high, nil
}
