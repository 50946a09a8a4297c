package visualization

import (
	"github.com/EricCWWong/GSimulator/pkg/evaluator"
	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Axis labels of the conductance figure.
const (
	ConductanceLabel = "G x h/2e^2"
	EnergyLabel      = "(E_f - U_0)/hbar w_x"
	conductanceXMin  = -1
)

// NewConductanceFigure plots every overlay trace against the unshifted display
// sweep. The x axis ends just past the saturation of the last trace.
func NewConductanceFigure(result *evaluator.Result, graphName string) (*Figure, error) {
	p := plot.New()
	p.Title.Text = graphName
	p.Y.Label.Text = ConductanceLabel
	p.X.Label.Text = EnergyLabel
	p.Add(plotter.NewGrid())

	for i, trace := range result.Overlay {
		line, err := plotter.NewLine(points(result.Display, trace))
		if err != nil {
			return nil, errors.Wrapf(err, "cannot plot trace %d", i)
		}
		line.Color = plotutil.Color(i)
		line.Width = vg.Points(1.2)
		p.Add(line)
	}

	channels := float64(result.Channels)
	p.Y.Min, p.Y.Max = 0, channels
	p.Y.Tick.Marker = evenTicks(0, channels, tickStep)
	p.X.Min, p.X.Max = conductanceXMin, result.XMin

	return &Figure{Plot: p, Traces: len(result.Overlay)}, nil
}

func points(x, y []float64) plotter.XYs {
	xys := make(plotter.XYs, len(x))
	for i := range x {
		xys[i].X = x[i]
		xys[i].Y = y[i]
	}
	return xys
}
