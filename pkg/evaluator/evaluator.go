// Package evaluator runs the point contact model over a batch of
// configurations and gathers everything the report and figures need.
package evaluator

import (
	"github.com/EricCWWong/GSimulator/pkg/model"
	"github.com/EricCWWong/GSimulator/pkg/setup"
	"github.com/EricCWWong/GSimulator/pkg/sweep"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/mat"
)

const (
	sweepStart = -2.0
	sweepStep  = 0.1
	// differentialEnd bounds the differential sweep for every batch.
	differentialEnd = 30.0
	// stepsPerChannel widens display sweep so every plateau fits.
	stepsPerChannel = 6
	// saturationMargin is distance from channels counted as saturated.
	saturationMargin = 0.1
	// SummarySpin is spin projection used for the Zeeman column.
	SummarySpin = 0.5
)

var (
	// ErrEmptyBatch is returned when there is nothing to evaluate.
	ErrEmptyBatch = errors.New("batch has no configurations")
	// ErrInvalidChannels is returned for channel count below one.
	ErrInvalidChannels = errors.New("number of channels must be positive")
	// ErrSaturationNotReached is returned when the last trace never reaches
	// its plateau inside the display sweep.
	ErrSaturationNotReached = errors.New("saturation not reached")
)

// DisplaySweep is the axis shared by all overlay traces.
func DisplaySweep(plots int, offset float64, channels int) sweep.Range {
	return sweep.Range{
		From: sweepStart,
		To:   offset*float64(plots) + float64(channels*stepsPerChannel),
		Step: sweepStep,
	}
}

// DifferentialSweep is the batch independent axis of the derivative traces.
func DifferentialSweep() sweep.Range {
	return sweep.Range{From: sweepStart, To: differentialEnd, Step: sweepStep}
}

// Config holds parameters of single evaluation.
type Config struct {
	// Channels is number of subbands taken into account.
	Channels int
	// Offset separates consecutive overlay traces along energy axis.
	Offset float64
}

// DefaultConfig returns configuration matching the usual three subband plots.
func DefaultConfig() Config {
	return Config{Channels: 3, Offset: 5}
}

// Observer is notified after every evaluated configuration.
type Observer func(index int, configuration setup.Configuration)

// SweepEvaluator evaluates batches with models produced by factory.
type SweepEvaluator struct {
	factory  model.Factory
	config   Config
	observer Observer
}

// New creates SweepEvaluator.
func New(factory model.Factory, config Config) *SweepEvaluator {
	return &SweepEvaluator{factory: factory, config: config}
}

// OnEvaluated registers observer called in batch order.
func (e *SweepEvaluator) OnEvaluated(observer Observer) {
	e.observer = observer
}

// Evaluate runs every configuration of the batch in order.
func (e *SweepEvaluator) Evaluate(batch setup.Batch) (*Result, error) {
	plots := len(batch)
	if plots == 0 {
		return nil, ErrEmptyBatch
	}
	if e.config.Channels < 1 {
		return nil, errors.Wrapf(ErrInvalidChannels, "got %d", e.config.Channels)
	}

	displayRange := DisplaySweep(plots, e.config.Offset, e.config.Channels)
	if err := displayRange.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid display sweep")
	}
	display := displayRange.Values()
	differential := DifferentialSweep().Values()

	result := &Result{
		Display:      display,
		Differential: differential,
		Summary:      make([]SummaryRow, plots),
		Overlay:      make([][]float64, plots),
		Derivatives:  mat.NewDense(plots, len(differential), nil),
		Plots:        plots,
		Channels:     e.config.Channels,
		Offset:       e.config.Offset,
	}

	for i, configuration := range batch {
		logrus.Debugf("Evaluating configuration %d: %s", i, configuration)

		hwY := configuration.HwY()
		qpc, err := e.factory.New(configuration.HwX, hwY, configuration.Vsd, configuration.B, configuration.Angle)
		if err != nil {
			return nil, errors.Wrapf(err, "cannot build model for configuration %d", i)
		}

		result.Summary[i] = newSummaryRow(qpc)

		overlay := qpc.TotalTransmission(e.config.Channels, sweep.Shift(display, -float64(i)*e.config.Offset))
		if len(overlay) != len(display) {
			return nil, errors.Errorf("configuration %d: model returned %d samples for %d energies", i, len(overlay), len(display))
		}
		result.Overlay[i] = overlay

		transmission := qpc.TotalTransmission(e.config.Channels, differential)
		if len(transmission) != len(differential) {
			return nil, errors.Errorf("configuration %d: model returned %d samples for %d energies", i, len(transmission), len(differential))
		}
		result.Derivatives.SetRow(i, sweep.Gradient(transmission))

		if i == plots-1 {
			index, ok := sweep.FirstAtLeast(overlay, float64(e.config.Channels)-saturationMargin)
			if !ok {
				return nil, errors.Wrapf(ErrSaturationNotReached,
					"configuration %d stays below %g up to energy %g",
					i, float64(e.config.Channels)-saturationMargin, display[len(display)-1])
			}
			result.XMin = display[index] + 1
			logrus.Debugf("Last trace saturates at %g, x axis limited to %g", display[index], result.XMin)
		}

		if e.observer != nil {
			e.observer(i, configuration)
		}
	}

	return result, nil
}

func newSummaryRow(m model.Model) SummaryRow {
	return SummaryRow{
		HwX:           m.HwX(),
		Ratio:         m.HwY() / m.HwX(),
		MagneticField: m.MagneticField(),
		Angle:         m.Angle(),
		E1:            m.E1(),
		E2:            m.E2(),
		EVsd:          m.EVsd(),
		HwC:           m.HwC(),
		Zeeman:        m.Zeeman(SummarySpin),
	}
}
