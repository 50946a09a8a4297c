package visualization

import (
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

const (
	// DefaultWidth and DefaultHeight are the figure dimensions.
	DefaultWidth  = 6.4 * vg.Inch
	DefaultHeight = 4.8 * vg.Inch

	colorBarWidth = 0.9 * vg.Inch
	tickStep      = 0.25
)

// Figure is a single rendered chart, optionally accompanied by a color bar.
type Figure struct {
	// Plot holds axes and data.
	Plot *plot.Plot
	// ColorBar is drawn on the right of Plot when not nil.
	ColorBar *plot.Plot
	// Traces is number of data series drawn on Plot.
	Traces int
}

// Title returns figure title.
func (f *Figure) Title() string {
	return f.Plot.Title.Text
}

// XLimits returns visible x range.
func (f *Figure) XLimits() (float64, float64) {
	return f.Plot.X.Min, f.Plot.X.Max
}

// YLimits returns visible y range.
func (f *Figure) YLimits() (float64, float64) {
	return f.Plot.Y.Min, f.Plot.Y.Max
}

// WriterTo draws figure on canvas of given size and format (pdf, png, svg, eps, ...).
func (f *Figure) WriterTo(width, height vg.Length, format string) (io.WriterTo, error) {
	canvas, err := draw.NewFormattedCanvas(width, height, format)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot create %q canvas", format)
	}

	dc := draw.New(canvas)
	if f.ColorBar == nil {
		f.Plot.Draw(dc)
		return canvas, nil
	}

	f.Plot.Draw(draw.Crop(dc, 0, -colorBarWidth, 0, 0))
	f.ColorBar.Draw(draw.Crop(dc, width-colorBarWidth, 0, 0, 0))
	return canvas, nil
}

// Save writes figure in given format to file.
func (f *Figure) Save(fileName, format string) error {
	writerTo, err := f.WriterTo(DefaultWidth, DefaultHeight, format)
	if err != nil {
		return err
	}

	file, err := os.Create(fileName)
	if err != nil {
		return errors.Wrapf(err, "cannot create figure file %q", fileName)
	}

	_, err = writerTo.WriteTo(file)
	if err != nil {
		file.Close()
		return errors.Wrapf(err, "cannot write figure %q", fileName)
	}
	return errors.Wrapf(file.Close(), "cannot close figure file %q", fileName)
}

// evenTicks returns labelled ticks every step from min to max inclusive.
func evenTicks(min, max, step float64) plot.ConstantTicks {
	ticks := plot.ConstantTicks{}
	count := int((max-min)/step + 0.5)
	for i := 0; i <= count; i++ {
		value := min + float64(i)*step
		ticks = append(ticks, plot.Tick{Value: value, Label: strconv.FormatFloat(value, 'f', 2, 64)})
	}
	return ticks
}
