// Package setup loads experimental setups, one configuration per measured trace.
package setup

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/EricCWWong/GSimulator/pkg/utils/err_collection"
	"github.com/pkg/errors"
)

// Columns is the number of values in each setup row.
const Columns = 5

// Configuration is a single experimental setup.
type Configuration struct {
	// HwX is the transverse confinement energy in meV.
	HwX float64
	// RatioWyWx is the ratio of longitudinal to transverse confinement.
	RatioWyWx float64
	// Vsd is the source-drain bias in mV.
	Vsd float64
	// B is the magnetic field magnitude in T.
	B float64
	// Angle is the field tilt from the 2DEG normal in rad.
	Angle float64
}

// HwY returns the longitudinal confinement energy in meV.
func (c Configuration) HwY() float64 {
	return c.RatioWyWx * c.HwX
}

// String implements fmt.Stringer.
func (c Configuration) String() string {
	return fmt.Sprintf("hw_x=%g meV, wy/wx=%g, V_sd=%g mV, B=%g T, angle=%g rad",
		c.HwX, c.RatioWyWx, c.Vsd, c.B, c.Angle)
}

// Batch is an ordered list of configurations. Order decides plot offsets
// and table rows.
type Batch []Configuration

// ReadFile loads batch from csv file.
func ReadFile(fileName string) (Batch, error) {
	file, err := os.Open(fileName)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot open setup file %q", fileName)
	}
	defer file.Close()

	batch, err := Read(file)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot read setup file %q", fileName)
	}
	return batch, nil
}

// Read parses setup rows `hw_x,ratio_wy_wx,V_sd,B,angle` after a header row.
// A single data row still produces a batch of one.
func Read(r io.Reader) (Batch, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.Comment = '#'

	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "malformed csv")
	}
	if len(records) == 0 {
		return nil, errors.New("missing header")
	}

	errs := &errcollection.ErrorCollection{}
	batch := make(Batch, 0, len(records)-1)
	for i, record := range records[1:] {
		configuration, err := parseRecord(record)
		if err != nil {
			errs.Add(errors.Wrapf(err, "line %d", i+2))
			continue
		}
		batch = append(batch, configuration)
	}
	if err := errs.GetErrIfAny(); err != nil {
		return nil, err
	}

	return batch, nil
}

func parseRecord(record []string) (Configuration, error) {
	if len(record) != Columns {
		return Configuration{}, errors.Errorf("expected %d columns, got %d", Columns, len(record))
	}

	var values [Columns]float64
	names := [Columns]string{"hw_x", "ratio_wy_wx", "V_sd", "B", "angle"}
	for i, cell := range record {
		value, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
		if err != nil {
			return Configuration{}, errors.Wrap(err, names[i])
		}
		if math.IsNaN(value) || math.IsInf(value, 0) {
			return Configuration{}, errors.Errorf("%s: value %q is not finite", names[i], cell)
		}
		values[i] = value
	}

	return Configuration{
		HwX:       values[0],
		RatioWyWx: values[1],
		Vsd:       values[2],
		B:         values[3],
		Angle:     values[4],
	}, nil
}
