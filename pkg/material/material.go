// Package material holds constants of semiconductor materials used by the
// point contact model.
package material

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/EricCWWong/GSimulator/pkg/utils/err_collection"
	"github.com/pkg/errors"
)

// MaxNameLength bounds material names in the material file.
const MaxNameLength = 10

const columns = 3

// Material describes a single semiconductor.
type Material struct {
	Name string
	// GFactor is the effective Lande g factor.
	GFactor float64
	// EffectiveMass is the electron effective mass in units of the free electron mass.
	EffectiveMass float64
}

// Table is an ordered, read-only collection of materials.
type Table struct {
	materials []Material
}

// NewTable creates a table from given materials keeping their order.
func NewTable(materials ...Material) *Table {
	return &Table{materials: append([]Material(nil), materials...)}
}

// Len returns number of materials in table.
func (t *Table) Len() int {
	return len(t.materials)
}

// Materials returns copy of all materials in file order.
func (t *Table) Materials() []Material {
	return append([]Material(nil), t.materials...)
}

// Lookup finds material by name. Empty name selects the first material.
func (t *Table) Lookup(name string) (Material, error) {
	if len(t.materials) == 0 {
		return Material{}, errors.New("material table is empty")
	}
	if name == "" {
		return t.materials[0], nil
	}
	for _, m := range t.materials {
		if m.Name == name {
			return m, nil
		}
	}
	return Material{}, errors.Errorf("material %q not found", name)
}

// ReadFile loads material table from csv file with header row.
func ReadFile(fileName string) (*Table, error) {
	file, err := os.Open(fileName)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot open material file %q", fileName)
	}
	defer file.Close()

	table, err := Read(file)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot read material file %q", fileName)
	}
	return table, nil
}

// Read parses materials in `name,g_factor,effective_mass` format.
// First record is a header and is discarded.
func Read(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "malformed csv")
	}
	if len(records) < 2 {
		return nil, errors.New("no materials found")
	}

	errs := &errcollection.ErrorCollection{}
	materials := make([]Material, 0, len(records)-1)
	for i, record := range records[1:] {
		// Header is line 1.
		m, err := parseRecord(record)
		if err != nil {
			errs.Add(errors.Wrapf(err, "line %d", i+2))
			continue
		}
		materials = append(materials, m)
	}
	if err := errs.GetErrIfAny(); err != nil {
		return nil, err
	}

	return NewTable(materials...), nil
}

func parseRecord(record []string) (Material, error) {
	if len(record) != columns {
		return Material{}, errors.Errorf("expected %d columns, got %d", columns, len(record))
	}

	name := strings.TrimSpace(record[0])
	if name == "" || len(name) > MaxNameLength {
		return Material{}, errors.Errorf("material name %q must have 1 to %d characters", name, MaxNameLength)
	}
	g, err := strconv.ParseFloat(strings.TrimSpace(record[1]), 64)
	if err != nil {
		return Material{}, errors.Wrap(err, "g_factor")
	}
	mass, err := strconv.ParseFloat(strings.TrimSpace(record[2]), 64)
	if err != nil {
		return Material{}, errors.Wrap(err, "effective_mass")
	}

	return Material{Name: name, GFactor: g, EffectiveMass: mass}, nil
}
