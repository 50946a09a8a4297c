package visualization

import (
	"sort"

	"github.com/EricCWWong/GSimulator/pkg/evaluator"
	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

// Workbook sheet names.
const (
	SummarySheet      = "Summary"
	ConductanceSheet  = "Conductance"
	DifferentialSheet = "Differential"
	RunSheet          = "Run"
)

// RunInfo describes the run stored next to the data.
type RunInfo struct {
	ID       string
	Material string
	Setup    string
	// Flags are current flag values, written below run description.
	Flags    map[string]string
}

// SaveWorkbook exports summary, conductance traces and derivative matrix of
// result into xlsx file.
func SaveWorkbook(fileName string, result *evaluator.Result, info RunInfo) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SummarySheet); err != nil {
		return errors.Wrap(err, "cannot rename default sheet")
	}
	for _, sheet := range []string{ConductanceSheet, DifferentialSheet, RunSheet} {
		if _, err := f.NewSheet(sheet); err != nil {
			return errors.Wrapf(err, "cannot create sheet %q", sheet)
		}
	}

	header := make([]interface{}, 0, len(evaluator.SummaryHeaders))
	for _, name := range evaluator.SummaryHeaders {
		header = append(header, name)
	}
	rows := [][]interface{}{header}
	for _, row := range result.Summary {
		rows = append(rows, floatsRow(row.Values()))
	}
	if err := writeRows(f, SummarySheet, rows); err != nil {
		return err
	}

	if err := writeRows(f, ConductanceSheet, traceRows("x", result.Display, result.Overlay)); err != nil {
		return err
	}

	plots, _ := result.Derivatives.Dims()
	derivatives := make([][]float64, plots)
	for i := range derivatives {
		derivatives[i] = result.Derivatives.RawRowView(i)
	}
	if err := writeRows(f, DifferentialSheet, traceRows("E_f", result.Differential, derivatives)); err != nil {
		return err
	}

	run := [][]interface{}{
		{"run_id", info.ID},
		{"material", info.Material},
		{"setup", info.Setup},
		{"channels", result.Channels},
		{"offset", result.Offset},
		{"plots", result.Plots},
		{"x_min", result.XMin},
	}
	names := make([]string, 0, len(info.Flags))
	for name := range info.Flags {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		run = append(run, []interface{}{"flag." + name, info.Flags[name]})
	}
	if err := writeRows(f, RunSheet, run); err != nil {
		return err
	}

	return errors.Wrapf(f.SaveAs(fileName), "cannot save workbook %q", fileName)
}

// traceRows lays traces out column wise next to their sweep.
func traceRows(axis string, sweep []float64, traces [][]float64) [][]interface{} {
	header := []interface{}{axis}
	for i := range traces {
		header = append(header, i+1)
	}

	rows := [][]interface{}{header}
	for j, x := range sweep {
		row := []interface{}{x}
		for _, trace := range traces {
			row = append(row, trace[j])
		}
		rows = append(rows, row)
	}
	return rows
}

func floatsRow(values []float64) []interface{} {
	row := make([]interface{}, len(values))
	for i, value := range values {
		row[i] = value
	}
	return row
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return errors.Wrapf(err, "cannot address row %d of %q", i+1, sheet)
		}
		if err := f.SetSheetRow(sheet, cell, &rows[i]); err != nil {
			return errors.Wrapf(err, "cannot write row %d of %q", i+1, sheet)
		}
	}
	return nil
}
