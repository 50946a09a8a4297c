package visualization

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/EricCWWong/GSimulator/pkg/evaluator"
	"github.com/olekukonko/tablewriter"
	"github.com/shopspring/decimal"
)

// AngleNote explains the angle convention used in the summary table.
const AngleNote = "Note: The angle is in radian with respect to the normal of the 2DEG, " +
	"i.e. a perpendicular field will have angle 0 rad while a parallel field will have angle pi/2 rad."

// Table is a model for data.
type Table struct {
	headers []string
	data    [][]string
}

// NewTable creates new model of data representation.
func NewTable(headers []string, data [][]string) *Table {
	return &Table{
		headers,
		data,
	}
}

// NewSummaryTable creates table with one row per evaluated configuration.
func NewSummaryTable(rows []evaluator.SummaryRow) *Table {
	data := make([][]string, 0, len(rows))
	for _, row := range rows {
		cells := []string{}
		for _, value := range row.Values() {
			cells = append(cells, formatValue(value))
		}
		data = append(data, cells)
	}
	return NewTable(evaluator.SummaryHeaders, data)
}

// Draw writes table with headers and data rows.
func (t *Table) Draw(w io.Writer) {
	output := tablewriter.NewWriter(w)
	output.SetAutoFormatHeaders(false)
	output.SetHeader(t.headers)
	output.AppendBulk(t.data)
	output.Render()
}

// PrintSummary draws summary table followed by the angle note.
func PrintSummary(w io.Writer, rows []evaluator.SummaryRow) {
	NewSummaryTable(rows).Draw(w)
	fmt.Fprintln(w, AngleNote)
}

// formatValue prints shortest decimal representation of value.
func formatValue(value float64) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return strconv.FormatFloat(value, 'g', -1, 64)
	}
	return decimal.NewFromFloat(value).String()
}
