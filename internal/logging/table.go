// Package logging handles report generation and table rendering for
// validated audio files. This file contains the reusable table formatting
// infrastructure used by the comparison report.

package logging

import (
	"fmt"
	"math"
	"strings"
)

// MetricRow represents a single row in a metric table. Values are
// pre-formatted strings to allow for mixed formatting.
type MetricRow struct {
	Label  string   // Row label, e.g. a file path
	Values []string // One value per column
}

// MetricTable formats aligned columns of metrics, one row per file.
type MetricTable struct {
	Headers []string
	Rows    []MetricRow
}

// String renders the table with aligned columns: labels left-aligned,
// values right-aligned within their column.
func (t *MetricTable) String() string {
	if len(t.Rows) == 0 {
		return ""
	}

	labelWidth := 0
	for _, row := range t.Rows {
		if len(row.Label) > labelWidth {
			labelWidth = len(row.Label)
		}
	}

	valueWidths := make([]int, len(t.Headers))
	for i, header := range t.Headers {
		valueWidths[i] = len(header)
	}
	for _, row := range t.Rows {
		for i, val := range row.Values {
			if i < len(valueWidths) && len(val) > valueWidths[i] {
				valueWidths[i] = len(val)
			}
		}
	}

	var sb strings.Builder

	sb.WriteString(strings.Repeat(" ", labelWidth+2))
	for i, header := range t.Headers {
		sb.WriteString(fmt.Sprintf("%*s  ", valueWidths[i], header))
	}
	sb.WriteString("\n")

	for _, row := range t.Rows {
		sb.WriteString(fmt.Sprintf("%-*s  ", labelWidth, row.Label))
		for i := 0; i < len(t.Headers); i++ {
			val := MissingValue
			if i < len(row.Values) && row.Values[i] != "" {
				val = row.Values[i]
			}
			sb.WriteString(fmt.Sprintf("%*s  ", valueWidths[i], val))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// AddRow appends a row with pre-formatted values.
func (t *MetricTable) AddRow(label string, values []string) {
	t.Rows = append(t.Rows, MetricRow{Label: label, Values: values})
}

// MissingValue is the placeholder for unavailable measurements.
const MissingValue = "-"

// formatMetric formats a numeric value with the given precision. Very small
// non-zero values use scientific notation; NaN renders as MissingValue and
// infinities as signed Inf (a legitimate ratio value, not a missing one).
func formatMetric(value float64, decimals int) string {
	if math.IsNaN(value) {
		return MissingValue
	}
	if math.IsInf(value, 1) {
		return "+Inf"
	}
	if math.IsInf(value, -1) {
		return "-Inf"
	}

	if value != 0 && math.Abs(value) < 0.0001 {
		return fmt.Sprintf("%.2e", value)
	}

	format := fmt.Sprintf("%%.%df", decimals)
	return fmt.Sprintf(format, value)
}
