package logging

import (
	"fmt"
	"strings"

	"github.com/erichchampion/wavecheck/internal/analysis"
)

// RenderComparison formats a comparison report: one labelled stats line per
// file in an aligned table, followed by the relative metrics for the first
// two files. Returns "" for a nil comparison (fewer than two loadable files).
func RenderComparison(c *analysis.Comparison) string {
	if c == nil {
		return ""
	}

	table := &MetricTable{Headers: []string{"Mean", "Std", "Peak"}}
	for _, f := range c.Files {
		table.AddRow(f.Name, []string{
			formatMetric(f.Mean, 6),
			formatMetric(f.Std, 6),
			formatMetric(f.Peak, 6),
		})
	}

	var sb strings.Builder
	sb.WriteString(table.String())
	fmt.Fprintf(&sb, "mean_difference=%s\n", formatMetric(c.MeanDiff, 6))
	fmt.Fprintf(&sb, "std_ratio=%s\n", formatMetric(c.StdRatio, 6))
	fmt.Fprintf(&sb, "peak_ratio=%s\n", formatMetric(c.PeakRatio, 6))
	return sb.String()
}
