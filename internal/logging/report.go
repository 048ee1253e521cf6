package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/erichchampion/wavecheck/internal/analysis"
)

// ReportData contains all the information needed to generate a validation
// report for one input file.
type ReportData struct {
	InputPath string
	StartTime time.Time
	EndTime   time.Time
	Verdict   analysis.Verdict
	Config    analysis.Config
}

// GenerateReport creates a validation report and saves it alongside the
// input file. The report filename will be <input>-validation.log.
func GenerateReport(data ReportData) error {
	logPath := strings.TrimSuffix(data.InputPath, filepath.Ext(data.InputPath)) + "-validation.log"

	f, err := os.Create(logPath)
	if err != nil {
		return fmt.Errorf("failed to create log file: %w", err)
	}
	defer f.Close()

	writeSection(f, "Waveform Validation Report")
	fmt.Fprintf(f, "Input:     %s\n", data.InputPath)
	fmt.Fprintf(f, "Generated: %s\n", data.EndTime.Format(time.RFC3339))
	fmt.Fprintf(f, "Elapsed:   %s\n", data.EndTime.Sub(data.StartTime).Round(time.Millisecond))
	fmt.Fprintln(f)

	writeSection(f, "Verdict")
	status := "FAIL"
	if data.Verdict.Passed {
		status = "PASS"
	}
	fmt.Fprintf(f, "Status:  %s\n", status)
	fmt.Fprintf(f, "Detail:  %s\n", data.Verdict.Message)
	fmt.Fprintln(f)

	writeSection(f, "Thresholds")
	fmt.Fprintf(f, "Min std:            %g\n", data.Config.MinStd)
	fmt.Fprintf(f, "Min peak:           %g\n", data.Config.MinPeak)
	if data.Config.ExpectedDuration > 0 {
		fmt.Fprintf(f, "Expected duration:  %.2fs\n", data.Config.ExpectedDuration)
		fmt.Fprintf(f, "Duration tolerance: %.2fs\n", data.Config.DurationTolerance)
	} else {
		fmt.Fprintln(f, "Expected duration:  (not checked)")
	}

	return nil
}

func writeSection(f *os.File, title string) {
	fmt.Fprintln(f, title)
	fmt.Fprintln(f, strings.Repeat("-", len(title)))
}
