package main

import (
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/erichchampion/wavecheck/internal/analysis"
	"github.com/erichchampion/wavecheck/internal/cli"
	"github.com/erichchampion/wavecheck/internal/logging"
)

var (
	version = "0.0.1"
)

// CLI defines the command-line interface
type CLI struct {
	Version           bool     `short:"v" help:"Show version information"`
	ExpectedDuration  float64  `placeholder:"seconds" help:"Fail files whose duration deviates from this value"`
	DurationTolerance float64  `placeholder:"seconds" default:"0.5" help:"Allowed duration deviation"`
	MinStd            float64  `default:"0.001" help:"Minimum whole-signal standard deviation"`
	MinPeak           float64  `default:"0.01" help:"Minimum peak absolute sample value"`
	Compare           bool     `help:"Report relative statistics across the supplied files"`
	HumCheck          bool     `help:"Append a mains-hum energy diagnostic to passing files"`
	Logs              bool     `help:"Save a detailed validation report next to each file"`
	Files             []string `arg:"" name:"files" help:"WAV files to validate (missing files are skipped)" optional:""`
}

func main() {
	cliArgs := &CLI{}
	kong.Parse(cliArgs,
		kong.Name("wavecheck"),
		kong.Description("Generated-audio waveform validation gate"),
		kong.UsageOnError(),
		kong.Vars{
			"version": version,
		},
		kong.Help(cli.StyledHelpPrinter(kong.HelpOptions{Compact: true})),
	)

	// Handle version flag
	if cliArgs.Version {
		cli.PrintVersion(version)
		os.Exit(0)
	}

	// No inputs is a no-op success: the upstream pipeline produced nothing
	// for this gate to judge
	if len(cliArgs.Files) == 0 {
		os.Exit(0)
	}

	config := analysis.DefaultConfig()
	config.MinStd = cliArgs.MinStd
	config.MinPeak = cliArgs.MinPeak
	config.ExpectedDuration = cliArgs.ExpectedDuration
	config.DurationTolerance = cliArgs.DurationTolerance
	config.HumCheck = cliArgs.HumCheck

	allOK := true
	for _, path := range cliArgs.Files {
		startTime := time.Now()
		verdict := analysis.ValidateFile(path, config)
		if !verdict.Passed {
			allOK = false
		}

		fmt.Printf("%s %s: %s\n", cli.RenderStatus(verdict.Passed), path, verdict.Message)

		if cliArgs.Logs {
			report := logging.ReportData{
				InputPath: path,
				StartTime: startTime,
				EndTime:   time.Now(),
				Verdict:   verdict,
				Config:    config,
			}
			if err := logging.GenerateReport(report); err != nil {
				cli.PrintError(fmt.Sprintf("failed to write report for %s: %v", path, err))
			}
		}
	}

	if cliArgs.Compare {
		if report := logging.RenderComparison(analysis.Compare(cliArgs.Files)); report != "" {
			fmt.Print(report)
		}
	}

	if !allOK {
		os.Exit(1)
	}
}
