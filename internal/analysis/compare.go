package analysis

import (
	"math"

	"github.com/erichchampion/wavecheck/internal/audio"
)

// FileStats summarizes one file in a comparison run.
type FileStats struct {
	Name string
	Mean float64
	Std  float64
	Peak float64
}

// Comparison holds per-file statistics plus relative metrics for the first
// two files in input order (A/B convention: first file over second).
type Comparison struct {
	Files     []FileStats
	MeanDiff  float64
	StdRatio  float64
	PeakRatio float64
}

// Compare re-loads every supplied path and computes relative statistics for
// quick drift detection between two pipeline implementations. Missing or
// undecodable files are silently excluded: this is diagnostic tooling, not a
// correctness gate. Returns nil unless at least two files load.
func Compare(paths []string) *Comparison {
	var files []FileStats
	for _, p := range paths {
		w, err := audio.Decode(p)
		if err != nil {
			continue
		}
		mean, std := Stats(w.Samples)
		files = append(files, FileStats{
			Name: p,
			Mean: mean,
			Std:  std,
			Peak: Peak(w.Samples),
		})
	}

	if len(files) < 2 {
		return nil
	}

	a, b := files[0], files[1]
	return &Comparison{
		Files:     files,
		MeanDiff:  a.Mean - b.Mean,
		StdRatio:  ratio(a.Std, b.Std),
		PeakRatio: ratio(a.Peak, b.Peak),
	}
}

// ratio returns a/b, yielding +Inf rather than an error when b is zero.
func ratio(a, b float64) float64 {
	if b == 0 {
		return math.Inf(1)
	}
	return a / b
}
