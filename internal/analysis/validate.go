package analysis

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/erichchampion/wavecheck/internal/audio"
)

// Config holds the validation thresholds. Populated once from flags and
// passed by value; there is no global state.
type Config struct {
	MinStd            float64 // minimum whole-signal standard deviation
	MinPeak           float64 // minimum peak absolute sample value
	ExpectedDuration  float64 // seconds; 0 disables the duration check
	DurationTolerance float64 // seconds
	HumCheck          bool    // append the mains-hum diagnostic to pass messages
}

// DefaultConfig returns the thresholds used by the generation smoke test.
func DefaultConfig() Config {
	return Config{
		MinStd:            0.001,
		MinPeak:           0.01,
		DurationTolerance: 0.5,
	}
}

// Verdict is the outcome for one validated file. The message carries enough
// detail to reconstruct the decision without re-running.
type Verdict struct {
	Passed  bool
	Message string
}

// stereoIdenticalThreshold is the mean absolute left/right difference below
// which stereo output is flagged as duplicated mono.
const stereoIdenticalThreshold = 1e-6

// maxStereoPairs bounds the stereo-independence scan.
const maxStereoPairs = 10000

// ValidateFile checks that one file contains a genuine, non-degenerate
// waveform. Missing files pass trivially: absent output is not this gate's
// concern. All other problems produce a failing verdict with a diagnostic
// message; nothing here aborts validation of subsequent files.
func ValidateFile(path string, cfg Config) Verdict {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return Verdict{Passed: true, Message: "skip (missing)"}
	}
	if err != nil {
		return Verdict{Passed: false, Message: err.Error()}
	}
	if info.Size() == 0 {
		return Verdict{Passed: false, Message: "empty file"}
	}

	w, err := audio.Decode(path)
	if err != nil {
		return Verdict{Passed: false, Message: err.Error()}
	}

	return validateWaveform(w, cfg)
}

// validateWaveform applies the pass/fail rules to a decoded waveform.
// Checks run in a fixed order and the first failure wins.
func validateWaveform(w *audio.Waveform, cfg Config) Verdict {
	if len(w.Samples) == 0 {
		return Verdict{Passed: false, Message: "no samples"}
	}

	// NaN is the only float not equal to itself
	for _, x := range w.Samples {
		if x != x || x == math.Inf(1) || x == math.Inf(-1) {
			return Verdict{Passed: false, Message: "NaN or Inf in samples"}
		}
	}

	_, std := Stats(w.Samples)
	if std <= cfg.MinStd {
		return Verdict{
			Passed:  false,
			Message: fmt.Sprintf("waveform nearly constant (std=%.6f, need >%g)", std, cfg.MinStd),
		}
	}

	peak := Peak(w.Samples)
	if peak < cfg.MinPeak {
		return Verdict{
			Passed:  false,
			Message: fmt.Sprintf("waveform effectively silent (peak=%.6f, need >=%g)", peak, cfg.MinPeak),
		}
	}

	duration := w.Duration()
	if cfg.ExpectedDuration > 0 {
		if math.Abs(duration-cfg.ExpectedDuration) > cfg.DurationTolerance {
			return Verdict{
				Passed: false,
				Message: fmt.Sprintf("duration mismatch (expected %.2fs, got %.2fs, tolerance %.2fs)",
					cfg.ExpectedDuration, duration, cfg.DurationTolerance),
			}
		}
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "ok (std=%.6f, peak=%.6f, duration=%.2fs, rate=%dHz, channels=%d",
		std, peak, duration, w.SampleRate, w.Channels)

	perChannel := PerChannelStats(w.Samples, w.Channels)
	if len(perChannel) == 1 {
		fmt.Fprintf(&sb, ", mono mean=%.6f std=%.6f", perChannel[0].Mean, perChannel[0].Std)
	} else {
		for c, cs := range perChannel {
			fmt.Fprintf(&sb, ", ch%d mean=%.6f std=%.6f", c, cs.Mean, cs.Std)
		}
	}

	if w.Channels == 2 && len(w.Samples) >= 4 {
		diff := stereoMeanAbsDiff(w.Samples)
		if diff < stereoIdenticalThreshold {
			sb.WriteString(", channels_identical")
		} else {
			fmt.Fprintf(&sb, ", lr_diff=%.6f", diff)
		}
	}

	if flatness := Flatness(w.Samples, w.Channels); flatness >= 0 {
		fmt.Fprintf(&sb, ", flatness=%.4f", flatness)
	}

	if cfg.HumCheck {
		humHz := MainsFrequency()
		if ratio := HumRatio(w.Samples, w.Channels, w.SampleRate, humHz); ratio >= 0 {
			fmt.Fprintf(&sb, ", hum%d=%.4f", humHz, ratio)
		}
	}

	sb.WriteString(")")
	return Verdict{Passed: true, Message: sb.String()}
}

// stereoMeanAbsDiff returns the mean absolute difference between left and
// right channel samples over up to the first maxStereoPairs frame pairs.
// A near-zero result means the stereo channels are duplicated mono.
func stereoMeanAbsDiff(samples []float64) float64 {
	pairs := len(samples) / 2
	if pairs > maxStereoPairs {
		pairs = maxStereoPairs
	}
	if pairs == 0 {
		return 0
	}

	var sum float64
	for i := 0; i < pairs; i++ {
		sum += math.Abs(samples[2*i] - samples[2*i+1])
	}
	return sum / float64(pairs)
}
