// Package analysis implements the statistical and spectral health checks used
// to decide whether a decoded waveform is genuine, non-degenerate audio.
package analysis

import "math"

// ChannelStats holds the population mean and standard deviation of one channel.
type ChannelStats struct {
	Mean float64
	Std  float64
}

// Stats returns the population mean and standard deviation of samples.
// An empty sequence yields (0, 0) rather than an error.
func Stats(samples []float64) (mean, std float64) {
	n := len(samples)
	if n == 0 {
		return 0, 0
	}

	var sum float64
	for _, x := range samples {
		sum += x
	}
	mean = sum / float64(n)

	var sqSum float64
	for _, x := range samples {
		d := x - mean
		sqSum += d * d
	}
	// Floating-point cancellation can push the variance fractionally negative
	variance := math.Max(0, sqSum/float64(n))

	return mean, math.Sqrt(variance)
}

// PerChannelStats computes Stats independently per channel of an interleaved
// sequence. Channel c is the strided subsequence at positions c, c+channels,
// c+2*channels, and so on. For channels <= 1 the result is a single entry
// equal to the whole-signal statistics.
func PerChannelStats(samples []float64, channels int) []ChannelStats {
	if channels <= 1 {
		mean, std := Stats(samples)
		return []ChannelStats{{Mean: mean, Std: std}}
	}

	stats := make([]ChannelStats, channels)
	for c := 0; c < channels; c++ {
		var channel []float64
		for i := c; i < len(samples); i += channels {
			channel = append(channel, samples[i])
		}
		mean, std := Stats(channel)
		stats[c] = ChannelStats{Mean: mean, Std: std}
	}
	return stats
}

// Peak returns the maximum absolute sample value across all channels jointly.
// An empty sequence yields 0.
func Peak(samples []float64) float64 {
	var peak float64
	for _, x := range samples {
		if a := math.Abs(x); a > peak {
			peak = a
		}
	}
	return peak
}
