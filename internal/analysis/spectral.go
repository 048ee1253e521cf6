package analysis

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"
)

const (
	// maxSpectrumSamples bounds the FFT cost for long files.
	maxSpectrumSamples = 65536
	// minSpectrumSamples is the shortest signal worth analyzing.
	minSpectrumSamples = 256
	// spectrumEpsilon keeps log() away from zero magnitudes.
	spectrumEpsilon = 1e-10
)

// NotComputable is the sentinel returned when a spectral estimate cannot be
// produced (too few samples). Callers suppress the field entirely.
const NotComputable = -1.0

// Flatness estimates the spectral flatness of an interleaved signal: the
// ratio of the geometric to the arithmetic mean of its magnitude spectrum.
// Values near 0 indicate tonal content, values near 1 noise-like content.
// Returns NotComputable when fewer than 256 samples remain after channel
// reduction.
//
// Multi-channel input is reduced to channel 0 only, not downmixed. This is a
// deliberate approximation: a flatness estimate does not need a proper mix,
// and channel-0 extraction keeps the result stable across channel layouts.
func Flatness(samples []float64, channels int) float64 {
	mono := channelZero(samples, channels)
	if len(mono) < minSpectrumSamples {
		return NotComputable
	}
	if len(mono) > maxSpectrumSamples {
		mono = mono[:maxSpectrumSamples]
	}

	mags := magnitudeSpectrum(mono)

	// Near-silent spectrum: report 0 rather than dividing noise by noise
	var rawSum float64
	for _, m := range mags {
		rawSum += m
	}
	if rawSum/float64(len(mags)) < spectrumEpsilon {
		return 0.0
	}

	// Geometric mean via exp(mean(log)) for numerical stability
	var logSum, sum float64
	for _, m := range mags {
		m += spectrumEpsilon
		logSum += math.Log(m)
		sum += m
	}
	n := float64(len(mags))
	geometric := math.Exp(logSum / n)
	arithmetic := sum / n

	return geometric / arithmetic
}

// channelZero reduces an interleaved signal to its first channel.
func channelZero(samples []float64, channels int) []float64 {
	if channels <= 1 {
		return samples
	}
	mono := make([]float64, 0, len(samples)/channels)
	for i := 0; i < len(samples); i += channels {
		mono = append(mono, samples[i])
	}
	return mono
}

// magnitudeSpectrum returns the one-sided magnitude spectrum of x with the
// DC bin discarded.
func magnitudeSpectrum(x []float64) []float64 {
	fft := fourier.NewFFT(len(x))
	coeffs := fft.Coefficients(nil, x)

	mags := make([]float64, len(coeffs)-1)
	for i, c := range coeffs[1:] {
		mags[i] = cmplx.Abs(c)
	}
	return mags
}
