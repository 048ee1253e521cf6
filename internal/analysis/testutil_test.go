package analysis

import (
	"encoding/binary"
	"math"
	"os"
	"testing"
)

// generateSineWAV writes a 16-bit PCM WAV containing a sine tone and returns
// its path. Stereo output duplicates the tone on both channels unless
// invertRight is set, which flips the right channel's phase.
func generateSineWAV(t *testing.T, freq, amplitude, durationSecs float64, sampleRate, channels int, invertRight bool) string {
	t.Helper()

	frames := int(durationSecs * float64(sampleRate))
	samples := make([]int16, frames*channels)
	maxInt16 := float64(math.MaxInt16)

	for i := 0; i < frames; i++ {
		ts := float64(i) / float64(sampleRate)
		v := amplitude * math.Sin(2.0*math.Pi*freq*ts)
		for c := 0; c < channels; c++ {
			s := v
			if invertRight && c == 1 {
				s = -s
			}
			samples[i*channels+c] = int16(s * maxInt16)
		}
	}

	tmpFile, err := os.CreateTemp("", "wavecheck-analysis-*.wav")
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	tmpPath := tmpFile.Name()
	t.Cleanup(func() { os.Remove(tmpPath) })

	if err := writeTestWAV(tmpFile, samples, sampleRate, channels); err != nil {
		tmpFile.Close()
		t.Fatalf("failed to write WAV: %v", err)
	}
	if err := tmpFile.Close(); err != nil {
		t.Fatalf("failed to close temp file: %v", err)
	}

	return tmpPath
}

// writeTestWAV writes interleaved 16-bit PCM with a standard 44-byte header
func writeTestWAV(f *os.File, samples []int16, sampleRate, channels int) error {
	const bitsPerSample = 16
	byteRate := sampleRate * channels * bitsPerSample / 8
	blockAlign := channels * bitsPerSample / 8
	dataSize := len(samples) * 2

	if _, err := f.Write([]byte("RIFF")); err != nil {
		return err
	}
	if err := binary.Write(f, binary.LittleEndian, uint32(36+dataSize)); err != nil {
		return err
	}
	if _, err := f.Write([]byte("WAVE")); err != nil {
		return err
	}
	if _, err := f.Write([]byte("fmt ")); err != nil {
		return err
	}
	for _, v := range []interface{}{
		uint32(16), uint16(1), uint16(channels), uint32(sampleRate),
		uint32(byteRate), uint16(blockAlign), uint16(bitsPerSample),
	} {
		if err := binary.Write(f, binary.LittleEndian, v); err != nil {
			return err
		}
	}
	if _, err := f.Write([]byte("data")); err != nil {
		return err
	}
	if err := binary.Write(f, binary.LittleEndian, uint32(dataSize)); err != nil {
		return err
	}
	return binary.Write(f, binary.LittleEndian, samples)
}

// sineSamples returns a mono sine tone as float64 samples
func sineSamples(freq, amplitude float64, n, sampleRate int) []float64 {
	samples := make([]float64, n)
	for i := range samples {
		ts := float64(i) / float64(sampleRate)
		samples[i] = amplitude * math.Sin(2.0*math.Pi*freq*ts)
	}
	return samples
}

// noiseSamples returns deterministic white noise from a small LCG
// (avoids importing math/rand and seeding complexity)
func noiseSamples(amplitude float64, n int) []float64 {
	samples := make([]float64, n)
	rngState := uint32(12345)
	for i := range samples {
		// LCG parameters from Numerical Recipes
		rngState = rngState*1664525 + 1013904223
		samples[i] = amplitude * ((float64(rngState)/float64(0xFFFFFFFF))*2.0 - 1.0)
	}
	return samples
}
