package audio

import (
	"encoding/binary"
	"math"
	"os"
	"testing"
)

// testWAVOptions configures the synthetic audio to generate
type testWAVOptions struct {
	DurationSecs float64 // Total duration in seconds (default: 1.0)
	SampleRate   int     // Sample rate (default: 44100)
	Channels     int     // Channel count (default: 1)
	ToneFreq     float64 // Sine wave frequency in Hz (0 = silence)
	Amplitude    float64 // Linear amplitude of the tone (0..1)
	InvertRight  bool    // Phase-invert the right channel of stereo output
}

// generateTestWAV creates a synthetic 16-bit PCM WAV file for testing.
// Returns the path to the temporary file; cleanup is registered on t.
func generateTestWAV(t *testing.T, opts testWAVOptions) string {
	t.Helper()

	if opts.SampleRate == 0 {
		opts.SampleRate = 44100
	}
	if opts.Channels == 0 {
		opts.Channels = 1
	}
	if opts.DurationSecs == 0 {
		opts.DurationSecs = 1.0
	}

	frames := int(opts.DurationSecs * float64(opts.SampleRate))
	samples := make([]int16, frames*opts.Channels)

	maxInt16 := float64(math.MaxInt16)
	for i := 0; i < frames; i++ {
		var sample float64
		if opts.ToneFreq > 0 {
			ts := float64(i) / float64(opts.SampleRate)
			sample = opts.Amplitude * math.Sin(2.0*math.Pi*opts.ToneFreq*ts)
		}
		for c := 0; c < opts.Channels; c++ {
			v := sample
			if opts.InvertRight && c == 1 {
				v = -v
			}
			samples[i*opts.Channels+c] = int16(v * maxInt16)
		}
	}

	return writeTempWAV(t, samples, opts.SampleRate, opts.Channels)
}

// writeTempWAV writes interleaved 16-bit samples to a temp WAV file.
func writeTempWAV(t *testing.T, samples []int16, sampleRate, channels int) string {
	t.Helper()

	tmpFile, err := os.CreateTemp("", "wavecheck-test-*.wav")
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	tmpPath := tmpFile.Name()
	t.Cleanup(func() { os.Remove(tmpPath) })

	if err := writeWAV16(tmpFile, samples, sampleRate, channels); err != nil {
		tmpFile.Close()
		t.Fatalf("failed to write WAV file: %v", err)
	}
	if err := tmpFile.Close(); err != nil {
		t.Fatalf("failed to close temp file: %v", err)
	}

	return tmpPath
}

// writeWAV16 writes an interleaved 16-bit PCM WAV
func writeWAV16(f *os.File, samples []int16, sampleRate, channels int) error {
	const bitsPerSample = 16

	byteRate := sampleRate * channels * bitsPerSample / 8
	blockAlign := channels * bitsPerSample / 8
	dataSize := len(samples) * 2

	if err := writeWAVHeader(f, 1, sampleRate, channels, bitsPerSample, byteRate, blockAlign, dataSize); err != nil {
		return err
	}
	for _, sample := range samples {
		if err := binary.Write(f, binary.LittleEndian, sample); err != nil {
			return err
		}
	}
	return nil
}

// writeWAVFloat32 writes an interleaved 32-bit IEEE float WAV. Used to smuggle
// NaN/Inf bit patterns into test fixtures, which PCM16 cannot encode.
func writeWAVFloat32(f *os.File, samples []float32, sampleRate, channels int) error {
	const bitsPerSample = 32

	byteRate := sampleRate * channels * bitsPerSample / 8
	blockAlign := channels * bitsPerSample / 8
	dataSize := len(samples) * 4

	if err := writeWAVHeader(f, 3, sampleRate, channels, bitsPerSample, byteRate, blockAlign, dataSize); err != nil {
		return err
	}
	for _, sample := range samples {
		if err := binary.Write(f, binary.LittleEndian, math.Float32bits(sample)); err != nil {
			return err
		}
	}
	return nil
}

// writeWAVHeader writes the RIFF/fmt/data preamble
func writeWAVHeader(f *os.File, audioFormat uint16, sampleRate, channels, bitsPerSample, byteRate, blockAlign, dataSize int) error {
	fileSize := 36 + dataSize

	if _, err := f.Write([]byte("RIFF")); err != nil {
		return err
	}
	if err := binary.Write(f, binary.LittleEndian, uint32(fileSize)); err != nil {
		return err
	}
	if _, err := f.Write([]byte("WAVE")); err != nil {
		return err
	}

	if _, err := f.Write([]byte("fmt ")); err != nil {
		return err
	}
	if err := binary.Write(f, binary.LittleEndian, uint32(16)); err != nil {
		return err
	}
	if err := binary.Write(f, binary.LittleEndian, audioFormat); err != nil {
		return err
	}
	if err := binary.Write(f, binary.LittleEndian, uint16(channels)); err != nil {
		return err
	}
	if err := binary.Write(f, binary.LittleEndian, uint32(sampleRate)); err != nil {
		return err
	}
	if err := binary.Write(f, binary.LittleEndian, uint32(byteRate)); err != nil {
		return err
	}
	if err := binary.Write(f, binary.LittleEndian, uint16(blockAlign)); err != nil {
		return err
	}
	if err := binary.Write(f, binary.LittleEndian, uint16(bitsPerSample)); err != nil {
		return err
	}

	if _, err := f.Write([]byte("data")); err != nil {
		return err
	}
	return binary.Write(f, binary.LittleEndian, uint32(dataSize))
}
