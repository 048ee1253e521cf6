package audio

import (
	"errors"
	"os"

	cwav "github.com/cwbudde/wav"
	gaudio "github.com/go-audio/audio"
	gwav "github.com/go-audio/wav"
)

// decodeFunc is one decoding strategy: a path in, a Waveform or an error out.
type decodeFunc func(path string) (*Waveform, error)

// backends lists the decoding strategies in priority order, richest first.
// cwbudde/wav handles IEEE float and all integer PCM widths and returns
// normalized float buffers; go-audio/wav covers integer PCM; the built-in
// reader handles standard PCM16 WAV with no dependencies at all.
var backends = []struct {
	name   string
	decode decodeFunc
}{
	{"cwbudde/wav", decodeFloatWAV},
	{"go-audio/wav", decodeIntWAV},
	{"builtin", decodePCM16WAV},
}

// Decode loads a WAV file into a Waveform, trying each backend in turn.
// The first backend to succeed wins; if all fail, the error from the first
// (most capable) backend is reported.
func Decode(path string) (*Waveform, error) {
	var firstErr error
	for _, b := range backends {
		w, err := b.decode(path)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		if err := w.checkInterleave(); err != nil {
			return nil, &DecodeError{Path: path, Err: err}
		}
		return w, nil
	}
	return nil, &DecodeError{Path: path, Err: firstErr}
}

// decodeFloatWAV decodes via cwbudde/wav, which supports float32/float64 IEEE
// WAVs as well as 8/12/16/24/32-bit integer PCM. Its buffers are already
// normalized to [-1, 1], so samples are used as-is.
func decodeFloatWAV(path string) (*Waveform, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec := cwav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, errors.New("invalid WAV file")
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, err
	}
	if buf == nil {
		return nil, errors.New("no PCM data")
	}

	samples := make([]float64, len(buf.Data))
	for i, v := range buf.Data {
		samples[i] = float64(v)
	}

	return &Waveform{
		Samples:    samples,
		SampleRate: int(dec.SampleRate),
		Channels:   int(dec.NumChans),
	}, nil
}

// decodeIntWAV decodes integer PCM via go-audio/wav. Samples are normalized
// by 1 << (bitDepth-1): exactly 32768.0 at 16 bits, matching the built-in
// reader. The divisor is asymmetric on purpose (the most negative sample maps
// to exactly -1.0); downstream thresholds are tuned against it.
func decodeIntWAV(path string) (*Waveform, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec := gwav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, errors.New("invalid WAV file")
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, err
	}
	if buf == nil || buf.Data == nil {
		return nil, errors.New("no PCM data")
	}

	return intBufferToWaveform(buf, int(dec.BitDepth)), nil
}

// intBufferToWaveform converts a go-audio integer buffer to a normalized
// Waveform.
func intBufferToWaveform(buf *gaudio.IntBuffer, bitDepth int) *Waveform {
	if bitDepth <= 0 {
		bitDepth = 16
	}
	scale := float64(int64(1) << (bitDepth - 1))

	samples := make([]float64, len(buf.Data))
	for i, v := range buf.Data {
		samples[i] = float64(v) / scale
	}

	rate := 0
	channels := 1
	if buf.Format != nil {
		rate = buf.Format.SampleRate
		channels = buf.Format.NumChannels
	}

	return &Waveform{
		Samples:    samples,
		SampleRate: rate,
		Channels:   channels,
	}
}
