// Package audio provides WAV file decoding for waveform validation.
package audio

import "fmt"

// Waveform is a decoded audio signal: channel-interleaved samples in
// approximately [-1.0, 1.0], plus the sample rate and channel count.
type Waveform struct {
	Samples    []float64
	SampleRate int
	Channels   int
}

// Duration returns the signal length in seconds.
func (w *Waveform) Duration() float64 {
	if w.Channels <= 0 || w.SampleRate <= 0 {
		return 0
	}
	frames := len(w.Samples) / w.Channels
	return float64(frames) / float64(w.SampleRate)
}

// DecodeError reports a failure to decode a file, carrying the underlying cause.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// checkInterleave verifies the interleaving invariant: a multi-channel signal
// must contain a whole number of frames. A violation means the source was
// malformed and is reported as a decode error rather than silently truncated.
func (w *Waveform) checkInterleave() error {
	if w.Channels > 0 && len(w.Samples) > 0 && len(w.Samples)%w.Channels != 0 {
		return fmt.Errorf("malformed audio: %d samples not divisible by %d channels",
			len(w.Samples), w.Channels)
	}
	return nil
}
