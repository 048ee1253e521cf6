package audio

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

// pcm16Header holds the fields of a standard WAV fmt chunk.
type pcm16Header struct {
	AudioFormat   uint16
	NumChannels   uint16
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16
}

// decodePCM16WAV is the dependency-free fallback backend. It parses standard
// RIFF/WAVE headers with encoding/binary and reads 16-bit little-endian PCM,
// normalizing by 32768.0. Anything other than PCM16 is rejected so that the
// error from a richer backend surfaces instead.
func decodePCM16WAV(path string) (*Waveform, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	header, data, err := readPCM16(f)
	if err != nil {
		return nil, err
	}

	// 16-bit little-endian samples, two bytes each
	samples := make([]float64, len(data)/2)
	for i := range samples {
		v := int16(binary.LittleEndian.Uint16(data[2*i:]))
		samples[i] = float64(v) / 32768.0
	}

	return &Waveform{
		Samples:    samples,
		SampleRate: int(header.SampleRate),
		Channels:   int(header.NumChannels),
	}, nil
}

// readPCM16 walks the RIFF chunks of a WAV file, returning the fmt chunk
// fields and the raw contents of the data chunk. Unknown chunks are skipped.
func readPCM16(r io.ReadSeeker) (pcm16Header, []byte, error) {
	var header pcm16Header

	var riff [4]byte
	if err := binary.Read(r, binary.LittleEndian, &riff); err != nil {
		return header, nil, err
	}
	if string(riff[:]) != "RIFF" {
		return header, nil, fmt.Errorf("not a WAV file (missing RIFF)")
	}

	var riffSize uint32
	if err := binary.Read(r, binary.LittleEndian, &riffSize); err != nil {
		return header, nil, err
	}

	var wave [4]byte
	if err := binary.Read(r, binary.LittleEndian, &wave); err != nil {
		return header, nil, err
	}
	if string(wave[:]) != "WAVE" {
		return header, nil, fmt.Errorf("not a WAV file (missing WAVE)")
	}

	fmtFound := false
	for {
		var chunkID [4]byte
		var chunkSize uint32

		if err := binary.Read(r, binary.LittleEndian, &chunkID); err != nil {
			if err == io.EOF {
				return header, nil, fmt.Errorf("data chunk not found")
			}
			return header, nil, err
		}
		if err := binary.Read(r, binary.LittleEndian, &chunkSize); err != nil {
			return header, nil, err
		}

		switch string(chunkID[:]) {
		case "fmt ":
			if chunkSize < 16 {
				return header, nil, fmt.Errorf("invalid fmt chunk size: %d", chunkSize)
			}
			if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
				return header, nil, err
			}
			// Skip any extension bytes (extensible format and friends)
			if chunkSize > 16 {
				if _, err := r.Seek(int64(chunkSize-16), io.SeekCurrent); err != nil {
					return header, nil, err
				}
			}
			if header.AudioFormat != 1 {
				return header, nil, fmt.Errorf("unsupported audio format %d (PCM only)", header.AudioFormat)
			}
			if header.BitsPerSample != 16 {
				return header, nil, fmt.Errorf("unsupported bit depth %d (16-bit only)", header.BitsPerSample)
			}
			fmtFound = true

		case "data":
			if !fmtFound {
				return header, nil, fmt.Errorf("data chunk found before fmt chunk")
			}
			data := make([]byte, chunkSize)
			if _, err := io.ReadFull(r, data); err != nil {
				return header, nil, fmt.Errorf("short data chunk: %w", err)
			}
			return header, data, nil

		default:
			// Chunks are word-aligned; odd sizes carry a pad byte
			skip := int64(chunkSize)
			if chunkSize%2 == 1 {
				skip++
			}
			if _, err := r.Seek(skip, io.SeekCurrent); err != nil {
				return header, nil, err
			}
		}
	}
}
