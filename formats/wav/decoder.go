// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/ik5/gramophone/audio"
	"github.com/ik5/gramophone/utils"
)

const (
	formatPCM  = 1
	readFrames = 4096
)

// pcmReader is an interface for wav.Decoder to allow testing
type pcmReader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// readAll drains dec into an interleaved float32 buffer.
func readAll(dec pcmReader, bitDepth int) (*audio.Buffer, error) {
	format := dec.Format()
	if format == nil || format.NumChannels <= 0 || format.SampleRate <= 0 {
		return nil, ErrUnsupportedWavLayout
	}

	intBuf := &goaudio.IntBuffer{
		Data:   make([]int, readFrames*format.NumChannels),
		Format: format,
	}
	samples := make([]float32, 0, len(intBuf.Data))

	for {
		n, err := dec.PCMBuffer(intBuf)
		for _, v := range intBuf.Data[:n] {
			samples = append(samples, utils.IntToFloat32(v, bitDepth))
		}

		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("reading wav data: %w", err)
		}
		if n == 0 || err != nil {
			break
		}
	}

	if len(samples) == 0 {
		return nil, ErrNoAudioData
	}

	// Drop a trailing partial frame.
	samples = samples[:len(samples)-len(samples)%format.NumChannels]

	return audio.NewBuffer(samples, format.NumChannels, format.SampleRate, audio.Interleaved), nil
}

// Decoder reads integer PCM WAV files (16, 24 or 32 bit) into an
// interleaved audio.Buffer.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (*audio.Buffer, error) {
	// go-audio requires io.ReadSeeker
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading wav data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := gowav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}

	dec.ReadInfo()
	if err := dec.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedWavLayout, err)
	}

	if dec.WavAudioFormat != formatPCM {
		return nil, ErrOnlyPCMSupported
	}

	switch dec.BitDepth {
	case 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, dec.BitDepth)
	}

	return readAll(dec, int(dec.BitDepth))
}
