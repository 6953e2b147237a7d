// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"

	"github.com/ik5/gramophone/audio"
	"github.com/ik5/gramophone/utils"
)

const (
	bitDepth   = 16
	readFrames = 4096
)

type aiffReader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// readAll drains dec into an interleaved float32 buffer.
func readAll(dec aiffReader) (*audio.Buffer, error) {
	format := dec.Format()
	if format == nil || format.NumChannels <= 0 || format.SampleRate <= 0 {
		return nil, ErrUnsupportedAiffLayout
	}

	intBuf := &goaudio.IntBuffer{
		Data:   make([]int, readFrames*format.NumChannels),
		Format: format,
	}

	var samples []float32

	for {
		n, err := dec.PCMBuffer(intBuf)
		for _, v := range intBuf.Data[:n] {
			samples = append(samples, utils.IntToFloat32(v, bitDepth))
		}

		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("reading aiff data: %w", err)
		}
		if n == 0 || err != nil {
			break
		}
	}

	samples = samples[:len(samples)-len(samples)%format.NumChannels]
	if len(samples) == 0 {
		return nil, ErrNoAudioData
	}

	return audio.NewBuffer(samples, format.NumChannels, format.SampleRate, audio.Interleaved), nil
}

// Decoder reads 16-bit PCM AIFF files into an interleaved audio.Buffer.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (*audio.Buffer, error) {
	// go-audio requires io.ReadSeeker
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading aiff data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}

	dec.ReadInfo()

	if dec.BitDepth != bitDepth {
		return nil, fmt.Errorf("%w: got %d bits", ErrOnlyPCM16bitSupported, dec.BitDepth)
	}

	return readAll(dec)
}
