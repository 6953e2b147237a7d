// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"errors"
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"

	"github.com/ik5/gramophone/audio"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported Vorbis stream format")
	ErrNoAudioData       = errors.New("Vorbis stream contains no samples")
)

// toBuffer wraps decoded interleaved samples, dropping a trailing partial
// frame.
func toBuffer(samples []float32, format *oggvorbis.Format) (*audio.Buffer, error) {
	if format == nil || format.Channels <= 0 || format.SampleRate <= 0 {
		return nil, ErrUnsupportedFormat
	}

	samples = samples[:len(samples)-len(samples)%format.Channels]
	if len(samples) == 0 {
		return nil, ErrNoAudioData
	}

	return audio.NewBuffer(samples, format.Channels, format.SampleRate, audio.Interleaved), nil
}

// Decoder reads Ogg Vorbis streams into an interleaved audio.Buffer.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (*audio.Buffer, error) {
	samples, format, err := oggvorbis.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("decoding vorbis: %w", err)
	}

	return toBuffer(samples, format)
}
