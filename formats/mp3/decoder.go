// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/ik5/gramophone/audio"
	"github.com/ik5/gramophone/utils"
)

// go-mp3 always decodes to 16-bit little-endian stereo.
const (
	channels      = 2
	bytesPerFrame = channels * 2
)

// ErrNoAudioData is returned when the stream decodes to zero frames.
var ErrNoAudioData = errors.New("MP3 stream contains no samples")

// mp3Reader is an interface for gomp3.Decoder to allow testing
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

// readAll drains dec and converts its PCM bytes to interleaved float32.
func readAll(dec mp3Reader) (*audio.Buffer, error) {
	pcm, err := io.ReadAll(dec)
	if err != nil {
		return nil, fmt.Errorf("reading mp3 data: %w", err)
	}

	frames := len(pcm) / bytesPerFrame
	if frames == 0 {
		return nil, ErrNoAudioData
	}

	samples := make([]float32, frames*channels)
	for i := range samples {
		samples[i] = utils.Int16ToFloat32(int16(binary.LittleEndian.Uint16(pcm[2*i:])))
	}

	return audio.NewBuffer(samples, channels, dec.SampleRate(), audio.Interleaved), nil
}

// Decoder reads MP3 streams into an interleaved stereo audio.Buffer.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (*audio.Buffer, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("decoding mp3: %w", err)
	}

	return readAll(dec)
}
