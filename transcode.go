// SPDX-License-Identifier: EPL-2.0

package gramophone

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ik5/gramophone/audio"
	"github.com/ik5/gramophone/formats/aiff"
	"github.com/ik5/gramophone/formats/mp3"
	"github.com/ik5/gramophone/formats/vorbis"
	"github.com/ik5/gramophone/formats/wav"
	"github.com/ik5/gramophone/utils"
)

var ErrUnsupportedFormat = errors.New("unsupported audio format")

// NewRegistry returns a registry with every bundled format registered
// under its usual file extensions.
func NewRegistry() *audio.Registry {
	reg := audio.NewRegistry()

	reg.Register("wav", wav.Decoder{})
	reg.Register("wave", wav.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("oga", vorbis.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})

	reg.RegisterEncoder("wav", wav.Encoder{})
	reg.RegisterEncoder("wave", wav.Encoder{})

	return reg
}

// FormatFromPath returns the lower-case extension of path without the dot.
func FormatFromPath(path string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
}

// Transcode decodes in as inFormat, runs it through Process with cfg and
// encodes the result to out as outFormat.
func Transcode(reg *audio.Registry, in io.Reader, inFormat string, out io.Writer, outFormat string, cfg audio.Config) error {
	dec, ok := reg.Get(inFormat)
	if !ok {
		return fmt.Errorf("%w: cannot decode %q", ErrUnsupportedFormat, inFormat)
	}

	enc, ok := reg.GetEncoder(outFormat)
	if !ok {
		return fmt.Errorf("%w: cannot encode %q", ErrUnsupportedFormat, outFormat)
	}

	buf, err := dec.Decode(in)
	if err != nil {
		return fmt.Errorf("decode %s: %w", inFormat, err)
	}

	processed, err := audio.Process(buf, cfg)
	if err != nil {
		return fmt.Errorf("process: %w", err)
	}

	if err := enc.Encode(out, processed); err != nil {
		return fmt.Errorf("encode %s: %w", outFormat, err)
	}

	return nil
}

// ProcessToPCM16 runs b through Process with cfg and returns the result as
// interleaved 16-bit PCM together with its sample rate. Samples outside
// [-1, 1] are clipped.
func ProcessToPCM16(b *audio.Buffer, cfg audio.Config) ([]int16, int, error) {
	out, err := audio.Process(b, cfg)
	if err != nil {
		return nil, 0, err
	}

	// out never shares storage with b.
	if out.Layout == audio.Planar {
		out.Interleave()
	}

	pcm16 := make([]int16, len(out.Samples))
	for i, x := range out.Samples {
		pcm16[i] = utils.Float32ToInt16(x)
	}

	return pcm16, out.SampleRate, nil
}
