// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	"github.com/ik5/gramophone/audio"
	"github.com/ik5/gramophone/utils"
)

// Encoder writes an audio.Buffer as 16-bit PCM WAV. Planar buffers are
// interleaved on a copy; samples outside [-1, 1] are clipped.
type Encoder struct{}

func (Encoder) Encode(w io.Writer, b *audio.Buffer) error {
	if err := b.Validate(); err != nil {
		return fmt.Errorf("encoding wav: %w", err)
	}

	if b.Layout != audio.Interleaved {
		b = b.Copy()
		b.Interleave()
	}

	pcm := make([]int16, len(b.Samples))
	for i, v := range b.Samples {
		pcm[i] = utils.Float32ToInt16(v)
	}

	return WriteWAV16(w, b.SampleRate, b.Channels, pcm)
}
