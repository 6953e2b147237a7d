// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"

	"github.com/tphakala/simd/f32"
)

// downmixKind selects the index mapping for a (channel count, layout) pair.
type downmixKind uint8

const (
	stereoInterleaved downmixKind = iota
	stereoPlanar
	multiInterleaved
	multiPlanar
)

// mixFunc averages src into dst, where len(dst) is the frame count.
type mixFunc func(dst, src []float32, channels int)

var mixers = [...]mixFunc{
	stereoInterleaved: mixStereoInterleaved,
	stereoPlanar:      mixStereoPlanar,
	multiInterleaved:  mixMultiInterleaved,
	multiPlanar:       mixMultiPlanar,
}

func selectMixer(channels int, layout Layout) (mixFunc, error) {
	var kind downmixKind

	switch {
	case channels == 2 && layout == Interleaved:
		kind = stereoInterleaved
	case channels == 2 && layout == Planar:
		kind = stereoPlanar
	case channels > 2 && layout == Interleaved:
		kind = multiInterleaved
	case channels > 2 && layout == Planar:
		kind = multiPlanar
	default:
		return nil, fmt.Errorf("%w: cannot downmix %d channels in %s layout",
			ErrUnsupportedLayout, channels, layout)
	}

	return mixers[kind], nil
}

// Downmix returns a new mono buffer whose samples are the average of all
// input channels. The input is left untouched. Mono input is copied.
func Downmix(b *Buffer) (*Buffer, error) {
	if b.Channels <= 1 {
		out := b.Copy()
		out.Channels = 1
		return out, nil
	}

	mix, err := selectMixer(b.Channels, b.Layout)
	if err != nil {
		return nil, err
	}

	out := &Buffer{
		Channels:   1,
		SampleRate: b.SampleRate,
		Layout:     b.Layout,
		Samples:    make([]float32, b.SamplesPerChannel()),
	}
	mix(out.Samples, b.Samples, b.Channels)

	return out, nil
}

func mixStereoInterleaved(dst, src []float32, _ int) {
	for f := range dst {
		idx := f << 1 // f * 2
		dst[f] = (src[idx] + src[idx+1]) * 0.5
	}
}

func mixStereoPlanar(dst, src []float32, _ int) {
	right := src[len(dst):]
	for f := range dst {
		dst[f] = (src[f] + right[f]) * 0.5
	}
}

// mixMultiInterleaved and mixMultiPlanar sum every channel into dst, then
// scale once.
func mixMultiInterleaved(dst, src []float32, channels int) {
	for ch := range channels {
		for f, j := 0, ch; f < len(dst); f, j = f+1, j+channels {
			dst[f] += src[j]
		}
	}

	f32.Scale(dst, dst, 1/float32(channels))
}

func mixMultiPlanar(dst, src []float32, channels int) {
	frames := len(dst)
	for ch := range channels {
		plane := src[ch*frames : (ch+1)*frames]
		for f := range dst {
			dst[f] += plane[f]
		}
	}

	f32.Scale(dst, dst, 1/float32(channels))
}
