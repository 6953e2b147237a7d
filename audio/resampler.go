// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"math"
)

// Resample returns a new Planar buffer at dstRate. Every input sample is
// accumulated into output slot floor(i * (outLen-1)/(inLen-1)) and the
// result is scaled by outLen/inLen.
//
// This is a decimating accumulator, not a band-limited resampler: content
// above the new Nyquist frequency aliases. Upsampling leaves empty slots.
// When downsampling, the floor mapping is biased at the edges: slot 0
// collects more inputs than its neighbours and the last slot fewer, so a
// constant input comes out high at the start and low at the end, e.g.
// 100 -> 50 frames of 1.0 gives 1.5, 1.0, ..., 1.0, 0.5.
func Resample(b *Buffer, dstRate int) (*Buffer, error) {
	if b.Layout != Planar {
		return nil, fmt.Errorf("%w: cannot resample %s buffer", ErrNotPlanar, b.Layout)
	}
	if dstRate <= 0 || b.SampleRate <= 0 {
		return nil, fmt.Errorf("%w: resample %d Hz -> %d Hz", ErrInvalidConfig, b.SampleRate, dstRate)
	}

	outLen := resampledLength(b.SamplesPerChannel(), b.SampleRate, dstRate)
	out := &Buffer{
		Channels:   b.Channels,
		SampleRate: dstRate,
		Layout:     Planar,
		Samples:    make([]float32, outLen*b.Channels),
	}

	for ch := range b.Channels {
		src, err := b.Channel(ch)
		if err != nil {
			return nil, err
		}
		dst, err := out.Channel(ch)
		if err != nil {
			return nil, err
		}
		decimate(dst, src)
	}

	return out, nil
}

// resampledLength is floor(frames / srcRate * dstRate), computed on
// integers so exact ratios never round down by one.
func resampledLength(frames, srcRate, dstRate int) int {
	return int(int64(frames) * int64(dstRate) / int64(srcRate))
}

func decimate(dst, src []float32) {
	if len(dst) == 0 || len(src) == 0 {
		return
	}

	var ratio float64
	if len(src) > 1 {
		ratio = float64(len(dst)-1) / float64(len(src)-1)
	}

	last := len(dst) - 1
	for i, v := range src {
		idx := min(int(math.Floor(float64(i)*ratio)), last)
		dst[idx] += v
	}

	scale := float32(len(dst)) / float32(len(src))
	for i := range dst {
		dst[i] *= scale
	}
}
