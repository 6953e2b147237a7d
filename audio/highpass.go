// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"math"
)

const (
	firOrder = 3
	iirOrder = 2
)

// HighPassConfig describes a cascade of second-order Butterworth high-pass
// sections. CutoffRatio is the cutoff frequency as a fraction of the sample
// rate; values at or above 0.5 (Nyquist) make the filter unstable and are
// the caller's responsibility.
type HighPassConfig struct {
	Sections    int
	CutoffRatio float64
}

func (c HighPassConfig) Validate() error {
	if c.Sections < 1 {
		return fmt.Errorf("%w: high-pass needs at least one section, got %d", ErrInvalidConfig, c.Sections)
	}
	if !(c.CutoffRatio > 0) {
		return fmt.Errorf("%w: high-pass cutoff ratio must be positive, got %v", ErrInvalidConfig, c.CutoffRatio)
	}

	return nil
}

// Order of the equivalent Butterworth filter: every section adds two poles.
func (c HighPassConfig) Order() int { return c.Sections * 2 }

// hpSection holds the taps and history of one biquad stage, split into a
// FIR numerator and an IIR denominator.
type hpSection struct {
	firTaps [firOrder]float64
	firHist [firOrder]float64
	iirTaps [iirOrder]float64
	iirHist [iirOrder]float64
	gain    float64
}

// newHighPassSection computes section k (1-based) of a Butterworth
// high-pass of the given order via the pre-warped bilinear transform.
func newHighPassSection(k, order int, cutoffHz, fs float64) hpSection {
	n := float64(order)

	// Pre-warped cutoff, inverted.
	omegaInv := 1 / (2 * fs * math.Tan(math.Pi*cutoffHz/fs))
	zeta := -math.Cos(math.Pi * (2*float64(k) + n - 1) / (2 * n))

	fs2 := fs * fs
	w2 := 1 / (omegaInv * omegaInv)
	b0 := 4*fs2 + 4*fs*zeta/omegaInv + w2

	return hpSection{
		firTaps: [firOrder]float64{4 * fs2, -8 * fs2, 4 * fs2},
		iirTaps: [iirOrder]float64{
			(2*w2 - 8*fs2) / -b0,
			(4*fs2 - 4*fs*zeta/omegaInv + w2) / -b0,
		},
		gain: 1 / b0,
	}
}

func (s *hpSection) process(x float64) float64 {
	x *= s.gain

	// FIR: shift history, newest sample at index 0.
	s.firHist[2], s.firHist[1], s.firHist[0] = s.firHist[1], s.firHist[0], x
	y := s.firTaps[0]*s.firHist[0] + s.firTaps[1]*s.firHist[1] + s.firTaps[2]*s.firHist[2]

	// IIR: feed back the two previous outputs.
	y += s.iirTaps[0]*s.iirHist[0] + s.iirTaps[1]*s.iirHist[1]
	s.iirHist[1], s.iirHist[0] = s.iirHist[0], y

	return y
}

// HighPass filters b in place. Each section consumes the full output of
// the previous one.
//
// Planar multi-channel buffers are filtered channel by channel, each
// channel starting from its own zero history. Any other buffer is one
// continuous stream, so interleaved frames bleed across channels.
func HighPass(b *Buffer, cfg HighPassConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if b.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate = %d", ErrInvalidBuffer, b.SampleRate)
	}

	fs := float64(b.SampleRate)
	cutoffHz := cfg.CutoffRatio * fs
	order := cfg.Order()

	sections := make([]hpSection, cfg.Sections)
	for i := range sections {
		sections[i] = newHighPassSection(i+1, order, cutoffHz, fs)
	}

	if b.Layout == Planar && b.Channels > 1 {
		for ch := range b.Channels {
			plane, err := b.Channel(ch)
			if err != nil {
				return err
			}
			runCascade(plane, sections)
		}
		return nil
	}

	runCascade(b.Samples, sections)

	return nil
}

// runCascade runs every section over samples, starting from zero history.
// sections are reset afterwards so they can be reused for another stream.
func runCascade(samples []float32, sections []hpSection) {
	for i := range sections {
		s := &sections[i]
		for j, v := range samples {
			samples[j] = float32(s.process(float64(v)))
		}

		s.firHist = [firOrder]float64{}
		s.iirHist = [iirOrder]float64{}
	}
}
