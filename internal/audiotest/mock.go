// SPDX-License-Identifier: EPL-2.0

// Package audiotest generates deterministic sample data for tests.
// It returns raw slices so that it can be used from the audio package's
// own tests without an import cycle.
package audiotest

import "math"

// Waveform returns the value of one sample of one channel.
type Waveform func(frame int, channel int) float32

// Interleaved renders frames of waveform in interleaved order.
func Interleaved(channels, frames int, waveform Waveform) []float32 {
	out := make([]float32, channels*frames)
	for f := range frames {
		for ch := range channels {
			out[f*channels+ch] = waveform(f, ch)
		}
	}

	return out
}

// Planar renders frames of waveform with each channel contiguous.
func Planar(channels, frames int, waveform Waveform) []float32 {
	out := make([]float32, channels*frames)
	for ch := range channels {
		for f := range frames {
			out[ch*frames+f] = waveform(f, ch)
		}
	}

	return out
}

// Sine is a sine wave of the given frequency and amplitude on every channel.
func Sine(sampleRate int, frequency float64, amplitude float32) Waveform {
	return func(frame int, _ int) float32 {
		t := float64(frame) / float64(sampleRate)
		return amplitude * float32(math.Sin(2*math.Pi*frequency*t))
	}
}

// Constant is the same value everywhere.
func Constant(value float32) Waveform {
	return func(int, int) float32 { return value }
}

// Silence is all zeros.
func Silence() Waveform {
	return Constant(0)
}

// Ramp encodes the position of each sample: channel*1000 + frame.
// Useful for checking layout permutations.
func Ramp() Waveform {
	return func(frame int, channel int) float32 {
		return float32(channel*1000 + frame)
	}
}

// Sum adds several waveforms together.
func Sum(waves ...Waveform) Waveform {
	return func(frame int, channel int) float32 {
		var v float32
		for _, w := range waves {
			v += w(frame, channel)
		}
		return v
	}
}
