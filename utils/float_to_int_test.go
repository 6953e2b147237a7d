// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFloat32ToInt16(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input float32
		want  int16
	}{
		{name: "zero", input: 0.0, want: 0},
		{name: "max positive", input: 1.0, want: math.MaxInt16},
		{name: "max negative", input: -1.0, want: -math.MaxInt16},
		{name: "half positive", input: 0.5, want: 16383},
		{name: "half negative", input: -0.5, want: -16383},
		{name: "clamp over max", input: 1.5, want: math.MaxInt16},
		{name: "clamp under min", input: -100.0, want: -math.MaxInt16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, Float32ToInt16(tt.input))
		})
	}
}

func TestFloat32ToInt16Monotonic(t *testing.T) {
	t.Parallel()

	prev := Float32ToInt16(-1.0)
	for f := -0.99; f <= 1.0; f += 0.01 {
		curr := Float32ToInt16(float32(f))
		assert.GreaterOrEqual(t, curr, prev, "f=%v", f)
		prev = curr
	}
}

func TestInt16ToFloat32(t *testing.T) {
	t.Parallel()

	assert.Equal(t, float32(0), Int16ToFloat32(0))
	assert.Equal(t, float32(-1), Int16ToFloat32(math.MinInt16))
	assert.InDelta(t, 1.0, Int16ToFloat32(math.MaxInt16), 1e-4)
	assert.Equal(t, float32(0.5), Int16ToFloat32(16384))
}

func TestInt16RoundTrip(t *testing.T) {
	t.Parallel()

	for _, v := range []int16{-32000, -1234, -1, 0, 1, 1234, 32000} {
		got := Float32ToInt16(Int16ToFloat32(v))
		assert.InDelta(t, v, got, 1, "v=%d", v)
	}
}

func TestIntToFloat32(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		value    int
		bitDepth int
		want     float32
	}{
		{name: "8-bit min", value: -128, bitDepth: 8, want: -1},
		{name: "16-bit half", value: 16384, bitDepth: 16, want: 0.5},
		{name: "24-bit quarter", value: 2097152, bitDepth: 24, want: 0.25},
		{name: "32-bit min", value: math.MinInt32, bitDepth: 32, want: -1},
		{name: "unknown depth falls back to 16-bit", value: -16384, bitDepth: 12, want: -0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.InDelta(t, tt.want, IntToFloat32(tt.value, tt.bitDepth), 1e-7)
		})
	}
}

func BenchmarkFloat32ToInt16Realistic(b *testing.B) {
	// 1 second of mono audio at 8kHz
	floatSamples := make([]float32, 8000)
	int16Samples := make([]int16, 8000)

	for i := range floatSamples {
		floatSamples[i] = float32(math.Sin(float64(i) * 0.1))
	}

	b.ResetTimer()
	b.ReportAllocs()

	for range b.N {
		for j := range floatSamples {
			int16Samples[j] = Float32ToInt16(floatSamples[j])
		}
	}
}

func TestFloat32ToInt16_ZeroAllocs(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping allocation test in short mode")
	}

	allocs := testing.AllocsPerRun(1000, func() {
		_ = Float32ToInt16(0.5)
	})

	assert.Zero(t, allocs)
}
