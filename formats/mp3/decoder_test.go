// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"bytes"
	"encoding/binary"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ik5/gramophone/audio"
)

// mockMP3Reader simulates the gomp3.Decoder for testing
type mockMP3Reader struct {
	sampleRate   int
	samples      []int16 // PCM samples (16-bit)
	offset       int
	chunk        int // max samples per Read, 0 for unlimited
	returnErrors bool
}

func (m *mockMP3Reader) SampleRate() int {
	return m.sampleRate
}

func (m *mockMP3Reader) Read(buf []byte) (int, error) {
	if m.returnErrors {
		return 0, io.ErrUnexpectedEOF
	}

	if m.offset >= len(m.samples) {
		return 0, io.EOF
	}

	samplesToRead := min(len(buf)/2, len(m.samples)-m.offset)
	if m.chunk > 0 {
		samplesToRead = min(samplesToRead, m.chunk)
	}

	for i := range samplesToRead {
		binary.LittleEndian.PutUint16(buf[i*2:i*2+2], uint16(m.samples[m.offset+i]))
	}

	m.offset += samplesToRead

	return samplesToRead * 2, nil
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader([]byte("This is not MP3 data")))
	assert.Error(t, err)
}

func TestDecoder_EmptyInput(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader(nil))
	assert.Error(t, err)
}

func TestReadAll_Metadata(t *testing.T) {
	t.Parallel()

	buf, err := readAll(&mockMP3Reader{
		sampleRate: 44100,
		samples:    make([]int16, 200),
	})
	require.NoError(t, err)

	assert.Equal(t, 2, buf.Channels)
	assert.Equal(t, 44100, buf.SampleRate)
	assert.Equal(t, audio.Interleaved, buf.Layout)
	assert.Equal(t, 100, buf.SamplesPerChannel())
}

func TestReadAll_ConversionAccuracy(t *testing.T) {
	t.Parallel()

	buf, err := readAll(&mockMP3Reader{
		sampleRate: 44100,
		samples:    []int16{0, 1, -1, 32767, -32768, 16384, -16384, 0},
	})
	require.NoError(t, err)

	expected := []float32{0.0, 1.0 / 32768.0, -1.0 / 32768.0, 1.0, -1.0, 0.5, -0.5, 0}
	assert.InDeltaSlice(t, expected, buf.Samples, 0.0001)
}

func TestReadAll_SmallReads(t *testing.T) {
	t.Parallel()

	samples := make([]int16, 1000)
	for i := range samples {
		samples[i] = int16(i * 10)
	}

	buf, err := readAll(&mockMP3Reader{
		sampleRate: 8000,
		samples:    samples,
		chunk:      7,
	})
	require.NoError(t, err)
	require.Len(t, buf.Samples, len(samples))

	for i, s := range samples {
		assert.InDelta(t, float32(s)/32768, buf.Samples[i], 1e-7)
	}
}

func TestReadAll_DropsPartialFrame(t *testing.T) {
	t.Parallel()

	buf, err := readAll(&mockMP3Reader{
		sampleRate: 8000,
		samples:    []int16{1, 2, 3},
	})
	require.NoError(t, err)
	assert.Len(t, buf.Samples, 2)
}

func TestReadAll_Errors(t *testing.T) {
	t.Parallel()

	_, err := readAll(&mockMP3Reader{sampleRate: 8000, returnErrors: true})
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)

	_, err = readAll(&mockMP3Reader{sampleRate: 8000})
	assert.ErrorIs(t, err, ErrNoAudioData)

	_, err = readAll(&mockMP3Reader{sampleRate: 8000, samples: []int16{5}})
	assert.ErrorIs(t, err, ErrNoAudioData, "a single sample is not a whole stereo frame")
}

func BenchmarkReadAll(b *testing.B) {
	samples := make([]int16, 44100*2)
	for i := range samples {
		samples[i] = int16(i % 1000)
	}

	b.ResetTimer()
	b.ReportAllocs()

	for range b.N {
		_, _ = readAll(&mockMP3Reader{sampleRate: 44100, samples: samples})
	}
}
