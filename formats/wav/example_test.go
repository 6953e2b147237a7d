// SPDX-License-Identifier: EPL-2.0

package wav_test

import (
	"bytes"
	"fmt"

	"github.com/ik5/gramophone/audio"
	"github.com/ik5/gramophone/formats/wav"
)

// Example_decoding demonstrates decoding a WAV file.
func Example_decoding() {
	// Create a sample WAV file
	wavData := new(bytes.Buffer)
	_ = wav.WriteWAV16(wavData, 16000, 1, []int16{100, 200, 300, 400, 500})

	buf, err := wav.Decoder{}.Decode(wavData)
	if err != nil {
		fmt.Printf("Decode error: %v\n", err)
		return
	}

	fmt.Printf("Sample rate: %d Hz\n", buf.SampleRate)
	fmt.Printf("Channels: %d\n", buf.Channels)
	fmt.Printf("Samples: %d\n", len(buf.Samples))
	// Output:
	// Sample rate: 16000 Hz
	// Channels: 1
	// Samples: 5
}

// Example_encoding demonstrates writing a processed buffer.
func Example_encoding() {
	buf := audio.NewBuffer([]float32{0, 0.5, -0.5, 0.25}, 2, 8000, audio.Interleaved)

	out := new(bytes.Buffer)
	if err := (wav.Encoder{}).Encode(out, buf); err != nil {
		fmt.Printf("Encode error: %v\n", err)
		return
	}

	fmt.Printf("Wrote %d bytes\n", out.Len())
	// Output:
	// Wrote 52 bytes
}
