// SPDX-License-Identifier: EPL-2.0

package vorbis_test

import (
	"fmt"
	"log"
	"os"

	"github.com/ik5/gramophone/audio"
	"github.com/ik5/gramophone/formats/vorbis"
)

// ExampleDecoder_Decode shows how to decode an Ogg Vorbis file and fold
// it to mono.
func ExampleDecoder_Decode() {
	f, err := os.Open("input.ogg")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	buf, err := vorbis.Decoder{}.Decode(f)
	if err != nil {
		log.Fatal(err)
	}

	buf.Deinterleave()

	mono, err := audio.Downmix(buf)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Decoded %v of Vorbis audio at %d Hz\n", mono.Duration(), mono.SampleRate)
}
