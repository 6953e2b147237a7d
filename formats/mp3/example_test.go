// SPDX-License-Identifier: EPL-2.0

package mp3_test

import (
	"bytes"
	"fmt"
	"log"
	"os"

	"github.com/ik5/gramophone/audio"
	"github.com/ik5/gramophone/formats/mp3"
	"github.com/ik5/gramophone/formats/wav"
)

// ExampleDecoder_Decode_convertToWav decodes an MP3, prepares it for the
// 11025 Hz mono target and writes it as WAV.
func ExampleDecoder_Decode_convertToWav() {
	mp3File, err := os.Open("input.mp3")
	if err != nil {
		log.Fatal(err)
	}
	defer mp3File.Close()

	buf, err := mp3.Decoder{}.Decode(mp3File)
	if err != nil {
		log.Fatal(err)
	}

	out, err := audio.Process(buf, audio.DefaultConfig())
	if err != nil {
		log.Fatal(err)
	}

	wavFile, err := os.Create("output.wav")
	if err != nil {
		log.Fatal(err)
	}
	defer wavFile.Close()

	if err := (wav.Encoder{}).Encode(wavFile, out); err != nil {
		log.Fatal(err)
	}

	fmt.Println("MP3 converted to WAV")
}

// ExampleDecoder_Decode_errorHandling shows error handling for invalid MP3 files.
func ExampleDecoder_Decode_errorHandling() {
	_, err := mp3.Decoder{}.Decode(bytes.NewReader([]byte("not an mp3 file")))
	if err != nil {
		fmt.Println("invalid MP3 rejected")
		return
	}

	fmt.Println("MP3 decoded successfully")
	// Output:
	// invalid MP3 rejected
}
