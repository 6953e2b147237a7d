// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 audio file decoding.
//
// Decoding is done by github.com/hajimehoshi/go-mp3, which always
// produces 16-bit stereo. Decoder reads the whole stream and returns an
// interleaved two channel audio.Buffer with samples in [-1.0, 1.0]:
//
//	f, _ := os.Open("song.mp3")
//	buf, err := mp3.Decoder{}.Decode(f)
//
// Mono MP3 files come out with identical left and right channels; use
// audio.Downmix or audio.Process with ConvertToMono to fold them back.
//
// MP3 writing is not supported.
package mp3
