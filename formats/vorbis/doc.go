// SPDX-License-Identifier: EPL-2.0

// Package vorbis provides Ogg Vorbis audio file decoding.
//
// This package uses github.com/jfreymuth/oggvorbis. Decoder reads the
// whole stream and returns an interleaved audio.Buffer with the file's
// own channel count and sample rate:
//
//	f, _ := os.Open("disc.ogg")
//	buf, err := vorbis.Decoder{}.Decode(f)
//
// For stereo files samples are ordered [L0, R0, L1, R1, ...]. Vorbis
// encoding is not supported; processed audio is written as WAV.
package vorbis
