// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF (Audio Interchange File Format) decoding.
//
// This package uses github.com/go-audio/aiff. Only 16-bit PCM is
// accepted, with any channel count and sample rate. Decoder reads the
// whole file and returns an interleaved audio.Buffer:
//
//	f, _ := os.Open("side_a.aif")
//	buf, err := aiff.Decoder{}.Decode(f)
//
// Readers that cannot seek are buffered in memory first.
package aiff
