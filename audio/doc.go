// SPDX-License-Identifier: EPL-2.0

// Package audio provides the in-memory audio transformation pipeline.
//
// This package contains the core building blocks:
//   - Buffer, a fully materialized multi-channel sample buffer
//   - Downmix for channel mixing
//   - HighPass, a cascaded Butterworth high-pass filter
//   - Resample for decimating sample rate conversion
//   - Normalize for peak normalization
//   - Process, which threads a Buffer through the stages above
//   - Format registry for decoder and encoder registration
//
// # Buffers and Layouts
//
// A Buffer holds every sample of every channel in a single slice. The
// Layout tag tells how those samples are ordered:
//
//	Interleaved: [c0s0, c1s0, c0s1, c1s1, ...]
//	Planar:      [c0s0, c0s1, ..., c1s0, c1s1, ...]
//
// Decoders produce Interleaved buffers. Per-channel access through
// Buffer.Channel is only available on Planar buffers:
//
//	buf.Deinterleave()
//	left, err := buf.Channel(0)
//
// # Processing
//
// Process copies its input and runs the configured stages in a fixed
// order: deinterleave, downmix, high-pass, resample, normalize and finally
// re-interleave when the target layout asks for it.
//
//	cfg := audio.DefaultConfig()
//	cfg.TargetLayout = audio.Interleaved
//	out, err := audio.Process(in, cfg)
//
// A zero value in a Config field skips the matching stage, so the zero
// Config only copies the buffer.
//
// # Format Registry
//
// The registry maps a format key to a decoder and, optionally, an encoder:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	registry.RegisterEncoder("wav", wav.Encoder{})
//	decoder, _ := registry.Get("wav")
//
// # Sample Format
//
// Audio samples are represented as float32 in the range [-1.0, 1.0]:
//   - 0.0 represents silence
//   - 1.0 represents maximum positive amplitude
//   - -1.0 represents maximum negative amplitude
//
// Intermediate stages never clip; clamping happens only when samples are
// converted to integer PCM on the way out.
//
// # Error Handling
//
// Every failure is returned to the caller as an error wrapping one of the
// package sentinel errors, so it can be tested with errors.Is:
//
//	out, err := audio.Process(in, cfg)
//	if errors.Is(err, audio.ErrInvalidBuffer) {
//	    // the decoded input was empty or malformed
//	}
package audio
