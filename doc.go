// SPDX-License-Identifier: EPL-2.0

// Package gramophone turns ordinary recordings into the narrow, quiet
// kind of track an old gramophone would play back.
//
// The heavy lifting lives in the audio subpackage: a Buffer of float32
// samples flows through downmixing, a Butterworth high-pass cascade,
// nearest-sample resampling and peak normalization, in that order. This
// package wires the format decoders and encoders around that pipeline.
//
// # Supported Formats
//
// Input:
//   - WAV (integer PCM 16, 24 and 32 bit) via formats/wav
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//   - AIFF (PCM 16-bit) via formats/aiff
//
// Output is WAV, 16-bit PCM.
//
// # Quick Start
//
//	in, _ := os.Open("song.ogg")
//	out, _ := os.Create("song_Disc.wav")
//
//	err := gramophone.Transcode(gramophone.NewRegistry(),
//	    in, "ogg", out, "wav", audio.DefaultConfig())
//
// ProcessToPCM16 runs the same pipeline on an already decoded buffer and
// hands back interleaved 16-bit samples:
//
//	pcm, rate, err := gramophone.ProcessToPCM16(buf, audio.DefaultConfig())
//
// # Custom Pipelines
//
// Each stage is also available on its own:
//
//	buf.Deinterleave()
//	mono, _ := audio.Downmix(buf)
//	_ = audio.HighPass(mono, audio.HighPassConfig{Sections: 8, CutoffRatio: 0.01})
//	low, _ := audio.Resample(mono, 8000)
//	_ = audio.Normalize(low, 0.9)
package gramophone
