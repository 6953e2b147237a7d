// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV audio file decoding and encoding.
//
// Decoding uses github.com/go-audio/wav and accepts integer PCM at 16, 24
// or 32 bits per sample with any channel count and sample rate. The whole
// file is read into an interleaved audio.Buffer with samples scaled to
// [-1.0, 1.0]:
//
//	f, _ := os.Open("record.wav")
//	buf, err := wav.Decoder{}.Decode(f)
//
// Readers that cannot seek are buffered in memory first.
//
// # Writing WAV Files
//
// Encoder writes any valid audio.Buffer as 16-bit PCM, interleaving planar
// buffers on a copy and clipping samples outside [-1.0, 1.0]:
//
//	out, _ := os.Create("record_Disc.wav")
//	err := wav.Encoder{}.Encode(out, buf)
//
// WriteWAV16 is the lower level writer used by Encoder. It takes
// interleaved int16 samples:
//
//	err := wav.WriteWAV16(out, 11025, 1, []int16{100, -100, 200})
//
// # Errors
//
//   - ErrNotWavFile: the input is not a RIFF/WAVE stream
//   - ErrOnlyPCMSupported: the file uses a compressed or float encoding
//   - ErrUnsupportedBitDepth: the PCM bit depth is not 16, 24 or 32
//   - ErrUnsupportedWavLayout: the format chunk could not be used
//   - ErrNoAudioData: the data chunk is empty
//   - ErrInvalidChannelCount: WriteWAV16 got a sample count that does not
//     divide into whole frames
package wav
