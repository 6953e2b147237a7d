// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/tphakala/simd/f32"
)

// Layout describes how the samples of a multi-channel Buffer are ordered.
type Layout uint8

const (
	// LayoutUnspecified is the zero value. A Buffer with this layout is
	// invalid; in a Config it means "keep the input layout".
	LayoutUnspecified Layout = iota
	// Interleaved keeps all channel values of one frame adjacent.
	Interleaved
	// Planar stores every frame of channel 0, then channel 1, and so on.
	Planar
)

func (l Layout) Valid() bool {
	return l == Interleaved || l == Planar
}

func (l Layout) String() string {
	switch l {
	case Interleaved:
		return "interleaved"
	case Planar:
		return "planar"
	case LayoutUnspecified:
		return "unspecified"
	default:
		return fmt.Sprintf("layout(%d)", uint8(l))
	}
}

// ParseLayout maps "interleaved" or "planar" to a Layout. An empty string
// yields LayoutUnspecified.
func ParseLayout(s string) (Layout, error) {
	switch s {
	case "":
		return LayoutUnspecified, nil
	case "interleaved":
		return Interleaved, nil
	case "planar":
		return Planar, nil
	default:
		return LayoutUnspecified, fmt.Errorf("%w: %q", ErrUnsupportedLayout, s)
	}
}

// Buffer is a fully materialized block of audio.
// len(Samples) must be a multiple of Channels.
type Buffer struct {
	Channels   int
	SampleRate int
	Layout     Layout
	Samples    []float32
}

// NewBuffer wraps samples without copying them.
func NewBuffer(samples []float32, channels, sampleRate int, layout Layout) *Buffer {
	return &Buffer{
		Channels:   channels,
		SampleRate: sampleRate,
		Layout:     layout,
		Samples:    samples,
	}
}

func (b *Buffer) SamplesPerChannel() int {
	if b.Channels <= 0 {
		return 0
	}
	return len(b.Samples) / b.Channels
}

// Seconds returns the length of the buffer in seconds.
func (b *Buffer) Seconds() float64 {
	if b.SampleRate <= 0 {
		return 0
	}
	return float64(b.SamplesPerChannel()) / float64(b.SampleRate)
}

func (b *Buffer) Duration() time.Duration {
	if b.SampleRate <= 0 {
		return 0
	}
	return time.Duration(b.SamplesPerChannel()) * time.Second / time.Duration(b.SampleRate)
}

// Validate reports whether the buffer can enter the pipeline.
func (b *Buffer) Validate() error {
	switch {
	case b == nil:
		return fmt.Errorf("%w: nil buffer", ErrInvalidBuffer)
	case b.Channels <= 0:
		return fmt.Errorf("%w: channels = %d", ErrInvalidBuffer, b.Channels)
	case b.SampleRate <= 0:
		return fmt.Errorf("%w: sample rate = %d", ErrInvalidBuffer, b.SampleRate)
	case len(b.Samples) == 0:
		return fmt.Errorf("%w: no samples", ErrInvalidBuffer)
	case len(b.Samples)%b.Channels != 0:
		return fmt.Errorf("%w: %d samples for %d channels", ErrInvalidBuffer, len(b.Samples), b.Channels)
	case !b.Layout.Valid():
		return fmt.Errorf("%w: %w: %s", ErrInvalidBuffer, ErrUnsupportedLayout, b.Layout)
	}

	return nil
}

// Channel returns the contiguous samples of one channel of a Planar buffer.
// The returned slice aliases b.Samples.
func (b *Buffer) Channel(ch int) ([]float32, error) {
	if b.Layout != Planar {
		return nil, fmt.Errorf("%w: buffer is %s", ErrNotPlanar, b.Layout)
	}
	if ch < 0 || ch >= b.Channels {
		return nil, fmt.Errorf("%w: %d of %d", ErrChannelOutOfRange, ch, b.Channels)
	}

	n := b.SamplesPerChannel()
	return b.Samples[ch*n : (ch+1)*n : (ch+1)*n], nil
}

// Copy returns a buffer with its own sample storage.
func (b *Buffer) Copy() *Buffer {
	out := *b
	out.Samples = make([]float32, len(b.Samples))
	copy(out.Samples, b.Samples)

	return &out
}

// scratchPool holds snapshot slices used while permuting samples in place.
var scratchPool = sync.Pool{
	New: func() any {
		s := make([]float32, 0, 8192)
		return &s
	},
}

// snapshot copies src into a pooled slice. The caller must hand the
// pointer back through release.
func snapshot(src []float32) *[]float32 {
	p, _ := scratchPool.Get().(*[]float32)
	if p == nil || cap(*p) < len(src) {
		s := make([]float32, len(src))
		p = &s
	}
	*p = (*p)[:len(src)]
	copy(*p, src)

	return p
}

func release(p *[]float32) {
	*p = (*p)[:0]
	scratchPool.Put(p)
}

// Interleave reorders a Planar buffer into Interleaved order in place.
// It is a no-op for buffers that are already interleaved; for mono
// buffers only the layout tag changes.
func (b *Buffer) Interleave() {
	if b.Layout == Interleaved {
		return
	}

	if b.Channels > 1 {
		src := snapshot(b.Samples)
		defer release(src)

		interleave(b.Samples, *src, b.Channels)
	}

	b.Layout = Interleaved
}

// Deinterleave reorders an Interleaved buffer into Planar order in place.
// It is a no-op for buffers that are already planar; for mono buffers
// only the layout tag changes.
func (b *Buffer) Deinterleave() {
	if b.Layout == Planar {
		return
	}

	if b.Channels > 1 {
		src := snapshot(b.Samples)
		defer release(src)

		deinterleave(b.Samples, *src, b.Channels)
	}

	b.Layout = Planar
}

// interleave writes planar src into dst in interleaved order.
func interleave(dst, src []float32, channels int) {
	frames := len(src) / channels

	if channels == 2 {
		f32.Interleave2(dst, src[:frames], src[frames:])
		return
	}

	for i := range dst {
		frame, ch := i/channels, i%channels
		dst[i] = src[frame+ch*frames]
	}
}

// deinterleave writes interleaved src into dst in planar order.
func deinterleave(dst, src []float32, channels int) {
	frames := len(src) / channels

	for i := range dst {
		ch, frame := i/frames, i%frames
		dst[i] = src[ch+frame*channels]
	}
}
