// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"strings"
	"sync"
)

// Decoder constructs an Interleaved Buffer from an encoded container.
type Decoder interface {
	Decode(r io.Reader) (*Buffer, error)
}

// Encoder writes a Buffer into an encoded container.
type Encoder interface {
	Encode(w io.Writer, b *Buffer) error
}

// Registry for decoders and encoders by format key (e.g., "wav", "mp3", "ogg").
// Keys are case-insensitive.
type Registry struct {
	decoders map[string]Decoder
	encoders map[string]Encoder

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		decoders: make(map[string]Decoder),
		encoders: make(map[string]Encoder),
		mtx:      &sync.Mutex{},
	}
}

func (r *Registry) Register(format string, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.decoders[strings.ToLower(format)] = d
}

func (r *Registry) RegisterEncoder(format string, e Encoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.encoders[strings.ToLower(format)] = e
}

func (r *Registry) Get(format string) (Decoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	d, ok := r.decoders[strings.ToLower(format)]
	return d, ok
}

func (r *Registry) GetEncoder(format string) (Encoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	e, ok := r.encoders[strings.ToLower(format)]
	return e, ok
}
