// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidBuffer     = errors.New("invalid audio buffer")
	ErrUnsupportedLayout = errors.New("unsupported sample layout")
	ErrNotPlanar         = errors.New("operation requires a planar buffer")
	ErrChannelOutOfRange = errors.New("channel index out of range")
	ErrInvalidConfig     = errors.New("invalid pipeline configuration")

	// ErrNonPositivePeak is returned by Normalize when the highest sample is
	// zero or negative, where the scale factor would be infinite or flip
	// the signal.
	ErrNonPositivePeak = errors.New("peak sample is not positive")
)
