// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"math"

	"github.com/tphakala/simd/f32"
)

// Peak returns the highest signed sample value across all channels.
// It returns -Inf for an empty buffer.
func Peak(b *Buffer) float32 {
	peak := float32(math.Inf(-1))
	for _, v := range b.Samples {
		if v > peak {
			peak = v
		}
	}

	return peak
}

// Normalize scales b in place so that its highest sample equals target.
//
// The peak is the signed maximum, not the absolute one, so only positive
// headroom is corrected. A buffer whose peak is zero or negative is left
// untouched and ErrNonPositivePeak is returned.
func Normalize(b *Buffer, target float32) error {
	peak := Peak(b)
	if !(peak > 0) {
		return fmt.Errorf("%w: peak = %v", ErrNonPositivePeak, peak)
	}

	factor := target / peak
	if factor == 1 {
		return nil
	}

	f32.Scale(b.Samples, b.Samples, factor)

	return nil
}
