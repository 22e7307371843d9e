// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
)

// Deinterleave splits interleaved samples into left and right planes.
// Mono input is copied into both planes; any channel count other than
// 1 or 2 is rejected with ErrUnsupportedChannels.
func Deinterleave(samples []float32, channels int) (left, right []float32, err error) {
	switch channels {
	case 1:
		left = make([]float32, len(samples))
		right = make([]float32, len(samples))
		copy(left, samples)
		copy(right, samples)
		return left, right, nil

	case 2:
		if len(samples)%2 != 0 {
			return nil, nil, ErrOddSampleCount
		}
		frames := len(samples) >> 1
		left = make([]float32, frames)
		right = make([]float32, frames)
		for f := range frames {
			idx := f << 1
			left[f] = samples[idx]
			right[f] = samples[idx+1]
		}
		return left, right, nil
	}

	return nil, nil, fmt.Errorf("%w: %d", ErrUnsupportedChannels, channels)
}

// Collect drains src into a single interleaved slice.
// A source implementing Sized gets its storage reserved up front.
func Collect(src Source) ([]float32, error) {
	channels := src.Channels()
	if channels < 1 {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedChannels, channels)
	}

	var out []float32
	if sized, ok := src.(Sized); ok {
		if frames := sized.Frames(); frames > 0 {
			out = make([]float32, 0, int(frames)*channels)
		}
	}

	chunk := src.BufSize()
	if chunk <= 0 {
		chunk = 4096
	}
	// keep reads frame aligned
	chunk -= chunk % channels
	if chunk == 0 {
		chunk = channels
	}
	buf := make([]float32, chunk)

	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			out = append(out, buf[:n]...)
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("collecting samples: %w", err)
		}
		if n == 0 {
			break
		}
	}

	return out, nil
}
