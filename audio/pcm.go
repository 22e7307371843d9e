// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"bytes"
	"fmt"
	"io"
)

// IntScale is the full-scale magnitude of a signed integer sample of the
// given bit depth, or 0 for depths other than 8, 16, 24 and 32.
func IntScale(bitDepth int) float32 {
	switch bitDepth {
	case 8, 16, 24, 32:
		return float32(uint64(1) << (bitDepth - 1))
	}
	return 0
}

// IntsToFloat32 normalizes signed integer samples of bitDepth into dst and
// returns the number converted, min(len(dst), len(src)).
func IntsToFloat32(dst []float32, src []int, bitDepth int) (int, error) {
	scale := IntScale(bitDepth)
	if scale == 0 {
		return 0, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}

	n := min(len(dst), len(src))
	for i := range n {
		dst[i] = float32(src[i]) / scale
	}
	return n, nil
}

// Seekable returns r itself when it can seek, otherwise its content read
// into memory. The container decoders need to move between chunks.
func Seekable(r io.Reader) (io.ReadSeeker, error) {
	if rs, ok := r.(io.ReadSeeker); ok {
		return rs, nil
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("buffering input: %w", err)
	}
	return bytes.NewReader(data), nil
}
