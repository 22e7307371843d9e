// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedChannels = errors.New("unsupported channel count")
	ErrOddSampleCount      = errors.New("interleaved stereo data has an odd sample count")
	ErrPlaneMismatch       = errors.New("left and right planes differ in length")
	ErrInvalidRate         = errors.New("sample rate must be positive")
	ErrUnknownFormat       = errors.New("unknown audio format")
	ErrUnsupportedBitDepth = errors.New("unsupported bit depth")
)

// FormatError reports a format key that no decoder is registered for.
type FormatError struct {
	Format string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("no decoder registered for %q", e.Format)
}

func (e *FormatError) Unwrap() error { return ErrUnknownFormat }
