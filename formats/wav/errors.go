// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"

	"github.com/ik5/audiodicer/audio"
)

var (
	ErrNotWavFile          = errors.New("not a WAV file")
	ErrUnsupportedEncoding = errors.New("WAV data is not integer PCM")
	ErrMissingData         = errors.New("WAV file has no usable data chunk")

	ErrUnsupportedBitDepth = audio.ErrUnsupportedBitDepth
)
