// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"errors"

	"github.com/ik5/audiodicer/audio"
)

var (
	// ErrNotAiffFile indicates the file is not a valid AIFF file
	ErrNotAiffFile = errors.New("not an AIFF file")

	// ErrUnsupportedAiffLayout indicates chunks the decoder could not use
	ErrUnsupportedAiffLayout = errors.New("unsupported AIFF layout")

	ErrUnsupportedBitDepth = audio.ErrUnsupportedBitDepth
)
