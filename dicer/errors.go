// SPDX-License-Identifier: EPL-2.0

package dicer

import (
	"errors"
	"io"

	"github.com/ik5/audiodicer/audio"
)

var (
	ErrNotRunning        = errors.New("engine is not running, call Start first")
	ErrRunning           = errors.New("engine is running")
	ErrNoAudio           = errors.New("no audio loaded")
	ErrSliceSizeRejected = errors.New("slice size rejected")
	ErrOverlapRejected   = errors.New("overlap rejected")
	ErrSpeedRejected     = errors.New("speed rejected")
	ErrPaddingRejected   = errors.New("comb filter padding rejected")
	ErrUnknownCrossFade  = errors.New("unknown crossfade mode")

	// ErrUnsupportedChannels is returned when loading data that is neither mono nor stereo.
	ErrUnsupportedChannels = audio.ErrUnsupportedChannels
	// ErrOddStereoLength is returned for interleaved stereo data with a dangling sample.
	ErrOddStereoLength = audio.ErrOddSampleCount
	// ErrShortBuffer is returned by Read for a buffer smaller than one frame.
	ErrShortBuffer = io.ErrShortBuffer
)
