// SPDX-License-Identifier: EPL-2.0

package vorbis

import "errors"

// ErrNotVorbis is returned for input that is not an Ogg Vorbis stream.
var ErrNotVorbis = errors.New("not an Ogg Vorbis stream")
