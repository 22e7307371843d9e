// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF files through github.com/go-audio/aiff.
//
// Uncompressed integer PCM at 8, 16, 24 or 32 bits is supported, in any
// channel count and sample rate. Samples come out as float32 in [-1, 1):
//
//	f, _ := os.Open("break.aif")
//	src, err := aiff.Decoder{}.Decode(f)
//	if errors.Is(err, aiff.ErrNotAiffFile) {
//	    // not AIFF at all
//	}
//
// AIFF is big-endian and stores its sample rate as an 80-bit float; the
// go-audio decoder hides both. AIFF-C compressed files are not supported.
//
// The source reports its length through audio.Sized, taken from the COMM
// chunk, so the whole file can be loaded into the dicer with a single
// allocation.
package aiff
