// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MPEG-1/2 Layer III audio through
// github.com/hajimehoshi/go-mp3.
//
// go-mp3 always produces 16-bit stereo, so every source from this package
// reports two channels, mono files included:
//
//	f, _ := os.Open("vocal.mp3")
//	src, err := mp3.Decoder{}.Decode(f)
//	if err != nil {
//	    // ErrNotMP3 wraps the go-mp3 error
//	}
//
// Input that cannot seek is buffered so go-mp3 can measure the stream; the
// source then reports its length through audio.Sized.
package mp3
