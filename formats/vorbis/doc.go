// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis through github.com/jfreymuth/oggvorbis.
//
//	f, _ := os.Open("pad.ogg")
//	src, err := vorbis.Decoder{}.Decode(f)
//
// Vorbis decodes to float32 natively, so samples pass through unscaled.
// Reads are trimmed to whole frames. The source implements audio.Sized
// when the stream length can be found from the last Ogg page.
package vorbis
