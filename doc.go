// SPDX-License-Identifier: EPL-2.0

// Package audiodicer re-sequences recorded audio in real time. A loaded
// clip is played as an endless stream of randomly placed slices, joined by
// short crossfades, with smoothed speed, volume and pan control.
//
// The engine lives in the dicer subpackage. This package wires it to the
// file decoders and to WAV output:
//
//	e, err := audiodicer.Open("drums.wav", 0, dicer.WithSeed(7))
//	if err != nil {
//	    // unknown extension, undecodable file, ...
//	}
//	if err := e.Start(); err != nil {
//	    // slice too long for the clip
//	}
//
//	out, _ := os.Create("diced.wav")
//	defer out.Close()
//	err = audiodicer.Render(e, out, 30*int64(e.SampleRate()))
//
// For live output hand the engine to playback.NewGuard and one of the
// players in the playback package.
//
// # Supported Formats
//
//   - WAV, integer PCM at 8, 16, 24 or 32 bits (formats/wav)
//   - AIFF, integer PCM (formats/aiff)
//   - MP3 (formats/mp3)
//   - Ogg Vorbis (formats/vorbis)
//
// Files with more than two channels are rejected; mono is played on both
// sides. A rate passed to Open or ReadFile converts the clip once at load
// time, the engine itself never resamples between rates.
package audiodicer
