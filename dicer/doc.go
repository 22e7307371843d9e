// SPDX-License-Identifier: EPL-2.0

// Package dicer turns a decoded stereo buffer into an endless stream of
// randomly chosen, fixed-length slices, crossfaded into one another.
//
// # Playback Model
//
// Two streams, A and B, take turns. While one plays alone the other is idle;
// when the play phase ends a new start is picked for the idle stream and the
// two are crossfaded over Overlap frames:
//
//	PlayA (slice - 2*overlap) -> FadeAToB (overlap) -> PlayB -> FadeBToA -> PlayA ...
//
// New starts are drawn from a seedable random source and kept at least a
// comb filter guard (30 ms by default) away from the playing position, so the
// two streams never mix near-identical, slightly delayed copies of the audio.
//
// # Usage
//
//	e := dicer.New(dicer.WithSeed(7), dicer.WithCrossFadeMode(dicer.CrossFadeSine))
//	if err := e.LoadPCM(samples, dicer.Stereo, 44100); err != nil {
//	    return err
//	}
//	if err := e.SetSliceSize(22050); err != nil {
//	    return err
//	}
//	if err := e.Start(); err != nil {
//	    return err
//	}
//
//	buf := make([]byte, 4096) // 1024 frames of s16le stereo
//	n, err := e.Read(buf)
//
// Engine implements io.Reader, so it can be handed straight to an audio
// device library or copied into a WAV writer.
//
// # Live Changes
//
// Volume, pan and speed ramp linearly (1024, 1024 and 4096 frames) so changes
// do not click. Slice size, overlap and crossfade mode are staged while
// playing and take effect when the next crossfade begins, the only point
// where a single stream is audible. Invalid values are rejected with an error
// and leave the engine as it was.
//
// # Concurrency
//
// The engine does no locking and never blocks. When a control goroutine
// adjusts settings while another goroutine reads audio, the caller must
// serialize access; playback.Guard does this with a mutex.
package dicer
