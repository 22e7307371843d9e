// SPDX-License-Identifier: EPL-2.0

// Package playback connects a dicer.Engine to audio outputs.
//
// The engine itself is not safe for concurrent use, while audio callbacks
// run on their own goroutine. Guard serializes the two: the output pulls
// frames through it and user controls change settings through Do.
//
//	g := playback.NewGuard(engine)
//	p, err := playback.NewOtoPlayer(44100, g)
//	...
//	p.Start()
//	g.Do(func(e *dicer.Engine) error { return e.SetSpeed(1.5) })
//
// OtoPlayer drives an oto/v3 context directly. Streamer adapts the same
// guard to gopxl/beep so the engine can be mixed with other beep streamers
// or played through beep's speaker with SpeakerPlayer. Builds tagged
// headless replace both device players with silent stand-ins.
package playback
