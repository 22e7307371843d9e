// SPDX-License-Identifier: EPL-2.0

// Package audio holds the contracts between container decoders and the
// dicing engine, plus the planar helpers used while loading.
//
// # Source Interface
//
// Every decoder produces a Source of interleaved float32 samples in [-1, 1]:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// Sources that know their length up front may also implement Sized, which
// lets Collect reserve storage in one allocation.
//
// # Loading Helpers
//
// Collect drains a Source into one interleaved slice. Deinterleave turns that
// slice into the left/right planes the engine stores; mono input is copied
// into both planes and anything other than one or two channels is rejected
// with ErrUnsupportedChannels.
//
//	samples, err := audio.Collect(src)
//	left, right, err := audio.Deinterleave(samples, src.Channels())
//
// ResamplePlanar converts a plane to another sample rate with Catmull-Rom
// interpolation. It runs once at load time; the engine never converts rates
// while playing.
//
// # Format Registry
//
// The registry maps file extensions to decoders:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, err := registry.ForPath("loops/rain.wav")
package audio
