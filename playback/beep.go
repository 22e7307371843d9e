// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"time"

	"github.com/gopxl/beep/v2"

	"github.com/ik5/audiodicer/dicer"
)

// Streamer is an endless beep.Streamer over a guarded engine.
type Streamer struct {
	guard  *Guard
	format beep.Format
	frames []dicer.Frame
}

// NewStreamer streams g at sampleRate.
func NewStreamer(g *Guard, sampleRate int) *Streamer {
	return &Streamer{
		guard: g,
		format: beep.Format{
			SampleRate:  beep.SampleRate(sampleRate),
			NumChannels: 2,
			Precision:   2,
		},
	}
}

// Stream fills samples from the engine. It never drains, a stopped engine
// streams silence.
func (s *Streamer) Stream(samples [][2]float64) (int, bool) {
	if cap(s.frames) < len(samples) {
		s.frames = make([]dicer.Frame, len(samples))
	}
	frames := s.frames[:len(samples)]

	n := s.guard.ReadFrames(frames)
	for i := range n {
		samples[i][0] = float64(frames[i][0])
		samples[i][1] = float64(frames[i][1])
	}
	return n, true
}

// Err is always nil.
func (s *Streamer) Err() error { return nil }

// Format describes the stream for beep.
func (s *Streamer) Format() beep.Format { return s.format }

// BufferSize is the speaker buffer for a given latency.
func (s *Streamer) BufferSize(latency time.Duration) int {
	return s.format.SampleRate.N(latency)
}
