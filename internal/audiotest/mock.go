// SPDX-License-Identifier: EPL-2.0

// Package audiotest provides deterministic audio sources for tests.
// The sources satisfy audio.Source without importing it to avoid cycles.
package audiotest

import (
	"io"
	"math"
)

// MockSource generates frames from a waveform function.
type MockSource struct {
	sampleRate  int
	channels    int
	totalFrames int
	generated   int
	waveform    func(frame int, channel int) float32

	// err replaces io.EOF once all frames have been delivered
	err error
	// sized controls whether Frames reports the length
	sized bool
}

// NewMockSource creates a source of totalFrames frames per channel.
// waveform returns the sample for a given frame index and channel.
func NewMockSource(sampleRate, channels, totalFrames int, waveform func(frame int, channel int) float32) *MockSource {
	return &MockSource{
		sampleRate:  sampleRate,
		channels:    channels,
		totalFrames: totalFrames,
		waveform:    waveform,
		sized:       true,
	}
}

// NewSilentSource creates a source that yields zeros.
func NewSilentSource(sampleRate, channels, totalFrames int) *MockSource {
	return NewMockSource(sampleRate, channels, totalFrames, func(int, int) float32 {
		return 0
	})
}

// NewSineSource creates a source carrying the same sine wave on every channel.
func NewSineSource(sampleRate, channels, totalFrames int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, totalFrames, func(frame int, _ int) float32 {
		t := float64(frame) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

// NewConstantSource creates a source with a constant value on every channel.
func NewConstantSource(sampleRate, channels, totalFrames int, value float32) *MockSource {
	return NewMockSource(sampleRate, channels, totalFrames, func(int, int) float32 {
		return value
	})
}

// NewRampSource creates a source whose channel 0 rises linearly from -1
// towards 1 over totalFrames (see RampValue). Odd channels carry the
// negated ramp so left and right can be told apart.
func NewRampSource(sampleRate, channels, totalFrames int) *MockSource {
	return NewMockSource(sampleRate, channels, totalFrames, func(frame int, channel int) float32 {
		v := RampValue(frame, totalFrames)
		if channel%2 == 1 {
			return -v
		}
		return v
	})
}

// RampValue is the channel-0 sample NewRampSource produces at frame.
func RampValue(frame, totalFrames int) float32 {
	return float32(2*frame-totalFrames) / float32(totalFrames)
}

// NewFailingSource delivers totalFrames of silence and then fails with err
// instead of io.EOF.
func NewFailingSource(sampleRate, channels, totalFrames int, err error) *MockSource {
	m := NewSilentSource(sampleRate, channels, totalFrames)
	m.err = err
	return m
}

// Unsized hides the frame count so consumers cannot pre-allocate.
func (m *MockSource) Unsized() *MockSource {
	m.sized = false
	return m
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) BufSize() int    { return 4096 }
func (m *MockSource) Close() error    { return nil }

// Frames reports the total frame count, or -1 for an unsized source.
func (m *MockSource) Frames() int64 {
	if !m.sized {
		return -1
	}
	return int64(m.totalFrames)
}

// Reset rewinds the source to its first frame.
func (m *MockSource) Reset() {
	m.generated = 0
}

func (m *MockSource) end() error {
	if m.err != nil {
		return m.err
	}
	return io.EOF
}

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.generated >= m.totalFrames {
		return 0, m.end()
	}

	framesToWrite := min(len(dst)/m.channels, m.totalFrames-m.generated)

	for frame := range framesToWrite {
		idx := m.generated + frame
		for ch := range m.channels {
			dst[frame*m.channels+ch] = m.waveform(idx, ch)
		}
	}

	m.generated += framesToWrite
	written := framesToWrite * m.channels

	if m.generated >= m.totalFrames {
		return written, m.end()
	}

	return written, nil
}
