// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"testing"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ik5/audiodicer/dicer"
)

var _ beep.Streamer = (*Streamer)(nil)

func TestStreamer_Stream(t *testing.T) {
	t.Parallel()

	g := NewGuard(newEngine(t, 0.5))
	require.NoError(t, g.Do(func(e *dicer.Engine) error { return e.Start() }))

	s := NewStreamer(g, 44100)
	samples := make([][2]float64, 128)

	n, ok := s.Stream(samples)
	require.Equal(t, 128, n)
	require.True(t, ok)
	for i, smp := range samples {
		require.Equal(t, [2]float64{0.5, 0.5}, smp, "sample %d", i)
	}
	assert.NoError(t, s.Err())
}

func TestStreamer_StoppedEngineKeepsStreaming(t *testing.T) {
	t.Parallel()

	s := NewStreamer(NewGuard(newEngine(t, 0.5)), 44100)
	samples := [][2]float64{{1, 1}, {1, 1}}

	n, ok := s.Stream(samples)
	require.Equal(t, 2, n)
	require.True(t, ok)
	assert.Equal(t, [2]float64{}, samples[0], "want silence")
}

func TestStreamer_Format(t *testing.T) {
	t.Parallel()

	s := NewStreamer(NewGuard(dicer.New()), 48000)

	f := s.Format()
	assert.Equal(t, beep.SampleRate(48000), f.SampleRate)
	assert.Equal(t, 2, f.NumChannels)
	assert.Equal(t, 2, f.Precision)
	assert.Equal(t, 4800, s.BufferSize(100*time.Millisecond))
}
