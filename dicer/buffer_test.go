// SPDX-License-Identifier: EPL-2.0

package dicer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ik5/audiodicer/audio"
)

func TestNewBuffer_Mono(t *testing.T) {
	t.Parallel()

	b, err := NewBuffer([]float32{0.1, -0.2, 0.3}, Mono, 44100)
	require.NoError(t, err)

	assert.Equal(t, []float32{0.1, -0.2, 0.3}, b.Left)
	assert.Equal(t, []float32{0.1, -0.2, 0.3}, b.Right)
	assert.Equal(t, 3, b.Frames())
}

func TestNewBuffer_Stereo(t *testing.T) {
	t.Parallel()

	b, err := NewBuffer([]float32{0.1, 0.2, 0.3, 0.4}, Stereo, 48000)
	require.NoError(t, err)

	assert.Equal(t, []float32{0.1, 0.3}, b.Left)
	assert.Equal(t, []float32{0.2, 0.4}, b.Right)
	assert.Equal(t, 48000, b.SampleRate)
}

func TestNewBuffer_DefaultRate(t *testing.T) {
	t.Parallel()

	b, err := NewBuffer([]float32{0}, Mono, 0)
	require.NoError(t, err)
	assert.Equal(t, DefaultSampleRate, b.SampleRate)
}

func TestNewBuffer_Rejects(t *testing.T) {
	t.Parallel()

	_, err := NewBuffer(make([]float32, 6), ChannelLayout(3), 44100)
	require.ErrorIs(t, err, ErrUnsupportedChannels)

	_, err = NewBuffer(make([]float32, 3), Stereo, 44100)
	require.ErrorIs(t, err, ErrOddStereoLength)

	_, err = NewPlanarBuffer(make([]float32, 3), make([]float32, 2), 44100)
	require.ErrorIs(t, err, audio.ErrPlaneMismatch)
}

func TestBuffer_SampleAt(t *testing.T) {
	t.Parallel()

	b, err := NewPlanarBuffer(
		[]float32{0.1, 0.5, -0.3, 0.9},
		[]float32{-0.1, -0.5, 0.3, -0.9},
		44100,
	)
	require.NoError(t, err)

	t.Run("grid points are exact", func(t *testing.T) {
		for i := range b.Frames() {
			got := b.SampleAt(float64(i))
			assert.Equal(t, Frame{b.Left[i], b.Right[i]}, got, "index %d", i)
		}
	})

	t.Run("halfway interpolates", func(t *testing.T) {
		got := b.SampleAt(0.5)
		assert.InDelta(t, 0.3, got[0], 1e-6)
		assert.InDelta(t, -0.3, got[1], 1e-6)
	})

	t.Run("quarter interpolates", func(t *testing.T) {
		got := b.SampleAt(1.25)
		assert.InDelta(t, 0.5*0.75+(-0.3)*0.25, got[0], 1e-6)
	})

	t.Run("out of range clamps", func(t *testing.T) {
		assert.Equal(t, Frame{0.1, -0.1}, b.SampleAt(-3))
		assert.Equal(t, Frame{0.9, -0.9}, b.SampleAt(3.5))
		assert.Equal(t, Frame{0.9, -0.9}, b.SampleAt(100))
	})
}

func TestBuffer_SampleAtEmpty(t *testing.T) {
	t.Parallel()

	b := &Buffer{}
	assert.Equal(t, Frame{}, b.SampleAt(0))
	assert.Equal(t, Frame{}, cubicSampler{b}.SampleAt(2))
}

func TestCubicSampler(t *testing.T) {
	t.Parallel()

	left := []float32{0, 0.25, 0.5, 0.75, 1}
	b, err := NewPlanarBuffer(left, left, 44100)
	require.NoError(t, err)
	s := b.sampler(Cubic)

	for i := range left {
		assert.Equal(t, left[i], s.SampleAt(float64(i))[0], "grid point %d", i)
	}

	// a straight line stays straight away from the edges
	assert.InDelta(t, 0.375, s.SampleAt(1.5)[0], 1e-6)
	assert.InDelta(t, 0.625, s.SampleAt(2.5)[1], 1e-6)
}

func TestParseInterpolation(t *testing.T) {
	t.Parallel()

	m, err := ParseInterpolation("cubic")
	require.NoError(t, err)
	assert.Equal(t, Cubic, m)
	assert.Equal(t, "cubic", m.String())

	m, err = ParseInterpolation("")
	require.NoError(t, err)
	assert.Equal(t, Linear, m)

	_, err = ParseInterpolation("sinc")
	assert.Error(t, err)
}
