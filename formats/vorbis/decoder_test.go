// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockOggVorbisReader simulates the oggvorbis.Reader for testing
type mockOggVorbisReader struct {
	sampleRate int
	channels   int
	samples    []float32
	offset     int
	err        error
}

func (m *mockOggVorbisReader) SampleRate() int { return m.sampleRate }
func (m *mockOggVorbisReader) Channels() int   { return m.channels }

func (m *mockOggVorbisReader) Read(buf []float32) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	if m.offset >= len(m.samples) {
		return 0, io.EOF
	}

	n := copy(buf, m.samples[m.offset:])
	m.offset += n
	return n, nil
}

func newMockSource(channels int, samples ...float32) (*source, *mockOggVorbisReader) {
	m := &mockOggVorbisReader{sampleRate: 48000, channels: channels, samples: samples}
	return &source{
		dec:        m,
		sampleRate: 48000,
		channels:   channels,
		frames:     int64(len(samples) / channels),
	}, m
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	for name, in := range map[string][]byte{
		"text":  []byte("This is not Ogg Vorbis data"),
		"empty": {},
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := Decoder{}.Decode(bytes.NewReader(in))
			assert.ErrorIs(t, err, ErrNotVorbis)
		})
	}
}

func TestSource_Metadata(t *testing.T) {
	t.Parallel()

	src, _ := newMockSource(2, make([]float32, 20)...)

	assert.Equal(t, 48000, src.SampleRate())
	assert.Equal(t, 2, src.Channels())
	assert.Equal(t, int64(10), src.Frames())
}

func TestSource_ReadSamples_Stereo(t *testing.T) {
	t.Parallel()

	src, _ := newMockSource(2, 0.1, -0.1, 0.2, -0.2, 0.3, -0.3)

	dst := make([]float32, 6)
	n, err := src.ReadSamples(dst)
	require.NoError(t, err)
	require.Equal(t, 6, n)
	assert.Equal(t, []float32{0.3, -0.3}, dst[4:6], "last frame")

	n, err = src.ReadSamples(dst)
	assert.Zero(t, n)
	assert.Equal(t, io.EOF, err)
}

func TestSource_ReadSamples_FrameAligned(t *testing.T) {
	t.Parallel()

	src, _ := newMockSource(2, 1, 2, 3, 4, 5, 6)

	// five slots hold two whole frames
	dst := make([]float32, 5)
	n, err := src.ReadSamples(dst)
	require.NoError(t, err)
	require.Equal(t, 4, n)

	_, err = src.ReadSamples(make([]float32, 1))
	assert.ErrorIs(t, err, io.ErrShortBuffer)
}

func TestSource_ReadSamples_Mono(t *testing.T) {
	t.Parallel()

	src, _ := newMockSource(1, 0.5, 0.25, -0.5)

	dst := make([]float32, 2)
	total := 0
	for {
		n, err := src.ReadSamples(dst)
		total += n
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
	}
	assert.Equal(t, 3, total)
}

func TestSource_ReadSamples_EmptyBuffer(t *testing.T) {
	t.Parallel()

	src, _ := newMockSource(2, 1, 2)
	n, err := src.ReadSamples(nil)
	assert.Zero(t, n)
	assert.NoError(t, err)
}

func TestSource_ReadSamples_Error(t *testing.T) {
	t.Parallel()

	src, m := newMockSource(2, 1, 2)
	m.err = io.ErrUnexpectedEOF

	_, err := src.ReadSamples(make([]float32, 2))
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func BenchmarkSource_ReadSamples(b *testing.B) {
	samples := make([]float32, 48000*2)
	dst := make([]float32, 4096)

	b.ReportAllocs()
	for b.Loop() {
		src, _ := newMockSource(2, samples...)
		for {
			if _, err := src.ReadSamples(dst); err != nil {
				break
			}
		}
	}
}
