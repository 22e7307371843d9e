// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockMP3Reader simulates the gomp3.Decoder for testing
type mockMP3Reader struct {
	sampleRate int
	samples    []int16
	offset     int
	chunk      int // bytes per Read, 0 for as many as fit
	err        error
}

func (m *mockMP3Reader) SampleRate() int { return m.sampleRate }

func (m *mockMP3Reader) Read(buf []byte) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	if m.offset >= len(m.samples) {
		return 0, io.EOF
	}

	limit := len(buf)
	if m.chunk > 0 {
		limit = min(limit, m.chunk)
	}
	count := min(limit/2, len(m.samples)-m.offset)

	for i := range count {
		binary.LittleEndian.PutUint16(buf[i*2:], uint16(m.samples[m.offset+i]))
	}
	m.offset += count

	if m.offset >= len(m.samples) {
		return count * 2, io.EOF
	}
	return count * 2, nil
}

func newMockSource(samples ...int16) (*source, *mockMP3Reader) {
	m := &mockMP3Reader{sampleRate: 44100, samples: samples}
	return &source{
		dec:        m,
		sampleRate: 44100,
		frames:     int64(len(samples) / 2),
		buf:        make([]byte, 8192),
	}, m
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	for name, in := range map[string][]byte{
		"text":  []byte("This is not MP3 data"),
		"empty": {},
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := Decoder{}.Decode(bytes.NewReader(in))
			assert.ErrorIs(t, err, ErrNotMP3)
		})
	}
}

func TestSource_Metadata(t *testing.T) {
	t.Parallel()

	src, _ := newMockSource(make([]int16, 100)...)

	assert.Equal(t, 44100, src.SampleRate())
	assert.Equal(t, 2, src.Channels())
	assert.Equal(t, int64(50), src.Frames())
	assert.Equal(t, 4096, src.BufSize())
}

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	src, _ := newMockSource(0, 16384, 32767, -16384, -32768, 8192, -8192, 0)

	dst := make([]float32, 8)
	n, err := src.ReadSamples(dst)
	if err != io.EOF {
		require.NoError(t, err)
	}
	require.Equal(t, 8, n)
	assert.Equal(t, []float32{0, 0.5, 32767.0 / 32768.0, -0.5, -1, 0.25, -0.25, 0}, dst)
}

func TestSource_ReadSamples_ShortReads(t *testing.T) {
	t.Parallel()

	src, m := newMockSource(1, 2, 3, 4, 5, 6)
	// the decoder hands out three bytes at a time, splitting samples
	m.chunk = 3

	dst := make([]float32, 4)
	n, err := src.ReadSamples(dst)
	require.NoError(t, err)
	require.Equal(t, 4, n)
	assert.Equal(t, float32(4.0/32768.0), dst[3])

	n, err = src.ReadSamples(dst)
	assert.Equal(t, 2, n)
	assert.Equal(t, io.EOF, err)
}

func TestSource_ReadSamples_EOF(t *testing.T) {
	t.Parallel()

	src, _ := newMockSource(100, 200)
	dst := make([]float32, 2)

	n, err := src.ReadSamples(dst)
	assert.Equal(t, 2, n)
	assert.NoError(t, err)

	n, err = src.ReadSamples(dst)
	assert.Zero(t, n)
	assert.Equal(t, io.EOF, err)
}

func TestSource_ReadSamples_EmptyBuffer(t *testing.T) {
	t.Parallel()

	src, _ := newMockSource(1, 2)
	n, err := src.ReadSamples(nil)
	assert.Zero(t, n)
	assert.NoError(t, err)
}

func TestSource_ReadSamples_Error(t *testing.T) {
	t.Parallel()

	src, m := newMockSource(1, 2)
	m.err = errors.New("bad frame")

	_, err := src.ReadSamples(make([]float32, 2))
	assert.ErrorIs(t, err, m.err)
}

func TestSource_BufferResize(t *testing.T) {
	t.Parallel()

	src, _ := newMockSource(make([]int16, 10000)...)

	_, err := src.ReadSamples(make([]float32, 6000))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, cap(src.buf), 12000)
}

func BenchmarkSource_ReadSamples(b *testing.B) {
	samples := make([]int16, 44100*2)
	dst := make([]float32, 4096)

	b.ReportAllocs()
	for b.Loop() {
		src, _ := newMockSource(samples...)
		for {
			if _, err := src.ReadSamples(dst); err != nil {
				break
			}
		}
	}
}
