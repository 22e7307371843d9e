// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const frameBytes = 4

// StereoWriter encodes interleaved little-endian int16 stereo PCM, as
// written by Write, into a 16-bit WAV file. The header sizes are patched
// by Close, hence the io.WriteSeeker.
type StereoWriter struct {
	enc     *wav.Encoder
	buf     *goaudio.IntBuffer
	partial []byte
	frames  int64
}

// NewStereoWriter starts a 16-bit stereo WAV at sampleRate on w.
func NewStereoWriter(w io.WriteSeeker, sampleRate int) *StereoWriter {
	return &StereoWriter{
		enc: wav.NewEncoder(w, sampleRate, 16, 2, formatPCM),
		buf: &goaudio.IntBuffer{
			Format:         &goaudio.Format{NumChannels: 2, SampleRate: sampleRate},
			SourceBitDepth: 16,
		},
		partial: make([]byte, 0, frameBytes),
	}
}

// Write accepts any number of bytes. A trailing partial frame is held
// until the next Write completes it.
func (w *StereoWriter) Write(p []byte) (int, error) {
	total := len(p)

	if len(w.partial) > 0 {
		take := min(frameBytes-len(w.partial), len(p))
		w.partial = append(w.partial, p[:take]...)
		p = p[take:]
		if len(w.partial) < frameBytes {
			return total, nil
		}
		if err := w.encode(w.partial); err != nil {
			return 0, err
		}
		w.partial = w.partial[:0]
	}

	whole := len(p) - len(p)%frameBytes
	if err := w.encode(p[:whole]); err != nil {
		return 0, err
	}
	w.partial = append(w.partial, p[whole:]...)

	return total, nil
}

func (w *StereoWriter) encode(p []byte) error {
	if len(p) == 0 {
		return nil
	}

	samples := len(p) / 2
	if cap(w.buf.Data) < samples {
		w.buf.Data = make([]int, samples)
	}
	w.buf.Data = w.buf.Data[:samples]

	for i := range samples {
		w.buf.Data[i] = int(int16(binary.LittleEndian.Uint16(p[2*i:])))
	}

	if err := w.enc.Write(w.buf); err != nil {
		return fmt.Errorf("encoding wav: %w", err)
	}
	w.frames += int64(samples / 2)
	return nil
}

// Frames is the number of complete frames written so far.
func (w *StereoWriter) Frames() int64 { return w.frames }

// Close drops any partial frame and finalizes the header. It does not
// close the underlying writer.
func (w *StereoWriter) Close() error {
	w.partial = w.partial[:0]
	if err := w.enc.Close(); err != nil {
		return fmt.Errorf("finalizing wav: %w", err)
	}
	return nil
}
