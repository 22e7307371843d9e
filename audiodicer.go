// SPDX-License-Identifier: EPL-2.0

package audiodicer

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ik5/audiodicer/audio"
	"github.com/ik5/audiodicer/dicer"
	"github.com/ik5/audiodicer/formats/aiff"
	"github.com/ik5/audiodicer/formats/mp3"
	"github.com/ik5/audiodicer/formats/vorbis"
	"github.com/ik5/audiodicer/formats/wav"
)

// ErrNoFrames is returned by Render for a non-positive length.
var ErrNoFrames = errors.New("nothing to render")

var registry = NewRegistry()

// NewRegistry returns a registry with every bundled decoder, keyed by file
// extension.
func NewRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("wave", wav.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("oga", vorbis.Decoder{})
	return reg
}

// Decode drains src into a planar buffer. When rate is positive and
// differs from the source rate, both channels are converted to it.
func Decode(src audio.Source, rate int) (*dicer.Buffer, error) {
	channels := src.Channels()
	if channels != int(dicer.Mono) && channels != int(dicer.Stereo) {
		return nil, fmt.Errorf("%w: %d", dicer.ErrUnsupportedChannels, channels)
	}

	samples, err := audio.Collect(src)
	if err != nil {
		return nil, err
	}

	buf, err := dicer.NewBuffer(samples, dicer.ChannelLayout(channels), src.SampleRate())
	if err != nil {
		return nil, err
	}

	if rate <= 0 || rate == buf.SampleRate {
		return buf, nil
	}

	left, err := audio.ResamplePlanar(buf.Left, buf.SampleRate, rate)
	if err != nil {
		return nil, err
	}
	right, err := audio.ResamplePlanar(buf.Right, buf.SampleRate, rate)
	if err != nil {
		return nil, err
	}

	return dicer.NewPlanarBuffer(left, right, rate)
}

// ReadFile decodes the file at path, choosing the decoder by extension.
func ReadFile(path string, rate int) (*dicer.Buffer, error) {
	dec, err := registry.ForPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	defer src.Close()

	buf, err := Decode(src, rate)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return buf, nil
}

// Open reads the file at path into a new, stopped engine.
func Open(path string, rate int, opts ...dicer.Option) (*dicer.Engine, error) {
	buf, err := ReadFile(path, rate)
	if err != nil {
		return nil, err
	}

	e := dicer.New(opts...)
	if err := e.LoadBuffer(buf); err != nil {
		return nil, err
	}
	return e, nil
}

// Render writes frames of the running engine's output to w as a 16-bit
// stereo WAV at the engine's sample rate.
func Render(e *dicer.Engine, w io.WriteSeeker, frames int64) error {
	if frames <= 0 {
		return ErrNoFrames
	}
	if !e.IsRunning() {
		return dicer.ErrNotRunning
	}

	out := wav.NewStereoWriter(w, e.SampleRate())
	if _, err := io.CopyN(out, e, frames*dicer.BytesPerFrame); err != nil {
		return fmt.Errorf("rendering: %w", err)
	}
	return out.Close()
}
