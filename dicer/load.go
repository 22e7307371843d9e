// SPDX-License-Identifier: EPL-2.0

package dicer

import (
	"fmt"
	"io"

	"github.com/ik5/audiodicer/audio"
)

// LoadPCM replaces the buffer with normalized interleaved samples.
// On failure the previous buffer is kept.
func (e *Engine) LoadPCM(samples []float32, layout ChannelLayout, sampleRate int) error {
	if e.running {
		return ErrRunning
	}

	b, err := NewBuffer(samples, layout, sampleRate)
	if err != nil {
		return fmt.Errorf("loading %s pcm: %w", layout, err)
	}

	e.setBuffer(b)
	return nil
}

// LoadBuffer replaces the buffer with b, which the engine then owns.
func (e *Engine) LoadBuffer(b *Buffer) error {
	if e.running {
		return ErrRunning
	}
	if len(b.Left) != len(b.Right) {
		return audio.ErrPlaneMismatch
	}
	if b.SampleRate <= 0 {
		b.SampleRate = DefaultSampleRate
	}

	e.setBuffer(b)
	return nil
}

// LoadSource drains src and loads its samples. Sources with other than one
// or two channels fail with ErrUnsupportedChannels before anything is read.
func (e *Engine) LoadSource(src audio.Source) error {
	if e.running {
		return ErrRunning
	}

	channels := src.Channels()
	if channels != int(Mono) && channels != int(Stereo) {
		return fmt.Errorf("%w: %d", ErrUnsupportedChannels, channels)
	}

	samples, err := audio.Collect(src)
	if err != nil {
		return fmt.Errorf("loading source: %w", err)
	}

	return e.LoadPCM(samples, ChannelLayout(channels), src.SampleRate())
}

// LoadFromContainer decodes r with dec and loads the result.
func (e *Engine) LoadFromContainer(r io.Reader, dec audio.Decoder) error {
	if e.running {
		return ErrRunning
	}

	src, err := dec.Decode(r)
	if err != nil {
		return fmt.Errorf("decoding: %w", err)
	}
	defer src.Close()

	return e.LoadSource(src)
}

func (e *Engine) setBuffer(b *Buffer) {
	e.buf = b
	e.sampler = b.sampler(e.interp)
	if !e.paddingSet {
		e.padding = combPadding(b.SampleRate)
	}
}

func combPadding(sampleRate int) int {
	return sampleRate * DefaultCombFilterMillis / 1000
}
