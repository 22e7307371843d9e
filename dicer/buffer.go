// SPDX-License-Identifier: EPL-2.0

package dicer

import (
	"fmt"

	"github.com/ik5/audiodicer/audio"
	"github.com/ik5/audiodicer/utils"
)

// DefaultSampleRate is assumed for PCM loaded without a rate.
const DefaultSampleRate = 44100

// ChannelLayout tags interleaved PCM handed to the engine.
type ChannelLayout int

const (
	Mono   ChannelLayout = 1
	Stereo ChannelLayout = 2
)

func (l ChannelLayout) String() string {
	switch l {
	case Mono:
		return "mono"
	case Stereo:
		return "stereo"
	}
	return fmt.Sprintf("ChannelLayout(%d)", int(l))
}

// Frame is one stereo sample pair: [0] left, [1] right.
type Frame [2]float32

// Buffer is the decoded audio the engine slices. It is planar stereo and is
// not modified after construction.
type Buffer struct {
	Left       []float32
	Right      []float32
	SampleRate int
}

// NewBuffer builds a Buffer from interleaved samples.
// Mono data is duplicated into both channels.
func NewBuffer(samples []float32, layout ChannelLayout, sampleRate int) (*Buffer, error) {
	left, right, err := audio.Deinterleave(samples, int(layout))
	if err != nil {
		return nil, err
	}
	return NewPlanarBuffer(left, right, sampleRate)
}

// NewPlanarBuffer wraps already separated channel planes. The planes are used
// as-is, not copied.
func NewPlanarBuffer(left, right []float32, sampleRate int) (*Buffer, error) {
	if len(left) != len(right) {
		return nil, audio.ErrPlaneMismatch
	}
	if sampleRate <= 0 {
		sampleRate = DefaultSampleRate
	}

	return &Buffer{Left: left, Right: right, SampleRate: sampleRate}, nil
}

// Frames returns the number of stereo frames held.
func (b *Buffer) Frames() int { return len(b.Left) }

// Sampler reads a stereo frame at a fractional frame index.
type Sampler interface {
	SampleAt(idx float64) Frame
}

// SampleAt linearly interpolates between the two frames around idx.
// An integer idx returns the stored frame exactly. Indexes outside the
// buffer read the nearest edge frame.
func (b *Buffer) SampleAt(idx float64) Frame {
	last := len(b.Left) - 1
	switch {
	case last < 0:
		return Frame{}
	case idx <= 0:
		return Frame{b.Left[0], b.Right[0]}
	case idx >= float64(last):
		return Frame{b.Left[last], b.Right[last]}
	}

	i := int(idx)
	frac := float32(idx - float64(i))

	return Frame{
		utils.LinearInterpolate(b.Left[i], b.Left[i+1], frac),
		utils.LinearInterpolate(b.Right[i], b.Right[i+1], frac),
	}
}

// Interpolation selects how fractional indexes are read.
type Interpolation int

const (
	Linear Interpolation = iota
	Cubic
)

func (m Interpolation) String() string {
	switch m {
	case Linear:
		return "linear"
	case Cubic:
		return "cubic"
	}
	return fmt.Sprintf("Interpolation(%d)", int(m))
}

// ParseInterpolation maps "linear" or "cubic" to an Interpolation.
func ParseInterpolation(s string) (Interpolation, error) {
	switch s {
	case "linear", "":
		return Linear, nil
	case "cubic":
		return Cubic, nil
	}
	return Linear, fmt.Errorf("unknown interpolation %q", s)
}

// cubicSampler reads with Catmull-Rom interpolation, repeating edge frames
// for missing neighbours.
type cubicSampler struct {
	*Buffer
}

func (c cubicSampler) SampleAt(idx float64) Frame {
	last := len(c.Left) - 1
	switch {
	case last < 0:
		return Frame{}
	case idx <= 0:
		return Frame{c.Left[0], c.Right[0]}
	case idx >= float64(last):
		return Frame{c.Left[last], c.Right[last]}
	}

	i := int(idx)
	x := float32(idx - float64(i))
	i0 := max(i-1, 0)
	i3 := min(i+2, last)

	return Frame{
		utils.CubicInterpolate(c.Left[i0], c.Left[i], c.Left[i+1], c.Left[i3], x),
		utils.CubicInterpolate(c.Right[i0], c.Right[i], c.Right[i+1], c.Right[i3], x),
	}
}

func (b *Buffer) sampler(m Interpolation) Sampler {
	if m == Cubic {
		return cubicSampler{b}
	}
	return b
}
