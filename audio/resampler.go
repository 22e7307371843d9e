// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"math"

	"github.com/ik5/audiodicer/utils"
)

// ResamplePlanar converts one channel plane from srcRate to dstRate using
// Catmull-Rom interpolation. Edge frames are repeated for the outer
// neighbours. When downsampling, a one-pole low-pass is run over the input
// first to tame aliasing.
//
// The input plane is never modified. If the rates match, a copy is returned.
func ResamplePlanar(plane []float32, srcRate, dstRate int) ([]float32, error) {
	if srcRate <= 0 || dstRate <= 0 {
		return nil, ErrInvalidRate
	}

	if srcRate == dstRate || len(plane) == 0 {
		out := make([]float32, len(plane))
		copy(out, plane)
		return out, nil
	}

	ratio := float64(srcRate) / float64(dstRate)

	in := plane
	if ratio > 1 {
		in = lowPass(plane, 0.5)
	}

	outLen := int(math.Floor(float64(len(in)-1)/ratio)) + 1
	out := make([]float32, outLen)
	last := len(in) - 1

	at := func(i int) float32 {
		if i < 0 {
			return in[0]
		}
		if i > last {
			return in[last]
		}
		return in[i]
	}

	for o := range outLen {
		pos := float64(o) * ratio
		i := int(pos)
		x := float32(pos - float64(i))
		out[o] = utils.CubicInterpolate(at(i-1), at(i), at(i+1), at(i+2), x)
	}

	return out, nil
}

// lowPass applies y[n] = alpha*x[n] + (1-alpha)*y[n-1], seeded with the
// first sample so there is no warm-up transient.
func lowPass(plane []float32, alpha float32) []float32 {
	out := make([]float32, len(plane))
	state := plane[0]
	for i, x := range plane {
		state = alpha*x + (1-alpha)*state
		out[i] = state
	}
	return out
}
