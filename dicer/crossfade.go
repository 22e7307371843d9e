// SPDX-License-Identifier: EPL-2.0

package dicer

import (
	"fmt"
	"math"
	"strings"
)

// CrossFadeMode is the weighting curve used while two slices overlap.
type CrossFadeMode int

const (
	// CrossFadeNone switches hard from the old slice to the new one halfway through.
	CrossFadeNone CrossFadeMode = iota
	// CrossFadeLinear weights the slices linearly.
	CrossFadeLinear
	// CrossFadeSine is an equal-power curve.
	CrossFadeSine
)

var crossFadeNames = [...]string{
	CrossFadeNone:   "none",
	CrossFadeLinear: "linear",
	CrossFadeSine:   "sine",
}

func (m CrossFadeMode) valid() bool {
	return m >= CrossFadeNone && int(m) < len(crossFadeNames)
}

func (m CrossFadeMode) String() string {
	if !m.valid() {
		return fmt.Sprintf("CrossFadeMode(%d)", int(m))
	}
	return crossFadeNames[m]
}

// ParseCrossFadeMode accepts the names printed by String, in any case.
func ParseCrossFadeMode(s string) (CrossFadeMode, error) {
	for i, name := range crossFadeNames {
		if strings.EqualFold(s, name) {
			return CrossFadeMode(i), nil
		}
	}
	return CrossFadeNone, fmt.Errorf("%w: %q", ErrUnknownCrossFade, s)
}

// weights returns the gains for the outgoing and incoming slice.
type weights func(ratio float64) (out, in float64)

var curves = [...]weights{
	CrossFadeNone: func(ratio float64) (float64, float64) {
		if ratio <= 0.5 {
			return 1, 0
		}
		return 0, 1
	},
	CrossFadeLinear: func(ratio float64) (float64, float64) {
		return 1 - ratio, ratio
	},
	CrossFadeSine: func(ratio float64) (float64, float64) {
		return math.Sin(math.Pi / 2 * (1 - ratio)), math.Sin(math.Pi / 2 * ratio)
	},
}

// Blend mixes a (outgoing) and b (incoming) at ratio in [0, 1], where 0 is
// pure a and 1 is pure b. Unknown modes blend linearly.
func Blend(a, b Frame, ratio float64, mode CrossFadeMode) Frame {
	curve := curves[CrossFadeLinear]
	if mode.valid() {
		curve = curves[mode]
	}

	wa, wb := curve(ratio)
	return Frame{
		float32(float64(a[0])*wa + float64(b[0])*wb),
		float32(float64(a[1])*wa + float64(b[1])*wb),
	}
}
