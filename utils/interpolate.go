// SPDX-License-Identifier: EPL-2.0

package utils

// LinearInterpolate blends y1 and y2 at fractional position x (0 <= x <= 1).
// At x == 0 the result is exactly y1.
func LinearInterpolate(y1, y2, x float32) float32 {
	return y1*(1-x) + y2*x
}

// CubicInterpolate performs Catmull-Rom interpolation between y1 and y2.
// x is the fractional position between y1 and y2 (0 <= x <= 1);
// y0 and y3 are the outer neighbours.
func CubicInterpolate(y0, y1, y2, y3, x float32) float32 {
	a0 := -0.5*y0 + 1.5*y1 - 1.5*y2 + 0.5*y3
	a1 := y0 - 2.5*y1 + 2*y2 - 0.5*y3
	a2 := -0.5*y0 + 0.5*y2

	return ((a0*x+a1)*x+a2)*x + y1
}
