// SPDX-License-Identifier: EPL-2.0

package utils

import "encoding/binary"

// Float32ToInt16 clamps x to [-1, 1] and scales it by 32767.
// The fractional part is truncated toward zero.
func Float32ToInt16(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// 32767 for both signs keeps the scale symmetric
	return int16(x * 32767.0)
}

// Int16ToFloat32 maps a signed 16-bit sample into [-1, 1).
func Int16ToFloat32(v int16) float32 {
	return float32(v) / 32768.0
}

// PutFrame16LE writes one stereo frame into dst as two little-endian
// signed 16-bit samples (left, then right). dst must hold at least 4 bytes.
func PutFrame16LE(dst []byte, left, right float32) {
	_ = dst[3]
	binary.LittleEndian.PutUint16(dst[0:2], uint16(Float32ToInt16(left)))
	binary.LittleEndian.PutUint16(dst[2:4], uint16(Float32ToInt16(right)))
}
