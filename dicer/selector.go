// SPDX-License-Identifier: EPL-2.0

package dicer

import (
	"math"
	"math/rand/v2"
)

// DefaultCombFilterDelay is the minimum distance, in seconds, kept between a
// new slice start and the playing position. Comb filtering stops being
// audible at around 25 ms.
const DefaultCombFilterDelay = 0.03

// Rand is the random source used to choose slice starts.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
}

// NewRand returns a PCG-backed source seeded with seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Window describes where a new slice may start.
type Window struct {
	Frames      int     // buffer length
	SliceSize   int     // output frames a slice stays audible, overlaps included
	Padding     int     // comb filter guard distance at speed 1
	Speed       float64 // current speed
	TargetSpeed float64 // speed being ramped to
}

func (w Window) maxSpeed() float64 {
	return max(w.Speed, w.TargetSpeed)
}

// Span is the number of candidate starts and Guard the guard distance,
// both shrunk when playing faster than normal.
func (w Window) Span() (span, guard int) {
	span = w.Frames - w.SliceSize
	guard = w.Padding
	if s := w.maxSpeed(); s > 1 {
		span = int(float64(span) / s)
		guard = int(float64(guard) / s)
	}
	return span, guard
}

// Limit is the last start from which a whole slice at the highest pending
// speed still has an interpolation partner inside the buffer.
func (w Window) Limit() int {
	covered := int(math.Ceil(float64(w.SliceSize) * max(w.maxSpeed(), 1)))
	return max(w.Frames-2-covered, 0)
}

// Pick draws a slice start from w, keeping it at least the guard distance
// away from current. A candidate inside the guard zone is pushed away from
// the middle of the span; if that lands outside the buffer or back in the
// zone, it is placed exactly one guard distance from current instead.
func Pick(rng Rand, current int, w Window) int {
	span, guard := w.Span()
	if span < 1 {
		span = 1
	}

	next := rng.IntN(span)
	mid := span / 2

	if abs(current-next) < guard {
		if next < mid {
			next -= guard
		} else {
			next += guard
		}
	}

	return settle(next, current, guard, mid, w.Limit())
}

func settle(next, current, guard, mid, limit int) int {
	next = min(max(next, 0), limit)
	if abs(current-next) >= guard {
		return next
	}

	lo, hi := current-guard, current+guard
	loOK := lo >= 0 && lo <= limit
	hiOK := hi >= 0 && hi <= limit

	switch {
	case loOK && (next < mid || !hiOK):
		return lo
	case hiOK:
		return hi
	}

	// buffer too small to honour the guard
	return next
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
