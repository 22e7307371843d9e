// SPDX-License-Identifier: EPL-2.0

package dicer

import "log"

// Option configures an Engine at construction. Slice geometry set here is
// validated by Start, once the buffer length is known.
type Option func(*Engine)

// WithRand sets the source used to pick slice starts.
func WithRand(r Rand) Option {
	return func(e *Engine) { e.rng = r }
}

// WithSeed makes slice starts reproducible.
func WithSeed(seed uint64) Option {
	return func(e *Engine) { e.rng = NewRand(seed) }
}

// WithLogger receives rejected speed changes and applied configuration.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// WithInterpolation selects linear (default) or cubic reads.
func WithInterpolation(m Interpolation) Option {
	return func(e *Engine) { e.interp = m }
}

// WithPanLaw makes pan affect the output with a constant-power law.
// Without it pan is smoothed and reported but not applied.
func WithPanLaw(on bool) Option {
	return func(e *Engine) { e.panLaw = on }
}

// WithCombFilterPadding fixes the guard distance in frames instead of
// deriving it from the loaded sample rate.
func WithCombFilterPadding(frames int) Option {
	return func(e *Engine) {
		e.padding = frames
		e.paddingSet = true
	}
}

// WithSliceSize sets the initial slice length in frames.
func WithSliceSize(frames int) Option {
	return func(e *Engine) {
		s := e.machine.Staged
		s.SliceSize = frames
		e.machine.Apply(s)
	}
}

// WithOverlap sets the initial crossfade length in frames.
func WithOverlap(frames int) Option {
	return func(e *Engine) {
		s := e.machine.Staged
		s.Overlap = frames
		e.machine.Apply(s)
	}
}

// WithCrossFadeMode sets the initial crossfade curve.
func WithCrossFadeMode(m CrossFadeMode) Option {
	return func(e *Engine) {
		s := e.machine.Staged
		s.CrossFade = m
		e.machine.Apply(s)
	}
}
