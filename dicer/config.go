// SPDX-License-Identifier: EPL-2.0

package dicer

import (
	"fmt"
	"math"
)

// While the engine runs, slice size, overlap and crossfade mode are staged
// and take effect at the start of the next fade. When stopped they apply at
// once. A rejected value leaves both the active and staged settings alone.

// SetSliceSize sets the slice length in frames. It must exceed twice the
// overlap: a slice of exactly twice the overlap is rejected, as it would
// leave a play phase of zero frames. Also, at the highest current or pending
// speed the slice plus the comb filter guard must still leave more than half
// the buffer as valid starts. Without a loaded buffer the length check is
// left to Start.
func (e *Engine) SetSliceSize(frames int) error {
	next := e.machine.Staged
	next.SliceSize = frames

	if !next.Valid() || !e.fits(frames, e.maxSpeed()) {
		return fmt.Errorf("%w: %d", ErrSliceSizeRejected, frames)
	}

	e.update(next)
	return nil
}

// SetOverlap sets the crossfade length in frames; twice the overlap must
// stay below the slice size. While running, a longer overlap is rejected
// if it would carry the playing slice past the end of the buffer.
func (e *Engine) SetOverlap(frames int) error {
	next := e.machine.Staged
	next.Overlap = frames

	if !next.Valid() {
		return fmt.Errorf("%w: %d", ErrOverlapRejected, frames)
	}
	if frames > e.machine.Staged.Overlap && !e.inBuffer(e.maxSpeed(), frames) {
		return fmt.Errorf("%w: %d would run the playing slice past the end", ErrOverlapRejected, frames)
	}

	e.update(next)
	return nil
}

// SetCrossFadeMode stages the curve used by the following fades.
func (e *Engine) SetCrossFadeMode(m CrossFadeMode) error {
	if !m.valid() {
		return fmt.Errorf("%w: %d", ErrUnknownCrossFade, int(m))
	}

	next := e.machine.Staged
	next.CrossFade = m
	e.update(next)
	return nil
}

func (e *Engine) update(s Settings) {
	if e.running {
		e.machine.Stage(s)
		return
	}
	e.machine.Apply(s)
}

// SetSpeed clamps v to [MinSpeed, MaxSpeed]. The speed is rejected, and a
// warning logged, when the largest active or staged slice would no longer
// fit at it. While running, a speed above the current one is also rejected
// when an audible stream would reach the end of the buffer before it falls
// silent. A running engine ramps to the new speed over SpeedSteps frames.
func (e *Engine) SetSpeed(v float64) error {
	if math.IsNaN(v) {
		return fmt.Errorf("%w: NaN", ErrSpeedRejected)
	}
	v = min(max(v, MinSpeed), MaxSpeed)

	slice := max(e.machine.Active.SliceSize, e.machine.Staged.SliceSize)
	if !e.fits(slice, v) {
		e.log.Printf("speed %.3f rejected for slice %d, keeping %.3f", v, slice, e.cursor.Speed.Value)
		return fmt.Errorf("%w: %.3f", ErrSpeedRejected, v)
	}
	if v > e.maxSpeed() && !e.inBuffer(v, e.machine.Staged.Overlap) {
		e.log.Printf("speed %.3f rejected, the playing slice would pass the end of the buffer", v)
		return fmt.Errorf("%w: %.3f too fast for the playing slice", ErrSpeedRejected, v)
	}

	e.ramp(&e.cursor.Speed, v, SpeedSteps)
	return nil
}

// SetVolume clamps v to [0, 1]. NaN is ignored.
func (e *Engine) SetVolume(v float64) {
	if math.IsNaN(v) {
		return
	}
	e.ramp(&e.cursor.Volume, min(max(v, 0), 1), VolumeSteps)
}

// SetPan clamps v to [-1, 1]. NaN is ignored. Pan only reaches the output
// when the engine was built WithPanLaw.
func (e *Engine) SetPan(v float64) {
	if math.IsNaN(v) {
		return
	}
	e.ramp(&e.cursor.Pan, min(max(v, -1), 1), PanSteps)
}

func (e *Engine) ramp(s *Smoother, v float64, steps int) {
	if e.running {
		s.Ramp(v, steps)
		return
	}
	s.Set(v)
}

// SetCombFilterPadding sets the guard distance, in frames, between a new
// slice start and the playing position. It applies from the next pick.
func (e *Engine) SetCombFilterPadding(frames int) error {
	if frames < 0 {
		return fmt.Errorf("%w: %d", ErrPaddingRejected, frames)
	}

	prev := e.padding
	e.padding = frames
	slice := max(e.machine.Active.SliceSize, e.machine.Staged.SliceSize)
	if e.running && !e.fits(slice, e.maxSpeed()) {
		e.padding = prev
		return fmt.Errorf("%w: %d", ErrPaddingRejected, frames)
	}

	e.paddingSet = true
	return nil
}

// fits reports whether a slice played at speed, widened by the comb filter
// guard on both sides, still spans less than half the buffer.
func (e *Engine) fits(sliceSize int, speed float64) bool {
	if e.buf == nil {
		return true
	}

	implied := sliceSize
	if speed > 1 {
		implied = int(float64(sliceSize+2*e.padding) * speed)
	}

	return implied*2 < e.buf.Frames()
}

// inBuffer reports whether every audible stream, moving at speed or the
// current speed if that is higher, keeps a full interpolation pair inside
// the buffer until it falls silent. A stopped engine always passes.
func (e *Engine) inBuffer(speed float64, fadeOut int) bool {
	if !e.running {
		return true
	}

	last := float64(e.buf.Frames() - 2)
	speed = max(speed, e.cursor.Speed.Value)
	a, b := e.machine.Remaining(fadeOut)

	return (a == 0 || e.cursor.A+float64(a)*speed <= last) &&
		(b == 0 || e.cursor.B+float64(b)*speed <= last)
}

func (e *Engine) maxSpeed() float64 {
	return max(e.cursor.Speed.Value, e.cursor.Speed.Target())
}

// SliceSize is the active slice length; a staged change shows in Pending.
func (e *Engine) SliceSize() int { return e.machine.Active.SliceSize }

// Overlap is the active crossfade length in frames.
func (e *Engine) Overlap() int { return e.machine.Active.Overlap }

// CrossFadeMode is the active crossfade curve.
func (e *Engine) CrossFadeMode() CrossFadeMode { return e.machine.Active.CrossFade }

// Pending returns the settings that will apply at the next fade.
func (e *Engine) Pending() Settings { return e.machine.Staged }

// Speed is the current, possibly still ramping, playback speed.
func (e *Engine) Speed() float64 { return e.cursor.Speed.Value }

// Volume is the current output gain.
func (e *Engine) Volume() float64 { return e.cursor.Volume.Value }

// Pan is the current pan position.
func (e *Engine) Pan() float64 { return e.cursor.Pan.Value }

// CombFilterPadding is the guard distance in frames at speed 1.
func (e *Engine) CombFilterPadding() int { return e.padding }
