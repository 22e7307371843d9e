// SPDX-License-Identifier: EPL-2.0

package dicer

// Ramp lengths in frames. At 44.1 kHz these are roughly 23 ms for volume
// and pan and 93 ms for speed.
const (
	VolumeSteps = 1024
	PanSteps    = 1024
	SpeedSteps  = 4096
)

// Smoother moves a value to a target in equal increments, one per frame.
type Smoother struct {
	Value float64

	target    float64
	increment float64
	steps     int
}

// Set assigns v immediately and cancels any ramp in progress.
func (s *Smoother) Set(v float64) {
	s.Value = v
	s.target = v
	s.increment = 0
	s.steps = 0
}

// Ramp starts moving towards target over steps calls to Advance.
// A non-positive step count behaves like Set.
func (s *Smoother) Ramp(target float64, steps int) {
	if steps <= 0 {
		s.Set(target)
		return
	}

	s.target = target
	s.increment = (target - s.Value) / float64(steps)
	s.steps = steps
}

// Advance applies one increment. The final step lands exactly on the target.
func (s *Smoother) Advance() {
	if s.steps <= 0 {
		return
	}

	s.steps--
	if s.steps == 0 {
		s.Value = s.target
		return
	}
	s.Value += s.increment
}

// Target is the value the smoother is heading to (Value when idle).
func (s *Smoother) Target() float64 { return s.target }

// Remaining is the number of Advance calls left in the current ramp.
func (s *Smoother) Remaining() int { return s.steps }

// Finish jumps to the target.
func (s *Smoother) Finish() { s.Set(s.target) }
