// SPDX-License-Identifier: EPL-2.0

package dicer

import "fmt"

// Phase is the state of the two-stream slicing machine.
type Phase int

const (
	PlayA    Phase = iota // stream A alone
	FadeAToB              // A fading out, B fading in
	PlayB                 // stream B alone
	FadeBToA              // B fading out, A fading in
)

var phaseNames = [...]string{"play-a", "fade-a-b", "play-b", "fade-b-a"}

func (p Phase) String() string {
	if p < PlayA || p > FadeBToA {
		return fmt.Sprintf("Phase(%d)", int(p))
	}
	return phaseNames[p]
}

// Fading reports whether both streams are audible.
func (p Phase) Fading() bool { return p&1 == 1 }

// Settings is the dicing configuration the machine plays by.
type Settings struct {
	SliceSize int
	Overlap   int
	CrossFade CrossFadeMode
}

// Valid reports whether two overlaps fit strictly inside one slice.
func (s Settings) Valid() bool {
	return s.Overlap >= 0 && s.Overlap*2 < s.SliceSize
}

// PlayLength is the steady-play phase length in frames.
func (s Settings) PlayLength() int { return s.SliceSize - 2*s.Overlap }

// Picker chooses a new start for the incoming stream given the position of
// the outgoing one.
type Picker func(anchor float64) float64

// Machine drives the PLAY/FADE cycle. Configuration is double buffered:
// Staged collects changes and is copied into Active only when a fade
// begins, so slice size and overlap never change under a running phase.
type Machine struct {
	Phase     Phase
	Countdown int
	Ratio     float64
	Delta     float64

	Active Settings
	Staged Settings

	// OnCommit, when set, is called after Staged replaced a different Active.
	OnCommit func(prev, next Settings)
}

// Reset arms the machine at the start of a PLAY_A phase.
func (m *Machine) Reset() {
	m.Phase = PlayA
	m.Countdown = m.Active.PlayLength()
	m.Ratio = 0
	m.Delta = 0
}

// Remaining is how many more frames each stream stays audible, 0 for a
// silent one. fadeOut is the overlap of the fade that will retire the
// stream currently playing alone.
func (m *Machine) Remaining(fadeOut int) (a, b int) {
	switch m.Phase {
	case PlayA:
		return m.Countdown + fadeOut, 0
	case FadeAToB:
		return m.Countdown, m.Countdown + m.Active.PlayLength() + fadeOut
	case PlayB:
		return 0, m.Countdown + fadeOut
	default:
		return m.Countdown + m.Active.PlayLength() + fadeOut, m.Countdown
	}
}

// Stage records a configuration to apply at the next fade.
func (m *Machine) Stage(s Settings) { m.Staged = s }

// Apply sets both the active and staged configuration.
func (m *Machine) Apply(s Settings) {
	m.Active = s
	m.Staged = s
}

func (m *Machine) commit() {
	if m.Staged == m.Active || !m.Staged.Valid() {
		return
	}

	prev := m.Active
	m.Active = m.Staged
	if m.OnCommit != nil {
		m.OnCommit(prev, m.Active)
	}
}

func (m *Machine) enter(c *Cursor, pick Picker) {
	m.Phase = (m.Phase + 1) & 3

	if !m.Phase.Fading() {
		m.Countdown = m.Active.PlayLength()
		return
	}

	// only one stream is audible here: safe to change the geometry
	m.commit()

	m.Countdown = m.Active.Overlap
	m.Ratio = 0
	m.Delta = 0
	if m.Active.Overlap > 0 {
		m.Delta = 1 / float64(m.Active.Overlap)
	}

	if m.Phase == FadeAToB {
		c.B = pick(c.A)
	} else {
		c.A = pick(c.B)
	}
}

// Step produces the next frame. Each phase yields exactly Countdown frames;
// a zero-length fade (overlap 0) is passed through in the same call.
// An invalid active configuration yields silence.
func (m *Machine) Step(c *Cursor, s Sampler, pick Picker) Frame {
	if !m.Active.Valid() {
		return Frame{}
	}

	for m.Countdown <= 0 {
		m.enter(c, pick)
	}
	m.Countdown--

	speed := c.Speed.Value

	switch m.Phase {
	case PlayA:
		c.A += speed
		return s.SampleAt(c.A)

	case PlayB:
		c.B += speed
		return s.SampleAt(c.B)
	}

	c.A += speed
	c.B += speed
	m.Ratio = min(m.Ratio+m.Delta, 1)

	a, b := s.SampleAt(c.A), s.SampleAt(c.B)
	if m.Phase == FadeBToA {
		a, b = b, a
	}

	return Blend(a, b, m.Ratio, m.Active.CrossFade)
}
