// SPDX-License-Identifier: EPL-2.0

package dicer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rampBuffer holds frame i as (i/n, -i/n) so positions can be read back
// from the output.
func rampBuffer(t *testing.T, frames int) *Buffer {
	t.Helper()

	left := make([]float32, frames)
	right := make([]float32, frames)
	for i := range frames {
		left[i] = float32(i) / float32(frames)
		right[i] = -left[i]
	}

	b, err := NewPlanarBuffer(left, right, 44100)
	require.NoError(t, err)
	return b
}

func TestPhase_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "play-a", PlayA.String())
	assert.Equal(t, "fade-b-a", FadeBToA.String())
	assert.Equal(t, "Phase(7)", Phase(7).String())
	assert.True(t, FadeAToB.Fading())
	assert.False(t, PlayB.Fading())
}

func TestSettings_Valid(t *testing.T) {
	t.Parallel()

	assert.True(t, Settings{SliceSize: 1000, Overlap: 100}.Valid())
	assert.True(t, Settings{SliceSize: 1000, Overlap: 0}.Valid())
	assert.True(t, Settings{SliceSize: 1000, Overlap: 499}.Valid())
	assert.False(t, Settings{SliceSize: 1000, Overlap: 500}.Valid())
	assert.False(t, Settings{SliceSize: 0, Overlap: 0}.Valid())
	assert.False(t, Settings{SliceSize: 1000, Overlap: -1}.Valid())
}

func TestMachine_PhaseLengths(t *testing.T) {
	t.Parallel()

	buf := rampBuffer(t, 20000)
	c := NewCursor()
	m := Machine{}
	m.Apply(Settings{SliceSize: 1000, Overlap: 100, CrossFade: CrossFadeLinear})
	m.Reset()

	picks := 0
	pick := func(anchor float64) float64 {
		picks++
		return 5000
	}

	var phases []Phase
	var lengths []int
	for range 10000 {
		m.Step(&c, buf, pick)
		if n := len(phases); n > 0 && phases[n-1] == m.Phase {
			lengths[n-1]++
			continue
		}
		phases = append(phases, m.Phase)
		lengths = append(lengths, 1)
	}

	for i, p := range phases {
		assert.Equal(t, Phase(i%4), p, "phase #%d", i)
		want := 800
		if p.Fading() {
			want = 100
		}
		if i < len(phases)-1 {
			assert.Equal(t, want, lengths[i], "phase #%d (%s) length", i, p)
		}
	}

	// 10000 frames = 11 full phases of 900-frame half cycles
	assert.Len(t, phases, 23)
	assert.Equal(t, 11, picks)
}

func TestMachine_CrossfadeMovesTowardsIncoming(t *testing.T) {
	t.Parallel()

	buf := rampBuffer(t, 20000)
	c := NewCursor()
	c.A = 1000

	m := Machine{}
	m.Apply(Settings{SliceSize: 300, Overlap: 100, CrossFade: CrossFadeLinear})
	m.Reset()

	pick := func(float64) float64 { return 10000 }

	// play A for 100 frames
	for range 100 {
		m.Step(&c, buf, pick)
	}
	require.Equal(t, PlayA, m.Phase)
	assert.Equal(t, 1100.0, c.A)

	var last Frame
	for i := range 100 {
		last = m.Step(&c, buf, pick)
		require.Equal(t, FadeAToB, m.Phase, "frame %d", i)
	}

	// last fade frame is fully stream B
	assert.InDelta(t, 1.0, m.Ratio, 1e-9)
	assert.Equal(t, 10100.0, c.B)
	assert.InDelta(t, buf.SampleAt(c.B)[0], last[0], 1e-6)

	m.Step(&c, buf, pick)
	assert.Equal(t, PlayB, m.Phase)
}

func TestMachine_CommitsOnlyWhenFadeBegins(t *testing.T) {
	t.Parallel()

	buf := rampBuffer(t, 20000)
	c := NewCursor()

	m := Machine{}
	m.Apply(Settings{SliceSize: 1000, Overlap: 100, CrossFade: CrossFadeNone})
	m.Reset()

	var commits int
	m.OnCommit = func(prev, next Settings) {
		commits++
		assert.Equal(t, 1000, prev.SliceSize)
		assert.Equal(t, 2000, next.SliceSize)
	}

	pick := func(float64) float64 { return 5000 }

	for range 10 {
		m.Step(&c, buf, pick)
	}
	m.Stage(Settings{SliceSize: 2000, Overlap: 200, CrossFade: CrossFadeSine})

	for range 789 {
		m.Step(&c, buf, pick)
	}
	assert.Equal(t, 1000, m.Active.SliceSize, "committed during play")

	m.Step(&c, buf, pick) // 800th play frame
	assert.Equal(t, PlayA, m.Phase)
	assert.Equal(t, 1000, m.Active.SliceSize)

	m.Step(&c, buf, pick) // first fade frame
	assert.Equal(t, FadeAToB, m.Phase)
	assert.Equal(t, Settings{SliceSize: 2000, Overlap: 200, CrossFade: CrossFadeSine}, m.Active)
	assert.Equal(t, 199, m.Countdown)
	assert.Equal(t, 1, commits)

	// the new geometry drives the following phases
	for range 199 {
		m.Step(&c, buf, pick)
	}
	m.Step(&c, buf, pick)
	assert.Equal(t, PlayB, m.Phase)
	assert.Equal(t, 1599, m.Countdown)
}

func TestMachine_ZeroOverlapSkipsFade(t *testing.T) {
	t.Parallel()

	buf := rampBuffer(t, 20000)
	c := NewCursor()

	m := Machine{}
	m.Apply(Settings{SliceSize: 10, Overlap: 0})
	m.Reset()

	picks := 0
	pick := func(float64) float64 {
		picks++
		return 3000
	}

	for range 10 {
		m.Step(&c, buf, pick)
		require.Equal(t, PlayA, m.Phase)
	}

	m.Step(&c, buf, pick)
	assert.Equal(t, PlayB, m.Phase)
	assert.Equal(t, 1, picks)
	assert.Equal(t, 3001.0, c.B)
}

func TestMachine_InvalidSettingsAreSilent(t *testing.T) {
	t.Parallel()

	buf := rampBuffer(t, 100)
	c := NewCursor()
	m := Machine{}

	got := m.Step(&c, buf, func(float64) float64 { return 0 })
	assert.Equal(t, Frame{}, got)
}

func TestMachine_Remaining(t *testing.T) {
	t.Parallel()

	active := Settings{SliceSize: 1000, Overlap: 100}

	tests := []struct {
		phase     Phase
		countdown int
		fadeOut   int
		wantA     int
		wantB     int
	}{
		{PlayA, 800, 100, 900, 0},
		{PlayA, 0, 250, 250, 0},
		{FadeAToB, 40, 100, 40, 940},
		{PlayB, 300, 50, 0, 350},
		{FadeBToA, 100, 100, 1000, 100},
	}

	for _, tt := range tests {
		m := Machine{Phase: tt.phase, Countdown: tt.countdown}
		m.Apply(active)

		a, b := m.Remaining(tt.fadeOut)
		assert.Equal(t, tt.wantA, a, "%s countdown %d", tt.phase, tt.countdown)
		assert.Equal(t, tt.wantB, b, "%s countdown %d", tt.phase, tt.countdown)
	}
}
