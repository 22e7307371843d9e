// SPDX-License-Identifier: EPL-2.0

package dicer

import (
	"fmt"
	"io"
	"log"
	"math"
	"math/rand/v2"

	"github.com/ik5/audiodicer/utils"
)

const (
	// BytesPerFrame is the size of one produced frame: two little-endian int16.
	BytesPerFrame = 4

	MinSpeed = 0.25
	MaxSpeed = 4.0

	// DefaultCombFilterMillis is DefaultCombFilterDelay in milliseconds.
	DefaultCombFilterMillis = 30

	DefaultSliceSize = DefaultSampleRate / 2
	DefaultOverlap   = DefaultSampleRate / 20
)

// Engine re-sequences a loaded buffer into an endless stream of crossfaded
// random slices.
//
// An Engine has no internal locking. Setters and the producing methods must
// be called from one goroutine, or serialized by the caller.
type Engine struct {
	buf     *Buffer
	sampler Sampler
	cursor  Cursor
	machine Machine
	pick    Picker

	padding    int
	paddingSet bool
	interp     Interpolation
	panLaw     bool
	rng        Rand
	log        *log.Logger

	running bool
}

// New creates a stopped engine with no audio.
func New(opts ...Option) *Engine {
	e := &Engine{
		cursor:  NewCursor(),
		padding: combPadding(DefaultSampleRate),
		log:     log.New(io.Discard, "", 0),
	}
	e.machine.Apply(Settings{
		SliceSize: DefaultSliceSize,
		Overlap:   DefaultOverlap,
		CrossFade: CrossFadeLinear,
	})

	for _, opt := range opts {
		opt(e)
	}

	if e.rng == nil {
		e.rng = NewRand(rand.Uint64())
	}
	e.pick = e.pickStart
	e.machine.OnCommit = func(prev, next Settings) {
		e.log.Printf("dicing settings applied: slice %d overlap %d %s (was slice %d overlap %d %s)",
			next.SliceSize, next.Overlap, next.CrossFade, prev.SliceSize, prev.Overlap, prev.CrossFade)
	}

	return e
}

// Start arms the cursor and state machine from the current settings.
// Calling Start on a running engine re-arms it.
func (e *Engine) Start() error {
	if e.buf == nil || e.buf.Frames() < 2 {
		return ErrNoAudio
	}

	s := e.machine.Staged
	if !s.Valid() {
		return fmt.Errorf("%w: overlap %d does not fit twice in slice %d",
			ErrSliceSizeRejected, s.Overlap, s.SliceSize)
	}

	e.cursor.Settle()
	if !e.fits(s.SliceSize, e.cursor.Speed.Value) {
		return fmt.Errorf("%w: slice %d at speed %.2f is too long for %d frames",
			ErrSliceSizeRejected, s.SliceSize, e.cursor.Speed.Value, e.buf.Frames())
	}

	e.machine.Apply(s)
	e.machine.Reset()

	start := e.pick(float64(e.buf.Frames() - 1))
	e.cursor.A, e.cursor.B = start, start
	e.running = true

	return nil
}

// Stop disarms the engine. Buffer and settings are kept.
func (e *Engine) Stop() { e.running = false }

// IsRunning reports whether Start succeeded and Stop has not been called since.
func (e *Engine) IsRunning() bool { return e.running }

// Read fills p with len(p)/4 stereo frames of little-endian int16 PCM and
// returns the number of bytes written. It fails with ErrNotRunning before
// Start, without touching any state.
func (e *Engine) Read(p []byte) (int, error) {
	if !e.running {
		return 0, ErrNotRunning
	}

	frames := len(p) / BytesPerFrame
	if frames == 0 {
		if len(p) == 0 {
			return 0, nil
		}
		return 0, ErrShortBuffer
	}

	for i := range frames {
		f := e.next()
		utils.PutFrame16LE(p[i*BytesPerFrame:], f[0], f[1])
	}

	return frames * BytesPerFrame, nil
}

// Produce returns frames stereo frames as little-endian int16 PCM.
func (e *Engine) Produce(frames int) ([]byte, error) {
	if !e.running {
		return nil, ErrNotRunning
	}

	p := make([]byte, max(frames, 0)*BytesPerFrame)
	n, err := e.Read(p)
	return p[:n], err
}

// ReadFrames fills dst with normalized frames.
func (e *Engine) ReadFrames(dst []Frame) (int, error) {
	if !e.running {
		return 0, ErrNotRunning
	}

	for i := range dst {
		dst[i] = e.next()
	}
	return len(dst), nil
}

func (e *Engine) next() Frame {
	e.cursor.Advance()
	f := e.machine.Step(&e.cursor, e.sampler, e.pick)

	vol := float32(e.cursor.Volume.Value)
	f[0] *= vol
	f[1] *= vol

	if e.panLaw {
		l, r := panGains(e.cursor.Pan.Value)
		f[0] *= l
		f[1] *= r
	}

	return f
}

// panGains is a constant-power pan normalized to unity at the centre.
func panGains(pan float64) (float32, float32) {
	theta := (pan + 1) * math.Pi / 4
	return float32(min(math.Sqrt2*math.Cos(theta), 1)), float32(min(math.Sqrt2*math.Sin(theta), 1))
}

func (e *Engine) pickStart(anchor float64) float64 {
	return float64(Pick(e.rng, int(anchor), e.window()))
}

func (e *Engine) window() Window {
	return Window{
		Frames:      e.buf.Frames(),
		SliceSize:   e.machine.Active.SliceSize,
		Padding:     e.padding,
		Speed:       e.cursor.Speed.Value,
		TargetSpeed: e.cursor.Speed.Target(),
	}
}

// State is a snapshot of the engine for diagnostics and tests.
type State struct {
	Running   bool
	Phase     Phase
	Countdown int
	Ratio     float64
	A, B      float64
	Active    Settings
	Pending   Settings
}

// State captures the machine and cursor as they stand.
func (e *Engine) State() State {
	return State{
		Running:   e.running,
		Phase:     e.machine.Phase,
		Countdown: e.machine.Countdown,
		Ratio:     e.machine.Ratio,
		A:         e.cursor.A,
		B:         e.cursor.B,
		Active:    e.machine.Active,
		Pending:   e.machine.Staged,
	}
}

// Frames is the loaded buffer length, 0 when nothing is loaded.
func (e *Engine) Frames() int {
	if e.buf == nil {
		return 0
	}
	return e.buf.Frames()
}

// SampleRate of the loaded buffer, or DefaultSampleRate.
func (e *Engine) SampleRate() int {
	if e.buf == nil {
		return DefaultSampleRate
	}
	return e.buf.SampleRate
}
