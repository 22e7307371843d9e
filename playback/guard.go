// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"sync"

	"github.com/ik5/audiodicer/dicer"
)

// Guard makes an engine shareable between an audio callback and control
// code. While the engine is stopped, reads yield silence instead of an
// error so device players keep running.
type Guard struct {
	mu     sync.Mutex
	engine *dicer.Engine
}

// NewGuard wraps e. The engine must not be used directly afterwards.
func NewGuard(e *dicer.Engine) *Guard {
	return &Guard{engine: e}
}

// Read produces little-endian int16 stereo PCM, see dicer.Engine.Read.
func (g *Guard) Read(p []byte) (int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.engine.IsRunning() {
		clear(p)
		return len(p), nil
	}
	return g.engine.Read(p)
}

// ReadFrames produces normalized frames.
func (g *Guard) ReadFrames(dst []dicer.Frame) int {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.engine.IsRunning() {
		clear(dst)
		return len(dst)
	}
	n, _ := g.engine.ReadFrames(dst)
	return n
}

// Do runs fn with exclusive access to the engine.
func (g *Guard) Do(fn func(e *dicer.Engine) error) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	return fn(g.engine)
}
