//go:build !headless

// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"io"
	"sync"

	"github.com/ebitengine/oto/v3"
)

// OtoPlayer plays int16 stereo PCM from a reader on the default device.
type OtoPlayer struct {
	ctx     *oto.Context
	player  *oto.Player
	src     io.Reader
	started bool
	mutex   sync.Mutex
}

// NewOtoPlayer opens the audio device at sampleRate. Only one oto context
// may exist per process.
func NewOtoPlayer(sampleRate int, src io.Reader) (*OtoPlayer, error) {
	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 2,
		Format:       oto.FormatSignedInt16LE,
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, err
	}
	<-ready

	return &OtoPlayer{ctx: ctx, src: src}, nil
}

// Start creates the oto player on first use and plays it.
func (op *OtoPlayer) Start() {
	op.mutex.Lock()
	defer op.mutex.Unlock()

	if op.started {
		return
	}
	if op.player == nil {
		op.player = op.ctx.NewPlayer(op.src)
	}
	op.player.Play()
	op.started = true
}

// Stop pauses output; Start resumes it.
func (op *OtoPlayer) Stop() {
	op.mutex.Lock()
	defer op.mutex.Unlock()

	if op.started && op.player != nil {
		op.player.Pause()
		op.started = false
	}
}

// Close releases the oto player. The context stays alive for the process.
func (op *OtoPlayer) Close() error {
	op.mutex.Lock()
	defer op.mutex.Unlock()

	op.started = false
	if op.player == nil {
		return nil
	}
	err := op.player.Close()
	op.player = nil
	return err
}

// IsStarted reports whether output is playing.
func (op *OtoPlayer) IsStarted() bool {
	op.mutex.Lock()
	defer op.mutex.Unlock()
	return op.started
}
