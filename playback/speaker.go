//go:build !headless

// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep/v2/speaker"
)

// SpeakerPlayer plays a Streamer through beep's speaker. The speaker is a
// process-wide device, so only one SpeakerPlayer should exist at a time.
type SpeakerPlayer struct {
	src     *Streamer
	started bool
	mutex   sync.Mutex
}

// NewSpeakerPlayer opens the speaker with a buffer of the given latency.
func NewSpeakerPlayer(src *Streamer, latency time.Duration) (*SpeakerPlayer, error) {
	format := src.Format()
	if err := speaker.Init(format.SampleRate, src.BufferSize(latency)); err != nil {
		return nil, fmt.Errorf("speaker init: %w", err)
	}
	return &SpeakerPlayer{src: src}, nil
}

// Start hands the streamer to the speaker. It is a no-op while playing.
func (sp *SpeakerPlayer) Start() {
	sp.mutex.Lock()
	defer sp.mutex.Unlock()

	if sp.started {
		return
	}
	speaker.Play(sp.src)
	sp.started = true
}

// Stop removes the streamer from the speaker.
func (sp *SpeakerPlayer) Stop() {
	sp.mutex.Lock()
	defer sp.mutex.Unlock()

	speaker.Clear()
	sp.started = false
}

// Close stops playback and shuts the speaker down.
func (sp *SpeakerPlayer) Close() error {
	sp.Stop()
	speaker.Close()
	return nil
}

// IsStarted reports whether the streamer is on the speaker.
func (sp *SpeakerPlayer) IsStarted() bool {
	sp.mutex.Lock()
	defer sp.mutex.Unlock()

	return sp.started
}
