//go:build headless

// SPDX-License-Identifier: EPL-2.0

package playback

import "time"

// SpeakerPlayer is a stand-in for builds without an audio device.
type SpeakerPlayer struct {
	started bool
}

func NewSpeakerPlayer(src *Streamer, latency time.Duration) (*SpeakerPlayer, error) {
	return &SpeakerPlayer{}, nil
}

func (sp *SpeakerPlayer) Start()          { sp.started = true }
func (sp *SpeakerPlayer) Stop()           { sp.started = false }
func (sp *SpeakerPlayer) Close() error    { sp.started = false; return nil }
func (sp *SpeakerPlayer) IsStarted() bool { return sp.started }
