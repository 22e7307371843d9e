//go:build headless

// SPDX-License-Identifier: EPL-2.0

package playback

import "io"

// OtoPlayer is a stand-in for builds without an audio device.
type OtoPlayer struct {
	started bool
}

func NewOtoPlayer(sampleRate int, src io.Reader) (*OtoPlayer, error) {
	return &OtoPlayer{}, nil
}

func (op *OtoPlayer) Start()          { op.started = true }
func (op *OtoPlayer) Stop()           { op.started = false }
func (op *OtoPlayer) Close() error    { op.started = false; return nil }
func (op *OtoPlayer) IsStarted() bool { return op.started }
