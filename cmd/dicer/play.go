// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"log"
	"os"

	"golang.org/x/term"

	"github.com/ik5/audiodicer/dicer"
	"github.com/ik5/audiodicer/internal/config"
	"github.com/ik5/audiodicer/playback"
)

type player interface {
	Start()
	Stop()
	Close() error
}

func newPlayer(g *playback.Guard, cfg config.Config, sampleRate int) (player, error) {
	if cfg.Backend == config.BackendBeep {
		return playback.NewSpeakerPlayer(playback.NewStreamer(g, sampleRate), cfg.Latency)
	}
	return playback.NewOtoPlayer(sampleRate, g)
}

func play(e *dicer.Engine, cfg config.Config) error {
	g := playback.NewGuard(e)

	p, err := newPlayer(g, cfg, e.SampleRate())
	if err != nil {
		return err
	}
	defer p.Close()

	p.Start()
	defer p.Stop()

	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		log.Printf("playing %s, interrupt to stop", cfg.Input)
		<-interrupted()
		return nil
	}

	return keyLoop(fd, g, &controls{speed: cfg.Speed, volume: cfg.Volume, pan: cfg.Pan})
}

// keyLoop reads single key presses from the raw terminal until quit.
func keyLoop(fd int, g *playback.Guard, c *controls) error {
	old, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("raw terminal: %w", err)
	}
	defer term.Restore(fd, old)

	// raw mode needs explicit carriage returns
	fmt.Print(keyHelp + "\r\n")

	buf := make([]byte, 1)
	for {
		n, err := os.Stdin.Read(buf)
		if err != nil {
			return err
		}
		if n == 0 {
			continue
		}

		var (
			msg  string
			quit bool
		)
		err = g.Do(func(e *dicer.Engine) error {
			var kerr error
			msg, quit, kerr = c.handleKey(e, buf[0])
			return kerr
		})
		if quit {
			return nil
		}
		if err != nil {
			msg = err.Error()
		}
		fmt.Print(msg + "\r\n")
	}
}
