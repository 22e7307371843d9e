// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"

	"github.com/ik5/audiodicer/dicer"
)

const keyHelp = `keys: +/- volume  [/] speed  ,/. pan  </> slice  c crossfade  space start/stop  q quit`

// controls tracks the values the user asked for. The engine ramps towards
// them, so stepping from the engine's current value would lag behind.
type controls struct {
	speed  float64
	volume float64
	pan    float64
}

// handleKey applies one key press to e and describes the result. quit is
// set for q, Q and Ctrl-C.
func (c *controls) handleKey(e *dicer.Engine, key byte) (msg string, quit bool, err error) {
	switch key {
	case 'q', 'Q', 0x03:
		return "", true, nil

	case '+', '=':
		c.volume = min(c.volume+0.1, 1)
		e.SetVolume(c.volume)
		return fmt.Sprintf("volume %.1f", c.volume), false, nil
	case '-', '_':
		c.volume = max(c.volume-0.1, 0)
		e.SetVolume(c.volume)
		return fmt.Sprintf("volume %.1f", c.volume), false, nil

	case ']':
		return c.setSpeed(e, c.speed+0.1)
	case '[':
		return c.setSpeed(e, c.speed-0.1)

	case '.':
		c.pan = min(c.pan+0.1, 1)
		e.SetPan(c.pan)
		return fmt.Sprintf("pan %+.1f", c.pan), false, nil
	case ',':
		c.pan = max(c.pan-0.1, -1)
		e.SetPan(c.pan)
		return fmt.Sprintf("pan %+.1f", c.pan), false, nil

	case '>':
		return setSlice(e, e.Pending().SliceSize*5/4)
	case '<':
		return setSlice(e, e.Pending().SliceSize*4/5)

	case 'c':
		next := (e.Pending().CrossFade + 1) % (dicer.CrossFadeSine + 1)
		if err := e.SetCrossFadeMode(next); err != nil {
			return "", false, err
		}
		return "crossfade " + next.String(), false, nil

	case ' ':
		if e.IsRunning() {
			e.Stop()
			return "stopped", false, nil
		}
		if err := e.Start(); err != nil {
			return "", false, err
		}
		return "started", false, nil
	}

	return keyHelp, false, nil
}

func (c *controls) setSpeed(e *dicer.Engine, v float64) (string, bool, error) {
	v = min(max(v, dicer.MinSpeed), dicer.MaxSpeed)
	if err := e.SetSpeed(v); err != nil {
		return "", false, err
	}
	c.speed = v
	return fmt.Sprintf("speed %.2f", v), false, nil
}

// setSlice keeps the overlap at the same share of the slice.
func setSlice(e *dicer.Engine, frames int) (string, bool, error) {
	cur := e.Pending()
	overlap := cur.Overlap
	if cur.SliceSize > 0 {
		overlap = cur.Overlap * frames / cur.SliceSize
	}

	if frames < cur.SliceSize {
		// shrink the overlap first so the pair stays valid
		if err := e.SetOverlap(overlap); err != nil {
			return "", false, err
		}
		if err := e.SetSliceSize(frames); err != nil {
			return "", false, err
		}
	} else {
		if err := e.SetSliceSize(frames); err != nil {
			return "", false, err
		}
		if err := e.SetOverlap(overlap); err != nil {
			return "", false, err
		}
	}

	return fmt.Sprintf("slice %d overlap %d (next crossfade)", frames, overlap), false, nil
}
