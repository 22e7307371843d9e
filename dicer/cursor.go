// SPDX-License-Identifier: EPL-2.0

package dicer

// Cursor holds the per-frame playback state: the read position of both
// streams and the smoothed speed, volume and pan.
type Cursor struct {
	A, B float64

	Speed  Smoother // [0.25, 4]
	Volume Smoother // [0, 1]
	Pan    Smoother // [-1, 1]
}

// NewCursor returns a cursor at unity speed and volume, centred.
func NewCursor() Cursor {
	var c Cursor
	c.Speed.Set(1)
	c.Volume.Set(1)
	c.Pan.Set(0)
	return c
}

// Advance steps every ramp once. Called once per produced frame.
func (c *Cursor) Advance() {
	c.Speed.Advance()
	c.Volume.Advance()
	c.Pan.Advance()
}

// Settle finishes all ramps.
func (c *Cursor) Settle() {
	c.Speed.Finish()
	c.Volume.Finish()
	c.Pan.Finish()
}
