// Package input samples a digital joystick and turns it into scroll
// requests for the raster handler.
package input

import "eight-way-tiles/internal/irq"

// Bit positions in the joystick port. A pressed switch reads as 0.
const (
	BitUp = iota
	BitDown
	BitLeft
	BitRight
	BitFire
)

// Port is a raw joystick port value.
type Port uint8

// Released is the port with nothing pressed.
const Released Port = 0xFF

// MakePort builds the port value for the given switch states.
func MakePort(up, down, left, right, fire bool) Port {
	p := Released
	for bit, pressed := range [...]bool{up, down, left, right, fire} {
		if pressed {
			p &^= 1 << bit
		}
	}
	return p
}

func (p Port) pressed(bit int) bool { return p&(1<<bit) == 0 }

func (p Port) Up() bool    { return p.pressed(BitUp) }
func (p Port) Down() bool  { return p.pressed(BitDown) }
func (p Port) Left() bool  { return p.pressed(BitLeft) }
func (p Port) Right() bool { return p.pressed(BitRight) }
func (p Port) Fire() bool  { return p.pressed(BitFire) }

// Joystick is a polled input device.
type Joystick interface {
	Read() Port
}

// ToDelta converts a port reading into a view motion. Up wins over down
// and left wins over right when both are closed.
func ToDelta(p Port) irq.Delta {
	var d irq.Delta
	switch {
	case p.Up():
		d.DY = -1
	case p.Down():
		d.DY = 1
	}
	switch {
	case p.Left():
		d.DX = -1
	case p.Right():
		d.DX = 1
	}
	return d
}

// Sampler is the main loop's side of the mailbox.
type Sampler struct {
	joy Joystick
	mb  *irq.Mailbox
}

func NewSampler(joy Joystick, mb *irq.Mailbox) *Sampler {
	return &Sampler{joy: joy, mb: mb}
}

// Poll reads the joystick once and posts the result, replacing whatever
// the handler has not consumed yet. A released stick posts a zero delta.
func (s *Sampler) Poll() irq.Delta {
	d := ToDelta(s.joy.Read())
	s.mb.Post(d)
	return d
}

// Fixed is a joystick held in one position.
type Fixed Port

func (f Fixed) Read() Port { return Port(f) }
