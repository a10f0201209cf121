// Package irq connects the main loop to the raster interrupt: the main loop
// posts a scroll request into a one-slot mailbox and the interrupt handler
// takes it once per frame.
package irq

// Delta is a requested view motion, each axis in -1..1.
type Delta struct {
	DX, DY int8
}

// Zero reports whether d requests no motion.
func (d Delta) Zero() bool { return d.DX == 0 && d.DY == 0 }

// Mailbox holds at most one pending Delta. Post overwrites an unconsumed
// value; Take reads and clears in one step, so a request is applied at
// most once however often the handler runs.
type Mailbox struct {
	slot chan Delta
}

func NewMailbox() *Mailbox {
	return &Mailbox{slot: make(chan Delta, 1)}
}

// Post replaces the pending delta with d. It never blocks. Intended for a
// single writer.
func (m *Mailbox) Post(d Delta) {
	for {
		select {
		case m.slot <- d:
			return
		default:
		}
		// Slot is full: drop the stale request and retry.
		select {
		case <-m.slot:
		default:
		}
	}
}

// Take returns the pending delta and empties the slot. An empty slot
// yields the zero Delta.
func (m *Mailbox) Take() Delta {
	select {
	case d := <-m.slot:
		return d
	default:
		return Delta{}
	}
}
