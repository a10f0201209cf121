package irq

import (
	"time"

	"eight-way-tiles/internal/device"
)

// Scroller applies one scroll step.
type Scroller interface {
	RequestScroll(dx, dy int) bool
}

// Border is the border colour register.
type Border interface {
	SetBorder(device.Color)
}

// Stats counts handler activity.
type Stats struct {
	Runs     uint64        // handler entries
	Steps    uint64        // steps the viewport accepted
	Clamped  uint64        // non-zero requests the viewport dropped
	Overruns uint64        // runs longer than the frame budget
	Longest  time.Duration // slowest run
}

// Trigger is the raster interrupt handler that drains the mailbox into the
// viewport.
type Trigger struct {
	mb     *Mailbox
	scroll Scroller
	border Border

	// Budget is the time a run may take before it counts as an overrun.
	// Zero disables the check.
	Budget time.Duration

	// RasterDebug paints the border white while the handler runs and black
	// once it returns.
	RasterDebug bool

	now   func() time.Time
	stats Stats
}

// NewTrigger returns a handler for mb and scroll. border may be nil.
func NewTrigger(mb *Mailbox, scroll Scroller, border Border) *Trigger {
	return &Trigger{
		mb:     mb,
		scroll: scroll,
		border: border,
		Budget: device.FrameDuration,
		now:    time.Now,
	}
}

// Handle runs one interrupt. The pending delta is taken, which clears it,
// before the viewport is touched; a re-entered handler therefore sees an
// empty mailbox unless the main loop has posted again in between.
func (t *Trigger) Handle() {
	start := t.now()
	t.stats.Runs++
	t.paint(device.White)

	if d := t.mb.Take(); !d.Zero() {
		if t.scroll.RequestScroll(int(d.DX), int(d.DY)) {
			t.stats.Steps++
		} else {
			t.stats.Clamped++
		}
	}

	t.paint(device.Black)

	elapsed := t.now().Sub(start)
	if elapsed > t.stats.Longest {
		t.stats.Longest = elapsed
	}
	if t.Budget > 0 && elapsed > t.Budget {
		t.stats.Overruns++
	}
}

// Stats returns a copy of the counters.
func (t *Trigger) Stats() Stats { return t.stats }

func (t *Trigger) paint(c device.Color) {
	if t.RasterDebug && t.border != nil {
		t.border.SetBorder(c)
	}
}
