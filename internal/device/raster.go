package device

import (
	"fmt"
	"time"
)

const (
	// LinesPerFrame and FrameRate describe a PAL machine.
	LinesPerFrame = 312
	FrameRate     = 50

	// FrameDuration is one PAL frame.
	FrameDuration = time.Second / FrameRate

	// BottomBorderLine is the first raster line of the lower border.
	BottomBorderLine = 250
)

// Raster is the beam position counter and its compare interrupt.
type Raster struct {
	line    int
	compare int
	handler func()

	frames    uint64
	fired     uint64
	depth     int
	reentries uint64
}

// NewRaster returns a raster that interrupts at compare.
func NewRaster(compare int) *Raster {
	r := &Raster{}
	if err := r.SetCompareLine(compare); err != nil {
		panic(err)
	}
	return r
}

// SetCompareLine selects the line at which the handler fires.
func (r *Raster) SetCompareLine(line int) error {
	if line < 0 || line >= LinesPerFrame {
		return fmt.Errorf("raster line %d outside 0..%d", line, LinesPerFrame-1)
	}
	r.compare = line
	return nil
}

// CompareLine returns the configured interrupt line.
func (r *Raster) CompareLine() int { return r.compare }

// OnCompare registers the interrupt handler, replacing any previous one.
func (r *Raster) OnCompare(h func()) { r.handler = h }

// StepFrame runs the beam over a whole frame, firing the handler once.
func (r *Raster) StepFrame() {
	for r.line = 0; r.line < LinesPerFrame; r.line++ {
		if r.line == r.compare {
			r.Fire()
		}
	}
	r.line = 0
	r.frames++
}

// Fire enters the handler as the interrupt would. A handler that runs past
// the next compare may be entered again before it returns; Fire counts that.
func (r *Raster) Fire() {
	if r.handler == nil {
		return
	}
	if r.depth > 0 {
		r.reentries++
	}
	r.depth++
	r.fired++
	r.handler()
	r.depth--
}

// Line returns the current beam line.
func (r *Raster) Line() int { return r.line }

func (r *Raster) Frames() uint64    { return r.frames }
func (r *Raster) Fired() uint64     { return r.fired }
func (r *Raster) Reentries() uint64 { return r.reentries }
