// Package machine assembles one running demo: simulated video device,
// viewport, mailbox, raster handler and joystick sampler. Loop drives many
// machines at the PAL frame rate for network sessions.
package machine

import (
	"fmt"
	"hash/crc32"
	"log"

	"eight-way-tiles/internal/coords"
	"eight-way-tiles/internal/device"
	"eight-way-tiles/internal/input"
	"eight-way-tiles/internal/irq"
	"eight-way-tiles/internal/viewport"
)

// Frame is a copy of everything a renderer needs after one frame.
type Frame struct {
	Screen device.Screen
	Scroll device.ScrollRegister
	Border device.Color
	View   viewport.View
	Count  uint64 // frames since power-on
	IRQ    irq.Stats
}

// Machine is one demo instance.
type Machine struct {
	cfg     Config
	sim     *device.Sim
	vp      *viewport.Viewport
	trigger *irq.Trigger
	sampler *input.Sampler

	overruns uint64
}

// New powers on a machine showing tiles and reading joy.
func New(cfg Config, tiles coords.Tiles, joy input.Joystick) (*Machine, error) {
	cfg.Defaults()

	sim := device.NewSim()
	if err := sim.Raster.SetCompareLine(cfg.RasterLine); err != nil {
		return nil, fmt.Errorf("configure raster: %w", err)
	}

	vp := viewport.New(sim, tiles)
	if cfg.Start != (viewport.View{}) {
		vp.Jump(cfg.Start)
	}

	mb := irq.NewMailbox()
	trig := irq.NewTrigger(mb, vp, sim)
	trig.Budget = cfg.Budget
	sim.Raster.OnCompare(trig.Handle)

	m := &Machine{
		cfg:     cfg,
		sim:     sim,
		vp:      vp,
		trigger: trig,
		sampler: input.NewSampler(joy, mb),
	}
	m.SetRasterDebug(cfg.RasterDebug)
	return m, nil
}

// StepFrame runs one main-loop iteration followed by one video frame.
func (m *Machine) StepFrame() {
	m.sampler.Poll()
	m.sim.Raster.StepFrame()

	if st := m.trigger.Stats(); st.Overruns != m.overruns {
		m.overruns = st.Overruns
		log.Printf("raster handler overran the frame (%d total, longest %s)", st.Overruns, st.Longest)
	}
}

// SetRasterDebug toggles border colouring by handler phase.
func (m *Machine) SetRasterDebug(on bool) {
	m.cfg.RasterDebug = on
	m.vp.RasterDebug = on
	m.trigger.RasterDebug = on
	if !on {
		m.sim.SetBorder(device.Black)
	}
}

func (m *Machine) RasterDebug() bool { return m.cfg.RasterDebug }

// Jump moves the view directly, bypassing the mailbox.
func (m *Machine) Jump(v viewport.View) { m.vp.Jump(v) }

func (m *Machine) View() viewport.View { return m.vp.View() }

// Snapshot copies the current display state.
func (m *Machine) Snapshot() Frame {
	return Frame{
		Screen: *m.sim.Screen(),
		Scroll: m.sim.Scroll(),
		Border: m.sim.Border(),
		View:   m.vp.View(),
		Count:  m.sim.Raster.Frames(),
		IRQ:    m.trigger.Stats(),
	}
}

// Checksum returns the CRC32 of the character matrix.
func (m *Machine) Checksum() uint32 {
	s := m.sim.Screen()
	h := crc32.NewIEEE()
	for row := range s {
		h.Write(s[row][:])
	}
	return h.Sum32()
}
