package machine

import (
	"testing"

	"eight-way-tiles/internal/coords"
	"eight-way-tiles/internal/device"
	"eight-way-tiles/internal/input"
	"eight-way-tiles/internal/viewport"
	"eight-way-tiles/internal/world"
)

func newTestMachine(t *testing.T, cfg Config, joy input.Joystick) *Machine {
	t.Helper()
	m, err := New(cfg, world.Default(), joy)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return m
}

func TestConfigDefaults(t *testing.T) {
	var c Config
	c.Defaults()
	if c.RasterLine != device.BottomBorderLine || c.Budget != device.FrameDuration {
		t.Errorf("defaults = %+v", c)
	}
}

func TestNewRejectsBadRasterLine(t *testing.T) {
	for _, line := range []int{-1, device.LinesPerFrame} {
		if _, err := New(Config{RasterLine: line}, world.Default(), input.Fixed(input.Released)); err == nil {
			t.Errorf("raster line %d accepted", line)
		}
	}
}

func TestConfigRasterLine(t *testing.T) {
	tests := []struct {
		line, want int
	}{
		{0, device.BottomBorderLine},
		{1, 1},
		{100, 100},
		{device.LinesPerFrame - 1, device.LinesPerFrame - 1},
	}
	for _, tt := range tests {
		m := newTestMachine(t, Config{RasterLine: tt.line}, input.Fixed(input.Released))
		if got := m.sim.Raster.CompareLine(); got != tt.want {
			t.Errorf("RasterLine %d: compare line = %d, want %d", tt.line, got, tt.want)
		}
	}
}

func TestStepFrameOneCellPerFrame(t *testing.T) {
	route, err := input.ParseRoute("DR10 W5 L3")
	if err != nil {
		t.Fatal(err)
	}
	m := newTestMachine(t, Config{}, route)
	for i := 0; i < route.Frames(); i++ {
		m.StepFrame()
	}
	if got, want := m.View(), (viewport.View{X: 7, Y: 10}); got != want {
		t.Errorf("view = %+v, want %+v", got, want)
	}
	f := m.Snapshot()
	if f.Count != uint64(route.Frames()) || f.IRQ.Runs != f.Count || f.IRQ.Steps != 13 {
		t.Errorf("frame %d irq %+v", f.Count, f.IRQ)
	}
	w := world.Default()
	if got, want := f.Screen[0][0], coords.CharAtWorld(w, 7, 10); got != want {
		t.Errorf("top-left = %d, want %d", got, want)
	}
}

func TestStepFrameAtWorldEdgeIsClamped(t *testing.T) {
	m := newTestMachine(t, Config{}, input.Fixed(input.MakePort(true, false, true, false, false)))
	sum := m.Checksum()
	for i := 0; i < 10; i++ {
		m.StepFrame()
	}
	if m.View() != (viewport.View{}) || m.Checksum() != sum {
		t.Errorf("machine moved past the top-left corner: %+v", m.View())
	}
	if st := m.Snapshot().IRQ; st.Clamped != 10 {
		t.Errorf("Clamped = %d, want 10", st.Clamped)
	}
}

func TestStartViewAndRasterDebug(t *testing.T) {
	m := newTestMachine(t, Config{Start: viewport.View{X: 20, Y: 5}, RasterDebug: true}, input.Fixed(input.MakePort(false, false, false, true, false)))
	m.StepFrame()
	f := m.Snapshot()
	if f.View != (viewport.View{X: 21, Y: 5}) {
		t.Errorf("view = %+v", f.View)
	}
	if f.Border != device.Black {
		t.Errorf("border after handler = %v, want black", f.Border)
	}
	m.SetRasterDebug(false)
	if m.RasterDebug() {
		t.Error("raster debug still on")
	}
}

func TestChecksumTracksScreen(t *testing.T) {
	m := newTestMachine(t, Config{}, input.Fixed(input.Released))
	a := m.Checksum()
	m.Jump(viewport.View{X: 30, Y: 30})
	if m.Checksum() == a {
		t.Error("checksum unchanged after moving the view")
	}
	m.Jump(viewport.View{})
	if m.Checksum() != a {
		t.Error("checksum differs for the same view")
	}
}
