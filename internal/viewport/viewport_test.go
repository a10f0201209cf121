package viewport

import (
	"math/rand"
	"testing"

	"eight-way-tiles/internal/coords"
	"eight-way-tiles/internal/device"
	"eight-way-tiles/internal/world"
)

func newTestViewport(t *testing.T) (*Viewport, *device.Sim, *world.Store) {
	t.Helper()
	sim := device.NewSim()
	w := world.Default()
	return New(sim, w), sim, w
}

func assertConsistent(t *testing.T, v *Viewport, sim *device.Sim) {
	t.Helper()
	want := v.Expected()
	if n := sim.Screen().Diff(&want); n != 0 {
		t.Fatalf("view %+v: %d cells differ from a full redraw", v.View(), n)
	}
}

func TestNewDrawsTopLeft(t *testing.T) {
	v, sim, w := newTestViewport(t)
	if v.View() != (View{}) {
		t.Fatalf("initial view = %+v", v.View())
	}
	if got, want := sim.Screen().At(24, 39), coords.CharAtWorld(w, 39, 24); got != want {
		t.Errorf("cell (24,39) = %d, want %d", got, want)
	}
	reg := sim.Scroll()
	if !reg.Columns38 || !reg.Rows24 {
		t.Errorf("register not in 38x24 mode: %+v", reg)
	}
	maxX, maxY := v.Extent()
	if maxX != 88 || maxY != 39 {
		t.Errorf("extent = %d,%d, want 88,39", maxX, maxY)
	}
	assertConsistent(t, v, sim)
}

func TestBoundaryRejectionHasNoSideEffects(t *testing.T) {
	tests := []struct {
		name   string
		start  View
		dx, dy int
	}{
		{"left edge", View{0, 10}, -1, 0},
		{"top edge", View{10, 0}, 0, -1},
		{"right edge", View{88, 10}, 1, 0},
		{"bottom edge", View{10, 39}, 0, 1},
		{"top-left corner diagonal", View{0, 0}, -1, -1},
		{"bottom-right corner diagonal", View{88, 39}, 1, 1},
		{"no motion", View{10, 10}, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, sim, _ := newTestViewport(t)
			v.RasterDebug = true
			v.Jump(tt.start)
			before := *sim.Screen()
			reg, scrollWrites, borderWrites := sim.Scroll(), sim.ScrollWrites(), sim.BorderWrites()
			charWrites := sim.CharWrites()

			if v.RequestScroll(tt.dx, tt.dy) {
				t.Fatal("RequestScroll reported a move")
			}
			if v.View() != tt.start {
				t.Errorf("view = %+v, want %+v", v.View(), tt.start)
			}
			if n := sim.Screen().Diff(&before); n != 0 {
				t.Errorf("%d screen cells changed", n)
			}
			if sim.Scroll() != reg || sim.ScrollWrites() != scrollWrites || sim.BorderWrites() != borderWrites {
				t.Error("hardware registers were written")
			}
			if sim.CharWrites() != charWrites {
				t.Errorf("%d characters written", sim.CharWrites()-charWrites)
			}
			if v.Stats().Rejected != 1 {
				t.Errorf("Rejected = %d", v.Stats().Rejected)
			}
		})
	}
}

func TestClampKeepsTheMovingAxis(t *testing.T) {
	v, sim, _ := newTestViewport(t)
	v.Jump(View{0, 10})
	if !v.RequestScroll(-1, 1) {
		t.Fatal("vertical part of the move was dropped")
	}
	if v.View() != (View{0, 11}) {
		t.Errorf("view = %+v, want {0 11}", v.View())
	}
	assertConsistent(t, v, sim)
}

func TestDiagonalStep(t *testing.T) {
	v, sim, w := newTestViewport(t)
	v.Jump(View{10, 10})
	before := *sim.Screen()
	cells := v.Stats().CellsDrawn

	if !v.RequestScroll(1, 1) {
		t.Fatal("step rejected")
	}
	if v.View() != (View{11, 11}) {
		t.Fatalf("view = %+v, want {11 11}", v.View())
	}
	s := sim.Screen()
	// Interior cells came from the shift, not a redraw.
	for row := 0; row < device.Rows-1; row++ {
		for col := 0; col < device.Columns-1; col++ {
			if s.At(row, col) != before.At(row+1, col+1) {
				t.Fatalf("cell (%d,%d) not shifted up-left", row, col)
			}
		}
	}
	if got, want := s.At(24, 39), coords.CharAtWorld(w, 11+39, 11+24); got != want {
		t.Errorf("corner = %d, want %d", got, want)
	}
	if got := v.Stats().CellsDrawn - cells; got != device.Rows+device.Columns {
		t.Errorf("redrew %d cells, want one row and one column", got)
	}
	assertConsistent(t, v, sim)
}

func TestStepUpdatesScrollRegister(t *testing.T) {
	v, sim, _ := newTestViewport(t)
	writes := sim.ScrollWrites()
	v.RequestScroll(1, 0)
	reg := sim.Scroll()
	if sim.ScrollWrites() != writes+1 {
		t.Errorf("scroll written %d times", sim.ScrollWrites()-writes)
	}
	if !reg.CoarseX || reg.CoarseY {
		t.Errorf("coarse bits = %v,%v after a horizontal step", reg.CoarseX, reg.CoarseY)
	}
	if reg.FineY != device.RestFineY || !reg.Columns38 || !reg.Rows24 {
		t.Errorf("step disturbed the register: %+v", reg)
	}
}

func TestEveryDirectionMatchesFullRedraw(t *testing.T) {
	for d := Up; d <= UpLeft; d++ {
		t.Run(d.String(), func(t *testing.T) {
			v, sim, _ := newTestViewport(t)
			v.Jump(View{40, 20})
			dx, dy := d.Delta()
			for i := 0; i < 5; i++ {
				if !v.RequestScroll(dx, dy) {
					t.Fatalf("step %d rejected", i)
				}
				assertConsistent(t, v, sim)
			}
			if want := (View{40 + 5*dx, 20 + 5*dy}); v.View() != want {
				t.Errorf("view = %+v, want %+v", v.View(), want)
			}
		})
	}
}

func TestRandomWalkStaysInBoundsAndConsistent(t *testing.T) {
	v, sim, _ := newTestViewport(t)
	maxX, maxY := v.Extent()
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 2000; i++ {
		v.RequestScroll(rng.Intn(3)-1, rng.Intn(3)-1)
		p := v.View()
		if p.X < 0 || p.X > maxX || p.Y < 0 || p.Y > maxY {
			t.Fatalf("step %d: view %+v out of bounds", i, p)
		}
		if v.State() != Idle {
			t.Fatalf("state %v after step", v.State())
		}
	}
	assertConsistent(t, v, sim)
}

func TestLargeDeltasMoveOneCell(t *testing.T) {
	v, _, _ := newTestViewport(t)
	v.Jump(View{87, 38})
	v.RequestScroll(5, 9)
	if v.View() != (View{88, 39}) {
		t.Errorf("view = %+v, want {88 39}", v.View())
	}
}

func TestJumpClamps(t *testing.T) {
	v, sim, _ := newTestViewport(t)
	v.Jump(View{500, -3})
	if v.View() != (View{88, 0}) {
		t.Errorf("view = %+v, want {88 0}", v.View())
	}
	assertConsistent(t, v, sim)
}

func TestStepWritesOnlyExposedEdges(t *testing.T) {
	tests := []struct {
		name   string
		dx, dy int
		want   int
	}{
		{"horizontal", 1, 0, device.Rows},
		{"vertical", 0, -1, device.Columns},
		{"diagonal", -1, 1, device.Rows + device.Columns},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, sim, _ := newTestViewport(t)
			v.Jump(View{10, 10})
			before := sim.CharWrites()
			if !v.RequestScroll(tt.dx, tt.dy) {
				t.Fatal("step rejected")
			}
			if n := sim.CharWrites() - before; n != tt.want {
				t.Errorf("characters written = %d, want %d", n, tt.want)
			}
			assertConsistent(t, v, sim)
		})
	}
}

func TestRasterDebugBorder(t *testing.T) {
	v, sim, _ := newTestViewport(t)
	v.RequestScroll(1, 0)
	if sim.BorderWrites() != 0 {
		t.Fatal("border written with raster debug off")
	}
	v.RasterDebug = true
	v.RequestScroll(1, 0)
	if sim.BorderWrites() != 2 || sim.Border() != device.Cyan {
		t.Errorf("border writes=%d colour=%v, want 2 ending cyan", sim.BorderWrites(), sim.Border())
	}
}

func TestIdentityTileRendersItsID(t *testing.T) {
	sim := device.NewSim()
	w := world.Default()
	New(sim, w)
	// Tile (3,2) has pattern id 67 and covers screen cells x 12..15, y 8..11.
	for row := 8; row < 12; row++ {
		for col := 12; col < 16; col++ {
			if got := sim.Screen().At(row, col); got != 67 {
				t.Errorf("cell (%d,%d) = %d, want 67", row, col, got)
			}
		}
	}
}
