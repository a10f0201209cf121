package device

import "testing"

func TestScrollRegisterPacking(t *testing.T) {
	tests := []struct {
		name  string
		r     ScrollRegister
		ctrl1 byte
		ctrl2 byte
	}{
		{"power on", ScrollRegister{FineY: RestFineY}, 0x1B, 0x08},
		{"narrow window", ScrollRegister{FineX: 5, FineY: 2, Columns38: true, Rows24: true}, 0x12, 0x05},
		{"fine masked", ScrollRegister{FineX: 7, FineY: 7}, 0x1F, 0x0F},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Ctrl1(); got != tt.ctrl1 {
				t.Errorf("Ctrl1 = %#02x, want %#02x", got, tt.ctrl1)
			}
			if got := tt.r.Ctrl2(); got != tt.ctrl2 {
				t.Errorf("Ctrl2 = %#02x, want %#02x", got, tt.ctrl2)
			}
		})
	}
}

func TestScrollRegisterAdvance(t *testing.T) {
	tests := []struct {
		name       string
		fine       uint8
		px         int
		wantFine   uint8
		wantToggle bool
	}{
		{"no motion", 3, 0, 3, false},
		{"within cell", 7, 1, 6, false},
		{"wrap right", 0, 1, 7, true},
		{"wrap left", 7, -1, 0, true},
		{"whole cell right", 3, 8, 3, true},
		{"whole cell left", 3, -8, 3, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := ScrollRegister{FineX: tt.fine, FineY: tt.fine}.Advance(tt.px, tt.px)
			if r.FineX != tt.wantFine || r.FineY != tt.wantFine {
				t.Errorf("fine = %d,%d, want %d", r.FineX, r.FineY, tt.wantFine)
			}
			if r.CoarseX != tt.wantToggle || r.CoarseY != tt.wantToggle {
				t.Errorf("coarse = %v,%v, want %v", r.CoarseX, r.CoarseY, tt.wantToggle)
			}
		})
	}
}

func TestScrollRegisterStepTogglesMovedAxisOnly(t *testing.T) {
	r := ScrollRegister{FineY: RestFineY}.Step(1, 0)
	if !r.CoarseX || r.CoarseY {
		t.Errorf("after Step(1,0) coarse = %v,%v", r.CoarseX, r.CoarseY)
	}
	if r.FineX != 0 || r.FineY != RestFineY {
		t.Errorf("whole-cell step changed fine offsets to %d,%d", r.FineX, r.FineY)
	}
	r = r.Step(-1, 0)
	if r.CoarseX {
		t.Error("stepping back should restore CoarseX")
	}
}

func TestRasterFiresOncePerFrame(t *testing.T) {
	r := NewRaster(BottomBorderLine)
	var lines []int
	r.OnCompare(func() { lines = append(lines, r.Line()) })
	for i := 0; i < 3; i++ {
		r.StepFrame()
	}
	if len(lines) != 3 {
		t.Fatalf("handler ran %d times in 3 frames", len(lines))
	}
	for _, l := range lines {
		if l != BottomBorderLine {
			t.Errorf("handler ran on line %d", l)
		}
	}
	if r.Frames() != 3 || r.Fired() != 3 || r.Reentries() != 0 {
		t.Errorf("frames=%d fired=%d reentries=%d", r.Frames(), r.Fired(), r.Reentries())
	}
}

func TestRasterCountsReentry(t *testing.T) {
	r := NewRaster(10)
	depth := 0
	r.OnCompare(func() {
		depth++
		if depth == 1 {
			r.Fire()
		}
	})
	r.StepFrame()
	if r.Reentries() != 1 || r.Fired() != 2 {
		t.Errorf("reentries=%d fired=%d", r.Reentries(), r.Fired())
	}
}

func TestSetCompareLineRejectsOutOfFrame(t *testing.T) {
	r := NewRaster(0)
	for _, line := range []int{-1, LinesPerFrame} {
		if err := r.SetCompareLine(line); err == nil {
			t.Errorf("line %d accepted", line)
		}
	}
	if r.CompareLine() != 0 {
		t.Errorf("compare line changed to %d", r.CompareLine())
	}
}

func TestSimCountsWrites(t *testing.T) {
	s := NewSim()
	if s.ScrollWrites() != 0 || s.BorderWrites() != 0 || s.CharWrites() != 0 {
		t.Fatal("fresh device reports writes")
	}
	if s.Screen().At(12, 20) != 0x20 {
		t.Error("screen not cleared to spaces")
	}
	s.SetScroll(s.Scroll().Step(1, 1))
	s.SetBorder(Red)
	if s.ScrollWrites() != 1 || s.BorderWrites() != 1 || s.Border() != Red {
		t.Errorf("writes=%d/%d border=%v", s.ScrollWrites(), s.BorderWrites(), s.Border())
	}

	s.SetChar(3, 7, 0x51)
	s.SetChar(3, 7, 0x52)
	if s.CharWrites() != 2 || s.Screen().At(3, 7) != 0x52 {
		t.Errorf("char writes=%d cell=%#02x", s.CharWrites(), s.Screen().At(3, 7))
	}
	if s.ScrollWrites() != 1 || s.BorderWrites() != 1 {
		t.Error("character writes touched the registers")
	}
}
