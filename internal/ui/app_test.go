package ui

import (
	"strings"
	"testing"

	"eight-way-tiles/internal/machine"
	"eight-way-tiles/internal/render"
	"eight-way-tiles/internal/viewport"
)

func TestStatusTextFitsHUD(t *testing.T) {
	f := machine.Frame{View: viewport.View{X: 88, Y: 39}, Count: 999999}
	f.IRQ.Overruns = 12

	for _, paused := range []bool{false, true} {
		s := statusText(f, paused)
		if w := len(s) * 7; w > render.FrameWidth-4 {
			t.Errorf("status %q is %dpx wide", s, w)
		}
		if strings.Contains(s, "PAUSED") != paused {
			t.Errorf("paused=%v, status %q", paused, s)
		}
	}
}

func TestConfigDefaults(t *testing.T) {
	var c Config
	c.Defaults()
	if c.Title == "" || c.Scale != 2 || c.ScreenshotDir != "." {
		t.Errorf("Defaults() = %+v", c)
	}

	c = Config{Scale: 4}
	c.Defaults()
	if c.Scale != 4 {
		t.Errorf("Scale overwritten: %d", c.Scale)
	}
}
