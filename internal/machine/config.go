package machine

import (
	"time"

	"eight-way-tiles/internal/device"
	"eight-way-tiles/internal/viewport"
)

// Config contains settings for one demo instance.
type Config struct {
	RasterLine  int           // raster compare line; 0 selects BottomBorderLine
	RasterDebug bool          // colour the border by handler phase
	Budget      time.Duration // handler time before a run counts as an overrun
	Start       viewport.View // initial view, clamped to the world
}

// Defaults fills missing fields with reasonable defaults.
func (c *Config) Defaults() {
	// Zero means unset. Negative lines are left for New to reject.
	if c.RasterLine == 0 {
		c.RasterLine = device.BottomBorderLine
	}
	if c.Budget <= 0 {
		c.Budget = device.FrameDuration
	}
}
