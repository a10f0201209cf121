package ui

// Config contains window and input settings.
type Config struct {
	Title         string // window title
	Scale         int    // integer upscaling factor
	ScreenshotDir string // where F12 writes PNG files
}

// Defaults fills missing fields with reasonable defaults.
func (c *Config) Defaults() {
	if c.Title == "" {
		c.Title = "8-way tiles"
	}
	if c.Scale <= 0 {
		c.Scale = 2
	}
	if c.ScreenshotDir == "" {
		c.ScreenshotDir = "."
	}
}
