// Package ui shows a machine in a desktop window.
package ui

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"eight-way-tiles/internal/device"
	"eight-way-tiles/internal/machine"
	"eight-way-tiles/internal/render"
)

// hudHeight is the strip under the picture that holds the status text.
const hudHeight = 18

type App struct {
	cfg    Config
	m      *machine.Machine
	tex    *ebiten.Image
	img    *image.RGBA
	paused bool
}

// NewApp prepares a window for m. m should read its joystick from Keyboard.
func NewApp(cfg Config, m *machine.Machine) *App {
	cfg.Defaults()
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(render.FrameWidth*cfg.Scale, (render.FrameHeight+hudHeight)*cfg.Scale)
	ebiten.SetTPS(device.FrameRate)
	return &App{
		cfg: cfg,
		m:   m,
		img: image.NewRGBA(image.Rect(0, 0, render.FrameWidth, render.FrameHeight)),
	}
}

func (a *App) Run() error { return ebiten.RunGame(a) }

func (a *App) Update() error {
	// Pause toggle (P)
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		a.paused = !a.paused
	}

	// Raster debug colours (F9)
	if inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		a.m.SetRasterDebug(!a.m.RasterDebug())
	}

	// Screenshot (F12)
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		if err := a.saveScreenshot(); err != nil {
			log.Printf("screenshot: %v", err)
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	switch {
	case !a.paused:
		a.m.StepFrame()
	case inpututil.IsKeyJustPressed(ebiten.KeyN):
		// Frame-step when paused
		a.m.StepFrame()
	}
	return nil
}

func (a *App) Draw(screen *ebiten.Image) {
	if a.tex == nil {
		a.tex = ebiten.NewImage(render.FrameWidth, render.FrameHeight)
	}
	f := a.m.Snapshot()
	render.Paint(a.img, f)
	a.tex.WritePixels(a.img.Pix)
	screen.Fill(color.Black)
	screen.DrawImage(a.tex, nil)

	text.Draw(screen, statusText(f, a.paused), basicfont.Face7x13, 4, render.FrameHeight+13, device.LightGrey.RGBA())
}

func (a *App) Layout(outW, outH int) (int, int) {
	return render.FrameWidth, render.FrameHeight + hudHeight
}

func (a *App) saveScreenshot() error {
	ts := time.Now().Format("20060102_150405")
	name := filepath.Join(a.cfg.ScreenshotDir, fmt.Sprintf("screenshot_%s.png", ts))
	if err := render.SavePNG(name, a.m.Snapshot()); err != nil {
		return err
	}
	log.Printf("Screenshot saved: %s", name)
	return nil
}

// statusText fits the window's HUD strip.
func statusText(f machine.Frame, paused bool) string {
	s := fmt.Sprintf("VIEW %2d,%2d  FRAME %6d  OVR %d", f.View.X, f.View.Y, f.Count, f.IRQ.Overruns)
	if paused {
		s += "  PAUSED"
	}
	return s
}
