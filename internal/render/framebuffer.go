package render

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"os"

	"eight-way-tiles/internal/device"
	"eight-way-tiles/internal/machine"
)

// Framebuffer paints a frame as the monitor would show it: border, display
// window and the character matrix offset by the fine scroll. Each cell is
// drawn as its background colour with a centred block in the foreground
// colour (see CodeColors), so neighbouring codes stay distinguishable
// without a character ROM.
func Framebuffer(f machine.Frame) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, FrameWidth, FrameHeight))
	Paint(img, f)
	return img
}

// Paint draws f into img, which must be FrameWidth x FrameHeight.
func Paint(img *image.RGBA, f machine.Frame) {
	origin := image.Pt(BorderX, BorderY)
	draw.Draw(img, img.Bounds(), image.NewUniform(f.Border.RGBA()), image.Point{}, draw.Src)

	window := DisplayWindow(f.Scroll).Add(origin)
	draw.Draw(img, window, image.NewUniform(BackgroundColor.RGBA()), image.Point{}, draw.Src)

	for row := 0; row < device.Rows; row++ {
		for col := 0; col < device.Columns; col++ {
			cell := CellRect(f.Scroll, row, col).Add(origin)
			if !cell.Overlaps(window) {
				continue
			}
			fg, bg := CodeColors(f.Screen[row][col])
			if fg == bg {
				fg = contrast(bg)
			}
			draw.Draw(img, cell.Intersect(window), image.NewUniform(bg.RGBA()), image.Point{}, draw.Src)
			block := cell.Inset(2).Intersect(window)
			if !block.Empty() {
				draw.Draw(img, block, image.NewUniform(fg.RGBA()), image.Point{}, draw.Src)
			}
		}
	}
}

// WritePNG encodes a frame as PNG.
func WritePNG(w io.Writer, f machine.Frame) error {
	return png.Encode(w, Framebuffer(f))
}

// SavePNG writes a frame to a PNG file.
func SavePNG(path string, f machine.Frame) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WritePNG(file, f); err != nil {
		file.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return file.Close()
}
