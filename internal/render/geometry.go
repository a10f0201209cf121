package render

import (
	"image"

	"eight-way-tiles/internal/device"
)

// Frame buffer geometry in pixels: a 320x200 display window centred in the
// visible border.
const (
	DisplayWidth  = device.Columns * device.CellPixels
	DisplayHeight = device.Rows * device.CellPixels
	BorderX       = 32
	BorderY       = 36
	FrameWidth    = DisplayWidth + 2*BorderX
	FrameHeight   = DisplayHeight + 2*BorderY
)

// DisplayWindow returns the part of the 320x200 area not covered by the
// border, in display coordinates. The 38-column window loses 7 pixels on
// the left and 9 on the right, the 24-row window 4 at each end.
func DisplayWindow(reg device.ScrollRegister) image.Rectangle {
	r := image.Rect(0, 0, DisplayWidth, DisplayHeight)
	if reg.Columns38 {
		r.Min.X += 7
		r.Max.X -= 9
	}
	if reg.Rows24 {
		r.Min.Y += 4
		r.Max.Y -= 4
	}
	return r
}

// ContentOrigin is where screen cell (0,0) lands, in display coordinates.
// A vertical fine scroll of 3 is the aligned position.
func ContentOrigin(reg device.ScrollRegister) image.Point {
	return image.Pt(int(reg.FineX&7), int(reg.FineY&7)-device.RestFineY)
}

// CellRect returns the pixels of screen cell (row, col) in display coordinates.
func CellRect(reg device.ScrollRegister, row, col int) image.Rectangle {
	o := ContentOrigin(reg)
	return image.Rect(col*device.CellPixels, row*device.CellPixels,
		(col+1)*device.CellPixels, (row+1)*device.CellPixels).Add(o)
}

// CellVisible reports whether at least half of a cell shows through the
// display window.
func CellVisible(reg device.ScrollRegister, row, col int) bool {
	r := CellRect(reg, row, col)
	vis := r.Intersect(DisplayWindow(reg))
	return vis.Dx()*2 >= r.Dx() && vis.Dy()*2 >= r.Dy()
}
