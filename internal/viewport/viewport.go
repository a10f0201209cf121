// Package viewport keeps a 40x25 character screen showing a window onto a
// larger tile world. Each scroll step shifts the screen one cell and redraws
// only the newly exposed row and column.
package viewport

import (
	"eight-way-tiles/internal/coords"
	"eight-way-tiles/internal/device"
)

// Display is the video hardware the viewport drives.
type Display interface {
	Screen() *device.Screen
	SetChar(row, col int, code byte)
	Scroll() device.ScrollRegister
	SetScroll(device.ScrollRegister)
	SetBorder(device.Color)
}

// View is the world position, in characters, of the top-left screen cell.
type View struct {
	X, Y int
}

// State reports whether a scroll step is being applied.
type State int

const (
	Idle State = iota
	Scrolling
)

func (s State) String() string {
	if s == Scrolling {
		return "scrolling"
	}
	return "idle"
}

// Stats counts work done since the viewport was created.
type Stats struct {
	Steps      uint64 // accepted scroll steps
	Rejected   uint64 // requests clamped to nothing
	CellsDrawn uint64 // characters recomputed from the world
}

// Viewport owns the view position and keeps the screen and scroll
// register consistent with it.
type Viewport struct {
	disp  Display
	tiles coords.Tiles

	view       View
	maxX, maxY int
	state      State
	stats      Stats

	// RasterDebug colours the border while a step is in progress: red
	// while shifting, cyan while filling the exposed edges.
	RasterDebug bool
}

// New shows the top-left corner of tiles on disp.
func New(disp Display, tiles coords.Tiles) *Viewport {
	w, h := coords.WorldExtent(tiles)
	v := &Viewport{
		disp:  disp,
		tiles: tiles,
		maxX:  w - device.Columns,
		maxY:  h - device.Rows,
	}
	v.resetScroll()
	v.RedrawAll()
	return v
}

func (v *Viewport) View() View   { return v.view }
func (v *Viewport) State() State { return v.state }
func (v *Viewport) Stats() Stats { return v.stats }

// Extent returns the largest valid view coordinates.
func (v *Viewport) Extent() (maxX, maxY int) { return v.maxX, v.maxY }

// RequestScroll moves the view by at most one cell per axis. Only the sign
// of dx and dy is used. A move that would leave the world is dropped on
// that axis; if nothing is left the call has no side effects. It reports
// whether the view moved.
func (v *Viewport) RequestScroll(dx, dy int) bool {
	dx, dy = sign(dx), sign(dy)

	if dx < 0 && v.view.X+dx < 0 || dx > 0 && v.view.X+dx > v.maxX {
		dx = 0
	}
	if dy < 0 && v.view.Y+dy < 0 || dy > 0 && v.view.Y+dy > v.maxY {
		dy = 0
	}
	if dx == 0 && dy == 0 {
		v.stats.Rejected++
		return false
	}

	v.state = Scrolling
	defer func() { v.state = Idle }()

	v.view.X += dx
	v.view.Y += dy

	v.debugBorder(device.Red)
	Shift(v.disp.Screen(), DirectionOf(dx, dy))
	v.disp.SetScroll(v.disp.Scroll().Step(dx, dy))

	v.debugBorder(device.Cyan)
	// A diagonal step redraws both edges; the shared corner is written twice
	// with the same value.
	if dx != 0 {
		col := device.Columns - 1
		if dx < 0 {
			col = 0
		}
		v.RedrawColumn(col)
	}
	if dy != 0 {
		row := device.Rows - 1
		if dy < 0 {
			row = 0
		}
		v.RedrawRow(row)
	}
	v.stats.Steps++
	return true
}

// Jump moves the view to p, clamped to the world, and redraws everything.
func (v *Viewport) Jump(p View) {
	v.view = View{X: clamp(p.X, 0, v.maxX), Y: clamp(p.Y, 0, v.maxY)}
	v.resetScroll()
	v.RedrawAll()
}

// RedrawColumn recomputes screen column col from the world.
func (v *Viewport) RedrawColumn(col int) {
	x := v.view.X + col
	for row := 0; row < device.Rows; row++ {
		v.disp.SetChar(row, col, coords.CharAtWorld(v.tiles, x, v.view.Y+row))
	}
	v.stats.CellsDrawn += device.Rows
}

// RedrawRow recomputes screen row row from the world.
func (v *Viewport) RedrawRow(row int) {
	y := v.view.Y + row
	for col := 0; col < device.Columns; col++ {
		v.disp.SetChar(row, col, coords.CharAtWorld(v.tiles, v.view.X+col, y))
	}
	v.stats.CellsDrawn += device.Columns
}

// RedrawAll recomputes the whole screen.
func (v *Viewport) RedrawAll() {
	for row := 0; row < device.Rows; row++ {
		v.RedrawRow(row)
	}
}

// Expected returns the screen the current view should show, computed from
// scratch without touching the display.
func (v *Viewport) Expected() device.Screen {
	var s device.Screen
	for row := range s {
		for col := range s[row] {
			s[row][col] = coords.CharAtWorld(v.tiles, v.view.X+col, v.view.Y+row)
		}
	}
	return s
}

func (v *Viewport) resetScroll() {
	v.disp.SetScroll(device.ScrollRegister{
		FineY:     device.RestFineY,
		Columns38: true,
		Rows24:    true,
	})
}

func (v *Viewport) debugBorder(c device.Color) {
	if v.RasterDebug {
		v.disp.SetBorder(c)
	}
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
