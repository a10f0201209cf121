package render

import (
	"fmt"
	"strings"

	"eight-way-tiles/internal/device"
	"eight-way-tiles/internal/machine"
)

// HUDRows is the number of text rows below the border.
const HUDRows = 1

var sentinel = Cell{Ch: '\x00', FgR: 255, BgB: 255, Bold: true}

// Engine is a per-session double-buffer diff renderer. It draws the border,
// the character matrix and a status line, and emits only cells that
// changed since the previous frame.
type Engine struct {
	width, height int
	current       [][]Cell
	next          [][]Cell
	firstFrame    bool

	// Tinted colours each cell by its character code instead of the
	// light-blue-on-blue text screen.
	Tinted bool
}

// NewEngine creates a renderer for the given terminal dimensions.
func NewEngine(width, height int) *Engine {
	e := &Engine{}
	e.Resize(width, height)
	return e
}

// Resize adjusts the renderer for a new terminal size.
func (e *Engine) Resize(width, height int) {
	e.width = width
	e.height = height
	e.current = e.makeBuffer(sentinel)
	e.next = e.makeBuffer(Cell{})
	e.firstFrame = true
}

func (e *Engine) makeBuffer(fill Cell) [][]Cell {
	buf := make([][]Cell, e.height)
	for y := range buf {
		buf[y] = make([]Cell, e.width)
		for x := range buf[y] {
			buf[y][x] = fill
		}
	}
	return buf
}

// Render produces the ANSI output that brings the terminal to frame f.
func (e *Engine) Render(f machine.Frame, termW, termH int) string {
	if termW != e.width || termH != e.height {
		e.Resize(termW, termH)
	}

	border := colorCell(' ', device.White.RGBA(), f.Border.RGBA())
	for y := range e.next {
		for x := range e.next[y] {
			e.next[y][x] = border
		}
	}

	// One border cell around the matrix, clipped to the terminal.
	for row := 0; row < device.Rows; row++ {
		for col := 0; col < device.Columns; col++ {
			if !CellVisible(f.Scroll, row, col) {
				continue
			}
			e.set(col+1, row+1, TextCell(f.Screen[row][col], e.Tinted))
		}
	}
	e.drawHUD(f)

	var sb strings.Builder
	sb.Grow(8192)

	lastRow, lastCol := -1, -1
	for y := 0; y < e.height; y++ {
		for x := 0; x < e.width; x++ {
			nc := e.next[y][x]
			if e.firstFrame || nc != e.current[y][x] {
				// Only emit cursor position if not consecutive
				if y != lastRow || x != lastCol {
					sb.WriteString(MoveTo(y+1, x+1))
				}
				WriteCellSGR(&sb, nc)
				lastRow = y
				lastCol = x + 1
			}
		}
	}
	if sb.Len() > 0 {
		sb.WriteString(Reset)
	}

	e.current, e.next = e.next, e.current
	e.firstFrame = false
	return sb.String()
}

func (e *Engine) set(x, y int, c Cell) {
	if x >= 0 && x < e.width && y >= 0 && y < e.height {
		e.next[y][x] = c
	}
}

// StatusLine summarizes a frame in one line.
func StatusLine(f machine.Frame) string {
	return fmt.Sprintf("VIEW %3d,%3d  FRAME %7d  STEPS %6d  OVERRUNS %d",
		f.View.X, f.View.Y, f.Count, f.IRQ.Steps, f.IRQ.Overruns)
}

func (e *Engine) drawHUD(f machine.Frame) {
	y := device.Rows + 2
	if y >= e.height {
		return
	}
	text := StatusLine(f) + "   arrows/WASD scroll, q quits"
	fg, bg := device.LightGrey.RGBA(), device.Black.RGBA()
	for x := 0; x < e.width; x++ {
		e.next[y][x] = colorCell(' ', fg, bg)
	}
	for i, r := range []rune(text) {
		e.set(i, y, colorCell(r, fg, bg))
	}
}
