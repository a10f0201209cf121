package viewport

import "eight-way-tiles/internal/device"

// Direction is one of the eight ways the view can move, or None.
type Direction uint8

const (
	None Direction = iota
	Up
	UpRight
	Right
	DownRight
	Down
	DownLeft
	Left
	UpLeft
)

var directionDeltas = [...][2]int{
	None:      {0, 0},
	Up:        {0, -1},
	UpRight:   {1, -1},
	Right:     {1, 0},
	DownRight: {1, 1},
	Down:      {0, 1},
	DownLeft:  {-1, 1},
	Left:      {-1, 0},
	UpLeft:    {-1, -1},
}

var directionNames = [...]string{
	None: "none", Up: "up", UpRight: "up-right", Right: "right", DownRight: "down-right",
	Down: "down", DownLeft: "down-left", Left: "left", UpLeft: "up-left",
}

// DirectionOf returns the direction of a view move by the signs of dx, dy.
func DirectionOf(dx, dy int) Direction {
	dx, dy = sign(dx), sign(dy)
	for d, delta := range directionDeltas {
		if delta[0] == dx && delta[1] == dy {
			return Direction(d)
		}
	}
	return None
}

// Delta returns the view motion of d.
func (d Direction) Delta() (dx, dy int) {
	if int(d) >= len(directionDeltas) {
		return 0, 0
	}
	return directionDeltas[d][0], directionDeltas[d][1]
}

func (d Direction) String() string {
	if int(d) >= len(directionNames) {
		return "invalid"
	}
	return directionNames[d]
}

// Shift moves the screen contents one cell against view direction d. Cells
// on the exposed edges keep stale values until they are redrawn.
func Shift(s *device.Screen, d Direction) {
	dx, dy := d.Delta()
	switch {
	case dy > 0:
		for row := 0; row < device.Rows-1; row++ {
			shiftRow(&s[row], &s[row+1], dx)
		}
	case dy < 0:
		for row := device.Rows - 1; row > 0; row-- {
			shiftRow(&s[row], &s[row-1], dx)
		}
	default:
		for row := range s {
			shiftRow(&s[row], &s[row], dx)
		}
	}
}

// shiftRow fills dst from src displaced by one column against dx.
func shiftRow(dst, src *[device.Columns]byte, dx int) {
	switch {
	case dx > 0:
		copy(dst[:device.Columns-1], src[1:])
	case dx < 0:
		copy(dst[1:], src[:device.Columns-1])
	case dst != src:
		*dst = *src
	}
}
