package render

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	ESC   = "\x1b"
	CSI   = ESC + "["
	Reset = CSI + "0m"
)

// MoveTo positions the cursor at row, col (1-based).
func MoveTo(row, col int) string {
	return fmt.Sprintf("%s%d;%dH", CSI, row, col)
}

// ClearScreen clears the entire screen.
func ClearScreen() string {
	return CSI + "2J"
}

// HideCursor hides the terminal cursor.
func HideCursor() string {
	return CSI + "?25l"
}

// ShowCursor shows the terminal cursor.
func ShowCursor() string {
	return CSI + "?25h"
}

// EnableAltScreen switches to the alternate screen buffer.
func EnableAltScreen() string {
	return CSI + "?1049h"
}

// DisableAltScreen switches back from the alternate screen buffer.
func DisableAltScreen() string {
	return CSI + "?1049l"
}

// Cell is a single terminal cell with full RGB colour.
type Cell struct {
	Ch            rune
	FgR, FgG, FgB uint8
	BgR, BgG, BgB uint8
	Bold          bool
}

// WriteCellSGR writes a single cell's full SGR + character to the builder.
// Uses combined SGR to avoid state leakage between cells.
func WriteCellSGR(sb *strings.Builder, c Cell) {
	if c.Bold {
		sb.WriteString("\x1b[0;1;38;2;")
	} else {
		sb.WriteString("\x1b[0;38;2;")
	}
	sb.WriteString(strconv.Itoa(int(c.FgR)))
	sb.WriteByte(';')
	sb.WriteString(strconv.Itoa(int(c.FgG)))
	sb.WriteByte(';')
	sb.WriteString(strconv.Itoa(int(c.FgB)))
	sb.WriteString(";48;2;")
	sb.WriteString(strconv.Itoa(int(c.BgR)))
	sb.WriteByte(';')
	sb.WriteString(strconv.Itoa(int(c.BgG)))
	sb.WriteByte(';')
	sb.WriteString(strconv.Itoa(int(c.BgB)))
	sb.WriteByte('m')
	sb.WriteRune(c.Ch)
}
