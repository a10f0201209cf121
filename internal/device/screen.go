// Package device simulates the parts of the C64 video hardware the scroll
// engine drives: the 40x25 character matrix, the scroll control registers,
// the border colour and the raster compare interrupt.
package device

const (
	Columns = 40
	Rows    = 25

	// CellPixels is the width and height of one character cell.
	CellPixels = 8
)

// Screen is the character matrix at $0400, indexed [row][column].
type Screen [Rows][Columns]byte

func (s *Screen) At(row, col int) byte { return s[row][col] }

func (s *Screen) Set(row, col int, code byte) { s[row][col] = code }

// Fill sets every cell to code.
func (s *Screen) Fill(code byte) {
	for row := range s {
		for col := range s[row] {
			s[row][col] = code
		}
	}
}

// Diff returns the number of cells that differ between s and o.
func (s *Screen) Diff(o *Screen) int {
	n := 0
	for row := range s {
		for col := range s[row] {
			if s[row][col] != o[row][col] {
				n++
			}
		}
	}
	return n
}
