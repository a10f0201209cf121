// Package coords maps world character positions to tile indices and back to
// character codes. Every function is pure.
package coords

import "fmt"

const (
	// Log2TileWidth is log2 of the tile pattern width in characters.
	Log2TileWidth = 2
	// Log2TileHeight is log2 of the tile pattern height in characters.
	Log2TileHeight = 2

	TileWidth  = 1 << Log2TileWidth
	TileHeight = 1 << Log2TileHeight

	// PatternSize is the number of character codes in one tile pattern.
	PatternSize = TileWidth * TileHeight
)

// Tiles is what the coordinate model needs from a world.
type Tiles interface {
	WidthInTiles() int
	HeightInTiles() int
	TilePatternIDAt(col, row int) uint8
	CharacterCodeInPattern(id uint8, cx, cy int) uint8
}

// TileIndexFor returns the tile column and row containing world position (x, y).
func TileIndexFor(x, y int) (col, row int) {
	return x >> Log2TileWidth, y >> Log2TileHeight
}

// WithinTile returns the character offset of (x, y) inside its tile.
func WithinTile(x, y int) (cx, cy int) {
	return x & (TileWidth - 1), y & (TileHeight - 1)
}

// CharacterCodeAt returns the character at (cx, cy) inside the tile at
// (col, row). The world is bounded: a tile outside the grid is a caller bug.
func CharacterCodeAt(t Tiles, col, row, cx, cy int) byte {
	if col < 0 || col >= t.WidthInTiles() || row < 0 || row >= t.HeightInTiles() {
		panic(fmt.Sprintf("coords: tile (%d,%d) outside %dx%d world", col, row, t.WidthInTiles(), t.HeightInTiles()))
	}
	if cx < 0 || cx >= TileWidth || cy < 0 || cy >= TileHeight {
		panic(fmt.Sprintf("coords: cell (%d,%d) outside %dx%d tile", cx, cy, TileWidth, TileHeight))
	}
	return t.CharacterCodeInPattern(t.TilePatternIDAt(col, row), cx, cy)
}

// CharAtWorld returns the character shown at world position (x, y).
func CharAtWorld(t Tiles, x, y int) byte {
	col, row := TileIndexFor(x, y)
	cx, cy := WithinTile(x, y)
	return CharacterCodeAt(t, col, row, cx, cy)
}

// WorldExtent returns the world size in characters.
func WorldExtent(t Tiles) (w, h int) {
	return t.WidthInTiles() * TileWidth, t.HeightInTiles() * TileHeight
}
