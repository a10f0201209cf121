// Package world holds the scrollable world: a grid of tile pattern ids and
// the table of 4x4 character patterns those ids refer to.
package world

import (
	"errors"
	"fmt"

	"eight-way-tiles/internal/coords"
)

const (
	// DefaultWidthInTiles and DefaultHeightInTiles give a world of roughly
	// three by three screens.
	DefaultWidthInTiles  = 32
	DefaultHeightInTiles = 16

	// NumPatterns is the size of the tile pattern table.
	NumPatterns = 256

	// MinWidthInTiles and MinHeightInTiles are the smallest worlds that
	// still cover a 40x25 screen.
	MinWidthInTiles  = 10
	MinHeightInTiles = 7

	// MaxWidthInTiles and MaxHeightInTiles keep view coordinates in a byte,
	// as on the original hardware.
	MaxWidthInTiles  = 64
	MaxHeightInTiles = 64
)

var (
	ErrTooSmall   = errors.New("world smaller than one screen")
	ErrTooLarge   = errors.New("world larger than 64x64 tiles")
	ErrBadPattern = errors.New("malformed tile pattern")

	ErrUnknownWorld = errors.New("no world named")
)

// Pattern is one tile: 16 character codes in row-major order.
type Pattern [coords.PatternSize]uint8

// Store is an immutable world. It satisfies coords.Tiles.
type Store struct {
	Name     string
	width    int
	height   int
	grid     []uint8
	patterns [NumPatterns]Pattern
}

// New creates a world of the given size with an all-zero grid and an
// all-zero pattern table. Initializers fill it before it is shared.
func New(widthInTiles, heightInTiles int) (*Store, error) {
	if widthInTiles < MinWidthInTiles || heightInTiles < MinHeightInTiles {
		return nil, fmt.Errorf("%dx%d tiles: %w", widthInTiles, heightInTiles, ErrTooSmall)
	}
	if widthInTiles > MaxWidthInTiles || heightInTiles > MaxHeightInTiles {
		return nil, fmt.Errorf("%dx%d tiles: %w", widthInTiles, heightInTiles, ErrTooLarge)
	}
	return &Store{
		width:  widthInTiles,
		height: heightInTiles,
		grid:   make([]uint8, widthInTiles*heightInTiles),
	}, nil
}

// Identity builds the demo world: pattern i is sixteen copies of i and each
// grid cell holds its raster-order index, so every tile looks different.
func Identity(widthInTiles, heightInTiles int) (*Store, error) {
	s, err := New(widthInTiles, heightInTiles)
	if err != nil {
		return nil, err
	}
	s.Name = "identity"
	for i := range s.patterns {
		for j := range s.patterns[i] {
			s.patterns[i][j] = uint8(i)
		}
	}
	for y := 0; y < heightInTiles; y++ {
		for x := 0; x < widthInTiles; x++ {
			s.grid[widthInTiles*y+x] = uint8(widthInTiles*y + x)
		}
	}
	return s, nil
}

// Default returns the 32x16 identity world.
func Default() *Store {
	s, err := Identity(DefaultWidthInTiles, DefaultHeightInTiles)
	if err != nil {
		panic(err)
	}
	return s
}

func (s *Store) WidthInTiles() int  { return s.width }
func (s *Store) HeightInTiles() int { return s.height }

// WidthChars returns the world width in characters.
func (s *Store) WidthChars() int { return s.width * coords.TileWidth }

// HeightChars returns the world height in characters.
func (s *Store) HeightChars() int { return s.height * coords.TileHeight }

// TilePatternIDAt returns the pattern id of the tile at (col, row).
func (s *Store) TilePatternIDAt(col, row int) uint8 {
	return s.grid[s.width*row+col]
}

// CharacterCodeInPattern returns the character at (cx, cy) of pattern id.
func (s *Store) CharacterCodeInPattern(id uint8, cx, cy int) uint8 {
	return s.patterns[id][cy<<coords.Log2TileWidth+cx]
}

// Pattern returns a copy of pattern id.
func (s *Store) Pattern(id uint8) Pattern { return s.patterns[id] }

// set and setPattern are only used by initializers before the store is shared.
func (s *Store) set(col, row int, id uint8) { s.grid[s.width*row+col] = id }

func (s *Store) setPattern(id uint8, p Pattern) { s.patterns[id] = p }

// PatternUsage counts how many grid cells reference each pattern id.
func (s *Store) PatternUsage() map[uint8]int {
	counts := make(map[uint8]int)
	for _, id := range s.grid {
		counts[id]++
	}
	return counts
}
