package world

// Terrain pattern ids used by Generate.
const (
	Water uint8 = iota
	Shallows
	Sand
	Grass
	Forest
	Rock
	Peak
	numTerrain
)

// Screen codes used by the terrain patterns.
const (
	codeSpace   = 0x20
	codeDot     = 0x2E
	codeWave    = 0x40
	codeBall    = 0x51
	codeClub    = 0x58
	codeDiamond = 0x5A
	codeChecker = 0x66
	codeTriUp   = 0x69
	codeBlock   = 0xA0
)

var terrainPatterns = [numTerrain]Pattern{
	Water: {
		codeWave, codeSpace, codeWave, codeSpace,
		codeSpace, codeWave, codeSpace, codeWave,
		codeWave, codeSpace, codeWave, codeSpace,
		codeSpace, codeWave, codeSpace, codeWave,
	},
	Shallows: {
		codeWave, codeSpace, codeSpace, codeSpace,
		codeSpace, codeSpace, codeWave, codeSpace,
		codeSpace, codeWave, codeSpace, codeSpace,
		codeSpace, codeSpace, codeSpace, codeWave,
	},
	Sand: {
		codeDot, codeSpace, codeSpace, codeDot,
		codeSpace, codeSpace, codeDot, codeSpace,
		codeSpace, codeDot, codeSpace, codeSpace,
		codeDot, codeSpace, codeSpace, codeDot,
	},
	Grass: {
		codeSpace, codeDiamond, codeSpace, codeSpace,
		codeSpace, codeSpace, codeSpace, codeDiamond,
		codeDiamond, codeSpace, codeSpace, codeSpace,
		codeSpace, codeSpace, codeDiamond, codeSpace,
	},
	Forest: {
		codeClub, codeBall, codeClub, codeBall,
		codeBall, codeClub, codeBall, codeClub,
		codeClub, codeBall, codeClub, codeBall,
		codeBall, codeClub, codeBall, codeClub,
	},
	Rock: {
		codeChecker, codeChecker, codeTriUp, codeChecker,
		codeChecker, codeTriUp, codeChecker, codeChecker,
		codeTriUp, codeChecker, codeChecker, codeTriUp,
		codeChecker, codeChecker, codeTriUp, codeChecker,
	},
	Peak: {
		codeSpace, codeTriUp, codeTriUp, codeSpace,
		codeTriUp, codeBlock, codeBlock, codeTriUp,
		codeBlock, codeBlock, codeBlock, codeBlock,
		codeBlock, codeBlock, codeBlock, codeBlock,
	},
}

// TerrainNames names the terrain pattern ids.
var TerrainNames = [numTerrain]string{
	Water:    "water",
	Shallows: "shallows",
	Sand:     "sand",
	Grass:    "grass",
	Forest:   "forest",
	Rock:     "rock",
	Peak:     "peak",
}

// Generate builds a terrain world from elevation and moisture noise.
func Generate(widthInTiles, heightInTiles int, seed int64) (*Store, error) {
	s, err := Identity(widthInTiles, heightInTiles)
	if err != nil {
		return nil, err
	}
	s.Name = "terrain"
	for id, p := range terrainPatterns {
		s.setPattern(uint8(id), p)
	}

	elevation := newSimplex(seed)
	moisture := newSimplex(seed + 1)
	for y := 0; y < heightInTiles; y++ {
		for x := 0; x < widthInTiles; x++ {
			fx, fy := float64(x), float64(y)
			elev := elevation.fractal(fx, fy, 0.08, 4)
			moist := moisture.fractal(fx, fy, 0.12, 3)
			s.set(x, y, classify(elev, moist))
		}
	}
	return s, nil
}

func classify(elev, moist float64) uint8 {
	switch {
	case elev < 0.30:
		return Water
	case elev < 0.38:
		return Shallows
	case elev < 0.43:
		return Sand
	case elev < 0.65:
		if moist > 0.55 {
			return Forest
		}
		return Grass
	case elev < 0.78:
		return Rock
	default:
		return Peak
	}
}
