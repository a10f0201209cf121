package world

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// jsonWorld is the on-disk JSON format.
type jsonWorld struct {
	Name     string           `json:"name"`
	Width    int              `json:"width"`
	Height   int              `json:"height"`
	Patterns map[string][]int `json:"patterns,omitempty"`
	Tiles    [][]int          `json:"tiles"`
}

// Load reads a JSON world file from disk.
func Load(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open world file: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// Decode parses a JSON world. Patterns missing from the file keep the
// identity mapping so small hand-written worlds still render.
func Decode(r io.Reader) (*Store, error) {
	var jw jsonWorld
	if err := json.NewDecoder(r).Decode(&jw); err != nil {
		return nil, fmt.Errorf("parse world JSON: %w", err)
	}

	// Validate tile dimensions
	if len(jw.Tiles) != jw.Height {
		return nil, fmt.Errorf("tile rows %d != declared height %d", len(jw.Tiles), jw.Height)
	}
	for y, row := range jw.Tiles {
		if len(row) != jw.Width {
			return nil, fmt.Errorf("row %d has %d tiles, expected %d", y, len(row), jw.Width)
		}
	}

	s, err := Identity(jw.Width, jw.Height)
	if err != nil {
		return nil, err
	}
	s.Name = jw.Name

	for k, codes := range jw.Patterns {
		id, err := strconv.Atoi(k)
		if err != nil || id < 0 || id >= NumPatterns {
			return nil, fmt.Errorf("pattern key %q: %w", k, ErrBadPattern)
		}
		if len(codes) != len(Pattern{}) {
			return nil, fmt.Errorf("pattern %d has %d codes: %w", id, len(codes), ErrBadPattern)
		}
		var p Pattern
		for i, c := range codes {
			if c < 0 || c > 0xFF {
				return nil, fmt.Errorf("pattern %d code %d out of range: %w", id, c, ErrBadPattern)
			}
			p[i] = uint8(c)
		}
		s.setPattern(uint8(id), p)
	}

	for y, row := range jw.Tiles {
		for x, id := range row {
			if id < 0 || id >= NumPatterns {
				return nil, fmt.Errorf("tile (%d,%d) pattern id %d out of range", x, y, id)
			}
			s.set(x, y, uint8(id))
		}
	}
	return s, nil
}

// Encode writes the world as JSON. Patterns equal to the identity mapping
// are left out.
func (s *Store) Encode(w io.Writer) error {
	jw := jsonWorld{
		Name:     s.Name,
		Width:    s.width,
		Height:   s.height,
		Patterns: make(map[string][]int),
		Tiles:    make([][]int, s.height),
	}
	for id := range s.patterns {
		p := s.patterns[id]
		if p == identityPattern(uint8(id)) {
			continue
		}
		jw.Patterns[strconv.Itoa(id)] = toInts(p[:])
	}
	for y := 0; y < s.height; y++ {
		jw.Tiles[y] = toInts(s.grid[y*s.width : (y+1)*s.width])
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(jw)
}

// Save writes the world to path.
func (s *Store) Save(path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("create world file: %w", err)
	}
	if err := s.Encode(f); err != nil {
		f.Close()
		return fmt.Errorf("write world: %w", err)
	}
	return f.Close()
}

// LoadDir loads every *.json world in dir, indexed by name.
func LoadDir(dir string) (map[string]*Store, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read worlds directory: %w", err)
	}

	all := make(map[string]*Store)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		s, err := Load(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", entry.Name(), err)
		}
		if _, exists := all[s.Name]; exists {
			return nil, fmt.Errorf("duplicate world name %q in %s", s.Name, entry.Name())
		}
		all[s.Name] = s
	}
	return all, nil
}

// Names returns the keys of a world registry in sorted order.
func Names(all map[string]*Store) []string {
	names := make([]string, 0, len(all))
	for name := range all {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Pick returns the world called name from a registry. An empty name picks
// the only world when there is exactly one.
func Pick(all map[string]*Store, name string) (*Store, error) {
	if name == "" && len(all) == 1 {
		for _, s := range all {
			return s, nil
		}
	}
	if s, ok := all[name]; ok {
		return s, nil
	}
	return nil, fmt.Errorf("%w %q (have %s)", ErrUnknownWorld, name, strings.Join(Names(all), ", "))
}

func identityPattern(id uint8) Pattern {
	var p Pattern
	for i := range p {
		p[i] = id
	}
	return p
}

func toInts(b []uint8) []int {
	out := make([]int, len(b))
	for i, v := range b {
		out[i] = int(v)
	}
	return out
}
