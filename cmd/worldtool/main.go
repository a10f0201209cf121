package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"eight-way-tiles/internal/coords"
	"eight-way-tiles/internal/render"
	"eight-way-tiles/internal/world"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "validate":
		if len(args) != 1 {
			fmt.Fprintln(os.Stderr, "Usage: worldtool validate <worlds-dir>")
			os.Exit(1)
		}
		os.Exit(runValidate(os.Stdout, args[0]))
	case "viz":
		if len(args) != 1 {
			fmt.Fprintln(os.Stderr, "Usage: worldtool viz <world-file>")
			os.Exit(1)
		}
		runViz(mustLoad(args[0]))
	case "stats":
		if len(args) != 1 {
			fmt.Fprintln(os.Stderr, "Usage: worldtool stats <world-file>")
			os.Exit(1)
		}
		runStats(os.Stdout, mustLoad(args[0]))
	case "list":
		if len(args) != 1 {
			fmt.Fprintln(os.Stderr, "Usage: worldtool list <worlds-dir>")
			os.Exit(1)
		}
		os.Exit(runList(os.Stdout, args[0]))
	case "gen":
		os.Exit(runGen(args))
	case "script":
		os.Exit(runScript(args))
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `Usage: worldtool <command> [args]

Commands:
  validate <worlds-dir>                 Load and check every world in directory
  list     <worlds-dir>                 List world names in directory
  viz      <world-file>                 Render the whole world as coloured text
  stats    <world-file>                 Show tile pattern usage
  gen      [-seed N] [-size WxH] [-name Name] [-out file.json]
                                        Generate a terrain world
  script   [-size WxH] [-out file.json] <script.lua>
                                        Build a world from a Lua script`)
}

func mustLoad(path string) *world.Store {
	s, err := world.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return s
}

// --- validate ---

func runValidate(out io.Writer, dir string) int {
	entries, err := os.ReadDir(dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FAIL: %v\n", err)
		return 1
	}

	errors, valid := 0, 0
	seen := make(map[string]string)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		fmt.Fprintf(out, "Validating %s...\n", entry.Name())

		s, err := world.Load(filepath.Join(dir, entry.Name()))
		if err != nil {
			fmt.Fprintf(out, "  ERROR: %v\n", err)
			errors++
			continue
		}
		if prev, dup := seen[s.Name]; dup {
			fmt.Fprintf(out, "  ERROR: name %q already used by %s\n", s.Name, prev)
			errors++
			continue
		}
		seen[s.Name] = entry.Name()
		valid++

		w, h := coords.WorldExtent(s)
		fmt.Fprintf(out, "  OK %q (%dx%d tiles, %dx%d characters, %d patterns)\n",
			s.Name, s.WidthInTiles(), s.HeightInTiles(), w, h, len(s.PatternUsage()))
	}

	if errors > 0 {
		fmt.Fprintf(out, "\n%d error(s) found\n", errors)
		return 1
	}
	fmt.Fprintf(out, "\nAll %d worlds valid\n", valid)
	return 0
}

// --- list ---

func runList(out io.Writer, dir string) int {
	all, err := world.LoadDir(dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FAIL: %v\n", err)
		return 1
	}
	for _, name := range world.Names(all) {
		s := all[name]
		fmt.Fprintf(out, "%-20s %3dx%-3d\n", name, s.WidthInTiles(), s.HeightInTiles())
	}
	return 0
}

// --- viz ---

func runViz(s *world.Store) {
	fmt.Printf("%s (%dx%d tiles, %dx%d characters)\n", s.Name, s.WidthInTiles(), s.HeightInTiles(), s.WidthChars(), s.HeightChars())

	var sb strings.Builder
	for y := 0; y < s.HeightChars(); y++ {
		sb.Reset()
		for x := 0; x < s.WidthChars(); x++ {
			render.WriteCellSGR(&sb, render.TextCell(coords.CharAtWorld(s, x, y), true))
		}
		sb.WriteString(render.Reset)
		fmt.Println(sb.String())
	}
}

// --- stats ---

func runStats(out io.Writer, s *world.Store) {
	total := s.WidthInTiles() * s.HeightInTiles()
	fmt.Fprintf(out, "%s (%dx%d = %d tiles)\n\n", s.Name, s.WidthInTiles(), s.HeightInTiles(), total)

	type entry struct {
		id    uint8
		count int
	}
	var sorted []entry
	for id, count := range s.PatternUsage() {
		sorted = append(sorted, entry{id, count})
	}
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].count != sorted[j].count {
			return sorted[i].count > sorted[j].count
		}
		return sorted[i].id < sorted[j].id
	})

	for _, e := range sorted {
		pct := float64(e.count) / float64(total) * 100
		bar := strings.Repeat("█", int(pct/2))
		fmt.Fprintf(out, "  %3d %-9s %5d (%5.1f%%) %s\n", e.id, patternName(e.id), e.count, pct, bar)
	}
	fmt.Fprintf(out, "\nPatterns used: %d/%d\n", len(sorted), world.NumPatterns)
}

func patternName(id uint8) string {
	if int(id) < len(world.TerrainNames) {
		return world.TerrainNames[id]
	}
	return ""
}

// --- gen / script ---

func runGen(args []string) int {
	fs := flag.NewFlagSet("gen", flag.ExitOnError)
	seed := fs.Int64("seed", 0, "random seed (0 = random)")
	size := fs.String("size", "32x16", "world size in tiles as WxH")
	name := fs.String("name", "", "world name")
	out := fs.String("out", "", "output file (default: stdout)")
	fs.Parse(args)

	w, h, err := parseSize(*size)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	s, err := world.Generate(w, h, *seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if *name != "" {
		s.Name = *name
	}
	fmt.Fprintf(os.Stderr, "Generated %q (%dx%d tiles, seed %d)\n", s.Name, w, h, *seed)
	return write(s, *out)
}

func runScript(args []string) int {
	fs := flag.NewFlagSet("script", flag.ExitOnError)
	size := fs.String("size", "32x16", "world size in tiles as WxH")
	out := fs.String("out", "", "output file (default: stdout)")
	fs.Parse(args)
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: worldtool script [-size WxH] [-out file.json] <script.lua>")
		return 1
	}

	w, h, err := parseSize(*size)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	s, err := world.RunScript(fs.Arg(0), w, h)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return write(s, *out)
}

func write(s *world.Store, out string) int {
	var err error
	if out == "" {
		err = s.Encode(os.Stdout)
	} else {
		err = s.Save(out)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func parseSize(s string) (int, int, error) {
	parts := strings.SplitN(s, "x", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid size %q (expected WxH)", s)
	}
	w, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid width %q", parts[0])
	}
	h, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid height %q", parts[1])
	}
	return w, h, nil
}
