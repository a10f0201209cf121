package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"eight-way-tiles/internal/world"
)

func TestParseSize(t *testing.T) {
	tests := []struct {
		in      string
		w, h    int
		wantErr bool
	}{
		{"32x16", 32, 16, false},
		{"10x7", 10, 7, false},
		{"32", 0, 0, true},
		{"ax16", 0, 0, true},
		{"32xb", 0, 0, true},
		{"", 0, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			w, h, err := parseSize(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if w != tt.w || h != tt.h {
				t.Errorf("size = %dx%d, want %dx%d", w, h, tt.w, tt.h)
			}
		})
	}
}

func TestStats(t *testing.T) {
	s, err := world.Identity(world.MinWidthInTiles, world.MinHeightInTiles)
	if err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	runStats(&out, s)

	got := out.String()
	for _, want := range []string{
		"identity (10x7 = 70 tiles)",
		"Patterns used: 70/256",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("stats output missing %q:\n%s", want, got)
		}
	}
}

func writeWorld(t *testing.T, dir, file, name string) {
	t.Helper()
	s, err := world.Identity(world.MinWidthInTiles, world.MinHeightInTiles)
	if err != nil {
		t.Fatal(err)
	}
	s.Name = name
	if err := s.Save(filepath.Join(dir, file)); err != nil {
		t.Fatal(err)
	}
}

func TestValidateAndList(t *testing.T) {
	dir := t.TempDir()
	writeWorld(t, dir, "a.json", "meadow")
	writeWorld(t, dir, "b.json", "caves")

	var out bytes.Buffer
	if code := runValidate(&out, dir); code != 0 {
		t.Fatalf("validate = %d:\n%s", code, out.String())
	}
	if !strings.Contains(out.String(), "All 2 worlds valid") {
		t.Errorf("validate output:\n%s", out.String())
	}

	out.Reset()
	if code := runList(&out, dir); code != 0 {
		t.Fatalf("list = %d", code)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 || !strings.HasPrefix(lines[0], "caves") || !strings.HasPrefix(lines[1], "meadow") {
		t.Errorf("list output:\n%s", out.String())
	}

	writeWorld(t, dir, "c.json", "caves")
	os.WriteFile(filepath.Join(dir, "d.json"), []byte(`{"name":"tiny","width":2,"height":2}`), 0644)
	out.Reset()
	if code := runValidate(&out, dir); code != 1 {
		t.Errorf("validate with bad worlds = %d", code)
	}
	got := out.String()
	if !strings.Contains(got, `name "caves" already used`) || !strings.Contains(got, "2 error(s) found") {
		t.Errorf("validate output:\n%s", got)
	}

	out.Reset()
	if code := runList(&out, dir); code != 1 {
		t.Error("list accepted a directory with duplicate names")
	}
}
