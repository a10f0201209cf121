package server

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"sync"
	"sync/atomic"

	"eight-way-tiles/internal/input"
	"eight-way-tiles/internal/machine"
	"eight-way-tiles/internal/render"
)

// Size is a terminal size in cells.
type Size struct {
	Width, Height int
}

// Session describes one terminal attached to the loop.
type Session struct {
	Name   string      // user name; a returning name resumes its view
	Size   Size        // initial terminal size
	Resize <-chan Size // optional size updates
	Tinted bool        // start in colour-per-code mode
}

// Serve runs a machine for the terminal on rw until the user quits, the
// input side fails or the loop drops the session. Arrow keys and WASD
// drive the joystick, t toggles tinted output, q or Ctrl-C quits.
func Serve(loop *machine.Loop, rw io.ReadWriter, s Session) error {
	name := s.Name
	if name == "" {
		name = "Anonymous"
	}

	keys := input.NewKeys()
	id, frames, err := loop.AddSession(name, keys)
	if err != nil {
		return fmt.Errorf("start session for %s: %w", name, err)
	}
	log.Printf("Session connected: %s (%s)", name, id)
	defer func() {
		loop.RemoveSession(id)
		log.Printf("Session disconnected: %s (%s)", name, id)
	}()

	var sizeMu sync.Mutex
	size := s.Size
	var tinted atomic.Bool
	tinted.Store(s.Tinted)

	engine := render.NewEngine(size.Width, size.Height)

	io.WriteString(rw, render.EnableAltScreen())
	io.WriteString(rw, render.HideCursor())
	io.WriteString(rw, render.ClearScreen())
	defer func() {
		io.WriteString(rw, render.ShowCursor())
		io.WriteString(rw, render.DisableAltScreen())
	}()

	quitCh := make(chan struct{})

	// Goroutine: read input
	go func() {
		buf := make([]byte, 64)
		for {
			n, err := rw.Read(buf)
			if err != nil {
				close(quitCh)
				return
			}
			if bytes.ContainsAny(buf[:n], "tT") {
				tinted.Store(!tinted.Load())
			}
			if keys.Feed(buf[:n]) {
				close(quitCh)
				return
			}
		}
	}()

	if s.Resize != nil {
		go func() {
			for sz := range s.Resize {
				sizeMu.Lock()
				size = sz
				sizeMu.Unlock()
			}
		}()
	}

	for {
		select {
		case <-quitCh:
			return nil
		case f, ok := <-frames:
			if !ok {
				return nil
			}

			sizeMu.Lock()
			sz := size
			sizeMu.Unlock()

			if t := tinted.Load(); t != engine.Tinted {
				engine.Tinted = t
				engine.Resize(sz.Width, sz.Height)
			}
			if out := engine.Render(f, sz.Width, sz.Height); len(out) > 0 {
				if _, err := io.WriteString(rw, out); err != nil {
					return fmt.Errorf("write frame: %w", err)
				}
			}
		}
	}
}
