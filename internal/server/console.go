package server

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/term"

	"eight-way-tiles/internal/machine"
)

// ErrNotTerminal is returned when the console is not attached to a tty.
var ErrNotTerminal = errors.New("stdin is not a terminal")

// sizePoll is how often the console checks for a resized window.
const sizePoll = 250 * time.Millisecond

// ServeConsole runs one session on the local terminal in raw mode.
func ServeConsole(loop *machine.Loop, in *os.File, out io.Writer, name string, tinted bool) error {
	fd := int(in.Fd())
	if !term.IsTerminal(fd) {
		return ErrNotTerminal
	}
	old, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("raw mode: %w", err)
	}
	defer term.Restore(fd, old)

	w, h, err := term.GetSize(fd)
	if err != nil {
		return fmt.Errorf("terminal size: %w", err)
	}

	resize := make(chan Size)
	done := make(chan struct{})
	defer close(done)
	go func() {
		defer close(resize)
		ticker := time.NewTicker(sizePoll)
		defer ticker.Stop()
		last := Size{w, h}
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
			}
			nw, nh, err := term.GetSize(fd)
			if err != nil || (Size{nw, nh}) == last {
				continue
			}
			last = Size{nw, nh}
			select {
			case resize <- last:
			case <-done:
				return
			}
		}
	}()

	rw := struct {
		io.Reader
		io.Writer
	}{in, out}
	return Serve(loop, rw, Session{Name: name, Size: Size{w, h}, Resize: resize, Tinted: tinted})
}
