package main

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"eight-way-tiles/internal/coords"
	"eight-way-tiles/internal/input"
	"eight-way-tiles/internal/machine"
	"eight-way-tiles/internal/render"
	"eight-way-tiles/internal/viewport"
)

type result struct {
	frames int
	view   viewport.View
	steps  uint64
	crc    uint32
}

// runHeadless plays the route without a display and checks the screen.
func runHeadless(o options, cfg machine.Config, tiles coords.Tiles) (result, error) {
	joy, err := joystick(o, input.Fixed(input.Released))
	if err != nil {
		return result{}, err
	}

	frames := o.frames
	if frames <= 0 {
		if s, ok := joy.(*input.Script); ok {
			frames = s.Frames() + 1
		} else {
			frames = 1
		}
	}

	m, err := machine.New(cfg, tiles, joy)
	if err != nil {
		return result{}, err
	}
	for i := 0; i < frames; i++ {
		m.StepFrame()
	}

	f := m.Snapshot()
	res := result{frames: frames, view: f.View, steps: f.IRQ.Steps, crc: m.Checksum()}

	if o.outPNG != "" {
		if err := render.SavePNG(o.outPNG, f); err != nil {
			return res, err
		}
		log.Printf("Frame saved: %s", o.outPNG)
	}
	if o.expect != "" {
		want, err := strconv.ParseUint(strings.TrimPrefix(strings.ToLower(o.expect), "0x"), 16, 32)
		if err != nil {
			return res, fmt.Errorf("bad -expect %q: %w", o.expect, err)
		}
		if uint32(want) != res.crc {
			return res, fmt.Errorf("%w: got %08x, want %08x", errChecksum, res.crc, want)
		}
	}
	return res, nil
}
