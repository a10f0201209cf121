package ui

import (
	"github.com/hajimehoshi/ebiten/v2"

	"eight-way-tiles/internal/input"
)

// Keyboard is a joystick on the arrow keys with fire on space. It must be
// read from the ebiten update goroutine.
type Keyboard struct{}

func (Keyboard) Read() input.Port {
	return input.MakePort(
		ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		ebiten.IsKeyPressed(ebiten.KeySpace),
	)
}
