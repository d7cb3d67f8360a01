// internal/state/input.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input — снимок ввода за один Update.
type Input interface {
	Cursor() (x, y int)
	Wheel() float64
	Clicked() bool
	KeyPressed(k ebiten.Key) bool
}

// EbitenInput читает ввод из ebiten.
type EbitenInput struct{}

func (EbitenInput) Cursor() (int, int) {
	return ebiten.CursorPosition()
}

func (EbitenInput) Wheel() float64 {
	_, dy := ebiten.Wheel()
	return dy
}

func (EbitenInput) Clicked() bool {
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}

func (EbitenInput) KeyPressed(k ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(k)
}
