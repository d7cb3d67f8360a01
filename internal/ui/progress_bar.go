package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ProgressBar — полоса прогресса прокрутки вдоль верхнего края.
type ProgressBar struct {
	Width, Height float32
}

// Draw рисует полосу для прогресса в [0, 1].
func (p ProgressBar) Draw(screen *ebiten.Image, progress float64, c color.RGBA) {
	if progress <= 0 {
		return
	}
	if progress > 1 {
		progress = 1
	}
	vector.DrawFilledRect(screen, 0, 0, p.Width*float32(progress), p.Height, c, false)
}
