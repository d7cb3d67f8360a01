package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

var whitePixel *ebiten.Image

// pixel возвращает общее белое изображение 1x1 для заливок с GeoM.
func pixel() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(color.White)
	}
	return whitePixel
}
