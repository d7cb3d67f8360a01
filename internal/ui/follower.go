// internal/ui/follower.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-landing/pkg/render"
)

// FollowerRadius — радиус кольца курсора-спутника.
const FollowerRadius = 12

// DrawFollower рисует кольцо спутника с центром (x, y).
func DrawFollower(screen *ebiten.Image, x, y float64, c color.RGBA) {
	vector.DrawFilledCircle(screen, float32(x), float32(y), FollowerRadius, render.WithAlpha(c, 0.15), true)
	vector.StrokeCircle(screen, float32(x), float32(y), FollowerRadius, 1.5, c, true)
}
