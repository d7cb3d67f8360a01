package render

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-landing/internal/trail"
)

// DrawTrail renders live particles fading, shrinking and rising over their lifetime.
func DrawTrail(screen *ebiten.Image, e *trail.Emitter, now time.Duration, c color.RGBA) {
	cfg := e.Config()
	for _, p := range e.Live() {
		ap := cfg.Appearance(p, now)
		if ap.Opacity <= 0 || ap.Scale <= 0 {
			continue
		}
		radius := float32(p.Size / 2 * ap.Scale)
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y+ap.OffsetY), radius, WithAlpha(c, ap.Opacity), true)
	}
}
