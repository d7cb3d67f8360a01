// internal/ui/indicator.go
package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-landing/internal/magnetic"
	"go-landing/internal/theme"
	"go-landing/pkg/render"
)

// ThemeToggle — круглый переключатель темы, пульсирует после клика.
type ThemeToggle struct {
	*Button
	Radius        float32
	LastClickTime time.Time
	Current       theme.Theme
}

// NewThemeToggle создаёт переключатель с центром (x, y).
func NewThemeToggle(x, y, radius float64, marker string, current theme.Theme, onToggle func()) *ThemeToggle {
	t := &ThemeToggle{
		Radius:  float32(radius),
		Current: current,
	}
	rect := magnetic.Rect{X: x - radius, Y: y - radius, W: 2 * radius, H: 2 * radius}
	t.Button = NewButton(rect, "", marker, func() {
		t.LastClickTime = time.Now()
		onToggle()
	})
	return t
}

// Draw отрисовывает индикатор: полная луна для тёмной темы, солнце с ореолом для светлой.
func (t *ThemeToggle) Draw(screen *ebiten.Image, fill, stroke color.RGBA) {
	elapsed := time.Since(t.LastClickTime).Seconds()
	pulse := 1.0 + 0.3*math.Exp(-elapsed*8)

	r := t.Bounds()
	cx, cy := r.Center()
	tr := t.Transform()
	x := float32(cx + tr.TX)
	y := float32(cy + tr.TY)
	radius := t.Radius * float32(pulse*tr.Scale)
	if t.Hovered() {
		fill = render.ColorLerp(fill, stroke, 0.25)
	}

	vector.DrawFilledCircle(screen, x, y, radius, fill, true)
	vector.StrokeCircle(screen, x, y, radius, 1.5, stroke, true)
	if t.Current == theme.Dark {
		// Серп: смещённый круг цвета обводки вырезает часть диска
		vector.DrawFilledCircle(screen, x+radius*0.35, y-radius*0.25, radius*0.75, stroke, true)
		return
	}
	for i := 0; i < 8; i++ {
		a := float64(i) * math.Pi / 4
		sx, sy := float32(math.Cos(a)), float32(math.Sin(a))
		vector.StrokeLine(screen, x+sx*radius*1.2, y+sy*radius*1.2, x+sx*radius*1.5, y+sy*radius*1.5, 1.5, stroke, true)
	}
}
