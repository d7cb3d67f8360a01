package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"

	"go-landing/internal/field"
)

func TestProjectCenter(t *testing.T) {
	p := Projector{CX: 640, CY: 400, Scale: 300, Distance: 4}
	x, y, f, ok := p.Project(field.Vec3{})
	assert.True(t, ok)
	assert.Equal(t, 640.0, x)
	assert.Equal(t, 400.0, y)
	assert.Equal(t, 1.0, f)
}

func TestProjectPerspective(t *testing.T) {
	p := Projector{CX: 0, CY: 0, Scale: 100, Distance: 4}
	_, _, near, _ := p.Project(field.Vec3{Z: 1})
	_, _, far, _ := p.Project(field.Vec3{Z: -1})
	assert.Greater(t, near, 1.0)
	assert.Less(t, far, 1.0)

	x, y, _, _ := p.Project(field.Vec3{X: 1, Y: 1})
	assert.Equal(t, 100.0, x)
	assert.Equal(t, -100.0, y, "screen Y grows downward")

	_, _, _, ok := p.Project(field.Vec3{Z: 4})
	assert.False(t, ok)
}

func TestColorHelpers(t *testing.T) {
	c := color.RGBA{200, 100, 50, 255}
	assert.Equal(t, color.RGBA{100, 50, 25, 255}, DarkenColor(c))
	assert.Equal(t, c, ColorLerp(c, color.RGBA{}, 0))
	assert.Equal(t, color.NRGBA{200, 100, 50, 127}, WithAlpha(c, 0.5))
	assert.Equal(t, uint8(0), WithAlpha(c, -1).A)

	r, g, b, a := premultiplied(color.RGBA{255, 0, 0, 255}, 0.5)
	assert.InDelta(t, 0.5, r, 1e-6)
	assert.Zero(t, g)
	assert.Zero(t, b)
	assert.InDelta(t, 0.5, a, 1e-6)
}

func TestLoadFonts(t *testing.T) {
	fonts, err := LoadFonts()
	assert.NoError(t, err)
	assert.NotNil(t, fonts.Title)
	assert.NotNil(t, fonts.Splash)
}
