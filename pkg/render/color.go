// pkg/render/color.go
package render

import "image/color"

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// ColorLerp interpolates between two colors, t in [0, 1].
func ColorLerp(c1, c2 color.RGBA, t float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c1.R)*(1-t) + float64(c2.R)*t),
		G: uint8(float64(c1.G)*(1-t) + float64(c2.G)*t),
		B: uint8(float64(c1.B)*(1-t) + float64(c2.B)*t),
		A: uint8(float64(c1.A)*(1-t) + float64(c2.A)*t),
	}
}

// WithAlpha returns c with its alpha multiplied by a (non-premultiplied input).
func WithAlpha(c color.RGBA, a float64) color.NRGBA {
	if a < 0 {
		a = 0
	} else if a > 1 {
		a = 1
	}
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(float64(c.A) * a)}
}

// premultiplied returns vertex color components for c at alpha a.
func premultiplied(c color.RGBA, a float64) (r, g, b, alpha float32) {
	fa := float32(a) * float32(c.A) / 255
	return float32(c.R) / 255 * fa, float32(c.G) / 255 * fa, float32(c.B) / 255 * fa, fa
}
