package render

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Fonts holds the faces used by the page.
type Fonts struct {
	Small  font.Face
	Body   font.Face
	Title  font.Face
	Splash font.Face
}

// LoadFonts parses the embedded Go Regular TTF into the required sizes.
func LoadFonts() (*Fonts, error) {
	tt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	face := func(size float64) (font.Face, error) {
		f, err := opentype.NewFace(tt, &opentype.FaceOptions{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create %vpt face: %w", size, err)
		}
		return f, nil
	}

	fonts := &Fonts{}
	for _, v := range []struct {
		dst  *font.Face
		size float64
	}{
		{&fonts.Small, 14},
		{&fonts.Body, 18},
		{&fonts.Title, 44},
		{&fonts.Splash, 56},
	} {
		if *v.dst, err = face(v.size); err != nil {
			return nil, err
		}
	}
	return fonts, nil
}
