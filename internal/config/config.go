// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1280
	ScreenHeight = 800
	TPS          = 60
	MaxDeltaTime = 0.06

	MagneticMarker = "magnetic" // отметка элементов, на которые действует эффект

	CameraDistance = 4.0   // расстояние камеры до центра поля
	FieldScale     = 340.0 // пикселей на единицу поля
	PointSize      = 2.0

	NavHeight         = 56
	ProgressBarHeight = 3
	SectionPadding    = 64
	ScrollStep        = 60.0 // пикселей на щелчок колеса
	FeedDebounceMs    = 300
	WindowTitle       = "Landing"
)

// Palette — набор цветов одной темы.
type Palette struct {
	Background color.RGBA
	Point      color.RGBA
	Text       color.RGBA
	TextMuted  color.RGBA
	Accent     color.RGBA
	Surface    color.RGBA
	Trail      color.RGBA
	Splash     color.RGBA
}

var (
	DarkPalette = Palette{
		Background: color.RGBA{10, 10, 20, 255},
		Point:      color.RGBA{120, 160, 255, 255},
		Text:       color.RGBA{240, 240, 240, 255},
		TextMuted:  color.RGBA{150, 150, 170, 255},
		Accent:     color.RGBA{70, 130, 180, 255},
		Surface:    color.RGBA{30, 30, 45, 220},
		Trail:      color.RGBA{140, 180, 255, 255},
		Splash:     color.RGBA{0, 0, 0, 255},
	}
	LightPalette = Palette{
		Background: color.RGBA{245, 245, 250, 255},
		Point:      color.RGBA{60, 80, 160, 255},
		Text:       color.RGBA{20, 20, 30, 255},
		TextMuted:  color.RGBA{90, 90, 110, 255},
		Accent:     color.RGBA{220, 60, 60, 255},
		Surface:    color.RGBA{255, 255, 255, 230},
		Trail:      color.RGBA{70, 100, 200, 255},
		Splash:     color.RGBA{20, 20, 30, 255},
	}
)
