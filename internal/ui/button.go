// internal/ui/button.go
package ui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"

	"go-landing/internal/magnetic"
	"go-landing/pkg/render"
)

// Viewport — источник текущего смещения прокрутки.
type Viewport interface {
	Offset() float64
}

// Button — кликабельный элемент страницы. Кнопка с Marker == config.MagneticMarker
// регистрируется в магнитном движке и принимает его преобразования.
type Button struct {
	Rect     magnetic.Rect // в координатах страницы (или экрана, если Viewport == nil)
	Text     string
	Marker   string
	Action   func()
	Viewport Viewport

	TextColor color.RGBA
	BgColor   color.RGBA

	transform magnetic.Transform
	hovered   bool
}

// NewButton создает новую кнопку.
func NewButton(rect magnetic.Rect, text, marker string, action func()) *Button {
	return &Button{
		Rect:      rect,
		Text:      text,
		Marker:    marker,
		Action:    action,
		transform: magnetic.Identity,
	}
}

// Bounds возвращает прямоугольник в координатах вьюпорта.
func (b *Button) Bounds() magnetic.Rect {
	r := b.Rect
	if b.Viewport != nil {
		r.Y -= b.Viewport.Offset()
	}
	return r
}

// SetTransform принимает преобразование от магнитного движка.
func (b *Button) SetTransform(t magnetic.Transform) {
	b.transform = t
}

// Transform возвращает текущее преобразование.
func (b *Button) Transform() magnetic.Transform {
	return b.transform
}

// Contains проверяет попадание указателя в кнопку.
func (b *Button) Contains(x, y float64) bool {
	return b.Bounds().Contains(x, y)
}

// SetHovered отмечает наведение указателя.
func (b *Button) SetHovered(h bool) {
	b.hovered = h
}

// Hovered сообщает, находится ли указатель над кнопкой.
func (b *Button) Hovered() bool {
	return b.hovered
}

// Click вызывает действие кнопки.
func (b *Button) Click() {
	if b.Action != nil {
		b.Action()
	}
}

// Draw отрисовывает кнопку с применённым преобразованием.
func (b *Button) Draw(screen *ebiten.Image, face font.Face) {
	r := b.Bounds()
	bg := b.BgColor
	if b.hovered {
		bg = render.ColorLerp(bg, color.RGBA{255, 255, 255, bg.A}, 0.2)
	}

	var geo ebiten.GeoM
	geo.Scale(r.W, r.H)
	geo.Translate(-r.W/2, -r.H/2)
	b.place(&geo, r)

	op := &ebiten.DrawImageOptions{GeoM: geo}
	op.ColorScale.ScaleWithColor(bg)
	screen.DrawImage(pixel(), op)

	if b.Text == "" || face == nil {
		return
	}
	bounds := text.BoundString(face, b.Text)
	var tgeo ebiten.GeoM
	tgeo.Translate(-float64(bounds.Dx())/2-float64(bounds.Min.X), -float64(bounds.Min.Y)-float64(bounds.Dy())/2)
	b.place(&tgeo, r)

	top := &ebiten.DrawImageOptions{GeoM: tgeo}
	top.ColorScale.ScaleWithColor(b.TextColor)
	text.DrawWithOptions(screen, b.Text, face, top)
}

// place переносит геометрию, центрированную в нуле, в центр кнопки
// с учётом масштаба, поворота и сдвига.
func (b *Button) place(geo *ebiten.GeoM, r magnetic.Rect) {
	t := b.transform
	cx, cy := r.Center()
	geo.Scale(t.Scale, t.Scale)
	geo.Rotate(t.Rotate * math.Pi / 180)
	geo.Translate(cx+t.TX, cy+t.TY)
}
