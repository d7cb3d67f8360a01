// Package magnetic displaces registered elements toward the pointer with a
// linear falloff, the "magnetic" hover effect.
package magnetic

import (
	"errors"
	"fmt"
	"math"
)

var ErrInvalidConfig = errors.New("magnetic: invalid config")

// Rect — ограничивающий прямоугольник в пикселях вьюпорта.
type Rect struct {
	X, Y, W, H float64
}

// Center возвращает центр прямоугольника.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Contains проверяет, лежит ли точка внутри прямоугольника.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Transform — визуальное преобразование элемента: сдвиг, поворот в градусах, масштаб.
type Transform struct {
	TX, TY float64
	Rotate float64
	Scale  float64
}

// Identity — отсутствие преобразования.
var Identity = Transform{Scale: 1}

func (t Transform) IsIdentity() bool {
	return t == Identity
}

func (t Transform) String() string {
	if t.IsIdentity() {
		return "none"
	}
	return fmt.Sprintf("translate(%.2fpx, %.2fpx) rotate(%.2fdeg) scale(%.3f)", t.TX, t.TY, t.Rotate, t.Scale)
}

// Target — элемент, на который действует эффект. Bounds запрашивается лениво
// при каждом движении указателя. Реализации должны быть сравнимыми (указатели).
type Target interface {
	Bounds() Rect
	SetTransform(Transform)
}

// Config — параметры эффекта.
type Config struct {
	MaxDistance float64 // радиус спада, px
	Pull        float64 // доля смещения к указателю
	Twist       float64 // градусов поворота на пиксель dx
	Grow        float64 // прирост масштаба при strength = 1
}

// DefaultConfig возвращает параметры по умолчанию.
func DefaultConfig() Config {
	return Config{MaxDistance: 100, Pull: 0.15, Twist: 0.02, Grow: 0.05}
}

// Validate проверяет параметры.
func (c Config) Validate() error {
	if !(c.MaxDistance > 0) || math.IsInf(c.MaxDistance, 0) {
		return fmt.Errorf("%w: max distance must be positive, got %v", ErrInvalidConfig, c.MaxDistance)
	}
	return nil
}

// Compute — преобразование для элемента с центром (cx, cy) при указателе в (px, py).
// За пределами MaxDistance преобразования нет.
func Compute(cx, cy, px, py float64, cfg Config) Transform {
	dx := px - cx
	dy := py - cy
	dist := math.Sqrt(dx*dx + dy*dy)
	if dist >= cfg.MaxDistance {
		return Identity
	}
	strength := math.Max(0, (cfg.MaxDistance-dist)/cfg.MaxDistance)

	return Transform{
		TX:     dx * cfg.Pull * strength,
		TY:     dy * cfg.Pull * strength,
		Rotate: dx * cfg.Twist,
		Scale:  1 + strength*cfg.Grow,
	}
}
