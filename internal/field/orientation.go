package field

import (
	"fmt"
	"math"

	"go-landing/internal/pointer"
	"go-landing/internal/utils"
)

// Orientation — углы поворота поля (рыскание вокруг Y, тангаж вокруг X).
type Orientation struct {
	Yaw, Pitch float64
}

// Rates — угловые скорости вращения поля.
type Rates struct {
	Yaw         float64 // рад/с
	Pitch       float64 // рад/с
	PointerGain float64 // вклад нормализованного смещения указателя
}

// DefaultRates возвращает медленное фоновое вращение.
func DefaultRates() Rates {
	return Rates{Yaw: 0.03, Pitch: 0.008, PointerGain: 1e-4}
}

// Advance — чистая функция шага: (ориентация, Δt, указатель) → новая ориентация.
// Горизонтальное смещение указателя добавляется к рысканию, вертикальное к тангажу.
func Advance(prev Orientation, dt, nx, ny float64, r Rates) Orientation {
	if dt <= 0 {
		return prev
	}
	return Orientation{
		Yaw:   utils.NormalizeAngle(prev.Yaw + r.Yaw*dt + nx*dt*r.PointerGain),
		Pitch: utils.NormalizeAngle(prev.Pitch + r.Pitch*dt + ny*dt*r.PointerGain),
	}
}

// Rotate применяет ориентацию к точке: сначала рыскание, затем тангаж.
func Rotate(p Vec3, o Orientation) Vec3 {
	sy, cy := math.Sincos(o.Yaw)
	sp, cp := math.Sincos(o.Pitch)

	x := p.X*cy + p.Z*sy
	z := -p.X*sy + p.Z*cy

	return Vec3{
		X: x,
		Y: p.Y*cp - z*sp,
		Z: p.Y*sp + z*cp,
	}
}

// Config — параметры поля.
type Config struct {
	Count  int
	Radius float64
	Rates  Rates
}

// DefaultConfig возвращает параметры по умолчанию.
func DefaultConfig() Config {
	return Config{Count: 7000, Radius: 1.5, Rates: DefaultRates()}
}

// Validate проверяет число точек и радиус.
func (c Config) Validate() error {
	return validate(c.Count, c.Radius)
}

// Animator владеет облаком точек и его ориентацией.
type Animator struct {
	cloud   *Cloud
	orient  Orientation
	rates   Rates
	pointer pointer.Reader
}

// NewAnimator генерирует облако и возвращает аниматор в нулевой ориентации.
func NewAnimator(cfg Config, rng Source, p pointer.Reader) (*Animator, error) {
	cloud, err := Generate(cfg.Count, cfg.Radius, rng)
	if err != nil {
		return nil, fmt.Errorf("failed to generate point cloud: %w", err)
	}
	return &Animator{cloud: cloud, rates: cfg.Rates, pointer: p}, nil
}

// Tick продвигает ориентацию на dt секунд. Буфер точек не пересоздаётся.
func (a *Animator) Tick(dt float64) {
	var nx, ny float64
	if a.pointer != nil {
		nx, ny = a.pointer.Normalized()
	}
	a.orient = Advance(a.orient, dt, nx, ny, a.rates)
}

// Reset возвращает ориентацию в исходное положение (при повторном монтировании).
func (a *Animator) Reset() {
	a.orient = Orientation{}
}

func (a *Animator) Orientation() Orientation {
	return a.orient
}

func (a *Animator) Cloud() *Cloud {
	return a.cloud
}
