// Package field generates the point cloud that fills the background sphere
// and advances its orientation once per presented frame.
package field

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrInvalidCount  = errors.New("field: point count must be positive")
	ErrInvalidRadius = errors.New("field: radius must be positive")
)

// Vec3 — точка в пространстве поля.
type Vec3 struct {
	X, Y, Z float64
}

// Len возвращает расстояние до центра сферы.
func (v Vec3) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Source — источник равномерных случайных чисел в [0, 1).
type Source interface {
	Float64() float64
}

// Cloud — неизменяемый набор точек, равномерно заполняющих шар радиуса Radius.
type Cloud struct {
	points []Vec3
	radius float64
}

// Generate размещает count точек внутри шара радиуса radius с равномерной
// объёмной плотностью: r = R·∛u, θ = 2π·w, φ = acos(2v−1).
func Generate(count int, radius float64, rng Source) (*Cloud, error) {
	if err := validate(count, radius); err != nil {
		return nil, err
	}

	points := make([]Vec3, count)
	for i := range points {
		r := radius * math.Cbrt(rng.Float64())
		theta := 2 * math.Pi * rng.Float64()
		phi := math.Acos(2*rng.Float64() - 1)

		sinPhi := math.Sin(phi)
		points[i] = Vec3{
			X: r * sinPhi * math.Cos(theta),
			Y: r * sinPhi * math.Sin(theta),
			Z: r * math.Cos(phi),
		}
	}
	return &Cloud{points: points, radius: radius}, nil
}

// Len возвращает число точек; оно не меняется за время жизни облака.
func (c *Cloud) Len() int {
	return len(c.points)
}

// At возвращает i-ю точку.
func (c *Cloud) At(i int) Vec3 {
	return c.points[i]
}

// Radius возвращает радиус шара.
func (c *Cloud) Radius() float64 {
	return c.radius
}

func validate(count int, radius float64) error {
	if count <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidCount, count)
	}
	if !(radius > 0) || math.IsInf(radius, 0) {
		return fmt.Errorf("%w: got %v", ErrInvalidRadius, radius)
	}
	return nil
}
