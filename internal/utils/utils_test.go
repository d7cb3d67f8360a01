package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPRNGIsDeterministicForSeed(t *testing.T) {
	a := NewPRNGService(42)
	b := NewPRNGService(42)
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Float64(), b.Float64())
	}
}

func TestRangeBounds(t *testing.T) {
	r := NewPRNGService(7)
	for i := 0; i < 1000; i++ {
		v := r.Range(2, 6)
		assert.GreaterOrEqual(t, v, 2.0)
		assert.LessOrEqual(t, v, 6.0)
	}
	assert.Equal(t, 3.0, r.Range(3, 3))
}

func TestNormalizeAngle(t *testing.T) {
	assert.InDelta(t, 0, NormalizeAngle(2*math.Pi), 1e-9)
	assert.InDelta(t, -math.Pi/2, NormalizeAngle(3*math.Pi/2), 1e-9)
	assert.InDelta(t, 1, NormalizeAngle(1), 1e-9)
}

func TestEaseInOutCubic(t *testing.T) {
	assert.Equal(t, 0.0, EaseInOutCubic(-1))
	assert.Equal(t, 1.0, EaseInOutCubic(2))
	assert.InDelta(t, 0.5, EaseInOutCubic(0.5), 1e-9)
}

func TestLerpAndClamp(t *testing.T) {
	assert.Equal(t, 0.0, Lerp(0, -800, 0))
	assert.Equal(t, -400.0, Lerp(0, -800, 0.5))
	assert.Equal(t, 1.0, Clamp(3, -1, 1))
	assert.Equal(t, -1.0, Clamp(-3, -1, 1))
}
