package pointer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestZeroBeforeFirstMove(t *testing.T) {
	tr := NewTracker(800, 600)
	_, _, ok := tr.Position()
	assert.False(t, ok)
	nx, ny := tr.Normalized()
	assert.Zero(t, nx)
	assert.Zero(t, ny)
}

func TestSampleReportsMovement(t *testing.T) {
	tr := NewTracker(800, 600)
	assert.True(t, tr.Sample(0, 0), "first sample is a move even at the origin")
	assert.False(t, tr.Sample(0, 0))
	assert.True(t, tr.Sample(1, 0))
}

func TestNormalized(t *testing.T) {
	tests := []struct {
		name   string
		x, y   float64
		nx, ny float64
	}{
		{"center", 400, 300, 0, 0},
		{"top-left", 0, 0, -1, 1},
		{"bottom-right", 800, 600, 1, -1},
		{"outside clamps", 1600, -600, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewTracker(800, 600)
			tr.Sample(tt.x, tt.y)
			nx, ny := tr.Normalized()
			assert.InDelta(t, tt.nx, nx, 1e-9)
			assert.InDelta(t, tt.ny, ny, 1e-9)
		})
	}
}

func TestDegenerateViewport(t *testing.T) {
	tr := NewTracker(0, 0)
	tr.Sample(10, 10)
	nx, ny := tr.Normalized()
	assert.Zero(t, nx)
	assert.Zero(t, ny)
}
