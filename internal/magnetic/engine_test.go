package magnetic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTarget struct {
	bounds    Rect
	transform Transform
	calls     int
}

func (f *fakeTarget) Bounds() Rect { return f.bounds }

func (f *fakeTarget) SetTransform(t Transform) {
	f.transform = t
	f.calls++
}

func newTarget(cx, cy float64) *fakeTarget {
	return &fakeTarget{bounds: Rect{X: cx - 25, Y: cy - 25, W: 50, H: 50}, transform: Identity}
}

func TestCompute(t *testing.T) {
	cfg := DefaultConfig()

	tr := Compute(100, 100, 130, 140, cfg)
	assert.InDelta(t, 2.25, tr.TX, 1e-9)
	assert.InDelta(t, 3.0, tr.TY, 1e-9)
	assert.InDelta(t, 0.6, tr.Rotate, 1e-9)
	assert.InDelta(t, 1.025, tr.Scale, 1e-9)

	assert.Equal(t, Identity, Compute(100, 100, 400, 100, cfg), "no rotation outside the falloff radius")
	assert.Equal(t, Identity, Compute(100, 100, 200, 100, cfg))

	center := Compute(100, 100, 100, 100, cfg)
	assert.Zero(t, center.TX)
	assert.Zero(t, center.Rotate)
	assert.InDelta(t, 1.05, center.Scale, 1e-12)
}

func TestNewEngineValidates(t *testing.T) {
	_, err := NewEngine(Config{MaxDistance: 0})
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestPointerMoveUpdatesEveryTarget(t *testing.T) {
	e, err := NewEngine(DefaultConfig())
	require.NoError(t, err)
	near, far := newTarget(100, 100), newTarget(600, 600)
	e.Mount([]Target{near, far})

	e.PointerMove(110, 100)
	assert.Equal(t, 1, near.calls)
	assert.Equal(t, 1, far.calls)
	assert.Greater(t, near.transform.TX, 0.0)
	assert.Equal(t, Identity, far.transform)
}

func TestDistantTargetStaysIdentity(t *testing.T) {
	e, err := NewEngine(DefaultConfig())
	require.NoError(t, err)
	far := newTarget(1100, 100)
	e.Mount([]Target{far})

	for _, x := range []float64{100, 80, 60, 40} {
		e.PointerMove(x, 100)
		assert.Equal(t, Identity, far.transform, "pointer at x=%v", x)
	}
}

func TestPointerLeaveResetsToIdentity(t *testing.T) {
	e, err := NewEngine(DefaultConfig())
	require.NoError(t, err)
	target := newTarget(100, 100)
	e.Mount([]Target{target})

	for _, p := range [][2]float64{{105, 95}, {120, 110}, {90, 80}} {
		e.PointerMove(p[0], p[1])
		require.False(t, target.transform.IsIdentity())
		e.PointerLeave(target)
		assert.True(t, target.transform.IsIdentity())
		got, ok := e.Transform(target)
		assert.True(t, ok)
		assert.Equal(t, Identity, got)
	}
}

func TestMovingOutOfBoundsTriggersLeave(t *testing.T) {
	e, err := NewEngine(DefaultConfig())
	require.NoError(t, err)
	target := newTarget(100, 100)
	e.Mount([]Target{target})

	e.PointerMove(100, 100)
	assert.InDelta(t, 1.05, target.transform.Scale, 1e-12)

	e.PointerMove(140, 100)
	assert.Equal(t, Identity, target.transform)

	for _, x := range []float64{150, 145, 130} {
		e.PointerMove(x, 100)
		assert.Equal(t, Identity, target.transform, "leave reset holds while outside, x=%v", x)
	}

	e.PointerMove(110, 100)
	assert.False(t, target.transform.IsIdentity(), "re-entering applies the effect again")
}

func TestEmptyTargetSet(t *testing.T) {
	e, err := NewEngine(DefaultConfig())
	require.NoError(t, err)
	e.Mount(nil)
	assert.NotPanics(t, func() {
		e.PointerMove(10, 10)
		e.LeaveAll()
		e.Unmount()
	})
	assert.Equal(t, 0, e.Len())
}

func TestUnmountLeavesNoResidualTransform(t *testing.T) {
	e, err := NewEngine(DefaultConfig())
	require.NoError(t, err)
	a, b := newTarget(100, 100), newTarget(150, 100)
	e.Mount([]Target{a, b, a})
	assert.Equal(t, 2, e.Len())

	e.PointerMove(120, 100)
	e.Unmount()
	assert.True(t, a.transform.IsIdentity())
	assert.True(t, b.transform.IsIdentity())
	assert.Equal(t, 0, e.Len())

	calls := a.calls
	e.PointerMove(120, 100)
	assert.Equal(t, calls, a.calls, "unmounted targets receive no more updates")
}

func TestRemountDoesNotDuplicate(t *testing.T) {
	e, err := NewEngine(DefaultConfig())
	require.NoError(t, err)
	a := newTarget(100, 100)
	e.Mount([]Target{a})
	e.Mount([]Target{a})
	assert.Equal(t, 1, e.Len())

	a.calls = 0
	e.PointerMove(100, 100)
	assert.Equal(t, 1, a.calls)
}

func TestTransformString(t *testing.T) {
	assert.Equal(t, "none", Identity.String())
	tr := Transform{TX: 1, TY: -2, Rotate: 0.5, Scale: 1.05}
	assert.Equal(t, "translate(1.00px, -2.00px) rotate(0.50deg) scale(1.050)", tr.String())
}
