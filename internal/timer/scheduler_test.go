package timer

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestAfterFiresAtDeadline(t *testing.T) {
	s := NewScheduler()
	fired := 0
	var firedAt time.Duration
	s.After(100*time.Millisecond, func() {
		fired++
		firedAt = s.Now()
	})

	s.Advance(99 * time.Millisecond)
	assert.Equal(t, 0, fired)
	assert.Equal(t, 1, s.Pending())

	s.Advance(time.Millisecond)
	assert.Equal(t, 1, fired)
	assert.Equal(t, 100*time.Millisecond, firedAt)
	assert.Equal(t, 0, s.Pending())

	s.Advance(time.Second)
	assert.Equal(t, 1, fired)
}

func TestEveryCatchesUp(t *testing.T) {
	s := NewScheduler()
	var stamps []time.Duration
	s.Every(100*time.Millisecond, func() {
		stamps = append(stamps, s.Now())
	})

	s.Advance(350 * time.Millisecond)
	want := []time.Duration{100 * time.Millisecond, 200 * time.Millisecond, 300 * time.Millisecond}
	if diff := cmp.Diff(want, stamps); diff != "" {
		t.Fatalf("fire times mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 350*time.Millisecond, s.Now())
}

func TestEveryRejectsNonPositiveInterval(t *testing.T) {
	s := NewScheduler()
	assert.Equal(t, ID(0), s.Every(0, func() {}))
	assert.Equal(t, ID(0), s.Every(-time.Second, func() {}))
	assert.Equal(t, 0, s.Pending())
}

func TestCancel(t *testing.T) {
	s := NewScheduler()
	fired := false
	id := s.After(10*time.Millisecond, func() { fired = true })

	require.True(t, s.Cancel(id))
	assert.False(t, s.Cancel(id))
	s.Advance(time.Second)
	assert.False(t, fired)
}

func TestTiesFireInRegistrationOrder(t *testing.T) {
	s := NewScheduler()
	var order []string
	s.After(50*time.Millisecond, func() { order = append(order, "a") })
	s.After(50*time.Millisecond, func() { order = append(order, "b") })
	s.After(20*time.Millisecond, func() { order = append(order, "c") })

	s.Advance(50 * time.Millisecond)
	assert.Equal(t, []string{"c", "a", "b"}, order)
}

func TestCallbackMayCancelAndSchedule(t *testing.T) {
	s := NewScheduler()
	ticks := 0
	var tick ID
	tick = s.Every(10*time.Millisecond, func() {
		ticks++
		if ticks == 3 {
			s.Cancel(tick)
			s.After(5*time.Millisecond, func() { ticks += 100 })
		}
	})

	s.Advance(100 * time.Millisecond)
	assert.Equal(t, 103, ticks)
	assert.Equal(t, 0, s.Pending())
}

func TestGroupCancelAll(t *testing.T) {
	s := NewScheduler()
	g := NewGroup(s)
	fired := 0
	g.After(10*time.Millisecond, func() { fired++ })
	g.Every(5*time.Millisecond, func() { fired++ })
	other := s.After(10*time.Millisecond, func() { fired += 10 })
	require.NotZero(t, other)
	assert.Equal(t, 2, g.Len())

	g.CancelAll()
	assert.Equal(t, 0, g.Len())
	s.Advance(time.Second)
	assert.Equal(t, 10, fired)
}

func TestGroupForgetsFiredOneShot(t *testing.T) {
	s := NewScheduler()
	g := NewGroup(s)
	g.After(10*time.Millisecond, func() {})
	s.Advance(10 * time.Millisecond)
	assert.Equal(t, 0, g.Len())
}
