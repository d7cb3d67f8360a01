package typewriter

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-landing/internal/timer"
)

func TestRevealIsMinOfTicksAndLength(t *testing.T) {
	const text = "Creative Developer"
	for _, k := range []int{0, 1, 5, len(text), len(text) + 7} {
		s := timer.NewScheduler()
		tw, err := New(text, 80*time.Millisecond, s)
		require.NoError(t, err)
		tw.Mount()

		s.Advance(time.Duration(k) * 80 * time.Millisecond)
		want := min(k, len(text))
		assert.Equal(t, want, tw.Revealed(), "k=%d", k)
		assert.Equal(t, text[:want], tw.Text())
	}
}

func TestPrefixSequence(t *testing.T) {
	s := timer.NewScheduler()
	tw, err := New("héllo", 60*time.Millisecond, s)
	require.NoError(t, err)
	tw.Mount()

	var got []string
	for i := 0; i < 8; i++ {
		got = append(got, tw.Text())
		s.Advance(60 * time.Millisecond)
	}
	want := []string{"", "h", "hé", "hél", "héll", "héllo", "héllo", "héllo"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("prefix sequence mismatch (-want +got):\n%s", diff)
	}
}

func TestStopsTickingWhenDone(t *testing.T) {
	s := timer.NewScheduler()
	tw, err := New("abc", 10*time.Millisecond, s)
	require.NoError(t, err)
	tw.Mount()
	require.True(t, tw.Ticking())

	s.Advance(30 * time.Millisecond)
	assert.True(t, tw.Done())
	assert.False(t, tw.Ticking())
	assert.Equal(t, 0, s.Pending())
}

func TestEmptyTextIsDoneImmediately(t *testing.T) {
	s := timer.NewScheduler()
	tw, err := New("", 10*time.Millisecond, s)
	require.NoError(t, err)
	tw.Mount()
	assert.True(t, tw.Done())
	assert.Equal(t, 0, s.Pending())
}

func TestUnmountStopsReveal(t *testing.T) {
	s := timer.NewScheduler()
	tw, err := New("abcdef", 10*time.Millisecond, s)
	require.NoError(t, err)
	tw.Mount()
	s.Advance(20 * time.Millisecond)
	tw.Unmount()
	s.Advance(time.Second)
	assert.Equal(t, 2, tw.Revealed())
	assert.Equal(t, 0, s.Pending())
}

func TestNewInstanceStartsAtZero(t *testing.T) {
	s := timer.NewScheduler()
	first, err := New("abc", 10*time.Millisecond, s)
	require.NoError(t, err)
	first.Mount()
	s.Advance(time.Second)
	require.True(t, first.Done())

	second, err := New("abc", 10*time.Millisecond, s)
	require.NoError(t, err)
	assert.Equal(t, 0, second.Revealed())
}

func TestInvalidInterval(t *testing.T) {
	_, err := New("abc", 0, timer.NewScheduler())
	assert.ErrorIs(t, err, ErrInvalidInterval)
}
