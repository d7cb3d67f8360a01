package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	got []Event
}

func (r *recorder) OnEvent(e Event) {
	r.got = append(r.got, e)
}

func TestDispatchToSubscribers(t *testing.T) {
	d := NewDispatcher()
	a, b := &recorder{}, &recorder{}
	d.Subscribe(ThemeChanged, a)
	d.Subscribe(ThemeChanged, b)
	d.Subscribe(SplashFinished, b)

	d.Dispatch(Event{Type: ThemeChanged, Data: "light"})
	d.Dispatch(Event{Type: FeedReloaded})

	assert.Len(t, a.got, 1)
	assert.Equal(t, "light", a.got[0].Data)
	assert.Len(t, b.got, 1)
}

func TestUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	a := &recorder{}
	d.Subscribe(SplashFinished, a)
	d.Unsubscribe(SplashFinished, a)
	d.Unsubscribe(SnapshotSaved, a)

	d.Dispatch(Event{Type: SplashFinished})
	assert.Empty(t, a.got)
}

func TestListenerFunc(t *testing.T) {
	d := NewDispatcher()
	calls := 0
	l := NewListenerFunc(func(Event) { calls++ })
	d.Subscribe(SnapshotSaved, l)
	d.Dispatch(Event{Type: SnapshotSaved})
	d.Unsubscribe(SnapshotSaved, l)
	d.Dispatch(Event{Type: SnapshotSaved})
	assert.Equal(t, 1, calls)
}
