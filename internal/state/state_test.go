package state

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"go-landing/internal/app"
)

type recorder struct {
	name string
	log  *[]string
}

func (r *recorder) Enter() { *r.log = append(*r.log, r.name+".enter") }
func (r *recorder) Update(float64) { *r.log = append(*r.log, r.name+".update") }
func (r *recorder) Draw(*ebiten.Image) {}
func (r *recorder) Exit() { *r.log = append(*r.log, r.name+".exit") }

type fakeInput struct {
	x, y    int
	wheel   float64
	clicked bool
	keys    map[ebiten.Key]bool
}

func (f *fakeInput) Cursor() (int, int) { return f.x, f.y }
func (f *fakeInput) Wheel() float64 { return f.wheel }
func (f *fakeInput) Clicked() bool { return f.clicked }
func (f *fakeInput) KeyPressed(k ebiten.Key) bool { return f.keys[k] }

// reset clears one-shot input after an Update.
func (f *fakeInput) reset() {
	f.wheel, f.clicked, f.keys = 0, false, nil
}

func newApp(t *testing.T, opts app.Options) *app.Landing {
	t.Helper()
	opts.Logger = zaptest.NewLogger(t)
	opts.Seed = 7
	l, err := app.New(opts)
	require.NoError(t, err)
	return l
}

func TestStateMachineOrder(t *testing.T) {
	var log []string
	sm := NewStateMachine()
	sm.Update(0.1)

	a := &recorder{name: "a", log: &log}
	b := &recorder{name: "b", log: &log}
	sm.SetState(a)
	sm.Update(0.1)
	sm.SetState(b)
	assert.Same(t, b, sm.Current())
	sm.Close()
	assert.Nil(t, sm.Current())

	assert.Equal(t, []string{"a.enter", "a.update", "a.exit", "b.enter", "b.exit"}, log)
}
