package timer

import "time"

// Group tracks the timers a single component owns so they can be cancelled
// together on a state transition or on unmount.
type Group struct {
	s   *Scheduler
	ids map[ID]struct{}
}

// NewGroup creates an empty group bound to s.
func NewGroup(s *Scheduler) *Group {
	return &Group{s: s, ids: make(map[ID]struct{})}
}

// After schedules a one-shot timer owned by the group.
func (g *Group) After(d time.Duration, fn func()) ID {
	var id ID
	id = g.s.After(d, func() {
		delete(g.ids, id)
		fn()
	})
	g.ids[id] = struct{}{}
	return id
}

// Every schedules a repeating timer owned by the group.
func (g *Group) Every(d time.Duration, fn func()) ID {
	id := g.s.Every(d, fn)
	if id != 0 {
		g.ids[id] = struct{}{}
	}
	return id
}

// Cancel cancels one timer of the group.
func (g *Group) Cancel(id ID) bool {
	if _, ok := g.ids[id]; !ok {
		return false
	}
	delete(g.ids, id)
	return g.s.Cancel(id)
}

// CancelAll cancels every pending timer of the group.
func (g *Group) CancelAll() {
	for id := range g.ids {
		g.s.Cancel(id)
	}
	clear(g.ids)
}

// Len returns the number of pending timers owned by the group.
func (g *Group) Len() int {
	return len(g.ids)
}

// Now returns the scheduler's virtual time.
func (g *Group) Now() time.Duration {
	return g.s.Now()
}
