// Package timer provides a cooperative scheduler for one-shot and repeating
// timers driven by the frame loop instead of wall clock.
package timer

import "time"

// ID identifies a scheduled timer. The zero ID is never issued.
type ID uint64

type entry struct {
	id       ID
	due      time.Duration
	interval time.Duration // 0 for one-shot
	seq      uint64
	fn       func()
}

// Scheduler owns virtual time and the set of pending timers.
// It is not safe for concurrent use; all calls happen on the update goroutine.
type Scheduler struct {
	now     time.Duration
	nextID  ID
	seq     uint64
	entries map[ID]*entry
}

// NewScheduler creates a scheduler with virtual time at zero.
func NewScheduler() *Scheduler {
	return &Scheduler{
		entries: make(map[ID]*entry),
	}
}

// Now returns the current virtual time.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// Pending returns the number of timers that have not fired or been cancelled.
func (s *Scheduler) Pending() int {
	return len(s.entries)
}

// After schedules fn to run once, d after the current virtual time.
// A non-positive d fires on the next Advance.
func (s *Scheduler) After(d time.Duration, fn func()) ID {
	if d < 0 {
		d = 0
	}
	return s.add(d, 0, fn)
}

// Every schedules fn to run every d. Returns 0 and schedules nothing if d <= 0.
func (s *Scheduler) Every(d time.Duration, fn func()) ID {
	if d <= 0 {
		return 0
	}
	return s.add(d, d, fn)
}

// Cancel removes a pending timer. Reports whether the timer was pending.
func (s *Scheduler) Cancel(id ID) bool {
	if _, ok := s.entries[id]; !ok {
		return false
	}
	delete(s.entries, id)
	return true
}

// Advance moves virtual time forward by dt, firing every timer that comes due
// in deadline order. Ties fire in registration order. Now reports the
// timer's deadline while its callback runs, and repeating timers catch up
// when dt spans several intervals.
func (s *Scheduler) Advance(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	target := s.now + dt
	for {
		e := s.earliest(target)
		if e == nil {
			break
		}
		s.now = e.due
		if e.interval > 0 {
			e.due += e.interval
		} else {
			delete(s.entries, e.id)
		}
		e.fn()
	}
	s.now = target
}

func (s *Scheduler) add(delay, interval time.Duration, fn func()) ID {
	s.nextID++
	s.seq++
	e := &entry{
		id:       s.nextID,
		due:      s.now + delay,
		interval: interval,
		seq:      s.seq,
		fn:       fn,
	}
	s.entries[e.id] = e
	return e.id
}

// earliest returns the next timer due at or before limit, or nil.
func (s *Scheduler) earliest(limit time.Duration) *entry {
	var best *entry
	for _, e := range s.entries {
		if e.due > limit {
			continue
		}
		if best == nil || e.due < best.due || (e.due == best.due && e.seq < best.seq) {
			best = e
		}
	}
	return best
}
