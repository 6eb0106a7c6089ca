// Package timer provides a virtual-clock timer service for tick-driven games.
// The host advances the clock once per simulation tick and due callbacks run
// synchronously, one at a time, on the caller's goroutine.
package timer

import "time"

// ID identifies a scheduled timer. The zero ID never refers to a timer.
type ID uint64

// minInterval keeps periodic timers from spinning inside one Advance call.
const minInterval = time.Millisecond

type entry struct {
	id     ID
	due    time.Duration
	period time.Duration // 0 for one-shot timers
	fn     func()
}

// Service is a cooperative timer service driven by Advance.
// It is not safe for concurrent use.
type Service struct {
	now       time.Duration
	lastID    ID
	timers    map[ID]*entry
	advancing bool
}

// New creates an empty timer service with its clock at zero.
func New() *Service {
	return &Service{
		timers: make(map[ID]*entry),
	}
}

// Now returns the current virtual time.
func (s *Service) Now() time.Duration {
	return s.now
}

// ScheduleAfter runs fn once, delay after the current time.
func (s *Service) ScheduleAfter(delay time.Duration, fn func()) ID {
	if delay < 0 {
		delay = 0
	}
	return s.add(delay, 0, fn)
}

// ScheduleEvery runs fn every interval, starting one interval from now.
func (s *Service) ScheduleEvery(interval time.Duration, fn func()) ID {
	if interval < minInterval {
		interval = minInterval
	}
	return s.add(interval, interval, fn)
}

func (s *Service) add(delay, period time.Duration, fn func()) ID {
	s.lastID++
	id := s.lastID
	s.timers[id] = &entry{
		id:     id,
		due:    s.now + delay,
		period: period,
		fn:     fn,
	}
	return id
}

// Reconfigure changes the period of a repeating timer.
// The wait already in flight keeps its due time; the new period applies
// from the next firing on. Unknown IDs and one-shot timers are ignored.
func (s *Service) Reconfigure(id ID, interval time.Duration) {
	e, ok := s.timers[id]
	if !ok || e.period == 0 {
		return
	}
	if interval < minInterval {
		interval = minInterval
	}
	e.period = interval
}

// Cancel removes a timer. Cancelling an unknown or already fired timer is a no-op.
func (s *Service) Cancel(id ID) {
	delete(s.timers, id)
}

// CancelAll removes every pending timer.
func (s *Service) CancelAll() {
	clear(s.timers)
}

// Pending returns the number of scheduled timers.
func (s *Service) Pending() int {
	return len(s.timers)
}

// Due reports when the given timer fires next.
func (s *Service) Due(id ID) (time.Duration, bool) {
	e, ok := s.timers[id]
	if !ok {
		return 0, false
	}
	return e.due, true
}

// Advance moves the clock forward by d and fires every timer that becomes
// due, in due-time order with ties broken by creation order. Timers
// scheduled by a callback fire in the same call if they fall due within
// the window. Returns the number of callbacks run.
// Calling Advance from inside a callback is a no-op.
func (s *Service) Advance(d time.Duration) int {
	if s.advancing || d < 0 {
		return 0
	}
	s.advancing = true
	defer func() { s.advancing = false }()

	target := s.now + d
	fired := 0

	for {
		next := s.nextDue(target)
		if next == nil {
			break
		}

		s.now = next.due
		if next.period == 0 {
			delete(s.timers, next.id)
		}

		next.fn()
		fired++

		// Reschedule after the callback so a Reconfigure made from inside
		// it applies to the upcoming wait.
		if next.period > 0 {
			if cur, ok := s.timers[next.id]; ok && cur == next {
				next.due = s.now + next.period
			}
		}
	}

	s.now = target
	return fired
}

// nextDue returns the earliest timer due at or before limit.
func (s *Service) nextDue(limit time.Duration) *entry {
	var best *entry
	for _, e := range s.timers {
		if e.due > limit {
			continue
		}
		if best == nil || e.due < best.due || (e.due == best.due && e.id < best.id) {
			best = e
		}
	}
	return best
}
