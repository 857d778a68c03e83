package bricks

import (
	"sync"
	"time"
)

// timerScheduler schedules ticks on real timers, so tests can drive the
// controller from timer goroutines the way a live clock would.
// Callbacks run on timer goroutines; the controller serializes them.
type timerScheduler struct {
	mu      sync.Mutex
	timers  map[*time.Timer]struct{}
	stopped bool
}

// newTimerScheduler creates a scheduler backed by time.AfterFunc.
func newTimerScheduler() *timerScheduler {
	return &timerScheduler{timers: make(map[*time.Timer]struct{})}
}

// Schedule arms fn to run once after delay. It does nothing after Stop.
func (s *timerScheduler) Schedule(delay time.Duration, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return
	}

	// The callback blocks on s.mu until t is assigned below.
	var t *time.Timer
	t = time.AfterFunc(delay, func() {
		s.mu.Lock()
		delete(s.timers, t)
		stopped := s.stopped
		s.mu.Unlock()

		if !stopped {
			fn()
		}
	})
	s.timers[t] = struct{}{}
}

// Pending returns the number of armed timers.
func (s *timerScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}

// Stop cancels every armed timer and rejects further scheduling.
func (s *timerScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopped = true
	for t := range s.timers {
		t.Stop()
		delete(s.timers, t)
	}
}
