package bricks

import (
	"sort"
	"sync"
	"time"
)

// Scheduler runs a function once after a delay. The controller re-arms it
// at the end of every tick, forming a self-rescheduling chain.
type Scheduler interface {
	Schedule(delay time.Duration, fn func())
}

// ManualScheduler queues scheduled functions until the caller fires them.
// It keeps a virtual clock so tests and replays run without waiting.
type ManualScheduler struct {
	mu    sync.Mutex
	queue []scheduled
	now   time.Duration
}

type scheduled struct {
	at time.Duration
	fn func()
}

// NewManualScheduler creates an empty manual scheduler.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

// Schedule queues fn to run delay after the current virtual time.
func (s *ManualScheduler) Schedule(delay time.Duration, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.queue = append(s.queue, scheduled{at: s.now + delay, fn: fn})
	sort.SliceStable(s.queue, func(i, j int) bool {
		return s.queue[i].at < s.queue[j].at
	})
}

// Pending returns the number of queued functions.
func (s *ManualScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.queue)
}

// Now returns the virtual time of the last fired function.
func (s *ManualScheduler) Now() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now
}

// Fire runs the earliest queued function and advances the virtual clock to it.
// Returns false if nothing was queued.
func (s *ManualScheduler) Fire() bool {
	s.mu.Lock()
	if len(s.queue) == 0 {
		s.mu.Unlock()
		return false
	}
	next := s.queue[0]
	s.queue = s.queue[1:]
	s.now = next.at
	s.mu.Unlock()

	next.fn()
	return true
}

// RunUntilIdle fires queued functions until the queue is empty or limit
// functions have run. Returns the number fired.
func (s *ManualScheduler) RunUntilIdle(limit int) int {
	fired := 0
	for fired < limit && s.Fire() {
		fired++
	}
	return fired
}
