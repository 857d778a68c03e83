package tui

import "testing"

func TestTeaSchedulerDrain(t *testing.T) {
	s := newTeaScheduler()

	if s.Drain() != nil {
		t.Error("Drain() on an empty scheduler should be nil")
	}

	fired := 0
	s.Schedule(0, func() { fired++ })
	cmd := s.Drain()
	if cmd == nil {
		t.Fatal("Drain() should return the scheduled tick")
	}
	if s.Drain() != nil {
		t.Error("second Drain() should be nil")
	}

	for _, msg := range ticks(cmd) {
		msg.fire()
	}
	if fired != 1 {
		t.Errorf("fired %d times, expected 1", fired)
	}
}
