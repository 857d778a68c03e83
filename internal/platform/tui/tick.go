// Package tui provides the Bubble Tea integration for the brick breaker.
// It handles the terminal UI loop, input mapping, tick scheduling and the
// run journal recorder.
package tui

import (
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// tickMsg carries a scheduled tick back into the update loop.
// The function closes over the generation it was armed for.
type tickMsg struct {
	fire func()
}

// teaScheduler implements bricks.Scheduler on top of tea.Tick.
// Scheduled ticks are collected as commands and handed to Bubble Tea by
// Drain, so every tick runs on the program's update goroutine.
type teaScheduler struct {
	mu      sync.Mutex
	pending []tea.Cmd
}

func newTeaScheduler() *teaScheduler {
	return &teaScheduler{}
}

// Schedule queues a tea.Tick command that delivers fn after delay.
func (s *teaScheduler) Schedule(delay time.Duration, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pending = append(s.pending, tea.Tick(delay, func(time.Time) tea.Msg {
		return tickMsg{fire: fn}
	}))
}

// Drain returns the queued commands as one command, or nil.
func (s *teaScheduler) Drain() tea.Cmd {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.pending) == 0 {
		return nil
	}
	cmds := s.pending
	s.pending = nil
	return tea.Batch(cmds...)
}
