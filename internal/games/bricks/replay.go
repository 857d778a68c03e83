package bricks

import (
	"github.com/vovakirdan/brickbreaker/internal/config"
	"github.com/vovakirdan/brickbreaker/internal/core"
)

// MaxReplayTicks bounds a replay whose recorded length is unknown.
const MaxReplayTicks = 100_000

// UnknownTicks marks a ReplayRun whose recorded length is unknown.
const UnknownTicks = -1

// ReplayRun is a recorded generation: its starting conditions, the inputs
// applied while it ran and how many ticks it lasted.
type ReplayRun struct {
	Rows   int
	Width  int
	Height int
	Ticks  int     // UnknownTicks when unknown; the replay then runs to the end
	Inputs []Event // InputEvent and ResizedEvent, in recorded order
}

// ReplayResult is the outcome of re-simulating a run.
type ReplayResult struct {
	Status Status
	Score  int
	Ticks  int
}

// Replay re-simulates a recorded run on a manual scheduler.
// The game is deterministic, so identical inputs at identical ticks
// reproduce the recorded outcome. Simulation stops at the recorded tick
// count even if the game is still in progress, as happens for runs that
// were abandoned by a reset.
func Replay(cfg config.BricksConfig, run ReplayRun) ReplayResult {
	sched := NewManualScheduler()
	c := NewController(cfg, sched)
	c.Resize(run.Width, run.Height)
	c.Initialize(run.Rows)
	c.Start()

	limit := run.Ticks
	if limit < 0 {
		limit = MaxReplayTicks
	}

	next := 0
	for c.Status() == StatusInProgress && c.Ticks() < limit {
		next = applyRecorded(c, run.Inputs, next)
		if !sched.Fire() {
			break
		}
	}
	c.Events()

	return ReplayResult{
		Status: c.Status(),
		Score:  c.Score(),
		Ticks:  c.Ticks(),
	}
}

// applyRecorded applies every input recorded at or before the current tick,
// starting at index next. Returns the index of the first unapplied input.
func applyRecorded(c *Controller, inputs []Event, next int) int {
	now := c.Ticks()
	for ; next < len(inputs); next++ {
		switch in := inputs[next].(type) {
		case InputEvent:
			if in.Tick > now {
				return next
			}
			if in.Command.IsMove() {
				c.Handle(in.Command)
			}
		case ResizedEvent:
			if in.Tick > now {
				return next
			}
			c.Resize(in.Width, in.Height)
		}
	}
	return next
}

// RecordedCommand builds the InputEvent a journal entry describes.
func RecordedCommand(tick int, cmd core.Command) Event {
	return InputEvent{Tick: tick, Command: cmd}
}

// RecordedResize builds the ResizedEvent a journal entry describes.
func RecordedResize(tick, width, height int) Event {
	return ResizedEvent{Tick: tick, Width: width, Height: height}
}
