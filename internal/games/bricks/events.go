package bricks

import "github.com/vovakirdan/brickbreaker/internal/core"

// Event is something the controller reports to its collaborators.
// Events are queued while the controller holds its lock and handed out by
// Controller.Events, so listeners never run inside a tick.
type Event interface {
	bricksEvent()
}

// StartedEvent is emitted when a generation starts ticking.
type StartedEvent struct {
	Generation uint64
	Rows       int
	Width      int
	Height     int
}

func (StartedEvent) bricksEvent() {}

// InputEvent is emitted for every paddle command accepted while in progress.
// Tick is the number of ticks completed before the command was applied.
type InputEvent struct {
	Generation uint64
	Tick       int
	Command    core.Command
}

func (InputEvent) bricksEvent() {}

// ResizedEvent is emitted when the play area changes while in progress.
type ResizedEvent struct {
	Generation uint64
	Tick       int
	Width      int
	Height     int
}

func (ResizedEvent) bricksEvent() {}

// BrickDestroyedEvent is emitted for each brick removed by a tick.
type BrickDestroyedEvent struct {
	Generation uint64
	Tick       int
	Row        int
	Col        int
	Score      int // Score after this brick was counted
}

func (BrickDestroyedEvent) bricksEvent() {}

// FinishedEvent is emitted once when a generation reaches a terminal status.
type FinishedEvent struct {
	Generation uint64
	Status     Status
	Score      int
	Ticks      int
}

func (FinishedEvent) bricksEvent() {}

// AbandonedEvent is emitted when a running generation is replaced by a reset.
type AbandonedEvent struct {
	Generation uint64
	Score      int
	Ticks      int
}

func (AbandonedEvent) bricksEvent() {}
