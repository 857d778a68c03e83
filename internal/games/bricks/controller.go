package bricks

import (
	"sync"

	"github.com/vovakirdan/brickbreaker/internal/config"
	"github.com/vovakirdan/brickbreaker/internal/core"
)

// Controller owns the single live game state and drives it.
// Every entry point takes the same lock, so a paddle move is never observed
// half-applied by a tick, whichever goroutine the scheduler fires on.
//
// Each start opens a new generation. A tick armed by an older generation
// carries its number and is dropped when it fires, so at most one tick chain
// is ever live.
type Controller struct {
	mu     sync.Mutex
	cfg    config.BricksConfig
	sched  Scheduler
	state  *State
	rows   int    // Clamped row count used by Reset
	gen    uint64 // Current generation
	ticks  int    // Ticks completed in the current generation
	events []Event
}

// NewController creates a controller in the Ready state with the configured
// default number of rows.
func NewController(cfg config.BricksConfig, sched Scheduler) *Controller {
	state := NewState(cfg)
	return &Controller{
		cfg:   cfg,
		sched: sched,
		state: state,
		rows:  state.Rows,
	}
}

// Initialize rebuilds the field with the given row count and returns to Ready.
// A running tick chain is invalidated.
func (c *Controller) Initialize(rows int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.initialize(rows)
}

func (c *Controller) initialize(rows int) {
	if c.state.Status == StatusInProgress {
		c.emit(AbandonedEvent{Generation: c.gen, Score: c.state.Score, Ticks: c.ticks})
	}
	c.gen++
	c.ticks = 0
	c.state.Initialize(rows)
	c.rows = c.state.Rows
}

// Start moves a Ready game to InProgress and arms the first tick.
// Returns false if the game was not Ready.
func (c *Controller) Start() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.start()
}

func (c *Controller) start() bool {
	if c.state.Status != StatusReady {
		return false
	}
	c.state.Status = StatusInProgress
	c.emit(StartedEvent{
		Generation: c.gen,
		Rows:       c.state.Rows,
		Width:      c.state.Width,
		Height:     c.state.Height,
	})
	c.arm()
	return true
}

// Reset rebuilds every entity from scratch and starts a new generation.
// It is valid from any status and always ends InProgress.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.initialize(c.rows)
	c.start()
}

// OnInput moves the paddle. Ignored unless the game is in progress.
// Returns true if the paddle moved.
func (c *Controller) OnInput(dir Direction) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.onInput(dir)
}

func (c *Controller) onInput(dir Direction) bool {
	if c.state.Status != StatusInProgress {
		return false
	}

	cmd := core.CommandLeft
	if dir == DirectionRight {
		cmd = core.CommandRight
	}
	c.emit(InputEvent{Generation: c.gen, Tick: c.ticks, Command: cmd})

	return c.state.MovePaddle(dir)
}

// Handle dispatches a discrete command from the platform.
// Returns true if the command changed the game.
func (c *Controller) Handle(cmd core.Command) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch cmd {
	case core.CommandLeft:
		return c.onInput(DirectionLeft)
	case core.CommandRight:
		return c.onInput(DirectionRight)
	case core.CommandStart:
		return c.start()
	case core.CommandReset:
		c.initialize(c.rows)
		return c.start()
	}
	return false
}

// Tick advances the simulation by one step for the given generation.
// Ticks from a stale generation, or arriving when the game is not in
// progress, are dropped. Returns true if a step ran.
func (c *Controller) Tick(gen uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.gen || c.state.Status != StatusInProgress {
		return false
	}

	res := c.state.Step()
	c.ticks++

	for _, b := range res.Destroyed {
		c.emit(BrickDestroyedEvent{
			Generation: c.gen,
			Tick:       c.ticks,
			Row:        b.Row,
			Col:        b.Col,
			Score:      c.state.Score,
		})
	}

	if res.Exited {
		c.stop()
		return true
	}

	c.arm()
	return true
}

// stop settles the terminal status. No tick is armed afterwards.
func (c *Controller) stop() {
	if c.state.Score == c.state.MaxScore() {
		c.state.Status = StatusVictory
	} else {
		c.state.Status = StatusGameOver
	}
	c.emit(FinishedEvent{
		Generation: c.gen,
		Status:     c.state.Status,
		Score:      c.state.Score,
		Ticks:      c.ticks,
	})
}

// arm schedules the next tick of the current generation.
func (c *Controller) arm() {
	gen := c.gen
	c.sched.Schedule(c.cfg.Timing.TickDelay(), func() {
		c.Tick(gen)
	})
}

// Resize updates the play area reported by the platform.
// Non-positive sizes are ignored.
func (c *Controller) Resize(width, height int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if width <= 0 || height <= 0 {
		return
	}
	if width == c.state.Width && height == c.state.Height {
		return
	}
	c.state.Width = width
	c.state.Height = height

	if c.state.Status == StatusInProgress {
		c.emit(ResizedEvent{Generation: c.gen, Tick: c.ticks, Width: width, Height: height})
	}
}

func (c *Controller) emit(e Event) {
	c.events = append(c.events, e)
}

// Events returns and clears the queued events.
func (c *Controller) Events() []Event {
	c.mu.Lock()
	defer c.mu.Unlock()

	events := c.events
	c.events = nil
	return events
}

// Status returns the current status.
func (c *Controller) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Status
}

// Score returns the current score.
func (c *Controller) Score() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Score
}

// MaxScore returns the score of a fully cleared field.
func (c *Controller) MaxScore() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.MaxScore()
}

// Rows returns the clamped row count of the current field.
func (c *Controller) Rows() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Rows
}

// Ball returns a copy of the ball.
func (c *Controller) Ball() Ball {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Ball
}

// Paddle returns a copy of the paddle.
func (c *Controller) Paddle() Paddle {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Paddle
}

// Bricks returns a copy of the bricks still alive.
func (c *Controller) Bricks() []Brick {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.LiveBricks()
}

// Generation returns the current generation number.
func (c *Controller) Generation() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gen
}

// Ticks returns the number of ticks completed in the current generation.
func (c *Controller) Ticks() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ticks
}

// PlayArea returns the current play-area width and height.
func (c *Controller) PlayArea() (int, int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Width, c.state.Height
}
