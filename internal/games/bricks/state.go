// Package bricks implements the brick-breaker game core: the brick field,
// the ball and paddle, the fixed-step collision engine and the lifecycle
// controller that schedules ticks. It has no terminal or UI dependencies.
package bricks

import (
	"fmt"

	"github.com/vovakirdan/brickbreaker/internal/config"
	"github.com/vovakirdan/brickbreaker/internal/core"
)

// Status is the lifecycle state of a game.
type Status int

const (
	StatusReady      Status = iota // Field built, waiting for start
	StatusInProgress               // Ticks are running
	StatusVictory                  // Ball left the play area with every brick destroyed
	StatusGameOver                 // Ball left the play area with bricks remaining
)

// String returns the stable name of the status, as stored in the run journal.
func (s Status) String() string {
	switch s {
	case StatusReady:
		return "ready"
	case StatusInProgress:
		return "in_progress"
	case StatusVictory:
		return "victory"
	case StatusGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Label returns the status text shown to the player.
func (s Status) Label() string {
	switch s {
	case StatusReady:
		return "Ready to start"
	case StatusInProgress:
		return "In progress"
	case StatusVictory:
		return "Victory!"
	case StatusGameOver:
		return "Game Over!"
	default:
		return ""
	}
}

// Terminal reports whether the status ends the tick chain.
func (s Status) Terminal() bool {
	return s == StatusVictory || s == StatusGameOver
}

// ParseStatus converts a name produced by Status.String back to a Status.
func ParseStatus(name string) (Status, error) {
	for _, s := range []Status{StatusReady, StatusInProgress, StatusVictory, StatusGameOver} {
		if s.String() == name {
			return s, nil
		}
	}
	return StatusReady, fmt.Errorf("bricks: unknown status %q", name)
}

// Direction is a horizontal paddle movement.
type Direction int

const (
	DirectionLeft  Direction = -1
	DirectionRight Direction = 1
)

// Brick is one cell of the brick field.
type Brick struct {
	Box   core.Box
	Row   int // Row index, selects the color
	Col   int
	Alive bool
}

// Ball is the moving ball: a bounding box plus an integer velocity per tick.
type Ball struct {
	Box    core.Box
	VX, VY int
}

// Move translates the ball by its velocity.
func (b *Ball) Move() {
	b.Box = b.Box.Translate(b.VX, b.VY)
}

// BounceX reverses horizontal velocity.
func (b *Ball) BounceX() {
	b.VX = -b.VX
}

// BounceY reverses vertical velocity.
func (b *Ball) BounceY() {
	b.VY = -b.VY
}

// Reverse reverses both velocity components.
func (b *Ball) Reverse() {
	b.BounceX()
	b.BounceY()
}

// Paddle is the player's paddle. Only its horizontal position changes.
type Paddle struct {
	Box core.Box
}

// State holds every mutable entity of one game plus the play-area size.
// It is owned by a Controller; it does no locking of its own.
type State struct {
	cfg config.BricksConfig

	Bricks []Brick // All bricks in creation order, destroyed ones included
	Ball   Ball
	Paddle Paddle
	Score  int
	Status Status
	Rows   int

	// Play area in game units. Reported by the platform after layout,
	// so it is read on every tick rather than fixed at construction.
	Width  int
	Height int
}

// NewState creates a state sized to the configured canvas and initialized
// with the configured default row count.
func NewState(cfg config.BricksConfig) *State {
	s := &State{
		cfg:    cfg,
		Width:  cfg.Canvas.Width,
		Height: cfg.Canvas.Height,
	}
	s.Initialize(cfg.Grid.DefaultRows)
	return s
}

// Initialize rebuilds the brick field with the given number of rows,
// puts the ball and paddle at their starting boxes, clears the score and
// sets the status to Ready. Rows are clamped to [0, max_rows].
func (s *State) Initialize(rows int) {
	grid := s.cfg.Grid
	s.Rows = grid.ClampRows(rows)

	s.Bricks = make([]Brick, 0, grid.Columns*s.Rows)
	for col := 0; col < grid.Columns; col++ {
		for row := 0; row < s.Rows; row++ {
			s.Bricks = append(s.Bricks, Brick{
				Box: core.NewBox(
					grid.BrickWidth*col,
					grid.BrickHeight*row,
					grid.BrickWidth*(col+1),
					grid.BrickHeight*(row+1),
				),
				Row:   row,
				Col:   col,
				Alive: true,
			})
		}
	}

	s.Ball = Ball{
		Box: s.cfg.Ball.Start.Box(),
		VX:  s.cfg.Ball.VX,
		VY:  s.cfg.Ball.VY,
	}
	s.Paddle = Paddle{Box: s.cfg.Paddle.Start.Box()}
	s.Score = 0
	s.Status = StatusReady
}

// MovePaddle moves the paddle one step in the given direction.
// The move is dropped when the paddle would leave [0, Width].
// Returns true if the paddle moved.
func (s *State) MovePaddle(dir Direction) bool {
	next := s.Paddle.Box.Translate(int(dir)*s.cfg.Paddle.Step, 0)
	if !next.WithinX(0, s.Width) {
		return false
	}
	s.Paddle.Box = next
	return true
}

// MaxScore is the score reached when every brick is destroyed.
func (s *State) MaxScore() int {
	return s.cfg.Scoring.PointsPerBrick * s.cfg.Grid.Columns * s.Rows
}

// CountAlive returns the number of bricks not yet destroyed.
func (s *State) CountAlive() int {
	count := 0
	for _, b := range s.Bricks {
		if b.Alive {
			count++
		}
	}
	return count
}

// LiveBricks returns a copy of the bricks not yet destroyed.
func (s *State) LiveBricks() []Brick {
	live := make([]Brick, 0, len(s.Bricks))
	for _, b := range s.Bricks {
		if b.Alive {
			live = append(live, b)
		}
	}
	return live
}
