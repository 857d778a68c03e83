// Package config provides YAML-based configuration for the brick-breaker.
// Every layout number the game uses (grid size, start positions, velocities,
// step sizes, timing) is a named policy value here rather than a literal.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/brickbreaker/internal/core"
)

// BricksConfig contains all configuration for the brick-breaker game.
type BricksConfig struct {
	Canvas  CanvasConfig  `yaml:"canvas"`
	Grid    GridConfig    `yaml:"grid"`
	Ball    BallConfig    `yaml:"ball"`
	Paddle  PaddleConfig  `yaml:"paddle"`
	Scoring ScoringConfig `yaml:"scoring"`
	Timing  TimingConfig  `yaml:"timing"`
}

// CanvasConfig is the logical play area in game units.
// Height is only a fallback: the platform reports the laid-out height.
type CanvasConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// GridConfig defines the brick field layout.
type GridConfig struct {
	Columns     int `yaml:"columns"`
	MaxRows     int `yaml:"max_rows"`
	DefaultRows int `yaml:"default_rows"`
	BrickWidth  int `yaml:"brick_width"`
	BrickHeight int `yaml:"brick_height"`
}

// BoxConfig is a bounding box in game units.
type BoxConfig struct {
	X0 int `yaml:"x0"`
	Y0 int `yaml:"y0"`
	X1 int `yaml:"x1"`
	Y1 int `yaml:"y1"`
}

// Box converts the config entry to a core.Box.
func (b BoxConfig) Box() core.Box {
	return core.NewBox(b.X0, b.Y0, b.X1, b.Y1)
}

// BallConfig defines the ball's starting box and velocity.
type BallConfig struct {
	Start BoxConfig `yaml:"start"`
	VX    int       `yaml:"vx"`
	VY    int       `yaml:"vy"`
}

// PaddleConfig defines the paddle's starting box and movement step.
type PaddleConfig struct {
	Start BoxConfig `yaml:"start"`
	Step  int       `yaml:"step"`
}

// ScoringConfig defines how destroyed bricks are scored.
type ScoringConfig struct {
	PointsPerBrick int `yaml:"points_per_brick"`
}

// TimingConfig defines the tick schedule.
type TimingConfig struct {
	TickDelayMS int `yaml:"tick_delay_ms"`
}

// TickDelay returns the delay between two ticks.
func (t TimingConfig) TickDelay() time.Duration {
	return time.Duration(t.TickDelayMS) * time.Millisecond
}

// ClampRows limits a requested row count to [0, MaxRows].
func (g GridConfig) ClampRows(rows int) int {
	return core.Clamp(rows, 0, g.MaxRows)
}

// Validate reports every inconsistent value in the config.
func (c BricksConfig) Validate() error {
	var errs []error

	if c.Canvas.Width <= 0 {
		errs = append(errs, fmt.Errorf("canvas.width must be positive, got %d", c.Canvas.Width))
	}
	if c.Canvas.Height <= 0 {
		errs = append(errs, fmt.Errorf("canvas.height must be positive, got %d", c.Canvas.Height))
	}
	if c.Grid.Columns <= 0 {
		errs = append(errs, fmt.Errorf("grid.columns must be positive, got %d", c.Grid.Columns))
	}
	if c.Grid.MaxRows < 0 {
		errs = append(errs, fmt.Errorf("grid.max_rows must not be negative, got %d", c.Grid.MaxRows))
	}
	if c.Grid.BrickWidth <= 0 || c.Grid.BrickHeight <= 0 {
		errs = append(errs, fmt.Errorf("grid brick size must be positive, got %dx%d", c.Grid.BrickWidth, c.Grid.BrickHeight))
	}
	if c.Ball.Start.X1 <= c.Ball.Start.X0 || c.Ball.Start.Y1 <= c.Ball.Start.Y0 {
		errs = append(errs, errors.New("ball.start must have positive width and height"))
	}
	if c.Paddle.Start.X1 <= c.Paddle.Start.X0 || c.Paddle.Start.Y1 <= c.Paddle.Start.Y0 {
		errs = append(errs, errors.New("paddle.start must have positive width and height"))
	}
	if c.Paddle.Step <= 0 {
		errs = append(errs, fmt.Errorf("paddle.step must be positive, got %d", c.Paddle.Step))
	}
	if c.Scoring.PointsPerBrick <= 0 {
		errs = append(errs, fmt.Errorf("scoring.points_per_brick must be positive, got %d", c.Scoring.PointsPerBrick))
	}
	if c.Timing.TickDelayMS <= 0 {
		errs = append(errs, fmt.Errorf("timing.tick_delay_ms must be positive, got %d", c.Timing.TickDelayMS))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid bricks config: %w", errors.Join(errs...))
	}
	return nil
}
