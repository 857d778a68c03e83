package config

import (
	_ "embed"
)

//go:embed defaults/bricks.yaml
var defaultBricksYAML []byte

// DefaultBricksConfig returns the default brick-breaker configuration.
func DefaultBricksConfig() BricksConfig {
	return BricksConfig{
		Canvas: CanvasConfig{
			Width:  400,
			Height: 270,
		},
		Grid: GridConfig{
			Columns:     8,
			MaxRows:     7,
			DefaultRows: 4,
			BrickWidth:  50,
			BrickHeight: 25,
		},
		Ball: BallConfig{
			Start: BoxConfig{X0: 170, Y0: 225, X1: 185, Y1: 240},
			VX:    -5,
			VY:    -7,
		},
		Paddle: PaddleConfig{
			Start: BoxConfig{X0: 165, Y0: 250, X1: 235, Y1: 260},
			Step:  15,
		},
		Scoring: ScoringConfig{
			PointsPerBrick: 50,
		},
		Timing: TimingConfig{
			TickDelayMS: 80,
		},
	}
}
