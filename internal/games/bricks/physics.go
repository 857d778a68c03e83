package bricks

import "github.com/vovakirdan/brickbreaker/internal/core"

// StepResult describes what happened during one tick.
type StepResult struct {
	Destroyed []Brick // Bricks destroyed this tick, in field order
	Exited    bool    // Ball box is entirely above or below the play area
}

// Step advances the ball by one tick and resolves every collision.
//
// The bounce model is deliberately simple and order dependent:
//   - every live brick and the paddle overlapping the moved ball is processed;
//     bricks are destroyed and scored
//   - each overlapped entity classified as a side hit reverses both
//     velocity components
//   - if anything overlapped, vertical velocity is reversed once more
//   - touching a side wall reverses horizontal velocity
//
// Step does not change Status; the controller decides what an exit means.
func (s *State) Step() StepResult {
	var res StepResult

	s.Ball.Move()
	ball := s.Ball.Box
	hit := false

	for i := range s.Bricks {
		brick := &s.Bricks[i]
		if !brick.Alive || !ball.Overlaps(brick.Box) {
			continue
		}
		hit = true
		brick.Alive = false
		s.Score += s.cfg.Scoring.PointsPerBrick
		res.Destroyed = append(res.Destroyed, *brick)

		if IsSideHit(ball, brick.Box) {
			s.Ball.Reverse()
		}
	}

	if ball.Overlaps(s.Paddle.Box) {
		hit = true
		if IsSideHit(ball, s.Paddle.Box) {
			s.Ball.Reverse()
		}
	}

	if hit {
		s.Ball.BounceY()
	}

	if HitsSideWall(ball, s.Width) {
		s.Ball.BounceX()
	}

	res.Exited = ExitedVertically(ball, s.Height)
	return res
}

// IsSideHit classifies an overlap between the ball and an entity.
// It is a side hit when the ball sticks out horizontally past either edge
// of the entity and is not flush with its bottom or top edge.
func IsSideHit(ball, entity core.Box) bool {
	outsideX := ball.X0 < entity.X0 || ball.X1 > entity.X1
	offFace := ball.Y1 < entity.Y1 || ball.Y0 > entity.Y0
	return outsideX && offFace
}

// HitsSideWall reports whether the ball crosses the left or right boundary.
func HitsSideWall(ball core.Box, width int) bool {
	return ball.X0 < 0 || ball.X1 > width
}

// ExitedVertically reports whether the ball box lies completely below
// the play area or completely above it.
func ExitedVertically(ball core.Box, height int) bool {
	return ball.Y0 > height || ball.Y1 < 0
}
