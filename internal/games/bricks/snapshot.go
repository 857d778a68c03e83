package bricks

import "github.com/vovakirdan/brickbreaker/internal/core"

// Snapshot is a read-only copy of everything the renderer needs.
type Snapshot struct {
	Generation uint64
	Tick       int
	Status     Status
	Score      int
	MaxScore   int
	Rows       int
	Width      int
	Height     int

	Ball   core.Box
	BallVX int
	BallVY int
	Paddle core.Box

	Bricks []Brick // Live bricks only
}

// Snapshot returns the current game state as a Snapshot.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := c.state
	return Snapshot{
		Generation: c.gen,
		Tick:       c.ticks,
		Status:     s.Status,
		Score:      s.Score,
		MaxScore:   s.MaxScore(),
		Rows:       s.Rows,
		Width:      s.Width,
		Height:     s.Height,
		Ball:       s.Ball.Box,
		BallVX:     s.Ball.VX,
		BallVY:     s.Ball.VY,
		Paddle:     s.Paddle.Box,
		Bricks:     s.LiveBricks(),
	}
}

// BricksRemaining returns the number of live bricks in the snapshot.
func (snap *Snapshot) BricksRemaining() int {
	return len(snap.Bricks)
}

// Hash returns a simple hash of the snapshot for determinism testing.
// Conversions wrap on purpose.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Tick)
	h = h*31 + uint64(snap.Status)
	h = h*31 + uint64(snap.Score)
	h = h*31 + uint64(snap.Rows)
	h = h*31 + hashBox(snap.Ball)
	h = h*31 + uint64(int64(snap.BallVX))
	h = h*31 + uint64(int64(snap.BallVY))
	h = h*31 + hashBox(snap.Paddle)

	for _, b := range snap.Bricks {
		h = h*31 + uint64(b.Row*1000+b.Col)
	}

	return h
}

func hashBox(b core.Box) uint64 {
	h := uint64(int64(b.X0))
	h = h*31 + uint64(int64(b.Y0))
	h = h*31 + uint64(int64(b.X1))
	return h*31 + uint64(int64(b.Y1))
}
