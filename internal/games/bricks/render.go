package bricks

import (
	"fmt"

	"github.com/vovakirdan/brickbreaker/internal/core"
)

// Visual characters for rendering
const (
	BrickChar  = '█'
	PaddleChar = '='
	BallChar   = '●'
)

// Minimum play-area size in cells below which only a hint is drawn.
const (
	MinScreenW = 24
	MinScreenH = 10
)

// BrickColors alternate by row.
var BrickColors = []core.Color{core.ColorBlue, core.ColorYellow}

// Render draws the snapshot onto dst, stretching the play area to fill it.
// The screen is cleared first.
func Render(dst *core.Screen, snap Snapshot) {
	dst.Clear()

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		dst.DrawTextCentered(dst.Height()/2, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH))
		return
	}

	renderBricks(dst, snap)
	renderPaddle(dst, snap)
	renderBall(dst, snap)
	renderOverlay(dst, snap)
}

// toCells maps a box in game units to a half-open box in screen cells.
// Every non-empty box covers at least one cell.
func toCells(dst *core.Screen, snap Snapshot, b core.Box) core.Box {
	w, h := dst.Width(), dst.Height()
	cells := core.NewBox(
		core.Scale(b.X0, snap.Width, w),
		core.Scale(b.Y0, snap.Height, h),
		core.Scale(b.X1, snap.Width, w),
		core.Scale(b.Y1, snap.Height, h),
	)
	if cells.X1 <= cells.X0 {
		cells.X1 = cells.X0 + 1
	}
	if cells.Y1 <= cells.Y0 {
		cells.Y1 = cells.Y0 + 1
	}
	return cells
}

func renderBricks(dst *core.Screen, snap Snapshot) {
	for _, brick := range snap.Bricks {
		cells := toCells(dst, snap, brick.Box)
		// Leave a one-cell gap between neighbours when there is room
		if cells.Width() > 2 {
			cells.X1--
		}
		color := BrickColors[brick.Row%len(BrickColors)]
		dst.FillBox(cells, BrickChar, color)
	}
}

func renderPaddle(dst *core.Screen, snap Snapshot) {
	cells := toCells(dst, snap, snap.Paddle)
	cells.Y1 = cells.Y0 + 1
	dst.FillBox(cells, PaddleChar, core.ColorCyan)
}

func renderBall(dst *core.Screen, snap Snapshot) {
	cx, cy := snap.Ball.Center()
	x := core.Scale(cx, snap.Width, dst.Width())
	y := core.Scale(cy, snap.Height, dst.Height())
	dst.SetColored(x, y, BallChar, core.ColorWhite)
}

func renderOverlay(dst *core.Screen, snap Snapshot) {
	mid := dst.Height() / 2

	switch snap.Status {
	case StatusReady:
		dst.DrawTextCentered(mid+2, "Press SPACE to start")
	case StatusVictory, StatusGameOver:
		dst.DrawTextCentered(mid+1, snap.Status.Label())
		dst.DrawTextCentered(mid+2, fmt.Sprintf("Score: %d  |  Press R to reset", snap.Score))
	}
}
