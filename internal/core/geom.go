// Package core provides fundamental types and utilities for the brick-breaker.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Box is an axis-aligned bounding box given by its corner coordinates.
// (X0, Y0) is the top-left corner and (X1, Y1) the bottom-right one.
type Box struct {
	X0, Y0 int
	X1, Y1 int
}

// NewBox creates a box from its corner coordinates.
func NewBox(x0, y0, x1, y1 int) Box {
	return Box{X0: x0, Y0: y0, X1: x1, Y1: y1}
}

// Width returns the horizontal extent of the box.
func (b Box) Width() int {
	return b.X1 - b.X0
}

// Height returns the vertical extent of the box.
func (b Box) Height() int {
	return b.Y1 - b.Y0
}

// Translate returns the box moved by (dx, dy).
func (b Box) Translate(dx, dy int) Box {
	return Box{X0: b.X0 + dx, Y0: b.Y0 + dy, X1: b.X1 + dx, Y1: b.Y1 + dy}
}

// Overlaps reports whether two boxes share at least one point.
// Intervals are closed: boxes that only touch along an edge or a corner overlap.
func (b Box) Overlaps(other Box) bool {
	if b.X0 > other.X1 || other.X0 > b.X1 {
		return false
	}
	if b.Y0 > other.Y1 || other.Y0 > b.Y1 {
		return false
	}
	return true
}

// WithinX reports whether the box lies horizontally inside [minX, maxX].
func (b Box) WithinX(minX, maxX int) bool {
	return b.X0 >= minX && b.X1 <= maxX
}

// Center returns the center point of the box (rounded down).
func (b Box) Center() (int, int) {
	return b.X0 + b.Width()/2, b.Y0 + b.Height()/2
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Scale maps v from a [0, from] range onto [0, to] using integer math.
// A non-positive source range maps everything to 0.
func Scale(v, from, to int) int {
	if from <= 0 {
		return 0
	}
	return v * to / from
}
