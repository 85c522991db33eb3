// Package core holds the platform types shared by games and the terminal
// front end: the screen buffer, input actions and runtime configuration.
// It has no third-party imports so game logic stays testable without a
// terminal.
package core

// Rect is an axis-aligned area of the screen, in character cells.
type Rect struct {
	X, Y int // Top-left corner
	W, H int
}

// NewRect creates a rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate just past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate just past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// Scroll returns the first visible index of a window of size visible over
// total items, moved as little as possible from offset so that focus is in
// view.
func Scroll(offset, focus, visible, total int) int {
	if visible <= 0 || total <= visible {
		return 0
	}
	if focus < offset {
		offset = focus
	}
	if focus >= offset+visible {
		offset = focus - visible + 1
	}
	return Clamp(offset, 0, total-visible)
}
