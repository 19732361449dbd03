// Package core provides the platform types shared by games and the terminal
// front end. It imports nothing outside the standard library so games stay
// testable without a terminal.
package core

// Rect is an axis-aligned area on the screen, in cells.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect creates a rectangle with its top-left corner at (x, y).
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the first column past the rectangle.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the first row past the rectangle.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Fits reports whether a w x h area fits inside r.
func (r Rect) Fits(w, h int) bool {
	return w <= r.W && h <= r.H
}

// Inset shrinks r by n cells on every side.
func (r Rect) Inset(n int) Rect {
	return Rect{X: r.X + n, Y: r.Y + n, W: max(r.W-2*n, 0), H: max(r.H-2*n, 0)}
}

// Center returns a w x h rectangle centered in r. When the area is larger
// than r it is pinned to r's top-left corner.
func (r Rect) Center(w, h int) Rect {
	return Rect{
		X: r.X + Clamp((r.W-w)/2, 0, r.W),
		Y: r.Y + Clamp((r.H-h)/2, 0, r.H),
		W: w,
		H: h,
	}
}

// Clamp restricts val to [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
