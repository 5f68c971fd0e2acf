package world

// Rect is an axis-aligned rectangle with inclusive bounds. A room's floor is
// the cells strictly inside its top-left edge: x in (X1, X2], y in (Y1, Y2].
type Rect struct {
	X1, Y1 int // Top-left corner
	X2, Y2 int // Bottom-right corner
}

// NewRect creates a rectangle from a top-left corner and a size.
func NewRect(x, y, width, height int) Rect {
	return Rect{X1: x, Y1: y, X2: x + width, Y2: y + height}
}

// Center returns the integer midpoint of the rectangle.
func (r Rect) Center() Point {
	return Point{X: (r.X1 + r.X2) / 2, Y: (r.Y1 + r.Y2) / 2}
}

// Intersects returns true if the two rectangles overlap or touch on both axes.
func (r Rect) Intersects(other Rect) bool {
	return r.X1 <= other.X2 && r.X2 >= other.X1 &&
		r.Y1 <= other.Y2 && r.Y2 >= other.Y1
}

// Contains returns true if the point is on the rectangle's carved floor.
func (r Rect) Contains(p Point) bool {
	return p.X > r.X1 && p.X <= r.X2 && p.Y > r.Y1 && p.Y <= r.Y2
}

// Width returns the horizontal extent.
func (r Rect) Width() int {
	return r.X2 - r.X1
}

// Height returns the vertical extent.
func (r Rect) Height() int {
	return r.Y2 - r.Y1
}
