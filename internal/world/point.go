package world

import "math"

// Point is a grid cell.
type Point struct {
	X, Y int
}

// Shift returns the point moved by the given delta.
func (p Point) Shift(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// DistanceTo returns the straight-line distance between cell centers.
func (p Point) DistanceTo(other Point) float64 {
	return math.Hypot(float64(p.X-other.X), float64(p.Y-other.Y))
}
