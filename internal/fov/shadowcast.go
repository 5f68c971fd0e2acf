// Package fov computes fields of view with recursive shadowcasting.
package fov

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/samdwyer/dungeoncrawl/internal/world"
)

// Grid is the opacity source for a field of view.
type Grid interface {
	InBounds(x, y int) bool
	IsOpaqueAt(x, y int) bool
}

// Octant transforms: world = origin + col*(xx,yx) + row*(xy,yy).
var octants = [8][4]int{
	{1, 0, 0, 1},
	{0, 1, 1, 0},
	{0, -1, 1, 0},
	{-1, 0, 0, 1},
	{-1, 0, 0, -1},
	{0, -1, -1, 0},
	{0, 1, -1, 0},
	{1, 0, 0, -1},
}

// Compute returns every in-bounds cell visible from origin within radius.
// Opaque cells are visible themselves but hide what lies behind them. The
// origin is always visible. The result depends only on its arguments.
func Compute(origin world.Point, radius int, grid Grid) mapset.Set[world.Point] {
	visible := mapset.New[world.Point]()
	if radius < 0 || !grid.InBounds(origin.X, origin.Y) {
		return visible
	}

	visible.Put(origin)
	for _, o := range octants {
		s := scan{grid: grid, origin: origin, radius: radius, xx: o[0], xy: o[1], yx: o[2], yy: o[3], out: visible}
		s.castLight(1, 1.0, 0.0)
	}
	return visible
}

type scan struct {
	grid           Grid
	origin         world.Point
	radius         int
	xx, xy, yx, yy int
	out            mapset.Set[world.Point]
}

func (s *scan) castLight(row int, start, end float64) {
	if start < end {
		return
	}

	radiusSq := s.radius * s.radius
	newStart := start

	for j := row; j <= s.radius; j++ {
		dy := -j
		blocked := false

		for dx := -j; dx <= 0; dx++ {
			lSlope := (float64(dx) - 0.5) / (float64(dy) + 0.5)
			rSlope := (float64(dx) + 0.5) / (float64(dy) - 0.5)

			if start < rSlope {
				continue
			}
			if end > lSlope {
				break
			}

			x := s.origin.X + dx*s.xx + dy*s.xy
			y := s.origin.Y + dx*s.yx + dy*s.yy

			if dx*dx+dy*dy <= radiusSq && s.grid.InBounds(x, y) {
				s.out.Put(world.Point{X: x, Y: y})
			}

			opaque := s.grid.IsOpaqueAt(x, y)
			if blocked {
				if opaque {
					newStart = rSlope
					continue
				}
				blocked = false
				start = newStart
			} else if opaque && j < s.radius {
				blocked = true
				s.castLight(j+1, start, lSlope)
				newStart = rSlope
			}
		}

		if blocked {
			break
		}
	}
}
