package game

import "github.com/samdwyer/dungeoncrawl/internal/fov"

// runVisibility recomputes every viewshed, dirty or not, and publishes the
// player's to the map's visible and revealed grids.
func (g *Game) runVisibility() {
	for _, e := range g.entities.All() {
		if e.Viewshed == nil {
			continue
		}

		view := fov.Compute(e.Pos, e.Viewshed.Range, g.level)
		e.Viewshed.Replace(view)

		if e.IsPlayer() {
			g.level.ApplyView(view)
		}
	}
}
