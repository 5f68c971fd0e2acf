package entity

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/samdwyer/dungeoncrawl/internal/world"
)

// Viewshed is what an entity currently sees.
type Viewshed struct {
	Range    int
	Visible  mapset.Set[world.Point]
	Dirty    bool   // Position changed since the last recompute
	Revision uint64 // Bumped on every recompute
}

// NewViewshed returns a dirty, empty viewshed.
func NewViewshed(viewRange int) *Viewshed {
	return &Viewshed{
		Range:   viewRange,
		Visible: mapset.New[world.Point](),
		Dirty:   true,
	}
}

// Replace swaps in a freshly computed visible set.
func (v *Viewshed) Replace(visible mapset.Set[world.Point]) {
	v.Visible = visible
	v.Dirty = false
	v.Revision++
}

// CanSee reports whether p was visible at the last recompute.
func (v *Viewshed) CanSee(p world.Point) bool {
	return v.Visible.Has(p)
}
