// Package entity provides the player, monsters and the entity store.
package entity

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dungeoncrawl/internal/gamedata"
	"github.com/samdwyer/dungeoncrawl/internal/world"
)

// Role identifies what an entity is.
type Role int

const (
	// RolePlayer is the entity driven by input.
	RolePlayer Role = iota
	// RoleMonster is a hostile entity driven by AI.
	RoleMonster
)

// String returns a human-readable role name.
func (r Role) String() string {
	switch r {
	case RolePlayer:
		return "player"
	case RoleMonster:
		return "monster"
	default:
		return "unknown"
	}
}

// Entity is anything placed on the map.
type Entity struct {
	ID         int
	Name       string      // Display label, e.g. "Goblin #0"
	Role       Role        // Player or monster
	Pos        world.Point // Current cell
	BlocksTile bool        // Occupies its cell for movement and pathing
	Viewshed   *Viewshed   // Nil if the entity cannot see
	Glyph      rune        // Display symbol
	Color      tcell.Color // Display color
}

// NewPlayer creates the player at the given position.
func NewPlayer(def *gamedata.CreatureDef, pos world.Point) *Entity {
	return &Entity{
		Name:     def.Name,
		Role:     RolePlayer,
		Pos:      pos,
		Viewshed: NewViewshed(def.ViewRange),
		Glyph:    def.GlyphRune(),
		Color:    def.TCellColor(),
	}
}

// NewMonster creates a blocking monster from a definition.
func NewMonster(def *gamedata.CreatureDef, name string, pos world.Point) *Entity {
	return &Entity{
		Name:       name,
		Role:       RoleMonster,
		Pos:        pos,
		BlocksTile: true,
		Viewshed:   NewViewshed(def.ViewRange),
		Glyph:      def.GlyphRune(),
		Color:      def.TCellColor(),
	}
}

// IsPlayer returns true for the player entity.
func (e *Entity) IsPlayer() bool {
	return e.Role == RolePlayer
}

// IsMonster returns true for hostile entities.
func (e *Entity) IsMonster() bool {
	return e.Role == RoleMonster
}

// MoveTo places the entity on a new cell and marks its view stale.
func (e *Entity) MoveTo(p world.Point) {
	e.Pos = p
	if e.Viewshed != nil {
		e.Viewshed.Dirty = true
	}
}
