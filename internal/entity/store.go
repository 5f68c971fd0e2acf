package entity

import "github.com/samdwyer/dungeoncrawl/internal/world"

// Store owns every entity in creation order. Iteration order is stable.
type Store struct {
	entities []*Entity
	nextID   int
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{nextID: 1}
}

// Add assigns an ID and stores the entity.
func (s *Store) Add(e *Entity) *Entity {
	e.ID = s.nextID
	s.nextID++
	s.entities = append(s.entities, e)
	return e
}

// All returns every entity in creation order.
func (s *Store) All() []*Entity {
	return s.entities
}

// Len returns the number of entities.
func (s *Store) Len() int {
	return len(s.entities)
}

// Player returns the first player entity, or nil.
func (s *Store) Player() *Entity {
	for _, e := range s.entities {
		if e.IsPlayer() {
			return e
		}
	}
	return nil
}

// Monsters returns the hostile entities in creation order.
func (s *Store) Monsters() []*Entity {
	var monsters []*Entity
	for _, e := range s.entities {
		if e.IsMonster() {
			monsters = append(monsters, e)
		}
	}
	return monsters
}

// Blockers returns the cells occupied by blocking entities.
func (s *Store) Blockers() []world.Point {
	var cells []world.Point
	for _, e := range s.entities {
		if e.BlocksTile {
			cells = append(cells, e.Pos)
		}
	}
	return cells
}

// At returns the entities standing on p.
func (s *Store) At(p world.Point) []*Entity {
	var found []*Entity
	for _, e := range s.entities {
		if e.Pos == p {
			found = append(found, e)
		}
	}
	return found
}
