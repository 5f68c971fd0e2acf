package gamedata

import (
	"math/rand"
)

// MonsterRegistry holds monster definitions and picks spawns by weight.
type MonsterRegistry struct {
	monsters    []CreatureDef
	totalWeight int
}

// NewMonsterRegistry creates a registry from monster definitions.
func NewMonsterRegistry(monsters []CreatureDef) *MonsterRegistry {
	totalWeight := 0
	for _, m := range monsters {
		totalWeight += m.SpawnWeight
	}
	return &MonsterRegistry{
		monsters:    monsters,
		totalWeight: totalWeight,
	}
}

// SpawnRandom selects a monster definition using weighted probability.
// It returns nil when no monster has a positive weight.
func (r *MonsterRegistry) SpawnRandom(rng *rand.Rand) *CreatureDef {
	if r.totalWeight <= 0 {
		return nil
	}

	roll := rng.Intn(r.totalWeight)
	cumulative := 0
	for i := range r.monsters {
		cumulative += r.monsters[i].SpawnWeight
		if roll < cumulative {
			return &r.monsters[i]
		}
	}
	return &r.monsters[len(r.monsters)-1]
}

// GetByID returns the monster definition with the given ID, or nil if not found.
func (r *MonsterRegistry) GetByID(id string) *CreatureDef {
	for i := range r.monsters {
		if r.monsters[i].ID == id {
			return &r.monsters[i]
		}
	}
	return nil
}

// Count returns the number of monster kinds in the registry.
func (r *MonsterRegistry) Count() int {
	return len(r.monsters)
}
