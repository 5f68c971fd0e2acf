package game

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/dungeoncrawl/internal/world"
)

func tick(g *Game) {
	g.state = StateRunning
	g.Step(context.Background(), script())
}

func TestMonsterTauntsWhenAdjacent(t *testing.T) {
	tests := []struct {
		name string
		rows []string
	}{
		{"orthogonal", []string{
			"#####",
			"#g@.#",
			"#####",
		}},
		{"diagonal", []string{
			"#####",
			"#.g.#",
			"#..@#",
			"#####",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t, tt.rows...)
			monster := g.entities.Monsters()[0]
			start := monster.Pos

			moved, taunts := g.runMonsterAI()

			assert.Equal(t, 0, moved)
			assert.Equal(t, 1, taunts)
			assert.Equal(t, start, monster.Pos)
			latest, ok := g.messages.Latest()
			require.True(t, ok)
			assert.Equal(t, "Goblin #0 shouts insults.", latest.Text)
		})
	}
}

func TestMonsterChasesVisiblePlayer(t *testing.T) {
	g := newTestGame(t,
		"##########",
		"#g.....@.#",
		"##########",
	)
	monster := g.entities.Monsters()[0]

	tick(g)

	assert.Equal(t, world.Point{X: 2, Y: 1}, monster.Pos)
	assert.True(t, monster.Viewshed.Dirty)
	assert.True(t, g.level.Blocked[g.level.XYToIndex(2, 1)])
	assert.False(t, g.level.Blocked[g.level.XYToIndex(1, 1)])
	assert.Equal(t, world.Point{X: 7, Y: 1}, g.PlayerPos(), "the player never moves on a world tick")
}

func TestMonsterClosesDistanceOverTicks(t *testing.T) {
	g := newTestGame(t,
		"##########",
		"#g.....@.#",
		"##########",
	)
	monster := g.entities.Monsters()[0]

	for range 10 {
		tick(g)
	}

	assert.Equal(t, world.Point{X: 6, Y: 1}, monster.Pos, "stops next to the player")
	assert.Len(t, g.messages.All(), 5)
}

func TestMonsterIgnoresHiddenPlayer(t *testing.T) {
	g := newTestGame(t,
		"#######",
		"#g....#",
		"#####.#",
		"#####.#",
		"#####.#",
		"#####@#",
		"#######",
	)
	monster := g.entities.Monsters()[0]

	tick(g)

	assert.False(t, monster.Viewshed.CanSee(g.PlayerPos()))
	assert.Equal(t, world.Point{X: 1, Y: 1}, monster.Pos)
	assert.Empty(t, g.messages.All())
}

func TestMonsterWithoutPathStaysPut(t *testing.T) {
	// The orc plugs the corridor, so the goblin sees the player but cannot
	// reach it.
	g := newTestGame(t,
		"#########",
		"#g.o...@#",
		"#########",
	)
	monsters := g.entities.Monsters()
	goblin, orc := monsters[0], monsters[1]

	tick(g)

	assert.True(t, goblin.Viewshed.CanSee(g.PlayerPos()))
	assert.Equal(t, world.Point{X: 1, Y: 1}, goblin.Pos)
	assert.Equal(t, world.Point{X: 4, Y: 1}, orc.Pos)
}

func TestMonstersDoNotShareCells(t *testing.T) {
	// Both goblins funnel through the single opening in the same tick.
	g := newTestGame(t,
		"#######",
		"#g....#",
		"#g....#",
		"###.###",
		"#.....#",
		"#..@..#",
		"#######",
	)

	for range 6 {
		tick(g)
		seen := map[world.Point]bool{}
		for _, m := range g.entities.Monsters() {
			assert.False(t, seen[m.Pos], "two monsters on %v", m.Pos)
			assert.NotEqual(t, g.PlayerPos(), m.Pos)
			assert.Equal(t, world.TileFloor, g.level.TileAt(m.Pos.X, m.Pos.Y))
			seen[m.Pos] = true
		}
	}
}
