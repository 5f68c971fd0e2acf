package game

import (
	"fmt"

	"github.com/samdwyer/dungeoncrawl/internal/entity"
	"github.com/samdwyer/dungeoncrawl/internal/pathfind"
)

// tauntRange is the Euclidean distance under which a monster is adjacent to
// the player, diagonals included.
const tauntRange = 1.5

type aiAction int

const (
	aiIdle  aiAction = iota // Player not visible; no memory of it
	aiTaunt                 // Adjacent; stands still
	aiChase                 // Visible; steps along a path
)

// decide is the per-monster decision tree.
func (g *Game) decide(m *entity.Entity) aiAction {
	switch {
	case m.Pos.DistanceTo(g.player) < tauntRange:
		return aiTaunt
	case m.Viewshed != nil && m.Viewshed.CanSee(g.player):
		return aiChase
	default:
		return aiIdle
	}
}

// runMonsterAI acts for every monster and reports how many moved and how
// many taunted.
func (g *Game) runMonsterAI() (moved, taunts int) {
	for _, m := range g.entities.Monsters() {
		switch g.decide(m) {
		case aiTaunt:
			g.taunt(m)
			taunts++
		case aiChase:
			if g.chase(m) {
				moved++
			}
		}
	}
	return moved, taunts
}

func (g *Game) taunt(m *entity.Entity) {
	text := fmt.Sprintf("%s shouts insults.", m.Name)
	g.messages.Add(g.turn, text)
	g.log.WithField("monster", m.Name).Info(text)
}

// chase takes one step toward the player. An unreachable player is treated
// like an unseen one.
func (g *Game) chase(m *entity.Entity) bool {
	path := pathfind.AStar(g.level.PointToIndex(m.Pos), g.level.PointToIndex(g.player), g.level)
	next, ok := path.Next()
	if !ok {
		g.log.WithField("monster", m.Name).Debug("No path to player")
		return false
	}

	dest := g.level.IndexToPoint(next)
	if m.BlocksTile {
		g.level.MoveBlocker(m.Pos, dest)
	}
	m.MoveTo(dest)
	return true
}
