package game

import (
	"context"
	"math/rand"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungeoncrawl/internal/entity"
	"github.com/samdwyer/dungeoncrawl/internal/telemetry"
	"github.com/samdwyer/dungeoncrawl/internal/world"
)

const messageLimit = 32

// Game is the simulation context. It owns the map, the entities and the
// player-location resource, and hands them to one system at a time.
type Game struct {
	cfg   Config
	seed  int64
	runID uuid.UUID
	rng   *rand.Rand

	level    *world.Map
	entities *entity.Store
	player   world.Point // Player location resource, read by monster AI

	state    RunState
	turn     int // Accepted player actions
	ticks    int // Completed world ticks
	running  bool
	messages *MessageLog

	log *logrus.Entry
}

// Map returns the world map.
func (g *Game) Map() *world.Map {
	return g.level
}

// Entities returns the entity store.
func (g *Game) Entities() *entity.Store {
	return g.entities
}

// PlayerPos returns the player's current cell.
func (g *Game) PlayerPos() world.Point {
	return g.player
}

// State returns the scheduler state.
func (g *Game) State() RunState {
	return g.state
}

// Turn returns the game clock: one per accepted player action.
func (g *Game) Turn() int {
	return g.turn
}

// Ticks returns how many world ticks have run.
func (g *Game) Ticks() int {
	return g.ticks
}

// Messages returns the game log.
func (g *Game) Messages() *MessageLog {
	return g.messages
}

// Seed returns the seed the game was built from.
func (g *Game) Seed() int64 {
	return g.seed
}

// RunID identifies this process's game in logs and traces.
func (g *Game) RunID() string {
	return g.runID.String()
}

// Frame captures what a renderer needs.
func (g *Game) Frame() Frame {
	f := Frame{
		Map:      g.level,
		Entities: g.entities.All(),
		Turn:     g.turn,
	}
	if msg, ok := g.messages.Latest(); ok {
		f.Message = msg.Text
	}
	return f
}

// Step advances the scheduler once. Running executes one world tick and
// pauses; Paused asks in for an intent and resumes only if the player
// actually moved.
func (g *Game) Step(ctx context.Context, in Input) {
	switch g.state {
	case StateRunning:
		g.runSystems(ctx)
		g.state = StatePaused
	case StatePaused:
		g.state = g.playerInput(in)
	}
}

// Run alternates Step and rendering until a quit intent arrives or ctx is
// cancelled. Frames are only drawn while paused, so the player's view is
// always fresh when shown.
func (g *Game) Run(ctx context.Context, in Input, out Renderer) error {
	g.running = true
	for g.running {
		if err := ctx.Err(); err != nil {
			return err
		}

		g.Step(ctx, in)

		if g.state == StatePaused && out != nil {
			out.Render(g.Frame())
		}
	}

	g.log.WithField("turn", g.turn).Info("Game loop finished")
	return nil
}

// runSystems is one world tick, in fixed order.
func (g *Game) runSystems(ctx context.Context) {
	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "game.tick")
	defer span.End()

	g.runVisibility()
	moved, taunts := g.runMonsterAI()
	g.runMapIndexing()
	g.ticks++

	span.SetAttributes(
		attribute.Int("game.turn", g.turn),
		attribute.Int("game.tick", g.ticks),
		attribute.Int("ai.moved", moved),
		attribute.Int("ai.taunts", taunts),
	)
	g.log.WithFields(logrus.Fields{
		"turn":   g.turn,
		"tick":   g.ticks,
		"moved":  moved,
		"taunts": taunts,
	}).Debug("Tick complete")
}

// playerInput polls one intent and returns the next scheduler state.
func (g *Game) playerInput(in Input) RunState {
	intent, ok := in.NextIntent()
	if !ok {
		return StatePaused
	}

	switch intent.Kind {
	case IntentQuit:
		g.running = false
	case IntentMove:
		if intent.IsStep() && g.tryMovePlayer(intent.DX, intent.DY) {
			g.turn++
			return StateRunning
		}
	}
	return StatePaused
}
