package game

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/samdwyer/dungeoncrawl/internal/entity"
	"github.com/samdwyer/dungeoncrawl/internal/gamedata"
	"github.com/samdwyer/dungeoncrawl/internal/logger"
	"github.com/samdwyer/dungeoncrawl/internal/telemetry"
	"github.com/samdwyer/dungeoncrawl/internal/world"
)

// ErrNoPlayer is returned when bootstrap could not place the player.
var ErrNoPlayer = errors.New("no player entity")

// New builds a game: it generates a playable level, places the player in the
// first room and one monster in the center of every other room. The game
// starts Running so the first step computes every viewshed before any input
// is read.
func New(ctx context.Context, cfg Config) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	creatures, err := gamedata.LoadCreatures()
	if err != nil {
		return nil, fmt.Errorf("load creatures: %w", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g := &Game{
		cfg:      cfg,
		seed:     seed,
		runID:    uuid.New(),
		rng:      rand.New(rand.NewSource(seed)),
		entities: entity.NewStore(),
		state:    StateRunning,
		messages: NewMessageLog(messageLimit),
	}
	g.log = logger.For("game").WithField("run_id", g.RunID())

	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.init")
	defer span.End()

	g.level, err = g.buildLevel(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "dungeon generation failed")
		return nil, err
	}

	g.spawn(creatures)
	player := g.entities.Player()
	if player == nil {
		return nil, ErrNoPlayer
	}
	g.level.RebuildBlocked(g.entities.Blockers())

	span.SetAttributes(
		attribute.String("game.run_id", g.RunID()),
		attribute.Int64("game.seed", seed),
		attribute.Int("dungeon.rooms", len(g.level.Rooms)),
		attribute.Int("game.monsters", len(g.entities.Monsters())),
		attribute.Int("player.start_x", player.Pos.X),
		attribute.Int("player.start_y", player.Pos.Y),
	)
	g.log.WithFields(logrus.Fields{
		"seed":     seed,
		"rooms":    len(g.level.Rooms),
		"monsters": len(g.entities.Monsters()),
	}).Info("Game initialized")

	return g, nil
}

// buildLevel regenerates, on the same random stream, until the map has
// cfg.MinRooms rooms or attempts run out.
func (g *Game) buildLevel(ctx context.Context) (*world.Map, error) {
	attempts := 0
	level, err := backoff.Retry(ctx,
		func() (*world.Map, error) {
			attempts++
			m := world.Generate(ctx, g.cfg.Params(), g.rng)
			if len(m.Rooms) < g.cfg.MinRooms {
				return nil, fmt.Errorf("%w: got %d, need %d", world.ErrTooFewRooms, len(m.Rooms), g.cfg.MinRooms)
			}
			return m, nil
		},
		backoff.WithBackOff(&backoff.ZeroBackOff{}),
		backoff.WithMaxTries(uint(g.cfg.GenerationAttempts)),
		backoff.WithNotify(func(err error, _ time.Duration) {
			g.log.WithError(err).WithField("attempt", attempts).Info("Regenerating dungeon")
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("generate dungeon after %d attempts: %w", attempts, err)
	}
	return level, nil
}

// spawn places the player at the first room's center and one monster at
// each later room's center.
func (g *Game) spawn(creatures gamedata.CreaturesFile) {
	start := g.level.Rooms[0].Center()
	player := entity.NewPlayer(&creatures.Player, start)
	g.applyViewRange(player)
	g.entities.Add(player)
	g.player = start

	registry := gamedata.NewMonsterRegistry(creatures.Monsters)
	for i, room := range g.level.Rooms[1:] {
		def := registry.SpawnRandom(g.rng)
		if def == nil {
			continue
		}
		monster := entity.NewMonster(def, fmt.Sprintf("%s #%d", def.Name, i), room.Center())
		g.applyViewRange(monster)
		g.entities.Add(monster)
	}
}

func (g *Game) applyViewRange(e *entity.Entity) {
	if g.cfg.ViewRange > 0 && e.Viewshed != nil {
		e.Viewshed.Range = g.cfg.ViewRange
	}
}
