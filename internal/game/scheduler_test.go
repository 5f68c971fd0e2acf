package game

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/dungeoncrawl/internal/world"
)

func TestRunStateString(t *testing.T) {
	tests := []struct {
		state    RunState
		expected string
	}{
		{StateRunning, "running"},
		{StatePaused, "paused"},
		{RunState(99), "unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.state.String())
	}
}

func TestIntentIsStep(t *testing.T) {
	assert.True(t, Move(1, 0).IsStep())
	assert.True(t, Move(0, -1).IsStep())
	assert.False(t, Move(1, 1).IsStep(), "diagonals are not accepted")
	assert.False(t, Move(0, 0).IsStep())
	assert.False(t, Move(2, 0).IsStep())
	assert.False(t, Quit().IsStep())
}

func TestMessageLogKeepsNewest(t *testing.T) {
	log := NewMessageLog(2)
	_, ok := log.Latest()
	assert.False(t, ok)

	log.Add(1, "a")
	log.Add(2, "b")
	log.Add(3, "c")

	assert.Equal(t, []Message{{Turn: 2, Text: "b"}, {Turn: 3, Text: "c"}}, log.All())
	latest, ok := log.Latest()
	require.True(t, ok)
	assert.Equal(t, "c", latest.Text)
}

func TestStepAlternation(t *testing.T) {
	g := newTestGame(t,
		"#######",
		"#.....#",
		"#..@..#",
		"#.....#",
		"#######",
	)
	player := g.entities.Player()
	ctx := context.Background()

	// Starting from Paused, an accepted move resumes the world.
	g.Step(ctx, script(step(1, 0)))
	assert.Equal(t, StateRunning, g.State())
	assert.Equal(t, 1, g.Turn())
	assert.Equal(t, 0, g.Ticks())
	assert.Equal(t, world.Point{X: 4, Y: 2}, player.Pos)
	assert.Equal(t, world.Point{X: 4, Y: 2}, g.PlayerPos())
	assert.True(t, player.Viewshed.Dirty)
	revision := player.Viewshed.Revision

	// Exactly one tick, then back to Paused.
	g.Step(ctx, script())
	assert.Equal(t, StatePaused, g.State())
	assert.Equal(t, 1, g.Ticks())
	assert.Equal(t, revision+1, player.Viewshed.Revision)
	assert.False(t, player.Viewshed.Dirty)
	assert.True(t, player.Viewshed.CanSee(world.Point{X: 4, Y: 2}))
}

func TestStepRejectedMoveStaysPaused(t *testing.T) {
	g := newTestGame(t,
		"#####",
		"#@..#",
		"#####",
	)
	player := g.entities.Player()

	g.Step(context.Background(), script(step(-1, 0)))

	assert.Equal(t, StatePaused, g.State())
	assert.Equal(t, 0, g.Turn())
	assert.Equal(t, world.Point{X: 1, Y: 1}, player.Pos)
}

func TestStepNoInputStaysPaused(t *testing.T) {
	g := newTestGame(t,
		"#####",
		"#@..#",
		"#####",
	)

	in := script(nil, &Intent{Kind: IntentMove, DX: 1, DY: 1})
	g.Step(context.Background(), in)
	g.Step(context.Background(), in)

	assert.Equal(t, StatePaused, g.State())
	assert.Equal(t, 0, g.Turn())
	assert.Equal(t, 0, g.Ticks())
	assert.Equal(t, 2, in.polls)
}

func TestStepIntoMonsterIsRejected(t *testing.T) {
	g := newTestGame(t,
		"######",
		"#@g..#",
		"######",
	)

	g.Step(context.Background(), script(step(1, 0)))

	assert.Equal(t, StatePaused, g.State())
	assert.Equal(t, world.Point{X: 1, Y: 1}, g.PlayerPos())
}

func TestRunRendersOnlyFreshViews(t *testing.T) {
	g := newTestGame(t,
		"#######",
		"#.....#",
		"#..@..#",
		"#.....#",
		"#######",
	)
	g.state = StateRunning
	out := &recordingRenderer{g: g}

	// tick, move, tick, no input, quit
	err := g.Run(context.Background(), script(step(0, 1), nil), out)
	require.NoError(t, err)

	assert.Equal(t, 2, g.Ticks())
	assert.Equal(t, 1, g.Turn())
	assert.Equal(t, []uint64{1, 2, 2, 2}, out.revisions)
	assert.Equal(t, []bool{false, false, false, false}, out.dirty)
	assert.Equal(t, []int{0, 1, 1, 1}, out.turns)
}

func TestRunStopsOnCancelledContext(t *testing.T) {
	g := newTestGame(t,
		"#####",
		"#@..#",
		"#####",
	)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := g.Run(ctx, script(), nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFrameCarriesLatestMessage(t *testing.T) {
	g := newTestGame(t,
		"#####",
		"#@g.#",
		"#####",
	)
	g.state = StateRunning
	g.Step(context.Background(), script())

	frame := g.Frame()
	assert.Equal(t, "Goblin #0 shouts insults.", frame.Message)
	assert.Same(t, g.level, frame.Map)
	assert.Len(t, frame.Entities, 2)
}
