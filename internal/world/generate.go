package world

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungeoncrawl/internal/logger"
	"github.com/samdwyer/dungeoncrawl/internal/telemetry"
)

const (
	// Default dungeon dimensions
	DefaultWidth  = 80
	DefaultHeight = 50

	// Default room placement parameters
	DefaultMaxRooms = 30
	DefaultMinSize  = 6
	DefaultMaxSize  = 10
)

// ErrTooFewRooms is returned when a generated map has fewer rooms than a
// caller requires.
var ErrTooFewRooms = errors.New("too few rooms generated")

// Params controls dungeon generation.
type Params struct {
	Width, Height    int
	MaxRooms         int // Placement attempts, not a room count
	MinSize, MaxSize int // Inclusive room size range
}

// DefaultParams returns the standard 80x50 layout parameters.
func DefaultParams() Params {
	return Params{
		Width:    DefaultWidth,
		Height:   DefaultHeight,
		MaxRooms: DefaultMaxRooms,
		MinSize:  DefaultMinSize,
		MaxSize:  DefaultMaxSize,
	}
}

// Validate reports parameters that cannot produce a room.
func (p Params) Validate() error {
	switch {
	case p.Width < 3 || p.Height < 3:
		return fmt.Errorf("map %dx%d is smaller than 3x3", p.Width, p.Height)
	case p.MaxRooms < 0:
		return fmt.Errorf("max rooms %d is negative", p.MaxRooms)
	case p.MinSize < 2:
		// Center of a 1-wide room lies on its wall edge, not its floor.
		return fmt.Errorf("min room size %d must be at least 2", p.MinSize)
	case p.MaxSize < p.MinSize:
		return fmt.Errorf("max room size %d is below min room size %d", p.MaxSize, p.MinSize)
	case p.MinSize > p.Width-2 || p.MinSize > p.Height-2:
		return fmt.Errorf("min room size %d does not fit inside a %dx%d map", p.MinSize, p.Width, p.Height)
	}
	return nil
}

// Generate builds a map by random room placement. Each of MaxRooms attempts
// samples a room; rooms that intersect an accepted room are discarded, and
// every accepted room after the first is joined to the previous one by an
// L-shaped corridor. The map may end up with fewer rooms than attempts, even
// none; Generate never retries. Params must pass Validate.
func Generate(ctx context.Context, p Params, rng *rand.Rand) *Map {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "dungeon.generate")
	defer span.End()

	startTime := time.Now()
	m := NewMap(p.Width, p.Height)

	for range p.MaxRooms {
		room, ok := m.sampleRoom(p, rng)
		if !ok {
			continue
		}
		if m.overlapsRoom(room) {
			continue
		}

		m.carveRoom(room)
		if len(m.Rooms) > 0 {
			m.carveCorridor(m.Rooms[len(m.Rooms)-1].Center(), room.Center(), rng)
		}
		m.Rooms = append(m.Rooms, room)
	}

	fingerprint := m.Fingerprint()
	span.SetAttributes(
		attribute.Int("dungeon.width", p.Width),
		attribute.Int("dungeon.height", p.Height),
		attribute.Int("dungeon.attempts", p.MaxRooms),
		attribute.Int("dungeon.room_count", len(m.Rooms)),
		attribute.String("dungeon.fingerprint", strconv.FormatUint(fingerprint, 16)),
		attribute.Int64("dungeon.generation_ms", time.Since(startTime).Milliseconds()),
	)
	logger.For("world").
		WithField("rooms", len(m.Rooms)).
		WithField("fingerprint", strconv.FormatUint(fingerprint, 16)).
		Debug("Dungeon generated")

	return m
}

// sampleRoom picks a size in [MinSize, MaxSize] and a corner that keeps the
// carved floor off the outer wall ring.
func (m *Map) sampleRoom(p Params, rng *rand.Rand) (Rect, bool) {
	w := p.MinSize + rng.Intn(p.MaxSize-p.MinSize+1)
	h := p.MinSize + rng.Intn(p.MaxSize-p.MinSize+1)

	// Floor spans (x, x+w], so x+w must stay <= Width-2.
	spanX := m.Width - w - 1
	spanY := m.Height - h - 1
	if spanX < 1 || spanY < 1 {
		return Rect{}, false
	}

	x := rng.Intn(spanX)
	y := rng.Intn(spanY)
	return NewRect(x, y, w, h), true
}

func (m *Map) overlapsRoom(room Rect) bool {
	for _, other := range m.Rooms {
		if room.Intersects(other) {
			return true
		}
	}
	return false
}

// carveRoom sets the room's interior to floor.
func (m *Map) carveRoom(room Rect) {
	for y := room.Y1 + 1; y <= room.Y2; y++ {
		for x := room.X1 + 1; x <= room.X2; x++ {
			m.SetTile(x, y, TileFloor)
		}
	}
}

// carveCorridor joins two points with one horizontal and one vertical
// tunnel. A coin flip picks which leg comes first.
func (m *Map) carveCorridor(from, to Point, rng *rand.Rand) {
	if rng.Intn(2) == 0 {
		m.carveHorizontalTunnel(from.X, to.X, from.Y)
		m.carveVerticalTunnel(from.Y, to.Y, to.X)
	} else {
		m.carveVerticalTunnel(from.Y, to.Y, from.X)
		m.carveHorizontalTunnel(from.X, to.X, to.Y)
	}
}

// carveHorizontalTunnel carves a horizontal tunnel.
func (m *Map) carveHorizontalTunnel(x1, x2, y int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		m.carveTunnelCell(x, y)
	}
}

// carveVerticalTunnel carves a vertical tunnel.
func (m *Map) carveVerticalTunnel(y1, y2, x int) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		m.carveTunnelCell(x, y)
	}
}

// carveTunnelCell never touches the outer ring, which also keeps index 0 and
// the last index walled.
func (m *Map) carveTunnelCell(x, y int) {
	if x > 0 && x < m.Width-1 && y > 0 && y < m.Height-1 {
		m.Tiles[m.XYToIndex(x, y)] = TileFloor
	}
}
