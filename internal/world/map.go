package world

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
	"github.com/zyedidia/generic/mapset"

	"github.com/samdwyer/dungeoncrawl/internal/pathfind"
)

// Map is the shared world state. All grids are indexed by y*Width + x.
type Map struct {
	Width  int
	Height int
	Tiles  []Tile
	Rooms  []Rect

	Revealed []bool // Ever seen by the player; never cleared
	Visible  []bool // Seen by the player this tick
	Blocked  []bool // Walls plus blocking entities
}

// NewMap creates a map of the given size filled with walls.
func NewMap(width, height int) *Map {
	area := width * height
	tiles := make([]Tile, area)
	for i := range tiles {
		tiles[i] = TileWall
	}
	return &Map{
		Width:    width,
		Height:   height,
		Tiles:    tiles,
		Rooms:    make([]Rect, 0),
		Revealed: make([]bool, area),
		Visible:  make([]bool, area),
		Blocked:  make([]bool, area),
	}
}

// XYToIndex maps a cell to its grid index.
func (m *Map) XYToIndex(x, y int) int {
	return y*m.Width + x
}

// PointToIndex maps a point to its grid index.
func (m *Map) PointToIndex(p Point) int {
	return m.XYToIndex(p.X, p.Y)
}

// IndexToPoint maps a grid index back to its cell.
func (m *Map) IndexToPoint(idx int) Point {
	return Point{X: idx % m.Width, Y: idx / m.Width}
}

// InBounds returns true if the cell lies on the map.
func (m *Map) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// TileAt returns the tile at the given position. Off-map cells are walls.
func (m *Map) TileAt(x, y int) Tile {
	if !m.InBounds(x, y) {
		return TileWall
	}
	return m.Tiles[m.XYToIndex(x, y)]
}

// SetTile overwrites a single tile. Off-map writes are ignored.
func (m *Map) SetTile(x, y int, t Tile) {
	if m.InBounds(x, y) {
		m.Tiles[m.XYToIndex(x, y)] = t
	}
}

// IsOpaque returns true if the tile at idx blocks sight.
func (m *Map) IsOpaque(idx int) bool {
	return m.Tiles[idx].IsOpaque()
}

// IsOpaqueAt is IsOpaque by coordinates. Off-map cells are opaque.
func (m *Map) IsOpaqueAt(x, y int) bool {
	if !m.InBounds(x, y) {
		return true
	}
	return m.IsOpaque(m.XYToIndex(x, y))
}

// IsBlocked returns true if nothing may enter the cell this tick.
// Off-map cells are blocked.
func (m *Map) IsBlocked(p Point) bool {
	if !m.InBounds(p.X, p.Y) {
		return true
	}
	return m.Blocked[m.PointToIndex(p)]
}

// MovementCost is the Euclidean distance between two cell centers.
func (m *Map) MovementCost(from, to int) float64 {
	return m.IndexToPoint(from).DistanceTo(m.IndexToPoint(to))
}

// Distance implements pathfind.Graph. It is the same metric as MovementCost,
// which keeps the heuristic admissible.
func (m *Map) Distance(from, to int) float64 {
	return m.MovementCost(from, to)
}

// Exits returns the cardinal neighbours of idx that are on the map and not
// blocked.
func (m *Map) Exits(idx int) []pathfind.Exit {
	p := m.IndexToPoint(idx)
	exits := make([]pathfind.Exit, 0, 4)
	for _, d := range cardinals {
		n := p.Shift(d.X, d.Y)
		if m.IsBlocked(n) {
			continue
		}
		to := m.PointToIndex(n)
		exits = append(exits, pathfind.Exit{To: to, Cost: m.MovementCost(idx, to)})
	}
	return exits
}

var cardinals = [4]Point{{X: -1}, {X: 1}, {Y: -1}, {Y: 1}}

// ApplyView replaces the player's visible set and reveals every cell in it.
// Revealed cells stay revealed.
func (m *Map) ApplyView(view mapset.Set[Point]) {
	clear(m.Visible)
	view.Each(func(p Point) {
		if !m.InBounds(p.X, p.Y) {
			return
		}
		idx := m.PointToIndex(p)
		m.Visible[idx] = true
		m.Revealed[idx] = true
	})
}

// Fingerprint hashes the terrain, so two maps built from the same seed and
// parameters compare equal.
func (m *Map) Fingerprint() uint64 {
	buf := make([]byte, 8, 8+len(m.Tiles))
	binary.LittleEndian.PutUint32(buf[0:4], uint32(m.Width))
	binary.LittleEndian.PutUint32(buf[4:8], uint32(m.Height))
	for _, t := range m.Tiles {
		buf = append(buf, byte(t))
	}
	return xxhash.Sum64(buf)
}
