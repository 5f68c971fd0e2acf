package world

// RebuildBlocked recomputes the blocked grid from terrain, then marks every
// occupant's cell. It must run after movement and before the next path query.
func (m *Map) RebuildBlocked(occupants []Point) {
	for i, t := range m.Tiles {
		m.Blocked[i] = t == TileWall
	}
	for _, p := range occupants {
		if m.InBounds(p.X, p.Y) {
			m.Blocked[m.PointToIndex(p)] = true
		}
	}
}

// MoveBlocker updates the blocked grid for one blocking entity stepping from
// one cell to another, so later path queries in the same tick see it.
func (m *Map) MoveBlocker(from, to Point) {
	if m.InBounds(from.X, from.Y) {
		idx := m.PointToIndex(from)
		m.Blocked[idx] = m.Tiles[idx] == TileWall
	}
	if m.InBounds(to.X, to.Y) {
		m.Blocked[m.PointToIndex(to)] = true
	}
}
