package game

// runMapIndexing rebuilds the blocked grid from terrain and the blocking
// entities' final positions for this tick.
func (g *Game) runMapIndexing() {
	g.level.RebuildBlocked(g.entities.Blockers())
}
