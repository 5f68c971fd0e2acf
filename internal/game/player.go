package game

// tryMovePlayer moves the player by one step if the destination is on the
// map and not blocked. A rejected move changes nothing.
func (g *Game) tryMovePlayer(dx, dy int) bool {
	player := g.entities.Player()
	if player == nil {
		return false
	}

	dest := player.Pos.Shift(dx, dy)
	if g.level.IsBlocked(dest) {
		g.log.WithField("dest", dest).Debug("Move rejected")
		return false
	}

	player.MoveTo(dest)
	g.player = dest
	return true
}
