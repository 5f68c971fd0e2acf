package game

import (
	"github.com/samdwyer/dungeoncrawl/internal/entity"
	"github.com/samdwyer/dungeoncrawl/internal/world"
)

// IntentKind is what the player asked for.
type IntentKind int

const (
	// IntentMove steps the player one cell.
	IntentMove IntentKind = iota
	// IntentQuit ends the game loop.
	IntentQuit
)

// Intent is one decoded player action.
type Intent struct {
	Kind   IntentKind
	DX, DY int
}

// Move returns a movement intent.
func Move(dx, dy int) Intent {
	return Intent{Kind: IntentMove, DX: dx, DY: dy}
}

// Quit returns a quit intent.
func Quit() Intent {
	return Intent{Kind: IntentQuit}
}

// IsStep reports whether a move is exactly one cardinal step.
func (i Intent) IsStep() bool {
	if i.Kind != IntentMove {
		return false
	}
	ax, ay := abs(i.DX), abs(i.DY)
	return ax+ay == 1
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Input supplies player intents. NextIntent returns false when there is no
// actionable input.
type Input interface {
	NextIntent() (Intent, bool)
}

// Frame is the read-only state handed to a Renderer.
type Frame struct {
	Map      *world.Map
	Entities []*entity.Entity
	Turn     int
	Message  string
}

// Renderer draws frames.
type Renderer interface {
	Render(frame Frame)
}
