package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dungeoncrawl/internal/game"
)

// Input reads intents from the terminal.
type Input struct {
	screen *Screen
}

// NewInput creates an input source for the given screen.
func NewInput(screen *Screen) *Input {
	return &Input{screen: screen}
}

// NextIntent blocks for one terminal event. Unbound keys and resizes give
// no intent; a closed screen quits.
func (in *Input) NextIntent() (game.Intent, bool) {
	switch ev := in.screen.PollEvent().(type) {
	case nil:
		return game.Quit(), true
	case *tcell.EventKey:
		return decodeKey(ev)
	case *tcell.EventResize:
		in.screen.draw(in.screen.Sync)
	}
	return game.Intent{}, false
}

var runeMoves = map[rune][2]int{
	'h': {-1, 0}, 'a': {-1, 0}, '4': {-1, 0},
	'l': {1, 0}, 'd': {1, 0}, '6': {1, 0},
	'k': {0, -1}, 'w': {0, -1}, '8': {0, -1},
	'j': {0, 1}, 's': {0, 1}, '2': {0, 1},
}

func decodeKey(ev *tcell.EventKey) (game.Intent, bool) {
	switch ev.Key() {
	case tcell.KeyLeft:
		return game.Move(-1, 0), true
	case tcell.KeyRight:
		return game.Move(1, 0), true
	case tcell.KeyUp:
		return game.Move(0, -1), true
	case tcell.KeyDown:
		return game.Move(0, 1), true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return game.Quit(), true
	case tcell.KeyRune:
		if ev.Rune() == 'q' {
			return game.Quit(), true
		}
		if d, ok := runeMoves[ev.Rune()]; ok {
			return game.Move(d[0], d[1]), true
		}
	}
	return game.Intent{}, false
}
