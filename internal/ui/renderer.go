package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dungeoncrawl/internal/game"
	"github.com/samdwyer/dungeoncrawl/internal/gamedata"
	"github.com/samdwyer/dungeoncrawl/internal/world"
)

const (
	floorColor = tcell.ColorTeal
	wallColor  = tcell.ColorGreen
)

// Renderer draws frames to a Screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws every revealed tile, the entities standing in view, and a
// status line under the map.
func (r *Renderer) Render(frame game.Frame) {
	r.screen.draw(func() { r.render(frame) })
}

func (r *Renderer) render(frame game.Frame) {
	r.screen.Clear()

	m := frame.Map
	for idx, tile := range m.Tiles {
		if !m.Revealed[idx] {
			continue
		}
		p := m.IndexToPoint(idx)
		r.screen.SetContent(p.X, p.Y, tile.Rune(), tileStyle(tile, m.Visible[idx]))
	}

	for _, e := range frame.Entities {
		if !m.InBounds(e.Pos.X, e.Pos.Y) || !m.Visible[m.PointToIndex(e.Pos)] {
			continue
		}
		style := tcell.StyleDefault.Foreground(e.Color).Background(tcell.ColorBlack)
		if e.IsPlayer() {
			style = style.Bold(true)
		}
		r.screen.SetContent(e.Pos.X, e.Pos.Y, e.Glyph, style)
	}

	r.RenderMessage(statusLine(frame), m.Height)
	r.screen.Show()
}

// tileStyle colors a tile, greyed out when remembered but not in view.
func tileStyle(tile world.Tile, visible bool) tcell.Style {
	fg := floorColor
	if tile == world.TileWall {
		fg = wallColor
	}
	if !visible {
		fg = gamedata.Greyscale(fg)
	}
	return tcell.StyleDefault.Foreground(fg).Background(tcell.ColorBlack)
}

func statusLine(frame game.Frame) string {
	if frame.Message == "" {
		return fmt.Sprintf("Turn %d", frame.Turn)
	}
	return fmt.Sprintf("Turn %d  %s", frame.Turn, frame.Message)
}

// RenderMessage displays a message on row y.
func (r *Renderer) RenderMessage(msg string, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, ch := range []rune(msg) {
		r.screen.SetContent(i, y, ch, style)
	}
}
