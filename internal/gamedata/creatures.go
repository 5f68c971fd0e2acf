package gamedata

import (
	"errors"

	"github.com/gdamore/tcell/v2"
)

// CreatureDef describes the player or a monster kind.
type CreatureDef struct {
	ID          string `json:"id"`          // Unique identifier (e.g., "goblin")
	Name        string `json:"name"`        // Display name (e.g., "Goblin")
	Glyph       string `json:"glyph"`       // Single character for rendering (e.g., "g")
	Color       string `json:"color"`       // Hex color code (e.g., "#FF0000")
	ViewRange   int    `json:"viewRange"`   // Field-of-view radius
	SpawnWeight int    `json:"spawnWeight"` // Relative spawn frequency, monsters only
}

// GlyphRune returns the glyph as a rune for rendering.
func (c *CreatureDef) GlyphRune() rune {
	for _, r := range c.Glyph {
		return r
	}
	return '?'
}

// TCellColor returns the color as a tcell.Color.
func (c *CreatureDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(c.Color)
	if err != nil {
		return tcell.ColorWhite
	}
	return color
}

// CreaturesFile is the layout of creatures.json.
type CreaturesFile struct {
	Player   CreatureDef   `json:"player"`
	Monsters []CreatureDef `json:"monsters"`
}

// LoadCreatures loads the embedded creature table.
func LoadCreatures() (CreaturesFile, error) {
	file, err := load[CreaturesFile]("creatures.json")
	if err != nil {
		return file, err
	}
	if file.Player.ID == "" {
		return file, errors.New("creatures.json has no player definition")
	}
	if len(file.Monsters) == 0 {
		return file, errors.New("creatures.json has no monsters")
	}
	return file, nil
}
