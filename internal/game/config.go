package game

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/samdwyer/dungeoncrawl/internal/world"
)

// ErrInvalidConfig wraps every configuration problem.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible dungeon generation.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	Width       int // Map width in cells
	Height      int // Map height in cells
	MaxRooms    int // Room placement attempts
	MinRoomSize int // Smallest room edge
	MaxRoomSize int // Largest room edge

	// ViewRange overrides every creature's sight radius when positive.
	ViewRange int

	// MinRooms is how many rooms a level needs to be playable. Levels with
	// fewer are regenerated up to GenerationAttempts times.
	MinRooms           int
	GenerationAttempts int
}

// DefaultConfig returns the standard 80x50 game.
func DefaultConfig() Config {
	p := world.DefaultParams()
	return Config{
		Width:              p.Width,
		Height:             p.Height,
		MaxRooms:           p.MaxRooms,
		MinRoomSize:        p.MinSize,
		MaxRoomSize:        p.MaxSize,
		MinRooms:           2,
		GenerationAttempts: 10,
	}
}

// envKeys maps environment variables onto config fields.
var envKeys = []struct {
	name  string
	field func(*Config) *int
}{
	{"DUNGEONCRAWL_WIDTH", func(c *Config) *int { return &c.Width }},
	{"DUNGEONCRAWL_HEIGHT", func(c *Config) *int { return &c.Height }},
	{"DUNGEONCRAWL_MAX_ROOMS", func(c *Config) *int { return &c.MaxRooms }},
	{"DUNGEONCRAWL_MIN_ROOM_SIZE", func(c *Config) *int { return &c.MinRoomSize }},
	{"DUNGEONCRAWL_MAX_ROOM_SIZE", func(c *Config) *int { return &c.MaxRoomSize }},
	{"DUNGEONCRAWL_VIEW_RANGE", func(c *Config) *int { return &c.ViewRange }},
	{"DUNGEONCRAWL_MIN_ROOMS", func(c *Config) *int { return &c.MinRooms }},
	{"DUNGEONCRAWL_GENERATION_ATTEMPTS", func(c *Config) *int { return &c.GenerationAttempts }},
}

// LoadConfig overlays DUNGEONCRAWL_* environment variables on DefaultConfig
// and validates the result.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()

	if v, ok := os.LookupEnv("DUNGEONCRAWL_SEED"); ok && v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("%w: DUNGEONCRAWL_SEED=%q: %w", ErrInvalidConfig, v, err)
		}
		cfg.Seed = seed
	}

	for _, key := range envKeys {
		v, ok := os.LookupEnv(key.name)
		if !ok || v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("%w: %s=%q: %w", ErrInvalidConfig, key.name, v, err)
		}
		*key.field(&cfg) = n
	}

	return cfg, cfg.Validate()
}

// Params returns the generation parameters for this config.
func (c Config) Params() world.Params {
	return world.Params{
		Width:    c.Width,
		Height:   c.Height,
		MaxRooms: c.MaxRooms,
		MinSize:  c.MinRoomSize,
		MaxSize:  c.MaxRoomSize,
	}
}

// Validate rejects configs that cannot produce a playable level.
func (c Config) Validate() error {
	if err := c.Params().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	switch {
	case c.ViewRange < 0:
		return fmt.Errorf("%w: view range %d is negative", ErrInvalidConfig, c.ViewRange)
	case c.MinRooms < 1:
		return fmt.Errorf("%w: min rooms %d must be at least 1", ErrInvalidConfig, c.MinRooms)
	case c.MinRooms > c.MaxRooms:
		return fmt.Errorf("%w: min rooms %d exceeds max rooms %d", ErrInvalidConfig, c.MinRooms, c.MaxRooms)
	case c.GenerationAttempts < 1:
		return fmt.Errorf("%w: generation attempts %d must be at least 1", ErrInvalidConfig, c.GenerationAttempts)
	}
	return nil
}
