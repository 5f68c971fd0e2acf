package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 80, cfg.Width)
	assert.Equal(t, 50, cfg.Height)
	assert.Equal(t, 30, cfg.MaxRooms)
	assert.Equal(t, 6, cfg.MinRoomSize)
	assert.Equal(t, 10, cfg.MaxRoomSize)
	assert.Equal(t, int64(0), cfg.Seed)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("DUNGEONCRAWL_SEED", "42")
	t.Setenv("DUNGEONCRAWL_WIDTH", "40")
	t.Setenv("DUNGEONCRAWL_HEIGHT", "30")
	t.Setenv("DUNGEONCRAWL_VIEW_RANGE", "5")
	t.Setenv("DUNGEONCRAWL_MAX_ROOM_SIZE", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, 40, cfg.Width)
	assert.Equal(t, 30, cfg.Height)
	assert.Equal(t, 5, cfg.ViewRange)
	assert.Equal(t, 10, cfg.MaxRoomSize, "empty values keep the default")
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"bad seed", "DUNGEONCRAWL_SEED", "abc"},
		{"bad width", "DUNGEONCRAWL_WIDTH", "wide"},
		{"too small", "DUNGEONCRAWL_HEIGHT", "2"},
		{"zero attempts", "DUNGEONCRAWL_GENERATION_ATTEMPTS", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := LoadConfig()
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative view range", func(c *Config) { c.ViewRange = -1 }},
		{"no min rooms", func(c *Config) { c.MinRooms = 0 }},
		{"min rooms above attempts", func(c *Config) { c.MinRooms = c.MaxRooms + 1 }},
		{"no attempts", func(c *Config) { c.GenerationAttempts = 0 }},
		{"one-cell rooms", func(c *Config) { c.MinRoomSize, c.MaxRoomSize = 1, 1 }},
		{"inverted room sizes", func(c *Config) { c.MinRoomSize, c.MaxRoomSize = 8, 4 }},
		{"room larger than map", func(c *Config) { c.Width, c.Height = 6, 6 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestConfigParams(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 20

	p := cfg.Params()
	assert.Equal(t, 20, p.Width)
	assert.Equal(t, cfg.MaxRooms, p.MaxRooms)
	assert.Equal(t, cfg.MinRoomSize, p.MinSize)
}
