package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/wanigame/wanirogue/internal/dungeon"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid generator config")

// GeneratorConfig holds map generation settings.
type GeneratorConfig struct {
	// Width and Height are the requested map size in cells. They are
	// normalized to the nearest valid odd size at generation time.
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	// Seed for the random source. 0 means pick one from the clock.
	Seed int64 `yaml:"seed"`

	// TileSize is the pixel size of a cell, used for spawn coordinates.
	TileSize int `yaml:"tile_size"`

	Rooms RoomsConfig `yaml:"rooms"`
}

// RoomsConfig holds room placement settings. Ranges are half-open.
type RoomsConfig struct {
	// MinCount and MaxCount bound the number of rooms attempted.
	MinCount int `yaml:"min_count"`
	MaxCount int `yaml:"max_count"`

	// MinRetries and MaxRetries bound placement attempts per room.
	MinRetries int `yaml:"min_retries"`
	MaxRetries int `yaml:"max_retries"`

	// MinSize and MaxSize bound a room's side before it is rounded down to odd.
	MinSize int `yaml:"min_size"`
	MaxSize int `yaml:"max_size"`
}

// DefaultConfig returns a GeneratorConfig with the stock settings.
func DefaultConfig() *GeneratorConfig {
	rooms := dungeon.DefaultRoomConfig()
	return &GeneratorConfig{
		Width:    41,
		Height:   31,
		Seed:     0, // random
		TileSize: dungeon.DefaultTileSize,
		Rooms: RoomsConfig{
			MinCount:   rooms.MinCount,
			MaxCount:   rooms.MaxCount,
			MinRetries: rooms.MinRetries,
			MaxRetries: rooms.MaxRetries,
			MinSize:    rooms.MinSize,
			MaxSize:    rooms.MaxSize,
		},
	}
}

// LoadConfig loads generator configuration from a YAML file.
// If the file doesn't exist, returns default config.
// Keys missing from the file keep their default values.
func LoadConfig(path string) (*GeneratorConfig, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil // Use defaults if file doesn't exist
		}
		return config, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return DefaultConfig(), fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return DefaultConfig(), err
	}

	return config, nil
}

// Validate checks that every range is non-empty and that the values can
// produce a map.
func (c *GeneratorConfig) Validate() error {
	if c.Width < 0 || c.Height < 0 {
		return fmt.Errorf("%w: negative size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.TileSize <= 0 {
		return fmt.Errorf("%w: tile_size must be positive, got %d", ErrInvalidConfig, c.TileSize)
	}

	r := c.Rooms
	if r.MinCount < 0 || r.MaxCount <= r.MinCount {
		return fmt.Errorf("%w: rooms count range [%d,%d) is empty", ErrInvalidConfig, r.MinCount, r.MaxCount)
	}
	if r.MinRetries < 1 || r.MaxRetries <= r.MinRetries {
		return fmt.Errorf("%w: rooms retries range [%d,%d) is empty", ErrInvalidConfig, r.MinRetries, r.MaxRetries)
	}
	// Sizes below 2 would yield 1-wide rooms, which read as dead ends.
	if r.MinSize < 2 || r.MaxSize <= r.MinSize {
		return fmt.Errorf("%w: rooms size range [%d,%d) is invalid", ErrInvalidConfig, r.MinSize, r.MaxSize)
	}

	return nil
}

// DungeonConfig converts the settings into generator parameters.
func (c *GeneratorConfig) DungeonConfig() dungeon.Config {
	return dungeon.Config{
		Rooms: dungeon.RoomConfig{
			MinCount:   c.Rooms.MinCount,
			MaxCount:   c.Rooms.MaxCount,
			MinRetries: c.Rooms.MinRetries,
			MaxRetries: c.Rooms.MaxRetries,
			MinSize:    c.Rooms.MinSize,
			MaxSize:    c.Rooms.MaxSize,
		},
		TileSize: c.TileSize,
	}
}
