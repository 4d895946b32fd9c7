package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/wanigame/wanirogue/internal/dungeon"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg == nil {
		t.Fatal("DefaultConfig returned nil")
	}

	if cfg.TileSize != 32 {
		t.Errorf("expected tile size 32, got %d", cfg.TileSize)
	}

	if cfg.Rooms.MinCount != 5 || cfg.Rooms.MaxCount != 10 {
		t.Errorf("expected room count range [5,10), got [%d,%d)", cfg.Rooms.MinCount, cfg.Rooms.MaxCount)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestLoadConfig_FileNotExists(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/mapgen.yaml")

	if err != nil {
		t.Errorf("expected no error for missing file, got %v", err)
	}

	if cfg == nil {
		t.Fatal("expected default config for missing file, got nil")
	}

	if cfg.Width != 41 || cfg.Height != 31 {
		t.Errorf("expected default size 41x31, got %dx%d", cfg.Width, cfg.Height)
	}
}

func TestLoadConfig_ValidFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "mapgen.yaml")

	content := `
width: 61
height: 45
seed: 1234
rooms:
  min_count: 2
  max_count: 4
  max_size: 12
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Width != 61 || cfg.Height != 45 {
		t.Errorf("expected size 61x45, got %dx%d", cfg.Width, cfg.Height)
	}

	if cfg.Seed != 1234 {
		t.Errorf("expected seed 1234, got %d", cfg.Seed)
	}

	if cfg.Rooms.MinCount != 2 || cfg.Rooms.MaxCount != 4 {
		t.Errorf("expected room count range [2,4), got [%d,%d)", cfg.Rooms.MinCount, cfg.Rooms.MaxCount)
	}

	if cfg.Rooms.MaxSize != 12 {
		t.Errorf("expected max size 12, got %d", cfg.Rooms.MaxSize)
	}

	// Keys not in the file keep their defaults
	if cfg.Rooms.MinSize != 8 {
		t.Errorf("expected default min size 8, got %d", cfg.Rooms.MinSize)
	}
	if cfg.TileSize != 32 {
		t.Errorf("expected default tile size 32, got %d", cfg.TileSize)
	}
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "mapgen.yaml")

	if err := os.WriteFile(configPath, []byte("width: [not, a, number"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(configPath)
	if err == nil {
		t.Error("expected error for invalid YAML")
	}

	if cfg == nil || cfg.Width != 41 {
		t.Error("expected default config on parse error")
	}
}

func TestLoadConfig_InvalidValues(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "mapgen.yaml")

	content := `
rooms:
  min_count: 6
  max_count: 6
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadConfig(configPath)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *GeneratorConfig)
		valid  bool
	}{
		{"defaults", func(c *GeneratorConfig) {}, true},
		{"zero size normalizes later", func(c *GeneratorConfig) { c.Width, c.Height = 0, 0 }, true},
		{"negative width", func(c *GeneratorConfig) { c.Width = -1 }, false},
		{"zero tile size", func(c *GeneratorConfig) { c.TileSize = 0 }, false},
		{"no rooms allowed", func(c *GeneratorConfig) { c.Rooms.MinCount, c.Rooms.MaxCount = 0, 1 }, true},
		{"inverted count", func(c *GeneratorConfig) { c.Rooms.MinCount, c.Rooms.MaxCount = 8, 3 }, false},
		{"zero retries", func(c *GeneratorConfig) { c.Rooms.MinRetries = 0 }, false},
		{"empty retries", func(c *GeneratorConfig) { c.Rooms.MaxRetries = c.Rooms.MinRetries }, false},
		{"tiny rooms", func(c *GeneratorConfig) { c.Rooms.MinSize = 1 }, false},
		{"inverted size", func(c *GeneratorConfig) { c.Rooms.MaxSize = 4 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.valid && err != nil {
				t.Errorf("expected valid, got %v", err)
			}
			if !tt.valid && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestDungeonConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TileSize = 16
	cfg.Rooms.MaxCount = 7

	dc := cfg.DungeonConfig()

	if dc.TileSize != 16 {
		t.Errorf("expected tile size 16, got %d", dc.TileSize)
	}

	want := dungeon.DefaultRoomConfig()
	want.MaxCount = 7
	if dc.Rooms != want {
		t.Errorf("expected rooms %+v, got %+v", want, dc.Rooms)
	}
}
