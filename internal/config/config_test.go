package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/thenoetrevino/lanes/internal/dragdrop"
	"github.com/thenoetrevino/lanes/internal/models"
)

func TestDefaultKeyMappings(t *testing.T) {
	defaults := DefaultKeyMappings()

	if defaults.Quit != "q" {
		t.Errorf("Default Quit key = %s, want q", defaults.Quit)
	}
	if defaults.AddCard != "a" {
		t.Errorf("Default AddCard key = %s, want a", defaults.AddCard)
	}
	if defaults.CloseForm != "esc" {
		t.Errorf("Default CloseForm key = %s, want esc", defaults.CloseForm)
	}
}

func TestLoadConfigWithoutFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("LANES_STORAGE", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() without config file failed: %v", err)
	}

	if cfg.KeyMappings.Quit != "q" {
		t.Errorf("Loaded config Quit key = %s, want q (default)", cfg.KeyMappings.Quit)
	}
	if cfg.Storage.Backend != "sqlite" {
		t.Errorf("Storage.Backend = %q, want sqlite", cfg.Storage.Backend)
	}
	if cfg.Drag.DistanceOffset != dragdrop.DefaultDistanceOffset {
		t.Errorf("Drag.DistanceOffset = %d, want %d", cfg.Drag.DistanceOffset, dragdrop.DefaultDistanceOffset)
	}
	if cfg.ColorScheme.Indicator == "" {
		t.Error("ColorScheme.Indicator is empty, want preset value")
	}
}

func TestLoadConfigWithFile(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tempDir)
	t.Setenv("LANES_STORAGE", "")

	configDir := filepath.Join(tempDir, "lanes")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}

	configContent := `key_mappings:
  quit: "x"
  add_card: "n"
storage:
  backend: file
  path: /tmp/lanes-board
drag:
  distance_offset: 3
theme:
  preset: wave
  todo: "#123456"
`
	configPath := filepath.Join(configDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(configContent), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() with config file failed: %v", err)
	}

	if cfg.KeyMappings.Quit != "x" {
		t.Errorf("Loaded Quit key = %s, want x", cfg.KeyMappings.Quit)
	}
	if cfg.KeyMappings.AddCard != "n" {
		t.Errorf("Loaded AddCard key = %s, want n", cfg.KeyMappings.AddCard)
	}
	// Unspecified values should use defaults
	if cfg.KeyMappings.PrevLane != "h" {
		t.Errorf("Loaded PrevLane key = %s, want h (default)", cfg.KeyMappings.PrevLane)
	}

	if cfg.Storage.Backend != "file" || cfg.Storage.Path != "/tmp/lanes-board" {
		t.Errorf("Storage = %+v, want file at /tmp/lanes-board", cfg.Storage)
	}
	if cfg.Drag.DistanceOffset != 3 {
		t.Errorf("Drag.DistanceOffset = %d, want 3", cfg.Drag.DistanceOffset)
	}

	if got := LaneColor(cfg.ColorScheme, models.LaneTodo); got != "#123456" {
		t.Errorf("todo lane color = %s, want override #123456", got)
	}
	if got := LaneColor(cfg.ColorScheme, models.LaneDoing); got != "#7E9CD8" {
		t.Errorf("doing lane color = %s, want wave preset #7E9CD8", got)
	}
}

func TestLoadConfig_StorageEnvOverride(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("LANES_STORAGE", "memory")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Storage.Backend != "memory" {
		t.Errorf("Storage.Backend = %q, want memory from LANES_STORAGE", cfg.Storage.Backend)
	}
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tempDir)

	configDir := filepath.Join(tempDir, "lanes")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte("key_mappings: [unclosed"), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	if _, err := Load(); err == nil {
		t.Error("Load() with invalid YAML returned nil error")
	}
}
