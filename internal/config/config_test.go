package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Expected default config to be valid, got %v", err)
	}

	if cfg.Map.CellSize != 150 {
		t.Errorf("Expected cell size 150, got %.1f", cfg.Map.CellSize)
	}
	if cfg.Player.RunSpeed != -25 || cfg.Player.WalkSpeed != -10 {
		t.Errorf("Expected speeds -25/-10, got %.1f/%.1f", cfg.Player.RunSpeed, cfg.Player.WalkSpeed)
	}
	if cfg.Projectile.SpawnOffset != 10 {
		t.Errorf("Expected spawn offset 10, got %.1f", cfg.Projectile.SpawnOffset)
	}
}

func TestLoadConfigOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corridor.yaml")
	data := `
window:
  width: 640
player:
  run_speed: -40
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Window.Width != 640 {
		t.Errorf("Expected width 640, got %d", cfg.Window.Width)
	}
	if cfg.Window.Height != 600 {
		t.Errorf("Expected default height 600, got %d", cfg.Window.Height)
	}
	if cfg.Player.RunSpeed != -40 {
		t.Errorf("Expected run speed -40, got %.1f", cfg.Player.RunSpeed)
	}
	if cfg.Player.WalkSpeed != -10 {
		t.Errorf("Expected default walk speed -10, got %.1f", cfg.Player.WalkSpeed)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Expected defaults for missing file, got %v", err)
	}
	if cfg.Window.Width != 920 {
		t.Errorf("Expected default width 920, got %d", cfg.Window.Width)
	}
}

func TestLoadConfigRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"zero cell size", "map:\n  cell_size: 0\n"},
		{"slow run", "player:\n  run_speed: -5\n"},
		{"negative window", "window:\n  width: -1\n"},
		{"bad clip range", "camera:\n  near: 100\n  far: 50\n"},
		{"malformed yaml", "window: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.yaml")
			if err := os.WriteFile(path, []byte(tt.data), 0o644); err != nil {
				t.Fatalf("Failed to write config: %v", err)
			}
			if _, err := LoadConfig(path); err == nil {
				t.Error("Expected an error, got nil")
			}
		})
	}
}
