// Package config provides the tunable rules of the maze demo.
// Every value has a default; a YAML file may override any subset of them.
package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all tunables for a run
type Config struct {
	Window     WindowConfig     `yaml:"window"`
	Map        MapConfig        `yaml:"map"`
	Player     PlayerConfig     `yaml:"player"`
	Camera     CameraConfig     `yaml:"camera"`
	Projectile ProjectileConfig `yaml:"projectile"`
	Enemy      EnemyConfig      `yaml:"enemy"`
	Lighting   LightingConfig   `yaml:"lighting"`
}

// WindowConfig defines the logical viewport. Pointer coordinates and the
// projectile play area are both measured against it.
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	TPS    int    `yaml:"tps"` // Ticks per second for the terminal backend
}

// MapConfig defines how grid cells become world geometry
type MapConfig struct {
	Path       string  `yaml:"path"`        // Optional text map; empty uses the built-in map
	CellSize   float64 `yaml:"cell_size"`   // World units per grid character
	WallHeight float64 `yaml:"wall_height"` // Height of every wall box
}

// PlayerConfig defines player movement and turning
type PlayerConfig struct {
	WalkSpeed        float64 `yaml:"walk_speed"`        // Negative: forward is opposite the heading vector
	RunSpeed         float64 `yaml:"run_speed"`         // Same sign as WalkSpeed, larger magnitude
	PersonalSpace    float64 `yaml:"personal_space"`    // Extra clearance around walls
	MouseSensitivity float64 `yaml:"mouse_sensitivity"` // Radians per pixel of pointer offset
	InitialHeading   float64 `yaml:"initial_heading"`
}

// CameraConfig defines the chase camera and the lens
type CameraConfig struct {
	OffsetX float64 `yaml:"offset_x"`
	EyeY    float64 `yaml:"eye_y"` // Negative is above the floor
	OffsetZ float64 `yaml:"offset_z"`
	FovY    float64 `yaml:"fov_y"` // Degrees
	Near    float64 `yaml:"near"`
	Far     float64 `yaml:"far"`
}

// ProjectileConfig defines fired projectiles
type ProjectileConfig struct {
	Speed       float64 `yaml:"speed"`
	Size        float64 `yaml:"size"`
	SpawnOffset float64 `yaml:"spawn_offset"` // Distance ahead of the firer at spawn
}

// EnemyConfig defines enemy markers
type EnemyConfig struct {
	Radius float64 `yaml:"radius"`
}

// LightingConfig defines scene lights as fractions of full intensity
type LightingConfig struct {
	Ambient     float64    `yaml:"ambient"`
	Directional float64    `yaml:"directional"`
	Direction   [3]float64 `yaml:"direction"`
}

// DefaultConfig returns the stock tuning of the maze
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  920,
			Height: 600,
			Title:  "Corridor",
			TPS:    60,
		},
		Map: MapConfig{
			CellSize:   150,
			WallHeight: 200,
		},
		Player: PlayerConfig{
			WalkSpeed:        -10,
			RunSpeed:         -25,
			PersonalSpace:    50,
			MouseSensitivity: 0.0001,
			InitialHeading:   -1,
		},
		Camera: CameraConfig{
			OffsetX: 100,
			EyeY:    -75,
			OffsetZ: 50,
			FovY:    60,
			Near:    10,
			Far:     10000,
		},
		Projectile: ProjectileConfig{
			Speed:       15,
			Size:        10,
			SpawnOffset: 10,
		},
		Enemy: EnemyConfig{
			Radius: 50,
		},
		Lighting: LightingConfig{
			Ambient:     150.0 / 255.0,
			Directional: 180.0 / 255.0,
			Direction:   [3]float64{0, 0, -1},
		},
	}
}

// LoadConfig loads a YAML file over the defaults
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()
	if path == "" {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		// Return defaults if file doesn't exist
		if os.IsNotExist(err) {
			return config, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return config, nil
}

// Validate checks that values are usable
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("invalid window size: %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Window.TPS <= 0 {
		return fmt.Errorf("invalid tps: %d", c.Window.TPS)
	}
	if c.Map.CellSize <= 0 {
		return fmt.Errorf("invalid cell size: %.1f", c.Map.CellSize)
	}
	if c.Map.WallHeight <= 0 {
		return fmt.Errorf("invalid wall height: %.1f", c.Map.WallHeight)
	}
	if math.Abs(c.Player.RunSpeed) <= math.Abs(c.Player.WalkSpeed) {
		return fmt.Errorf("run speed %.1f must exceed walk speed %.1f in magnitude",
			c.Player.RunSpeed, c.Player.WalkSpeed)
	}
	if c.Player.PersonalSpace < 0 {
		return fmt.Errorf("invalid personal space: %.1f", c.Player.PersonalSpace)
	}
	if c.Projectile.Speed <= 0 || c.Projectile.Size <= 0 {
		return fmt.Errorf("invalid projectile speed/size: %.1f/%.1f", c.Projectile.Speed, c.Projectile.Size)
	}
	if c.Camera.FovY <= 0 || c.Camera.FovY >= 180 {
		return fmt.Errorf("invalid field of view: %.1f", c.Camera.FovY)
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		return fmt.Errorf("invalid clip range: near %.1f far %.1f", c.Camera.Near, c.Camera.Far)
	}
	return nil
}
