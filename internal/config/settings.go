package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Settings holds everything that can be tuned without recompiling.
type Settings struct {
	Window     WindowSettings     `toml:"window"`
	Simulation SimulationSettings `toml:"simulation"`
	Spawn      SpawnSettings      `toml:"spawn"`
	Assets     AssetSettings      `toml:"assets"`
	Defs       DefsSettings       `toml:"defs"`
	Logging    LoggingSettings    `toml:"logging"`
}

type WindowSettings struct {
	Title      string  `toml:"title"`
	Scale      float64 `toml:"scale"`
	Fullscreen bool    `toml:"fullscreen"`
}

type SimulationSettings struct {
	TickRate         int   `toml:"tick_rate"`           // logical ticks per second
	MaxTicksPerFrame int   `toml:"max_ticks_per_frame"` // 0 = unbounded catch-up
	Seed             int64 `toml:"seed"`                // 0 = time based
}

type SpawnSettings struct {
	Chance int `toml:"chance"`
}

type AssetSettings struct {
	ImageDir     string `toml:"image_dir"`
	Placeholders bool   `toml:"placeholders"` // generate sheets for missing images
}

type DefsSettings struct {
	Dir   string `toml:"dir"`
	Watch bool   `toml:"watch"`
}

type LoggingSettings struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

// Load reads settings from a TOML file on top of the defaults. A missing
// file is not an error.
func Load(path string) (*Settings, error) {
	s := Defaults()
	if path == "" {
		return s, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return s, nil
}

func Defaults() *Settings {
	return &Settings{
		Window: WindowSettings{
			Title: "JET Fighter",
			Scale: 1,
		},
		Simulation: SimulationSettings{
			TickRate: FPS,
		},
		Spawn: SpawnSettings{
			Chance: EnemySpawnChance,
		},
		Assets: AssetSettings{
			ImageDir:     "data/images",
			Placeholders: true,
		},
		Defs: DefsSettings{
			Dir: "data/defs",
		},
		Logging: LoggingSettings{
			Level:  "info",
			Format: "console",
		},
	}
}

func (s *Settings) Validate() error {
	if s.Simulation.TickRate <= 0 {
		return fmt.Errorf("simulation.tick_rate must be positive, got %d", s.Simulation.TickRate)
	}
	if s.Simulation.MaxTicksPerFrame < 0 {
		return fmt.Errorf("simulation.max_ticks_per_frame must not be negative, got %d", s.Simulation.MaxTicksPerFrame)
	}
	if s.Window.Scale <= 0 {
		return fmt.Errorf("window.scale must be positive, got %v", s.Window.Scale)
	}
	if s.Spawn.Chance <= 0 {
		return fmt.Errorf("spawn.chance must be positive, got %d", s.Spawn.Chance)
	}
	return nil
}
