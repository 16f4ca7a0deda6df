// internal/defs/loader.go
package defs

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	EnemiesFile   = "enemies.yaml"
	ParticlesFile = "particles.yaml"
	SpawnFile     = "spawn.yaml"
)

//go:embed data/*.yaml
var builtinFS embed.FS

// Library holds every definition the simulation reads at spawn time.
type Library struct {
	Enemies    map[string]EnemyDefinition
	Particles  map[string]ParticleDefinition
	SpawnTable []SpawnEntry
}

// Builtin returns the definitions compiled into the binary.
func Builtin() (*Library, error) {
	return Load("")
}

// Load reads the definition files from dir. Any file missing from dir falls
// back to the builtin copy; an empty dir loads only builtins.
func Load(dir string) (*Library, error) {
	var enemyDefs []EnemyDefinition
	if err := loadFile(dir, EnemiesFile, &enemyDefs); err != nil {
		return nil, err
	}
	var particleDefs []ParticleDefinition
	if err := loadFile(dir, ParticlesFile, &particleDefs); err != nil {
		return nil, err
	}
	var spawn []SpawnEntry
	if err := loadFile(dir, SpawnFile, &spawn); err != nil {
		return nil, err
	}

	lib := &Library{
		Enemies:    make(map[string]EnemyDefinition, len(enemyDefs)),
		Particles:  make(map[string]ParticleDefinition, len(particleDefs)),
		SpawnTable: spawn,
	}
	for _, def := range enemyDefs {
		lib.Enemies[def.ID] = def
	}
	for _, def := range particleDefs {
		lib.Particles[def.ID] = def
	}
	if err := lib.Validate(); err != nil {
		return nil, err
	}
	return lib, nil
}

func loadFile(dir, name string, out any) error {
	data, err := readDefinition(dir, name)
	if err != nil {
		return fmt.Errorf("defs: load %s: %w", name, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("defs: unmarshal %s: %w", name, err)
	}
	return nil
}

func readDefinition(dir, name string) ([]byte, error) {
	if dir != "" {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}
	return builtinFS.ReadFile("data/" + name)
}

// Validate checks the cross references and ranges the simulation relies on.
func (l *Library) Validate() error {
	for id, def := range l.Enemies {
		if id == "" {
			return errors.New("defs: enemy definition without id")
		}
		if def.Health <= 0 {
			return fmt.Errorf("defs: enemy %q: health must be positive", id)
		}
		if def.Animation.Frames < 1 {
			return fmt.Errorf("defs: enemy %q: animation needs at least one frame", id)
		}
		if def.Shot != nil && def.Shot.Cooldown <= 0 {
			return fmt.Errorf("defs: enemy %q: shot cooldown must be positive", id)
		}
		if def.Strafe != nil && def.Strafe.Period <= 0 {
			return fmt.Errorf("defs: enemy %q: strafe period must be positive", id)
		}
	}
	for id, def := range l.Particles {
		if def.Animation.Frames < 1 {
			return fmt.Errorf("defs: particle %q: animation needs at least one frame", id)
		}
		// A particle dies when its animation stops, so it must play once.
		if def.Animation.Loops || def.Animation.Speed <= 0 {
			return fmt.Errorf("defs: particle %q: animation must play once with positive speed", id)
		}
	}
	if len(l.SpawnTable) == 0 {
		return errors.New("defs: spawn table is empty")
	}
	total := 0
	for _, entry := range l.SpawnTable {
		if _, ok := l.Enemies[entry.Kind]; !ok {
			return fmt.Errorf("defs: spawn table references unknown enemy %q", entry.Kind)
		}
		if entry.Weight < 0 {
			return fmt.Errorf("defs: spawn weight for %q is negative", entry.Kind)
		}
		total += entry.Weight
	}
	if total == 0 {
		return errors.New("defs: spawn table weights sum to zero")
	}
	return nil
}
