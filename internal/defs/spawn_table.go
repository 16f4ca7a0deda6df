// internal/defs/spawn_table.go
package defs

// SpawnEntry is one row of the enemy spawn table. Weight is the relative
// chance of Kind being picked when a spawn trial succeeds.
type SpawnEntry struct {
	Kind   string `yaml:"kind"`
	Weight int    `yaml:"weight"`
}
