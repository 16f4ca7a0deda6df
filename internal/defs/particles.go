// internal/defs/particles.go
package defs

const ParticleExplosion = "explosion_01"

// ParticleDefinition only carries animation parameters: a particle lives
// exactly as long as its one-shot animation plays.
type ParticleDefinition struct {
	ID        string       `yaml:"id"`
	Animation AnimationDef `yaml:"animation"`
}
