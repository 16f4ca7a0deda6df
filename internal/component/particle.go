package component

import (
	"jet-fighter/internal/interfaces"
	"jet-fighter/pkg/geom"
)

// Particle is a purely visual effect. It has no velocity or collision and
// dies when its one-shot animation stops.
type Particle struct {
	Alive     bool
	Kind      string
	Position  geom.Vector2
	Animation Animation
	Sprite    interfaces.Texture
}

func (p *Particle) IsAlive() bool       { return p.Alive }
func (p *Particle) SetAlive(alive bool) { p.Alive = alive }
