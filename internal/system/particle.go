// internal/system/particle.go
package system

import "jet-fighter/internal/component"

// ParticleSystem plays visual effects. A particle lives exactly as long as
// its one-shot animation: it dies on the tick the animation stops.
type ParticleSystem struct{}

func NewParticleSystem() *ParticleSystem {
	return &ParticleSystem{}
}

func (s *ParticleSystem) Update(ctx *Context) {
	ctx.Store.Particles.Sweep(func(p *component.Particle) bool {
		p.Animation.Advance()
		return !p.Animation.Stopped()
	})
}
