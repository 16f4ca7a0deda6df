// internal/entity/store.go
package entity

import (
	"jet-fighter/internal/component"
	"jet-fighter/internal/config"
)

type (
	EnemyPool      = Pool[component.Enemy, *component.Enemy]
	ParticlePool   = Pool[component.Particle, *component.Particle]
	ProjectilePool = Pool[component.Projectile, *component.Projectile]
)

// Store holds the player singleton and one pool per pooled entity kind.
type Store struct {
	Player    component.Player
	Enemies   *EnemyPool
	Particles *ParticlePool
	Friendly  *ProjectilePool
	Hostile   *ProjectilePool
}

func NewStore() *Store {
	return &Store{
		Enemies:   NewPool[component.Enemy](config.PoolSizeEnemy),
		Particles: NewPool[component.Particle](config.PoolSizeParticle),
		Friendly:  NewPool[component.Projectile](config.PoolSizeFriendlyProjectile),
		Hostile:   NewPool[component.Projectile](config.PoolSizeHostileProjectile),
	}
}

// Projectiles picks the pool for friendly or hostile shots.
func (s *Store) Projectiles(friendly bool) *ProjectilePool {
	if friendly {
		return s.Friendly
	}
	return s.Hostile
}

// Clear empties every pool.
func (s *Store) Clear() {
	s.Enemies.Reset()
	s.Particles.Reset()
	s.Friendly.Reset()
	s.Hostile.Reset()
}

// Check verifies the invariant of every pool.
func (s *Store) Check() error {
	if err := s.Enemies.Check(); err != nil {
		return err
	}
	if err := s.Particles.Check(); err != nil {
		return err
	}
	if err := s.Friendly.Check(); err != nil {
		return err
	}
	return s.Hostile.Check()
}

// Verify reports a broken pool invariant through the debug assertion. It
// is silent in normal builds.
func (s *Store) Verify() {
	if err := s.Check(); err != nil {
		violated("%v", err)
	}
}
