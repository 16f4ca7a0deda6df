// internal/system/projectile.go
package system

import (
	"jet-fighter/internal/component"
	"jet-fighter/internal/config"
	"jet-fighter/internal/entity"
	"jet-fighter/pkg/geom"
)

// ProjectileSystem moves both projectile pools and lets hostile shots hit
// the player.
type ProjectileSystem struct{}

func NewProjectileSystem() *ProjectileSystem {
	return &ProjectileSystem{}
}

// UpdateFriendly runs the player's shots.
func (s *ProjectileSystem) UpdateFriendly(ctx *Context) {
	s.sweep(ctx, ctx.Store.Friendly, nil)
}

// UpdateHostile runs the enemies' shots and applies their damage to the
// live player.
func (s *ProjectileSystem) UpdateHostile(ctx *Context) {
	s.sweep(ctx, ctx.Store.Hostile, func(p *component.Projectile) {
		player := &ctx.Store.Player
		if player.Alive && geom.Overlaps(p.Collision, player.Collision) {
			DamagePlayer(ctx, p.Damage)
			p.Alive = false
		}
	})
}

func (s *ProjectileSystem) sweep(ctx *Context, pool *entity.ProjectilePool, hit func(*component.Projectile)) {
	pool.Sweep(func(p *component.Projectile) bool {
		p.Animation.Advance()
		p.Move()
		if offscreen(p.Position) {
			p.Alive = false
			return false
		}
		p.SyncCollision()
		if hit != nil {
			hit(p)
		}
		return p.Alive
	})
}

func offscreen(pos geom.Vector2) bool {
	const m = config.ProjectileMargin
	return pos.X < -m || pos.X > config.ScreenWidth+m ||
		pos.Y < -m || pos.Y > config.ScreenHeight+m
}
