// internal/system/player_system.go
package system

import (
	"math"

	"jet-fighter/internal/component"
	"jet-fighter/internal/config"
	"jet-fighter/internal/defs"
	"jet-fighter/internal/event"
	"jet-fighter/internal/interfaces"
	"jet-fighter/internal/utils"
	"jet-fighter/pkg/geom"
)

// PlayerSystem steers the player ship from input, fires its gun and notices
// its death.
type PlayerSystem struct{}

func NewPlayerSystem() *PlayerSystem {
	return &PlayerSystem{}
}

// Reset puts a fresh ship in the middle of the screen.
func (s *PlayerSystem) Reset(ctx *Context) {
	p := &ctx.Store.Player
	*p = component.Player{
		HP:           config.PlayerHealth,
		HPMax:        config.PlayerHealth,
		MoveSpeed:    config.PlayerMoveSpeed,
		MoveFriction: config.PlayerMoveFriction,
		MoveDeadZone: config.PlayerMoveDeadZone,
		MoveMax:      config.PlayerMoveMax,
	}
	p.Alive = true
	p.Position = geom.Vec(config.ScreenWidth*0.5, config.ScreenHeight*0.5)
	p.Animation = component.NewAnimation(defs.AnimationDef{Frames: 1, Row: config.PlayerSheetRow}, config.SpriteSize, config.SpriteSize)
	p.Sprite = ctx.Sprites.Primary
	p.SetCollision(config.PlayerCollideSize, config.PlayerCollideSize, geom.Point{X: config.PlayerCollideInset, Y: config.PlayerCollideInset})
	p.SyncCollision()
}

// Update runs one tick of the player. A dead player is left alone.
func (s *PlayerSystem) Update(ctx *Context, in interfaces.Intents) {
	p := &ctx.Store.Player
	if !p.Alive {
		return
	}

	p.Animation.Advance()
	s.steer(p, in)
	p.Move()
	p.Position.X = utils.Clamp(p.Position.X, 0, config.ScreenWidth)
	p.Position.Y = utils.Clamp(p.Position.Y, 0, config.ScreenHeight)
	p.SyncCollision()

	if in.Shoot && ctx.Now >= p.NextShot {
		p.NextShot = ctx.Now + config.PlayerShotCooldown
		pos := p.Position.Sub(geom.Vec(0, config.SpriteSize))
		ctx.SpawnProjectile(true, pos, geom.Vec(0, -config.PlayerShotSpeed), config.PlayerShotDamage, config.PlayerShotRow)
	}

	if p.HP <= 0 {
		p.Alive = false
		ctx.SpawnParticle(defs.ParticleExplosion, p.Position)
		ctx.Events.Dispatch(event.Event{Type: event.PlayerDied})
	}
}

// steer applies friction, then the input thrust, then the speed cap and the
// dead zone.
func (s *PlayerSystem) steer(p *component.Player, in interfaces.Intents) {
	p.Velocity = p.Velocity.Scale(p.MoveFriction)

	var thrust geom.Vector2
	if in.Up {
		thrust.Y -= p.MoveSpeed
	}
	if in.Down {
		thrust.Y += p.MoveSpeed
	}
	if in.Left {
		thrust.X -= p.MoveSpeed
	}
	if in.Right {
		thrust.X += p.MoveSpeed
	}

	p.Velocity = p.Velocity.Add(thrust.Truncate(p.MoveSpeed)).Truncate(p.MoveMax)
	if math.Abs(p.Velocity.X) < p.MoveDeadZone {
		p.Velocity.X = 0
	}
	if math.Abs(p.Velocity.Y) < p.MoveDeadZone {
		p.Velocity.Y = 0
	}
}
