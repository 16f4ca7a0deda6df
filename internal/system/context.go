// internal/system/context.go
package system

import (
	"time"

	"jet-fighter/internal/component"
	"jet-fighter/internal/config"
	"jet-fighter/internal/defs"
	"jet-fighter/internal/entity"
	"jet-fighter/internal/event"
	"jet-fighter/internal/interfaces"
	"jet-fighter/internal/utils"
	"jet-fighter/pkg/geom"

	"go.uber.org/zap"
)

// Sprites are the textures every entity kind draws from, resolved once at
// setup. A nil field means the lookup missed and those entities draw nothing.
type Sprites struct {
	Primary    interfaces.Texture
	Background interfaces.Texture
}

// ResolveSprites looks up the shared textures and warns about each miss.
func ResolveSprites(store interfaces.AssetStore, log *zap.Logger) Sprites {
	find := func(name string) interfaces.Texture {
		if store == nil {
			log.Warn("no asset store, texture skipped", zap.String("texture", name))
			return nil
		}
		tex, ok := store.FindTexture(name)
		if !ok {
			log.Warn("texture not found", zap.String("texture", name))
			return nil
		}
		return tex
	}
	return Sprites{
		Primary:    find(config.PrimaryTexture),
		Background: find(config.BackgroundTexture),
	}
}

// Context is the part of the world the systems share during a tick. The
// world owns it and advances Now by one step before every tick.
type Context struct {
	Store   *entity.Store
	Library *defs.Library
	Sprites Sprites
	Rand    *utils.PRNGService
	Events  *event.Dispatcher
	Log     *zap.Logger
	Now     time.Duration
}

// SpawnParticle starts a one-shot effect of the given kind centred on pos.
func (c *Context) SpawnParticle(kind string, pos geom.Vector2) bool {
	def, ok := c.Library.Particles[kind]
	if !ok {
		c.Log.Debug("unknown particle kind", zap.String("kind", kind))
		return false
	}
	_, ok = c.Store.Particles.Spawn(func(p *component.Particle) {
		p.Kind = kind
		p.Position = pos
		p.Animation = component.NewAnimation(def.Animation, config.SpriteSize, config.SpriteSize)
		p.Sprite = c.Sprites.Primary
	})
	if !ok {
		c.spawnSkipped("particles")
	}
	return ok
}

// SpawnProjectile fires a shot drawn from the given sheet row.
func (c *Context) SpawnProjectile(friendly bool, pos, vel geom.Vector2, damage, row int) bool {
	_, ok := c.Store.Projectiles(friendly).Spawn(func(p *component.Projectile) {
		p.Friendly = friendly
		p.Damage = damage
		p.Position = pos
		p.Velocity = vel
		p.Animation = component.NewAnimation(defs.AnimationDef{Frames: 1, Row: row}, config.SpriteSize, config.SpriteSize)
		p.Sprite = c.Sprites.Primary
		p.SetCollision(config.ProjectileCollideW, config.ProjectileCollideH, geom.Point{X: config.ProjectileCollideOffsetX})
		p.SyncCollision()
	})
	if !ok {
		if friendly {
			c.spawnSkipped("friendly")
		} else {
			c.spawnSkipped("hostile")
		}
	}
	return ok
}

func (c *Context) spawnSkipped(pool string) {
	c.Events.Dispatch(event.Event{Type: event.SpawnSkipped, Data: event.SpawnSkippedData{Pool: pool}})
}
