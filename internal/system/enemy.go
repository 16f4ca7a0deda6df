// internal/system/enemy.go
package system

import (
	"math"
	"time"

	"jet-fighter/internal/component"
	"jet-fighter/internal/config"
	"jet-fighter/internal/defs"
	"jet-fighter/pkg/geom"

	"go.uber.org/zap"
)

// Behavior advances one enemy by a tick and reports whether it is still alive.
type Behavior interface {
	Update(ctx *Context, e *component.Enemy, dt time.Duration) bool
}

// BehaviorFunc adapts a function to Behavior.
type BehaviorFunc func(ctx *Context, e *component.Enemy, dt time.Duration) bool

func (f BehaviorFunc) Update(ctx *Context, e *component.Enemy, dt time.Duration) bool {
	return f(ctx, e, dt)
}

// EnemyKind is everything needed to run one kind of enemy: Setup fills in the
// kind's payload at spawn time and may be nil, Behavior runs every tick.
type EnemyKind struct {
	Setup    func(ctx *Context, e *component.Enemy, def defs.EnemyDefinition)
	Behavior Behavior
}

// Registry maps an enemy's Kind tag to its EnemyKind.
type Registry struct {
	kinds map[string]EnemyKind
}

func NewRegistry() *Registry {
	return &Registry{kinds: make(map[string]EnemyKind)}
}

// Register adds or replaces a kind.
func (r *Registry) Register(kind string, k EnemyKind) {
	r.kinds[kind] = k
}

func (r *Registry) Lookup(kind string) (EnemyKind, bool) {
	k, ok := r.kinds[kind]
	return k, ok
}

// DefaultRegistry knows the simple, straight shooting and strafing kinds.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(defs.EnemySimple, EnemyKind{Behavior: BehaviorFunc(updateSimple)})
	r.Register(defs.EnemyStraightShoot, EnemyKind{Setup: setupShooter, Behavior: BehaviorFunc(updateStraightShoot)})
	r.Register(defs.EnemyStrafeShoot, EnemyKind{Setup: setupStrafe, Behavior: BehaviorFunc(updateStrafeShoot)})
	return r
}

// EnemySystem spawns enemies and runs each one's behavior every tick.
type EnemySystem struct {
	registry *Registry
}

func NewEnemySystem(registry *Registry) *EnemySystem {
	return &EnemySystem{registry: registry}
}

// Spawn places an enemy of the given kind at a random column above the screen.
func (s *EnemySystem) Spawn(ctx *Context, kind string) bool {
	x := float64(config.SpriteSize + ctx.Rand.Intn(config.ScreenWidth) - 2*config.SpriteSize)
	return s.SpawnAt(ctx, kind, geom.Vec(x, config.EnemySpawnY))
}

// SpawnAt places an enemy of the given kind at pos. It returns false when
// the kind is unknown or the pool is full.
func (s *EnemySystem) SpawnAt(ctx *Context, kind string, pos geom.Vector2) bool {
	k, ok := s.registry.Lookup(kind)
	if !ok {
		ctx.Log.Debug("no behavior for enemy kind", zap.String("kind", kind))
		return false
	}
	def, ok := ctx.Library.Enemies[kind]
	if !ok {
		ctx.Log.Debug("no definition for enemy kind", zap.String("kind", kind))
		return false
	}

	speed := def.SpeedBase
	if spread := int(def.SpeedSpread * 100); spread > 0 {
		speed += float64(ctx.Rand.Intn(spread)) * 0.01
	}
	contact := def.ContactDamage
	if contact == 0 {
		contact = config.EnemyContactDamage
	}

	_, ok = ctx.Store.Enemies.Spawn(func(e *component.Enemy) {
		e.Kind = kind
		e.HP = def.Health
		e.HPMax = def.Health
		e.ScoreValue = def.ScoreValue
		e.ContactDamage = contact
		e.Position = pos
		e.Velocity = geom.Vec(0, speed)
		e.Animation = component.NewAnimation(def.Animation, config.SpriteSize, config.SpriteSize)
		e.Sprite = ctx.Sprites.Primary
		e.SetCollision(def.Collision.Width, def.Collision.Height, geom.Point{X: def.Collision.OffsetX, Y: def.Collision.OffsetY})
		e.SyncCollision()
		if k.Setup != nil {
			k.Setup(ctx, e, def)
		}
	})
	if !ok {
		ctx.spawnSkipped("enemies")
	}
	return ok
}

// Update runs every live enemy once, removing those that die.
func (s *EnemySystem) Update(ctx *Context, dt time.Duration) {
	ctx.Store.Enemies.Sweep(func(e *component.Enemy) bool {
		k, ok := s.registry.Lookup(e.Kind)
		if !ok {
			return false
		}
		e.Animation.Advance()
		return k.Behavior.Update(ctx, e, dt)
	})
}

// updateSimple flies straight down. Ramming the player costs the enemy its
// life without scoring; running out of health scores.
func updateSimple(ctx *Context, e *component.Enemy, _ time.Duration) bool {
	e.Move()
	e.SyncCollision()

	if rammedPlayer(ctx, e) {
		DamagePlayer(ctx, e.ContactDamage)
		ctx.SpawnParticle(defs.ParticleExplosion, e.Position)
		destroyEnemy(ctx, e, false)
		return false
	}

	takeFriendlyHits(ctx, e)

	switch {
	case e.HP <= 0:
		ctx.SpawnParticle(defs.ParticleExplosion, e.Position)
		destroyEnemy(ctx, e, true)
	case e.Position.Y > config.ScreenHeight+config.EnemyExitMargin:
		destroyEnemy(ctx, e, false)
	}
	return e.Alive
}

func updateStraightShoot(ctx *Context, e *component.Enemy, dt time.Duration) bool {
	if !updateSimple(ctx, e, dt) {
		return false
	}
	fire(ctx, e)
	return true
}

// updateStrafeShoot sways sideways on a sine of its own tick counter.
func updateStrafeShoot(ctx *Context, e *component.Enemy, dt time.Duration) bool {
	if sp, ok := e.Strafe(); ok && sp.Period > 0 {
		phase := 2 * math.Pi * float64(sp.Tick) / float64(sp.Period)
		e.Velocity.X = sp.Amplitude * math.Sin(phase)
		sp.Tick = (sp.Tick + 1) % sp.Period
	}
	return updateStraightShoot(ctx, e, dt)
}

// fire shoots straight down once the enemy's cooldown has run out.
func fire(ctx *Context, e *component.Enemy) {
	sp, ok := e.Shooter()
	if !ok || ctx.Now < sp.NextShot {
		return
	}
	sp.NextShot = ctx.Now + sp.Shot.Cooldown
	ctx.SpawnProjectile(false, e.Position, geom.Vec(0, sp.Shot.Speed), sp.Shot.Damage, sp.Shot.Row)
}

func shotFor(def defs.EnemyDefinition) defs.ShotDef {
	shot := defs.ShotDef{
		Cooldown: config.EnemyShotCooldown,
		Speed:    config.EnemyShotSpeed,
		Damage:   config.EnemyShotDamage,
		Row:      config.EnemyShotRow,
	}
	if def.Shot == nil {
		return shot
	}
	if def.Shot.Cooldown > 0 {
		shot.Cooldown = def.Shot.Cooldown
	}
	if def.Shot.Speed != 0 {
		shot.Speed = def.Shot.Speed
	}
	if def.Shot.Damage != 0 {
		shot.Damage = def.Shot.Damage
	}
	if def.Shot.Row != 0 {
		shot.Row = def.Shot.Row
	}
	return shot
}

// The first shot waits a full cooldown so enemies do not fire from above the
// screen the moment they appear.
func setupShooter(ctx *Context, e *component.Enemy, def defs.EnemyDefinition) {
	shot := shotFor(def)
	e.Payload = &component.ShooterPayload{NextShot: ctx.Now + shot.Cooldown, Shot: shot}
}

func setupStrafe(ctx *Context, e *component.Enemy, def defs.EnemyDefinition) {
	shot := shotFor(def)
	p := &component.StrafePayload{
		ShooterPayload: component.ShooterPayload{NextShot: ctx.Now + shot.Cooldown, Shot: shot},
		Amplitude:      config.EnemyStrafeAmplitude,
		Period:         config.EnemyStrafePeriod,
	}
	if def.Strafe != nil {
		if def.Strafe.Amplitude != 0 {
			p.Amplitude = def.Strafe.Amplitude
		}
		if def.Strafe.Period > 0 {
			p.Period = def.Strafe.Period
		}
	}
	e.Payload = p
}
