// internal/config/config.go
package config

import (
	"image/color"
	"time"
)

const (
	ScreenWidth  = 640
	ScreenHeight = 480
	FPS          = 60

	SpriteSize     = 32
	HalfSpriteSize = SpriteSize / 2

	PoolSizeEnemy              = 20
	PoolSizeParticle           = 20
	PoolSizeFriendlyProjectile = 10
	PoolSizeHostileProjectile  = 40

	// EnemySpawnChance is the base of the per-tick spawn trial: an enemy
	// appears when rand % (chance + chance/10) == 0.
	EnemySpawnChance = 60

	BackgroundScrollSpeed = 4

	PlayerHealth       = 100
	PlayerMoveSpeed    = 0.5
	PlayerMoveFriction = 0.9
	PlayerMoveDeadZone = 0.1
	PlayerMoveMax      = 4.0
	PlayerShotDamage   = 10
	PlayerShotSpeed    = 10.0
	PlayerShotRow      = 7
	PlayerSheetRow     = 1
	PlayerCollideSize  = 24
	PlayerCollideInset = 4

	EnemyContactDamage = 25
	EnemySpawnY        = -64
	EnemyExitMargin    = 64 // enemies die this far below the screen

	// Fallbacks for shooting and strafing kinds whose definitions omit them.
	EnemyShotSpeed       = 6.0
	EnemyShotDamage      = 10
	EnemyShotRow         = 8
	EnemyStrafeAmplitude = 2.0
	EnemyStrafePeriod    = 120

	ProjectileCollideW       = 5
	ProjectileCollideH       = 32
	ProjectileCollideOffsetX = 10

	// Projectiles die once they are more than one sprite cell outside the screen.
	ProjectileMargin = SpriteSize

	PlayerShotCooldown = 250 * time.Millisecond
	EnemyShotCooldown  = 500 * time.Millisecond
	ResetDelay         = 2000 * time.Millisecond

	HealthBarX      = 32
	HealthBarY      = 32
	HealthBarWidth  = 150
	HealthBarHeight = 4

	TitleTextOffsetY = 64

	PrimaryTexture    = "Primary"
	BackgroundTexture = "Background"
)

var (
	SkyColor       = color.RGBA{0, 128, 255, 255}
	HealthBarColor = color.RGBA{255, 0, 0, 255}
	TextColor      = color.RGBA{255, 255, 255, 255}
)
