// internal/component/enemy.go
package component

import (
	"time"

	"jet-fighter/internal/defs"
)

// Enemy is a pooled hostile ship. Kind selects both its update behavior and
// the concrete type of Payload.
type Enemy struct {
	Body
	Kind          string
	HP            int
	HPMax         int
	ScoreValue    int
	ContactDamage int
	Payload       EnemyPayload
}

// EnemyPayload is the per-kind state of an enemy. Implementations are the
// pointer types in this file.
type EnemyPayload interface {
	enemyPayload()
}

// ShooterPayload is carried by kinds that fire on a cooldown.
type ShooterPayload struct {
	NextShot time.Duration
	Shot     defs.ShotDef
}

// StrafePayload is carried by kinds that sway sideways and shoot.
type StrafePayload struct {
	ShooterPayload
	Amplitude float64
	Period    int
	Tick      int
}

func (*ShooterPayload) enemyPayload() {}
func (*StrafePayload) enemyPayload()  {}

// Shooter returns the cooldown state of a shooting enemy.
func (e *Enemy) Shooter() (*ShooterPayload, bool) {
	switch p := e.Payload.(type) {
	case *ShooterPayload:
		return p, true
	case *StrafePayload:
		return &p.ShooterPayload, true
	}
	return nil, false
}

// Strafe returns the sway state of a strafing enemy.
func (e *Enemy) Strafe() (*StrafePayload, bool) {
	p, ok := e.Payload.(*StrafePayload)
	return p, ok
}
