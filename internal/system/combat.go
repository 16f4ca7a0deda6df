// internal/system/combat.go
package system

import (
	"jet-fighter/internal/component"
	"jet-fighter/internal/event"
	"jet-fighter/pkg/geom"
)

// DamagePlayer subtracts damage from the player's health. Death is noticed by
// the player system on its next update.
func DamagePlayer(ctx *Context, damage int) {
	player := &ctx.Store.Player
	player.HP -= damage
	ctx.Events.Dispatch(event.Event{
		Type: event.PlayerHit,
		Data: event.PlayerHitData{Damage: damage, HP: player.HP},
	})
}

// rammedPlayer reports whether the enemy touches the live player.
func rammedPlayer(ctx *Context, e *component.Enemy) bool {
	player := &ctx.Store.Player
	return player.Alive && geom.Overlaps(e.Collision, player.Collision)
}

// takeFriendlyHits applies every friendly shot overlapping the enemy and
// removes the shot at once. The walk runs back to front so a kill only swaps
// in a shot that was already tested.
func takeFriendlyHits(ctx *Context, e *component.Enemy) {
	shots := ctx.Store.Friendly
	for i := shots.Len() - 1; i >= 0; i-- {
		p := shots.At(i)
		if !geom.Overlaps(e.Collision, p.Collision) {
			continue
		}
		e.HP -= p.Damage
		shots.Kill(i)
	}
}

// destroyEnemy marks the enemy dead and announces it once. Only a killed
// enemy is worth points.
func destroyEnemy(ctx *Context, e *component.Enemy, killed bool) {
	if !e.Alive {
		return
	}
	e.Alive = false
	ctx.Events.Dispatch(event.Event{
		Type: event.EnemyDestroyed,
		Data: event.EnemyDestroyedData{Kind: e.Kind, ScoreValue: e.ScoreValue, Killed: killed},
	})
}
