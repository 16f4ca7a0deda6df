// internal/component/projectile.go
package component

// Projectile is a pooled shot. Friendly shots hurt enemies, hostile shots
// hurt the player.
type Projectile struct {
	Body
	Damage   int
	Friendly bool
}
