// component/movement.go
package component

import (
	"jet-fighter/internal/config"
	"jet-fighter/internal/interfaces"
	"jet-fighter/pkg/geom"
)

// Body is the state shared by every pooled, moving, colliding entity.
type Body struct {
	Alive           bool
	Position        geom.Vector2
	Velocity        geom.Vector2
	Collision       geom.Rect
	CollisionOffset geom.Point
	Animation       Animation
	Sprite          interfaces.Texture // nil when the texture failed to resolve
}

func (b *Body) IsAlive() bool       { return b.Alive }
func (b *Body) SetAlive(alive bool) { b.Alive = alive }

// Move adds Velocity to Position.
func (b *Body) Move() {
	b.Position = b.Position.Add(b.Velocity)
}

// SyncCollision re-centres the collision box on Position.
func (b *Body) SyncCollision() {
	b.Collision = geom.BoxAt(b.Position, config.HalfSpriteSize, b.CollisionOffset, b.Collision.W, b.Collision.H)
}

// SetCollision sizes the collision box and its offset from the sprite corner.
func (b *Body) SetCollision(w, h int, offset geom.Point) {
	b.Collision.W = w
	b.Collision.H = h
	b.CollisionOffset = offset
}
