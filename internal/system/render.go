// internal/system/render.go
package system

import (
	"image"
	"math"

	"jet-fighter/internal/component"
	"jet-fighter/internal/config"
	"jet-fighter/internal/entity"
	"jet-fighter/internal/interfaces"
	"jet-fighter/pkg/geom"
)

// RenderSystem draws the world back to front: sky, backdrop, particles,
// friendly shots, hostile shots, enemies, then the player. It only reads the
// store and must run between ticks.
type RenderSystem struct {
	store      *entity.Store
	background *Background
	sprites    *Sprites
}

func NewRenderSystem(store *entity.Store, background *Background, sprites *Sprites) *RenderSystem {
	return &RenderSystem{store: store, background: background, sprites: sprites}
}

func (s *RenderSystem) Draw(r interfaces.Renderer) {
	r.Clear(config.SkyColor)
	s.drawBackground(r)

	for _, p := range s.store.Particles.All() {
		drawSprite(r, p.Sprite, &p.Animation, p.Position)
	}
	for _, p := range s.store.Friendly.All() {
		drawSprite(r, p.Sprite, &p.Animation, p.Position)
	}
	for _, p := range s.store.Hostile.All() {
		drawSprite(r, p.Sprite, &p.Animation, p.Position)
	}
	for _, e := range s.store.Enemies.All() {
		drawSprite(r, e.Sprite, &e.Animation, e.Position)
	}
	if player := &s.store.Player; player.Alive {
		drawSprite(r, player.Sprite, &player.Animation, player.Position)
	}
}

// drawBackground tiles the backdrop over the screen, one extra row above to
// cover the scroll.
func (s *RenderSystem) drawBackground(r interfaces.Renderer) {
	tex := s.sprites.Background
	if tex == nil {
		return
	}
	w, h := tex.Size()
	if w <= 0 || h <= 0 {
		return
	}
	src := image.Rect(0, 0, w, h)
	cols := config.ScreenWidth/w + 1
	rows := config.ScreenHeight/h + 2
	for i := 0; i < cols; i++ {
		for j := 0; j < rows; j++ {
			r.DrawSprite(tex, src, i*w, s.background.Offset-h+j*h)
		}
	}
}

// drawSprite draws one sheet cell centred on pos. Missing textures draw
// nothing.
func drawSprite(r interfaces.Renderer, tex interfaces.Texture, anim *component.Animation, pos geom.Vector2) {
	if tex == nil {
		return
	}
	x := int(math.Round(pos.X - config.HalfSpriteSize))
	y := int(math.Round(pos.Y - config.HalfSpriteSize))
	r.DrawSprite(tex, anim.SourceRect().Image(), x, y)
}
