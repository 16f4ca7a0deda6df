// internal/system/background.go
package system

import "jet-fighter/internal/config"

// Background scrolls the tiled backdrop downwards. It runs every tick, on
// the title screen too.
type Background struct {
	Offset int
}

// Update advances the scroll, wrapping at the texture height. Without a
// texture there is nothing to wrap against and the offset stays put.
func (b *Background) Update(ctx *Context) {
	tex := ctx.Sprites.Background
	if tex == nil {
		return
	}
	_, h := tex.Size()
	if h <= 0 {
		return
	}
	b.Offset = (b.Offset + config.BackgroundScrollSpeed) % h
}

// Reset rewinds the scroll.
func (b *Background) Reset() {
	b.Offset = 0
}
