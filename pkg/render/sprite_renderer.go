package render

import (
	"image"
	"image/color"

	"jet-fighter/internal/interfaces"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ImageTexture is a texture backed by an ebiten image.
type ImageTexture interface {
	interfaces.Texture
	Image() *ebiten.Image
}

// SpriteRenderer draws sheet cells onto an ebiten screen. Begin must be
// called with the frame's target before drawing; Present ends the frame.
type SpriteRenderer struct {
	target *ebiten.Image
	op     ebiten.DrawImageOptions
}

func NewSpriteRenderer() *SpriteRenderer {
	return &SpriteRenderer{}
}

// Begin starts a frame on target.
func (r *SpriteRenderer) Begin(target *ebiten.Image) {
	r.target = target
}

func (r *SpriteRenderer) Clear(c color.Color) {
	if r.target == nil {
		return
	}
	r.target.Fill(c)
}

// DrawSprite copies src out of tex with its top-left corner at (x, y).
// Textures not backed by an ebiten image are skipped.
func (r *SpriteRenderer) DrawSprite(tex interfaces.Texture, src image.Rectangle, x, y int) {
	if r.target == nil {
		return
	}
	it, ok := tex.(ImageTexture)
	if !ok || it.Image() == nil {
		return
	}
	sub, ok := it.Image().SubImage(src).(*ebiten.Image)
	if !ok {
		return
	}
	r.op.GeoM.Reset()
	r.op.GeoM.Translate(float64(x), float64(y))
	r.target.DrawImage(sub, &r.op)
}

func (r *SpriteRenderer) FillRect(rect image.Rectangle, c color.Color) {
	if r.target == nil || rect.Empty() {
		return
	}
	vector.DrawFilledRect(r.target, float32(rect.Min.X), float32(rect.Min.Y), float32(rect.Dx()), float32(rect.Dy()), c, false)
}

// Present ends the frame. ebiten flips the screen itself once Draw returns.
func (r *SpriteRenderer) Present() {
	r.target = nil
}
