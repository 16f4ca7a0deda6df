package interfaces

import (
	"image"
	"image/color"
)

// Texture is an opaque handle to a loaded image.
type Texture interface {
	Name() string
	Size() (width, height int)
}

// AssetStore resolves textures by name. A miss is reported through ok, never
// as an error.
type AssetStore interface {
	FindTexture(name string) (tex Texture, ok bool)
}

// Renderer draws sprites for one frame. src is a region of tex's sheet; the
// destination is the sprite's top-left corner in screen space.
type Renderer interface {
	Clear(c color.Color)
	DrawSprite(tex Texture, src image.Rectangle, x, y int)
	FillRect(r image.Rectangle, c color.Color)
	Present()
}
