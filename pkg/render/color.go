// pkg/render/color.go
package render

import (
	"image/color"

	"golang.org/x/image/colornames"
)

// SheetColors are the fills used for generated placeholder sprites, one per
// sheet row that has content.
type SheetColors struct {
	Explosion     color.RGBA
	ExplosionCore color.RGBA
	Player        color.RGBA
	Cockpit       color.RGBA
	Enemies       []color.RGBA // sheet rows 3, 4, 5, ...
	FriendlyShot  color.RGBA
	HostileShot   color.RGBA
	Cloud         color.RGBA
}

// DefaultSheetColors is the palette for the placeholder sheet.
var DefaultSheetColors = SheetColors{
	Explosion:     colornames.Orange,
	ExplosionCore: colornames.Yellow,
	Player:        colornames.Lightsteelblue,
	Cockpit:       colornames.Navy,
	Enemies:       []color.RGBA{colornames.Crimson, colornames.Darkorange, colornames.Mediumpurple},
	FriendlyShot:  colornames.Gold,
	HostileShot:   colornames.Red,
	Cloud:         WithAlpha(colornames.White, 96),
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// WithAlpha returns c with its alpha replaced, premultiplying the channels.
func WithAlpha(c color.RGBA, a uint8) color.RGBA {
	scale := float64(a) / 255
	return color.RGBA{
		R: uint8(float64(c.R) * scale),
		G: uint8(float64(c.G) * scale),
		B: uint8(float64(c.B) * scale),
		A: a,
	}
}
