// internal/assets/placeholder.go
package assets

import (
	"image/color"

	"jet-fighter/internal/config"
	"jet-fighter/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	sheetCols = 8
	sheetRows = 9
	cloudTile = 64
)

// Placeholder draws a stand-in for a known texture so the game runs without
// art on disk.
func Placeholder(name string) (*ebiten.Image, bool) {
	switch name {
	case config.PrimaryTexture:
		return primarySheet(render.DefaultSheetColors), true
	case config.BackgroundTexture:
		return cloudTiles(render.DefaultSheetColors), true
	}
	return nil, false
}

// primarySheet lays out the rows the game reads: 0 explosion, 1 player,
// 3-5 enemies, 7 friendly shot, 8 hostile shot.
func primarySheet(c render.SheetColors) *ebiten.Image {
	const s = config.SpriteSize
	img := ebiten.NewImage(sheetCols*s, sheetRows*s)

	for f := 0; f < 6; f++ {
		cx, cy := float32(f*s+s/2), float32(s/2)
		r := float32(14 - 2*f)
		vector.DrawFilledCircle(img, cx, cy, r, render.DarkenColor(c.Explosion), true)
		vector.DrawFilledCircle(img, cx, cy, r*0.6, c.Explosion, true)
		vector.DrawFilledCircle(img, cx, cy, r*0.3, c.ExplosionCore, true)
	}

	ship(img, 0, 1*s, c.Player, c.Cockpit, false)
	for i, body := range c.Enemies {
		ship(img, 0, (3+i)*s, body, render.DarkenColor(body), true)
	}

	vector.DrawFilledRect(img, 10, 7*s+2, 5, 28, c.FriendlyShot, false)
	vector.DrawFilledRect(img, 13, 8*s+10, 6, 12, c.HostileShot, false)
	return img
}

// ship draws a blocky plane in the cell at (x, y), nose up or down.
func ship(img *ebiten.Image, x, y int, body, cockpit color.RGBA, flipped bool) {
	fx, fy := float32(x), float32(y)
	rect := func(rx, ry, w, h float32, clr color.RGBA) {
		if flipped {
			ry = config.SpriteSize - ry - h
		}
		vector.DrawFilledRect(img, fx+rx, fy+ry, w, h, clr, false)
	}
	rect(14, 3, 4, 26, body)   // fuselage
	rect(4, 14, 24, 6, body)   // wings
	rect(10, 25, 12, 4, body)  // tail
	rect(15, 8, 2, 5, cockpit) // canopy
}

// cloudTiles is a mostly clear tile with a few pale puffs so the scroll is
// visible over the sky colour.
func cloudTiles(c render.SheetColors) *ebiten.Image {
	img := ebiten.NewImage(cloudTile, cloudTile)
	vector.DrawFilledCircle(img, 12, 14, 6, c.Cloud, true)
	vector.DrawFilledCircle(img, 18, 12, 5, c.Cloud, true)
	vector.DrawFilledCircle(img, 46, 44, 7, c.Cloud, true)
	vector.DrawFilledCircle(img, 52, 47, 4, c.Cloud, true)
	return img
}
