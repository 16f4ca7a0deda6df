// internal/ui/health_bar.go
package ui

import (
	"image"
	"image/color"

	"jet-fighter/internal/config"
	"jet-fighter/internal/interfaces"
)

// HealthBar shows the player's health as a bar that shrinks from the right.
type HealthBar struct {
	X, Y          int
	Width, Height int
	Color         color.Color
}

func NewHealthBar() *HealthBar {
	return &HealthBar{
		X:      config.HealthBarX,
		Y:      config.HealthBarY,
		Width:  config.HealthBarWidth,
		Height: config.HealthBarHeight,
		Color:  config.HealthBarColor,
	}
}

// Rect is the filled part of the bar for the given health.
func (b *HealthBar) Rect(hp, hpMax int) image.Rectangle {
	if hpMax <= 0 || hp <= 0 {
		return image.Rectangle{}
	}
	hp = min(hp, hpMax)
	w := b.Width * hp / hpMax
	return image.Rect(b.X, b.Y, b.X+w, b.Y+b.Height)
}

func (b *HealthBar) Draw(r interfaces.Renderer, hp, hpMax int) {
	rect := b.Rect(hp, hpMax)
	if rect.Empty() {
		return
	}
	r.FillRect(rect, b.Color)
}
