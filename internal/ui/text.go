// internal/ui/text.go
package ui

import (
	"fmt"
	"image/color"

	"jet-fighter/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// Label draws a line of text in the built-in bitmap font.
type Label struct {
	face  text.Face
	color color.Color
	op    text.DrawOptions
}

func NewLabel(c color.Color) *Label {
	return &Label{face: text.NewGoXFace(basicfont.Face7x13), color: c}
}

// Width is the advance of s in pixels.
func (l *Label) Width(s string) float64 {
	return text.Advance(s, l.face)
}

func (l *Label) Draw(screen *ebiten.Image, s string, x, y float64) {
	l.op.GeoM.Reset()
	l.op.GeoM.Translate(x, y)
	l.op.ColorScale.Reset()
	l.op.ColorScale.ScaleWithColor(l.color)
	text.Draw(screen, s, l.face, &l.op)
}

// DrawCentered draws s centred horizontally on the screen.
func (l *Label) DrawCentered(screen *ebiten.Image, s string, y float64) {
	l.Draw(screen, s, centeredX(l.Width(s)), y)
}

func centeredX(width float64) float64 {
	return (config.ScreenWidth - width) / 2
}

// ScoreText formats the score line of the HUD.
func ScoreText(score, highScore int) string {
	return fmt.Sprintf("SCORE %06d   HI %06d", score, highScore)
}
