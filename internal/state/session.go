// internal/state/session.go
package state

import (
	"jet-fighter/internal/app"
	"jet-fighter/internal/interfaces"
	"jet-fighter/internal/ui"
	"jet-fighter/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// Session is what every state shares: the world, the runner feeding it and
// the drawing helpers.
type Session struct {
	World    *app.World
	Runner   *app.Runner
	Input    interfaces.InputSource
	Renderer *render.SpriteRenderer
	HUD      *ui.HUD
	Log      *zap.Logger
}

// drawWorld draws the world and the HUD over it.
func (s *Session) drawWorld(screen *ebiten.Image) {
	s.Renderer.Begin(screen)
	s.World.Draw(s.Renderer)
	s.HUD.Draw(screen, s.Renderer, &s.World.Store.Player, &s.World.Round)
	s.Renderer.Present()
}
