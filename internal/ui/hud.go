// internal/ui/hud.go
package ui

import (
	"jet-fighter/internal/component"
	"jet-fighter/internal/config"
	"jet-fighter/internal/interfaces"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	StartPrompt = "Press Enter to Start"
	PausedText  = "Paused"
)

// HUD draws the overlay on top of the world: health, score and the
// title prompt.
type HUD struct {
	health *HealthBar
	label  *Label
}

func NewHUD() *HUD {
	return &HUD{
		health: NewHealthBar(),
		label:  NewLabel(config.TextColor),
	}
}

// Draw renders the HUD for the current round. The health bar goes through r
// so it shares the world's renderer; text is drawn straight onto screen.
func (h *HUD) Draw(screen *ebiten.Image, r interfaces.Renderer, player *component.Player, round *component.Round) {
	if round.Phase == component.PhasePlaying && player.Alive {
		h.health.Draw(r, player.HP, player.HPMax)
	}

	scoreY := float64(config.HealthBarY + config.HealthBarHeight + 8)
	h.label.Draw(screen, ScoreText(round.Score, round.HighScore), config.HealthBarX, scoreY)

	if round.Phase == component.PhaseTitle {
		h.label.DrawCentered(screen, StartPrompt, config.ScreenHeight/2+config.TitleTextOffsetY)
	}
}

// DrawPaused overlays the pause caption.
func (h *HUD) DrawPaused(screen *ebiten.Image) {
	h.label.DrawCentered(screen, PausedText, config.ScreenHeight/2)
}
