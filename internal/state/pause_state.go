// internal/state/pause_state.go
package state

import (
	"image/color"

	"jet-fighter/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var _ State = (*PauseState)(nil)

var pauseShade = color.RGBA{0, 0, 0, 128}

// PauseState freezes the simulation over the previous state's picture.
type PauseState struct {
	sm            *StateMachine
	session       *Session
	previousState State
}

func NewPauseState(sm *StateMachine, session *Session, prevState State) *PauseState {
	return &PauseState{sm: sm, session: session, previousState: prevState}
}

func (s *PauseState) Enter() {
	s.session.Log.Debug("paused")
}

// Update waits for the pause key. The clock is re-anchored on the way out
// so the paused time is not replayed.
func (s *PauseState) Update() error {
	in := s.session.Input.Poll()
	if in.Quit {
		return ebiten.Termination
	}
	if in.Pause || in.Start {
		s.session.Runner.Resume()
		s.sm.SetState(s.previousState)
	}
	return nil
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	if s.previousState != nil {
		s.previousState.Draw(screen)
	}
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, pauseShade, false)
	s.session.HUD.DrawPaused(screen)
}

func (s *PauseState) Exit() {}
