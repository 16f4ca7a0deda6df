// internal/state/menu_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// MenuState is the title screen. The backdrop keeps scrolling behind the
// start prompt.
type MenuState struct {
	sm      *StateMachine
	session *Session
}

func NewMenuState(sm *StateMachine, session *Session) *MenuState {
	return &MenuState{sm: sm, session: session}
}

func (m *MenuState) Enter() {
	m.session.Log.Debug("title screen", zap.Int("high_score", m.session.World.Round.HighScore))
}

func (m *MenuState) Update() error {
	in := m.session.Input.Poll()
	if in.Quit {
		return ebiten.Termination
	}
	if in.Start {
		m.session.World.StartPlay()
		m.sm.SetState(NewGameState(m.sm, m.session))
		return nil
	}
	m.session.Runner.Frame()
	return nil
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	m.session.drawWorld(screen)
}

func (m *MenuState) Exit() {}
