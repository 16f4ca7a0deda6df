// internal/state/game_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// GameState runs a round until the player quits, pauses or the round ends.
type GameState struct {
	sm      *StateMachine
	session *Session
}

func NewGameState(sm *StateMachine, session *Session) *GameState {
	return &GameState{sm: sm, session: session}
}

func (g *GameState) Enter() {}

func (g *GameState) Update() error {
	in := g.session.Input.Poll()
	if in.Quit {
		return ebiten.Termination
	}
	if in.Pause {
		g.sm.SetState(NewPauseState(g.sm, g.session, g))
		return nil
	}

	g.session.Runner.Frame()

	if !g.session.World.Playing() {
		g.sm.SetState(NewMenuState(g.sm, g.session))
	}
	return nil
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.session.drawWorld(screen)
}

func (g *GameState) Exit() {}
