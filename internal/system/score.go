// internal/system/score.go
package system

import (
	"jet-fighter/internal/component"
	"jet-fighter/internal/event"
)

// ScoreSystem awards points for killed enemies and tracks the high score.
type ScoreSystem struct {
	round *component.Round
}

func NewScoreSystem(round *component.Round, eventDispatcher *event.Dispatcher) *ScoreSystem {
	s := &ScoreSystem{round: round}
	eventDispatcher.Subscribe(event.EnemyDestroyed, s)
	return s
}

// OnEvent handles the events the system is subscribed to.
func (s *ScoreSystem) OnEvent(e event.Event) {
	if e.Type != event.EnemyDestroyed {
		return
	}
	data, ok := e.Data.(event.EnemyDestroyedData)
	if !ok || !data.Killed {
		return
	}

	s.round.Score += data.ScoreValue
	if s.round.Score > s.round.HighScore {
		s.round.HighScore = s.round.Score
	}
}
