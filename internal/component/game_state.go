package component

import "time"

// Phase is the coarse state of the round.
type Phase int

const (
	PhaseTitle Phase = iota // waiting for start, only the background moves
	PhasePlaying
)

func (p Phase) String() string {
	switch p {
	case PhaseTitle:
		return "title"
	case PhasePlaying:
		return "playing"
	}
	return "unknown"
}

// Round holds score and the deferred reset deadline.
type Round struct {
	Phase        Phase
	Score        int
	HighScore    int
	ResetPending bool
	ResetAt      time.Duration
}
