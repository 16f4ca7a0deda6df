// internal/interfaces/game_context.go
package interfaces

// Intents is the per-tick digest of raw input the simulation consumes.
type Intents struct {
	Up, Down, Left, Right bool
	Shoot                 bool
	Start                 bool
	Pause                 bool
	Quit                  bool
}

// InputSource is polled once per frame.
type InputSource interface {
	Poll() Intents
}
