// internal/component/player.go
package component

import "time"

// Player is the singleton ship controlled by input.
type Player struct {
	Body
	HP    int
	HPMax int

	MoveSpeed    float64
	MoveFriction float64
	MoveDeadZone float64
	MoveMax      float64

	NextShot time.Duration // logical time at which the next shot is allowed
}
