// internal/input/input.go
package input

import (
	"jet-fighter/internal/interfaces"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// stickThreshold is how far the left stick must lean to count as a press.
const stickThreshold = 0.5

// Source reads the keyboard and the first gamepad with a standard layout.
type Source struct {
	gamepads []ebiten.GamepadID
}

func NewSource() *Source {
	return &Source{}
}

// Poll implements interfaces.InputSource. Movement and Shoot are held
// states; Start, Pause and Quit fire on the frame their key goes down.
func (s *Source) Poll() interfaces.Intents {
	in := interfaces.Intents{
		Up:    anyPressed(ebiten.KeyArrowUp, ebiten.KeyW),
		Down:  anyPressed(ebiten.KeyArrowDown, ebiten.KeyS),
		Left:  anyPressed(ebiten.KeyArrowLeft, ebiten.KeyA),
		Right: anyPressed(ebiten.KeyArrowRight, ebiten.KeyD),
		Shoot: anyPressed(ebiten.KeySpace, ebiten.KeyZ),
		Start: inpututil.IsKeyJustPressed(ebiten.KeyEnter),
		Pause: inpututil.IsKeyJustPressed(ebiten.KeyP),
		Quit:  inpututil.IsKeyJustPressed(ebiten.KeyEscape),
	}
	if id, ok := s.gamepad(); ok {
		merge(&in, readGamepad(id))
	}
	return in
}

func (s *Source) gamepad() (ebiten.GamepadID, bool) {
	s.gamepads = ebiten.AppendGamepadIDs(s.gamepads[:0])
	for _, id := range s.gamepads {
		if ebiten.IsStandardGamepadLayoutAvailable(id) {
			return id, true
		}
	}
	return 0, false
}

func readGamepad(id ebiten.GamepadID) interfaces.Intents {
	x := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
	y := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
	pressed := func(b ebiten.StandardGamepadButton) bool {
		return ebiten.IsStandardGamepadButtonPressed(id, b)
	}
	justPressed := func(b ebiten.StandardGamepadButton) bool {
		return inpututil.IsStandardGamepadButtonJustPressed(id, b)
	}
	return interfaces.Intents{
		Up:    y < -stickThreshold || pressed(ebiten.StandardGamepadButtonLeftTop),
		Down:  y > stickThreshold || pressed(ebiten.StandardGamepadButtonLeftBottom),
		Left:  x < -stickThreshold || pressed(ebiten.StandardGamepadButtonLeftLeft),
		Right: x > stickThreshold || pressed(ebiten.StandardGamepadButtonLeftRight),
		Shoot: pressed(ebiten.StandardGamepadButtonRightBottom),
		Start: justPressed(ebiten.StandardGamepadButtonCenterRight),
		Pause: justPressed(ebiten.StandardGamepadButtonCenterLeft),
	}
}

func merge(dst *interfaces.Intents, src interfaces.Intents) {
	dst.Up = dst.Up || src.Up
	dst.Down = dst.Down || src.Down
	dst.Left = dst.Left || src.Left
	dst.Right = dst.Right || src.Right
	dst.Shoot = dst.Shoot || src.Shoot
	dst.Start = dst.Start || src.Start
	dst.Pause = dst.Pause || src.Pause
	dst.Quit = dst.Quit || src.Quit
}

func anyPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}
