// internal/component/animation.go
package component

import (
	"math"

	"jet-fighter/internal/defs"
	"jet-fighter/pkg/geom"
)

// Animation advances a fractional frame index across one row of a sprite
// sheet. Frames is at least 1 for any animation in use; a zero Frames
// animation never advances.
type Animation struct {
	Index     float64
	Speed     float64
	Frames    int
	Loops     bool
	RowOffset int // pixel offset of the row inside the sheet
	CellW     int
	CellH     int
}

// NewAnimation builds an animation from a definition on a sheet of
// cellW×cellH cells.
func NewAnimation(def defs.AnimationDef, cellW, cellH int) Animation {
	return Animation{
		Speed:     def.Speed,
		Frames:    def.Frames,
		Loops:     def.Loops,
		RowOffset: def.Row * cellH,
		CellW:     cellW,
		CellH:     cellH,
	}
}

// Advance moves the index by Speed.
//
// Looping animations wrap into [0, Frames). One-shot animations clamp to the
// first or last frame and drop Speed to zero when they run off either end;
// callers read Speed == 0 as "finished".
func (a *Animation) Advance() {
	if a.Frames == 0 {
		return
	}
	count := float64(a.Frames)

	a.Index += a.Speed
	if math.Abs(a.Speed) > count {
		a.Speed = (count - 1) * sign(a.Speed)
	}

	if a.Loops {
		a.Index = math.Mod(a.Index, count)
		if a.Index < 0 {
			a.Index += count
		}
		return
	}
	if a.Index < 0 {
		a.Index = 0
		a.Speed = 0
	}
	if a.Index >= count {
		a.Index = count - 1
		a.Speed = 0
	}
}

// Stopped reports whether the animation has no speed left.
func (a *Animation) Stopped() bool {
	return a.Speed == 0
}

// Frame is the whole frame currently shown.
func (a *Animation) Frame() int {
	return int(math.Floor(a.Index))
}

// SourceRect is the sheet region for the current frame.
func (a *Animation) SourceRect() geom.Rect {
	return geom.Rect{
		X: a.CellW * a.Frame(),
		Y: a.RowOffset,
		W: a.CellW,
		H: a.CellH,
	}
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
