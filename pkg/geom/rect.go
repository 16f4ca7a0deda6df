// pkg/geom/rect.go
package geom

import "image"

// Point is an integer offset in screen space.
type Point struct {
	X, Y int
}

// Rect is an axis-aligned box in integer screen space.
type Rect struct {
	X, Y, W, H int
}

func (r Rect) Left() int   { return r.X }
func (r Rect) Right() int  { return r.X + r.W }
func (r Rect) Top() int    { return r.Y }
func (r Rect) Bottom() int { return r.Y + r.H }

// Image converts r to an image.Rectangle, used as a sprite-sheet source rect.
func (r Rect) Image() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.W, r.Y+r.H)
}

// Overlaps reports whether b intersects a.
//
// The test is deliberately asymmetric: b touching a's left edge
// (b.Right() == a.Left()) counts as a hit, b touching a's right edge
// (b.Left() == a.Right()) does not. The same holds vertically.
func Overlaps(a, b Rect) bool {
	if b.Right() < a.Left() {
		return false
	}
	if b.Left() >= a.Right() {
		return false
	}
	if b.Bottom() < a.Top() {
		return false
	}
	if b.Top() >= a.Bottom() {
		return false
	}
	return true
}

// BoxAt places a w×h box for an entity centred at pos. The box origin is
// the sprite's top-left corner (pos truncated, minus half the sprite size)
// shifted by offset.
func BoxAt(pos Vector2, halfSprite int, offset Point, w, h int) Rect {
	return Rect{
		X: int(pos.X) - halfSprite + offset.X,
		Y: int(pos.Y) - halfSprite + offset.Y,
		W: w,
		H: h,
	}
}
