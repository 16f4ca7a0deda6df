// pkg/geom/vector.go
package geom

import "math"

// Vector2 is a 2D vector of float64 components. It is a plain value type.
type Vector2 struct {
	X, Y float64
}

// Vec returns the vector (x, y).
func Vec(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

func (v Vector2) Add(o Vector2) Vector2 { return Vector2{v.X + o.X, v.Y + o.Y} }
func (v Vector2) Sub(o Vector2) Vector2 { return Vector2{v.X - o.X, v.Y - o.Y} }

func (v Vector2) Scale(s float64) Vector2 { return Vector2{v.X * s, v.Y * s} }

// Div divides component-wise. A zero in any operand yields the zero vector.
func (v Vector2) Div(o Vector2) Vector2 {
	if v.X == 0 || v.Y == 0 || o.X == 0 || o.Y == 0 {
		return Vector2{}
	}
	return Vector2{v.X / o.X, v.Y / o.Y}
}

// DivScalar divides both components by s. A zero operand yields the zero vector.
func (v Vector2) DivScalar(s float64) Vector2 {
	if v.X == 0 || v.Y == 0 || s == 0 {
		return Vector2{}
	}
	return Vector2{v.X / s, v.Y / s}
}

func (v Vector2) Length() float64 { return math.Sqrt(v.X*v.X + v.Y*v.Y) }

// Normalize returns the unit vector in the direction of v, or v itself when
// it has zero length.
func (v Vector2) Normalize() Vector2 {
	l := v.Length()
	if l > 0 {
		return v.Scale(1 / l)
	}
	return v
}

// Truncate clamps the length of v to max, keeping its direction.
func (v Vector2) Truncate(max float64) Vector2 {
	if v.Length() > max {
		return v.Normalize().Scale(max)
	}
	return v
}

func (v Vector2) IsZero() bool { return v.X == 0 && v.Y == 0 }

// Lerp interpolates linearly between a and b.
func Lerp(a, b Vector2, t float64) Vector2 {
	return a.Add(b.Sub(a).Scale(t))
}

// NLerp is Lerp followed by Normalize.
func NLerp(a, b Vector2, t float64) Vector2 {
	return Lerp(a, b, t).Normalize()
}
