package gamemath

import (
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// Vec builds a vector from its components.
func Vec(x, y float64) dmath.Vec2 {
	return dmath.Vec2{X: x, Y: y}
}

func Add(a, b dmath.Vec2) dmath.Vec2 {
	return dmath.Vec2{X: a.X + b.X, Y: a.Y + b.Y}
}

func Sub(a, b dmath.Vec2) dmath.Vec2 {
	return dmath.Vec2{X: a.X - b.X, Y: a.Y - b.Y}
}

func Scale(v dmath.Vec2, s float64) dmath.Vec2 {
	return dmath.Vec2{X: v.X * s, Y: v.Y * s}
}

func Dot(a, b dmath.Vec2) float64 {
	return a.X*b.X + a.Y*b.Y
}

func Length(v dmath.Vec2) float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns v scaled to unit length. The zero vector stays zero.
func Normalize(v dmath.Vec2) dmath.Vec2 {
	l := Length(v)
	if l == 0 {
		return dmath.Vec2{}
	}
	return dmath.Vec2{X: v.X / l, Y: v.Y / l}
}

func Distance(a, b dmath.Vec2) float64 {
	return Length(Sub(a, b))
}

func Midpoint(a, b dmath.Vec2) dmath.Vec2 {
	return dmath.Vec2{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}

// Direction returns the unnormalized vector pointing from 'from' to 'to'.
func Direction(from, to dmath.Vec2) dmath.Vec2 {
	return Sub(to, from)
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
