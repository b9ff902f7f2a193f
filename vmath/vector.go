package vmath

import (
	"fmt"
	"math"
)

// Vec2F is an immutable float64 2D vector in screen space (y grows downward)
// Every operation returns a new value; equality is exact component equality
type Vec2F struct {
	X, Y float64
}

// Canonical vectors
var (
	Zero  = Vec2F{0, 0}
	Up    = Vec2F{0, -1}
	Down  = Vec2F{0, 1}
	Left  = Vec2F{-1, 0}
	Right = Vec2F{1, 0}
)

// V2 is shorthand for Vec2F{x, y}
func V2(x, y float64) Vec2F {
	return Vec2F{X: x, Y: y}
}

// FromPolar builds a vector from a radius and an angle in degrees, clockwise from +X
func FromPolar(r, deg float64) Vec2F {
	rad := ToRadians(deg)
	return Vec2F{r * math.Cos(rad), r * math.Sin(rad)}
}

func (v Vec2F) Add(o Vec2F) Vec2F {
	return Vec2F{v.X + o.X, v.Y + o.Y}
}

// AddX returns v + (amt, 0)
func (v Vec2F) AddX(amt float64) Vec2F {
	return Vec2F{v.X + amt, v.Y}
}

// AddY returns v + (0, amt)
func (v Vec2F) AddY(amt float64) Vec2F {
	return Vec2F{v.X, v.Y + amt}
}

func (v Vec2F) WithX(x float64) Vec2F {
	return Vec2F{x, v.Y}
}

func (v Vec2F) WithY(y float64) Vec2F {
	return Vec2F{v.X, y}
}

func (v Vec2F) Scale(s float64) Vec2F {
	return Vec2F{v.X * s, v.Y * s}
}

// MulComponents scales each component by the matching component of s
func (v Vec2F) MulComponents(s Vec2F) Vec2F {
	return Vec2F{v.X * s.X, v.Y * s.Y}
}

// Opposite returns the anti-parallel vector of equal magnitude
func (v Vec2F) Opposite() Vec2F {
	return v.Scale(-1.0)
}

// DisplacementTo returns o - v, the vector that carries v onto o
func (v Vec2F) DisplacementTo(o Vec2F) Vec2F {
	return Vec2F{o.X - v.X, o.Y - v.Y}
}

func (v Vec2F) Magnitude() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// DistanceTo returns the euclidean distance between v and o
func (v Vec2F) DistanceTo(o Vec2F) float64 {
	return v.DisplacementTo(o).Magnitude()
}

// Unit returns v scaled to length 1
// The zero vector maps to Up instead of producing NaN components
func (v Vec2F) Unit() Vec2F {
	mag := v.Magnitude()
	if mag == 0 {
		return Up
	}
	return v.Scale(1 / mag)
}

// ScaleTo returns a vector in the direction of v with the given magnitude
func (v Vec2F) ScaleTo(mag float64) Vec2F {
	return v.Unit().Scale(mag)
}

// Angle returns the angle with +X in degrees, clockwise positive in screen space
func (v Vec2F) Angle() float64 {
	return ToDegrees(math.Atan2(v.Y, v.X))
}

// RotateBy rotates v clockwise by deg degrees
func (v Vec2F) RotateBy(deg float64) Vec2F {
	return FromPolar(v.Magnitude(), v.Angle()+deg)
}

// IsZero reports exact equality with the zero vector
func (v Vec2F) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

func (v Vec2F) String() string {
	return fmt.Sprintf("X: %g, Y: %g", v.X, v.Y)
}
