package physics

import (
	"errors"
	"fmt"

	"github.com/william-cutler/platformer/vmath"
)

var (
	// ErrNonPositiveDimensions is returned when a rectangle has a zero or negative side
	ErrNonPositiveDimensions = errors.New("physics: rectangle dimensions must be positive")
	// ErrNotColliding is raised when resolving a point/rectangle pair that does not touch
	ErrNotColliding = errors.New("physics: bodies are not colliding")
	// ErrNotRectangle is raised by rectangle-only queries given a point
	ErrNotRectangle = errors.New("physics: body is not a rectangle")
	// ErrDiagonalResolution is raised when a resolution vector pushes along both axes
	ErrDiagonalResolution = errors.New("physics: resolution vector is not axis-aligned")
)

// Shape tags the closed set of collision body variants
type Shape uint8

const (
	ShapePoint Shape = iota
	ShapeRect
)

func (s Shape) String() string {
	switch s {
	case ShapePoint:
		return "point"
	case ShapeRect:
		return "rect"
	default:
		return "unknown"
	}
}

// Body is an axis-aligned collision shape; a point carries a zero Dim
type Body struct {
	Shape   Shape
	TopLeft vmath.Vec2F
	Dim     vmath.Vec2F
}

// NewPoint returns a point body at pos
func NewPoint(pos vmath.Vec2F) Body {
	return Body{Shape: ShapePoint, TopLeft: pos}
}

// NewRect returns a rectangle body, rejecting non-positive dimensions
func NewRect(topLeft, dim vmath.Vec2F) (Body, error) {
	if dim.X <= 0 || dim.Y <= 0 {
		return Body{}, fmt.Errorf("%w: got %v", ErrNonPositiveDimensions, dim)
	}
	return Body{Shape: ShapeRect, TopLeft: topLeft, Dim: dim}, nil
}

// MustRect is NewRect for dimensions known at compile time; panics on invalid input
func MustRect(topLeft, dim vmath.Vec2F) Body {
	b, err := NewRect(topLeft, dim)
	if err != nil {
		panic(err)
	}
	return b
}

// IsRect reports whether b is the rectangle variant
func (b Body) IsRect() bool { return b.Shape == ShapeRect }

func (b Body) Left() float64   { return b.TopLeft.X }
func (b Body) Top() float64    { return b.TopLeft.Y }
func (b Body) Right() float64  { return b.TopLeft.X + b.Dim.X }
func (b Body) Bottom() float64 { return b.TopLeft.Y + b.Dim.Y }

func (b Body) TopRight() vmath.Vec2F    { return b.TopLeft.AddX(b.Dim.X) }
func (b Body) BottomLeft() vmath.Vec2F  { return b.TopLeft.AddY(b.Dim.Y) }
func (b Body) BottomRight() vmath.Vec2F { return b.TopLeft.Add(b.Dim) }

// Center returns the geometric center; a point's center is its position
func (b Body) Center() vmath.Vec2F {
	return b.TopLeft.Add(b.Dim.Scale(.5))
}

// Corners returns top-left, top-right, bottom-left, bottom-right
func (b Body) Corners() [4]vmath.Vec2F {
	return [4]vmath.Vec2F{b.TopLeft, b.TopRight(), b.BottomLeft(), b.BottomRight()}
}

// Move returns b displaced by v
func (b Body) Move(v vmath.Vec2F) Body {
	b.TopLeft = b.TopLeft.Add(v)
	return b
}

// At returns b with its top-left placed at pos
func (b Body) At(pos vmath.Vec2F) Body {
	b.TopLeft = pos
	return b
}

func (b Body) String() string {
	if b.Shape == ShapePoint {
		return fmt.Sprintf("point(%v)", b.TopLeft)
	}
	return fmt.Sprintf("rect(%v | %gx%g)", b.TopLeft, b.Dim.X, b.Dim.Y)
}
