package physics

import (
	"fmt"
	"math"

	"github.com/william-cutler/platformer/vmath"
)

// Collides reports whether a and b touch or overlap; symmetric in its arguments
//
// Rectangle pairs collide when any corner of either lies inside the other. Two
// rectangles crossing like a plus sign, with no corner inside the other, are
// reported as not colliding. Level geometry is authored around this behavior
func Collides(a, b Body) bool {
	switch {
	case a.Shape == ShapePoint && b.Shape == ShapePoint:
		return a.TopLeft == b.TopLeft
	case a.Shape == ShapePoint:
		return containsPoint(b, a.TopLeft)
	case b.Shape == ShapePoint:
		return containsPoint(a, b.TopLeft)
	default:
		return anyCornerInside(a, b) || anyCornerInside(b, a)
	}
}

// CollidesWith is Collides(b, o)
func (b Body) CollidesWith(o Body) bool {
	return Collides(b, o)
}

// containsPoint tests p against the rectangle r, inclusive on every edge
func containsPoint(r Body, p vmath.Vec2F) bool {
	return vmath.InclusiveBetween(r.Left(), p.X, r.Right()) &&
		vmath.InclusiveBetween(r.Top(), p.Y, r.Bottom())
}

// anyCornerInside reports whether a corner of inner lies within outer
func anyCornerInside(inner, outer Body) bool {
	for _, c := range inner.Corners() {
		if containsPoint(outer, c) {
			return true
		}
	}
	return false
}

// Resolve returns the displacement that, added to moving's position, ends its
// overlap with fixed. The result is the smallest of four axis-aligned
// candidates (left, right, up, down); ties go to the earlier candidate
//
// Point/rectangle pairs must collide, otherwise Resolve panics with ErrNotColliding
func Resolve(fixed, moving Body) vmath.Vec2F {
	switch {
	case fixed.Shape == ShapePoint && moving.Shape == ShapePoint:
		return vmath.Zero
	case fixed.Shape == ShapePoint:
		return rectOffPoint(moving, fixed.TopLeft)
	case moving.Shape == ShapePoint:
		return rectOffPoint(fixed, moving.TopLeft).Opposite()
	default:
		return rectOffRect(moving, fixed)
	}
}

// Resolve is Resolve(b, moving)
func (b Body) Resolve(moving Body) vmath.Vec2F {
	return Resolve(b, moving)
}

// rectOffRect returns the vector m must move to clear f
func rectOffRect(m, f Body) vmath.Vec2F {
	return smallest(
		vmath.V2(f.Left()-m.Right(), 0),
		vmath.V2(f.Right()-m.Left(), 0),
		vmath.V2(0, f.Top()-m.Bottom()),
		vmath.V2(0, f.Bottom()-m.Top()),
	)
}

// rectOffPoint returns the vector r must move to clear p
func rectOffPoint(r Body, p vmath.Vec2F) vmath.Vec2F {
	if !containsPoint(r, p) {
		panic(fmt.Errorf("%w: %v and point %v", ErrNotColliding, r, p))
	}
	d := r.TopLeft.DisplacementTo(p)
	return smallest(
		vmath.V2(d.X-r.Dim.X, 0),
		vmath.V2(d.X, 0),
		vmath.V2(0, d.Y-r.Dim.Y),
		vmath.V2(0, d.Y),
	)
}

// smallest returns the first candidate of minimal magnitude
func smallest(candidates ...vmath.Vec2F) vmath.Vec2F {
	best := candidates[0]
	bestMag := best.Magnitude()
	for _, c := range candidates[1:] {
		if m := c.Magnitude(); m < bestMag {
			best, bestMag = c, m
		}
	}
	return best
}

// OnTopOf reports whether upper rests on lower: their columns overlap and the
// gap between upper's bottom edge and lower's top edge is below tolerance
func OnTopOf(upper, lower Body, tolerance float64) bool {
	if !upper.IsRect() || !lower.IsRect() {
		panic(fmt.Errorf("%w: %v on %v", ErrNotRectangle, upper, lower))
	}
	return vmath.IntervalsOverlap(upper.Left(), upper.Right(), lower.Left(), lower.Right()) &&
		math.Abs(upper.Bottom()-lower.Top()) < tolerance
}
