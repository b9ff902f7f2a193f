package vmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

const epsilon = 1e-9

func TestUnitOfZeroIsUp(t *testing.T) {
	assert.Equal(t, Up, Zero.Unit())
	assert.Equal(t, V2(0, -7), Zero.ScaleTo(7))
}

func TestUnitHasLengthOne(t *testing.T) {
	vectors := []Vec2F{
		V2(3, 4), V2(-3, 4), V2(0.001, 0), V2(1e6, -1e6), V2(-2.5, -0.25), V2(0, 12),
	}
	for _, v := range vectors {
		assert.InDelta(t, 1.0, v.Unit().Magnitude(), epsilon, "unit of %v", v)
	}
}

func TestDisplacementAntiSymmetric(t *testing.T) {
	pairs := [][2]Vec2F{
		{V2(0, 0), V2(1, 1)},
		{V2(-4, 2.5), V2(10, -3)},
		{V2(7, 7), V2(7, 7)},
	}
	for _, p := range pairs {
		a, b := p[0], p[1]
		assert.Equal(t, a.DisplacementTo(b), b.DisplacementTo(a).Opposite())
		assert.Equal(t, b, a.Add(a.DisplacementTo(b)))
	}
}

func TestMagnitudeAndScale(t *testing.T) {
	v := V2(3, 4)
	assert.Equal(t, 5.0, v.Magnitude())
	assert.Equal(t, V2(6, 8), v.Scale(2))
	assert.Equal(t, V2(-3, -4), v.Opposite())
	assert.Equal(t, V2(6, 4), v.AddX(3))
	assert.Equal(t, V2(3, 5), v.AddY(1))
	assert.Equal(t, V2(9, 4), v.WithX(9))
	assert.Equal(t, V2(3, 0), v.WithY(0))
	assert.Equal(t, V2(6, -4), v.MulComponents(V2(2, -1)))
	assert.Equal(t, 5.0, Zero.DistanceTo(v))
}

func TestAngleClockwiseInScreenSpace(t *testing.T) {
	assert.InDelta(t, 0.0, Right.Angle(), epsilon)
	assert.InDelta(t, 90.0, Down.Angle(), epsilon)
	assert.InDelta(t, -90.0, Up.Angle(), epsilon)
	assert.InDelta(t, 180.0, Left.Angle(), epsilon)
}

func TestRotateBy(t *testing.T) {
	r := Right.Scale(2).RotateBy(90)
	assert.InDelta(t, 0.0, r.X, epsilon)
	assert.InDelta(t, 2.0, r.Y, epsilon)

	back := V2(3, 4).RotateBy(45).RotateBy(-45)
	assert.InDelta(t, 3.0, back.X, epsilon)
	assert.InDelta(t, 4.0, back.Y, epsilon)
}

func TestFromPolar(t *testing.T) {
	v := FromPolar(math.Sqrt2, 45)
	assert.InDelta(t, 1.0, v.X, epsilon)
	assert.InDelta(t, 1.0, v.Y, epsilon)
}

func TestExactEquality(t *testing.T) {
	assert.True(t, V2(0.1, 0.2) == V2(0.1, 0.2))
	a, b := 0.1, 0.2
	assert.False(t, V2(a+b, 0) == V2(0.3, 0))
	assert.True(t, Zero.IsZero())
	assert.False(t, V2(0, 1e-300).IsZero())
}

func TestIntervals(t *testing.T) {
	assert.True(t, InclusiveBetween(0, 0, 1))
	assert.True(t, InclusiveBetween(0, 1, 1))
	assert.False(t, InclusiveBetween(0, 1.01, 1))
	assert.True(t, IntervalsOverlap(0, 10, 10, 20))
	assert.True(t, IntervalsOverlap(0, 100, 40, 60))
	assert.False(t, IntervalsOverlap(0, 10, 10.5, 20))
	assert.Equal(t, 3, ClampInt(7, 0, 3))
	assert.Equal(t, 0, ClampInt(-2, 0, 3))
}
