package physics

import (
	"fmt"
	"math"

	"github.com/william-cutler/platformer/vmath"
)

// Motion holds a velocity in pixels per tick and integrates it on each tick
// The horizontal axis is input-driven; the vertical axis is gravity-driven
type Motion struct {
	Velocity vmath.Vec2F
}

// MoveX sets horizontal velocity to +speed (right) or -speed (left)
func (m *Motion) MoveX(right bool, speed float64) {
	if right {
		m.Velocity = m.Velocity.WithX(speed)
	} else {
		m.Velocity = m.Velocity.WithX(-speed)
	}
}

// HaltX zeroes horizontal velocity
func (m *Motion) HaltX() {
	m.Velocity = m.Velocity.WithX(0)
}

// Jump sets vertical velocity to an upward impulse of the given speed
func (m *Motion) Jump(speed float64) {
	m.Velocity = m.Velocity.WithY(-math.Abs(speed))
}

// Integrate applies gravity clamped at terminal speed, then returns pos moved by the new velocity
// Collisions are corrected after the move by Resolve, never before
func (m *Motion) Integrate(pos vmath.Vec2F, gravity, terminal float64) vmath.Vec2F {
	vy := math.Min(m.Velocity.Y+gravity, terminal)
	m.Velocity = m.Velocity.WithY(vy)
	return pos.Add(m.Velocity)
}

// Resolve applies resolution vector r to pos and zeroes the velocity component
// along the push axis: a horizontal push stops x motion, a vertical push stops y motion
// A zero vector is a resting contact and leaves velocity alone
// A vector with both components non-zero panics with ErrDiagonalResolution
func (m *Motion) Resolve(pos, r vmath.Vec2F) vmath.Vec2F {
	switch {
	case r.IsZero():
	case r.Y == 0:
		m.Velocity = m.Velocity.WithX(0)
	case r.X == 0:
		m.Velocity = m.Velocity.WithY(0)
	default:
		panic(fmt.Errorf("%w: %v", ErrDiagonalResolution, r))
	}
	return pos.Add(r)
}
