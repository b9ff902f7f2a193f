package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/william-cutler/platformer/vmath"
)

const (
	testGravity  = 50.0 / 28 / 28 * 10
	testTerminal = 100.0 / 28 * 10
)

func TestIntegrateAppliesGravityThenMoves(t *testing.T) {
	m := Motion{Velocity: vmath.V2(2, 0)}
	pos := m.Integrate(vmath.V2(10, 10), testGravity, testTerminal)

	assert.Equal(t, testGravity, m.Velocity.Y)
	assert.Equal(t, vmath.V2(12, 10+testGravity), pos)
}

func TestIntegrateClampsAtTerminalSpeed(t *testing.T) {
	m := Motion{Velocity: vmath.V2(0, testTerminal-0.1)}
	m.Integrate(vmath.Zero, testGravity, testTerminal)
	assert.Equal(t, testTerminal, m.Velocity.Y)

	m.Integrate(vmath.Zero, testGravity, testTerminal)
	assert.Equal(t, testTerminal, m.Velocity.Y)
}

func TestMoveHaltJump(t *testing.T) {
	var m Motion
	m.MoveX(true, 5)
	assert.Equal(t, 5.0, m.Velocity.X)
	m.MoveX(false, 5)
	assert.Equal(t, -5.0, m.Velocity.X)
	m.HaltX()
	assert.Equal(t, 0.0, m.Velocity.X)
	m.Jump(10)
	assert.Equal(t, -10.0, m.Velocity.Y)
}

func TestResolveZeroesPushAxis(t *testing.T) {
	m := Motion{Velocity: vmath.V2(3, 4)}
	pos := m.Resolve(vmath.V2(1, 1), vmath.V2(0, -2))
	assert.Equal(t, vmath.V2(1, -1), pos)
	assert.Equal(t, vmath.V2(3, 0), m.Velocity)

	m = Motion{Velocity: vmath.V2(3, 4)}
	pos = m.Resolve(vmath.V2(1, 1), vmath.V2(-1, 0))
	assert.Equal(t, vmath.V2(0, 1), pos)
	assert.Equal(t, vmath.V2(0, 4), m.Velocity)

	m = Motion{Velocity: vmath.V2(3, 4)}
	pos = m.Resolve(vmath.V2(1, 1), vmath.Zero)
	assert.Equal(t, vmath.V2(1, 1), pos)
	assert.Equal(t, vmath.V2(3, 4), m.Velocity)
}

func TestResolveDiagonalPanics(t *testing.T) {
	m := Motion{}
	assertPanicsIs(t, ErrDiagonalResolution, func() { m.Resolve(vmath.Zero, vmath.V2(1, 1)) })
}

func TestFallingBodyComesToRest(t *testing.T) {
	ground := rect(-200, 200, 600, 100)
	body := rect(0, 0, 20, 30)
	m := Motion{}

	pos := body.TopLeft
	for i := 0; i < 200; i++ {
		pos = m.Integrate(pos, testGravity, testTerminal)
		body = body.At(pos)
		if Collides(ground, body) {
			pos = m.Resolve(pos, Resolve(ground, body))
			body = body.At(pos)
		}
	}

	assert.Equal(t, 0.0, m.Velocity.Y)
	assert.InDelta(t, ground.Top(), body.Bottom(), 1e-9)
	assert.True(t, OnTopOf(body, ground, 1.0))
}
