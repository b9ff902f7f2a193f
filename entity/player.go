package entity

import (
	"fmt"

	"github.com/william-cutler/platformer/component"
	"github.com/william-cutler/platformer/parameter"
	"github.com/william-cutler/platformer/physics"
	"github.com/william-cutler/platformer/vmath"
)

// Hit records damage that landed on the player
type Hit struct {
	Source Component
	Damage int
}

// Player is the controllable character; it is never removed
type Player struct {
	base
	Motion physics.Motion

	health      component.Health
	immunity    component.Countdown
	immuneTicks int
	weapons     *Weaponry
	facing      vmath.Vec2F

	gravity, terminal float64
	moveSpeed         float64
	jumpSpeed         float64
	tolerance         float64

	hits []Hit
}

// NewPlayer places a player with its top-left corner at pos
func NewPlayer(pos vmath.Vec2F, t parameter.Tuning) *Player {
	return &Player{
		base:        newBase(physics.MustRect(pos, t.PlayerDim)),
		health:      component.NewHealth(t.PlayerHealth),
		immuneTicks: t.HitImmunityTicks,
		weapons:     NewWeaponry(t),
		facing:      vmath.Right,
		gravity:     t.Gravity,
		terminal:    t.TerminalSpeed,
		moveSpeed:   t.MoveSpeed,
		jumpSpeed:   t.JumpSpeed,
		tolerance:   t.CollisionTolerance,
	}
}

func (p *Player) Tag() Tag { return TagPlayer }

func (p *Player) Position() vmath.Vec2F { return p.body.TopLeft }

func (p *Player) Center() vmath.Vec2F { return p.body.Center() }

func (p *Player) Health() component.Health { return p.health }

func (p *Player) Weapons() *Weaponry { return p.weapons }

// Facing is the unit direction of the last aim, Right initially
func (p *Player) Facing() vmath.Vec2F { return p.facing }

// Immune reports whether incoming damage is currently ignored
func (p *Player) Immune() bool { return !p.immunity.Finished() }

func (p *Player) Dead() bool { return p.health.Depleted() }

// Tick integrates gravity and velocity, then advances weapon reloads and hit immunity
func (p *Player) Tick() {
	pos := p.Motion.Integrate(p.body.TopLeft, p.gravity, p.terminal)
	p.body = p.body.At(pos)
	p.weapons.Tick()
	p.immunity.TickIfRunning()
}

func (p *Player) MoveLeft()  { p.Motion.MoveX(false, p.moveSpeed) }
func (p *Player) MoveRight() { p.Motion.MoveX(true, p.moveSpeed) }
func (p *Player) Halt()      { p.Motion.HaltX() }

// Jump sets upward velocity unconditionally; callers gate on resting
func (p *Player) Jump() { p.Motion.Jump(p.jumpSpeed) }

// FaceToward turns the player's aim toward point
func (p *Player) FaceToward(point vmath.Vec2F) {
	p.facing = p.Center().DisplacementTo(point).Unit()
}

// FireAt discharges the active weapon from the player's center toward point
func (p *Player) FireAt(point vmath.Vec2F) []Effect {
	aim := p.Center().DisplacementTo(point)
	p.facing = aim.Unit()
	return p.weapons.Current().Fire(p.Center(), aim)
}

// OnHit applies damage unless immune; landed damage restarts immunity
// Returns true when health changed
func (p *Player) OnHit(damage int) bool {
	if damage < 0 {
		panic(fmt.Errorf("%w: got %d", ErrNegativeDamage, damage))
	}
	if p.Immune() || damage == 0 {
		return false
	}
	p.health.Change(-damage)
	p.immunity.Reset(p.immuneTicks)
	return true
}

// HitBy is OnHit with the source recorded for event reporting
func (p *Player) HitBy(src Component, damage int) {
	if p.OnHit(damage) {
		p.hits = append(p.hits, Hit{Source: src, Damage: damage})
	}
}

// TakeHits returns and clears hits recorded since the last call
func (p *Player) TakeHits() []Hit {
	hits := p.hits
	p.hits = nil
	return hits
}

// AddAmmo forwards to the weaponry
func (p *Player) AddAmmo(slot, amount int) { p.weapons.AddAmmo(slot, amount) }

// ResolveAgainst pushes the player out of a blocking body and zeroes velocity along the push
func (p *Player) ResolveAgainst(b physics.Body) {
	if !p.overlaps(b) {
		return
	}
	r := physics.Resolve(b, p.body)
	p.body = p.body.At(p.Motion.Resolve(p.body.TopLeft, r))
}

// StandingOn reports whether the player rests on top of b within collision tolerance
func (p *Player) StandingOn(b physics.Body) bool {
	return physics.OnTopOf(p.body, b, p.tolerance)
}

// MoveTo teleports the player, keeping velocity
func (p *Player) MoveTo(pos vmath.Vec2F) {
	p.body = p.body.At(pos)
}
