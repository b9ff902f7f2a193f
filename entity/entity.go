// Package entity holds every participant of the simulation: the player, the
// environment, enemies, weapon effects and pickups.
//
// Entities never look each other up. The engine walks its collections in a
// fixed order each step and hands pairs to the Interact* methods; each method
// acts only when the two bodies overlap.
package entity

import (
	"errors"

	"github.com/google/uuid"

	"github.com/william-cutler/platformer/physics"
	"github.com/william-cutler/platformer/vmath"
)

var (
	// ErrNegativeDamage is raised when damage below zero is applied
	ErrNegativeDamage = errors.New("entity: damage must be non-negative")
	// ErrNegativeAmmo is raised when ammo below zero is added
	ErrNegativeAmmo = errors.New("entity: ammo must be non-negative")
	// ErrPickupTaken is raised when a consumed pickup is collected again
	ErrPickupTaken = errors.New("entity: pickup already taken")
	// ErrInvalidLength is returned for spike runs shorter than one block
	ErrInvalidLength = errors.New("entity: length must be at least one block")
)

// Tag identifies the concrete variant for rendering, logging and metrics
type Tag uint8

const (
	TagPlayer Tag = iota
	TagGround
	TagSpikes
	TagMeleeEnemy
	TagTurret
	TagPlayerBullet
	TagEnemyBullet
	TagKnifeSwing
	TagAmmoPickup
)

var tagNames = [...]string{
	TagPlayer:       "player",
	TagGround:       "ground",
	TagSpikes:       "spikes",
	TagMeleeEnemy:   "melee_enemy",
	TagTurret:       "turret",
	TagPlayerBullet: "player_bullet",
	TagEnemyBullet:  "enemy_bullet",
	TagKnifeSwing:   "knife_swing",
	TagAmmoPickup:   "ammo_pickup",
}

func (t Tag) String() string {
	if int(t) < len(tagNames) {
		return tagNames[t]
	}
	return "unknown"
}

// Component is the contract shared by every non-player entity
type Component interface {
	ID() uuid.UUID
	Body() physics.Body
	Tag() Tag
	// Tick advances internal state by one step
	Tick()
	// InteractPlayer applies this entity's effect on the player when the bodies overlap
	InteractPlayer(p *Player)
	ShouldRemove() bool
}

// Environment is static or scripted world geometry the player can stand on
type Environment interface {
	Component
	PlayerOnTop(p *Player) bool
}

// Enemy can be damaged by effects and may shoot at the player
type Enemy interface {
	Component
	// TakeDamage panics with ErrNegativeDamage below zero
	TakeDamage(amount int)
	// FireAt returns the effects launched toward target this step, possibly none
	FireAt(target vmath.Vec2F) []Effect
	Health() int
}

// Effect is anything a weapon produces: projectiles and swings
type Effect interface {
	Component
	InteractEnemy(e Enemy)
	InteractEnvironment(env Environment)
}

// base carries identity and the collision body common to all entities
type base struct {
	id   uuid.UUID
	body physics.Body
}

func newBase(body physics.Body) base {
	return base{id: uuid.New(), body: body}
}

func (b *base) ID() uuid.UUID      { return b.id }
func (b *base) Body() physics.Body { return b.body }

// overlaps reports whether this body and other collide
func (b *base) overlaps(other physics.Body) bool {
	return physics.Collides(b.body, other)
}

var (
	_ Environment = (*GroundBlock)(nil)
	_ Environment = (*Spikes)(nil)
	_ Enemy       = (*MeleeEnemy)(nil)
	_ Enemy       = (*SentryTurret)(nil)
	_ Effect      = (*Bullet)(nil)
	_ Effect      = (*KnifeSwing)(nil)
	_ Component   = (*AmmoPickup)(nil)
	_ AmmoWeapon  = (*Pistol)(nil)
)
