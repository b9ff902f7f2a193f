package event

import "github.com/google/uuid"

// GameEvent is a single occurrence produced during a simulation step
type GameEvent struct {
	Type    EventType
	Payload any
	// Tick is the step counter at emission
	Tick int64
}

// PlayerHitPayload describes damage taken by the player
type PlayerHitPayload struct {
	Source     uuid.UUID
	SourceKind string
	Damage     int
	HealthLeft int
}

// AmmoCollectedPayload describes a consumed pickup
type AmmoCollectedPayload struct {
	Pickup uuid.UUID
	Slot   int
	Amount int
}

// WeaponFiredPayload describes one discharge
type WeaponFiredPayload struct {
	Weapon  string
	Shooter uuid.UUID
	// Hostile is true for enemy fire
	Hostile bool
}

// EnemyHitPayload describes damage dealt to an enemy
type EnemyHitPayload struct {
	Enemy  uuid.UUID
	Kind   string
	Source uuid.UUID
	Damage int
}

// EnemyKilledPayload identifies a removed enemy
type EnemyKilledPayload struct {
	Enemy uuid.UUID
	Kind  string
}

// ProjectileHitPayload identifies a spent bullet
type ProjectileHitPayload struct {
	Projectile uuid.UUID
	Hostile    bool
}
