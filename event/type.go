package event

// EventType represents the type of game event
type EventType int

const (
	// === Player Event ===

	// EventPlayerHit fires when damage lands on the player outside hit immunity
	// Trigger: spikes, enemy contact, enemy bullets | Payload: *PlayerHitPayload
	EventPlayerHit EventType = iota

	// EventPlayerJumped fires when a jump is accepted
	// Trigger: Game.Jump while resting | Payload: nil
	EventPlayerJumped

	// EventPlayerDied fires once when player health reaches zero
	// Trigger: Game.Step | Payload: nil
	EventPlayerDied

	// EventAmmoCollected fires when an ammo pickup is consumed
	// Trigger: AmmoPickup | Payload: *AmmoCollectedPayload
	EventAmmoCollected

	// === Combat Event ===

	// EventWeaponFired fires for every weapon discharge, player or enemy
	// Trigger: Game.FireAt, turret fire pass | Payload: *WeaponFiredPayload
	EventWeaponFired

	// EventEnemyHit fires when an effect damages an enemy
	// Trigger: effects vs enemies pass | Payload: *EnemyHitPayload
	EventEnemyHit

	// EventEnemyKilled fires when an enemy is removed after losing its health
	// Trigger: removal pass | Payload: *EnemyKilledPayload
	EventEnemyKilled

	// EventProjectileHit fires when a bullet is spent against anything
	// Trigger: removal pass | Payload: *ProjectileHitPayload
	EventProjectileHit
)

var typeNames = map[EventType]string{
	EventPlayerHit:     "player_hit",
	EventPlayerJumped:  "player_jumped",
	EventPlayerDied:    "player_died",
	EventAmmoCollected: "ammo_collected",
	EventWeaponFired:   "weapon_fired",
	EventEnemyHit:      "enemy_hit",
	EventEnemyKilled:   "enemy_killed",
	EventProjectileHit: "projectile_hit",
}

// String returns the snake_case name used in logs and metric labels
func (t EventType) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "unknown"
}

// Types lists every event type in declaration order
func Types() []EventType {
	return []EventType{
		EventPlayerHit, EventPlayerJumped, EventPlayerDied, EventAmmoCollected,
		EventWeaponFired, EventEnemyHit, EventEnemyKilled, EventProjectileHit,
	}
}
