package engine

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/william-cutler/platformer/entity"
	"github.com/william-cutler/platformer/event"
	"github.com/william-cutler/platformer/parameter"
	"github.com/william-cutler/platformer/vmath"
)

var tuning = parameter.Default()

// recorder captures dispatched events
type recorder struct {
	events []event.GameEvent
}

func (r *recorder) HandleEvent(ev event.GameEvent) { r.events = append(r.events, ev) }

func (r *recorder) of(t event.EventType) []event.GameEvent {
	var out []event.GameEvent
	for _, ev := range r.events {
		if ev.Type == t {
			out = append(out, ev)
		}
	}
	return out
}

// floorWorld is a wide floor with its top at y=100 and the player resting on it at x=0
func floorWorld(t *testing.T) entity.World {
	t.Helper()
	floor, err := entity.NewGroundBlock(vmath.V2(-100, 100), vmath.V2(400, 20))
	require.NoError(t, err)
	return entity.World{
		Player:      entity.NewPlayer(vmath.V2(0, 70), tuning),
		Environment: []entity.Environment{floor},
	}
}

func newGame(t *testing.T, w entity.World) (*Game, *recorder) {
	t.Helper()
	g := NewGame(tuning, w, nil)
	rec := &recorder{}
	g.Subscribe(rec)
	return g, rec
}

func steps(g *Game, n int) {
	for i := 0; i < n; i++ {
		g.Step()
	}
}

func TestFallingPlayerLandsAndJumps(t *testing.T) {
	w := floorWorld(t)
	w.Player.MoveTo(vmath.V2(0, 40))
	g, rec := newGame(t, w)

	assert.False(t, g.Jump(), "cannot jump mid-air")
	steps(g, 100)

	p := g.Player()
	assert.Equal(t, 0.0, p.Motion.Velocity.Y)
	assert.InDelta(t, 100, p.Body().Bottom(), 1e-9)
	assert.True(t, g.Resting())

	require.True(t, g.Jump())
	assert.Equal(t, -tuning.JumpSpeed, p.Motion.Velocity.Y)
	steps(g, 3)
	assert.False(t, g.Resting())
	assert.False(t, g.Jump())

	g.Step()
	assert.Len(t, rec.of(event.EventPlayerJumped), 1)
}

func TestWalkingAcrossFloor(t *testing.T) {
	g, _ := newGame(t, floorWorld(t))
	g.MoveRight()
	steps(g, 10)

	p := g.Player()
	assert.InDelta(t, 10*tuning.MoveSpeed, p.Position().X, 1e-9)
	assert.Equal(t, tuning.MoveSpeed, p.Motion.Velocity.X, "floor contact keeps horizontal speed")
	assert.InDelta(t, 100, p.Body().Bottom(), 1e-9)

	g.Halt()
	g.Step()
	assert.InDelta(t, 10*tuning.MoveSpeed, p.Position().X, 1e-9)
}

func TestSpikesHurtOncePerImmunityWindow(t *testing.T) {
	spikes, err := entity.NewSpikes(vmath.V2(-10, 100), entity.DirUp, 10, tuning)
	require.NoError(t, err)
	w := entity.World{
		Player:      entity.NewPlayer(vmath.V2(0, 70), tuning),
		Environment: []entity.Environment{spikes},
	}
	logger, hook := test.NewNullLogger()
	g := NewGame(tuning, w, logger)
	rec := &recorder{}
	g.Subscribe(rec)

	g.Step()
	assert.Equal(t, 2, g.Player().Health().Current)

	steps(g, tuning.HitImmunityTicks-1)
	assert.Equal(t, 2, g.Player().Health().Current, "still immune")

	g.Step()
	assert.Equal(t, 1, g.Player().Health().Current)

	steps(g, tuning.HitImmunityTicks)
	assert.Equal(t, 0, g.Player().Health().Current)
	assert.True(t, g.Over())
	assert.Equal(t, int64(2*tuning.HitImmunityTicks+1), g.Ticks())

	hits := rec.of(event.EventPlayerHit)
	require.Len(t, hits, 3)
	payload := hits[0].Payload.(*event.PlayerHitPayload)
	assert.Equal(t, spikes.ID(), payload.Source)
	assert.Equal(t, "spikes", payload.SourceKind)
	assert.Equal(t, 2, payload.HealthLeft)
	assert.Len(t, rec.of(event.EventPlayerDied), 1)

	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, "player died", hook.LastEntry().Message)
	assert.Equal(t, logrus.InfoLevel, hook.LastEntry().Level)

	// everything is frozen once over
	steps(g, 10)
	assert.Equal(t, int64(2*tuning.HitImmunityTicks+1), g.Ticks())
	g.SelectWeapon(entity.SlotPistol)
	g.FireAt(vmath.V2(100, 0))
	assert.Empty(t, g.Effects())
	assert.False(t, g.Jump())
	assert.Len(t, rec.of(event.EventPlayerDied), 1)
}

func TestTurretShootsPlayer(t *testing.T) {
	w := floorWorld(t)
	turret := entity.NewSentryTurret(vmath.V2(100, 80), tuning)
	w.Enemies = []entity.Enemy{turret}
	g, rec := newGame(t, w)

	steps(g, tuning.TurretReloadTicks-1)
	assert.Empty(t, g.Effects())

	g.Step()
	require.Len(t, g.Effects(), 1)
	fired := rec.of(event.EventWeaponFired)
	require.Len(t, fired, 1)
	assert.True(t, fired[0].Payload.(*event.WeaponFiredPayload).Hostile)

	steps(g, 20)
	assert.Empty(t, g.Effects())
	assert.Equal(t, tuning.PlayerHealth-1, g.Player().Health().Current)

	hits := rec.of(event.EventPlayerHit)
	require.Len(t, hits, 1)
	assert.Equal(t, "enemy_bullet", hits[0].Payload.(*event.PlayerHitPayload).SourceKind)
	spent := rec.of(event.EventProjectileHit)
	require.Len(t, spent, 1)
	assert.True(t, spent[0].Payload.(*event.ProjectileHitPayload).Hostile)
}

func TestPlayerShootsTurret(t *testing.T) {
	w := floorWorld(t)
	turret := entity.NewSentryTurret(vmath.V2(100, 80), tuning)
	w.Enemies = []entity.Enemy{turret}
	g, rec := newGame(t, w)

	g.FireAt(turret.Body().Center())
	assert.Empty(t, g.Effects(), "empty hand fires nothing")

	g.SelectWeapon(entity.SlotPistol)
	g.SelectWeapon(8)
	g.FireAt(turret.Body().Center())
	require.Len(t, g.Effects(), 1)

	steps(g, 20)
	assert.Empty(t, g.Effects())
	assert.Equal(t, tuning.TurretHealth-1, turret.Health())
	pistol, _ := g.Player().Weapons().Get(entity.SlotPistol)
	assert.Equal(t, tuning.PistolAmmo-1, pistol.(entity.AmmoWeapon).Ammo())

	hits := rec.of(event.EventEnemyHit)
	require.Len(t, hits, 1)
	assert.Equal(t, turret.ID(), hits[0].Payload.(*event.EnemyHitPayload).Enemy)
	assert.Len(t, rec.of(event.EventProjectileHit), 1)
	assert.Empty(t, rec.of(event.EventEnemyKilled))
}

func TestKnifeKillsMeleeEnemy(t *testing.T) {
	w := floorWorld(t)
	melee := entity.NewMeleeEnemy(vmath.V2(25, 70), vmath.V2(25, 70), tuning)
	w.Enemies = []entity.Enemy{melee}
	g, rec := newGame(t, w)

	g.SelectWeapon(entity.SlotKnife)
	g.FireAt(vmath.V2(100, 85))
	require.Len(t, g.Effects(), 1)

	g.Step()
	assert.Empty(t, g.Enemies())
	assert.Empty(t, g.Effects(), "swing lasts one step")
	killed := rec.of(event.EventEnemyKilled)
	require.Len(t, killed, 1)
	assert.Equal(t, "melee_enemy", killed[0].Payload.(*event.EnemyKilledPayload).Kind)
	assert.Equal(t, tuning.PlayerHealth, g.Player().Health().Current)
}

func TestEffectsMeetEnemiesBeforeEnvironment(t *testing.T) {
	w := floorWorld(t)
	turret := entity.NewSentryTurret(vmath.V2(50, 80), tuning)
	w.Enemies = []entity.Enemy{turret}
	g, _ := newGame(t, w)

	// after its first move the bullet overlaps both the turret and the floor
	g.effects = append(g.effects, entity.NewBullet(vmath.V2(55, 100), vmath.Right, false, tuning))
	g.Step()

	assert.Equal(t, tuning.TurretHealth-1, turret.Health())
	assert.Empty(t, g.Effects())
}

func TestAmmoPickupCollected(t *testing.T) {
	w := floorWorld(t)
	pickup, err := entity.NewAmmoPickup(vmath.V2(5, 80), tuning.BlockSize, entity.SlotPistol, 5)
	require.NoError(t, err)
	w.Pickups = []entity.Component{pickup}
	g, rec := newGame(t, w)

	g.Step()
	assert.Empty(t, g.Pickups())
	pistol, _ := g.Player().Weapons().Get(entity.SlotPistol)
	assert.Equal(t, tuning.PistolAmmo+5, pistol.(entity.AmmoWeapon).Ammo())

	collected := rec.of(event.EventAmmoCollected)
	require.Len(t, collected, 1)
	assert.Equal(t, 5, collected[0].Payload.(*event.AmmoCollectedPayload).Amount)

	steps(g, 5)
	assert.Len(t, rec.of(event.EventAmmoCollected), 1)
}

func TestStrayBulletsLeaveTheWorld(t *testing.T) {
	g, rec := newGame(t, floorWorld(t))
	g.SelectWeapon(entity.SlotPistol)
	g.FireAt(vmath.V2(10, -10000))
	require.Len(t, g.Effects(), 1)

	steps(g, 200)
	assert.Empty(t, g.Effects())
	assert.Empty(t, rec.of(event.EventProjectileHit))
}

func TestFiringLastPistolRound(t *testing.T) {
	tn := tuning
	tn.PistolAmmo = 1
	w := floorWorld(t)
	w.Player = entity.NewPlayer(vmath.V2(0, 70), tn)
	g, rec := newGame(t, w)

	g.SelectWeapon(entity.SlotPistol)
	g.FireAt(vmath.V2(100, 0))
	require.Len(t, g.Effects(), 1)
	pistol, _ := g.Player().Weapons().Get(entity.SlotPistol)
	assert.Zero(t, pistol.(entity.AmmoWeapon).Ammo())

	g.FireAt(vmath.V2(100, 0))
	assert.Len(t, g.Effects(), 1)
	g.Step()
	assert.Len(t, rec.of(event.EventWeaponFired), 1)
}

func TestDistantTurretBulletsSurvive(t *testing.T) {
	w := floorWorld(t)
	w.Enemies = []entity.Enemy{entity.NewSentryTurret(vmath.V2(3000, 80), tuning)}
	g, rec := newGame(t, w)

	steps(g, tuning.TurretReloadTicks)
	require.Len(t, rec.of(event.EventWeaponFired), 1)
	require.Len(t, g.Effects(), 1)

	g.Step()
	assert.Len(t, g.Effects(), 1)
}

func TestPausedGameIgnoresInput(t *testing.T) {
	g, rec := newGame(t, floorWorld(t))
	g.SetPaused(true)
	assert.True(t, g.Paused())

	g.SelectWeapon(entity.SlotPistol)
	g.FireAt(vmath.V2(100, 0))
	assert.False(t, g.Jump())
	g.MoveRight()
	steps(g, 5)

	assert.Zero(t, g.Ticks())
	assert.Empty(t, g.Effects())
	assert.Equal(t, entity.SlotNone, g.Player().Weapons().CurrentSlot())
	assert.Zero(t, g.Player().Motion.Velocity.X)
	assert.Empty(t, rec.events)

	g.SetPaused(false)
	assert.True(t, g.Jump())
	steps(g, 1)
	assert.Equal(t, int64(1), g.Ticks())
	assert.Len(t, rec.of(event.EventPlayerJumped), 1)
}

func TestComponentsDrawOrder(t *testing.T) {
	w := floorWorld(t)
	pickup, err := entity.NewAmmoPickup(vmath.V2(200, 80), tuning.BlockSize, entity.SlotPistol, 1)
	require.NoError(t, err)
	w.Pickups = []entity.Component{pickup}
	w.Enemies = []entity.Enemy{entity.NewSentryTurret(vmath.V2(250, 80), tuning)}
	g, _ := newGame(t, w)

	var tags []entity.Tag
	for _, c := range g.Components() {
		tags = append(tags, c.Tag())
	}
	assert.Equal(t, []entity.Tag{entity.TagGround, entity.TagAmmoPickup, entity.TagTurret}, tags)
}

func TestFaceToward(t *testing.T) {
	g, _ := newGame(t, floorWorld(t))
	g.FaceToward(vmath.V2(-100, 85))
	assert.Equal(t, vmath.Left, g.Player().Facing())
}
