package engine

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/william-cutler/platformer/entity"
	"github.com/william-cutler/platformer/event"
	"github.com/william-cutler/platformer/parameter"
	"github.com/william-cutler/platformer/physics"
	"github.com/william-cutler/platformer/vmath"
)

// Game owns every entity collection and advances them one fixed step at a time
// Not safe for concurrent use; ClockScheduler serializes input and steps on one goroutine
type Game struct {
	tuning parameter.Tuning
	log    logrus.FieldLogger

	player      *entity.Player
	environment []entity.Environment
	enemies     []entity.Enemy
	effects     []entity.Effect
	pickups     []entity.Component

	// bounds drops effects that left the level
	bounds physics.Body

	events    *event.Buffer
	listeners []event.Listener

	ticks  int64
	over   bool
	paused bool
}

// NewGame takes ownership of world; log may be nil
func NewGame(t parameter.Tuning, world entity.World, log logrus.FieldLogger) *Game {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	margin := parameter.EffectMarginBlocks * t.BlockSize
	ext := world.Extent()
	bounds := physics.MustRect(
		ext.TopLeft.Add(vmath.V2(-margin, -margin)),
		ext.Dim.Add(vmath.V2(2*margin, 2*margin)),
	)

	g := &Game{
		tuning:      t,
		log:         log.WithField("component", "engine"),
		player:      world.Player,
		environment: world.Environment,
		enemies:     world.Enemies,
		pickups:     world.Pickups,
		bounds:      bounds,
		events:      event.NewBuffer(),
	}
	g.log.WithFields(logrus.Fields{
		"environment": len(g.environment),
		"enemies":     len(g.enemies),
		"pickups":     len(g.pickups),
	}).Info("world loaded")
	return g
}

// Subscribe registers l to receive events after every step, in registration order
func (g *Game) Subscribe(l event.Listener) {
	g.listeners = append(g.listeners, l)
}

func (g *Game) Tuning() parameter.Tuning { return g.tuning }

func (g *Game) Player() *entity.Player { return g.player }

// Collections are returned as-is; callers must not modify them

func (g *Game) Environment() []entity.Environment { return g.environment }
func (g *Game) Enemies() []entity.Enemy           { return g.enemies }
func (g *Game) Effects() []entity.Effect          { return g.effects }
func (g *Game) Pickups() []entity.Component       { return g.pickups }

// Ticks is the number of completed steps
func (g *Game) Ticks() int64 { return g.ticks }

// Over reports whether the player has died; Step and input are ignored afterwards
func (g *Game) Over() bool { return g.over }

// Components returns every non-player entity in draw order: environment, pickups, enemies, effects
func (g *Game) Components() []entity.Component {
	out := make([]entity.Component, 0, len(g.environment)+len(g.pickups)+len(g.enemies)+len(g.effects))
	for _, c := range g.environment {
		out = append(out, c)
	}
	for _, c := range g.pickups {
		out = append(out, c)
	}
	for _, c := range g.enemies {
		out = append(out, c)
	}
	for _, c := range g.effects {
		out = append(out, c)
	}
	return out
}

// Step advances the simulation by one tick
// Pass order: player, entity ticks, enemy fire, effects vs enemies and environment,
// entities vs player, removal; events are dispatched at the end
func (g *Game) Step() {
	if g.over || g.paused {
		return
	}
	g.ticks++

	g.player.Tick()

	for _, c := range g.environment {
		c.Tick()
	}
	for _, c := range g.enemies {
		c.Tick()
	}
	for _, c := range g.effects {
		c.Tick()
	}
	for _, c := range g.pickups {
		c.Tick()
	}

	g.enemyFire()
	g.effectPass()
	g.playerPass()
	g.removalPass()

	if g.player.Dead() {
		g.over = true
		g.emit(event.EventPlayerDied, nil)
		g.log.WithField("tick", g.ticks).Info("player died")
	}

	event.Dispatch(g.events, g.listeners)
}

func (g *Game) enemyFire() {
	target := g.player.Center()
	var fired []entity.Effect
	for _, e := range g.enemies {
		shots := e.FireAt(target)
		if len(shots) == 0 {
			continue
		}
		fired = append(fired, shots...)
		g.emit(event.EventWeaponFired, &event.WeaponFiredPayload{
			Weapon:  e.Tag().String(),
			Shooter: e.ID(),
			Hostile: true,
		})
	}
	g.effects = append(g.effects, fired...)
}

func (g *Game) effectPass() {
	before := make([]int, len(g.enemies))
	for i, e := range g.enemies {
		before[i] = e.Health()
	}

	for _, fx := range g.effects {
		for _, e := range g.enemies {
			fx.InteractEnemy(e)
		}
	}
	for _, fx := range g.effects {
		for _, env := range g.environment {
			fx.InteractEnvironment(env)
		}
	}

	for i, e := range g.enemies {
		if lost := before[i] - e.Health(); lost > 0 {
			g.emit(event.EventEnemyHit, &event.EnemyHitPayload{
				Enemy:  e.ID(),
				Kind:   e.Tag().String(),
				Damage: lost,
			})
		}
	}
}

func (g *Game) playerPass() {
	p := g.player
	for _, c := range g.environment {
		c.InteractPlayer(p)
	}
	for _, c := range g.enemies {
		c.InteractPlayer(p)
	}
	for _, c := range g.effects {
		c.InteractPlayer(p)
	}
	for _, c := range g.pickups {
		c.InteractPlayer(p)
	}

	for _, h := range p.TakeHits() {
		g.emit(event.EventPlayerHit, &event.PlayerHitPayload{
			Source:     h.Source.ID(),
			SourceKind: h.Source.Tag().String(),
			Damage:     h.Damage,
			HealthLeft: p.Health().Current,
		})
		g.log.WithFields(logrus.Fields{
			"tick":   g.ticks,
			"entity": h.Source.ID(),
			"kind":   h.Source.Tag(),
			"health": p.Health().Current,
		}).Debug("player hit")
	}
}

// removalPass rebuilds each collection without entities that asked to be removed
func (g *Game) removalPass() {
	enemies := g.enemies[:0:0]
	for _, e := range g.enemies {
		if !e.ShouldRemove() {
			enemies = append(enemies, e)
			continue
		}
		g.emit(event.EventEnemyKilled, &event.EnemyKilledPayload{Enemy: e.ID(), Kind: e.Tag().String()})
		g.log.WithFields(logrus.Fields{"tick": g.ticks, "entity": e.ID(), "kind": e.Tag()}).Debug("enemy killed")
	}
	g.enemies = enemies

	effects := g.effects[:0:0]
	for _, fx := range g.effects {
		if !fx.ShouldRemove() && physics.Collides(g.bounds, fx.Body()) {
			effects = append(effects, fx)
			continue
		}
		if b, ok := fx.(*entity.Bullet); ok && b.Hit() {
			g.emit(event.EventProjectileHit, &event.ProjectileHitPayload{Projectile: b.ID(), Hostile: b.Hostile()})
		}
	}
	g.effects = effects

	pickups := g.pickups[:0:0]
	for _, c := range g.pickups {
		if !c.ShouldRemove() {
			pickups = append(pickups, c)
			continue
		}
		if a, ok := c.(*entity.AmmoPickup); ok {
			g.emit(event.EventAmmoCollected, &event.AmmoCollectedPayload{Pickup: a.ID(), Slot: a.Slot(), Amount: a.Amount()})
			g.log.WithFields(logrus.Fields{"tick": g.ticks, "slot": a.Slot(), "amount": a.Amount()}).Debug("ammo collected")
		}
	}
	g.pickups = pickups

	environment := g.environment[:0:0]
	for _, c := range g.environment {
		if !c.ShouldRemove() {
			environment = append(environment, c)
		}
	}
	g.environment = environment
}

func (g *Game) emit(t event.EventType, payload any) {
	event.Emit(g.events, t, payload, g.ticks)
}
