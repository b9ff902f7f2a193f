package entity

import (
	"fmt"

	"github.com/william-cutler/platformer/component"
	"github.com/william-cutler/platformer/parameter"
	"github.com/william-cutler/platformer/physics"
	"github.com/william-cutler/platformer/vmath"
)

// MeleeEnemy patrols between two points, hurts the player on touch and dies to any damage
type MeleeEnemy struct {
	base
	patrol component.Oscillation
	damage int
	dead   bool
}

// NewMeleeEnemy starts at start and walks toward finish; both are top-left positions
func NewMeleeEnemy(start, finish vmath.Vec2F, t parameter.Tuning) *MeleeEnemy {
	return &MeleeEnemy{
		base:   newBase(physics.MustRect(start, t.MeleeDim)),
		patrol: component.NewOscillation(start, finish, t.PatrolSpeed),
		damage: t.ContactDamage,
	}
}

func (m *MeleeEnemy) Tag() Tag { return TagMeleeEnemy }

func (m *MeleeEnemy) Tick() {
	m.body = m.body.At(m.patrol.Next())
}

func (m *MeleeEnemy) InteractPlayer(p *Player) {
	if m.overlaps(p.Body()) {
		p.HitBy(m, m.damage)
	}
}

func (m *MeleeEnemy) ShouldRemove() bool { return m.dead }

func (m *MeleeEnemy) TakeDamage(amount int) {
	if amount < 0 {
		panic(fmt.Errorf("%w: got %d", ErrNegativeDamage, amount))
	}
	if amount > 0 {
		m.dead = true
	}
}

// FireAt never fires; melee enemies only hurt on contact
func (m *MeleeEnemy) FireAt(vmath.Vec2F) []Effect { return nil }

func (m *MeleeEnemy) Health() int {
	if m.dead {
		return 0
	}
	return 1
}

// SentryTurret is a stationary blocker that shoots at the player on a fixed reload
type SentryTurret struct {
	base
	health      component.Health
	reload      component.Countdown
	reloadTicks int
	tuning      parameter.Tuning
}

// NewSentryTurret places a turret; its first shot waits a full reload
func NewSentryTurret(topLeft vmath.Vec2F, t parameter.Tuning) *SentryTurret {
	return &SentryTurret{
		base:        newBase(physics.MustRect(topLeft, t.TurretDim)),
		health:      component.NewHealth(t.TurretHealth),
		reload:      component.NewCountdown(t.TurretReloadTicks),
		reloadTicks: t.TurretReloadTicks,
		tuning:      t,
	}
}

func (s *SentryTurret) Tag() Tag { return TagTurret }

func (s *SentryTurret) Tick() { s.reload.TickIfRunning() }

func (s *SentryTurret) InteractPlayer(p *Player) { p.ResolveAgainst(s.body) }

func (s *SentryTurret) ShouldRemove() bool { return s.health.Depleted() }

func (s *SentryTurret) TakeDamage(amount int) {
	if amount < 0 {
		panic(fmt.Errorf("%w: got %d", ErrNegativeDamage, amount))
	}
	s.health.Change(-amount)
}

func (s *SentryTurret) Health() int { return s.health.Current }

// Ready reports whether the next FireAt will shoot
func (s *SentryTurret) Ready() bool { return s.reload.Finished() }

// FireAt launches one enemy bullet from the turret center toward target when reloaded
func (s *SentryTurret) FireAt(target vmath.Vec2F) []Effect {
	if !s.reload.Finished() {
		return nil
	}
	s.reload.Reset(s.reloadTicks)
	origin := s.body.Center()
	return []Effect{NewBullet(origin, origin.DisplacementTo(target), true, s.tuning)}
}
