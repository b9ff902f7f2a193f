package entity

import (
	"github.com/william-cutler/platformer/component"
	"github.com/william-cutler/platformer/parameter"
	"github.com/william-cutler/platformer/physics"
	"github.com/william-cutler/platformer/vmath"
)

// Bullet flies in a straight line until it strikes something
// Player bullets damage enemies; hostile bullets damage the player
type Bullet struct {
	base
	velocity vmath.Vec2F
	hostile  bool
	damage   int
	hit      bool
}

// NewBullet centers a bullet on origin moving along aim at bullet speed.
// The body is offset by half its size so the shot leaves from the shooter's center, not below-right of it.
// A zero aim fires straight up
func NewBullet(origin, aim vmath.Vec2F, hostile bool, t parameter.Tuning) *Bullet {
	topLeft := origin.Add(t.BulletDim.Scale(-0.5))
	return &Bullet{
		base:     newBase(physics.MustRect(topLeft, t.BulletDim)),
		velocity: aim.ScaleTo(t.BulletSpeed),
		hostile:  hostile,
		damage:   t.ContactDamage,
	}
}

func (b *Bullet) Tag() Tag {
	if b.hostile {
		return TagEnemyBullet
	}
	return TagPlayerBullet
}

func (b *Bullet) Velocity() vmath.Vec2F { return b.velocity }

func (b *Bullet) Hostile() bool { return b.hostile }

// Hit reports whether the bullet struck something and is spent
func (b *Bullet) Hit() bool { return b.hit }

func (b *Bullet) Tick() {
	b.body = b.body.Move(b.velocity)
}

func (b *Bullet) InteractPlayer(p *Player) {
	if !b.hostile || b.hit || !b.overlaps(p.Body()) {
		return
	}
	b.hit = true
	p.HitBy(b, b.damage)
}

func (b *Bullet) InteractEnemy(e Enemy) {
	if b.hostile || b.hit || !b.overlaps(e.Body()) {
		return
	}
	b.hit = true
	e.TakeDamage(b.damage)
}

func (b *Bullet) InteractEnvironment(env Environment) {
	if b.overlaps(env.Body()) {
		b.hit = true
	}
}

func (b *Bullet) ShouldRemove() bool { return b.hit }

// KnifeSwing is a short-lived block beside the player that damages enemies it touches
type KnifeSwing struct {
	base
	life   component.Countdown
	damage int
}

// NewKnifeSwing places the swing one block right of origin, or two blocks left, raised half a block
func NewKnifeSwing(origin vmath.Vec2F, facingRight bool, t parameter.Tuning) *KnifeSwing {
	dx := t.BlockSize
	if !facingRight {
		dx = -2 * t.BlockSize
	}
	topLeft := origin.Add(vmath.V2(dx, -t.BlockSize/2))
	return &KnifeSwing{
		base:   newBase(physics.MustRect(topLeft, vmath.V2(t.BlockSize, t.BlockSize))),
		life:   component.NewCountdown(t.KnifeSwingTicks),
		damage: t.ContactDamage,
	}
}

func (k *KnifeSwing) Tag() Tag { return TagKnifeSwing }

func (k *KnifeSwing) Tick() { k.life.TickIfRunning() }

func (k *KnifeSwing) InteractPlayer(*Player) {}

// InteractEnemy damages every enemy the swing overlaps while it lives
func (k *KnifeSwing) InteractEnemy(e Enemy) {
	if k.overlaps(e.Body()) {
		e.TakeDamage(k.damage)
	}
}

func (k *KnifeSwing) InteractEnvironment(Environment) {}

func (k *KnifeSwing) ShouldRemove() bool { return k.life.Finished() }
