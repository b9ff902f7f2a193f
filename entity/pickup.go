package entity

import (
	"fmt"

	"github.com/william-cutler/platformer/physics"
	"github.com/william-cutler/platformer/vmath"
)

// AmmoPickup refills the weapon in one slot when the player touches it
type AmmoPickup struct {
	base
	slot   int
	amount int
	taken  bool
}

// NewAmmoPickup places a pickup of side size at topLeft
func NewAmmoPickup(topLeft vmath.Vec2F, size float64, slot, amount int) (*AmmoPickup, error) {
	if amount < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNegativeAmmo, amount)
	}
	body, err := physics.NewRect(topLeft, vmath.V2(size, size))
	if err != nil {
		return nil, err
	}
	return &AmmoPickup{base: newBase(body), slot: slot, amount: amount}, nil
}

func (a *AmmoPickup) Tag() Tag { return TagAmmoPickup }

func (a *AmmoPickup) Slot() int { return a.slot }

func (a *AmmoPickup) Amount() int { return a.amount }

func (a *AmmoPickup) Taken() bool { return a.taken }

func (a *AmmoPickup) Tick() {}

// InteractPlayer transfers the ammo once; touching a taken pickup is a lifecycle bug
func (a *AmmoPickup) InteractPlayer(p *Player) {
	if !a.overlaps(p.Body()) {
		return
	}
	if a.taken {
		panic(fmt.Errorf("%w: %s", ErrPickupTaken, a.id))
	}
	p.AddAmmo(a.slot, a.amount)
	a.taken = true
}

func (a *AmmoPickup) ShouldRemove() bool { return a.taken }
