package entity

import (
	"fmt"
	"sort"

	"github.com/william-cutler/platformer/component"
	"github.com/william-cutler/platformer/parameter"
	"github.com/william-cutler/platformer/vmath"
)

// Built-in weapon slots
const (
	SlotNone   = 0
	SlotKnife  = 1
	SlotPistol = 2
)

// Weapon occupies one inventory slot and turns a trigger pull into effects
type Weapon interface {
	Slot() int
	Name() string
	// Fire returns the effects produced from origin along aim; empty while reloading or out of ammo
	Fire(origin, aim vmath.Vec2F) []Effect
	// Tick advances the reload timer
	Tick()
	Ready() bool
}

// AmmoWeapon is a Weapon that consumes rounds
type AmmoWeapon interface {
	Weapon
	Ammo() int
	AddAmmo(n int)
}

// NoWeapon is the empty hand in slot 0
type NoWeapon struct{}

func (NoWeapon) Slot() int                      { return SlotNone }
func (NoWeapon) Name() string                   { return "none" }
func (NoWeapon) Fire(_, _ vmath.Vec2F) []Effect { return nil }
func (NoWeapon) Tick()                          {}
func (NoWeapon) Ready() bool                    { return false }

// Knife swings a short-lived blade on the side the player aims at
type Knife struct {
	reload      component.Countdown
	reloadTicks int
	tuning      parameter.Tuning
}

func NewKnife(t parameter.Tuning) *Knife {
	return &Knife{reloadTicks: t.KnifeReloadTicks, tuning: t}
}

func (k *Knife) Slot() int    { return SlotKnife }
func (k *Knife) Name() string { return "knife" }
func (k *Knife) Ready() bool  { return k.reload.Finished() }
func (k *Knife) Tick()        { k.reload.TickIfRunning() }

func (k *Knife) Fire(origin, aim vmath.Vec2F) []Effect {
	if !k.reload.Finished() {
		return nil
	}
	k.reload.Reset(k.reloadTicks)
	return []Effect{NewKnifeSwing(origin, aim.X >= 0, k.tuning)}
}

// Pistol fires one player bullet per reload while ammo lasts
type Pistol struct {
	reload      component.Countdown
	reloadTicks int
	ammo        int
	tuning      parameter.Tuning
}

func NewPistol(t parameter.Tuning) *Pistol {
	return &Pistol{reloadTicks: t.PistolReloadTicks, ammo: t.PistolAmmo, tuning: t}
}

func (p *Pistol) Slot() int    { return SlotPistol }
func (p *Pistol) Name() string { return "pistol" }
func (p *Pistol) Ready() bool  { return p.reload.Finished() && p.ammo > 0 }
func (p *Pistol) Tick()        { p.reload.TickIfRunning() }
func (p *Pistol) Ammo() int    { return p.ammo }

func (p *Pistol) AddAmmo(n int) {
	if n < 0 {
		panic(fmt.Errorf("%w: got %d", ErrNegativeAmmo, n))
	}
	p.ammo += n
}

func (p *Pistol) Fire(origin, aim vmath.Vec2F) []Effect {
	if !p.Ready() {
		return nil
	}
	p.reload.Reset(p.reloadTicks)
	p.ammo--
	return []Effect{NewBullet(origin, aim, false, p.tuning)}
}

// Weaponry is the player's inventory: at most one weapon per slot and one active slot
// Slots are never emptied once filled
type Weaponry struct {
	weapons  map[int]Weapon
	current  int
	maxSlots int
}

// NewWeaponry starts with empty hand, knife and pistol, empty hand selected
func NewWeaponry(t parameter.Tuning) *Weaponry {
	return &Weaponry{
		weapons: map[int]Weapon{
			SlotNone:   NoWeapon{},
			SlotKnife:  NewKnife(t),
			SlotPistol: NewPistol(t),
		},
		current:  SlotNone,
		maxSlots: t.MaxWeapons,
	}
}

// Select switches the active slot; unknown slots are ignored
func (w *Weaponry) Select(slot int) bool {
	if _, ok := w.weapons[slot]; !ok {
		return false
	}
	w.current = slot
	return true
}

func (w *Weaponry) CurrentSlot() int { return w.current }

func (w *Weaponry) Current() Weapon { return w.weapons[w.current] }

// Get returns the weapon in slot, if held
func (w *Weaponry) Get(slot int) (Weapon, bool) {
	wp, ok := w.weapons[slot]
	return wp, ok
}

// AddWeapon fills an empty slot; weapons already held or out-of-range slots are ignored
func (w *Weaponry) AddWeapon(wp Weapon) bool {
	slot := wp.Slot()
	if slot < 0 || slot >= w.maxSlots {
		return false
	}
	if _, ok := w.weapons[slot]; ok {
		return false
	}
	w.weapons[slot] = wp
	return true
}

// AddAmmo adds n rounds to the weapon in slot if it takes ammo; negative n panics
func (w *Weaponry) AddAmmo(slot, n int) {
	if n < 0 {
		panic(fmt.Errorf("%w: got %d", ErrNegativeAmmo, n))
	}
	if aw, ok := w.weapons[slot].(AmmoWeapon); ok {
		aw.AddAmmo(n)
	}
}

// Tick advances every held weapon's reload
func (w *Weaponry) Tick() {
	for _, wp := range w.weapons {
		wp.Tick()
	}
}

// Slots returns held weapons ordered by slot, for the HUD
func (w *Weaponry) Slots() []Weapon {
	slots := make([]int, 0, len(w.weapons))
	for s := range w.weapons {
		slots = append(slots, s)
	}
	sort.Ints(slots)
	out := make([]Weapon, 0, len(slots))
	for _, s := range slots {
		out = append(out, w.weapons[s])
	}
	return out
}
