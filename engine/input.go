package engine

import (
	"github.com/sirupsen/logrus"

	"github.com/william-cutler/platformer/event"
	"github.com/william-cutler/platformer/vmath"
)

// Input handlers; each is a no-op while paused, once the game is over, or when its precondition fails

// SetPaused freezes gameplay input and stepping; the scheduler keeps it in sync with its clock
func (g *Game) SetPaused(paused bool) { g.paused = paused }

func (g *Game) Paused() bool { return g.paused }

func (g *Game) inputLocked() bool { return g.over || g.paused }

func (g *Game) MoveLeft() {
	if !g.inputLocked() {
		g.player.MoveLeft()
	}
}

func (g *Game) MoveRight() {
	if !g.inputLocked() {
		g.player.MoveRight()
	}
}

func (g *Game) Halt() {
	if !g.inputLocked() {
		g.player.Halt()
	}
}

// Resting reports whether the player stands on any environment piece
func (g *Game) Resting() bool {
	for _, env := range g.environment {
		if env.PlayerOnTop(g.player) {
			return true
		}
	}
	return false
}

// Jump launches the player only while resting
func (g *Game) Jump() bool {
	if g.inputLocked() || !g.Resting() {
		return false
	}
	g.player.Jump()
	g.emit(event.EventPlayerJumped, nil)
	return true
}

// SelectWeapon switches the active slot; unknown slots are ignored
func (g *Game) SelectWeapon(slot int) {
	if g.inputLocked() {
		return
	}
	if g.player.Weapons().Select(slot) {
		g.log.WithField("slot", slot).Debug("weapon selected")
	}
}

// FaceToward turns the player's aim without firing
func (g *Game) FaceToward(point vmath.Vec2F) {
	if !g.inputLocked() {
		g.player.FaceToward(point)
	}
}

// FireAt discharges the active weapon toward point; spawned effects join the next step
func (g *Game) FireAt(point vmath.Vec2F) {
	if g.inputLocked() {
		return
	}
	weapon := g.player.Weapons().Current()
	fired := g.player.FireAt(point)
	if len(fired) == 0 {
		return
	}
	g.effects = append(g.effects, fired...)
	g.emit(event.EventWeaponFired, &event.WeaponFiredPayload{
		Weapon:  weapon.Name(),
		Shooter: g.player.ID(),
	})
	g.log.WithFields(logrus.Fields{"tick": g.ticks, "weapon": weapon.Name()}).Debug("player fired")
}
