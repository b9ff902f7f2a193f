package main

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/william-cutler/platformer/engine"
	"github.com/william-cutler/platformer/parameter"
	"github.com/william-cutler/platformer/render"
)

// scheduler is the part of engine.ClockScheduler the controls drive
type scheduler interface {
	Submit(engine.Command) bool
	Pause()
	Resume()
	Paused() bool
}

type muter interface {
	SetMuted(bool)
	Muted() bool
}

// controls maps terminal input onto game commands.
// It runs on the input goroutine; everything touching the game or the view goes through Submit.
type controls struct {
	sched scheduler
	view  *render.Terminal
	sound muter
	now   func() time.Time

	moving bool
	haltAt time.Time
}

func newControls(sched scheduler, view *render.Terminal, sound muter) *controls {
	return &controls{sched: sched, view: view, sound: sound, now: time.Now}
}

// handle applies one terminal event and reports whether the player asked to quit
func (c *controls) handle(ev tcell.Event) (quit bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return c.handleKey(ev)
	case *tcell.EventMouse:
		c.handleMouse(ev)
	case *tcell.EventResize:
		c.redraw()
	}
	return false
}

func (c *controls) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyLeft:
		c.move(false)
		return false
	case tcell.KeyRight:
		c.move(true)
		return false
	case tcell.KeyUp:
		c.sched.Submit(func(g *engine.Game) { g.Jump() })
		return false
	case tcell.KeyRune:
	default:
		return false
	}

	switch r := ev.Rune(); {
	case r == 'q':
		return true
	case r == 'a':
		c.move(false)
	case r == 'd':
		c.move(true)
	case r == 's':
		c.moving = false
		c.sched.Submit(func(g *engine.Game) { g.Halt() })
	case r == ' ' || r == 'w':
		c.sched.Submit(func(g *engine.Game) { g.Jump() })
	case r >= '0' && r <= '9':
		slot := int(r - '0')
		c.sched.Submit(func(g *engine.Game) { g.SelectWeapon(slot) })
		c.redraw()
	case r == 'p':
		c.togglePause()
	case r == 'm':
		c.toggleMute()
	}
	return false
}

// move starts or sustains walking; key repeats push the auto-halt deadline out
func (c *controls) move(right bool) {
	c.moving = true
	c.haltAt = c.now().Add(parameter.AutoHaltDelay)
	c.sched.Submit(func(g *engine.Game) {
		if right {
			g.MoveRight()
		} else {
			g.MoveLeft()
		}
	})
}

// tick halts the player once move keys stop repeating
func (c *controls) tick() {
	if c.moving && !c.now().Before(c.haltAt) {
		c.moving = false
		c.sched.Submit(func(g *engine.Game) { g.Halt() })
	}
}

func (c *controls) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	fire := ev.Buttons()&tcell.Button1 != 0
	view := c.view
	c.sched.Submit(func(g *engine.Game) {
		target := view.ScreenToWorld(x, y)
		g.FaceToward(target)
		if fire {
			g.FireAt(target)
		}
	})
}

func (c *controls) togglePause() {
	paused := !c.sched.Paused()
	if paused {
		c.sched.Pause()
	} else {
		c.sched.Resume()
	}
	view := c.view
	c.sched.Submit(func(*engine.Game) { view.SetPaused(paused) })
	c.redraw()
}

func (c *controls) toggleMute() {
	if c.sound == nil {
		return
	}
	muted := !c.sound.Muted()
	c.sound.SetMuted(muted)
	view := c.view
	c.sched.Submit(func(*engine.Game) { view.SetMuted(muted) })
	c.redraw()
}

// redraw renders outside the tick, needed while paused
func (c *controls) redraw() {
	view := c.view
	c.sched.Submit(func(g *engine.Game) { view.Render(g) })
}
