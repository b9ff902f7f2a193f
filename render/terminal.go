package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/william-cutler/platformer/entity"
	"github.com/william-cutler/platformer/parameter"
	"github.com/william-cutler/platformer/parameter/visual"
	"github.com/william-cutler/platformer/physics"
	"github.com/william-cutler/platformer/vmath"
)

// Scene is the read-only view the renderer draws from
type Scene interface {
	// Components lists everything except the player in draw order
	Components() []entity.Component
	Player() *entity.Player
	Over() bool
	Ticks() int64
}

// Terminal draws a Scene onto a tcell screen with a one-row HUD below the viewport
type Terminal struct {
	screen   tcell.Screen
	camera   *Camera
	centered bool
	paused   bool
	muted    bool
}

// NewTerminal creates a renderer for screen; the camera centers on the player at the first frame
func NewTerminal(screen tcell.Screen) *Terminal {
	w, h := screen.Size()
	return &Terminal{
		screen: screen,
		camera: NewCamera(w, max(h-parameter.BottomMargin, 1)),
	}
}

func (r *Terminal) SetPaused(paused bool) { r.paused = paused }
func (r *Terminal) SetMuted(muted bool)   { r.muted = muted }

// Camera exposes the viewport mapping, used to aim with the mouse
func (r *Terminal) Camera() *Camera { return r.camera }

// ScreenToWorld converts a screen cell to the world point at its center
func (r *Terminal) ScreenToWorld(x, y int) vmath.Vec2F { return r.camera.ToWorld(x, y) }

// Render draws one full frame
func (r *Terminal) Render(s Scene) {
	w, h := r.screen.Size()
	r.camera.Resize(w, max(h-parameter.BottomMargin, 1))

	p := s.Player()
	if !r.centered {
		r.camera.CenterOn(p.Center())
		r.centered = true
	} else {
		r.camera.Follow(p.Center())
	}

	defaultStyle := tcell.StyleDefault.Background(visual.RgbBackground)
	r.screen.Fill(' ', defaultStyle)

	for _, c := range s.Components() {
		r.drawComponent(c, defaultStyle)
	}
	r.drawPlayer(p, s.Ticks(), defaultStyle)

	r.drawHUD(p, s.Ticks(), w, h-1)

	switch {
	case s.Over():
		r.drawBanner(parameter.GameOverText, w, r.camera.Height/2)
	case r.paused:
		r.drawBanner(parameter.PausedText, w, r.camera.Height/2)
	}

	r.screen.Show()
}

// cellSpan returns the inclusive cell range covered by b; every body covers at least one cell
func (r *Terminal) cellSpan(b physics.Body) (x0, y0, x1, y1 int) {
	x0, y0 = r.camera.ToCell(b.TopLeft)
	ox, oy := r.camera.Origin.X, r.camera.Origin.Y
	x1 = int(math.Ceil((b.Right()-ox)/parameter.CellWidthPx)) - 1
	y1 = int(math.Ceil((b.Bottom()-oy)/parameter.CellHeightPx)) - 1
	return x0, y0, max(x1, x0), max(y1, y0)
}

func (r *Terminal) fill(b physics.Body, ch rune, style tcell.Style) {
	x0, y0, x1, y1 := r.cellSpan(b)
	for y := max(y0, 0); y <= min(y1, r.camera.Height-1); y++ {
		for x := max(x0, 0); x <= min(x1, r.camera.Width-1); x++ {
			r.screen.SetContent(x, y, ch, nil, style)
		}
	}
}

func (r *Terminal) drawComponent(c entity.Component, defaultStyle tcell.Style) {
	ch, color := glyphFor(c)
	r.fill(c.Body(), ch, defaultStyle.Foreground(color))
}

// glyphFor picks the rune and color for a non-player component
func glyphFor(c entity.Component) (rune, tcell.Color) {
	switch c.Tag() {
	case entity.TagGround:
		return visual.GlyphGround, visual.RgbGround
	case entity.TagSpikes:
		if s, ok := c.(*entity.Spikes); ok {
			return spikeGlyph(s.Direction()), visual.RgbSpikes
		}
		return visual.GlyphSpikeUp, visual.RgbSpikes
	case entity.TagMeleeEnemy:
		return visual.GlyphMelee, visual.RgbMelee
	case entity.TagTurret:
		return visual.GlyphTurret, visual.RgbTurret
	case entity.TagPlayerBullet:
		return visual.GlyphBullet, visual.RgbPlayerShot
	case entity.TagEnemyBullet:
		return visual.GlyphBullet, visual.RgbEnemyShot
	case entity.TagKnifeSwing:
		return visual.GlyphSwing, visual.RgbKnifeSwing
	case entity.TagAmmoPickup:
		return visual.GlyphAmmo, visual.RgbAmmoPickup
	}
	return '?', visual.RgbUnknownKind
}

func spikeGlyph(d entity.Direction) rune {
	switch d {
	case entity.DirDown:
		return visual.GlyphSpikeDown
	case entity.DirLeft:
		return visual.GlyphSpikeLeft
	case entity.DirRight:
		return visual.GlyphSpikeRight
	}
	return visual.GlyphSpikeUp
}

// drawPlayer fills the body and marks the facing side of the top row; immunity blinks
func (r *Terminal) drawPlayer(p *entity.Player, tick int64, defaultStyle tcell.Style) {
	color := visual.RgbPlayer
	if p.Immune() && tick%4 < 2 {
		color = visual.RgbPlayerHurt
	}
	style := defaultStyle.Foreground(color)
	r.fill(p.Body(), visual.GlyphPlayer, style)

	x0, y0, x1, _ := r.cellSpan(p.Body())
	x, arrow := x1, visual.GlyphFacingRight
	if p.Facing().X < 0 {
		x, arrow = x0, visual.GlyphFacingLeft
	}
	if r.camera.Visible(x, y0) {
		r.screen.SetContent(x, y0, arrow, nil, style)
	}
}

// drawText writes s from (x, y), clipped to width, and returns the next column
func (r *Terminal) drawText(x, y, width int, s string, style tcell.Style) int {
	for _, ch := range s {
		if x >= width {
			break
		}
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
	return x
}

// drawHUD renders health, weapon slots, audio state and the tick counter on row y
func (r *Terminal) drawHUD(p *entity.Player, tick int64, width, y int) {
	bar := tcell.StyleDefault.Background(visual.RgbStatusBar).Foreground(visual.RgbStatusText)
	for x := 0; x < width; x++ {
		r.screen.SetContent(x, y, ' ', nil, bar)
	}

	x := 1
	hp := p.Health()
	hearts := bar.Foreground(visual.RgbHealth)
	for i := 0; i < hp.Max; i++ {
		ch := parameter.HealthFull
		if i >= hp.Current {
			ch = parameter.HealthEmpty
		}
		x = r.drawText(x, y, width, string(ch), hearts)
	}
	x++

	weapons := p.Weapons()
	for _, wp := range weapons.Slots() {
		style := bar.Background(visual.RgbSlotIdle)
		if wp.Slot() == weapons.CurrentSlot() {
			style = bar.Background(visual.RgbSlotSelected)
		}
		label := fmt.Sprintf(" %d:%s ", wp.Slot(), wp.Name())
		if aw, ok := wp.(entity.AmmoWeapon); ok {
			label = fmt.Sprintf(" %d:%s(%d) ", wp.Slot(), wp.Name(), aw.Ammo())
		}
		x = r.drawText(x, y, width, label, style) + 1
	}

	right := fmt.Sprintf("t=%d", tick)
	if r.muted {
		right += parameter.MutedStr
	} else {
		right += parameter.AudioStr
	}
	start := width - len([]rune(right)) - 1
	if start > x {
		r.drawText(start, y, width, right, bar)
	}
}

func (r *Terminal) drawBanner(text string, width, y int) {
	style := tcell.StyleDefault.Background(visual.RgbGameOverBg).Foreground(visual.RgbStatusBar).Bold(true)
	x := max((width-len([]rune(text)))/2, 0)
	r.drawText(x, y, width, text, style)
}
