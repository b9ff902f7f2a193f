package render

import (
	"math"

	"github.com/william-cutler/platformer/parameter"
	"github.com/william-cutler/platformer/vmath"
)

// Camera maps world pixels onto a viewport of terminal cells
type Camera struct {
	// Origin is the world pixel shown at cell (0, 0)
	Origin vmath.Vec2F
	Width  int
	Height int
}

// NewCamera creates a camera of w x h cells at the world origin
func NewCamera(w, h int) *Camera {
	return &Camera{Width: w, Height: h}
}

// Resize changes the viewport without moving the origin
func (c *Camera) Resize(w, h int) {
	c.Width, c.Height = w, h
}

// ToCell returns the cell containing world point p; it may lie outside the viewport
func (c *Camera) ToCell(p vmath.Vec2F) (int, int) {
	return int(math.Floor((p.X - c.Origin.X) / parameter.CellWidthPx)),
		int(math.Floor((p.Y - c.Origin.Y) / parameter.CellHeightPx))
}

// ToWorld returns the world point at the center of cell (x, y)
func (c *Camera) ToWorld(x, y int) vmath.Vec2F {
	return vmath.V2(
		c.Origin.X+(float64(x)+0.5)*parameter.CellWidthPx,
		c.Origin.Y+(float64(y)+0.5)*parameter.CellHeightPx,
	)
}

// Visible reports whether cell (x, y) lies in the viewport
func (c *Camera) Visible(x, y int) bool {
	return x >= 0 && x < c.Width && y >= 0 && y < c.Height
}

// CenterOn places target in the middle of the viewport
func (c *Camera) CenterOn(target vmath.Vec2F) {
	c.Origin = vmath.V2(
		target.X-float64(c.Width)*parameter.CellWidthPx/2,
		target.Y-float64(c.Height)*parameter.CellHeightPx/2,
	)
}

// Follow scrolls just enough to keep target out of the dead zone margins.
// Margins shrink to half the viewport on small screens.
func (c *Camera) Follow(target vmath.Vec2F) {
	c.Origin.X += shift(target.X-c.Origin.X, float64(c.Width)*parameter.CellWidthPx,
		float64(min(parameter.CameraDeadZoneMarginX, c.Width/2))*parameter.CellWidthPx)
	c.Origin.Y += shift(target.Y-c.Origin.Y, float64(c.Height)*parameter.CellHeightPx,
		float64(min(parameter.CameraDeadZoneMarginY, c.Height/2))*parameter.CellHeightPx)
}

// shift returns the origin delta that brings offset back inside [margin, span-margin]
func shift(offset, span, margin float64) float64 {
	switch {
	case offset < margin:
		return offset - margin
	case offset > span-margin:
		return offset - (span - margin)
	}
	return 0
}
