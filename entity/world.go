package entity

import (
	"github.com/william-cutler/platformer/physics"
	"github.com/william-cutler/platformer/vmath"
)

// World is a freshly built level: the player plus every starting entity
type World struct {
	Player      *Player
	Environment []Environment
	Enemies     []Enemy
	Pickups     []Component
}

// Extent is the smallest rectangle covering the player and every starting entity
func (w World) Extent() physics.Body {
	ext := w.Player.Body()
	for _, env := range w.Environment {
		ext = union(ext, env.Body())
	}
	for _, e := range w.Enemies {
		ext = union(ext, e.Body())
	}
	for _, p := range w.Pickups {
		ext = union(ext, p.Body())
	}
	return ext
}

func union(a, b physics.Body) physics.Body {
	left := min(a.Left(), b.Left())
	top := min(a.Top(), b.Top())
	right := max(a.Right(), b.Right())
	bottom := max(a.Bottom(), b.Bottom())
	return physics.MustRect(vmath.V2(left, top), vmath.V2(right-left, bottom-top))
}
