package entity

import (
	"fmt"

	"github.com/william-cutler/platformer/parameter"
	"github.com/william-cutler/platformer/physics"
	"github.com/william-cutler/platformer/vmath"
)

// GroundBlock is solid terrain blocking movement from every side
type GroundBlock struct {
	base
}

// NewGroundBlock builds a block covering the rectangle at topLeft with dim
func NewGroundBlock(topLeft, dim vmath.Vec2F) (*GroundBlock, error) {
	body, err := physics.NewRect(topLeft, dim)
	if err != nil {
		return nil, err
	}
	return &GroundBlock{base: newBase(body)}, nil
}

func (g *GroundBlock) Tag() Tag { return TagGround }

func (g *GroundBlock) Tick() {}

func (g *GroundBlock) InteractPlayer(p *Player) { p.ResolveAgainst(g.body) }

func (g *GroundBlock) ShouldRemove() bool { return false }

func (g *GroundBlock) PlayerOnTop(p *Player) bool { return p.StandingOn(g.body) }

// Direction is where spike points face
type Direction uint8

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// ParseDirection accepts the String form, case-sensitive; empty means up
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "", "up":
		return DirUp, nil
	case "down":
		return DirDown, nil
	case "left":
		return DirLeft, nil
	case "right":
		return DirRight, nil
	}
	return DirUp, fmt.Errorf("entity: unknown direction %q", s)
}

// Vertical reports whether spikes point up or down, so the run is laid out horizontally
func (d Direction) Vertical() bool { return d == DirUp || d == DirDown }

// Spikes is a run of hazard blocks that blocks the player and damages on contact
type Spikes struct {
	base
	dir    Direction
	length int
	damage int
}

// NewSpikes lays length blocks from topLeft, across for vertical directions and down otherwise
func NewSpikes(topLeft vmath.Vec2F, dir Direction, length int, t parameter.Tuning) (*Spikes, error) {
	if length < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidLength, length)
	}
	dim := vmath.V2(t.BlockSize, t.BlockSize)
	if dir.Vertical() {
		dim = dim.WithX(float64(length) * t.BlockSize)
	} else {
		dim = dim.WithY(float64(length) * t.BlockSize)
	}
	body, err := physics.NewRect(topLeft, dim)
	if err != nil {
		return nil, err
	}
	return &Spikes{
		base:   newBase(body),
		dir:    dir,
		length: length,
		damage: t.ContactDamage,
	}, nil
}

func (s *Spikes) Tag() Tag { return TagSpikes }

func (s *Spikes) Direction() Direction { return s.dir }

func (s *Spikes) Length() int { return s.length }

func (s *Spikes) Tick() {}

// InteractPlayer blocks like ground, then hurts
func (s *Spikes) InteractPlayer(p *Player) {
	if !s.overlaps(p.Body()) {
		return
	}
	p.ResolveAgainst(s.body)
	p.HitBy(s, s.damage)
}

func (s *Spikes) ShouldRemove() bool { return false }

func (s *Spikes) PlayerOnTop(p *Player) bool { return p.StandingOn(s.body) }
