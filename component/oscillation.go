package component

import "github.com/william-cutler/platformer/vmath"

// Oscillation moves a point back and forth along the segment between From and To at a fixed speed per tick
type Oscillation struct {
	From, To vmath.Vec2F
	Speed    float64

	pos       vmath.Vec2F
	returning bool
}

// NewOscillation starts at from, heading toward to
func NewOscillation(from, to vmath.Vec2F, speed float64) Oscillation {
	return Oscillation{From: from, To: to, Speed: speed, pos: from}
}

func (o Oscillation) Position() vmath.Vec2F { return o.pos }

// Heading is the unit direction of travel; Up when From == To
func (o Oscillation) Heading() vmath.Vec2F {
	return o.pos.DisplacementTo(o.target()).Unit()
}

// Next advances one tick and returns the new position; reaching an end reverses direction
func (o *Oscillation) Next() vmath.Vec2F {
	if o.From == o.To || o.Speed <= 0 {
		return o.pos
	}
	target := o.target()
	d := o.pos.DisplacementTo(target)
	if d.Magnitude() <= o.Speed {
		o.pos = target
		o.returning = !o.returning
		return o.pos
	}
	o.pos = o.pos.Add(d.ScaleTo(o.Speed))
	return o.pos
}

func (o Oscillation) target() vmath.Vec2F {
	if o.returning {
		return o.From
	}
	return o.To
}
