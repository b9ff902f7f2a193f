package level

import (
	"fmt"

	"github.com/william-cutler/platformer/entity"
	"github.com/william-cutler/platformer/parameter"
	"github.com/william-cutler/platformer/vmath"
)

// BlockToPixel returns the top-left pixel of block (x, y)
func BlockToPixel(x, y int, blockSize float64) vmath.Vec2F {
	return vmath.V2(float64(x)*blockSize, float64(y)*blockSize)
}

// Build constructs the world; exactly one player placement is required
func Build(t parameter.Tuning, placements []Placement) (entity.World, error) {
	var w entity.World
	at := func(x, y int) vmath.Vec2F { return BlockToPixel(x, y, t.BlockSize) }

	for i, p := range placements {
		wrap := func(err error) error {
			return fmt.Errorf("%w: #%d %s: %v", ErrInvalidPlacement, i, p, err)
		}

		switch p.Kind {
		case KindPlayer:
			if w.Player != nil {
				return entity.World{}, wrap(fmt.Errorf("second player start"))
			}
			w.Player = entity.NewPlayer(at(p.X, p.Y), t)

		case KindGround:
			cols, rows := orOne(p.W), orOne(p.H)
			g, err := entity.NewGroundBlock(at(p.X, p.Y), vmath.V2(float64(cols), float64(rows)).Scale(t.BlockSize))
			if err != nil {
				return entity.World{}, wrap(err)
			}
			w.Environment = append(w.Environment, g)

		case KindSpikes:
			dir, err := entity.ParseDirection(p.Direction)
			if err != nil {
				return entity.World{}, wrap(err)
			}
			s, err := entity.NewSpikes(at(p.X, p.Y), dir, orOne(p.Length), t)
			if err != nil {
				return entity.World{}, wrap(err)
			}
			w.Environment = append(w.Environment, s)

		case KindMelee:
			w.Enemies = append(w.Enemies, entity.NewMeleeEnemy(at(p.X, p.Y), at(p.ToX, p.ToY), t))

		case KindTurret:
			w.Enemies = append(w.Enemies, entity.NewSentryTurret(at(p.X, p.Y), t))

		case KindAmmo:
			a, err := entity.NewAmmoPickup(at(p.X, p.Y), t.BlockSize, p.Slot, p.Amount)
			if err != nil {
				return entity.World{}, wrap(err)
			}
			w.Pickups = append(w.Pickups, a)

		default:
			return entity.World{}, wrap(fmt.Errorf("unknown kind %q", p.Kind))
		}
	}

	if w.Player == nil {
		return entity.World{}, ErrNoPlayer
	}
	return w, nil
}

// orOne treats zero sizes as one block; negatives pass through and fail validation
func orOne(n int) int {
	if n == 0 {
		return 1
	}
	return n
}
