// Package level turns block-grid placement records into a playable world.
package level

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var (
	// ErrNoPlayer is returned when placements hold no player start
	ErrNoPlayer = errors.New("level: no player start")
	// ErrInvalidPlacement is returned for records that cannot be built
	ErrInvalidPlacement = errors.New("level: invalid placement")
)

// Kind selects what a placement builds
type Kind string

const (
	KindPlayer Kind = "player"
	KindGround Kind = "ground"
	KindSpikes Kind = "spikes"
	KindMelee  Kind = "melee"
	KindTurret Kind = "turret"
	KindAmmo   Kind = "ammo"
)

// Placement positions one entity on the block grid; X and Y are the top-left block
// Fields beyond X and Y apply only to the kinds noted
type Placement struct {
	Kind Kind `yaml:"kind"`
	X    int  `yaml:"x"`
	Y    int  `yaml:"y"`

	// ground: size in blocks, default 1x1
	W int `yaml:"w,omitempty"`
	H int `yaml:"h,omitempty"`

	// spikes: facing and run length in blocks, default up and 1
	Direction string `yaml:"direction,omitempty"`
	Length    int    `yaml:"length,omitempty"`

	// melee: patrol end block
	ToX int `yaml:"to_x,omitempty"`
	ToY int `yaml:"to_y,omitempty"`

	// ammo: weapon slot and rounds
	Slot   int `yaml:"slot,omitempty"`
	Amount int `yaml:"amount,omitempty"`
}

func (p Placement) String() string {
	return fmt.Sprintf("%s@(%d,%d)", p.Kind, p.X, p.Y)
}

// Level is the on-disk form of a hand-authored stage
type Level struct {
	Name       string      `yaml:"name"`
	Placements []Placement `yaml:"placements"`
}

// Load reads a YAML level file
func Load(path string) (Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Level{}, fmt.Errorf("level: read %s: %w", path, err)
	}
	var lvl Level
	if err := yaml.Unmarshal(data, &lvl); err != nil {
		return Level{}, fmt.Errorf("level: parse %s: %w", path, err)
	}
	return lvl, nil
}

// Save writes lvl as YAML, for exporting generated stages
func Save(path string, lvl Level) error {
	data, err := yaml.Marshal(lvl)
	if err != nil {
		return fmt.Errorf("level: encode: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("level: write %s: %w", path, err)
	}
	return nil
}

// Line is a one-block-thick ground run, across when horizontal and down otherwise
func Line(x, y int, horizontal bool, length int) Placement {
	if horizontal {
		return Rectangle(x, y, length, 1)
	}
	return Rectangle(x, y, 1, length)
}

// Rectangle is a w by h block of ground
func Rectangle(x, y, w, h int) Placement {
	return Placement{Kind: KindGround, X: x, Y: y, W: w, H: h}
}
