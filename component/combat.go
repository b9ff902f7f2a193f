package component

import (
	"errors"
	"fmt"
)

// ErrInvalidHealth is returned when a health value falls outside [0, max] or max is not positive
var ErrInvalidHealth = errors.New("component: invalid health")

// Health tracks hit points of the player, turrets and anything else that can be worn down
type Health struct {
	// Current is always within [0, Max]
	Current int
	Max     int
}

// NewHealth returns full health
func NewHealth(max int) Health {
	h, err := NewHealthAt(max, max)
	if err != nil {
		panic(err)
	}
	return h
}

// NewHealthAt returns health starting at current, validating the range
func NewHealthAt(current, max int) (Health, error) {
	if max <= 0 {
		return Health{}, fmt.Errorf("%w: max %d", ErrInvalidHealth, max)
	}
	if current < 0 || current > max {
		return Health{}, fmt.Errorf("%w: current %d outside [0, %d]", ErrInvalidHealth, current, max)
	}
	return Health{Current: current, Max: max}, nil
}

// Change adds delta and clamps the result into [0, Max]
func (h *Health) Change(delta int) {
	h.Current += delta
	if h.Current > h.Max {
		h.Current = h.Max
	}
	if h.Current < 0 {
		h.Current = 0
	}
}

func (h Health) Depleted() bool { return h.Current == 0 }

// Fraction is Current/Max, for bars
func (h Health) Fraction() float64 {
	return float64(h.Current) / float64(h.Max)
}
