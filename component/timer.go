package component

import (
	"errors"
	"fmt"
)

// ErrCountdownFinished is raised when ticking a countdown that already reached zero
var ErrCountdownFinished = errors.New("component: countdown already finished")

// ErrNegativeCountdown is raised when a countdown is started below zero
var ErrNegativeCountdown = errors.New("component: countdown must be non-negative")

// Countdown counts whole ticks down to zero; used for reloads, hit immunity and short-lived effects
type Countdown struct {
	ticksLeft int
}

// NewCountdown returns a countdown with ticks remaining
func NewCountdown(ticks int) Countdown {
	if ticks < 0 {
		panic(fmt.Errorf("%w: got %d", ErrNegativeCountdown, ticks))
	}
	return Countdown{ticksLeft: ticks}
}

// Tick consumes one tick; ticking a finished countdown is a caller bug
func (c *Countdown) Tick() {
	if c.ticksLeft == 0 {
		panic(ErrCountdownFinished)
	}
	c.ticksLeft--
}

// TickIfRunning ticks only when time remains
func (c *Countdown) TickIfRunning() {
	if c.ticksLeft > 0 {
		c.ticksLeft--
	}
}

// Reset restarts the countdown at ticks
func (c *Countdown) Reset(ticks int) {
	if ticks < 0 {
		panic(fmt.Errorf("%w: got %d", ErrNegativeCountdown, ticks))
	}
	c.ticksLeft = ticks
}

func (c Countdown) Finished() bool { return c.ticksLeft == 0 }

func (c Countdown) Remaining() int { return c.ticksLeft }
