package engine

import (
	"fmt"
	"runtime/debug"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
)

// Command is an input action applied to the game on the scheduler goroutine
type Command func(g *Game)

// ClockScheduler runs Game.Step on a fixed tick and applies queued commands between steps
// The game is touched only by the scheduler goroutine
type ClockScheduler struct {
	game  *Game
	clock *PausableClock
	log   logrus.FieldLogger

	tickInterval     time.Duration
	nextTickDeadline time.Time

	commands  chan Command
	afterTick func(*Game)

	tickCount atomic.Uint64

	stopChan chan struct{}
	stopOnce sync.Once
	done     chan struct{}
	running  atomic.Bool
	err      atomic.Value // error from a panic in the loop
}

// NewClockScheduler prepares a scheduler; afterTick, if set, runs after every step on the scheduler goroutine
func NewClockScheduler(game *Game, tickInterval time.Duration, afterTick func(*Game)) *ClockScheduler {
	return &ClockScheduler{
		game:         game,
		clock:        NewPausableClock(),
		log:          game.log.WithField("component", "scheduler"),
		tickInterval: tickInterval,
		commands:     make(chan Command, 64),
		afterTick:    afterTick,
		stopChan:     make(chan struct{}),
		done:         make(chan struct{}),
	}
}

// Submit queues a command; returns false once stopped or when the queue is full
func (cs *ClockScheduler) Submit(cmd Command) bool {
	select {
	case <-cs.stopChan:
		return false
	case <-cs.done:
		return false
	default:
	}
	select {
	case cs.commands <- cmd:
		return true
	default:
		cs.log.Warn("command queue full, input dropped")
		return false
	}
}

// Start begins the scheduler loop
func (cs *ClockScheduler) Start() {
	if cs.running.CompareAndSwap(false, true) {
		go cs.schedulerLoop()
	}
}

// Stop halts the loop and waits for it to exit
func (cs *ClockScheduler) Stop() {
	cs.stopOnce.Do(func() {
		close(cs.stopChan)
		if cs.running.Load() {
			<-cs.done
		}
	})
}

// Done is closed when the loop exits, by Stop or by a panic
func (cs *ClockScheduler) Done() <-chan struct{} { return cs.done }

// Err returns the panic that ended the loop, if any
func (cs *ClockScheduler) Err() error {
	if err, ok := cs.err.Load().(error); ok {
		return err
	}
	return nil
}

func (cs *ClockScheduler) Pause()       { cs.clock.Pause() }
func (cs *ClockScheduler) Resume()      { cs.clock.Resume() }
func (cs *ClockScheduler) Paused() bool { return cs.clock.IsPaused() }

// Ticks returns the number of steps run
func (cs *ClockScheduler) Ticks() uint64 { return cs.tickCount.Load() }

func (cs *ClockScheduler) schedulerLoop() {
	defer close(cs.done)
	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("scheduler panic: %v\n%s", r, debug.Stack())
			cs.err.Store(err)
			cs.log.WithError(err).Error("game loop crashed")
		}
	}()

	cs.nextTickDeadline = cs.clock.Now().Add(cs.tickInterval)

	timer := time.NewTimer(cs.tickInterval)
	defer timer.Stop()

	for {
		var sleepDuration time.Duration

		if cs.clock.IsPaused() {
			// Increase sleep interval while paused to save CPU
			sleepDuration = cs.tickInterval * 2
		} else {
			gameNow := cs.clock.Now()
			if !gameNow.Before(cs.nextTickDeadline) {
				cs.processTick()

				cs.nextTickDeadline = cs.nextTickDeadline.Add(cs.tickInterval)
				maxBehind := cs.tickInterval * 2
				if gameNow.Sub(cs.nextTickDeadline) > maxBehind {
					cs.nextTickDeadline = gameNow.Add(cs.tickInterval)
				}
			}
			sleepDuration = cs.nextTickDeadline.Sub(cs.clock.Now())
		}

		if sleepDuration <= 0 {
			continue
		}
		if !timer.Stop() {
			select {
			case <-timer.C:
			default:
			}
		}
		timer.Reset(sleepDuration)

		select {
		case <-cs.stopChan:
			return
		case cmd := <-cs.commands:
			cs.run(cmd)
		case <-timer.C:
		}
	}
}

// run applies cmd with the game's pause flag synced to the clock
func (cs *ClockScheduler) run(cmd Command) {
	cs.game.SetPaused(cs.clock.IsPaused())
	cmd(cs.game)
}

// processTick drains pending commands, steps the game and notifies the observer
func (cs *ClockScheduler) processTick() {
drain:
	for {
		select {
		case cmd := <-cs.commands:
			cs.run(cmd)
		default:
			break drain
		}
	}

	cs.game.SetPaused(cs.clock.IsPaused())
	cs.game.Step()
	cs.tickCount.Add(1)

	if cs.afterTick != nil {
		cs.afterTick(cs.game)
	}
}
