package engine

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/william-cutler/platformer/entity"
	"github.com/william-cutler/platformer/vmath"
)

func TestSchedulerStepsAndAppliesCommands(t *testing.T) {
	g, _ := newGame(t, floorWorld(t))
	var observed atomic.Int64
	cs := NewClockScheduler(g, time.Millisecond, func(g *Game) { observed.Store(g.Ticks()) })
	cs.Start()
	defer cs.Stop()

	require.Eventually(t, func() bool { return cs.Ticks() >= 5 }, 2*time.Second, time.Millisecond)
	assert.Greater(t, observed.Load(), int64(0))

	applied := make(chan float64, 1)
	require.True(t, cs.Submit(func(g *Game) {
		g.MoveRight()
		applied <- g.Player().Motion.Velocity.X
	}))
	select {
	case vx := <-applied:
		assert.Equal(t, tuning.MoveSpeed, vx)
	case <-time.After(2 * time.Second):
		t.Fatal("command never ran")
	}
}

func TestSchedulerPauseHoldsTicks(t *testing.T) {
	g, _ := newGame(t, floorWorld(t))
	cs := NewClockScheduler(g, time.Millisecond, nil)
	cs.Start()
	defer cs.Stop()

	require.Eventually(t, func() bool { return cs.Ticks() >= 2 }, 2*time.Second, time.Millisecond)
	cs.Pause()
	assert.True(t, cs.Paused())
	time.Sleep(10 * time.Millisecond)
	held := cs.Ticks()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, held, cs.Ticks())

	cs.Resume()
	require.Eventually(t, func() bool { return cs.Ticks() > held }, 2*time.Second, time.Millisecond)
}

// pausedSnapshot is the gameplay state observed from inside the loop
type pausedSnapshot struct {
	ticks   int64
	effects int
	slot    int
	ammo    int
	vx, vy  float64
	paused  bool
}

func snapshot(t *testing.T, cs *ClockScheduler, cmd Command) pausedSnapshot {
	t.Helper()
	out := make(chan pausedSnapshot, 1)
	require.True(t, cs.Submit(func(g *Game) {
		if cmd != nil {
			cmd(g)
		}
		pistol, _ := g.Player().Weapons().Get(entity.SlotPistol)
		out <- pausedSnapshot{
			ticks:   g.Ticks(),
			effects: len(g.Effects()),
			slot:    g.Player().Weapons().CurrentSlot(),
			ammo:    pistol.(entity.AmmoWeapon).Ammo(),
			vx:      g.Player().Motion.Velocity.X,
			vy:      g.Player().Motion.Velocity.Y,
			paused:  g.Paused(),
		}
	}))
	select {
	case s := <-out:
		return s
	case <-time.After(2 * time.Second):
		t.Fatal("command never ran")
	}
	return pausedSnapshot{}
}

func TestSchedulerPauseDropsGameplayCommands(t *testing.T) {
	g, _ := newGame(t, floorWorld(t))
	cs := NewClockScheduler(g, time.Millisecond, nil)
	cs.Start()
	defer cs.Stop()

	require.Eventually(t, func() bool { return cs.Ticks() >= 2 }, 2*time.Second, time.Millisecond)
	cs.Pause()
	before := snapshot(t, cs, nil)
	require.True(t, before.paused)

	for _, cmd := range []Command{
		func(g *Game) { g.SelectWeapon(entity.SlotPistol) },
		func(g *Game) { g.FireAt(vmath.V2(100, 0)) },
		func(g *Game) { g.Jump() },
		func(g *Game) { g.MoveRight() },
	} {
		require.True(t, cs.Submit(cmd))
	}
	after := snapshot(t, cs, nil)

	assert.Equal(t, before.ticks, after.ticks)
	assert.Zero(t, after.effects)
	assert.Equal(t, entity.SlotNone, after.slot)
	assert.Equal(t, tuning.PistolAmmo, after.ammo)
	assert.Equal(t, before.vy, after.vy)
	assert.Equal(t, before.vx, after.vx)

	cs.Resume()
	resumed := snapshot(t, cs, func(g *Game) {
		g.SelectWeapon(entity.SlotPistol)
		g.FireAt(vmath.V2(100, 0))
	})
	assert.False(t, resumed.paused)
	assert.Equal(t, 1, resumed.effects)
	assert.Equal(t, tuning.PistolAmmo-1, resumed.ammo)
}

func TestSchedulerStop(t *testing.T) {
	g, _ := newGame(t, floorWorld(t))
	cs := NewClockScheduler(g, time.Millisecond, nil)
	cs.Start()
	cs.Stop()
	cs.Stop()

	select {
	case <-cs.Done():
	default:
		t.Fatal("loop still running after Stop")
	}
	assert.False(t, cs.Submit(func(*Game) {}))
	assert.NoError(t, cs.Err())
}

func TestSchedulerRecoversPanic(t *testing.T) {
	g, _ := newGame(t, floorWorld(t))
	cs := NewClockScheduler(g, time.Millisecond, func(*Game) { panic("boom") })
	cs.Start()

	select {
	case <-cs.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("loop did not exit")
	}
	require.Error(t, cs.Err())
	assert.Contains(t, cs.Err().Error(), "boom")
	cs.Stop()
}

func TestPausableClockFreezes(t *testing.T) {
	now := time.Unix(1000, 0)
	pc := newPausableClock(func() time.Time { return now })

	now = now.Add(time.Second)
	assert.Equal(t, time.Unix(1001, 0), pc.Now())

	pc.Pause()
	now = now.Add(5 * time.Second)
	assert.Equal(t, time.Unix(1001, 0), pc.Now())
	assert.Equal(t, 5*time.Second, pc.TotalPauseDuration())

	pc.Resume()
	now = now.Add(time.Second)
	assert.Equal(t, time.Unix(1002, 0), pc.Now())
	assert.False(t, pc.IsPaused())
}
