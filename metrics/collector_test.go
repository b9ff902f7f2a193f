package metrics

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/william-cutler/platformer/event"
)

func TestCollectorCountsEvents(t *testing.T) {
	c := NewCollector(3)
	assert.Equal(t, 3.0, testutil.ToFloat64(c.health))
	assert.Equal(t, len(event.Types()), testutil.CollectAndCount(c.events))

	c.HandleEvent(event.GameEvent{Type: event.EventPlayerHit, Tick: 7,
		Payload: &event.PlayerHitPayload{Damage: 1, HealthLeft: 2}})
	c.HandleEvent(event.GameEvent{Type: event.EventEnemyHit, Tick: 9,
		Payload: &event.EnemyHitPayload{Kind: "turret", Damage: 1}})
	c.HandleEvent(event.GameEvent{Type: event.EventEnemyKilled, Tick: 9,
		Payload: &event.EnemyKilledPayload{Kind: "turret"}})
	c.HandleEvent(event.GameEvent{Type: event.EventWeaponFired, Tick: 10,
		Payload: &event.WeaponFiredPayload{Weapon: "pistol"}})
	c.HandleEvent(event.GameEvent{Type: event.EventWeaponFired, Tick: 11,
		Payload: &event.WeaponFiredPayload{Weapon: "turret", Hostile: true}})
	c.HandleEvent(event.GameEvent{Type: event.EventAmmoCollected, Tick: 12,
		Payload: &event.AmmoCollectedPayload{Slot: 2, Amount: 5}})

	assert.Equal(t, 1.0, testutil.ToFloat64(c.events.WithLabelValues("player_hit")))
	assert.Equal(t, 2.0, testutil.ToFloat64(c.events.WithLabelValues("weapon_fired")))
	assert.Equal(t, 0.0, testutil.ToFloat64(c.events.WithLabelValues("player_died")))
	assert.Equal(t, 2.0, testutil.ToFloat64(c.health))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.damageTaken))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.damageDealt))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.kills.WithLabelValues("turret")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.shots.WithLabelValues("pistol", "player")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.shots.WithLabelValues("turret", "enemy")))
	assert.Equal(t, 5.0, testutil.ToFloat64(c.ammoGathered))
	assert.Equal(t, 12.0, testutil.ToFloat64(c.tick))

	c.HandleEvent(event.GameEvent{Type: event.EventPlayerDied, Tick: 13})
	assert.Equal(t, 0.0, testutil.ToFloat64(c.health))
}

func TestCollectorHandler(t *testing.T) {
	c := NewCollector(3)
	c.HandleEvent(event.GameEvent{Type: event.EventPlayerJumped, Tick: 1})

	srv := httptest.NewServer(c.Handler())
	defer srv.Close()

	resp, err := srv.Client().Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Contains(t, string(body), `platformer_events_total{type="player_jumped"} 1`)
	assert.Contains(t, string(body), "platformer_player_health 3")
}
