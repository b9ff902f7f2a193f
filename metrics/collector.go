// Package metrics exports game events as Prometheus metrics.
package metrics

import (
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/william-cutler/platformer/event"
)

const namespace = "platformer"

// Collector turns the event stream into counters and gauges on its own registry
type Collector struct {
	registry *prometheus.Registry

	events       *prometheus.CounterVec
	kills        *prometheus.CounterVec
	shots        *prometheus.CounterVec
	damageTaken  prometheus.Counter
	damageDealt  prometheus.Counter
	ammoGathered prometheus.Counter
	health       prometheus.Gauge
	tick         prometheus.Gauge
}

// NewCollector creates and registers all metrics; startHealth seeds the health gauge
func NewCollector(startHealth int) *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_total",
			Help:      "Game events dispatched, by type.",
		}, []string{"type"}),
		kills: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "enemies_killed_total",
			Help:      "Enemies removed after losing all health, by kind.",
		}, []string{"kind"}),
		shots: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "weapon_fired_total",
			Help:      "Weapon discharges, by weapon and side.",
		}, []string{"weapon", "side"}),
		damageTaken: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "player_damage_taken_total",
			Help:      "Damage applied to the player.",
		}),
		damageDealt: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "enemy_damage_dealt_total",
			Help:      "Damage applied to enemies.",
		}),
		ammoGathered: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ammo_collected_total",
			Help:      "Rounds added by pickups.",
		}),
		health: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "player_health",
			Help:      "Current player health.",
		}),
		tick: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "tick",
			Help:      "Tick of the latest dispatched event.",
		}),
	}

	c.registry.MustRegister(c.events, c.kills, c.shots, c.damageTaken, c.damageDealt,
		c.ammoGathered, c.health, c.tick)
	c.health.Set(float64(startHealth))

	// Pre-create label values so every type shows up at zero
	for _, t := range event.Types() {
		c.events.WithLabelValues(t.String())
	}
	return c
}

// Registry exposes the underlying registry
func (c *Collector) Registry() *prometheus.Registry { return c.registry }

// HandleEvent implements event.Listener
func (c *Collector) HandleEvent(ev event.GameEvent) {
	c.events.WithLabelValues(ev.Type.String()).Inc()
	c.tick.Set(float64(ev.Tick))

	switch p := ev.Payload.(type) {
	case *event.PlayerHitPayload:
		c.damageTaken.Add(float64(p.Damage))
		c.health.Set(float64(p.HealthLeft))
	case *event.EnemyHitPayload:
		c.damageDealt.Add(float64(p.Damage))
	case *event.EnemyKilledPayload:
		c.kills.WithLabelValues(p.Kind).Inc()
	case *event.WeaponFiredPayload:
		side := "player"
		if p.Hostile {
			side = "enemy"
		}
		c.shots.WithLabelValues(p.Weapon, side).Inc()
	case *event.AmmoCollectedPayload:
		c.ammoGathered.Add(float64(p.Amount))
	}

	if ev.Type == event.EventPlayerDied {
		c.health.Set(0)
	}
}

// Handler serves the registry in the Prometheus exposition format
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// Serve starts a /metrics endpoint on addr in the background; Close the returned server to stop it
func (c *Collector) Serve(addr string, log logrus.FieldLogger) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", c.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		log.WithField("addr", addr).Info("metrics endpoint listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Error("metrics server stopped")
		}
	}()
	return srv
}
