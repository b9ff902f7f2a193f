package parameter

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/william-cutler/platformer/vmath"
)

// ConfigEnv names the environment variable consulted when no config path is given
const ConfigEnv = "PLATFORMER_CONFIG"

// ErrInvalidConfig is returned when a config value cannot produce a playable tuning
var ErrInvalidConfig = errors.New("parameter: invalid config")

// Config holds tunables in human units (blocks, seconds) as written in YAML
type Config struct {
	BlockSize          float64 `yaml:"block_size"`
	TicksPerSecond     float64 `yaml:"ticks_per_second"`
	Gravity            float64 `yaml:"gravity"`
	TerminalSpeed      float64 `yaml:"terminal_speed"`
	MoveSpeed          float64 `yaml:"move_speed"`
	JumpSpeed          float64 `yaml:"jump_speed"`
	PatrolSpeedDivisor float64 `yaml:"patrol_speed_divisor"`
	CollisionTolerance float64 `yaml:"collision_tolerance"`

	PlayerHealth  int     `yaml:"player_health"`
	HitImmunity   float64 `yaml:"hit_immunity"`
	KnifeReload   float64 `yaml:"knife_reload"`
	KnifeSwing    float64 `yaml:"knife_swing"`
	PistolReload  float64 `yaml:"pistol_reload"`
	PistolAmmo    int     `yaml:"pistol_ammo"`
	BulletSpeed   float64 `yaml:"bullet_speed"`
	BulletSize    float64 `yaml:"bullet_size"`
	TurretHealth  int     `yaml:"turret_health"`
	TurretReload  float64 `yaml:"turret_reload"`
	ContactDamage int     `yaml:"contact_damage"`
	MaxWeapons    int     `yaml:"max_weapons"`
}

// DefaultConfig returns the stock tunables
func DefaultConfig() Config {
	return Config{
		BlockSize:          BlockSize,
		TicksPerSecond:     TicksPerSecond,
		Gravity:            GravityBlocks,
		TerminalSpeed:      TerminalSpeedBlocks,
		MoveSpeed:          MoveSpeedBlocks,
		JumpSpeed:          JumpSpeedBlocks,
		PatrolSpeedDivisor: PatrolSpeedDivisor,
		CollisionTolerance: CollisionTolerancePixels,
		PlayerHealth:       PlayerHealth,
		HitImmunity:        PlayerHitImmunitySeconds,
		KnifeReload:        KnifeReloadSeconds,
		KnifeSwing:         KnifeSwingSeconds,
		PistolReload:       PistolReloadSeconds,
		PistolAmmo:         PistolStartAmmo,
		BulletSpeed:        BulletSpeedBlocks,
		BulletSize:         BulletSizePixels,
		TurretHealth:       TurretHealth,
		TurretReload:       TurretReloadSeconds,
		ContactDamage:      ContactDamage,
		MaxWeapons:         MaxWeapons,
	}
}

// Tuning is the read-only per-tick view of Config shared by the simulation
// Speeds are pixels per tick, accelerations pixels per tick squared, timers whole ticks
type Tuning struct {
	BlockSize    float64
	TickDuration time.Duration

	Gravity            float64
	TerminalSpeed      float64
	MoveSpeed          float64
	JumpSpeed          float64
	PatrolSpeed        float64
	CollisionTolerance float64

	PlayerDim        vmath.Vec2F
	PlayerHealth     int
	HitImmunityTicks int

	KnifeReloadTicks  int
	KnifeSwingTicks   int
	PistolReloadTicks int
	PistolAmmo        int
	BulletSpeed       float64
	BulletDim         vmath.Vec2F

	TurretDim         vmath.Vec2F
	TurretHealth      int
	TurretReloadTicks int
	MeleeDim          vmath.Vec2F

	ContactDamage int
	MaxWeapons    int
}

// Default derives the stock tuning
func Default() Tuning {
	t, err := DefaultConfig().Derive()
	if err != nil {
		panic(err)
	}
	return t
}

// Derive validates c and converts it to per-tick quantities
func (c Config) Derive() (Tuning, error) {
	switch {
	case c.BlockSize <= 0:
		return Tuning{}, fmt.Errorf("%w: block_size %g", ErrInvalidConfig, c.BlockSize)
	case c.TicksPerSecond <= 0:
		return Tuning{}, fmt.Errorf("%w: ticks_per_second %g", ErrInvalidConfig, c.TicksPerSecond)
	case c.PatrolSpeedDivisor <= 0:
		return Tuning{}, fmt.Errorf("%w: patrol_speed_divisor %g", ErrInvalidConfig, c.PatrolSpeedDivisor)
	case c.BulletSize <= 0:
		return Tuning{}, fmt.Errorf("%w: bullet_size %g", ErrInvalidConfig, c.BulletSize)
	case c.PlayerHealth <= 0 || c.TurretHealth <= 0:
		return Tuning{}, fmt.Errorf("%w: health must be positive", ErrInvalidConfig)
	case c.PistolAmmo < 0 || c.ContactDamage < 0:
		return Tuning{}, fmt.Errorf("%w: negative ammo or damage", ErrInvalidConfig)
	case c.MaxWeapons < 3:
		return Tuning{}, fmt.Errorf("%w: max_weapons %d below built-in slots", ErrInvalidConfig, c.MaxWeapons)
	}
	for name, sec := range map[string]float64{
		"hit_immunity":  c.HitImmunity,
		"knife_reload":  c.KnifeReload,
		"knife_swing":   c.KnifeSwing,
		"pistol_reload": c.PistolReload,
		"turret_reload": c.TurretReload,
	} {
		if sec < 0 {
			return Tuning{}, fmt.Errorf("%w: %s %g", ErrInvalidConfig, name, sec)
		}
	}

	b := c.BlockSize
	tick := 1 / c.TicksPerSecond
	perTick := func(blocksPerSecond float64) float64 { return blocksPerSecond * b * tick }
	ticks := func(seconds float64) int { return int(seconds * c.TicksPerSecond) }

	move := perTick(c.MoveSpeed)
	return Tuning{
		BlockSize:    b,
		TickDuration: time.Duration(float64(time.Second) * tick),

		Gravity:            c.Gravity * b * tick * tick,
		TerminalSpeed:      perTick(c.TerminalSpeed),
		MoveSpeed:          move,
		JumpSpeed:          perTick(c.JumpSpeed),
		PatrolSpeed:        move / c.PatrolSpeedDivisor,
		CollisionTolerance: c.CollisionTolerance,

		PlayerDim:        vmath.V2(PlayerWidthBlocks*b, PlayerHeightBlocks*b),
		PlayerHealth:     c.PlayerHealth,
		HitImmunityTicks: ticks(c.HitImmunity),

		KnifeReloadTicks:  ticks(c.KnifeReload),
		KnifeSwingTicks:   ticks(c.KnifeSwing),
		PistolReloadTicks: ticks(c.PistolReload),
		PistolAmmo:        c.PistolAmmo,
		BulletSpeed:       perTick(c.BulletSpeed),
		BulletDim:         vmath.V2(c.BulletSize, c.BulletSize),

		TurretDim:         vmath.V2(TurretSizeBlocks*b, TurretSizeBlocks*b),
		TurretHealth:      c.TurretHealth,
		TurretReloadTicks: ticks(c.TurretReload),
		MeleeDim:          vmath.V2(MeleeWidthBlocks*b, MeleeHeightBlocks*b),

		ContactDamage: c.ContactDamage,
		MaxWeapons:    c.MaxWeapons,
	}, nil
}

// Load reads YAML overrides on top of DefaultConfig and derives the tuning
// An empty path falls back to $PLATFORMER_CONFIG, then to defaults
func Load(path string) (Tuning, error) {
	if path == "" {
		path = os.Getenv(ConfigEnv)
		if path == "" {
			return Default(), nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Tuning{}, fmt.Errorf("parameter: read %s: %w", path, err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Tuning{}, fmt.Errorf("parameter: parse %s: %w", path, err)
	}
	return cfg.Derive()
}
