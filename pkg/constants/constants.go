// Package constants holds the game tuning table shared by the server and the
// browser client. JSON keys match the browser's GAME_CONSTANTS object; file
// formats use snake case keys.
package constants

import (
	"fmt"
	"math"
	"strings"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"
)

// Fallbacks used by the game helpers when no table is available.
const (
	FallbackWorldSize    = 200.0
	FallbackMaxRange     = 100.0
	FallbackFalloffStart = 50.0
)

// Constants is the whole tuning table.
type Constants struct {
	Player   Player   `json:"PLAYER" yaml:"player" toml:"player"`
	World    World    `json:"WORLD" yaml:"world" toml:"world"`
	Weapons  Weapons  `json:"WEAPONS" yaml:"weapons" toml:"weapons"`
	Networks Networks `json:"NETWORKS" yaml:"networks" toml:"networks"`
}

// Player tunes movement, health and mouse look.
type Player struct {
	Speed       float64 `json:"SPEED" yaml:"speed" toml:"speed"`
	Health      int     `json:"HEALTH" yaml:"health" toml:"health"`
	Height      float64 `json:"HEIGHT" yaml:"height" toml:"height"`
	Sensitivity float64 `json:"SENSITIVITY" yaml:"sensitivity" toml:"sensitivity"`
}

// World describes the square arena centered on the origin.
type World struct {
	Size        float64 `json:"SIZE" yaml:"size" toml:"size"`
	Gravity     float64 `json:"GRAVITY" yaml:"gravity" toml:"gravity"`
	GroundLevel float64 `json:"GROUND_LEVEL" yaml:"ground_level" toml:"ground_level"`
}

// Weapons lists per-weapon tuning.
type Weapons struct {
	Rifle Weapon `json:"RIFLE" yaml:"rifle" toml:"rifle"`
}

// Weapon tuning. Zero MaxRange or FalloffStart means "use the fallback".
type Weapon struct {
	Damage       float64 `json:"DAMAGE" yaml:"damage" toml:"damage"`
	Ammo         int     `json:"AMMO" yaml:"ammo" toml:"ammo"`
	BulletSpeed  float64 `json:"BULLET_SPEED" yaml:"bullet_speed" toml:"bullet_speed"`
	MaxRange     float64 `json:"MAX_RANGE,omitempty" yaml:"max_range,omitempty" toml:"max_range,omitempty"`
	FalloffStart float64 `json:"FALLOFF_START,omitempty" yaml:"falloff_start,omitempty" toml:"falloff_start,omitempty"`
}

// Networks keeps the browser table's plural name.
type Networks struct {
	UpdateRate int `json:"UPDATE_RATE" yaml:"update_rate" toml:"update_rate"`
	ServerPort int `json:"SERVER_PORT" yaml:"server_port" toml:"server_port"`
	MaxPlayers int `json:"MAX_PLAYERS" yaml:"max_players" toml:"max_players"`
}

// Default returns the stock tuning.
func Default() *Constants {
	return &Constants{
		Player: Player{
			Speed:       5,
			Health:      100,
			Height:      1.8,
			Sensitivity: 0.002,
		},
		World: World{
			Size:        FallbackWorldSize,
			Gravity:     -9.81,
			GroundLevel: 0,
		},
		Weapons: Weapons{
			Rifle: Weapon{
				Damage:      25,
				Ammo:        30,
				BulletSpeed: 100,
			},
		},
		Networks: Networks{
			UpdateRate: 60,
			ServerPort: 3000,
			MaxPlayers: 16,
		},
	}
}

// Clone returns an independent copy.
func (c *Constants) Clone() *Constants {
	cp := *c
	return &cp
}

// EffectiveSize is Size, or FallbackWorldSize when Size is zero.
func (w World) EffectiveSize() float64 {
	if w.Size == 0 {
		return FallbackWorldSize
	}
	return w.Size
}

// EffectiveMaxRange is MaxRange, or FallbackMaxRange when MaxRange is zero.
func (w Weapon) EffectiveMaxRange() float64 {
	if w.MaxRange == 0 {
		return FallbackMaxRange
	}
	return w.MaxRange
}

// EffectiveFalloffStart is FalloffStart, or FallbackFalloffStart when
// FalloffStart is zero.
func (w Weapon) EffectiveFalloffStart() float64 {
	if w.FalloffStart == 0 {
		return FallbackFalloffStart
	}
	return w.FalloffStart
}

// Validate checks that the table can drive the game helpers.
func (c *Constants) Validate() error {
	var problems []string
	for _, f := range c.floatFields() {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			problems = append(problems, fmt.Sprintf("%s must be finite, got %v", f.name, f.value))
		}
	}
	if c.World.Size <= 0 {
		problems = append(problems, fmt.Sprintf("world.size must be positive, got %v", c.World.Size))
	}
	if c.Player.Health <= 0 {
		problems = append(problems, fmt.Sprintf("player.health must be positive, got %d", c.Player.Health))
	}
	if c.Player.Speed < 0 {
		problems = append(problems, fmt.Sprintf("player.speed must not be negative, got %v", c.Player.Speed))
	}
	if c.Weapons.Rifle.Ammo <= 0 {
		problems = append(problems, fmt.Sprintf("weapons.rifle.ammo must be positive, got %d", c.Weapons.Rifle.Ammo))
	}
	if c.Weapons.Rifle.Damage < 0 {
		problems = append(problems, fmt.Sprintf("weapons.rifle.damage must not be negative, got %v", c.Weapons.Rifle.Damage))
	}
	if start, end := c.Weapons.Rifle.EffectiveFalloffStart(), c.Weapons.Rifle.EffectiveMaxRange(); start >= end {
		problems = append(problems, fmt.Sprintf("weapons.rifle falloff start %v must be below max range %v", start, end))
	}
	if c.Networks.UpdateRate <= 0 {
		problems = append(problems, fmt.Sprintf("networks.update_rate must be positive, got %d", c.Networks.UpdateRate))
	}
	if c.Networks.ServerPort < 1 || c.Networks.ServerPort > 65535 {
		problems = append(problems, fmt.Sprintf("networks.server_port out of range: %d", c.Networks.ServerPort))
	}
	if c.Networks.MaxPlayers <= 0 {
		problems = append(problems, fmt.Sprintf("networks.max_players must be positive, got %d", c.Networks.MaxPlayers))
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConstants, strings.Join(problems, "; "))
	}
	return nil
}

type floatField struct {
	name  string
	value float64
}

func (c *Constants) floatFields() []floatField {
	return []floatField{
		{"player.speed", c.Player.Speed},
		{"player.height", c.Player.Height},
		{"player.sensitivity", c.Player.Sensitivity},
		{"world.size", c.World.Size},
		{"world.gravity", c.World.Gravity},
		{"world.ground_level", c.World.GroundLevel},
		{"weapons.rifle.damage", c.Weapons.Rifle.Damage},
		{"weapons.rifle.bullet_speed", c.Weapons.Rifle.BulletSpeed},
		{"weapons.rifle.max_range", c.Weapons.Rifle.MaxRange},
		{"weapons.rifle.falloff_start", c.Weapons.Rifle.FalloffStart},
	}
}

// Fingerprint hashes every field of the table so a client can tell whether
// it runs the same tuning as the server. Non-finite values hash like any
// other value.
func (c *Constants) Fingerprint() string {
	digest := xxhash.New()
	_, _ = fmt.Fprintf(digest, "%+v", *c)
	return fmt.Sprintf("%016x", digest.Sum64())
}

var installed atomic.Pointer[Constants]

// Install publishes c as the process wide table. Only the first call wins;
// it reports whether c was installed. A copy is stored, so later changes to
// c are not visible through Provide.
func Install(c *Constants) bool {
	if c == nil {
		return false
	}
	return installed.CompareAndSwap(nil, c.Clone())
}

// Provide returns a copy of the installed table, or nil before Install.
func Provide() *Constants {
	c := installed.Load()
	if c == nil {
		return nil
	}
	return c.Clone()
}
