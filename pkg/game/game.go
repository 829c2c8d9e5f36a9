// Package game implements tuning helpers driven by the constants table.
// Every function takes the table explicitly; a nil table means none is
// loaded, and each helper then degrades to a documented fallback instead of
// failing.
package game

import (
	"github.com/zeusync/fpskit/pkg/constants"
	"github.com/zeusync/fpskit/pkg/mathx"
	"github.com/zeusync/fpskit/pkg/vector"
)

// CalculateDamage applies rifle damage falloff. Within the falloff start the
// full base damage applies, at or beyond max range nothing does, and in
// between damage drops linearly and is rounded to a whole number. With no
// table, base is returned unchanged.
func CalculateDamage(c *constants.Constants, base, distance float64) float64 {
	if c == nil {
		return base
	}

	falloffStart := c.Weapons.Rifle.EffectiveFalloffStart()
	maxRange := c.Weapons.Rifle.EffectiveMaxRange()

	if distance <= falloffStart {
		return base
	}
	if distance >= maxRange {
		return 0
	}

	factor := 1 - (distance-falloffStart)/(maxRange-falloffStart)
	return mathx.Round(base * factor)
}

// IsInBounds reports whether the horizontal position (x, z) is inside the
// square world centered on the origin; a zero world size falls back to
// constants.FallbackWorldSize. Height is ignored. With no table every
// position is in bounds.
func IsInBounds(c *constants.Constants, position vector.Vector3) bool {
	if c == nil {
		return true
	}
	half := c.World.EffectiveSize() / 2
	return position.X >= -half && position.X <= half &&
		position.Z >= -half && position.Z <= half
}

// ClampToBounds pulls x and z back inside the world and leaves y alone. With
// no table the position is returned as is.
func ClampToBounds(c *constants.Constants, position vector.Vector3) vector.Vector3 {
	if c == nil {
		return position
	}
	half := c.World.EffectiveSize() / 2
	return vector.Vector3{
		X: mathx.Clamp(position.X, -half, half),
		Y: position.Y,
		Z: mathx.Clamp(position.Z, -half, half),
	}
}

// HealthPercentage is current/maxHealth as a percentage clamped to [0, 100].
func HealthPercentage(current, maxHealth float64) float64 {
	return mathx.Clamp(current/maxHealth*100, 0, 100)
}
