// Package utils gathers every helper group behind one value, for callers that
// want a single handle (scripting hosts, the injector) instead of importing
// each package.
package utils

import (
	"time"

	"github.com/zeusync/fpskit/pkg/collision"
	"github.com/zeusync/fpskit/pkg/color"
	"github.com/zeusync/fpskit/pkg/constants"
	"github.com/zeusync/fpskit/pkg/game"
	"github.com/zeusync/fpskit/pkg/general"
	"github.com/zeusync/fpskit/pkg/mathx"
	"github.com/zeusync/fpskit/pkg/vector"
)

type Namespace struct {
	Math      MathGroup
	Vector    VectorGroup
	Collision CollisionGroup
	General   GeneralGroup
	Color     ColorGroup
	Game      GameGroup
}

type MathGroup struct {
	DegToRad          func(degrees float64) float64
	RadToDeg          func(radians float64) float64
	Distance          func(a, b vector.Vector3) float64
	Distance2D        func(a, b vector.Vector2) float64
	Clamp             func(value, lo, hi float64) float64
	Lerp              func(start, end, t float64) float64
	RandomFloat       func(lo, hi float64) float64
	RandomInt         func(lo, hi int) int
	NormalizeAngle    func(angle float64) float64
	ApproxEqual       func(a, b float64) bool
	ApproxEqualWithin func(a, b, epsilon float64) bool
}

type VectorGroup struct {
	Create    func(x, y, z float64) vector.Vector3
	Add       func(a, b vector.Vector3) vector.Vector3
	Subtract  func(a, b vector.Vector3) vector.Vector3
	Multiply  func(v vector.Vector3, s float64) vector.Vector3
	Length    func(v vector.Vector3) float64
	Normalize func(v vector.Vector3) vector.Vector3
	Dot       func(a, b vector.Vector3) float64
	Cross     func(a, b vector.Vector3) vector.Vector3
}

type CollisionGroup struct {
	PointInSphere func(point, center vector.Vector3, radius float64) bool
	PointInBox    func(point, boxMin, boxMax vector.Vector3) bool
	RaySphere     func(origin, direction, center vector.Vector3, radius float64) (collision.Hit, bool)
	SphereSphere  func(centerA vector.Vector3, radiusA float64, centerB vector.Vector3, radiusB float64) bool
}

type GeneralGroup struct {
	FormatNumber func(value float64, decimals int) float64
	FormatTime   func(seconds float64) string
	GenerateID   func() string
	DeepClone    func(value any) (any, error)
	IsEmpty      func(record map[string]any) bool
	Debounce     func(fn func(any), wait time.Duration) *general.Debouncer[any]
	Throttle     func(fn func(any), limit time.Duration) *general.Throttler[any]
}

type ColorGroup struct {
	HexToRGB  func(hex string) (color.RGB, bool)
	RGBToHex  func(r, g, b int) string
	LerpColor func(from, to string, t float64) string
}

// GameGroup is bound to the table the Namespace was built with.
type GameGroup struct {
	Constants        *constants.Constants
	CalculateDamage  func(base, distance float64) float64
	IsInBounds       func(position vector.Vector3) bool
	ClampToBounds    func(position vector.Vector3) vector.Vector3
	HealthPercentage func(current, maxHealth float64) float64
}

// New builds a namespace whose game helpers read c. A nil c gives the
// fallback behavior of package game.
func New(c *constants.Constants) *Namespace {
	return &Namespace{
		Math: MathGroup{
			DegToRad:          mathx.DegToRad,
			RadToDeg:          mathx.RadToDeg,
			Distance:          mathx.Distance,
			Distance2D:        mathx.Distance2D,
			Clamp:             mathx.Clamp,
			Lerp:              mathx.Lerp,
			RandomFloat:       mathx.RandomFloat,
			RandomInt:         mathx.RandomInt,
			NormalizeAngle:    mathx.NormalizeAngle,
			ApproxEqual:       mathx.ApproxEqual,
			ApproxEqualWithin: mathx.ApproxEqualWithin,
		},
		Vector: VectorGroup{
			Create:    vector.New,
			Add:       vector.Add,
			Subtract:  vector.Sub,
			Multiply:  vector.Scale,
			Length:    vector.Length,
			Normalize: vector.Normalize,
			Dot:       vector.Dot,
			Cross:     vector.Cross,
		},
		Collision: CollisionGroup{
			PointInSphere: collision.PointInSphere,
			PointInBox:    collision.PointInBox,
			RaySphere:     collision.RaySphere,
			SphereSphere:  collision.SphereSphere,
		},
		General: GeneralGroup{
			FormatNumber: general.FormatNumber,
			FormatTime:   general.FormatTime,
			GenerateID:   general.GenerateID,
			DeepClone:    general.DeepClone,
			IsEmpty:      general.IsEmpty[string, any],
			Debounce: func(fn func(any), wait time.Duration) *general.Debouncer[any] {
				return general.NewDebouncer(fn, wait)
			},
			Throttle: func(fn func(any), limit time.Duration) *general.Throttler[any] {
				return general.NewThrottler(fn, limit)
			},
		},
		Color: ColorGroup{
			HexToRGB:  color.HexToRGB,
			RGBToHex:  color.RGBToHex,
			LerpColor: color.LerpColor,
		},
		Game: GameGroup{
			Constants: c,
			CalculateDamage: func(base, distance float64) float64 {
				return game.CalculateDamage(c, base, distance)
			},
			IsInBounds: func(position vector.Vector3) bool {
				return game.IsInBounds(c, position)
			},
			ClampToBounds: func(position vector.Vector3) vector.Vector3 {
				return game.ClampToBounds(c, position)
			},
			HealthPercentage: game.HealthPercentage,
		},
	}
}

// Global builds a namespace over the table installed with
// constants.Install, or over no table if none is installed yet.
func Global() *Namespace {
	return New(constants.Provide())
}
