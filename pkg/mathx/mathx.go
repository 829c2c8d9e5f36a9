// Package mathx contains scalar helpers used across the toolkit.
package mathx

import (
	"math"
	"math/rand/v2"

	"github.com/zeusync/fpskit/pkg/vector"
)

// DefaultEpsilon is the tolerance used by ApproxEqual.
const DefaultEpsilon = 1e-4

const twoPi = 2 * math.Pi

// DegToRad converts degrees to radians.
func DegToRad(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// RadToDeg converts radians to degrees.
func RadToDeg(radians float64) float64 {
	return radians * 180 / math.Pi
}

// Distance is the Euclidean distance between two points in world space.
func Distance(a, b vector.Vector3) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	dz := b.Z - a.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// Distance2D is the Euclidean distance between two planar positions.
func Distance2D(a, b vector.Vector2) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Clamp returns min(max(value, lo), hi). NaN propagates.
func Clamp(value, lo, hi float64) float64 {
	return math.Min(math.Max(value, lo), hi)
}

// Lerp interpolates from start to end. t is not clamped.
func Lerp(start, end, t float64) float64 {
	return start + (end-start)*t
}

// Round rounds half toward positive infinity, so Round(-2.5) is -2.
func Round(x float64) float64 {
	return math.Floor(x + 0.5)
}

// RandomFloat returns a uniform value in [lo, hi).
func RandomFloat(lo, hi float64) float64 {
	return rand.Float64()*(hi-lo) + lo
}

// RandomFloatFrom is RandomFloat drawing from r.
func RandomFloatFrom(r *rand.Rand, lo, hi float64) float64 {
	return r.Float64()*(hi-lo) + lo
}

// RandomInt returns a uniform integer in [lo, hi], both ends inclusive.
func RandomInt(lo, hi int) int {
	return int(math.Floor(rand.Float64()*float64(hi-lo+1))) + lo
}

// RandomIntFrom is RandomInt drawing from r.
func RandomIntFrom(r *rand.Rand, lo, hi int) int {
	return int(math.Floor(r.Float64()*float64(hi-lo+1))) + lo
}

// NormalizeAngle wraps an angle in radians into [0, 2π) by repeatedly adding
// or subtracting 2π. The cost grows with the distance from the range and an
// infinite input never returns.
func NormalizeAngle(angle float64) float64 {
	for angle < 0 {
		angle += twoPi
	}
	for angle >= twoPi {
		angle -= twoPi
	}
	return angle
}

// ApproxEqual reports |a-b| < DefaultEpsilon.
func ApproxEqual(a, b float64) bool {
	return ApproxEqualWithin(a, b, DefaultEpsilon)
}

// ApproxEqualWithin reports |a-b| < epsilon.
func ApproxEqualWithin(a, b, epsilon float64) bool {
	return math.Abs(a-b) < epsilon
}
