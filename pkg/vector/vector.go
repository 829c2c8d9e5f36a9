// Package vector holds the plain value types shared by the math, collision
// and game helpers. Every operation returns a fresh value; receivers are
// never modified.
package vector

import "math"

// Vector3 is a point or direction in world space.
type Vector3 struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	Z float64 `json:"z" yaml:"z"`
}

// Vector2 is a planar position.
type Vector2 struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// New creates a vector from its components.
func New(x, y, z float64) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// Zero returns the zero vector.
func Zero() Vector3 {
	return Vector3{}
}

func (v Vector3) Add(o Vector3) Vector3 {
	return Vector3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

func (v Vector3) Sub(o Vector3) Vector3 {
	return Vector3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

func (v Vector3) Scale(s float64) Vector3 {
	return Vector3{v.X * s, v.Y * s, v.Z * s}
}

// Length is the Euclidean length of v.
func (v Vector3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalize returns the unit vector pointing along v. A zero length vector
// normalizes to the zero vector.
func (v Vector3) Normalize() Vector3 {
	length := v.Length()
	if length == 0 {
		return Vector3{}
	}
	return Vector3{v.X / length, v.Y / length, v.Z / length}
}

// Dot is the scalar product of v and o.
func (v Vector3) Dot(o Vector3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross is the right handed cross product v × o.
func (v Vector3) Cross(o Vector3) Vector3 {
	return Vector3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// Function forms, for callers that prefer the namespace style.

func Add(a, b Vector3) Vector3 { return a.Add(b) }
func Sub(a, b Vector3) Vector3 { return a.Sub(b) }
func Scale(v Vector3, s float64) Vector3 { return v.Scale(s) }
func Length(v Vector3) float64 { return v.Length() }
func Normalize(v Vector3) Vector3 { return v.Normalize() }
func Dot(a, b Vector3) float64 { return a.Dot(b) }
func Cross(a, b Vector3) Vector3 { return a.Cross(b) }
