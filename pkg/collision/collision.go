// Package collision implements the geometric tests used for hit detection.
package collision

import (
	"math"

	"github.com/zeusync/fpskit/pkg/mathx"
	"github.com/zeusync/fpskit/pkg/vector"
)

// Hit describes where a ray first meets a sphere.
type Hit struct {
	Distance float64        `json:"distance"`
	Point    vector.Vector3 `json:"point"`
}

// PointInSphere reports whether point lies inside or on the sphere.
func PointInSphere(point, center vector.Vector3, radius float64) bool {
	return mathx.Distance(point, center) <= radius
}

// PointInBox reports whether point lies within the axis aligned box spanned
// by boxMin and boxMax. All faces are inclusive.
func PointInBox(point, boxMin, boxMax vector.Vector3) bool {
	return point.X >= boxMin.X && point.X <= boxMax.X &&
		point.Y >= boxMin.Y && point.Y <= boxMax.Y &&
		point.Z >= boxMin.Z && point.Z <= boxMax.Z
}

// RaySphere intersects a ray with a sphere and reports the near root only.
// When that root is not in front of the origin there is no hit, which means a
// ray starting inside the sphere never hits it. Direction need not be unit
// length; Distance is then measured in multiples of direction.
func RaySphere(origin, direction, center vector.Vector3, radius float64) (Hit, bool) {
	oc := origin.Sub(center)
	a := direction.Dot(direction)
	b := 2 * oc.Dot(direction)
	c := oc.Dot(oc) - radius*radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return Hit{}, false
	}

	t := (-b - math.Sqrt(discriminant)) / (2 * a)
	if t > 0 {
		return Hit{
			Distance: t,
			Point:    origin.Add(direction.Scale(t)),
		}, true
	}
	return Hit{}, false
}

// SphereSphere reports whether two spheres touch or overlap.
func SphereSphere(centerA vector.Vector3, radiusA float64, centerB vector.Vector3, radiusB float64) bool {
	return mathx.Distance(centerA, centerB) <= radiusA+radiusB
}
