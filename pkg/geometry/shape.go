package geometry

import "github.com/df07/go-scene-raytracer/pkg/core"

// NoShape marks a HitRecord that has not been attributed to a scene shape yet
const NoShape = -1

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point      core.Vec3 // Point of intersection
	Normal     core.Vec3 // Unit surface normal at intersection (outward, never flipped)
	T          float64   // Parameter t along the ray
	ShapeIndex int       // Index of the hit shape in the scene's shape list
}

// inOpenRange reports whether tMin < t < tMax; NaN is never in range
func inOpenRange(t, tMin, tMax float64) bool {
	return t > tMin && t < tMax
}

// newHitRecord builds a record for ray at parameter t that is not yet attributed to a shape
func newHitRecord(ray core.Ray, t float64, normal core.Vec3) HitRecord {
	return HitRecord{
		Point:      ray.At(t),
		Normal:     normal,
		T:          t,
		ShapeIndex: NoShape,
	}
}
