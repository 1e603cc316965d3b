package lights

import (
	"github.com/df07/go-scene-raytracer/pkg/core"
)

// SpotLight is a point light restricted to a cone with a hard edge
type SpotLight struct {
	position  core.Vec3 // Light position in world space
	direction core.Vec3 // Normalized cone axis, from the light toward the scene
	cutoff    float64   // Cosine of the cone half-angle
	radiance  core.Vec3 // Radiance inside the cone
}

// NewSpotLight creates a spot light.
// cosCutoff is the cosine of the cone half-angle and is clamped to [-1, 1].
func NewSpotLight(position, direction core.Vec3, cosCutoff float64, radiance core.Vec3) *SpotLight {
	return &SpotLight{
		position:  position,
		direction: direction.Normalize(),
		cutoff:    max(-1, min(1, cosCutoff)),
		radiance:  radiance,
	}
}

// Type returns the light type
func (sl *SpotLight) Type() LightType {
	return LightTypeSpot
}

// Sample returns the direction toward the light and the radiance arriving at point
func (sl *SpotLight) Sample(point core.Vec3) LightSample {
	toLightVec := sl.position.Subtract(point)
	distance := toLightVec.Length()

	if distance == 0 {
		// Point is exactly at light position: no defined direction, no light
		return LightSample{
			Point:     sl.position,
			Direction: sl.direction.Negate(),
			Distance:  0,
		}
	}

	toLight := toLightVec.Divide(distance)

	return LightSample{
		Point:     sl.position,
		Direction: toLight,
		Distance:  distance,
		Radiance:  sl.RadianceAt(point),
	}
}

// RadianceAt returns the full radiance inside the cone and zero outside it
func (sl *SpotLight) RadianceAt(point core.Vec3) core.Vec3 {
	lightToPoint := point.Subtract(sl.position).Normalize()
	if lightToPoint.Dot(sl.direction) < sl.cutoff {
		return core.Vec3{}
	}
	return sl.radiance
}
