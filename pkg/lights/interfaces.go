package lights

import (
	"math"

	"github.com/df07/go-scene-raytracer/pkg/core"
)

type LightType string

const (
	LightTypeDirectional LightType = "directional"
	LightTypeSpot        LightType = "spot"
)

// Light interface for sources evaluated by direct lighting
type Light interface {
	Type() LightType

	// Sample evaluates the light as seen from point.
	// Direction points FROM the shading point TO the light.
	Sample(point core.Vec3) LightSample
}

// LightSample contains the light's contribution toward a specific point
type LightSample struct {
	Point     core.Vec3 // Light position (zero for lights at infinity)
	Direction core.Vec3 // Unit direction from shading point to light
	Distance  float64   // Distance to light, +Inf for lights at infinity
	Radiance  core.Vec3 // Incident radiance at the shading point
}

// AtInfinity reports whether the sampled light has no position
func (s LightSample) AtInfinity() bool {
	return math.IsInf(s.Distance, 1)
}
