package lights

import (
	"math"

	"github.com/df07/go-scene-raytracer/pkg/core"
)

// DirectionalLight is a light at infinity with a constant direction and radiance
type DirectionalLight struct {
	direction core.Vec3 // Unit direction FROM the light TOWARD the scene
	radiance  core.Vec3
}

// NewDirectionalLight creates a directional light.
// direction points from the light toward the scene and is normalized here.
func NewDirectionalLight(direction, radiance core.Vec3) *DirectionalLight {
	return &DirectionalLight{
		direction: direction.Normalize(),
		radiance:  radiance,
	}
}

// Type returns the light type
func (dl *DirectionalLight) Type() LightType {
	return LightTypeDirectional
}

// Sample returns the same direction and radiance for every point
func (dl *DirectionalLight) Sample(point core.Vec3) LightSample {
	return LightSample{
		Direction: dl.direction.Negate(),
		Distance:  math.Inf(1),
		Radiance:  dl.radiance,
	}
}
