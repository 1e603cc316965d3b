package material

import (
	"github.com/df07/go-scene-raytracer/pkg/core"
)

// Material holds the local illumination parameters of a single shape.
// It is assigned when the scene is built and only read while rendering.
type Material struct {
	Ambient   core.Vec3 // Base color used for the ambient term and plane checkers
	Diffuse   core.Vec3 // Surface color used for the diffuse term
	Shininess float64   // Phong exponent of the specular highlight
}

// NewMaterial creates a material with the given colors and shininess
func NewMaterial(ambient, diffuse core.Vec3, shininess float64) Material {
	return Material{
		Ambient:   ambient,
		Diffuse:   diffuse,
		Shininess: shininess,
	}
}

// NewSolidMaterial creates a material whose ambient and diffuse colors are the same
func NewSolidMaterial(color core.Vec3, shininess float64) Material {
	return NewMaterial(color, color, shininess)
}

// specularCoefficient is the highlight strength shared by every material
const specularCoefficient = 0.7

// Specular returns the specular reflectance, the same gray for every material
func (m Material) Specular() core.Vec3 {
	return core.NewVec3(specularCoefficient, specularCoefficient, specularCoefficient)
}
