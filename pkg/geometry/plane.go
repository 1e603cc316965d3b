package geometry

import (
	"errors"
	"math"

	"github.com/df07/go-scene-raytracer/pkg/core"
	"github.com/df07/go-scene-raytracer/pkg/material"
)

// parallelEpsilon is the smallest |normal·direction| still treated as crossing the plane
const parallelEpsilon = 1e-6

// ErrDegeneratePlane is returned when a plane equation has a zero-length normal
var ErrDegeneratePlane = errors.New("plane normal has zero length")

// Plane represents the infinite plane normal·p + D = 0 with a unit normal
type Plane struct {
	Normal   core.Vec3         // Unit normal
	D        float64           // Signed offset, scaled to match the unit normal
	Material material.Material // Material of the plane
}

// NewPlane creates a plane from the equation ax + by + cz + d = 0.
// The normal and offset are divided by |(a,b,c)| so the normal is unit length.
func NewPlane(a, b, c, d float64, mat material.Material) (*Plane, error) {
	n := core.NewVec3(a, b, c)
	length := n.Length()
	if length == 0 {
		return nil, ErrDegeneratePlane
	}

	return &Plane{
		Normal:   n.Divide(length),
		D:        d / length,
		Material: mat,
	}, nil
}

// Hit tests if a ray intersects with the plane
func (p *Plane) Hit(ray core.Ray, tMin, tMax float64) (HitRecord, bool) {
	denominator := p.Normal.Dot(ray.Direction)
	if math.Abs(denominator) < parallelEpsilon {
		return HitRecord{}, false
	}

	t := -(p.Normal.Dot(ray.Origin) + p.D) / denominator
	if !inOpenRange(t, tMin, tMax) {
		return HitRecord{}, false
	}

	// The normal is reported as stored; facing it toward a light is the shader's job
	return newHitRecord(ray, t, p.Normal), true
}

// SurfaceColor returns the checker pattern of the plane's ambient color at the hit point
func (p *Plane) SurfaceColor(ray core.Ray, hit HitRecord) core.Vec3 {
	return material.Checkerboard(p.Material.Ambient, hit.Point)
}

// GetMaterial returns the plane's material
func (p *Plane) GetMaterial() material.Material {
	return p.Material
}

// FacesLight is true: planes are shaded as if they always face the incident light
func (p *Plane) FacesLight() bool {
	return true
}
