package geometry

import (
	"math"

	"github.com/df07/go-scene-raytracer/pkg/core"
	"github.com/df07/go-scene-raytracer/pkg/material"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material material.Material
}

// NewSphere creates a new sphere. A negative radius is stored as its absolute value.
func NewSphere(center core.Vec3, radius float64, mat material.Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   math.Abs(radius),
		Material: mat,
	}
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64) (HitRecord, bool) {
	if s.Radius == 0 {
		return HitRecord{}, false
	}

	// Half-angle form of a·t² - 2h·t + c = 0 with oc pointing from the ray origin to the center
	oc := s.Center.Subtract(ray.Origin)
	a := ray.Direction.LengthSquared()
	if a == 0 {
		return HitRecord{}, false
	}
	h := ray.Direction.Dot(oc)
	c := oc.LengthSquared() - s.Radius*s.Radius

	discriminant := h*h - a*c
	if discriminant < 0 {
		return HitRecord{}, false
	}

	sqrtD := math.Sqrt(discriminant)

	// Try the closer intersection point first
	root := (h - sqrtD) / a
	if !inOpenRange(root, tMin, tMax) {
		root = (h + sqrtD) / a
		if !inOpenRange(root, tMin, tMax) {
			return HitRecord{}, false
		}
	}

	point := ray.At(root)
	normal := point.Subtract(s.Center).Divide(s.Radius)
	return newHitRecord(ray, root, normal), true
}

// SurfaceColor returns the sphere's diffuse color; spheres are uniformly colored
func (s *Sphere) SurfaceColor(ray core.Ray, hit HitRecord) core.Vec3 {
	return s.Material.Diffuse
}

// GetMaterial returns the sphere's material
func (s *Sphere) GetMaterial() material.Material {
	return s.Material
}

// FacesLight is false: spheres keep their outward normal for every light
func (s *Sphere) FacesLight() bool {
	return false
}
