package geometry

import (
	"github.com/df07/go-scene-raytracer/pkg/core"
	"github.com/df07/go-scene-raytracer/pkg/material"
)

// Shape interface for objects that can be hit by rays
type Shape interface {
	// Hit reports the nearest intersection with t strictly inside (tMin, tMax)
	Hit(ray core.Ray, tMin, tMax float64) (HitRecord, bool)

	// SurfaceColor returns the base color at a hit point on this shape
	SurfaceColor(ray core.Ray, hit HitRecord) core.Vec3

	// GetMaterial returns the material owned by this shape
	GetMaterial() material.Material

	// FacesLight reports whether the shader should flip the normal toward each light
	FacesLight() bool
}
