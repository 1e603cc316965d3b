package renderer

import (
	"github.com/df07/go-scene-raytracer/pkg/core"
)

// The image plane is fixed in world space: x from -1 to 1 left to right,
// y from 1 to -1 top to bottom, at z = 0
var (
	screenOrigin = core.NewVec3(-1, 1, 0)
	screenU      = core.NewVec3(2, 0, 0)
	screenV      = core.NewVec3(0, -2, 0)
)

// Camera generates primary rays from a fixed origin through the image plane
type Camera struct {
	origin      core.Vec3
	pixelDeltaU core.Vec3 // World offset between horizontally adjacent pixels
	pixelDeltaV core.Vec3 // World offset between vertically adjacent pixels
}

// NewCamera creates a camera at origin for a width×height raster
func NewCamera(origin core.Vec3, width, height int) *Camera {
	return &Camera{
		origin:      origin,
		pixelDeltaU: screenU.Divide(float64(width)),
		pixelDeltaV: screenV.Divide(float64(height)),
	}
}

// GetRay returns the ray through the center of pixel (i, j)
func (c *Camera) GetRay(i, j int) core.Ray {
	return c.rayThrough(float64(i)+0.5, float64(j)+0.5)
}

// GetJitteredRay returns a ray through a random point of sub-cell (sx, sy)
// when pixel (i, j) is divided into a grid×grid lattice
func (c *Camera) GetJitteredRay(i, j, sx, sy, grid int, sampler core.Sampler) core.Ray {
	offset := core.StratifiedSample(sx, sy, grid, sampler.Get2D())
	return c.rayThrough(float64(i)+offset.X, float64(j)+offset.Y)
}

// rayThrough builds the ray toward fractional pixel coordinates (u, v)
func (c *Camera) rayThrough(u, v float64) core.Ray {
	point := screenOrigin.
		Add(c.pixelDeltaU.Multiply(u)).
		Add(c.pixelDeltaV.Multiply(v))

	return core.NewRay(c.origin, point.Subtract(c.origin))
}
