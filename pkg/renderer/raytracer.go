package renderer

import (
	"math"

	"github.com/df07/go-scene-raytracer/pkg/core"
	"github.com/df07/go-scene-raytracer/pkg/geometry"
	"github.com/df07/go-scene-raytracer/pkg/lights"
)

const (
	// intersectionEpsilon is the tMin of every intersection search
	intersectionEpsilon = 1e-3
	// shadowBias offsets shadow ray origins along the normal
	shadowBias = 1e-4
)

// Scene interface to avoid circular imports
type Scene interface {
	GetCameraOrigin() core.Vec3
	GetShapes() []geometry.Shape
	GetLights() []lights.Light
	GetAmbient() core.Vec3
	GetBackground() core.Vec3
	GetSamplingConfig() core.SamplingConfig
}

// Raytracer traces rays against a scene and shades the nearest hit.
// It holds no mutable state and may be shared between goroutines.
type Raytracer struct {
	scene  Scene
	camera *Camera
	config core.SamplingConfig
}

// NewRaytracer creates a new raytracer
func NewRaytracer(scene Scene) *Raytracer {
	config := scene.GetSamplingConfig()
	return &Raytracer{
		scene:  scene,
		camera: NewCamera(scene.GetCameraOrigin(), config.Width, config.Height),
		config: config,
	}
}

// ClosestHit returns the nearest intersection in (intersectionEpsilon, tMax).
// Shapes are scanned in scene order; on equal t the earlier shape wins.
func (rt *Raytracer) ClosestHit(ray core.Ray, tMax float64) (geometry.HitRecord, bool) {
	var closestHit geometry.HitRecord
	closestSoFar := tMax
	hitAnything := false

	for index, shape := range rt.scene.GetShapes() {
		hit, isHit := shape.Hit(ray, intersectionEpsilon, closestSoFar)
		if !isHit || !(hit.T < closestSoFar) {
			continue
		}
		hit.ShapeIndex = index
		closestHit = hit
		closestSoFar = hit.T
		hitAnything = true
	}

	return closestHit, hitAnything
}

// occluded reports whether anything blocks ray before tMax
func (rt *Raytracer) occluded(ray core.Ray, tMax float64) bool {
	for _, shape := range rt.scene.GetShapes() {
		if _, isHit := shape.Hit(ray, intersectionEpsilon, tMax); isHit {
			return true
		}
	}
	return false
}

// RayColor traces a primary ray and returns its shaded color
func (rt *Raytracer) RayColor(ray core.Ray) core.Vec3 {
	hit, isHit := rt.ClosestHit(ray, math.Inf(1))
	return rt.Shade(ray, hit, isHit)
}

// Shade computes ambient, diffuse and specular lighting with hard shadows at hit.
// hit must come from ClosestHit; a record without a valid ShapeIndex is shaded as a miss.
// The result is clamped to [0, 1].
func (rt *Raytracer) Shade(ray core.Ray, hit geometry.HitRecord, isHit bool) core.Vec3 {
	shapes := rt.scene.GetShapes()
	if !isHit || hit.ShapeIndex < 0 || hit.ShapeIndex >= len(shapes) {
		return rt.scene.GetBackground()
	}

	shape := shapes[hit.ShapeIndex]
	mat := shape.GetMaterial()
	baseColor := shape.SurfaceColor(ray, hit)
	toViewer := ray.Origin.Subtract(hit.Point).Normalize()

	result := rt.scene.GetAmbient().MultiplyVec(baseColor)

	for _, light := range rt.scene.GetLights() {
		sample := light.Sample(hit.Point)
		toLight := sample.Direction

		// Planes are lit from whichever side the light is on
		normal := hit.Normal
		if shape.FacesLight() && normal.Dot(toLight) < 0 {
			normal = normal.Negate()
		}

		shadowOrigin := hit.Point.Add(normal.Multiply(shadowBias))
		shadowMax := sample.Distance
		if !sample.AtInfinity() {
			shadowMax = sample.Point.Subtract(shadowOrigin).Length()
		}
		if rt.occluded(core.NewRay(shadowOrigin, toLight), shadowMax) {
			continue
		}

		diffuse := baseColor.MultiplyVec(sample.Radiance).Multiply(math.Max(normal.Dot(toLight), 0))
		result = result.Add(diffuse)

		reflected := toLight.Negate().Reflect(normal)
		highlight := math.Pow(math.Max(reflected.Dot(toViewer), 0), mat.Shininess)
		specular := mat.Specular().MultiplyVec(sample.Radiance).Multiply(highlight)
		result = result.Add(specular)
	}

	return result.Clamp(0, 1)
}

// SamplePixel adds the samples of pixel (i, j) to ps and returns the final pixel color.
// A grid size of 1 takes a single ray through the pixel center; larger grids take
// one jittered sample per sub-cell.
func (rt *Raytracer) SamplePixel(i, j int, ps *PixelStats, sampler core.Sampler) core.Vec3 {
	grid := max(1, rt.config.SamplesPerPixel)

	if grid == 1 {
		ps.AddSample(rt.RayColor(rt.camera.GetRay(i, j)))
	} else {
		for sy := 0; sy < grid; sy++ {
			for sx := 0; sx < grid; sx++ {
				ray := rt.camera.GetJitteredRay(i, j, sx, sy, grid, sampler)
				ps.AddSample(rt.RayColor(ray))
			}
		}
	}

	return rt.finalColor(ps.GetColor())
}

// finalColor clamps an averaged color and applies gamma correction when enabled
func (rt *Raytracer) finalColor(colorVec core.Vec3) core.Vec3 {
	colorVec = colorVec.Clamp(0, 1)
	if rt.config.Gamma != 1 {
		colorVec = colorVec.GammaCorrect(rt.config.Gamma)
	}
	return colorVec
}
