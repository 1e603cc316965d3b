package scene

import (
	"fmt"

	"github.com/df07/go-scene-raytracer/pkg/core"
	"github.com/df07/go-scene-raytracer/pkg/geometry"
	"github.com/df07/go-scene-raytracer/pkg/lights"
	"github.com/df07/go-scene-raytracer/pkg/material"
)

// Scene contains all the elements needed for rendering.
// It is built once and treated as read-only while a render is running.
type Scene struct {
	CameraOrigin   core.Vec3
	Shapes         []geometry.Shape // Objects in the scene, scanned in order
	Lights         []lights.Light   // Lights in the scene
	Ambient        core.Vec3        // Ambient light color
	Background     core.Vec3        // Color of rays that hit nothing
	SamplingConfig core.SamplingConfig
}

// NewScene creates an empty scene with the default sampling configuration
func NewScene(cameraOrigin, ambient core.Vec3) *Scene {
	return &Scene{
		CameraOrigin:   cameraOrigin,
		Ambient:        ambient,
		SamplingConfig: core.DefaultSamplingConfig(),
	}
}

// AddSphere adds a sphere to the scene
func (s *Scene) AddSphere(center core.Vec3, radius float64, mat material.Material) *geometry.Sphere {
	sphere := geometry.NewSphere(center, radius, mat)
	s.Shapes = append(s.Shapes, sphere)
	return sphere
}

// AddPlane adds the plane ax + by + cz + d = 0 to the scene
func (s *Scene) AddPlane(a, b, c, d float64, mat material.Material) (*geometry.Plane, error) {
	plane, err := geometry.NewPlane(a, b, c, d, mat)
	if err != nil {
		return nil, err
	}
	s.Shapes = append(s.Shapes, plane)
	return plane, nil
}

// AddDirectionalLight adds a light at infinity shining along direction
func (s *Scene) AddDirectionalLight(direction, radiance core.Vec3) {
	s.Lights = append(s.Lights, lights.NewDirectionalLight(direction, radiance))
}

// AddSpotLight adds a hard-edged spot light
func (s *Scene) AddSpotLight(position, direction core.Vec3, cosCutoff float64, radiance core.Vec3) {
	s.Lights = append(s.Lights, lights.NewSpotLight(position, direction, cosCutoff, radiance))
}

// Validate checks that the scene can be rendered
func (s *Scene) Validate() error {
	if err := s.SamplingConfig.Validate(); err != nil {
		return fmt.Errorf("invalid sampling config: %w", err)
	}
	return nil
}

// GetCameraOrigin returns the camera position
func (s *Scene) GetCameraOrigin() core.Vec3 { return s.CameraOrigin }

// GetShapes returns the shapes in iteration order
func (s *Scene) GetShapes() []geometry.Shape { return s.Shapes }

// GetLights returns the scene lights
func (s *Scene) GetLights() []lights.Light { return s.Lights }

// GetAmbient returns the ambient light color
func (s *Scene) GetAmbient() core.Vec3 { return s.Ambient }

// GetBackground returns the color of rays that hit nothing
func (s *Scene) GetBackground() core.Vec3 { return s.Background }

// GetSamplingConfig returns the image and sampling settings
func (s *Scene) GetSamplingConfig() core.SamplingConfig { return s.SamplingConfig }
