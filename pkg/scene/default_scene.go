package scene

import (
	"sort"

	"github.com/df07/go-scene-raytracer/pkg/core"
	"github.com/df07/go-scene-raytracer/pkg/material"
)

// builtinScenes maps builtin scene names to their constructors
var builtinScenes = map[string]func() *Scene{
	"default":       NewDefaultScene,
	"single-sphere": NewSingleSphereScene,
	"spotlights":    NewSpotlightScene,
}

// BuiltinNames returns the names of the builtin scenes in sorted order
func BuiltinNames() []string {
	names := make([]string, 0, len(builtinScenes))
	for name := range builtinScenes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewBuiltinScene returns a fresh builtin scene, or false if name is unknown
func NewBuiltinScene(name string) (*Scene, bool) {
	constructor, ok := builtinScenes[name]
	if !ok {
		return nil, false
	}
	return constructor(), true
}

// NewDefaultScene creates spheres resting over a checkered back plane,
// lit by one directional light and one spot light
func NewDefaultScene() *Scene {
	s := NewScene(core.NewVec3(0, 0, 4), core.NewVec3(0.1, 0.2, 0.3))

	// Back plane z = -3.5
	if _, err := s.AddPlane(0, 0, 1, 3.5, material.NewSolidMaterial(core.NewVec3(0, 1, 1), 10)); err != nil {
		panic(err) // constant equation, cannot fail
	}
	s.AddSphere(core.NewVec3(-0.7, -0.7, -2), 0.5, material.NewSolidMaterial(core.NewVec3(1, 0, 0), 10))
	s.AddSphere(core.NewVec3(0.6, -0.5, -1), 0.5, material.NewSolidMaterial(core.NewVec3(0.6, 0, 0.8), 10))

	spotPosition := core.NewVec3(2, 1, 3)
	spotAxis := core.NewVec3(0.5, 0, -1)
	s.AddSpotLight(spotPosition, spotAxis, 0.6, core.NewVec3(0.2, 0.5, 0.7))
	s.AddDirectionalLight(core.NewVec3(0, 0.5, -1), core.NewVec3(0.7, 0.5, 0))

	return s
}

// NewSingleSphereScene creates one sphere in front of the camera lit head-on
func NewSingleSphereScene() *Scene {
	s := NewScene(core.NewVec3(0, 0, 1), core.NewVec3(0.1, 0.1, 0.1))
	s.AddSphere(core.NewVec3(0, 0, -1), 0.5, material.NewSolidMaterial(core.NewVec3(1, 0.3, 0.3), 20))
	s.AddDirectionalLight(core.NewVec3(0, 0, -1), core.NewVec3(1, 1, 1))
	return s
}

// NewSpotlightScene creates a checkered floor with three spot lights of different colors
func NewSpotlightScene() *Scene {
	s := NewScene(core.NewVec3(0, 0, 4), core.NewVec3(0.05, 0.05, 0.05))

	// Floor tilted toward the camera
	if _, err := s.AddPlane(0, 1, 0.3, 1, material.NewSolidMaterial(core.NewVec3(0.9, 0.9, 0.9), 5)); err != nil {
		panic(err) // constant equation, cannot fail
	}
	s.AddSphere(core.NewVec3(0, -0.5, -1.5), 0.5, material.NewSolidMaterial(core.NewVec3(0.9, 0.9, 0.9), 30))

	down := core.NewVec3(0, -1, -0.3)
	s.AddSpotLight(core.NewVec3(-1.2, 2, -1), down, 0.9, core.NewVec3(0.9, 0.1, 0.1))
	s.AddSpotLight(core.NewVec3(0, 2, -1), down, 0.9, core.NewVec3(0.1, 0.9, 0.1))
	s.AddSpotLight(core.NewVec3(1.2, 2, -1), down, 0.9, core.NewVec3(0.1, 0.1, 0.9))

	return s
}
