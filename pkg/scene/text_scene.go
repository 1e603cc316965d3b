package scene

import (
	"fmt"

	"github.com/df07/go-scene-raytracer/pkg/core"
	"github.com/df07/go-scene-raytracer/pkg/loaders"
	"github.com/df07/go-scene-raytracer/pkg/material"
)

// spotLightW is the fourth value of a "d" line that selects a spot light
const spotLightW = 1.0

var (
	defaultMaterial  = material.NewSolidMaterial(core.NewVec3(1, 1, 1), 1)
	defaultIntensity = core.NewVec3(1, 1, 1)
)

// Load returns the builtin scene called name, or loads it from a scene file.
// File names may be given as a stem; the extension is appended internally.
func Load(name string, logger core.Logger) (*Scene, error) {
	if s, ok := NewBuiltinScene(name); ok {
		return s, nil
	}

	path, err := ResolveScenePath(name)
	if err != nil {
		return nil, err
	}
	return LoadFile(path, logger)
}

// LoadFile parses a scene file and builds the scene it describes
func LoadFile(path string, logger core.Logger) (*Scene, error) {
	desc, err := loaders.LoadScene(path)
	if err != nil {
		return nil, err
	}
	return NewSceneFromDescription(desc, logger)
}

// NewSceneFromDescription builds a scene from parsed scene statements.
//
// Materials, spot light positions and intensities are associated with objects and
// lights by their position in the file: the Nth "c" line colors the Nth object,
// the Nth "p" line places the Nth spot light and the Nth "i" line sets the
// intensity of the Nth "d" line. Missing entries fall back to defaults with a warning.
func NewSceneFromDescription(desc *loaders.SceneDescription, logger core.Logger) (*Scene, error) {
	if logger == nil {
		logger = core.DiscardLogger{}
	}

	for _, warning := range desc.Warnings {
		logger.Printf("Warning: %s\n", warning)
	}

	s := NewScene(desc.Eye.Vec3(), desc.Ambient.Vec3())

	if len(desc.Colors) != len(desc.Objects) {
		logger.Printf("Warning: %d objects but %d color lines; colors are paired by order\n",
			len(desc.Objects), len(desc.Colors))
	}

	for i, obj := range desc.Objects {
		mat := defaultMaterial
		if i < len(desc.Colors) {
			c := desc.Colors[i]
			mat = material.NewSolidMaterial(c.Vec3(), c.W())
		}

		if obj.Kind != "o" {
			logger.Printf("Warning: line %d: '%s' object rendered without reflection or transparency\n", obj.Line, obj.Kind)
		}

		if obj.W() > 0 {
			s.AddSphere(obj.Vec3(), obj.W(), mat)
			continue
		}
		if _, err := s.AddPlane(obj.Values[0], obj.Values[1], obj.Values[2], obj.Values[3], mat); err != nil {
			return nil, fmt.Errorf("line %d: %w", obj.Line, err)
		}
	}

	if len(desc.Intensities) != len(desc.Lights) {
		logger.Printf("Warning: %d lights but %d intensity lines; intensities are paired by order\n",
			len(desc.Lights), len(desc.Intensities))
	}

	spotIndex := 0
	for i, light := range desc.Lights {
		intensity := defaultIntensity
		if i < len(desc.Intensities) {
			intensity = desc.Intensities[i].Vec3()
		}

		// A zero direction is still paired with its intensity and position lines
		direction := light.Vec3()
		if direction.IsZero() {
			logger.Printf("Warning: line %d: light direction is zero, light ignored\n", light.Line)
		}

		if light.W() != spotLightW {
			if !direction.IsZero() {
				s.AddDirectionalLight(direction, intensity)
			}
			continue
		}

		position, cutoff := core.Vec3{}, 1.0
		if spotIndex < len(desc.Positions) {
			p := desc.Positions[spotIndex]
			position, cutoff = p.Vec3(), p.W()
		} else {
			logger.Printf("Warning: line %d: spot light has no position line\n", light.Line)
		}
		spotIndex++

		if !direction.IsZero() {
			s.AddSpotLight(position, direction, cutoff, intensity)
		}
	}

	if spotIndex < len(desc.Positions) {
		logger.Printf("Warning: %d spot light position lines are unused\n", len(desc.Positions)-spotIndex)
	}

	return s, nil
}
