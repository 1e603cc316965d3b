package scene

import (
	"testing"

	"github.com/df07/go-scene-raytracer/pkg/core"
	"github.com/df07/go-scene-raytracer/pkg/material"
)

func TestBuiltinScenes(t *testing.T) {
	names := BuiltinNames()
	if len(names) != len(builtinScenes) {
		t.Fatalf("Expected %d builtin names, got %v", len(builtinScenes), names)
	}

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			s, ok := NewBuiltinScene(name)
			if !ok {
				t.Fatalf("Builtin %q not found", name)
			}
			if err := s.Validate(); err != nil {
				t.Errorf("Builtin %q is invalid: %v", name, err)
			}
			if len(s.Shapes) == 0 || len(s.Lights) == 0 {
				t.Errorf("Builtin %q should have shapes and lights", name)
			}

			// Each call builds an independent scene
			other, _ := NewBuiltinScene(name)
			other.AddSphere(core.Vec3{}, 1, material.NewSolidMaterial(core.NewVec3(1, 1, 1), 1))
			if len(other.Shapes) == len(s.Shapes) {
				t.Error("Expected builtin scenes not to share state")
			}
		})
	}

	if _, ok := NewBuiltinScene("missing"); ok {
		t.Error("Expected unknown builtin to be reported")
	}
}

func TestSceneValidate(t *testing.T) {
	s := NewScene(core.Vec3{}, core.Vec3{})
	if err := s.Validate(); err != nil {
		t.Errorf("Expected default sampling config to be valid, got %v", err)
	}

	s.SamplingConfig.SamplesPerPixel = 0
	if err := s.Validate(); err == nil {
		t.Error("Expected error for zero samples per pixel")
	}
}
