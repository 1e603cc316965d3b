package scene

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/df07/go-scene-raytracer/pkg/core"
	"github.com/df07/go-scene-raytracer/pkg/geometry"
	"github.com/df07/go-scene-raytracer/pkg/lights"
	"github.com/df07/go-scene-raytracer/pkg/loaders"
)

// recordingLogger collects log lines for assertions
type recordingLogger struct {
	lines []string
}

func (l *recordingLogger) Printf(format string, args ...interface{}) {
	l.lines = append(l.lines, fmt.Sprintf(format, args...))
}

func (l *recordingLogger) warnings() int {
	count := 0
	for _, line := range l.lines {
		if strings.HasPrefix(line, "Warning:") {
			count++
		}
	}
	return count
}

func parse(t *testing.T, text string) *loaders.SceneDescription {
	t.Helper()
	desc, err := loaders.ParseScene(strings.NewReader(text))
	if err != nil {
		t.Fatalf("ParseScene failed: %v", err)
	}
	return desc
}

func TestNewSceneFromDescription(t *testing.T) {
	desc := parse(t, `e 0 0 1 1
a 0.1 0.2 0.3 1
o 0 0 -1 0.5
c 1 0.3 0.3 20
o 0 1 0 -1
c 0.8 0.8 0.8 2
d 0 0 -1 0
i 1 1 1
d 0 -1 0 1
p 0 2 -1 0.9
i 0.5 0.5 0.5 1
`)
	logger := &recordingLogger{}

	s, err := NewSceneFromDescription(desc, logger)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if logger.warnings() != 0 {
		t.Errorf("Expected no warnings, got %v", logger.lines)
	}

	if s.CameraOrigin != core.NewVec3(0, 0, 1) || s.Ambient != core.NewVec3(0.1, 0.2, 0.3) {
		t.Errorf("Unexpected camera %v or ambient %v", s.CameraOrigin, s.Ambient)
	}
	if len(s.Shapes) != 2 || len(s.Lights) != 2 {
		t.Fatalf("Expected 2 shapes and 2 lights, got %d and %d", len(s.Shapes), len(s.Lights))
	}

	sphere, ok := s.Shapes[0].(*geometry.Sphere)
	if !ok {
		t.Fatalf("Expected first shape to be a sphere, got %T", s.Shapes[0])
	}
	if sphere.Radius != 0.5 || sphere.Material.Diffuse != core.NewVec3(1, 0.3, 0.3) || sphere.Material.Shininess != 20 {
		t.Errorf("Unexpected sphere %+v", sphere)
	}
	if sphere.Material.Ambient != sphere.Material.Diffuse {
		t.Error("Expected ambient and diffuse colors to match")
	}

	plane, ok := s.Shapes[1].(*geometry.Plane)
	if !ok {
		t.Fatalf("Expected second shape to be a plane, got %T", s.Shapes[1])
	}
	if plane.Normal != core.NewVec3(0, 1, 0) || plane.D != -1 {
		t.Errorf("Unexpected plane %+v", plane)
	}

	if s.Lights[0].Type() != lights.LightTypeDirectional {
		t.Errorf("Expected directional light first, got %v", s.Lights[0].Type())
	}
	spot, ok := s.Lights[1].(*lights.SpotLight)
	if !ok {
		t.Fatalf("Expected spot light second, got %T", s.Lights[1])
	}
	if got := spot.Sample(core.NewVec3(0, 0, -1)).Point; got != core.NewVec3(0, 2, -1) {
		t.Errorf("Unexpected spot position %v", got)
	}
	if got := spot.RadianceAt(core.NewVec3(0, 0, -1)); got != core.NewVec3(0.5, 0.5, 0.5) {
		t.Errorf("Expected spot intensity 0.5 below the light, got %v", got)
	}
}

func TestNewSceneFromDescription_Defaults(t *testing.T) {
	desc := parse(t, `e 0 0 1 1
a 0.1 0.1 0.1 1
o 0 0 -1 0.5
o 1 0 -1 0.5
c 1 0 0 10
d 0 0 -1 1
t 0 0 -5 1
x 1 2 3
`)
	logger := &recordingLogger{}

	s, err := NewSceneFromDescription(desc, logger)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(s.Shapes) != 3 {
		t.Fatalf("Expected 3 shapes, got %d", len(s.Shapes))
	}
	if got := s.Shapes[1].GetMaterial(); got != defaultMaterial {
		t.Errorf("Expected default material for uncolored object, got %+v", got)
	}

	spot, ok := s.Lights[0].(*lights.SpotLight)
	if !ok {
		t.Fatalf("Expected spot light, got %T", s.Lights[0])
	}
	if got := spot.Sample(core.NewVec3(0, 0, -1)).Point; got != (core.Vec3{}) {
		t.Errorf("Expected spot light without 'p' line at origin, got %v", got)
	}

	// unknown identifier, color count mismatch, intensity count mismatch,
	// missing spot position, 't' object
	if logger.warnings() != 5 {
		t.Errorf("Expected 5 warnings, got %d: %v", logger.warnings(), logger.lines)
	}
}

func TestNewSceneFromDescription_DegeneratePlane(t *testing.T) {
	desc := parse(t, "e 0 0 1 1\na 0.1 0.1 0.1 1\no 0 0 0 0\n")

	_, err := NewSceneFromDescription(desc, nil)
	if !errors.Is(err, geometry.ErrDegeneratePlane) {
		t.Errorf("Expected degenerate plane error, got %v", err)
	}
	if err != nil && !strings.Contains(err.Error(), "line 3") {
		t.Errorf("Expected error to name line 3, got %v", err)
	}
}

func TestNewSceneFromDescription_ZeroLightDirection(t *testing.T) {
	desc := parse(t, `e 0 0 1 1
a 0.1 0.1 0.1 1
o 0 0 -1 0.5
c 1 0 0 10
d 0 0 0 0
i 9 9 9
d 0 0 0 1
p 0 5 0 0.5
i 9 9 9
d 0 -1 0 1
p 0 2 -1 0.9
i 0.5 0.5 0.5
`)
	logger := &recordingLogger{}

	s, err := NewSceneFromDescription(desc, logger)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if logger.warnings() != 2 {
		t.Errorf("Expected a warning per zero direction, got %v", logger.lines)
	}

	// Only the last light survives, keeping its own position and intensity
	if len(s.Lights) != 1 {
		t.Fatalf("Expected 1 light, got %d", len(s.Lights))
	}
	spot, ok := s.Lights[0].(*lights.SpotLight)
	if !ok {
		t.Fatalf("Expected spot light, got %T", s.Lights[0])
	}
	below := core.NewVec3(0, 0, -1)
	if got := spot.Sample(below); got.Point != core.NewVec3(0, 2, -1) || got.Radiance != core.NewVec3(0.5, 0.5, 0.5) {
		t.Errorf("Expected light at (0,2,-1) with intensity 0.5, got %+v", got)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeSceneFile(t, dir, "custom.txt", "e 0 0 1 1\na 0.1 0.1 0.1 1\no 0 0 -1 0.5\n")
	withSearchDirs(t, dir)

	s, err := Load("custom", core.DiscardLogger{})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(s.Shapes) != 1 {
		t.Errorf("Expected 1 shape, got %d", len(s.Shapes))
	}

	builtin, err := Load("single-sphere", core.DiscardLogger{})
	if err != nil || len(builtin.Shapes) != 1 {
		t.Errorf("Expected builtin single-sphere scene, got %v, %v", builtin, err)
	}

	if _, err := Load("nope", core.DiscardLogger{}); err == nil {
		t.Error("Expected error for unknown scene")
	}
}

func TestBundledSceneFiles(t *testing.T) {
	files, err := filepath.Glob(filepath.Join("..", "..", "scenes", "*"+SceneFileExt))
	if err != nil {
		t.Fatalf("Glob failed: %v", err)
	}
	if len(files) == 0 {
		t.Skip("no bundled scene files found")
	}

	for _, file := range files {
		t.Run(filepath.Base(file), func(t *testing.T) {
			logger := &recordingLogger{}
			s, err := LoadFile(file, logger)
			if err != nil {
				t.Fatalf("LoadFile failed: %v", err)
			}
			if logger.warnings() != 0 {
				t.Errorf("Expected bundled scene to load cleanly, got %v", logger.lines)
			}
			if len(s.Shapes) == 0 || len(s.Lights) == 0 {
				t.Error("Expected shapes and lights")
			}
		})
	}
}
