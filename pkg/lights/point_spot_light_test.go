package lights

import (
	"math"
	"testing"

	"github.com/df07/go-scene-raytracer/pkg/core"
)

func TestSpotLight_NewSpotLight(t *testing.T) {
	position := core.NewVec3(0, 5, 0)
	direction := core.NewVec3(0, -2, 0)
	radiance := core.NewVec3(1, 1, 1)

	light := NewSpotLight(position, direction, 0.9, radiance)

	if light.position != position {
		t.Errorf("Expected position %v, got %v", position, light.position)
	}
	if light.direction.Subtract(core.NewVec3(0, -1, 0)).Length() > 1e-9 {
		t.Errorf("Expected normalized direction (0,-1,0), got %v", light.direction)
	}
	if light.cutoff != 0.9 {
		t.Errorf("Expected cutoff 0.9, got %f", light.cutoff)
	}

	if clamped := NewSpotLight(position, direction, 1.5, radiance); clamped.cutoff != 1 {
		t.Errorf("Expected cutoff clamped to 1, got %f", clamped.cutoff)
	}
	if clamped := NewSpotLight(position, direction, -3, radiance); clamped.cutoff != -1 {
		t.Errorf("Expected cutoff clamped to -1, got %f", clamped.cutoff)
	}
}

func TestSpotLight_Sample_WithinCone(t *testing.T) {
	// Light pointing down from (0,5,0)
	light := NewSpotLight(core.NewVec3(0, 5, 0), core.NewVec3(0, -1, 0), 0.9, core.NewVec3(2, 3, 4))

	testPoint := core.NewVec3(0, 1, 0)
	sample := light.Sample(testPoint)

	expectedDirection := core.NewVec3(0, 1, 0)
	if sample.Direction.Subtract(expectedDirection).Length() > 1e-9 {
		t.Errorf("Expected direction %v, got %v", expectedDirection, sample.Direction)
	}
	if math.Abs(sample.Distance-4) > 1e-9 {
		t.Errorf("Expected distance 4, got %f", sample.Distance)
	}
	if sample.Radiance != core.NewVec3(2, 3, 4) {
		t.Errorf("Expected full radiance inside cone, got %v", sample.Radiance)
	}
	if sample.AtInfinity() {
		t.Error("Expected spot light sample to have a finite distance")
	}
	if sample.Point != core.NewVec3(0, 5, 0) {
		t.Errorf("Expected sample point at light position, got %v", sample.Point)
	}
}

func TestSpotLight_Cutoff(t *testing.T) {
	cutoff := math.Cos(30 * math.Pi / 180)
	light := NewSpotLight(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1), cutoff, core.NewVec3(1, 1, 1))

	tests := []struct {
		name        string
		angleDeg    float64
		expectLight bool
	}{
		{"on axis", 0, true},
		{"inside cone", 29, true},
		{"just outside cone", 31, false},
		{"perpendicular", 90, false},
		{"behind light", 180, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			angle := tt.angleDeg * math.Pi / 180
			point := core.NewVec3(math.Sin(angle), 0, -math.Cos(angle)).Multiply(3)

			radiance := light.Sample(point).Radiance
			if tt.expectLight && radiance.IsZero() {
				t.Errorf("Expected radiance at %v degrees, got zero", tt.angleDeg)
			}
			if !tt.expectLight && !radiance.IsZero() {
				t.Errorf("Expected zero radiance at %v degrees, got %v", tt.angleDeg, radiance)
			}
		})
	}
}

func TestSpotLight_Sample_AtLightPosition(t *testing.T) {
	light := NewSpotLight(core.NewVec3(1, 2, 3), core.NewVec3(0, -1, 0), 0.5, core.NewVec3(1, 1, 1))

	sample := light.Sample(core.NewVec3(1, 2, 3))
	if !sample.Radiance.IsZero() {
		t.Errorf("Expected no radiance at the light position, got %v", sample.Radiance)
	}
	if sample.Distance != 0 {
		t.Errorf("Expected zero distance, got %f", sample.Distance)
	}
}

func TestDirectionalLight_Sample(t *testing.T) {
	light := NewDirectionalLight(core.NewVec3(0, 0, -2), core.NewVec3(0.5, 0.5, 0.5))

	if light.Type() != LightTypeDirectional {
		t.Errorf("Expected directional type, got %s", light.Type())
	}

	for _, point := range []core.Vec3{core.NewVec3(0, 0, 0), core.NewVec3(10, -3, 7)} {
		sample := light.Sample(point)
		if sample.Direction.Subtract(core.NewVec3(0, 0, 1)).Length() > 1e-9 {
			t.Errorf("Expected direction toward light (0,0,1), got %v", sample.Direction)
		}
		if !sample.AtInfinity() {
			t.Errorf("Expected infinite distance, got %f", sample.Distance)
		}
		if sample.Radiance != core.NewVec3(0.5, 0.5, 0.5) {
			t.Errorf("Expected constant radiance, got %v", sample.Radiance)
		}
	}
}
