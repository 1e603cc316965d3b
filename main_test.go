package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/df07/go-scene-raytracer/pkg/core"
	"github.com/df07/go-scene-raytracer/pkg/renderer"
	"github.com/df07/go-scene-raytracer/pkg/scene"
)

// countingLogger counts warning lines
type countingLogger struct {
	warnings int
}

func (l *countingLogger) Printf(format string, args ...interface{}) {
	if strings.HasPrefix(fmt.Sprintf(format, args...), "Warning:") {
		l.warnings++
	}
}

func TestParseArgs(t *testing.T) {
	tests := []struct {
		name             string
		args             []string
		expectedSampling core.SamplingConfig
		expectedOutput   string
		expectedWarnings int
	}{
		{
			name:             "scene only",
			args:             []string{"scene1"},
			expectedSampling: core.SamplingConfig{Width: 256, Height: 256, SamplesPerPixel: 1, Gamma: 1},
			expectedOutput:   filepath.Join("output", "scene1.png"),
		},
		{
			name:             "all positional",
			args:             []string{"scenes/room.txt", "4", "512", "2.2"},
			expectedSampling: core.SamplingConfig{Width: 512, Height: 512, SamplesPerPixel: 4, Gamma: 2.2},
			expectedOutput:   filepath.Join("output", "room.png"),
		},
		{
			name:             "invalid numbers fall back",
			args:             []string{"scene1", "many", "big", "bright"},
			expectedSampling: core.SamplingConfig{Width: 256, Height: 256, SamplesPerPixel: 1, Gamma: 1},
			expectedOutput:   filepath.Join("output", "scene1.png"),
			expectedWarnings: 3,
		},
		{
			name:             "aa clamped to one",
			args:             []string{"scene1", "0"},
			expectedSampling: core.SamplingConfig{Width: 256, Height: 256, SamplesPerPixel: 1, Gamma: 1},
			expectedOutput:   filepath.Join("output", "scene1.png"),
			expectedWarnings: 1,
		},
		{
			name:             "non-positive resolution and gamma",
			args:             []string{"scene1", "2", "-5", "0"},
			expectedSampling: core.SamplingConfig{Width: 256, Height: 256, SamplesPerPixel: 2, Gamma: 1},
			expectedOutput:   filepath.Join("output", "scene1.png"),
			expectedWarnings: 2,
		},
		{
			name:             "output flag",
			args:             []string{"-output", "out/image.ppm", "scene1", "3"},
			expectedSampling: core.SamplingConfig{Width: 256, Height: 256, SamplesPerPixel: 3, Gamma: 1},
			expectedOutput:   "out/image.ppm",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := &countingLogger{}
			opts, err := parseArgs(tt.args, logger)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}

			if opts.Sampling != tt.expectedSampling {
				t.Errorf("Expected sampling %+v, got %+v", tt.expectedSampling, opts.Sampling)
			}
			if opts.Output != tt.expectedOutput {
				t.Errorf("Expected output %q, got %q", tt.expectedOutput, opts.Output)
			}
			if logger.warnings != tt.expectedWarnings {
				t.Errorf("Expected %d warnings, got %d", tt.expectedWarnings, logger.warnings)
			}
		})
	}
}

func TestParseArgs_RenderFlags(t *testing.T) {
	opts, err := parseArgs([]string{"-workers", "3", "-tile", "16", "-seed", "9", "default"}, core.DiscardLogger{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	expected := renderer.RenderConfig{TileSize: 16, NumWorkers: 3, Seed: 9}
	if opts.Render != expected {
		t.Errorf("Expected %+v, got %+v", expected, opts.Render)
	}
	if opts.SceneName != "default" {
		t.Errorf("Expected scene 'default', got %q", opts.SceneName)
	}
}

func TestParseArgs_NoScene(t *testing.T) {
	_, err := parseArgs([]string{}, core.DiscardLogger{})
	if !errors.Is(err, errNoScene) {
		t.Errorf("Expected errNoScene, got %v", err)
	}

	opts, err := parseArgs([]string{"-list"}, core.DiscardLogger{})
	if err != nil || !opts.List {
		t.Errorf("Expected -list without a scene to parse, got %+v, %v", opts, err)
	}
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	scenePath := filepath.Join(dir, "scene1.txt")
	sceneText := `# Scene: Single Sphere
e 0 0 1 1
a 0.1 0.1 0.1 1
o 0 0 -1 0.5
c 1 0.3 0.3 20
d 0 0 -1 0
i 1 1 1
`
	if err := os.WriteFile(scenePath, []byte(sceneText), 0644); err != nil {
		t.Fatalf("Failed to write scene: %v", err)
	}

	output := filepath.Join(dir, "out", "scene1.png")
	opts, err := parseArgs([]string{"-output", output, filepath.Join(dir, "scene1"), "1", "16"}, core.DiscardLogger{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if err := run(context.Background(), opts, core.DiscardLogger{}); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	file, err := os.Open(output)
	if err != nil {
		t.Fatalf("Failed to open output: %v", err)
	}
	defer file.Close()
	img, err := png.Decode(file)
	if err != nil {
		t.Fatalf("Failed to decode output: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 16 || b.Dy() != 16 {
		t.Errorf("Expected 16x16 output, got %v", b)
	}

	// The file scene matches the builtin single-sphere scene pixel for pixel
	builtin := scene.NewSingleSphereScene()
	builtin.SamplingConfig = opts.Sampling
	rend, err := renderer.NewRenderer(builtin, opts.Render, nil)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	expected, _, err := rend.Render(context.Background())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			er, eg, eb, _ := expected.At(x, y).RGBA()
			lr, lg, lb, _ := img.At(x, y).RGBA()
			if er != lr || eg != lg || eb != lb {
				t.Fatalf("Pixel (%d,%d) differs from builtin scene", x, y)
			}
		}
	}
}

func TestRun_MissingScene(t *testing.T) {
	opts, err := parseArgs([]string{filepath.Join(t.TempDir(), "missing")}, core.DiscardLogger{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if err := run(context.Background(), opts, core.DiscardLogger{}); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected not-exist error, got %v", err)
	}
}

func TestRun_InvalidSampling(t *testing.T) {
	opts, err := parseArgs([]string{"single-sphere"}, core.DiscardLogger{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	opts.Sampling.Gamma = 0
	opts.Output = filepath.Join(t.TempDir(), "never.png")

	if err := run(context.Background(), opts, core.DiscardLogger{}); err == nil {
		t.Error("Expected invalid sampling config to fail before rendering")
	}
	if _, err := os.Stat(opts.Output); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected no output file, got %v", err)
	}
}

func TestListScenes(t *testing.T) {
	var buf bytes.Buffer
	if err := listScenes(&buf); err != nil {
		t.Fatalf("listScenes failed: %v", err)
	}

	for _, name := range scene.BuiltinNames() {
		if !strings.Contains(buf.String(), name) {
			t.Errorf("Expected %q in listing:\n%s", name, buf.String())
		}
	}
}
