package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/df07/go-scene-raytracer/pkg/core"
	"github.com/df07/go-scene-raytracer/pkg/loaders"
	"github.com/df07/go-scene-raytracer/pkg/renderer"
	"github.com/df07/go-scene-raytracer/pkg/scene"
)

const usage = `Scene Raytracer
Usage: raytracer [options] <scene> [aa] [resolution] [gamma]

  scene       builtin scene name, or scene file (".txt" is appended when missing)
  aa          anti-aliasing grid size, aa*aa samples per pixel (default 1)
  resolution  width and height of the square image (default 256)
  gamma       gamma exponent applied to final colors (default 1.0)

Options:
`

// errNoScene is returned when no scene argument is given
var errNoScene = errors.New("no scene given")

// options holds everything parsed from the command line
type options struct {
	SceneName string
	Sampling  core.SamplingConfig
	Render    renderer.RenderConfig
	Output    string
	List      bool
	Help      bool
}

func main() {
	logger := core.NewDefaultLogger()

	opts, err := parseArgs(os.Args[1:], logger)
	if errors.Is(err, flag.ErrHelp) || (err == nil && opts.Help) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	if opts.List {
		if err := listScenes(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, opts, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// parseArgs parses flags followed by the positional arguments.
// Numbers that fail to parse fall back to their defaults with a warning.
func parseArgs(args []string, logger core.Logger) (options, error) {
	opts := options{
		Sampling: core.DefaultSamplingConfig(),
		Render:   renderer.DefaultRenderConfig(),
	}

	fs := flag.NewFlagSet("raytracer", flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprint(fs.Output(), usage)
		fs.PrintDefaults()
	}
	fs.StringVar(&opts.Output, "output", "", "Output image path, .png or .ppm (default output/<scene>.png)")
	fs.IntVar(&opts.Render.NumWorkers, "workers", opts.Render.NumWorkers, "Number of parallel workers (0 = CPU count)")
	fs.IntVar(&opts.Render.TileSize, "tile", opts.Render.TileSize, "Tile size in pixels")
	fs.Int64Var(&opts.Render.Seed, "seed", opts.Render.Seed, "Seed for anti-aliasing jitter")
	fs.BoolVar(&opts.List, "list", false, "List available scenes")
	fs.BoolVar(&opts.Help, "help", false, "Show help information")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if opts.Help {
		fs.Usage()
		return opts, nil
	}
	if opts.List {
		return opts, nil
	}

	positional := fs.Args()
	if len(positional) == 0 {
		fs.Usage()
		return opts, errNoScene
	}
	if len(positional) > 4 {
		logger.Printf("Warning: ignoring extra arguments %v\n", positional[4:])
	}

	opts.SceneName = positional[0]
	if len(positional) > 1 {
		opts.Sampling.SamplesPerPixel = parseIntArg("aa", positional[1], opts.Sampling.SamplesPerPixel, logger)
	}
	if len(positional) > 2 {
		size := parseIntArg("resolution", positional[2], opts.Sampling.Width, logger)
		if size < 1 {
			logger.Printf("Warning: resolution %d invalid, using %d\n", size, opts.Sampling.Width)
			size = opts.Sampling.Width
		}
		opts.Sampling.Width, opts.Sampling.Height = size, size
	}
	if len(positional) > 3 {
		gamma, err := strconv.ParseFloat(positional[3], 64)
		if err != nil || gamma <= 0 {
			logger.Printf("Warning: invalid gamma %q, using %g\n", positional[3], opts.Sampling.Gamma)
		} else {
			opts.Sampling.Gamma = gamma
		}
	}

	if opts.Sampling.SamplesPerPixel < 1 {
		logger.Printf("Warning: aa %d below 1, using 1\n", opts.Sampling.SamplesPerPixel)
		opts.Sampling.SamplesPerPixel = 1
	}

	if opts.Output == "" {
		opts.Output = defaultOutputPath(opts.SceneName)
	}

	return opts, nil
}

// parseIntArg parses a positional integer, falling back to defaultValue on error
func parseIntArg(name, value string, defaultValue int, logger core.Logger) int {
	parsed, err := strconv.Atoi(value)
	if err != nil {
		logger.Printf("Warning: invalid %s %q, using %d\n", name, value, defaultValue)
		return defaultValue
	}
	return parsed
}

// defaultOutputPath returns output/<scene stem>.png
func defaultOutputPath(sceneName string) string {
	base := filepath.Base(sceneName)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join("output", stem+".png")
}

// run loads the scene, renders it and writes the image
func run(ctx context.Context, opts options, logger core.Logger) error {
	logger.Printf("Loading scene %s...\n", opts.SceneName)
	sceneObj, err := scene.Load(opts.SceneName, logger)
	if err != nil {
		return fmt.Errorf("failed to load scene: %w", err)
	}
	sceneObj.SamplingConfig = opts.Sampling
	if err := sceneObj.Validate(); err != nil {
		return err
	}

	rend, err := renderer.NewRenderer(sceneObj, opts.Render, logger)
	if err != nil {
		return err
	}

	startTime := time.Now()
	buffer, stats, err := rend.Render(ctx)
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	if err := loaders.SaveImage(opts.Output, buffer); err != nil {
		return err
	}

	logger.Printf("Rendered %d pixels (%d samples) in %v\n",
		stats.TotalPixels, stats.TotalSamples, time.Since(startTime))
	logger.Printf("Render saved as %s\n", opts.Output)
	return nil
}

// listScenes prints the builtin scenes and the scene files that can be found
func listScenes(w io.Writer) error {
	scenes, err := scene.ListAllScenes()
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "Available scenes:")
	for _, info := range scenes {
		line := fmt.Sprintf("  %-16s %s", info.ID, info.Name)
		if info.Type == "file" {
			line += " (" + info.FilePath + ")"
		}
		if info.Description != "" {
			line += " - " + info.Description
		}
		fmt.Fprintln(w, line)
	}
	return nil
}
