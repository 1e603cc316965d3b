package renderer

import (
	"context"
	"fmt"
	"time"

	"github.com/df07/go-scene-raytracer/pkg/core"
)

// RenderConfig contains configuration for parallel rendering
type RenderConfig struct {
	TileSize   int   // Size of each square tile in pixels
	NumWorkers int   // Number of parallel workers (0 = use CPU count)
	Seed       int64 // Base seed of the per-tile jitter generators
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		TileSize:   32,
		NumWorkers: 0, // Auto-detect CPU count
		Seed:       42,
	}
}

// Renderer renders a whole image by distributing tiles over a worker pool.
// The output depends only on the scene, the sampling config and the seed,
// never on the number of workers or the order tiles complete in.
type Renderer struct {
	scene     Scene
	config    RenderConfig
	raytracer *Raytracer
	logger    core.Logger
}

// NewRenderer creates a renderer for scene
func NewRenderer(scene Scene, config RenderConfig, logger core.Logger) (*Renderer, error) {
	if err := scene.GetSamplingConfig().Validate(); err != nil {
		return nil, fmt.Errorf("invalid sampling config: %w", err)
	}
	if config.TileSize <= 0 {
		config.TileSize = DefaultRenderConfig().TileSize
	}
	if logger == nil {
		logger = core.DiscardLogger{}
	}

	return &Renderer{
		scene:     scene,
		config:    config,
		raytracer: NewRaytracer(scene),
		logger:    logger,
	}, nil
}

// Render traces every pixel of the image and returns the pixel buffer.
// Cancelling ctx stops the render between tiles and returns ctx.Err().
func (r *Renderer) Render(ctx context.Context) (*PixelBuffer, RenderStats, error) {
	sampling := r.scene.GetSamplingConfig()
	buffer := NewPixelBuffer(sampling.Width, sampling.Height)
	tiles := NewTileGrid(sampling.Width, sampling.Height, r.config.TileSize, r.config.Seed)

	pool := NewWorkerPool(NewTileRenderer(r.raytracer, buffer), r.config.NumWorkers, len(tiles))
	pool.Start()
	defer pool.Stop()

	r.logger.Printf("Rendering %dx%d with %dx%d samples per pixel (%d tiles, %d workers)...\n",
		sampling.Width, sampling.Height, sampling.SamplesPerPixel, sampling.SamplesPerPixel,
		len(tiles), pool.GetNumWorkers())

	startTime := time.Now()
	for taskID, tile := range tiles {
		pool.SubmitTask(TileTask{Ctx: ctx, Tile: tile, TaskID: taskID})
	}

	var stats RenderStats
	var firstErr error
	reportEvery := max(1, len(tiles)/10)

	// Every submitted task produces exactly one result, so draining them all
	// leaves no worker blocked when the pool is stopped
	for i := 0; i < len(tiles); i++ {
		result, ok := pool.GetResult()
		if !ok {
			return nil, RenderStats{}, fmt.Errorf("worker pool closed unexpectedly")
		}
		if result.Error != nil {
			if firstErr == nil {
				firstErr = result.Error
			}
			continue
		}

		stats.merge(result.Stats)
		if done := i + 1; done%reportEvery == 0 || done == len(tiles) {
			r.logger.Printf("Tiles completed: %d/%d\n", done, len(tiles))
		}
	}

	if firstErr != nil {
		r.logger.Printf("Rendering cancelled: %v\n", firstErr)
		return nil, RenderStats{}, firstErr
	}

	stats.finalize()
	r.logger.Printf("Render completed in %v (%.1f samples/pixel, %d aliased pixels)\n",
		time.Since(startTime), stats.AverageSamples, stats.AliasedPixels)

	return buffer, stats, nil
}
