package renderer

import (
	"image"
	"math/rand"

	"github.com/df07/go-scene-raytracer/pkg/core"
)

// Tile represents a rectangular region of the image to be rendered
type Tile struct {
	ID     int             // Unique tile identifier
	Bounds image.Rectangle // Pixel bounds (x0,y0,x1,y1)
	Random *rand.Rand      // Tile-specific random generator for deterministic results
}

// NewTile creates a new tile whose jitter source is seeded from seed and the tile ID
func NewTile(id int, bounds image.Rectangle, seed int64) *Tile {
	return &Tile{
		ID:     id,
		Bounds: bounds,
		Random: rand.New(rand.NewSource(seed + int64(id))),
	}
}

// NewTileGrid creates a grid of tiles covering the entire image
func NewTileGrid(width, height, tileSize int, seed int64) []*Tile {
	var tiles []*Tile
	tileID := 0

	tilesX := (width + tileSize - 1) / tileSize // Ceiling division
	tilesY := (height + tileSize - 1) / tileSize

	for tileY := 0; tileY < tilesY; tileY++ {
		for tileX := 0; tileX < tilesX; tileX++ {
			x0 := tileX * tileSize
			y0 := tileY * tileSize
			x1 := min(x0+tileSize, width) // Don't exceed image bounds
			y1 := min(y0+tileSize, height)

			tiles = append(tiles, NewTile(tileID, image.Rect(x0, y0, x1, y1), seed))
			tileID++
		}
	}

	return tiles
}

// TileRenderer renders tiles of an image into a shared pixel buffer
type TileRenderer struct {
	raytracer *Raytracer
	buffer    *PixelBuffer
}

// NewTileRenderer creates a tile renderer writing into buffer
func NewTileRenderer(raytracer *Raytracer, buffer *PixelBuffer) *TileRenderer {
	return &TileRenderer{
		raytracer: raytracer,
		buffer:    buffer,
	}
}

// RenderTile renders every pixel of tile. Tiles never overlap, so concurrent
// calls for different tiles write disjoint parts of the buffer.
func (tr *TileRenderer) RenderTile(tile *Tile) RenderStats {
	stats := RenderStats{TilesRendered: 1}
	sampler := core.NewRandomSampler(tile.Random)

	for j := tile.Bounds.Min.Y; j < tile.Bounds.Max.Y; j++ {
		for i := tile.Bounds.Min.X; i < tile.Bounds.Max.X; i++ {
			var ps PixelStats
			color := tr.raytracer.SamplePixel(i, j, &ps, sampler)
			tr.buffer.Set(i, j, color)
			stats.addPixel(&ps)
		}
	}

	return stats
}
