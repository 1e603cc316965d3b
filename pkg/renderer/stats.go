package renderer

import (
	"math"

	"github.com/df07/go-scene-raytracer/pkg/core"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels    int     // Total number of pixels rendered
	TotalSamples   int     // Total number of samples taken
	AverageSamples float64 // Average samples per pixel
	TilesRendered  int     // Number of tiles completed
	MaxVariance    float64 // Largest per-pixel luminance variance
	AliasedPixels  int     // Pixels whose samples disagreed
}

// aliasVarianceEpsilon separates pixels whose samples disagree from flat ones
const aliasVarianceEpsilon = 1e-6

// PixelStats tracks sampling statistics for a single pixel
type PixelStats struct {
	ColorAccum       core.Vec3 // RGB accumulator for final result
	LuminanceAccum   float64   // Luminance accumulator
	LuminanceSqAccum float64   // Luminance squared for variance
	SampleCount      int       // Number of samples taken
}

// AddSample adds a new color sample to the pixel statistics
func (ps *PixelStats) AddSample(color core.Vec3) {
	ps.ColorAccum = ps.ColorAccum.Add(color)
	luminance := color.Luminance()
	ps.LuminanceAccum += luminance
	ps.LuminanceSqAccum += luminance * luminance
	ps.SampleCount++
}

// GetColor returns the current average color for this pixel
func (ps *PixelStats) GetColor() core.Vec3 {
	if ps.SampleCount == 0 {
		return core.Vec3{X: 0, Y: 0, Z: 0}
	}
	return ps.ColorAccum.Multiply(1.0 / float64(ps.SampleCount))
}

// Variance returns the luminance variance of the samples taken so far
func (ps *PixelStats) Variance() float64 {
	if ps.SampleCount == 0 {
		return 0
	}
	mean := ps.LuminanceAccum / float64(ps.SampleCount)
	meanSq := ps.LuminanceSqAccum / float64(ps.SampleCount)
	return math.Max(0, meanSq-mean*mean)
}

// addPixel records a finished pixel
func (s *RenderStats) addPixel(ps *PixelStats) {
	s.TotalPixels++
	s.TotalSamples += ps.SampleCount

	variance := ps.Variance()
	s.MaxVariance = math.Max(s.MaxVariance, variance)
	if variance > aliasVarianceEpsilon {
		s.AliasedPixels++
	}
}

// merge folds the statistics of a tile into s
func (s *RenderStats) merge(other RenderStats) {
	s.TotalPixels += other.TotalPixels
	s.TotalSamples += other.TotalSamples
	s.TilesRendered += other.TilesRendered
	s.MaxVariance = math.Max(s.MaxVariance, other.MaxVariance)
	s.AliasedPixels += other.AliasedPixels
}

// finalize calculates derived statistics after all pixels are rendered
func (s *RenderStats) finalize() {
	if s.TotalPixels > 0 {
		s.AverageSamples = float64(s.TotalSamples) / float64(s.TotalPixels)
	}
}
