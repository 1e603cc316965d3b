package material

import (
	"math"

	"github.com/df07/go-scene-raytracer/pkg/core"
)

const (
	checkerScale = 0.5
	checkerNudge = 1e-6 // keeps points lying exactly on a cell border in a stable cell
)

// Checkerboard evaluates a fixed-scale checker pattern on the X/Y coordinates of point.
// Cells whose summed index is even are darkened to half the input color.
func Checkerboard(color, point core.Vec3) core.Vec3 {
	ix := int(math.Floor((point.X + checkerNudge) / checkerScale))
	iy := int(math.Floor((point.Y + checkerNudge) / checkerScale))

	if (ix+iy)&1 == 0 {
		return color.Multiply(0.5)
	}
	return color
}
