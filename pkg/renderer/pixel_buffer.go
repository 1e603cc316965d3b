package renderer

import (
	"image"
	"image/color"

	"github.com/df07/go-scene-raytracer/pkg/core"
)

// PixelBuffer is a row-major RGB image with 3 bytes per pixel.
// It implements image.Image so it can be handed directly to image encoders.
type PixelBuffer struct {
	Width  int
	Height int
	Pix    []byte
}

// NewPixelBuffer allocates a black buffer
func NewPixelBuffer(width, height int) *PixelBuffer {
	return &PixelBuffer{
		Width:  width,
		Height: height,
		Pix:    make([]byte, width*height*3),
	}
}

// ChannelToByte converts a color channel to 8 bits as floor(255.999 * clamp(c))
func ChannelToByte(c float64) byte {
	c = max(0, min(1, c))
	return byte(255.999 * c)
}

// Set stores the color of pixel (x, y)
func (b *PixelBuffer) Set(x, y int, c core.Vec3) {
	offset := (y*b.Width + x) * 3
	b.Pix[offset] = ChannelToByte(c.X)
	b.Pix[offset+1] = ChannelToByte(c.Y)
	b.Pix[offset+2] = ChannelToByte(c.Z)
}

// RGB returns the stored bytes of pixel (x, y)
func (b *PixelBuffer) RGB(x, y int) (r, g, bl byte) {
	offset := (y*b.Width + x) * 3
	return b.Pix[offset], b.Pix[offset+1], b.Pix[offset+2]
}

// ColorModel implements image.Image
func (b *PixelBuffer) ColorModel() color.Model {
	return color.RGBAModel
}

// Bounds implements image.Image
func (b *PixelBuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.Width, b.Height)
}

// At implements image.Image
func (b *PixelBuffer) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(b.Bounds()) {
		return color.RGBA{}
	}
	r, g, bl := b.RGB(x, y)
	return color.RGBA{R: r, G: g, B: bl, A: 255}
}
