package renderer

import (
	"image/color"
	"testing"

	"github.com/df07/go-scene-raytracer/pkg/core"
)

func TestChannelToByte(t *testing.T) {
	tests := []struct {
		input    float64
		expected byte
	}{
		{0, 0},
		{1, 255},
		{0.5, 127},
		{0.999, 255},
		{-0.5, 0},
		{2, 255},
		{0.004, 1},
	}

	for _, tt := range tests {
		if got := ChannelToByte(tt.input); got != tt.expected {
			t.Errorf("ChannelToByte(%v) = %d, expected %d", tt.input, got, tt.expected)
		}
	}
}

func TestPixelBuffer_SetAndAt(t *testing.T) {
	buffer := NewPixelBuffer(3, 2)
	buffer.Set(2, 1, core.NewVec3(1, 0.5, 0))

	r, g, b := buffer.RGB(2, 1)
	if r != 255 || g != 127 || b != 0 {
		t.Errorf("Expected (255,127,0), got (%d,%d,%d)", r, g, b)
	}

	// Row-major layout, 3 bytes per pixel
	if buffer.Pix[(1*3+2)*3] != 255 {
		t.Error("Expected pixel (2,1) at row-major offset")
	}

	if got := buffer.At(2, 1); got != (color.RGBA{R: 255, G: 127, B: 0, A: 255}) {
		t.Errorf("Unexpected At result %v", got)
	}
	if got := buffer.At(0, 0); got != (color.RGBA{A: 255}) {
		t.Errorf("Expected opaque black for unset pixel, got %v", got)
	}
	if got := buffer.At(5, 5); got != (color.RGBA{}) {
		t.Errorf("Expected zero color outside bounds, got %v", got)
	}
	if b := buffer.Bounds(); b.Dx() != 3 || b.Dy() != 2 {
		t.Errorf("Unexpected bounds %v", b)
	}
}
