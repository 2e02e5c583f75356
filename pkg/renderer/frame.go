package renderer

import (
	"image"
	"image/color"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// RGB is an 8-bit per channel pixel
type RGB [3]uint8

// ToRGB clamps each channel of c to [0, 1] and quantizes it to 8 bits.
// NaN channels become 0.
func ToRGB(c core.Vec3) RGB {
	c = c.Clamp(0, 1)
	return RGB{quantize(c.X), quantize(c.Y), quantize(c.Z)}
}

func quantize(v float64) uint8 {
	if math.IsNaN(v) {
		return 0
	}
	return uint8(255 * v)
}

// Frame is a row-major RGB8 pixel grid. Row 0 is the top of the image.
type Frame struct {
	Width  int
	Height int
	Pix    []RGB
}

// NewFrame allocates a black frame
func NewFrame(width, height int) *Frame {
	return &Frame{
		Width:  width,
		Height: height,
		Pix:    make([]RGB, width*height),
	}
}

// At returns the pixel in column i of row j
func (f *Frame) At(i, j int) RGB {
	return f.Pix[j*f.Width+i]
}

// Set stores the pixel in column i of row j
func (f *Frame) Set(i, j int, c RGB) {
	f.Pix[j*f.Width+i] = c
}

// Image converts the frame to an opaque RGBA image for encoding
func (f *Frame) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	for j := 0; j < f.Height; j++ {
		for i := 0; i < f.Width; i++ {
			p := f.At(i, j)
			img.SetRGBA(i, j, color.RGBA{R: p[0], G: p[1], B: p[2], A: 255})
		}
	}
	return img
}
