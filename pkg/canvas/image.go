package canvas

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"github.com/nfnt/resize"
)

// Image converts the canvas to an 8-bit RGBA image, clamping each channel
// the same way PPM encoding does
func (c *Canvas) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.width, c.height))
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			p := c.pixels[y*c.width+x]
			img.SetRGBA(x, y, color.RGBA{
				R: channel(p.R),
				G: channel(p.G),
				B: channel(p.B),
				A: 255,
			})
		}
	}
	return img
}

func channel(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
}

// WritePNG encodes the canvas as PNG
func (c *Canvas) WritePNG(w io.Writer) error {
	return png.Encode(w, c.Image())
}

// Thumbnail returns a copy of the canvas image scaled so that its longer
// side is maxDim pixels, preserving the aspect ratio. Images already
// within maxDim are returned at full size.
func (c *Canvas) Thumbnail(maxDim uint) image.Image {
	img := c.Image()
	if maxDim == 0 || (uint(c.width) <= maxDim && uint(c.height) <= maxDim) {
		return img
	}
	// A zero dimension tells resize to keep the aspect ratio
	if c.width >= c.height {
		return resize.Resize(maxDim, 0, img, resize.Bilinear)
	}
	return resize.Resize(0, maxDim, img, resize.Bilinear)
}
