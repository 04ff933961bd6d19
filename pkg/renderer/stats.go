package renderer

import (
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/canvas"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	Width         int           // Canvas width in pixels
	Height        int           // Canvas height in pixels
	Workers       int           // Number of row chunks rendered in parallel
	MaxDepth      int           // Reflection and refraction budget per primary ray
	PixelsDrawn   int           // Pixels written to the canvas
	PixelsSkipped int           // Pixels the canvas rejected
	Duration      time.Duration // Wall time of the render
}

// PixelsPerSecond returns the render throughput
func (s RenderStats) PixelsPerSecond() float64 {
	if s.Duration <= 0 {
		return 0
	}
	return float64(s.PixelsDrawn) / s.Duration.Seconds()
}

// AverageLuminance returns the mean Rec. 709 luminance of the canvas with
// channels clamped to [0,1]. Zero for an empty canvas.
func AverageLuminance(cv *canvas.Canvas) float64 {
	n := cv.Width() * cv.Height()
	if n == 0 {
		return 0
	}

	total := 0.0
	for y := 0; y < cv.Height(); y++ {
		for x := 0; x < cv.Width(); x++ {
			c, _ := cv.At(x, y)
			c = c.Clamp(0, 1)
			total += 0.2126*c.R + 0.7152*c.G + 0.0722*c.B
		}
	}
	return total / float64(n)
}
