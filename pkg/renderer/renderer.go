package renderer

import (
	"context"
	"runtime"
	"time"

	"github.com/golang/glog"
	"golang.org/x/xerrors"

	"github.com/df07/go-whitted-raytracer/pkg/canvas"
	"github.com/df07/go-whitted-raytracer/pkg/world"
)

// MaxDepth is the default reflection and refraction budget per primary ray
const MaxDepth = 5

// Config controls how a render is parallelized
type Config struct {
	Workers  int // Row chunks rendered in parallel (0 = runtime.NumCPU())
	MaxDepth int // Recursion budget per primary ray (0 = MaxDepth)
}

// DefaultConfig returns a config using all CPUs and the default depth
func DefaultConfig() Config {
	return Config{
		Workers:  runtime.NumCPU(),
		MaxDepth: MaxDepth,
	}
}

// withDefaults fills zero fields from DefaultConfig
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Workers <= 0 {
		c.Workers = d.Workers
	}
	if c.MaxDepth <= 0 {
		c.MaxDepth = d.MaxDepth
	}
	return c
}

// Renderer renders worlds through one camera
type Renderer struct {
	camera *Camera
	config Config
}

// NewRenderer creates a renderer. Zero config fields take their defaults.
func NewRenderer(camera *Camera, config Config) *Renderer {
	return &Renderer{camera: camera, config: config.withDefaults()}
}

// Config returns the effective configuration
func (r *Renderer) Config() Config {
	return r.config
}

// Render traces every pixel of the camera's canvas. Rows are split into
// contiguous chunks, one goroutine per chunk, and a single collector
// writes the results. The world must not be modified until Render returns.
// Cancelling ctx stops workers at their next row and returns the partial
// canvas with the context error.
func (r *Renderer) Render(ctx context.Context, w *world.World) (*canvas.Canvas, RenderStats, error) {
	cam := r.camera
	cv := canvas.New(cam.Width(), cam.Height())
	chunks := partitionRows(cam.Height(), r.config.Workers)

	stats := RenderStats{
		Width:    cam.Width(),
		Height:   cam.Height(),
		Workers:  len(chunks),
		MaxDepth: r.config.MaxDepth,
	}

	glog.Infof("Rendering %dx%d with %d shapes, %d lights, %d workers",
		cam.Width(), cam.Height(), len(w.Shapes), len(w.Lights), len(chunks))

	started := time.Now()
	drawn, skipped, err := renderChunks(ctx, cam, w, r.config.MaxDepth, chunks, cv)
	stats.Duration = time.Since(started)
	stats.PixelsDrawn = drawn
	stats.PixelsSkipped = skipped

	if err != nil {
		return cv, stats, xerrors.Errorf("while rendering: %w", err)
	}

	glog.Infof("Rendered %d pixels in %v (%.0f px/s)", drawn, stats.Duration, stats.PixelsPerSecond())
	if skipped > 0 {
		glog.Warningf("%d pixels were skipped", skipped)
	}
	return cv, stats, nil
}

// Render renders w with the default config and blocks until complete
func (c *Camera) Render(w *world.World) *canvas.Canvas {
	cv, _, err := NewRenderer(c, DefaultConfig()).Render(context.Background(), w)
	if err != nil {
		glog.Errorf("Render failed, returning partial canvas: %v", err)
	}
	return cv
}
