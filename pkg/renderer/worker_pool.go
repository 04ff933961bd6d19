package renderer

import (
	"context"
	"time"

	"github.com/golang/glog"
	"golang.org/x/sync/errgroup"

	"github.com/df07/go-whitted-raytracer/pkg/canvas"
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/world"
)

// RowChunk is a contiguous range of canvas rows [Start, End) owned by one worker
type RowChunk struct {
	ID    int
	Start int
	End   int
}

// PixelResult is one shaded pixel sent from a worker to the collector
type PixelResult struct {
	X     int
	Y     int
	Color core.Color
}

// partitionRows splits [0, height) into at most workers contiguous chunks
// whose sizes differ by at most one row
func partitionRows(height, workers int) []RowChunk {
	if height <= 0 || workers <= 0 {
		return nil
	}
	if workers > height {
		workers = height
	}

	chunks := make([]RowChunk, 0, workers)
	base, extra := height/workers, height%workers
	start := 0
	for i := 0; i < workers; i++ {
		size := base
		if i < extra {
			size++
		}
		chunks = append(chunks, RowChunk{ID: i, Start: start, End: start + size})
		start += size
	}
	return chunks
}

// worker renders one row chunk. The world and camera are only read.
type worker struct {
	camera   *Camera
	world    *world.World
	maxDepth int
	results  chan<- PixelResult
}

// run shades every pixel in the chunk. Cancellation is checked between
// rows, so a cancelled render stops within one row per worker.
func (w *worker) run(ctx context.Context, chunk RowChunk) error {
	started := time.Now()
	for y := chunk.Start; y < chunk.End; y++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		for x := 0; x < w.camera.Width(); x++ {
			ray := w.camera.RayForPixel(x, y)
			w.results <- PixelResult{X: x, Y: y, Color: w.world.ColorAt(ray, w.maxDepth)}
		}
	}

	if glog.V(2) {
		glog.Infof("Chunk %d: rows %d-%d rendered in %v", chunk.ID, chunk.Start, chunk.End-1, time.Since(started))
	}
	return nil
}

// collect is the single consumer that writes results into the canvas.
// Pixels the canvas rejects are logged and counted, not fatal.
func collect(cv *canvas.Canvas, results <-chan PixelResult) (drawn, skipped int) {
	for res := range results {
		if err := cv.Draw(res.X, res.Y, res.Color); err != nil {
			glog.Warningf("Skipping pixel: %v", err)
			skipped++
			continue
		}
		drawn++
	}
	return drawn, skipped
}

// renderChunks fans the chunks out to one goroutine each and funnels
// their pixels into cv through a single collector. It returns once every
// worker has finished and the channel is drained.
func renderChunks(ctx context.Context, cam *Camera, w *world.World, maxDepth int, chunks []RowChunk, cv *canvas.Canvas) (drawn, skipped int, err error) {
	results := make(chan PixelResult, cam.Width())

	type counts struct{ drawn, skipped int }
	done := make(chan counts, 1)
	go func() {
		d, s := collect(cv, results)
		done <- counts{d, s}
	}()

	g, gctx := errgroup.WithContext(ctx)
	for _, chunk := range chunks {
		chunk := chunk
		wk := &worker{camera: cam, world: w, maxDepth: maxDepth, results: results}
		g.Go(func() error {
			return wk.run(gctx, chunk)
		})
	}

	err = g.Wait()
	close(results)
	c := <-done
	return c.drawn, c.skipped, err
}
