package canvas

import (
	"fmt"

	"golang.org/x/xerrors"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Canvas is a fixed-size grid of colors. Pixel (0,0) is the top-left
// corner. A canvas is not safe for concurrent writes.
type Canvas struct {
	width  int
	height int
	pixels []core.Color
}

// New creates a black canvas
func New(width, height int) *Canvas {
	return &Canvas{
		width:  width,
		height: height,
		pixels: make([]core.Color, width*height),
	}
}

func (c *Canvas) Width() int  { return c.width }
func (c *Canvas) Height() int { return c.height }

// Draw sets the pixel at (x, y). Coordinates outside the canvas return an
// *OutOfBoundsError and leave the canvas unchanged.
func (c *Canvas) Draw(x, y int, color core.Color) error {
	if err := c.check(x, y); err != nil {
		return err
	}
	c.pixels[y*c.width+x] = color
	return nil
}

// At returns the pixel at (x, y)
func (c *Canvas) At(x, y int) (core.Color, error) {
	if err := c.check(x, y); err != nil {
		return core.Color{}, err
	}
	return c.pixels[y*c.width+x], nil
}

func (c *Canvas) check(x, y int) error {
	if x < 0 || x >= c.width {
		return newOutOfBoundsError("x", x, c.width-1)
	}
	if y < 0 || y >= c.height {
		return newOutOfBoundsError("y", y, c.height-1)
	}
	return nil
}

// OutOfBoundsError reports an access outside the canvas
type OutOfBoundsError struct {
	Axis  string
	Index int
	Max   int

	frame xerrors.Frame
}

func newOutOfBoundsError(axis string, index, maxIndex int) *OutOfBoundsError {
	return &OutOfBoundsError{
		Axis:  axis,
		Index: index,
		Max:   maxIndex,
		frame: xerrors.Caller(2),
	}
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("canvas access out of bounds: max %s-index=%d, actual index=%d", e.Axis, e.Max, e.Index)
}

func (e *OutOfBoundsError) Format(f fmt.State, c rune) { // implements fmt.Formatter
	xerrors.FormatError(e, f, c)
}

func (e *OutOfBoundsError) FormatError(p xerrors.Printer) error { // implements xerrors.Formatter
	p.Print(e.Error())
	if p.Detail() {
		e.frame.Format(p)
	}
	return nil
}
