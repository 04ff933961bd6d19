package renderer

import (
	"math"

	"golang.org/x/xerrors"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/transform"
)

// ErrInvalidCamera is returned for cameras that cannot produce an image
var ErrInvalidCamera = xerrors.New("invalid camera")

// Camera maps canvas pixels to world-space rays. The image plane sits one
// unit in front of the eye along -z in camera space; the view transform
// orients the world relative to the camera.
type Camera struct {
	width       int
	height      int
	fieldOfView float64
	transform   transform.Transform

	halfWidth  float64
	halfHeight float64
	pixelSize  float64
}

// NewCamera creates a camera producing width x height images with the
// given horizontal or vertical field of view in radians (whichever side
// is longer). view is usually built with transform.ViewTransform.
func NewCamera(width, height int, fieldOfView float64, view core.Matrix) (*Camera, error) {
	if width <= 0 || height <= 0 {
		return nil, xerrors.Errorf("%dx%d canvas: %w", width, height, ErrInvalidCamera)
	}
	if fieldOfView <= 0 || fieldOfView >= math.Pi {
		return nil, xerrors.Errorf("field of view %g outside (0, pi): %w", fieldOfView, ErrInvalidCamera)
	}

	t, err := transform.New(view)
	if err != nil {
		return nil, xerrors.Errorf("while setting camera view: %w", err)
	}

	halfView := math.Tan(fieldOfView / 2)
	aspect := float64(width) / float64(height)

	var halfWidth, halfHeight float64
	if aspect >= 1 {
		halfWidth, halfHeight = halfView, halfView/aspect
	} else {
		halfWidth, halfHeight = halfView*aspect, halfView
	}

	return &Camera{
		width:       width,
		height:      height,
		fieldOfView: fieldOfView,
		transform:   t,
		halfWidth:   halfWidth,
		halfHeight:  halfHeight,
		pixelSize:   halfWidth * 2 / float64(width),
	}, nil
}

func (c *Camera) Width() int                     { return c.width }
func (c *Camera) Height() int                    { return c.height }
func (c *Camera) FieldOfView() float64           { return c.fieldOfView }
func (c *Camera) Transform() transform.Transform { return c.transform }

// PixelSize is the world-space width of one pixel on the image plane
func (c *Camera) PixelSize() float64 { return c.pixelSize }

// RayForPixel returns the ray from the eye through the center of pixel
// (x, y). x grows to the right and y grows downward.
func (c *Camera) RayForPixel(x, y int) core.Ray {
	xOffset := (float64(x) + 0.5) * c.pixelSize
	yOffset := (float64(y) + 0.5) * c.pixelSize

	// The camera looks toward -z, so +x is to the left
	worldX := c.halfWidth - xOffset
	worldY := c.halfHeight - yOffset

	pixel := c.transform.ToLocal(core.Point(worldX, worldY, -1))
	origin := c.transform.ToLocal(core.Origin())
	direction := pixel.Subtract(origin).Normalize()

	return core.NewRay(origin, direction)
}
