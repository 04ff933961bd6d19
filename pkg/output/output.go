package output

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/golang/glog"
	"golang.org/x/xerrors"

	"github.com/df07/go-whitted-raytracer/pkg/canvas"
)

// Format is an image encoding
type Format string

const (
	FormatPPM Format = "ppm"
	FormatPNG Format = "png"
)

// ErrUnknownFormat is returned for formats other than ppm and png
var ErrUnknownFormat = xerrors.New("unknown image format")

// ParseFormat validates a format name
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatPPM, FormatPNG:
		return Format(s), nil
	default:
		return "", xerrors.Errorf("%q: %w", s, ErrUnknownFormat)
	}
}

// ContentType returns the MIME type of the format
func (f Format) ContentType() string {
	if f == FormatPNG {
		return "image/png"
	}
	return "image/x-portable-pixmap"
}

// Encode encodes the canvas in the given format
func Encode(cv *canvas.Canvas, f Format) ([]byte, error) {
	var buf bytes.Buffer
	var err error
	switch f {
	case FormatPPM:
		err = cv.WritePPM(&buf)
	case FormatPNG:
		err = cv.WritePNG(&buf)
	default:
		return nil, xerrors.Errorf("%q: %w", f, ErrUnknownFormat)
	}
	if err != nil {
		return nil, xerrors.Errorf("while encoding %s: %w", f, err)
	}
	return buf.Bytes(), nil
}

// EncodeImage encodes an already converted image as PNG
func EncodeImage(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, xerrors.Errorf("while encoding png: %w", err)
	}
	return buf.Bytes(), nil
}

// Key builds the storage key for a render, grouping renders by scene:
// <scene>/render_<timestamp>[suffix].<ext>
func Key(sceneName string, at time.Time, suffix string, ext string) string {
	return fmt.Sprintf("%s/render_%s%s.%s", sceneName, at.Format("20060102_150405"), suffix, ext)
}

// Sink stores encoded images under a key and returns where they went
type Sink interface {
	Save(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

// FileSink writes images below a local directory
type FileSink struct {
	Dir string
}

// NewFileSink creates a sink rooted at dir
func NewFileSink(dir string) *FileSink {
	return &FileSink{Dir: dir}
}

// Save writes data to Dir/key, creating parent directories as needed
func (s *FileSink) Save(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	path := filepath.Join(s.Dir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", xerrors.Errorf("while creating output directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", xerrors.Errorf("while writing %s: %w", path, err)
	}

	glog.V(1).Infof("Wrote %s (%d bytes)", path, len(data))
	return path, nil
}
