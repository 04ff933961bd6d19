package output

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/google/go-cmp/cmp"

	"github.com/df07/go-whitted-raytracer/pkg/canvas"
	"github.com/df07/go-whitted-raytracer/pkg/config"
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"ppm", FormatPPM, false},
		{"png", FormatPNG, false},
		{"jpeg", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownFormat) {
					t.Errorf("Expected ErrUnknownFormat, got %v", err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("Expected %q, got %q (err %v)", tt.want, got, err)
			}
		})
	}
}

func TestEncode(t *testing.T) {
	cv := canvas.New(2, 1)
	cv.Draw(0, 0, core.White)

	ppm, err := Encode(cv, FormatPPM)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if string(ppm) != "P3\n2 1\n255\n255 255 255 0 0 0\n" {
		t.Errorf("Unexpected PPM %q", ppm)
	}

	pngData, err := Encode(cv, FormatPNG)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !bytes.HasPrefix(pngData, []byte("\x89PNG")) {
		t.Error("Expected PNG signature")
	}

	if _, err := Encode(cv, Format("gif")); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("Expected ErrUnknownFormat, got %v", err)
	}
}

func TestKey(t *testing.T) {
	at := time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC)
	if got := Key("glass", at, "", "png"); got != "glass/render_20240309_140507.png" {
		t.Errorf("Unexpected key %q", got)
	}
	if got := Key("glass", at, "_thumb", "png"); got != "glass/render_20240309_140507_thumb.png" {
		t.Errorf("Unexpected key %q", got)
	}
}

func TestFileSink_Save(t *testing.T) {
	dir := t.TempDir()
	sink := NewFileSink(dir)

	path, err := sink.Save(context.Background(), "default/render.ppm", []byte("P3"), FormatPPM.ContentType())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if path != filepath.Join(dir, "default", "render.ppm") {
		t.Errorf("Unexpected path %q", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read output: %v", err)
	}
	if string(data) != "P3" {
		t.Errorf("Unexpected contents %q", data)
	}
}

// fakeS3 records PutObject calls
type fakeS3 struct {
	s3iface.S3API
	inputs []*s3.PutObjectInput
	bodies []string
	err    error
}

func (f *fakeS3) PutObjectWithContext(ctx aws.Context, in *s3.PutObjectInput, opts ...request.Option) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	body, _ := io.ReadAll(in.Body)
	f.inputs = append(f.inputs, in)
	f.bodies = append(f.bodies, string(body))
	return &s3.PutObjectOutput{}, nil
}

func TestS3Sink_Save(t *testing.T) {
	fake := &fakeS3{}
	sink := NewS3SinkWithClient(fake, "renders")

	loc, err := sink.Save(context.Background(), "glass/render.png", []byte("image"), "image/png")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if loc != "s3://renders/glass/render.png" {
		t.Errorf("Unexpected location %q", loc)
	}
	if len(fake.inputs) != 1 {
		t.Fatalf("Expected one upload, got %d", len(fake.inputs))
	}

	in := fake.inputs[0]
	got := []string{aws.StringValue(in.Bucket), aws.StringValue(in.Key), aws.StringValue(in.ContentType), fake.bodies[0]}
	if diff := cmp.Diff([]string{"renders", "glass/render.png", "image/png", "image"}, got); diff != "" {
		t.Errorf("Upload mismatch (-want +got):\n%s", diff)
	}
	if aws.Int64Value(in.ContentLength) != 5 {
		t.Errorf("Expected content length 5, got %d", aws.Int64Value(in.ContentLength))
	}
}

func TestS3Sink_SaveError(t *testing.T) {
	boom := errors.New("boom")
	sink := NewS3SinkWithClient(&fakeS3{err: boom}, "renders")

	_, err := sink.Save(context.Background(), "k", []byte("x"), "image/png")
	if !errors.Is(err, boom) {
		t.Errorf("Expected wrapped upload error, got %v", err)
	}
	if !strings.Contains(err.Error(), "failed to upload k") {
		t.Errorf("Unexpected message %q", err.Error())
	}
}

func TestNewS3Sink(t *testing.T) {
	cfg := config.Default()
	cfg.S3AccessKey = "key"
	cfg.S3SecretKey = "secret"
	cfg.S3Endpoint = "http://localhost:9000"
	cfg.S3Bucket = "renders"

	sink, err := NewS3Sink(cfg)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if sink.bucket != "renders" || sink.client == nil {
		t.Errorf("Unexpected sink %+v", sink)
	}
}
