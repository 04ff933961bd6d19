package output

import (
	"bytes"
	"context"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/golang/glog"
	"golang.org/x/xerrors"

	"github.com/df07/go-whitted-raytracer/pkg/config"
)

// UploadTimeout bounds a single upload
const UploadTimeout = 30 * time.Second

// S3Sink uploads images to an S3-compatible bucket
type S3Sink struct {
	client s3iface.S3API
	bucket string
}

// NewS3Sink creates a sink using static credentials from cfg. Path-style
// addressing is used so custom endpoints like MinIO work.
func NewS3Sink(cfg config.Config) (*S3Sink, error) {
	s3Config := &aws.Config{
		Credentials:      credentials.NewStaticCredentials(cfg.S3AccessKey, cfg.S3SecretKey, ""),
		Region:           aws.String(cfg.S3Region),
		S3ForcePathStyle: aws.Bool(true),
	}
	if cfg.S3Endpoint != "" {
		s3Config.Endpoint = aws.String(cfg.S3Endpoint)
	}

	sess, err := session.NewSession(s3Config)
	if err != nil {
		return nil, xerrors.Errorf("while creating S3 session: %w", err)
	}
	return NewS3SinkWithClient(s3.New(sess), cfg.S3Bucket), nil
}

// NewS3SinkWithClient creates a sink around an existing client
func NewS3SinkWithClient(client s3iface.S3API, bucket string) *S3Sink {
	return &S3Sink{client: client, bucket: bucket}
}

// Save uploads data as a public object and returns its s3:// location
func (s *S3Sink) Save(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, UploadTimeout)
	defer cancel()

	size := int64(len(data))
	_, err := s.client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
		ACL:           aws.String("public-read"),
	})
	if err != nil {
		return "", xerrors.Errorf("failed to upload %s: %w", key, err)
	}

	glog.Infof("Uploaded %s to S3 (%d bytes)", key, size)
	return "s3://" + s.bucket + "/" + key, nil
}
