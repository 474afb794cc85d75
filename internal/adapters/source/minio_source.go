package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/url"
	"storyrun-service/internal/platform/obs"
	"storyrun-service/internal/ports"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

const objectScheme = "s3"

// MinioSource opens coordinate CSVs stored in S3-compatible object storage.
// Locations have the form s3://bucket/key.
type MinioSource struct {
	client *minio.Client
}

func NewMinioSource(endpoint, accessKey, secretKey string, useSSL bool) (*MinioSource, error) {
	if endpoint == "" || accessKey == "" || secretKey == "" {
		return nil, errors.New("minio source: MINIO_ENDPOINT, MINIO_ACCESS_KEY and MINIO_SECRET_KEY are required")
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("minio source: create client: %w", err)
	}

	log.Printf("Object storage configured endpoint=%s", endpoint)
	return &MinioSource{client: client}, nil
}

func (s *MinioSource) Open(ctx context.Context, location string) (_ io.ReadCloser, err error) {
	defer obs.Time(ctx, "minio.GetObject")(&err)

	bucket, key, err := ParseObjectLocation(location)
	if err != nil {
		return nil, err
	}

	// GetObject is lazy; Stat forces the request so a missing key is reported here.
	obj, err := s.client.GetObject(ctx, bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("get object %s/%s: %w", bucket, key, err)
	}
	if _, err := obj.Stat(); err != nil {
		obj.Close()
		code := minio.ToErrorResponse(err).Code
		if code == "NoSuchKey" || code == "NoSuchBucket" {
			return nil, fmt.Errorf("get object %s/%s: %w", bucket, key, ports.ErrSourceNotFound)
		}
		return nil, fmt.Errorf("stat object %s/%s: %w", bucket, key, err)
	}

	return obj, nil
}

// IsObjectLocation reports whether location uses the s3:// scheme.
func IsObjectLocation(location string) bool {
	return strings.HasPrefix(location, objectScheme+"://")
}

// ParseObjectLocation splits s3://bucket/key into bucket and key.
func ParseObjectLocation(location string) (bucket, key string, err error) {
	u, err := url.Parse(location)
	if err != nil {
		return "", "", fmt.Errorf("parse object location %q: %w", location, err)
	}
	if u.Scheme != objectScheme {
		return "", "", fmt.Errorf("parse object location %q: scheme must be %s", location, objectScheme)
	}

	bucket = u.Host
	key = strings.TrimPrefix(u.Path, "/")
	if bucket == "" || key == "" {
		return "", "", fmt.Errorf("parse object location %q: bucket and key are required", location)
	}

	return bucket, key, nil
}
