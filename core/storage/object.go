package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"
)

// URIScheme prefixes object references given on the command line.
const URIScheme = "s3://"

// ErrInvalidURI is returned when an object reference cannot be parsed.
var ErrInvalidURI = errors.New("invalid object reference")

// IsURI reports whether ref points into object storage.
func IsURI(ref string) bool {
	return strings.HasPrefix(ref, URIScheme)
}

// ParseURI splits an s3://bucket/key reference. A bare key resolves against
// defaultBucket.
func ParseURI(ref, defaultBucket string) (bucket, key string, err error) {
	if !IsURI(ref) {
		key = strings.TrimPrefix(ref, "/")
		if key == "" || defaultBucket == "" {
			return "", "", fmt.Errorf("%w: %q", ErrInvalidURI, ref)
		}
		return defaultBucket, key, nil
	}

	rest := strings.TrimPrefix(ref, URIScheme)
	bucket, key, ok := strings.Cut(rest, "/")
	if !ok || bucket == "" || key == "" {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidURI, ref)
	}
	return bucket, key, nil
}

// ReadObject downloads an entire object into memory.
func ReadObject(ctx context.Context, client Client, bucket, key string) ([]byte, error) {
	obj, err := client.GetObject(ctx, bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get object %s/%s: %w", bucket, key, err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, fmt.Errorf("failed to read object %s/%s: %w", bucket, key, err)
	}
	return data, nil
}

// WriteObject uploads data, creating the bucket first when it is missing.
func WriteObject(ctx context.Context, client Client, bucket, key, contentType string, data []byte) error {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %s: %w", bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket %s: %w", bucket, err)
		}
	}

	_, err = client.PutObject(ctx, bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s/%s: %w", bucket, key, err)
	}
	return nil
}
