// Package storage persists serialized datasets to the local disk or to S3.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

var (
	ErrWriteFailed        = errors.New("could not write output")
	ErrInvalidDestination = errors.New("invalid output destination")
	ErrInvalidConfig      = errors.New("invalid storage configuration")
)

// Storage saves the content of r under path. An existing file is overwritten.
type Storage interface {
	Save(ctx context.Context, path string, r io.Reader) error
}

const s3Scheme = "s3://"

// Destination is a parsed output path.
type Destination struct {
	// Path is the local file path, empty for S3.
	Path   string
	Bucket string
	Key    string
}

// IsS3 reports if the Destination is an S3 object.
func (d Destination) IsS3() bool {
	return d.Bucket != ""
}

func (d Destination) String() string {
	if d.IsS3() {
		return s3Scheme + d.Bucket + "/" + d.Key
	}

	return d.Path
}

// ParseDestination parses an output path. Paths of the form s3://bucket/key
// are S3 objects, everything else is a local file.
func ParseDestination(path string) (Destination, error) {
	if strings.TrimSpace(path) == "" {
		return Destination{}, fmt.Errorf("%w: empty path", ErrInvalidDestination)
	}

	rest, ok := strings.CutPrefix(path, s3Scheme)
	if !ok {
		return Destination{Path: path}, nil
	}

	bucket, key, _ := strings.Cut(rest, "/")
	if bucket == "" || key == "" || strings.HasSuffix(key, "/") {
		return Destination{}, fmt.Errorf("%w: %q, expected s3://bucket/key", ErrInvalidDestination, path)
	}

	return Destination{Bucket: bucket, Key: key}, nil
}

// Mux saves to S3 or to the local disk, depending on the path.
type Mux struct {
	local Storage
	s3    Storage
}

var _ Storage = (*Mux)(nil)

// NewMux returns a Storage that routes S3 paths to s3 and all others to local.
// s3 can be nil, if no S3 output is expected.
func NewMux(local Storage, s3 Storage) *Mux {
	return &Mux{local: local, s3: s3}
}

func (m *Mux) Save(ctx context.Context, path string, r io.Reader) error {
	dst, err := ParseDestination(path)
	if err != nil {
		return err
	}

	if !dst.IsS3() {
		return m.local.Save(ctx, path, r) //nolint:wrapcheck // storages wrap their own errors
	}

	if m.s3 == nil {
		return fmt.Errorf("%w: s3 is not configured", ErrInvalidConfig)
	}

	return m.s3.Save(ctx, path, r) //nolint:wrapcheck // storages wrap their own errors
}
