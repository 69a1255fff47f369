package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Local writes to the local file system.
type Local struct{}

var _ Storage = (*Local)(nil)

func NewLocal() *Local {
	return &Local{}
}

// Save creates or truncates the file at path and creates missing parent directories.
func (l *Local) Save(ctx context.Context, path string, r io.Reader) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, dirPerm); err != nil {
			return fmt.Errorf("%w: could not create directory: %w", ErrWriteFailed, err)
		}
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, filePerm)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}

	if _, err = io.Copy(f, r); err != nil {
		_ = f.Close()

		return fmt.Errorf("%w: %s: %w", ErrWriteFailed, path, err)
	}

	if err = f.Close(); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWriteFailed, path, err)
	}

	return nil
}
