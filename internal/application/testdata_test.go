package application_test

import (
	"context"
	"errors"
	"io"
	"sync"
	"time"
)

var (
	ctx = context.Background()

	refTime = time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
	now     = func() time.Time { return time.Date(2024, time.March, 15, 14, 30, 5, 0, time.UTC) }

	errStorage = errors.New("storage failed")
)

// memoryStorage keeps saved files in memory.
type memoryStorage struct {
	mu    sync.Mutex
	files map[string]string
	err   error
}

func newMemoryStorage() *memoryStorage {
	return &memoryStorage{files: map[string]string{}}
}

func (s *memoryStorage) Save(_ context.Context, path string, r io.Reader) error {
	if s.err != nil {
		return s.err
	}

	b, err := io.ReadAll(r)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.files[path] = string(b)

	return nil
}

func (s *memoryStorage) file(path string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.files[path]

	return f, ok
}

func (s *memoryStorage) total() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.files)
}

func seed(s int64) *int64 {
	return &s
}
