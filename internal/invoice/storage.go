package invoice

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

var ErrObjectNotFound = errors.New("object not found")

type ObjectMeta struct {
	Key       string
	Size      int
	UpdatedAt time.Time
}

// Storage archives committed invoice documents.
type Storage interface {
	PutObject(ctx context.Context, key string, body []byte, contentType string) error
	Head(ctx context.Context, key string) (ObjectMeta, error)
}

// InMemoryStorage is a lightweight archive to unblock testing without disk.
type InMemoryStorage struct {
	mu   sync.RWMutex
	data map[string][]byte
	meta map[string]ObjectMeta
}

func NewInMemoryStorage() *InMemoryStorage {
	return &InMemoryStorage{
		data: map[string][]byte{},
		meta: map[string]ObjectMeta{},
	}
}

func (s *InMemoryStorage) PutObject(ctx context.Context, key string, body []byte, _ string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = body
	s.meta[key] = ObjectMeta{
		Key:       key,
		Size:      len(body),
		UpdatedAt: time.Now().UTC(),
	}
	return ctx.Err()
}

func (s *InMemoryStorage) Head(_ context.Context, key string) (ObjectMeta, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	meta, ok := s.meta[key]
	if !ok {
		return ObjectMeta{}, ErrObjectNotFound
	}
	return meta, nil
}

// DirStorage keeps archive objects as files under a single directory.
type DirStorage struct {
	dir string
}

func NewDirStorage(dir string) (*DirStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create archive dir: %w", err)
	}
	return &DirStorage{dir: dir}, nil
}

func (s *DirStorage) PutObject(_ context.Context, key string, body []byte, _ string) error {
	if err := os.WriteFile(s.objectPath(key), body, 0o644); err != nil {
		return fmt.Errorf("archive %s: %w", key, err)
	}
	return nil
}

func (s *DirStorage) Head(_ context.Context, key string) (ObjectMeta, error) {
	fi, err := os.Stat(s.objectPath(key))
	if err != nil {
		return ObjectMeta{}, ErrObjectNotFound
	}
	return ObjectMeta{Key: key, Size: int(fi.Size()), UpdatedAt: fi.ModTime()}, nil
}

func (s *DirStorage) objectPath(key string) string {
	// keys are flat file names; strip any path the caller smuggled in
	return filepath.Join(s.dir, filepath.Base(key))
}
