package invoice

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
)

// DefaultCounterSeed is the first invoice number issued when no counter has
// ever been persisted.
const DefaultCounterSeed = 1001

// CounterStore issues durable, monotonically increasing invoice numbers.
// The persisted value is always the next number to be issued. Load never
// fails observably: a missing, empty, or corrupt source degrades to the seed.
// Save failures are the caller's to report.
type CounterStore interface {
	Load(ctx context.Context) int
	Save(ctx context.Context, value int) error
}

// FileCounterStore keeps the next invoice number as a plain decimal integer
// in a text file.
type FileCounterStore struct {
	path string
	seed int
}

func NewFileCounterStore(path string, seed int) *FileCounterStore {
	if seed <= 0 {
		seed = DefaultCounterSeed
	}
	return &FileCounterStore{path: path, seed: seed}
}

func (s *FileCounterStore) Load(_ context.Context) int {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return s.seed
	}
	n, err := strconv.Atoi(strings.TrimSpace(string(raw)))
	if err != nil || n <= 0 {
		return s.seed
	}
	return n
}

// Save writes through a temp file and rename so a crash cannot leave a torn
// value behind.
func (s *FileCounterStore) Save(_ context.Context, value int) error {
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, []byte(strconv.Itoa(value)), 0o644); err != nil {
		return fmt.Errorf("write counter: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace counter: %w", err)
	}
	return nil
}

// MemoryCounterStore is an ephemeral stand-in for tests.
type MemoryCounterStore struct {
	mu    sync.Mutex
	value int
	seed  int
}

func NewMemoryCounterStore(seed int) *MemoryCounterStore {
	if seed <= 0 {
		seed = DefaultCounterSeed
	}
	return &MemoryCounterStore{seed: seed}
}

func (s *MemoryCounterStore) Load(_ context.Context) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.value <= 0 {
		return s.seed
	}
	return s.value
}

func (s *MemoryCounterStore) Save(_ context.Context, value int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.value = value
	return nil
}
