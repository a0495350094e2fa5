package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// QuantityStore persists the operator's last-entered quantities so the grid
// can be pre-populated next session. Load soft-fails to an empty map,
// mirroring the counter store's recovery rule; Save failures propagate.
type QuantityStore interface {
	Load(ctx context.Context) map[string]int
	Save(ctx context.Context, quantities map[string]int) error
}

// FileQuantityStore keeps the SKU-to-quantity map as a JSON object on disk.
type FileQuantityStore struct {
	path string
}

func NewFileQuantityStore(path string) *FileQuantityStore {
	return &FileQuantityStore{path: path}
}

func (s *FileQuantityStore) Load(_ context.Context) map[string]int {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return map[string]int{}
	}
	var quantities map[string]int
	if err := json.Unmarshal(raw, &quantities); err != nil || quantities == nil {
		return map[string]int{}
	}
	return quantities
}

func (s *FileQuantityStore) Save(_ context.Context, quantities map[string]int) error {
	raw, err := json.Marshal(quantities)
	if err != nil {
		return fmt.Errorf("encode quantities: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("write quantities: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace quantities: %w", err)
	}
	return nil
}

// MemoryQuantityStore is an ephemeral stand-in for tests.
type MemoryQuantityStore struct {
	mu         sync.Mutex
	quantities map[string]int
}

func NewMemoryQuantityStore() *MemoryQuantityStore {
	return &MemoryQuantityStore{quantities: map[string]int{}}
}

func (s *MemoryQuantityStore) Load(_ context.Context) map[string]int {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]int, len(s.quantities))
	for k, v := range s.quantities {
		out[k] = v
	}
	return out
}

func (s *MemoryQuantityStore) Save(_ context.Context, quantities map[string]int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.quantities = make(map[string]int, len(quantities))
	for k, v := range quantities {
		s.quantities[k] = v
	}
	return nil
}
