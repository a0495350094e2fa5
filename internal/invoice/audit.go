package invoice

import (
	"bufio"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"
)

// AuditRecorder keeps the append-only issuance journal. Entries are hash
// chained so gaps or edits are detectable after the fact.
type AuditRecorder interface {
	Append(ctx context.Context, entry AuditLog) error
	Last(ctx context.Context) (AuditLog, error)
}

var errAuditEmpty = errors.New("audit journal empty")

// HashChain links the entry to the recorder's latest hash before appending.
func HashChain(ctx context.Context, rec AuditRecorder, entry AuditLog) (AuditLog, error) {
	prev, _ := rec.Last(ctx)
	entry.PrevHash = prev.Hash
	entry.Hash = hashAudit(entry)
	return entry, rec.Append(ctx, entry)
}

func hashAudit(entry AuditLog) string {
	payload := fmt.Sprintf("%s|%s|%d|%s|%s", entry.CorrID, entry.Action, entry.Number, entry.Ts.UTC().Format(time.RFC3339Nano), entry.PrevHash)
	sum := sha256.Sum256([]byte(payload))
	return hex.EncodeToString(sum[:])
}

func CorrelationLogger(logger *slog.Logger, corrID string) *slog.Logger {
	if logger == nil {
		logger = slog.Default()
	}
	return logger.With("corrId", corrID)
}

type MemoryAuditRecorder struct {
	mu      sync.Mutex
	entries []AuditLog
}

func NewMemoryAuditRecorder() *MemoryAuditRecorder {
	return &MemoryAuditRecorder{}
}

func (m *MemoryAuditRecorder) Append(_ context.Context, entry AuditLog) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, entry)
	return nil
}

func (m *MemoryAuditRecorder) Last(_ context.Context) (AuditLog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.entries) == 0 {
		return AuditLog{}, errAuditEmpty
	}
	return m.entries[len(m.entries)-1], nil
}

// FileAuditRecorder appends entries as JSON lines. The tail entry is cached
// after the first read so chaining does not rescan the file per request.
type FileAuditRecorder struct {
	mu     sync.Mutex
	path   string
	last   AuditLog
	loaded bool
}

func NewFileAuditRecorder(path string) *FileAuditRecorder {
	return &FileAuditRecorder{path: path}
}

func (f *FileAuditRecorder) Append(_ context.Context, entry AuditLog) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	line, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encode audit entry: %w", err)
	}
	file, err := os.OpenFile(f.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open audit journal: %w", err)
	}
	defer file.Close()
	if _, err := file.Write(append(line, '\n')); err != nil {
		return fmt.Errorf("append audit entry: %w", err)
	}
	f.last = entry
	f.loaded = true
	return nil
}

func (f *FileAuditRecorder) Last(_ context.Context) (AuditLog, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.loaded {
		return f.last, nil
	}
	file, err := os.Open(f.path)
	if err != nil {
		return AuditLog{}, errAuditEmpty
	}
	defer file.Close()

	var last AuditLog
	found := false
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		var entry AuditLog
		if err := json.Unmarshal(scanner.Bytes(), &entry); err != nil {
			continue
		}
		last = entry
		found = true
	}
	if !found {
		return AuditLog{}, errAuditEmpty
	}
	f.last = last
	f.loaded = true
	return last, nil
}
