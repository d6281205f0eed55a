// Package loginlog appends one record per successful login to a JSON array
// document. The whole document is rewritten on each append, matching the
// sink's external format; a mutex serializes the read-modify-write.
package loginlog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/sportshop/shop-system/internal/core/domain"
)

type FileSink struct {
	path string
	mu   sync.Mutex
}

func NewFileSink(path string) *FileSink {
	return &FileSink{path: path}
}

// Append adds one event to the document. A missing or malformed document is
// replaced by a fresh single-entry list.
func (s *FileSink) Append(event domain.LoginEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create log dir: %w", err)
	}

	entries := s.readEntries()
	entries = append(entries, event)

	blob, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal login log: %w", err)
	}
	if err := os.WriteFile(s.path, blob, 0o644); err != nil {
		return fmt.Errorf("write login log: %w", err)
	}
	return nil
}

func (s *FileSink) readEntries() []domain.LoginEvent {
	blob, err := os.ReadFile(s.path)
	if err != nil {
		// Missing or unreadable document: start a fresh list rather than
		// fail the login.
		return nil
	}

	var entries []domain.LoginEvent
	if err := json.Unmarshal(blob, &entries); err != nil {
		return nil
	}
	return entries
}
