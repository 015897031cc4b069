// Package transcript persists finished session histories.
package transcript

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/0xcro3dile/docuchat-go/internal/domain/entities"
)

// FileStore writes the history to a single fixed path as a JSON array of
// {role, content} objects. There is no per-session filename uniqueness:
// concurrent session ends overwrite each other, last writer wins. The mutex
// only keeps individual writes from interleaving.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore creates a store writing to the given path.
func NewFileStore(path string) *FileStore {
	if path == "" {
		path = "chat_history.json"
	}
	return &FileStore{path: path}
}

// Save serializes the history to the transcript path.
func (s *FileStore) Save(history []entities.Message) error {
	if history == nil {
		history = []entities.Message{}
	}

	data, err := json.MarshalIndent(history, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling history: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating transcript dir: %w", err)
		}
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("writing transcript: %w", err)
	}
	return nil
}
