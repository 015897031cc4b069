// Package ports defines interfaces for external dependencies.
// Usecases depend on these abstractions, not concrete implementations.
// Adapters implement these interfaces.
package ports

import (
	"context"

	"github.com/0xcro3dile/docuchat-go/internal/domain/entities"
)

// DocumentExtractor turns an uploaded document into plain text.
type DocumentExtractor interface {
	// Extract returns the concatenated page text of the document, in page
	// order. An empty string with a nil error means nothing was extractable.
	Extract(ctx context.Context, data []byte, filename string) (string, error)

	// SupportedFormats returns formats this extractor handles (e.g. "pdf").
	SupportedFormats() []string
}

// CompletionService generates an assistant reply from the full message history.
type CompletionService interface {
	// Complete sends the ordered history to the model and returns the new
	// assistant message content.
	Complete(ctx context.Context, history []entities.Message) (string, error)
}

// TranscriptStore persists a finished session's history.
type TranscriptStore interface {
	// Save writes the history as a JSON array of {role, content} objects.
	Save(history []entities.Message) error
}

// FileEvent reports a new file in a watched directory.
type FileEvent struct {
	Path string
}

// InboxWatcher monitors a directory for dropped documents.
type InboxWatcher interface {
	// Watch starts monitoring the directory and emits an event per new file.
	Watch(ctx context.Context, dir string) (<-chan FileEvent, error)

	// Stop stops the watcher.
	Stop() error
}
