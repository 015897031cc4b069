// Package entities contains core business entities.
// These are the enterprise business rules - pure domain objects with no external dependencies.
package entities

import "time"

// Message roles. Roles alternate by convention but this is not enforced.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message represents a single conversation turn.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Session holds the per-connection conversation state: the text of the
// currently loaded document and the running message history.
// This is a core entity - no knowledge of transport or storage.
type Session struct {
	ID           string
	DocumentText string
	DocumentName string
	History      []Message
	CreatedAt    time.Time
}

// NewSession creates an empty session: no document loaded, empty history.
func NewSession(id string) *Session {
	return &Session{
		ID:        id,
		History:   []Message{},
		CreatedAt: time.Now(),
	}
}

// Ready reports whether a document is loaded and queries can be answered.
func (s *Session) Ready() bool {
	return s.DocumentText != ""
}

// SetDocument stores the extracted text of a freshly uploaded document,
// replacing any previous one.
func (s *Session) SetDocument(name, text string) {
	s.DocumentName = name
	s.DocumentText = text
}

// ClearDocument drops the loaded document, returning the session to the
// awaiting-upload state. History is untouched.
func (s *Session) ClearDocument() {
	s.DocumentName = ""
	s.DocumentText = ""
}

// AppendUser records a user turn. Only document-query exchanges are recorded;
// upload and identity interactions never reach the history.
func (s *Session) AppendUser(content string) {
	s.History = append(s.History, Message{Role: RoleUser, Content: content})
}

// AppendAssistant records an assistant turn.
func (s *Session) AppendAssistant(content string) {
	s.History = append(s.History, Message{Role: RoleAssistant, Content: content})
}

// Reply is the controller's answer to one inbound message or upload.
type Reply struct {
	Text string
	// AskUpload tells the transport to solicit a PDF upload after
	// delivering Text.
	AskUpload bool
}

// Upload carries the raw bytes of a file supplied by the user.
type Upload struct {
	Name string
	Data []byte
}
