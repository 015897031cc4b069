// Package ws is the websocket chat transport.
// One connection owns one session; frames are processed strictly
// sequentially so session state is never mutated concurrently.
package ws

// Frame types on the wire.
const (
	// Client to server.
	FrameMessage = "message"
	FrameFile    = "file"

	// Server to client.
	FrameAskFile = "ask_file"
	FrameError   = "error"
)

// Frame is the JSON envelope exchanged over the websocket.
type Frame struct {
	Type    string `json:"type"`
	Content string `json:"content,omitempty"`

	// File upload fields (type "file").
	Name string `json:"name,omitempty"`
	Data string `json:"data,omitempty"` // base64

	// Upload solicitation fields (type "ask_file").
	Accept   []string `json:"accept,omitempty"`
	MaxFiles int      `json:"max_files,omitempty"`
	Timeout  int      `json:"timeout,omitempty"` // seconds
}
