// Package intent classifies inbound chat messages.
// One enumerated classifier is shared by the session controller and the query
// handler so every trigger phrase lives in a single, testable place.
package intent

import "strings"

// Intent is the resolved category of an inbound message.
type Intent int

const (
	// Query is the default: answer from the loaded document.
	Query Intent = iota
	// UploadRequest means the user asked to load a (new) PDF.
	UploadRequest
	// Identity means the user asked who/what the assistant is.
	Identity
)

// String returns the intent name for logging.
func (i Intent) String() string {
	switch i {
	case UploadRequest:
		return "upload_request"
	case Identity:
		return "identity"
	default:
		return "query"
	}
}

// uploadPhrases is matched as a case-insensitive EXACT match before any other
// routing happens.
var uploadPhrases = []string{
	"upload pdf",
	"new pdf",
	"analyze another pdf",
	"upload another pdf",
}

// identityPhrases is matched as a case-insensitive SUBSTRING match.
var identityPhrases = []string{
	"what is your name",
	"who are you",
	"who created you",
	"what do you do",
	"what can you help me with",
	"what are you",
	"who made you",
	"what's your name",
	"what are your capabilities",
	"what's your purpose",
	"what is your purpose",
	"what are you for",
	"what can you do",
}

// switchPhrases is the second, slightly different trigger set checked inside
// the query handler, matched as substrings anywhere in the query. The two sets
// diverge on purpose: "different pdf" and "another document" only switch
// documents mid-query, while a bare "upload pdf" only triggers before routing.
var switchPhrases = []string{
	"analyze another pdf",
	"upload another pdf",
	"new pdf",
	"different pdf",
	"another document",
}

// Classify resolves the intent of an inbound message, first match wins:
// upload request, then identity question, then query. Checked regardless of
// whether a document is loaded, so trigger phrases fire even mid-conversation.
func Classify(text string) Intent {
	lower := strings.ToLower(text)
	for _, p := range uploadPhrases {
		if lower == p {
			return UploadRequest
		}
	}
	for _, p := range identityPhrases {
		if strings.Contains(lower, p) {
			return Identity
		}
	}
	return Query
}

// DetectsSwitch reports whether a query embeds a request to switch documents.
// Substring matching means incidental trigger text inside a genuine question
// still fires; callers live with that.
func DetectsSwitch(query string) bool {
	lower := strings.ToLower(query)
	for _, p := range switchPhrases {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}
