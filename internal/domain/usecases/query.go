// query.go handles answering a free-text question from the loaded document.
package usecases

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/0xcro3dile/docuchat-go/internal/domain/entities"
	"github.com/0xcro3dile/docuchat-go/internal/domain/intent"
)

// answer builds the combined prompt and calls the completion service with the
// full history. On success the history grows by two entries (user then
// assistant); on completion failure only the user entry remains.
func (c *Controller) answer(ctx context.Context, sess *entities.Session, query string) entities.Reply {
	// A switch-document request embedded in the query short-circuits before
	// any completion call and without mutating the history.
	if intent.DetectsSwitch(query) {
		sess.ClearDocument()
		c.log.Info("document switch requested",
			zap.String("session_id", sess.ID))
		return entities.Reply{Text: switchAck, AskUpload: true}
	}

	prompt := buildPrompt(sess.DocumentText, query)
	sess.AppendUser(prompt)

	// The entire document is resent on every query; prompt size is logged so
	// the growth stays visible.
	c.log.Info("querying completion service",
		zap.String("session_id", sess.ID),
		zap.Int("history_len", len(sess.History)),
		zap.Int("prompt_chars", len(prompt)))

	response, err := c.completion.Complete(ctx, sess.History)
	if err != nil {
		c.log.Error("completion failed",
			zap.String("session_id", sess.ID),
			zap.Error(err))
		return entities.Reply{Text: "Error: " + err.Error()}
	}

	sess.AppendAssistant(response)
	return entities.Reply{Text: response}
}

// buildPrompt embeds the fixed framing, the complete document text and the raw
// query into a single prompt string.
func buildPrompt(documentText, query string) string {
	var sb strings.Builder
	sb.WriteString(promptFraming)
	sb.WriteString("\n\nPDF Content:\n")
	sb.WriteString(documentText)
	sb.WriteString("\n\nUser Question: ")
	sb.WriteString(query)
	return sb.String()
}
