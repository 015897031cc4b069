// Package usecases contains application business rules.
// The controller orchestrates entities and depends on port interfaces only -
// no framework code, no transport knowledge.
package usecases

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/0xcro3dile/docuchat-go/internal/domain/entities"
	"github.com/0xcro3dile/docuchat-go/internal/domain/intent"
	"github.com/0xcro3dile/docuchat-go/internal/domain/ports"
)

// Controller classifies each inbound user message and drives the session's
// mode transitions between awaiting-upload and ready.
type Controller struct {
	extractor  ports.DocumentExtractor
	completion ports.CompletionService
	log        *zap.Logger
}

// NewController creates a Controller with injected collaborators.
func NewController(extractor ports.DocumentExtractor, completion ports.CompletionService, log *zap.Logger) *Controller {
	if log == nil {
		log = zap.NewNop()
	}
	return &Controller{
		extractor:  extractor,
		completion: completion,
		log:        log,
	}
}

// HandleMessage processes one inbound user message. Priority order:
// upload-intent phrase, identity question, document query, upload solicitation.
// Upload and identity interactions never touch the history.
func (c *Controller) HandleMessage(ctx context.Context, sess *entities.Session, text string) entities.Reply {
	switch intent.Classify(text) {
	case intent.UploadRequest:
		sess.ClearDocument()
		c.log.Info("upload requested",
			zap.String("session_id", sess.ID))
		return entities.Reply{Text: uploadPrompt, AskUpload: true}

	case intent.Identity:
		return entities.Reply{Text: identityResponse}
	}

	if sess.Ready() {
		return c.answer(ctx, sess, text)
	}

	// No document loaded yet: every other message just solicits an upload.
	return entities.Reply{Text: uploadPrompt, AskUpload: true}
}

// HandleUpload feeds uploaded file bytes through the extractor. Non-empty text
// transitions the session to ready; an empty result or an extractor error
// leaves it awaiting upload.
func (c *Controller) HandleUpload(ctx context.Context, sess *entities.Session, up entities.Upload) entities.Reply {
	text, err := c.extractor.Extract(ctx, up.Data, up.Name)
	if err != nil {
		c.log.Error("extraction failed",
			zap.String("session_id", sess.ID),
			zap.String("file", up.Name),
			zap.Error(err))
		return entities.Reply{Text: extractionFailed}
	}
	if text == "" {
		c.log.Warn("extraction returned no text",
			zap.String("session_id", sess.ID),
			zap.String("file", up.Name))
		return entities.Reply{Text: extractionFailed}
	}

	sess.SetDocument(up.Name, text)
	c.log.Info("document loaded",
		zap.String("session_id", sess.ID),
		zap.String("file", up.Name),
		zap.Int("chars", len(text)))
	return entities.Reply{Text: fmt.Sprintf("PDF '%s' processed successfully! Ask me questions about the document.", up.Name)}
}
