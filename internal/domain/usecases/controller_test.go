package usecases

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0xcro3dile/docuchat-go/internal/domain/entities"
)

type stubExtractor struct {
	text string
	err  error
}

func (s *stubExtractor) Extract(ctx context.Context, data []byte, filename string) (string, error) {
	return s.text, s.err
}

func (s *stubExtractor) SupportedFormats() []string { return []string{"pdf"} }

type stubCompletion struct {
	reply  string
	err    error
	calls  int
	gotLen int
	got    []entities.Message
}

func (s *stubCompletion) Complete(ctx context.Context, history []entities.Message) (string, error) {
	s.calls++
	s.gotLen = len(history)
	s.got = append([]entities.Message{}, history...)
	return s.reply, s.err
}

func newTestController(ext *stubExtractor, comp *stubCompletion) *Controller {
	return NewController(ext, comp, nil)
}

func TestIdentityQuestion_FreshSession(t *testing.T) {
	comp := &stubCompletion{}
	c := newTestController(&stubExtractor{}, comp)
	sess := entities.NewSession("s1")

	reply := c.HandleMessage(context.Background(), sess, "who are you")

	assert.Equal(t, identityResponse, reply.Text)
	assert.False(t, reply.AskUpload)
	assert.Empty(t, sess.History)
	assert.Empty(t, sess.DocumentText)
	assert.Zero(t, comp.calls)
}

func TestIdentityQuestion_ReadySessionUntouched(t *testing.T) {
	comp := &stubCompletion{}
	c := newTestController(&stubExtractor{}, comp)
	sess := entities.NewSession("s1")
	sess.SetDocument("report.pdf", "Revenue: $5M")
	sess.AppendUser("earlier prompt")
	sess.AppendAssistant("earlier answer")

	reply := c.HandleMessage(context.Background(), sess, "what can you do?")

	assert.Equal(t, identityResponse, reply.Text)
	assert.Equal(t, "Revenue: $5M", sess.DocumentText)
	assert.Len(t, sess.History, 2)
	assert.Zero(t, comp.calls)
}

func TestUploadIntent_ClearsDocumentInAnyState(t *testing.T) {
	c := newTestController(&stubExtractor{}, &stubCompletion{})
	sess := entities.NewSession("s1")
	sess.SetDocument("report.pdf", "content")
	sess.AppendUser("prompt")
	sess.AppendAssistant("answer")

	reply := c.HandleMessage(context.Background(), sess, "Upload Another PDF")

	assert.Empty(t, sess.DocumentText)
	assert.True(t, reply.AskUpload)
	assert.Equal(t, uploadPrompt, reply.Text)
	assert.Len(t, sess.History, 2, "upload interactions never touch the history")
}

func TestAwaitingUpload_SolicitsFile(t *testing.T) {
	c := newTestController(&stubExtractor{}, &stubCompletion{})
	sess := entities.NewSession("s1")

	reply := c.HandleMessage(context.Background(), sess, "hello there")

	assert.True(t, reply.AskUpload)
	assert.Equal(t, uploadPrompt, reply.Text)
	assert.Empty(t, sess.History)
}

func TestQuery_SuccessAppendsUserThenAssistant(t *testing.T) {
	comp := &stubCompletion{reply: "$5M"}
	c := newTestController(&stubExtractor{}, comp)
	sess := entities.NewSession("s1")
	sess.SetDocument("report.pdf", "Revenue: $5M")

	reply := c.HandleMessage(context.Background(), sess, "what is the revenue?")

	require.Len(t, sess.History, 2)
	assert.Equal(t, entities.RoleUser, sess.History[0].Role)
	assert.Equal(t, entities.RoleAssistant, sess.History[1].Role)
	assert.Equal(t, "$5M", sess.History[1].Content)
	assert.Equal(t, "$5M", reply.Text)

	// The combined prompt embeds both the document text and the raw query.
	prompt := sess.History[0].Content
	assert.Contains(t, prompt, "Revenue: $5M")
	assert.Contains(t, prompt, "what is the revenue?")

	// The completion collaborator receives the full history.
	assert.Equal(t, 1, comp.calls)
	assert.Equal(t, 1, comp.gotLen)
	assert.Equal(t, prompt, comp.got[0].Content)
}

func TestQuery_FailureLeavesHistoryAsymmetric(t *testing.T) {
	comp := &stubCompletion{err: errors.New("provider unavailable")}
	c := newTestController(&stubExtractor{}, comp)
	sess := entities.NewSession("s1")
	sess.SetDocument("report.pdf", "content")

	reply := c.HandleMessage(context.Background(), sess, "summarize this")

	require.Len(t, sess.History, 1, "only the user entry remains on failure")
	assert.Equal(t, entities.RoleUser, sess.History[0].Role)
	assert.Equal(t, "Error: provider unavailable", reply.Text)
}

func TestQuery_FullHistoryResentEveryTurn(t *testing.T) {
	comp := &stubCompletion{reply: "answer"}
	c := newTestController(&stubExtractor{}, comp)
	sess := entities.NewSession("s1")
	sess.SetDocument("report.pdf", "content")

	c.HandleMessage(context.Background(), sess, "first question")
	c.HandleMessage(context.Background(), sess, "second question")

	assert.Equal(t, 2, comp.calls)
	assert.Equal(t, 3, comp.gotLen, "second call carries user,assistant,user")
}

func TestQuery_SwitchDocumentMidQuery(t *testing.T) {
	comp := &stubCompletion{reply: "should not be used"}
	c := newTestController(&stubExtractor{}, comp)
	sess := entities.NewSession("s1")
	sess.SetDocument("report.pdf", "content")
	sess.AppendUser("prompt")
	sess.AppendAssistant("answer")

	reply := c.HandleMessage(context.Background(), sess, "let's try a different document")

	assert.Empty(t, sess.DocumentText)
	assert.True(t, reply.AskUpload)
	assert.Equal(t, switchAck, reply.Text)
	assert.Zero(t, comp.calls, "completion collaborator must not be invoked")
	assert.Len(t, sess.History, 2, "history unchanged")
}

func TestQuery_IncidentalSwitchPhraseStillFires(t *testing.T) {
	comp := &stubCompletion{reply: "unused"}
	c := newTestController(&stubExtractor{}, comp)
	sess := entities.NewSession("s1")
	sess.SetDocument("report.pdf", "the new pdf export pipeline ships in Q3")

	reply := c.HandleMessage(context.Background(), sess, "when does the new pdf pipeline ship?")

	assert.Empty(t, sess.DocumentText, "incidental trigger text clears the document")
	assert.True(t, reply.AskUpload)
	assert.Zero(t, comp.calls)
}

func TestHandleUpload_SuccessTransitionsToReady(t *testing.T) {
	c := newTestController(&stubExtractor{text: "page one text"}, &stubCompletion{})
	sess := entities.NewSession("s1")

	reply := c.HandleUpload(context.Background(), sess, entities.Upload{Name: "doc.pdf", Data: []byte("%PDF")})

	assert.True(t, sess.Ready())
	assert.Equal(t, "page one text", sess.DocumentText, "stored text equals extractor output verbatim")
	assert.Contains(t, reply.Text, "doc.pdf")
	assert.Contains(t, reply.Text, "processed successfully")
}

func TestHandleUpload_EmptyExtractionStaysAwaiting(t *testing.T) {
	c := newTestController(&stubExtractor{text: ""}, &stubCompletion{})
	sess := entities.NewSession("s1")

	reply := c.HandleUpload(context.Background(), sess, entities.Upload{Name: "doc.pdf", Data: []byte("%PDF")})

	assert.False(t, sess.Ready())
	assert.Empty(t, sess.DocumentText)
	assert.Equal(t, extractionFailed, reply.Text)
}

func TestHandleUpload_ExtractorErrorStaysAwaiting(t *testing.T) {
	c := newTestController(&stubExtractor{err: errors.New("corrupt file")}, &stubCompletion{})
	sess := entities.NewSession("s1")

	reply := c.HandleUpload(context.Background(), sess, entities.Upload{Name: "doc.pdf", Data: []byte("junk")})

	assert.False(t, sess.Ready())
	assert.Equal(t, extractionFailed, reply.Text)
}

func TestHandleUpload_OverwritesPreviousDocument(t *testing.T) {
	c := newTestController(&stubExtractor{text: "second doc"}, &stubCompletion{})
	sess := entities.NewSession("s1")
	sess.SetDocument("first.pdf", "first doc")

	c.HandleUpload(context.Background(), sess, entities.Upload{Name: "second.pdf", Data: []byte("%PDF")})

	assert.Equal(t, "second doc", sess.DocumentText)
	assert.Equal(t, "second.pdf", sess.DocumentName)
}

func TestBuildPrompt_ContainsFramingDocumentAndQuery(t *testing.T) {
	prompt := buildPrompt("DOC BODY", "THE QUESTION")

	assert.True(t, strings.HasPrefix(prompt, promptFraming))
	assert.Contains(t, prompt, "PDF Content:\nDOC BODY")
	assert.Contains(t, prompt, "User Question: THE QUESTION")
}
