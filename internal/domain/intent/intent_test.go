package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify_UploadPhrasesExactMatch(t *testing.T) {
	assert.Equal(t, UploadRequest, Classify("upload pdf"))
	assert.Equal(t, UploadRequest, Classify("Upload PDF"))
	assert.Equal(t, UploadRequest, Classify("ANALYZE ANOTHER PDF"))
	assert.Equal(t, UploadRequest, Classify("new pdf"))

	// Exact match only: embedding the phrase in a sentence does not fire here.
	assert.Equal(t, Query, Classify("please upload pdf for me"))
	assert.Equal(t, Query, Classify("can we do a new pdf?"))
}

func TestClassify_IdentitySubstringMatch(t *testing.T) {
	assert.Equal(t, Identity, Classify("who are you"))
	assert.Equal(t, Identity, Classify("hey, who made you anyway?"))
	assert.Equal(t, Identity, Classify("What CAN you DO"))
	assert.Equal(t, Identity, Classify("tell me what's your purpose here"))
}

func TestClassify_UploadBeatsIdentity(t *testing.T) {
	// Priority order is fixed: the upload check runs first. An exact upload
	// phrase can never also be an identity phrase, so this just pins the
	// ordering for plain queries.
	assert.Equal(t, Query, Classify("summarize chapter two"))
}

func TestDetectsSwitch_SubstringAnywhere(t *testing.T) {
	assert.True(t, DetectsSwitch("let's analyze another pdf now"))
	assert.True(t, DetectsSwitch("I want a different pdf"))
	assert.True(t, DetectsSwitch("can we look at another document?"))
	assert.False(t, DetectsSwitch("what is the revenue?"))
}

func TestDetectsSwitch_IncidentalTriggerTextFires(t *testing.T) {
	// Known quirk: trigger text inside a genuine question still switches.
	assert.True(t, DetectsSwitch("does the report mention the new pdf workflow?"))
}

func TestTriggerSetsDiverge(t *testing.T) {
	// "different pdf" only exists in the query-handler set.
	assert.Equal(t, Query, Classify("different pdf"))
	assert.True(t, DetectsSwitch("different pdf"))

	// "upload pdf" only exists in the top-level exact-match set.
	assert.Equal(t, UploadRequest, Classify("upload pdf"))
	assert.False(t, DetectsSwitch("upload pdf"))
}

func TestIntentString(t *testing.T) {
	assert.Equal(t, "upload_request", UploadRequest.String())
	assert.Equal(t, "identity", Identity.String())
	assert.Equal(t, "query", Query.String())
}
