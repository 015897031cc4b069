// Package completion provides LLM completion adapters.
// Adapters implement ports.CompletionService for the supported providers.
package completion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/0xcro3dile/docuchat-go/internal/domain/entities"
)

const defaultGeminiBaseURL = "https://generativelanguage.googleapis.com/v1"

// GeminiAdapter implements ports.CompletionService against the Gemini
// generateContent REST API.
type GeminiAdapter struct {
	baseURL string
	model   string
	apiKey  string
	client  *http.Client
}

// NewGeminiAdapter creates a Gemini completion adapter.
func NewGeminiAdapter(apiKey, model string) *GeminiAdapter {
	return NewGeminiAdapterWithURL(defaultGeminiBaseURL, apiKey, model)
}

// NewGeminiAdapterWithURL creates a Gemini adapter against a custom endpoint.
func NewGeminiAdapterWithURL(baseURL, apiKey, model string) *GeminiAdapter {
	if baseURL == "" {
		baseURL = defaultGeminiBaseURL
	}
	if model == "" {
		model = "gemini-2.0-flash"
	}
	return &GeminiAdapter{
		baseURL: baseURL,
		model:   model,
		apiKey:  apiKey,
		client: &http.Client{
			Timeout: 300 * time.Second,
		},
	}
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
	Role  string       `json:"role"`
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiCandidate struct {
	Content geminiContent `json:"content"`
}

type geminiResponse struct {
	Candidates []geminiCandidate `json:"candidates"`
}

// Complete sends the ordered history to Gemini and returns the assistant
// reply. The assistant role maps to "model" on the Gemini wire format.
func (a *GeminiAdapter) Complete(ctx context.Context, history []entities.Message) (string, error) {
	contents := make([]geminiContent, 0, len(history))
	for _, m := range history {
		role := "user"
		if m.Role == entities.RoleAssistant {
			role = "model"
		}
		contents = append(contents, geminiContent{
			Parts: []geminiPart{{Text: m.Content}},
			Role:  role,
		})
	}

	payload, err := json.Marshal(geminiRequest{Contents: contents})
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", a.baseURL, a.model)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("x-goog-api-key", a.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling Gemini: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("Gemini returned status %d: %s", resp.StatusCode, string(body))
	}

	var genResp geminiResponse
	if err := json.Unmarshal(body, &genResp); err != nil {
		return "", fmt.Errorf("decoding response: %w", err)
	}

	if len(genResp.Candidates) == 0 || len(genResp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("Gemini returned no candidates")
	}

	return genResp.Candidates[0].Content.Parts[0].Text, nil
}
