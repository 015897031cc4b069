package completion

import (
	"context"
	"fmt"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"github.com/0xcro3dile/docuchat-go/internal/domain/entities"
)

// OpenAIAdapter implements ports.CompletionService using the OpenAI chat
// completions API. With a custom base URL it also covers OpenAI-compatible
// local endpoints such as Ollama.
type OpenAIAdapter struct {
	client openai.Client
	model  string
}

// NewOpenAIAdapter creates an OpenAI completion adapter. baseURL may be empty
// to use the default API endpoint.
func NewOpenAIAdapter(baseURL, apiKey, model string) *OpenAIAdapter {
	if model == "" {
		model = openai.ChatModelGPT4oMini
	}

	options := []option.RequestOption{}
	if baseURL != "" {
		options = append(options, option.WithBaseURL(baseURL))
	}
	if apiKey != "" {
		options = append(options, option.WithAPIKey(apiKey))
	}

	return &OpenAIAdapter{
		client: openai.NewClient(options...),
		model:  model,
	}
}

// Complete sends the ordered history and returns the assistant reply.
func (a *OpenAIAdapter) Complete(ctx context.Context, history []entities.Message) (string, error) {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(history))
	for _, m := range history {
		if m.Role == entities.RoleAssistant {
			messages = append(messages, openai.AssistantMessage(m.Content))
		} else {
			messages = append(messages, openai.UserMessage(m.Content))
		}
	}

	param := openai.ChatCompletionNewParams{
		Model:    a.model,
		Messages: messages,
	}

	resp, err := a.client.Chat.Completions.New(ctx, param)
	if err != nil {
		return "", fmt.Errorf("calling completions API: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("completions API returned no choices")
	}

	return resp.Choices[0].Message.Content, nil
}
