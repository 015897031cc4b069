package completion

import (
	"fmt"

	"github.com/0xcro3dile/docuchat-go/internal/domain/ports"
)

// Config selects and configures a completion provider.
type Config struct {
	Provider string // "gemini" or "openai"
	Model    string
	APIKey   string
	BaseURL  string // openai only; empty means the provider default
}

// New builds a ports.CompletionService for the configured provider.
func New(cfg Config) (ports.CompletionService, error) {
	switch cfg.Provider {
	case "gemini", "":
		return NewGeminiAdapter(cfg.APIKey, cfg.Model), nil
	case "openai":
		return NewOpenAIAdapter(cfg.BaseURL, cfg.APIKey, cfg.Model), nil
	default:
		return nil, fmt.Errorf("unknown completion provider %q", cfg.Provider)
	}
}
