// Package config loads process configuration from the environment.
package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App        AppConfig
	LLM        LLMConfig
	Extraction ExtractionConfig
	Transcript TranscriptConfig
	Inbox      InboxConfig
}

type AppConfig struct {
	Port          string
	Environment   string
	LogFilePath   string
	UploadTimeout time.Duration
	SessionTTL    time.Duration
}

type LLMConfig struct {
	Provider string // "gemini" or "openai"
	Model    string
	APIKey   string
	BaseURL  string // openai-compatible endpoints only
}

type ExtractionConfig struct {
	ServiceURL string
}

type TranscriptConfig struct {
	Path string
}

type InboxConfig struct {
	Dir string
}

// Load reads .env plus the process environment. The provider credential is
// required: a missing key is a hard error so startup fails fast.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	cfg := &Config{
		App: AppConfig{
			Port:          getEnv("APP_PORT", "3000"),
			Environment:   getEnv("GO_ENV", "development"),
			LogFilePath:   getEnv("LOG_FILE_PATH", "docuchat.log"),
			UploadTimeout: time.Duration(getEnvAsInt("UPLOAD_TIMEOUT_SECONDS", 120)) * time.Second,
			SessionTTL:    time.Duration(getEnvAsInt("SESSION_TTL_MINUTES", 30)) * time.Minute,
		},
		LLM: LLMConfig{
			Provider: getEnv("LLM_PROVIDER", "gemini"),
			Model:    getEnv("LLM_MODEL", ""),
			BaseURL:  getEnv("OPENAI_BASE_URL", ""),
		},
		Extraction: ExtractionConfig{
			ServiceURL: getEnv("PDF_SERVICE_URL", "http://localhost:8081"),
		},
		Transcript: TranscriptConfig{
			Path: getEnv("TRANSCRIPT_PATH", "chat_history.json"),
		},
		Inbox: InboxConfig{
			Dir: getEnv("INBOX_DIR", "./inbox"),
		},
	}

	switch cfg.LLM.Provider {
	case "gemini":
		cfg.LLM.APIKey = getEnv("GEMINI_API_KEY", "")
		if cfg.LLM.APIKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY is not set; define it in the environment or .env file")
		}
	case "openai":
		cfg.LLM.APIKey = getEnv("OPENAI_API_KEY", "")
		if cfg.LLM.APIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is not set; define it in the environment or .env file")
		}
	default:
		return nil, fmt.Errorf("unknown LLM_PROVIDER %q", cfg.LLM.Provider)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
