package main

import (
	"log"

	"github.com/0xcro3dile/docuchat-go/internal/adapters/completion"
	"github.com/0xcro3dile/docuchat-go/internal/adapters/extractor"
	"github.com/0xcro3dile/docuchat-go/internal/adapters/transcript"
	"github.com/0xcro3dile/docuchat-go/internal/config"
	"github.com/0xcro3dile/docuchat-go/internal/domain/usecases"
	"github.com/0xcro3dile/docuchat-go/internal/logger"
	"github.com/0xcro3dile/docuchat-go/internal/server"
	"github.com/0xcro3dile/docuchat-go/internal/store"
	"github.com/0xcro3dile/docuchat-go/internal/transport/ws"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	zlog := logger.New(cfg.App.LogFilePath, cfg.App.Environment == "production")
	defer zlog.Sync()

	completer, err := completion.New(completion.Config{
		Provider: cfg.LLM.Provider,
		Model:    cfg.LLM.Model,
		APIKey:   cfg.LLM.APIKey,
		BaseURL:  cfg.LLM.BaseURL,
	})
	if err != nil {
		log.Fatalf("completion provider: %v", err)
	}

	extract := extractor.NewServiceExtractor(cfg.Extraction.ServiceURL)
	transcripts := transcript.NewFileStore(cfg.Transcript.Path)
	sessions := store.NewSessionStore(cfg.App.SessionTTL, transcripts, zlog)
	controller := usecases.NewController(extract, completer, zlog)
	chat := ws.NewHandler(controller, sessions, cfg.App.UploadTimeout, zlog)

	srv := server.New(cfg.App.Port, chat, zlog)
	if err := srv.Run(); err != nil {
		log.Fatalf("server: %v", err)
	}
}
