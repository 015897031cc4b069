// Command docuchat-cli runs the assistant in the terminal. Uploading a PDF
// means saving it into the inbox directory while the assistant is waiting
// for a file.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"golang.org/x/term"

	"github.com/0xcro3dile/docuchat-go/internal/adapters/completion"
	"github.com/0xcro3dile/docuchat-go/internal/adapters/extractor"
	"github.com/0xcro3dile/docuchat-go/internal/adapters/inbox"
	"github.com/0xcro3dile/docuchat-go/internal/adapters/transcript"
	"github.com/0xcro3dile/docuchat-go/internal/config"
	"github.com/0xcro3dile/docuchat-go/internal/domain/entities"
	"github.com/0xcro3dile/docuchat-go/internal/domain/ports"
	"github.com/0xcro3dile/docuchat-go/internal/domain/usecases"
	"github.com/0xcro3dile/docuchat-go/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	zlog := logger.NewFileOnly(cfg.App.LogFilePath)
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
	controller := usecases.NewController(extract, completer, zlog)
	transcripts := transcript.NewFileStore(cfg.Transcript.Path)

	if err := os.MkdirAll(cfg.Inbox.Dir, 0o755); err != nil {
		log.Fatalf("inbox dir: %v", err)
	}

	watcher, err := inbox.NewFSNotifyWatcher(nil)
	if err != nil {
		log.Fatalf("inbox watcher: %v", err)
	}
	defer watcher.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := watcher.Watch(ctx, cfg.Inbox.Dir)
	if err != nil {
		log.Fatalf("watching inbox: %v", err)
	}

	sess := entities.NewSession("cli")
	t := term.NewTerminal(os.Stdin, "> ")

	fmt.Fprintln(t, usecases.WelcomeMessage)
	fmt.Fprintf(t, "\n(Drop PDF files into %s when asked to upload.)\n\n", cfg.Inbox.Dir)

	for {
		line, err := readLine(t)
		if err != nil {
			if err != io.EOF {
				fmt.Fprintln(t, "Fatal:", err)
			}
			break
		}
		if line == "" {
			continue
		}

		reply := controller.HandleMessage(ctx, sess, line)
		fmt.Fprintln(t, reply.Text)

		if reply.AskUpload {
			askInbox(ctx, t, controller, sess, events, cfg)
		}
	}

	if err := transcripts.Save(sess.History); err != nil {
		log.Printf("saving transcript: %v", err)
	}
}

// askInbox waits for a PDF to land in the inbox, honoring the upload ceiling.
func askInbox(ctx context.Context, w io.Writer, controller *usecases.Controller, sess *entities.Session, events <-chan ports.FileEvent, cfg *config.Config) {
	fmt.Fprintf(w, "Waiting up to %s for a PDF in %s...\n", cfg.App.UploadTimeout, cfg.Inbox.Dir)

	path := inbox.WaitForFile(ctx, events, cfg.App.UploadTimeout)
	if path == "" {
		fmt.Fprintln(w, usecases.NoFileUploaded)
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(w, "An error occurred while processing the file:", err)
		return
	}

	reply := controller.HandleUpload(ctx, sess, entities.Upload{
		Name: filepath.Base(path),
		Data: data,
	})
	fmt.Fprintln(w, reply.Text)
}

// readLine reads one line in raw mode so the prompt behaves in a plain TTY.
func readLine(t *term.Terminal) (string, error) {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		// Not a TTY (piped input): fall back to the terminal's own reader.
		return t.ReadLine()
	}

	width, height, err := term.GetSize(fd)
	if err == nil {
		t.SetSize(width, height)
	}

	line, err := t.ReadLine()
	if restoreErr := term.Restore(fd, oldState); restoreErr != nil && err == nil {
		err = restoreErr
	}
	return line, err
}
