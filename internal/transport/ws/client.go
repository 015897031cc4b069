package ws

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/websocket/v2"
	"go.uber.org/zap"

	"github.com/0xcro3dile/docuchat-go/internal/domain/entities"
	"github.com/0xcro3dile/docuchat-go/internal/domain/usecases"
	"github.com/0xcro3dile/docuchat-go/internal/store"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 16 * 1024 * 1024 // uploads arrive base64-encoded in frames
)

// client glues one websocket connection to one session. The read pump feeds
// inbound frames into a channel; the run loop consumes them one at a time.
type client struct {
	conn          *websocket.Conn
	controller    *usecases.Controller
	sessions      *store.SessionStore
	session       *entities.Session
	uploadTimeout time.Duration
	log           *zap.Logger

	inbound chan Frame
	send    chan []byte
}

// run is the per-connection actor: welcome the user, then process frames
// strictly sequentially until the connection drops.
func (c *client) run(ctx context.Context) {
	c.sendMessage(usecases.WelcomeMessage)

	for frame := range c.inbound {
		c.dispatch(ctx, frame)
		c.sessions.Touch(c.session)
	}
}

func (c *client) dispatch(ctx context.Context, frame Frame) {
	switch frame.Type {
	case FrameMessage:
		c.handleMessage(ctx, frame.Content)
	case FrameFile:
		// Unsolicited upload: accepted the same way as a solicited one.
		c.handleFile(ctx, frame)
	default:
		c.sendError("unknown frame type: " + frame.Type)
	}
}

func (c *client) handleMessage(ctx context.Context, text string) {
	reply := c.controller.HandleMessage(ctx, c.session, text)
	c.sendMessage(reply.Text)
	if reply.AskUpload {
		c.awaitUpload(ctx)
	}
}

// awaitUpload solicits a file and waits for it with the configured ceiling.
// A text frame arriving instead resolves the prompt as "no file uploaded" and
// is then classified normally.
func (c *client) awaitUpload(ctx context.Context) {
	c.sendAskFile()

	timer := time.NewTimer(c.uploadTimeout)
	defer timer.Stop()

	select {
	case frame, ok := <-c.inbound:
		if !ok {
			return
		}
		if frame.Type == FrameFile {
			c.handleFile(ctx, frame)
			return
		}
		c.sendMessage(usecases.NoFileUploaded)
		c.handleMessage(ctx, frame.Content)
	case <-timer.C:
		c.log.Info("upload wait timed out", zap.String("session_id", c.session.ID))
		c.sendMessage(usecases.NoFileUploaded)
	case <-ctx.Done():
	}
}

func (c *client) handleFile(ctx context.Context, frame Frame) {
	if strings.ToLower(filepath.Ext(frame.Name)) != ".pdf" {
		c.sendError("Only PDF files are accepted.")
		return
	}

	data, err := base64.StdEncoding.DecodeString(frame.Data)
	if err != nil {
		c.log.Warn("bad upload payload",
			zap.String("session_id", c.session.ID),
			zap.Error(err))
		c.sendError("An error occurred while processing the file: " + err.Error())
		return
	}

	reply := c.controller.HandleUpload(ctx, c.session, entities.Upload{Name: frame.Name, Data: data})
	c.sendMessage(reply.Text)
}

func (c *client) sendMessage(text string) {
	c.sendFrame(Frame{Type: FrameMessage, Content: text})
}

func (c *client) sendError(text string) {
	c.sendFrame(Frame{Type: FrameError, Content: text})
}

func (c *client) sendAskFile() {
	c.sendFrame(Frame{
		Type:     FrameAskFile,
		Content:  "Please upload a PDF file to analyze!",
		Accept:   []string{".pdf"},
		MaxFiles: 1,
		Timeout:  int(c.uploadTimeout / time.Second),
	})
}

func (c *client) sendFrame(frame Frame) {
	data, err := json.Marshal(frame)
	if err != nil {
		return
	}
	select {
	case c.send <- data:
	default:
		// Slow consumer: drop the connection's buffer rather than block the
		// actor forever.
		c.log.Warn("outbound buffer full, dropping frame",
			zap.String("session_id", c.session.ID))
	}
}

// readPump pumps frames from the websocket connection into the inbound channel.
func (c *client) readPump(cancel context.CancelFunc) {
	defer func() {
		cancel()
		close(c.inbound)
		c.conn.Close()
	}()
	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.log.Warn("websocket read error",
					zap.String("session_id", c.session.ID),
					zap.Error(err))
			}
			return
		}

		var frame Frame
		if err := json.Unmarshal(raw, &frame); err != nil {
			c.sendError("invalid frame: " + err.Error())
			continue
		}
		c.inbound <- frame
	}
}

// writePump pumps outbound frames to the websocket connection and keeps the
// connection alive with pings.
func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
