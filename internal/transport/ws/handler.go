package ws

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"go.uber.org/zap"

	"github.com/0xcro3dile/docuchat-go/internal/domain/usecases"
	"github.com/0xcro3dile/docuchat-go/internal/store"
)

// Handler upgrades /ws requests and serves the chat session over them.
type Handler struct {
	controller    *usecases.Controller
	sessions      *store.SessionStore
	uploadTimeout time.Duration
	log           *zap.Logger
}

// NewHandler creates a websocket chat handler.
func NewHandler(controller *usecases.Controller, sessions *store.SessionStore, uploadTimeout time.Duration, log *zap.Logger) *Handler {
	if uploadTimeout <= 0 {
		uploadTimeout = 120 * time.Second
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{
		controller:    controller,
		sessions:      sessions,
		uploadTimeout: uploadTimeout,
		log:           log,
	}
}

// Upgrade is the fiber route handler hijacking the connection.
func (h *Handler) Upgrade(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return websocket.New(func(conn *websocket.Conn) {
			h.serve(conn)
		})(c)
	}
	return fiber.ErrUpgradeRequired
}

// serve runs the chat session for one connection. The session is created on
// connect and ended - transcript flushed - when the connection drops.
func (h *Handler) serve(conn *websocket.Conn) {
	sess := h.sessions.Create()
	defer h.sessions.End(sess.ID)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	c := &client{
		conn:          conn,
		controller:    h.controller,
		sessions:      h.sessions,
		session:       sess,
		uploadTimeout: h.uploadTimeout,
		log:           h.log,
		inbound:       make(chan Frame, 16),
		send:          make(chan []byte, 256),
	}

	h.log.Info("websocket session started", zap.String("session_id", sess.ID))

	go c.writePump()
	go c.readPump(cancel)

	c.run(ctx)
	close(c.send)

	h.log.Info("websocket session ended", zap.String("session_id", sess.ID))
}
