// Package server sets up the fiber application and routes.
package server

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"go.uber.org/zap"

	"github.com/0xcro3dile/docuchat-go/internal/transport/ws"
)

// Server wraps the fiber app.
type Server struct {
	app  *fiber.App
	port string
	log  *zap.Logger
}

// New builds the fiber app with the chat websocket route.
func New(port string, chat *ws.Handler, log *zap.Logger) *Server {
	app := fiber.New(fiber.Config{
		BodyLimit: 20 * 1024 * 1024,
	})

	app.Use(cors.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	app.Get("/ws", chat.Upgrade)

	return &Server{
		app:  app,
		port: port,
		log:  log,
	}
}

// App exposes the underlying fiber app, mainly for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// Run starts listening. Blocks until the server stops.
func (s *Server) Run() error {
	s.log.Info("server listening", zap.String("port", s.port))
	return s.app.Listen(":" + s.port)
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}
