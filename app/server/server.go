package server

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"scholarbot/app/config"
	"scholarbot/app/service/assistant"
	"scholarbot/app/service/outbox"

	"github.com/gofiber/fiber/v2"
	"github.com/samber/do"
)

const shutdownTimeout = 5 * time.Second

// Service is the inbound webhook server the chat platform calls on every
// message.
type Service struct {
	cfg          *config.Config
	assistantSvc *assistant.Service
	outboxSvc    *outbox.Service

	app *fiber.App
}

func New(di *do.Injector) (*Service, error) {
	s := &Service{
		cfg:          do.MustInvoke[*config.Config](di),
		assistantSvc: do.MustInvoke[*assistant.Service](di),
		outboxSvc:    do.MustInvoke[*outbox.Service](di),
	}

	s.app = fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})
	s.app.Post("/query", s.handleQuery)
	s.app.Post("/research", s.handleResearch)

	return s, nil
}

func (s *Service) Run(ctx context.Context) {
	go func() {
		<-ctx.Done()
		_ = s.app.ShutdownWithTimeout(shutdownTimeout)
	}()

	addr := fmt.Sprintf(":%d", s.cfg.Server.Port)

	slog.Info("Webhook server listening", "addr", addr)

	if err := s.app.Listen(addr); err != nil {
		slog.Error("Webhook server stopped", "error", err)
	}
}

type queryRequest struct {
	UserName string `json:"user_name"`
	Text     string `json:"text"`
	Bot      bool   `json:"bot"`
}

func (s *Service) handleQuery(c *fiber.Ctx) error {
	req, ok := s.parseMessage(c)
	if !ok {
		return c.JSON(fiber.Map{"status": "ignored"})
	}

	slog.Info("Incoming message", "user", req.UserName, "text", req.Text)

	response := s.assistantSvc.Respond(c.UserContext(), req.UserName, req.Text)
	s.outboxSvc.Add(req.UserName, response)

	return c.JSON(fiber.Map{"status": "message_sent"})
}

func (s *Service) handleResearch(c *fiber.Ctx) error {
	req, ok := s.parseMessage(c)
	if !ok {
		return c.JSON(fiber.Map{"status": "ignored"})
	}

	response := s.assistantSvc.RespondResearch(c.UserContext(), req.UserName, req.Text)
	s.outboxSvc.Add(req.UserName, response)

	return c.JSON(fiber.Map{"status": "message_sent"})
}

// parseMessage extracts the inbound payload, filtering bot echoes and empty
// messages before they reach the orchestrator.
func (s *Service) parseMessage(c *fiber.Ctx) (queryRequest, bool) {
	var req queryRequest
	if err := c.BodyParser(&req); err != nil {
		slog.Warn("Failed to parse webhook payload", "error", err)
		return queryRequest{}, false
	}

	req.Text = strings.TrimSpace(req.Text)

	if req.Bot || req.UserName == "" || req.Text == "" {
		return queryRequest{}, false
	}

	return req, true
}
