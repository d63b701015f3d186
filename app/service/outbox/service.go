package outbox

import (
	"context"
	"log/slog"
	"time"

	"scholarbot/app/client/rocketchat"

	"github.com/samber/do"
)

const (
	bufferSize      = 64
	deliveryTimeout = 30 * time.Second
)

var _ do.Shutdownable = (*Service)(nil)

// Deliverer sends one reply to one user on the chat platform.
type Deliverer interface {
	SendMessage(ctx context.Context, user, text string) error
}

type Message struct {
	User string
	Text string
}

// Service buffers outbound replies so webhook handling never blocks on the
// chat platform.
type Service struct {
	queue     chan Message
	deliverer Deliverer
}

func New(di *do.Injector) (*Service, error) {
	return &Service{
		queue:     make(chan Message, bufferSize),
		deliverer: do.MustInvoke[*rocketchat.Client](di),
	}, nil
}

func (s *Service) Add(user, text string) {
	defer func() {
		if r := recover(); r != nil {
			// Shutdown closed the queue under us; the reply is lost anyway.
		}
	}()

	select {
	case s.queue <- Message{User: user, Text: text}:
	default:
		slog.Warn("outbox queue is full", "user", user)
	}
}

func (s *Service) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-s.queue:
			if !ok {
				return
			}

			s.deliver(ctx, msg)
		}
	}
}

func (s *Service) deliver(ctx context.Context, msg Message) {
	ctx, cancel := context.WithTimeout(ctx, deliveryTimeout)
	defer cancel()

	if err := s.deliverer.SendMessage(ctx, msg.User, msg.Text); err != nil {
		slog.Error("Failed to deliver message",
			"user", msg.User,
			"error", err,
		)
		return
	}

	slog.Info("Delivered message", "user", msg.User)
}

func (s *Service) Shutdown() error {
	close(s.queue)

	return nil
}
