package notify

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/forgeworks/forge/ent"
	"github.com/forgeworks/forge/pkg/config"
)

// Service posts ticket notifications to Slack.
// Nil-safe: all methods are no-ops when service is nil.
type Service struct {
	client *Client
	logger *slog.Logger
}

// NewService creates a notification service from config. The bot token is
// read from the configured environment variable. Returns nil when the
// notifier is disabled or the token or channel is missing, which turns every
// notification into a no-op.
func NewService(cfg *config.NotifierConfig) *Service {
	if !cfg.Enabled || cfg.Channel == "" {
		return nil
	}
	token := os.Getenv(cfg.TokenEnv)
	if token == "" {
		slog.Warn("Notifier enabled but token env is empty, notifications disabled", "token_env", cfg.TokenEnv)
		return nil
	}
	return &Service{
		client: NewClient(token, cfg.Channel),
		logger: slog.Default().With("component", "notify-service"),
	}
}

// NewServiceWithClient creates a Service backed by a pre-built Client.
// Useful for testing with a mock API server.
func NewServiceWithClient(client *Client) *Service {
	return &Service{
		client: client,
		logger: slog.Default().With("component", "notify-service"),
	}
}

// TicketHeld announces a ticket parked on hold for a human decision.
// Fail-open: errors are logged, never returned.
func (s *Service) TicketHeld(ctx context.Context, t *ent.Ticket, reason string) {
	if s == nil {
		return
	}
	blocks := BuildHeldMessage(t, reason)
	if err := s.client.PostMessage(ctx, blocks, 5*time.Second); err != nil {
		s.logger.Warn("Failed to send hold notification",
			"ticket_id", t.ID,
			"error", err)
	}
}

// TicketNeedsReview announces a ticket whose verification did not pass.
// Fail-open: errors are logged, never returned.
func (s *Service) TicketNeedsReview(ctx context.Context, t *ent.Ticket, attempt int) {
	if s == nil {
		return
	}
	blocks := BuildNeedsReviewMessage(t, attempt)
	if err := s.client.PostMessage(ctx, blocks, 5*time.Second); err != nil {
		s.logger.Warn("Failed to send review notification",
			"ticket_id", t.ID,
			"attempt", attempt,
			"error", err)
	}
}
