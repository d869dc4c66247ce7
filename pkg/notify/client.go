// Package notify sends Slack notifications for tickets that need human
// attention: holds and review requests. Delivery is best-effort and never
// blocks a state transition.
package notify

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	goslack "github.com/slack-go/slack"
)

// Client is a thin wrapper around the slack-go SDK.
type Client struct {
	api     *goslack.Client
	channel string
	logger  *slog.Logger
}

// NewClient creates a new Slack API client.
func NewClient(token, channel string) *Client {
	return &Client{
		api:     goslack.New(token),
		channel: channel,
		logger:  slog.Default().With("component", "notify-client"),
	}
}

// NewClientWithAPIURL creates a Slack API client that targets a custom API URL.
// Useful for testing with a mock server.
func NewClientWithAPIURL(token, channel, apiURL string) *Client {
	return &Client{
		api:     goslack.New(token, goslack.OptionAPIURL(apiURL)),
		channel: channel,
		logger:  slog.Default().With("component", "notify-client"),
	}
}

// PostMessage sends a message to the configured channel.
func (c *Client) PostMessage(ctx context.Context, blocks []goslack.Block, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	_, _, err := c.api.PostMessageContext(ctx, c.channel, goslack.MsgOptionBlocks(blocks...))
	if err != nil {
		return fmt.Errorf("chat.postMessage failed: %w", err)
	}
	return nil
}
