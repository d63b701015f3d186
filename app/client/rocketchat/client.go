package rocketchat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"scholarbot/app/config"

	"github.com/samber/do"
)

const requestTimeout = 30 * time.Second

type Client struct {
	cfg        *config.Config
	httpClient *http.Client
}

func NewClient(di *do.Injector) (*Client, error) {
	return &Client{
		cfg: do.MustInvoke[*config.Config](di),
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
	}, nil
}

type postMessageRequest struct {
	Channel string `json:"channel"`
	Text    string `json:"text"`
}

type postMessageResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// SendMessage posts a direct message to the given user via the bot account.
func (c *Client) SendMessage(ctx context.Context, user, text string) error {
	payload, err := json.Marshal(postMessageRequest{
		Channel: "@" + user,
		Text:    text,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal message payload: %w", err)
	}

	reqURL := c.cfg.RocketChat.URL + "/api/v1/chat.postMessage"

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Auth-Token", c.cfg.RocketChat.Token)
	req.Header.Set("X-User-Id", c.cfg.RocketChat.UserID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to post message: %w", err)
	}
	defer resp.Body.Close()

	var result postMessageResponse
	if err = json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	if resp.StatusCode != http.StatusOK || !result.Success {
		return fmt.Errorf("message delivery rejected (status %d): %s", resp.StatusCode, result.Error)
	}

	return nil
}
