package llmproxy

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"scholarbot/app/config"

	"github.com/samber/do"
	"github.com/sashabaranov/go-openai"
)

const (
	requestTimeout     = 30 * time.Second
	defaultTemperature = 0.7
)

// Result is one generation outcome. Absent results (no choices, empty
// content) are not errors; callers pick a fallback via TextOr.
type Result struct {
	Text    string
	Present bool
}

func (r Result) TextOr(fallback string) string {
	if !r.Present {
		return fallback
	}

	return r.Text
}

type Client struct {
	client *openai.Client
	model  string
}

func NewClient(di *do.Injector) (*Client, error) {
	cfg := do.MustInvoke[*config.Config](di)

	clientConfig := openai.DefaultConfig(cfg.OpenAI.Token)
	clientConfig.BaseURL = cfg.OpenAI.BaseURL
	clientConfig.HTTPClient = &http.Client{
		Timeout: requestTimeout,
	}

	return &Client{
		client: openai.NewClientWithConfig(clientConfig),
		model:  cfg.OpenAI.Model,
	}, nil
}

// Generate runs a single chat completion with the given system instruction
// and user query.
func (c *Client) Generate(ctx context.Context, system, query string) (Result, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	aiResponse, err := c.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: c.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: system,
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: query,
				},
			},
			Temperature: defaultTemperature,
		},
	)
	if err != nil {
		return Result{}, fmt.Errorf("failed to create chat completion: %w", err)
	}

	if len(aiResponse.Choices) == 0 {
		return Result{}, nil
	}

	text := strings.TrimSpace(aiResponse.Choices[0].Message.Content)
	if text == "" {
		return Result{}, nil
	}

	return Result{Text: text, Present: true}, nil
}
