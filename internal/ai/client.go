// Package ai wraps an OpenAI-compatible chat endpoint behind a small
// completion API. Callers treat it as best-effort: any error is a signal to
// fall back to deterministic output, never to fail the request.
package ai

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// ErrNotConfigured is returned when no endpoint was configured. Callers use
// it to skip the network round-trip entirely.
var ErrNotConfigured = errors.New("ai: client not configured")

var ErrEmptyCompletion = errors.New("ai: empty completion")

// Config holds connection settings for an OpenAI-compatible endpoint.
// BaseURL may point at any server speaking the chat-completions protocol,
// including local ones; APIKey is optional for those.
type Config struct {
	BaseURL string
	Model   string
	APIKey  string
	Timeout time.Duration
}

type Client struct {
	api     *openai.Client
	model   string
	timeout time.Duration
	logger  *zap.Logger
}

// NewClient builds a client, or a disabled one when cfg.BaseURL is empty so
// the service runs fine without any AI endpoint at hand.
func NewClient(cfg Config, logger *zap.Logger) *Client {
	c := &Client{
		model:   cfg.Model,
		timeout: cfg.Timeout,
		logger:  logger.Named("ai"),
	}
	if cfg.BaseURL == "" {
		return c
	}

	apiCfg := openai.DefaultConfig(cfg.APIKey)
	apiCfg.BaseURL = strings.TrimSuffix(cfg.BaseURL, "/")
	c.api = openai.NewClientWithConfig(apiCfg)
	return c
}

// Enabled reports whether an endpoint was configured.
func (c *Client) Enabled() bool { return c.api != nil }

// Complete sends one system+user message pair and returns the first choice.
func (c *Client) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if c.api == nil {
		return "", ErrNotConfigured
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	c.logger.Debug("completion request",
		zap.String("model", c.model),
		zap.Int("prompt_len", len(userPrompt)))

	start := time.Now()
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
	})
	if err != nil {
		c.logger.Warn("completion failed",
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err))
		return "", err
	}
	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return "", ErrEmptyCompletion
	}

	c.logger.Info("completion ok",
		zap.Int("prompt_tokens", resp.Usage.PromptTokens),
		zap.Int("completion_tokens", resp.Usage.CompletionTokens),
		zap.Duration("elapsed", time.Since(start)))

	return resp.Choices[0].Message.Content, nil
}
