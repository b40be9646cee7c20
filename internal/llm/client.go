// Package llm wraps the AI collaborator behind small, strictly validated
// adapters: text generation, contextual word translation, batch word
// translation, and messy-notes extraction. The collaborator itself is opaque:
// prompt in, text out, fallible. No call is ever retried automatically;
// every call here costs money and retry is the user's decision.
package llm

import (
	"context"
	"fmt"
	"log/slog"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/czytanka/backend/internal/config"
	"github.com/czytanka/backend/internal/domain"
)

// Completer is the minimal surface of the AI collaborator.
type Completer interface {
	Complete(ctx context.Context, prompt string, maxTokens int) (string, error)
}

// Client is the Anthropic-backed Completer.
type Client struct {
	api   anthropic.Client
	model string
	log   *slog.Logger
}

// NewClient creates an Anthropic-backed LLM client. Every request carries
// cfg.RequestTimeout as its per-call deadline.
func NewClient(cfg config.LLMConfig, log *slog.Logger) *Client {
	return &Client{
		api: anthropic.NewClient(
			option.WithAPIKey(cfg.APIKey),
			option.WithRequestTimeout(cfg.RequestTimeout),
		),
		model: cfg.Model,
		log:   log.With("component", "llm_client"),
	}
}

// Complete sends one prompt and returns the raw text of the first content
// block. Transport or API failure maps to domain.ErrExtractionUnavailable so
// callers can surface "try again later" without inspecting SDK errors.
func (c *Client) Complete(ctx context.Context, prompt string, maxTokens int) (string, error) {
	msg, err := c.api.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: int64(maxTokens),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		c.log.ErrorContext(ctx, "llm api call failed", slog.String("error", err.Error()))
		return "", fmt.Errorf("llm api call: %v: %w", err, domain.ErrExtractionUnavailable)
	}

	if len(msg.Content) == 0 {
		return "", fmt.Errorf("llm returned no content: %w", domain.ErrExtractionFormat)
	}

	return msg.Content[0].Text, nil
}
