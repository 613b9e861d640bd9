// Package openai adapts the external text-generation and speech services.
// All calls go through a circuit breaker so a flapping upstream trips fast
// instead of piling up requests.
package openai

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/sashabaranov/go-openai"
	"github.com/sony/gobreaker"

	"github.com/linguaweb/linguaweb-backend/internal/config"
	"github.com/linguaweb/linguaweb-backend/internal/domain"
)

// Client wraps the OpenAI API for text generation, speech synthesis, and
// speech recognition.
type Client struct {
	api     *openai.Client
	cfg     config.OpenAIConfig
	breaker *gobreaker.CircuitBreaker
	log     *slog.Logger
}

// NewClient creates a Client from OpenAIConfig. BaseURL, when set, overrides
// the API endpoint (used by tests and self-hosted gateways).
func NewClient(cfg config.OpenAIConfig, logger *slog.Logger) *Client {
	apiCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		apiCfg.BaseURL = cfg.BaseURL
	}

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name: "openai",
	})

	return &Client{
		api:     openai.NewClientWithConfig(apiCfg),
		cfg:     cfg,
		breaker: breaker,
		log:     logger.With("adapter", "openai"),
	}
}

// Generate runs a chat completion with a fixed instruction as the system
// prompt and the word as the user prompt. An empty completion is an
// upstream error.
func (c *Client) Generate(ctx context.Context, instruction, prompt string) (string, error) {
	result, err := c.breaker.Execute(func() (any, error) {
		resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model: c.cfg.GPTModel,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleSystem, Content: instruction},
				{Role: openai.ChatMessageRoleUser, Content: prompt},
			},
		})
		if err != nil {
			return nil, err
		}
		if len(resp.Choices) == 0 {
			return nil, fmt.Errorf("no choices in completion: %w", domain.ErrUpstream)
		}
		return resp.Choices[0].Message.Content, nil
	})
	if err != nil {
		return "", upstreamErr("chat completion", err)
	}

	text := strings.TrimSpace(result.(string))
	if text == "" {
		return "", fmt.Errorf("chat completion: empty response: %w", domain.ErrUpstream)
	}

	return text, nil
}

// Synthesize converts text to pronunciation audio (mp3 bytes) using the
// configured voice.
func (c *Client) Synthesize(ctx context.Context, text string) ([]byte, error) {
	result, err := c.breaker.Execute(func() (any, error) {
		resp, err := c.api.CreateSpeech(ctx, openai.CreateSpeechRequest{
			Model:          openai.SpeechModel(c.cfg.TTSModel),
			Input:          text,
			Voice:          openai.SpeechVoice(c.cfg.Voice),
			ResponseFormat: openai.SpeechResponseFormatMp3,
		})
		if err != nil {
			return nil, err
		}
		defer resp.Close()

		return io.ReadAll(resp)
	})
	if err != nil {
		return nil, upstreamErr("speech synthesis", err)
	}

	data := result.([]byte)
	if len(data) == 0 {
		return nil, fmt.Errorf("speech synthesis: empty audio: %w", domain.ErrUpstream)
	}

	return data, nil
}

// Transcribe runs speech recognition on the audio file at path. The result
// is lowercased and stripped of surrounding whitespace and newlines.
func (c *Client) Transcribe(ctx context.Context, path string) (string, error) {
	result, err := c.breaker.Execute(func() (any, error) {
		resp, err := c.api.CreateTranscription(ctx, openai.AudioRequest{
			Model:    c.cfg.STTModel,
			FilePath: path,
		})
		if err != nil {
			return nil, err
		}
		return resp.Text, nil
	})
	if err != nil {
		return "", upstreamErr("transcription", err)
	}

	return strings.ToLower(strings.TrimSpace(result.(string))), nil
}

// Voice returns the configured synthesis voice, used to derive audio keys.
func (c *Client) Voice() string {
	return c.cfg.Voice
}

// upstreamErr tags an external-service failure with domain.ErrUpstream.
// Context cancellation passes through untagged.
func upstreamErr(op string, err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w", op, err)
	}
	if errors.Is(err, domain.ErrUpstream) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return fmt.Errorf("%s: %w: %w", op, domain.ErrUpstream, err)
}
