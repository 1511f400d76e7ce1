// Package chat implements the low-level HTTP client for the chat
// completions endpoint. It owns the single network exchange per call and
// maps every failure onto the errors package taxonomy. It performs no
// retries; resilience is left to the caller.
package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	perrors "github.com/perceptron-ai/perceptron-go/errors"
)

// DefaultBaseURL is the public API host. Override it to point at a local
// deployment; the wire schema is identical.
const DefaultBaseURL = "https://api.perceptron.inc"

const completionsPath = "/v1/chat/completions"

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	headers    map[string]string
	logger     *slog.Logger
}

type Config struct {
	BaseURL    string
	APIKey     string
	Headers    map[string]string
	HTTPClient *http.Client
	Logger     *slog.Logger
}

func New(cfg Config) *Client {
	c := &Client{
		httpClient: cfg.HTTPClient,
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		headers:    cfg.Headers,
		logger:     cfg.Logger,
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{}
	}
	if c.baseURL == "" {
		c.baseURL = DefaultBaseURL
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	return c
}

// Complete sends one chat completion request and returns the parsed
// response. The API key is validated here, before any network I/O.
func (c *Client) Complete(ctx context.Context, req Request) (out Response, err error) {
	if c.apiKey == "" {
		return Response{}, perrors.ErrMissingAPIKey
	}

	payload, err := json.Marshal(req)
	if err != nil {
		return Response{}, &perrors.ConfigError{Err: fmt.Errorf("marshal payload: %w", err)}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+completionsPath, bytes.NewReader(payload))
	if err != nil {
		return Response{}, &perrors.ConfigError{Err: err}
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")
	for name, value := range c.headers {
		httpReq.Header.Set(name, value)
	}

	start := time.Now()
	status := 0
	defer func() {
		c.logger.Debug("chat completion",
			slog.String("model", req.Model),
			slog.Int("status", status),
			slog.Int("prompt_tokens", out.Usage.PromptTokens),
			slog.Int("completion_tokens", out.Usage.CompletionTokens),
			slog.Duration("latency", time.Since(start)),
			slog.Bool("error", err != nil),
		)
	}()

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return Response{}, &perrors.TransportError{Err: err}
	}
	defer resp.Body.Close()
	status = resp.StatusCode

	body, readErr := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Response{}, perrors.NewAPIError(resp.StatusCode, body)
	}
	if readErr != nil {
		return Response{}, &perrors.DecodeError{Err: readErr}
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return Response{}, &perrors.DecodeError{Err: err}
	}
	return out, nil
}
